package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/campushq/course-planner-api/internal/models"
)

func TestReplyForSharedKeywords(t *testing.T) {
	require.Equal(t, "Hello! How can I help you with your course planning today?", replyFor("Hi there", models.PersonaAdvisor))
	require.Equal(t, "You're welcome! Let me know if you need anything else.", replyFor("Thanks a lot", models.PersonaPeer))
}

func TestReplyForPersonaKeywords(t *testing.T) {
	require.Contains(t, replyFor("What is a prerequisite?", models.PersonaAdvisor), "Prerequisites are courses")
	require.Contains(t, replyFor("How many credits should I take?", models.PersonaAdvisor), "15 credits")
	require.Contains(t, replyFor("Are these courses difficult?", models.PersonaPeer), "Study groups")
	require.Contains(t, replyFor("Any career advice?", models.PersonaExpert), "career prospects")
}

func TestReplyForDefaultUsesPersonaLabel(t *testing.T) {
	require.Contains(t, replyFor("zzz", models.PersonaAdvisor), "academic advisor")
	require.Contains(t, replyFor("zzz", models.PersonaPeer), "peer mentor")
	require.Contains(t, replyFor("zzz", models.PersonaExpert), "program expert")
}

func TestAdvisorSendSchedulesReply(t *testing.T) {
	svc := NewAdvisorService(AdvisorConfig{ReplyDelay: 10 * time.Millisecond, Workers: 1}, nil)
	svc.Start(context.Background())
	defer svc.Stop()

	message, err := svc.Send("hello", models.PersonaPeer)
	require.NoError(t, err)
	require.Equal(t, models.MessageRoleUser, message.Role)
	require.Equal(t, models.PersonaPeer, message.Persona)
	require.NotEmpty(t, message.ID)

	require.Eventually(t, func() bool {
		return len(svc.Messages()) == 2
	}, 2*time.Second, 10*time.Millisecond)

	messages := svc.Messages()
	require.Equal(t, models.MessageRoleAI, messages[1].Role)
	require.Equal(t, "Hello! How can I help you with your course planning today?", messages[1].Content)
}

func TestAdvisorSendInvalidPersonaDefaultsToAdvisor(t *testing.T) {
	svc := NewAdvisorService(AdvisorConfig{ReplyDelay: 10 * time.Millisecond, Workers: 1}, nil)
	svc.Start(context.Background())
	defer svc.Stop()

	message, err := svc.Send("hello", models.AdvisorPersona("robot"))
	require.NoError(t, err)
	require.Equal(t, models.PersonaAdvisor, message.Persona)
}
