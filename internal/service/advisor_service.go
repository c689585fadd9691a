package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/campushq/course-planner-api/internal/models"
	"github.com/campushq/course-planner-api/pkg/jobs"
)

// AdvisorConfig tunes the companion's reply behaviour.
type AdvisorConfig struct {
	ReplyDelay time.Duration
	Workers    int
}

// AdvisorService runs the planning companion: it stores the conversation and
// answers user messages asynchronously with canned, persona-flavored replies.
type AdvisorService struct {
	replyDelay time.Duration
	logger     *zap.Logger

	queue *jobs.Queue

	mu       sync.RWMutex
	messages []models.AdvisorMessage
}

type replyJob struct {
	Content string
	Persona models.AdvisorPersona
}

// NewAdvisorService constructs the companion with an empty conversation.
func NewAdvisorService(cfg AdvisorConfig, logger *zap.Logger) *AdvisorService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.ReplyDelay <= 0 {
		cfg.ReplyDelay = time.Second
	}
	s := &AdvisorService{
		replyDelay: cfg.ReplyDelay,
		logger:     logger,
		messages:   []models.AdvisorMessage{},
	}
	s.queue = jobs.NewQueue("advisor-replies", s.handleReplyJob, jobs.QueueConfig{
		Workers: cfg.Workers,
		Logger:  logger,
	})
	return s
}

// Start launches the reply workers.
func (s *AdvisorService) Start(ctx context.Context) {
	s.queue.Start(ctx)
}

// Stop drains the reply workers.
func (s *AdvisorService) Stop() {
	s.queue.Stop()
}

// Messages returns a copy of the conversation in order.
func (s *AdvisorService) Messages() []models.AdvisorMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.AdvisorMessage{}, s.messages...)
}

// Send records a user message and schedules the companion's reply. The user
// message is returned immediately; the reply arrives after the configured
// delay.
func (s *AdvisorService) Send(content string, persona models.AdvisorPersona) (models.AdvisorMessage, error) {
	if !persona.Valid() {
		persona = models.PersonaAdvisor
	}
	message := s.appendMessage(content, models.MessageRoleUser, persona)

	if err := s.queue.Enqueue(jobs.Job{
		ID:      uuid.NewString(),
		Type:    "advisor-reply",
		Payload: replyJob{Content: content, Persona: persona},
	}); err != nil {
		s.logger.Warn("advisor reply not scheduled", zap.Error(err))
	}
	return message, nil
}

func (s *AdvisorService) handleReplyJob(ctx context.Context, job jobs.Job) error {
	payload, ok := job.Payload.(replyJob)
	if !ok {
		return nil
	}

	timer := time.NewTimer(s.replyDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return nil
	case <-timer.C:
	}

	s.appendMessage(replyFor(payload.Content, payload.Persona), models.MessageRoleAI, payload.Persona)
	return nil
}

func (s *AdvisorService) appendMessage(content string, role string, persona models.AdvisorPersona) models.AdvisorMessage {
	message := models.AdvisorMessage{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Persona:   persona,
		Timestamp: time.Now().UTC(),
	}
	s.mu.Lock()
	s.messages = append(s.messages, message)
	s.mu.Unlock()
	return message
}

// replyFor picks a canned reply by keyword. Greetings and thanks are shared;
// the rest depends on the active persona.
func replyFor(userMessage string, persona models.AdvisorPersona) string {
	lower := strings.ToLower(userMessage)

	if strings.Contains(lower, "hello") || strings.Contains(lower, "hi") {
		return "Hello! How can I help you with your course planning today?"
	}
	if strings.Contains(lower, "thank") {
		return "You're welcome! Let me know if you need anything else."
	}

	switch persona {
	case models.PersonaAdvisor:
		if strings.Contains(lower, "prerequisite") || strings.Contains(lower, "prereq") {
			return "Prerequisites are courses you must complete before taking a specific course. They ensure you have the necessary background knowledge. You can find prerequisites in the course details."
		}
		if strings.Contains(lower, "credit") {
			return "Most courses are worth 3-4 credits. A full-time student typically takes 15 credits per term. I recommend not exceeding 18 credits to maintain a balanced workload."
		}
		if strings.Contains(lower, "major") || strings.Contains(lower, "program") {
			return "As a first-year student, you don't need to declare your major right away. Focus on taking prerequisite courses for programs you're interested in to keep your options open."
		}
	case models.PersonaPeer:
		if strings.Contains(lower, "difficult") || strings.Contains(lower, "hard") {
			return "From my experience, CORE 102 and CORE 201 can be challenging but very rewarding. Make sure to attend all lectures and start assignments early. Study groups really helped me!"
		}
		if strings.Contains(lower, "professor") || strings.Contains(lower, "instructor") {
			return "Dr. Chen for CORE 102 is amazing! Very clear explanations and helpful office hours. Dr. Thompson for CORE 101 is also great but assigns a lot of homework."
		}
		if strings.Contains(lower, "time") || strings.Contains(lower, "schedule") {
			return "I found that avoiding 8 AM classes helped me a lot! Also, try to schedule breaks between classes for review and lunch. Having all your classes back-to-back can be exhausting."
		}
	case models.PersonaExpert:
		if strings.Contains(lower, "career") || strings.Contains(lower, "job") {
			return "Computer Science, Engineering, and Health Sciences offer excellent career prospects. Consider taking introductory courses in these areas to explore your interests."
		}
		if strings.Contains(lower, "research") || strings.Contains(lower, "opportunity") {
			return "Even as a first-year student, you can get involved in research. Look for Work Learn positions or speak with professors about volunteer opportunities in their labs."
		}
		if strings.Contains(lower, "grad") {
			return "For graduate school preparation, focus on maintaining a strong GPA and building relationships with professors. Research experience is also valuable, especially in your third and fourth years."
		}
	}

	return "That's a great question. As your " + persona.Label() + ", I'd recommend exploring the course catalog and considering your interests and strengths when planning your schedule."
}
