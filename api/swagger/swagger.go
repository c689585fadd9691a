package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Course Planner API",
        "description": "Course registration planning with schedule conflict detection",
        "version": "0.1.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Catalog", "description": "Course catalog search and lookup"},
        {"name": "Worklist", "description": "Enrollment worklist and conflict detection"},
        {"name": "Presets", "description": "Bundled scheduling scenarios"},
        {"name": "Advisor", "description": "Planning companion chat"},
        {"name": "Export", "description": "Schedule downloads"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/courses": {
            "get": {
                "tags": ["Catalog"],
                "summary": "Search the course catalog",
                "parameters": [
                    {"name": "q", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "pageSize", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/courses/recommendations": {
            "get": {
                "tags": ["Catalog"],
                "summary": "Recommend courses to add",
                "parameters": [
                    {"name": "q", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/courses/{id}": {
            "get": {
                "tags": ["Catalog"],
                "summary": "Get a course",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/worklist": {
            "get": {
                "tags": ["Worklist"],
                "summary": "Get the worklist snapshot",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/worklist/enrollments": {
            "post": {
                "tags": ["Worklist"],
                "summary": "Enroll a course or swap its section",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/EnrollmentRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/worklist/enrollments/{courseId}": {
            "delete": {
                "tags": ["Worklist"],
                "summary": "Remove a course",
                "parameters": [
                    {"name": "courseId", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/worklist/conflicts": {
            "get": {
                "tags": ["Worklist"],
                "summary": "List schedule conflicts",
                "parameters": [
                    {"name": "resolved", "in": "query", "type": "boolean"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/worklist/conflicts/resolutions": {
            "post": {
                "tags": ["Worklist"],
                "summary": "Mark conflicts resolved or reopen them",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ResolutionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/worklist/alternatives/{courseId}": {
            "get": {
                "tags": ["Worklist"],
                "summary": "List conflict-free alternative sections",
                "parameters": [
                    {"name": "courseId", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/worklist/reset": {
            "post": {
                "tags": ["Worklist"],
                "summary": "Clear the worklist",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/worklist/export": {
            "get": {
                "tags": ["Export"],
                "summary": "Export the current schedule",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/presets": {
            "get": {
                "tags": ["Presets"],
                "summary": "List available presets",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/presets/{id}/load": {
            "post": {
                "tags": ["Presets"],
                "summary": "Load a preset into the worklist",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/advisor/messages": {
            "get": {
                "tags": ["Advisor"],
                "summary": "List the advisor conversation",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Advisor"],
                "summary": "Send a message to the advisor",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AdvisorMessageRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "Course": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "code": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "credits": {"type": "integer"},
                "color": {"type": "string"},
                "prerequisites": {"type": "array", "items": {"type": "string"}},
                "corequisites": {"type": "array", "items": {"type": "string"}},
                "sections": {"type": "array", "items": {"$ref": "#/definitions/Section"}}
            }
        },
        "Section": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "courseId": {"type": "string"},
                "type": {"type": "string"},
                "number": {"type": "string"},
                "instructor": {"type": "string"},
                "location": {"type": "string"},
                "seatsAvailable": {"type": "integer"},
                "totalSeats": {"type": "integer"},
                "schedule": {"type": "array", "items": {"$ref": "#/definitions/ScheduleEntry"}}
            }
        },
        "ScheduleEntry": {
            "type": "object",
            "properties": {
                "day": {"type": "string"},
                "startTime": {"type": "string"},
                "endTime": {"type": "string"}
            }
        },
        "CalendarEvent": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "courseId": {"type": "string"},
                "sectionId": {"type": "string"},
                "title": {"type": "string"},
                "day": {"type": "string"},
                "startHour": {"type": "number"},
                "endHour": {"type": "number"},
                "color": {"type": "string"},
                "location": {"type": "string"}
            }
        },
        "Conflict": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "type": {"type": "string"},
                "description": {"type": "string"},
                "courseIds": {"type": "array", "items": {"type": "string"}},
                "sectionIds": {"type": "array", "items": {"type": "string"}},
                "suggestions": {"type": "array", "items": {"type": "string"}}
            }
        },
        "EnrollmentRequest": {
            "type": "object",
            "properties": {
                "courseId": {"type": "string"},
                "sectionId": {"type": "string"}
            },
            "required": ["courseId", "sectionId"]
        },
        "ResolutionRequest": {
            "type": "object",
            "properties": {
                "conflictIds": {"type": "array", "items": {"type": "string"}},
                "resolved": {"type": "boolean"}
            },
            "required": ["conflictIds"]
        },
        "AdvisorMessageRequest": {
            "type": "object",
            "properties": {
                "content": {"type": "string"},
                "persona": {"type": "string", "enum": ["advisor", "peer", "expert"]}
            },
            "required": ["content"]
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"$ref": "#/definitions/Pagination"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
