package analysis

import (
	"github.com/google/uuid"

	"github.com/saulo-duarte/persona-quiz/internal/document"
	"github.com/saulo-duarte/persona-quiz/internal/question"
)

// Request is the body of POST /api/analyze.
type Request struct {
	Answers      []string `json:"answers"`
	PromptType   string   `json:"promptType"`
	CustomPrompt string   `json:"customPrompt,omitempty"`
	// Questions is the batch the answers belong to. When sent, an answer
	// that is not one of the offered options counts as a custom response.
	Questions        []question.Question `json:"questions,omitempty"`
	InteractionCount int                 `json:"interactionCount"`
}

type Input struct {
	Instruction      string
	ThemeID          string
	Answers          []string
	Questions        []question.Question
	InteractionCount int
}

type Result struct {
	SessionID             uuid.UUID
	ThemeID               string
	Document              document.Document
	RemainingInteractions int
}

type Response struct {
	Analysis              string             `json:"analysis"`
	Sections              []document.Section `json:"sections"`
	RemainingInteractions int                `json:"remainingInteractions"`
	Success               bool               `json:"success"`
	SessionToken          string             `json:"sessionToken,omitempty"`
}

type ErrorResponse struct {
	Error                 string `json:"error"`
	RemainingInteractions int    `json:"remainingInteractions"`
	Success               bool   `json:"success"`
	Details               string `json:"details,omitempty"`
}
