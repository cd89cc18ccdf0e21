package followup

import "github.com/saulo-duarte/persona-quiz/internal/document"

// Sections requested for every follow-up answer.
var Sections = []string{"Direct Answer", "Explanation", "Additional Insights"}

// Request is the body of POST /api/follow-up.
type Request struct {
	Question         string `json:"question"`
	PreviousAnalysis string `json:"previousAnalysis"`
	InteractionCount int    `json:"interactionCount"`
	SessionToken     string `json:"sessionToken,omitempty"`
}

type Input struct {
	PreviousAnalysis string
	Question         string
	InteractionCount int
}

type Result struct {
	Document              document.Document
	RemainingInteractions int
}

type Response struct {
	Answer                string             `json:"answer"`
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
