package question

// Question is one parsed multiple-choice item. Options always holds exactly
// four entries in a, b, c, d order.
type Question struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

const OptionsPerQuestion = 4

type Request struct {
	PromptType   string
	CustomPrompt string
}
