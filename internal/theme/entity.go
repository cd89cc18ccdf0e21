package theme

const (
	BankaiShikai        = "BANKAI_SHIKAI"
	PersonalityAnalysis = "PERSONALITY_ANALYSIS"
	AvatarElement       = "AVATAR_ELEMENT"
	SuperPower          = "SUPER_POWER"
	PrincessPower       = "PRINCESS_POWER"
	Custom              = "CUSTOM"
)

type Theme struct {
	ID          string `json:"-"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Instruction string `json:"systemPrompt"`
	// QuestionFocus flavours the question prompt for this theme.
	QuestionFocus string `json:"-"`
	// ExtraSections are requested in the analysis on top of the standard ones.
	ExtraSections []string `json:"-"`
}
