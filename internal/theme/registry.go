package theme

import (
	"strings"

	"github.com/saulo-duarte/persona-quiz/internal/apperr"
)

var builtin = []Theme{
	{
		ID:            BankaiShikai,
		Title:         "Bleach Zanpakuto Analysis",
		Description:   "Answer a series of questions to determine your Bankai and Shikai.",
		Instruction:   "You are a master Zanpakuto analyst from Bleach. Based on the user's answers, determine their Shikai and Bankai abilities, appearance, and name.",
		QuestionFocus: "Explore the user's fighting spirit, resolve under pressure, inner conflicts and the kind of power they would wish to wield.",
		ExtraSections: []string{"Zanpakuto Name", "Shikai", "Bankai"},
	},
	{
		ID:            PersonalityAnalysis,
		Title:         "Personality Analysis",
		Description:   "Answer a series of questions to analyze your personality.",
		Instruction:   "You are a highly skilled personality analyst. Based on the user's answers, provide a detailed analysis of their personality.",
		QuestionFocus: "Cover social energy, decision making, emotional processing, structure versus spontaneity, and values.",
	},
	{
		ID:            AvatarElement,
		Title:         "Avatar Element Analysis",
		Description:   "Answer a series of questions to determine your Avatar element.",
		Instruction:   "You are a wise Avatar master. Based on the user's answers, determine which of the four elements (Water, Earth, Fire, Air) they would bend.",
		QuestionFocus: "Map each answer option to the temperament of one of the four elements without naming the elements.",
		ExtraSections: []string{"Bending Element"},
	},
	{
		ID:            SuperPower,
		Title:         "Super Power Analysis",
		Description:   "Answer a series of questions to determine your super power.",
		Instruction:   "You are a super power analyst. Based on the user's answers, determine what super power they would possess.",
		QuestionFocus: "Explore how the user solves problems, helps others, and reacts to danger.",
		ExtraSections: []string{"Super Power"},
	},
	{
		ID:            PrincessPower,
		Title:         "Princess Power Analysis",
		Description:   "Answer a series of questions to determine your princess power.",
		Instruction:   "You are a royal advisor. Based on the user's answers, determine what kind of princess power they would have.",
		QuestionFocus: "Explore leadership, kindness, courage and how the user treats their kingdom.",
		ExtraSections: []string{"Princess Power"},
	},
	{
		ID:          Custom,
		Title:       "Custom Quiz",
		Description: "Create your own custom quiz with a specific theme.",
		Instruction: "You are an expert quiz creator. Generate questions based on the user's custom prompt.",
	},
}

// Registry is the immutable set of known themes.
type Registry struct {
	themes map[string]Theme
	order  []string
}

func NewRegistry() *Registry {
	r := &Registry{themes: make(map[string]Theme, len(builtin))}
	for _, t := range builtin {
		r.themes[t.ID] = t
		r.order = append(r.order, t.ID)
	}
	return r
}

func (r *Registry) All() map[string]Theme {
	out := make(map[string]Theme, len(r.themes))
	for id, t := range r.themes {
		out[id] = t
	}
	return out
}

// IDs returns the theme ids in registration order.
func (r *Registry) IDs() []string {
	return append([]string(nil), r.order...)
}

func (r *Registry) Get(id string) (Theme, bool) {
	t, ok := r.themes[id]
	return t, ok
}

// Resolve returns the theme for id together with the instruction text that
// steers the oracle. CUSTOM themes take their instruction from custom.
func (r *Registry) Resolve(id, custom string) (Theme, string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Theme{}, "", apperr.Validation("Prompt type is required")
	}

	t, ok := r.themes[id]
	if !ok {
		return Theme{}, "", apperr.Validation("Invalid prompt type or missing custom prompt")
	}

	if id == Custom {
		custom = strings.TrimSpace(custom)
		if custom == "" {
			return Theme{}, "", apperr.Validation("Custom prompt is required for custom quiz type")
		}
		return t, custom, nil
	}
	return t, t.Instruction, nil
}
