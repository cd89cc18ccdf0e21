package question

import (
	"encoding/json"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"google.golang.org/genai"
)

const itemSchema = `{
  "type": "object",
  "required": ["question", "options"],
  "properties": {
    "question": {"type": "string", "minLength": 1, "pattern": "\\S"},
    "options": {
      "type": "array",
      "minItems": 4,
      "maxItems": 4,
      "items": {"type": "string", "minLength": 1, "pattern": "\\S"}
    }
  }
}`

var compiledItemSchema = mustSchema(itemSchema)

func mustSchema(s string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(s))
	if err != nil {
		panic(err)
	}
	return schema
}

// ResponseSchema is what the oracle is asked to return when structured
// output is enabled.
func ResponseSchema(count int) *genai.Schema {
	n := int64(count)
	return &genai.Schema{
		Type:     genai.TypeArray,
		MinItems: genai.Ptr(n),
		MaxItems: genai.Ptr(n),
		Items: &genai.Schema{
			Type:     genai.TypeObject,
			Required: []string{"question", "options"},
			Properties: map[string]*genai.Schema{
				"question": {Type: genai.TypeString},
				"options": {
					Type:     genai.TypeArray,
					MinItems: genai.Ptr(int64(OptionsPerQuestion)),
					MaxItems: genai.Ptr(int64(OptionsPerQuestion)),
					Items:    &genai.Schema{Type: genai.TypeString},
				},
			},
		},
	}
}

// parseStructured decodes a JSON array (or {"questions": [...]}) of
// questions. Items failing the schema are dropped, mirroring the text path.
// ok is false when raw is not JSON at all.
func parseStructured(raw string) ([]Question, bool) {
	clean := stripCodeFences(raw)
	if clean == "" || (clean[0] != '[' && clean[0] != '{') {
		return nil, false
	}

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(clean), &items); err != nil {
		var wrapped struct {
			Questions []json.RawMessage `json:"questions"`
		}
		if err := json.Unmarshal([]byte(clean), &wrapped); err != nil {
			return nil, false
		}
		items = wrapped.Questions
	}

	questions := make([]Question, 0, len(items))
	for _, item := range items {
		result, err := compiledItemSchema.Validate(gojsonschema.NewBytesLoader(item))
		if err != nil || !result.Valid() {
			continue
		}
		var q Question
		if err := json.Unmarshal(item, &q); err != nil {
			continue
		}
		q.Question = strings.TrimSpace(q.Question)
		for i := range q.Options {
			q.Options[i] = strings.TrimSpace(q.Options[i])
		}
		questions = append(questions, q)
	}
	return questions, true
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSpace(s)
	}
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
