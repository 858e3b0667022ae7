package inference

import (
	"encoding/json"
	"fmt"
)

// generation is one element of a text-generation response envelope.
type generation struct {
	GeneratedText string `json:"generated_text"`
}

// UnwrapEnvelope extracts the generated text from an inference response body.
// Hosted text-generation endpoints answer in one of several shapes:
//
//   - a JSON array of generations: the first element's generated_text
//   - a JSON object: its generated_text field, or the whole body rendered
//     as a string when the field is absent
//   - anything else (bare string, number, invalid JSON): the raw body
//
// An empty array unwraps to an empty string.
func UnwrapEnvelope(body []byte) string {
	var raw json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return string(body)
	}

	var list []generation
	if err := json.Unmarshal(raw, &list); err == nil {
		if len(list) == 0 {
			return ""
		}
		return list[0].GeneratedText
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err == nil {
		if gt, ok := obj["generated_text"]; ok {
			var text string
			if err := json.Unmarshal(gt, &text); err == nil {
				return text
			}
		}
		return string(raw)
	}

	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return str
	}
	return fmt.Sprintf("%s", raw)
}
