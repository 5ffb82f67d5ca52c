package genai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// salvageJSON tries to unmarshal model output into v. Even with a JSON
// response type requested, replies sometimes arrive wrapped in prose or
// code fences, so it tries: direct parse, first-{ to last-} span, then
// fenced blocks. Anything still unparseable is a total failure of the call.
func salvageJSON(text string, v any) error {
	text = strings.TrimSpace(text)

	if err := json.Unmarshal([]byte(text), v); err == nil {
		return nil
	}

	if start := strings.Index(text, "{"); start >= 0 {
		if end := strings.LastIndex(text, "}"); end > start {
			if err := json.Unmarshal([]byte(text[start:end+1]), v); err == nil {
				return nil
			}
		}
	}

	for _, fence := range []string{"```json", "```"} {
		if idx := strings.Index(text, fence); idx >= 0 {
			after := text[idx+len(fence):]
			if end := strings.Index(after, "```"); end >= 0 {
				if err := json.Unmarshal([]byte(strings.TrimSpace(after[:end])), v); err == nil {
					return nil
				}
			}
		}
	}

	return fmt.Errorf("response is not valid JSON: %.120s", text)
}
