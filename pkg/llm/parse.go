package llm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

const (
	keyAgreeOrNot  = "agreeOrNot"
	keyExplanation = "explanation"
)

// Reasoning models (deepseek-r1) put their chain of thought in <think> tags
// ahead of the answer, and it may contain braces of its own.
var thinkBlock = regexp.MustCompile(`(?s)<think>.*?</think>`)

// ParseVerdict extracts the JSON object from a chat reply and checks that
// both expected keys are present.
func ParseVerdict(provider, content string) *Verdict {
	content = cleanJSONResponse(content)

	var parsed map[string]any
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return &Verdict{
			AgreeOrNot:  "Error",
			Explanation: fmt.Sprintf("Failed to parse %s response: %v", provider, err),
			Status:      StatusError,
		}
	}

	agree, hasAgree := parsed[keyAgreeOrNot]
	explanation, hasExplanation := parsed[keyExplanation]
	if !hasAgree || !hasExplanation {
		return &Verdict{
			AgreeOrNot:  "Unavailable",
			Explanation: "Missing expected keys in the response.",
			Status:      StatusUnavailable,
		}
	}

	return &Verdict{
		AgreeOrNot:  stringValue(agree),
		Explanation: stringValue(explanation),
		Status:      StatusOK,
	}
}

func responseErrorVerdict(statusCode int, body string) *Verdict {
	return &Verdict{
		AgreeOrNot:    "Error",
		Explanation:   fmt.Sprintf("API error %d: %s", statusCode, body),
		Status:        StatusResponseError,
		ResponseError: statusCode,
	}
}

func stringValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}

func cleanJSONResponse(content string) string {
	content = thinkBlock.ReplaceAllString(content, "")
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	// Some model responses include extra prose around JSON.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}
