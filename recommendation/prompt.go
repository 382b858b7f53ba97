package recommendation

import (
	"errors"
	"fmt"
	"strings"
)

var ErrNoJSONObject = errors.New("no JSON object in response")

// BuildPrompt renders the request for one problem area. Identical inputs give
// identical prompts.
func BuildPrompt(area Area, m Means) string {
	var b strings.Builder
	b.WriteString("Analyze this web application performance problem and propose one concrete optimization.\n\n")
	fmt.Fprintf(&b, "Problem area: %s\n", area)
	b.WriteString("Current averages:\n")
	fmt.Fprintf(&b, "- response time: %.2fms\n", m.ResponseTime)
	fmt.Fprintf(&b, "- page load time: %.2fms\n", m.PageLoadTime)
	fmt.Fprintf(&b, "- CPU usage: %.2f%%\n", m.CPUUsage)
	fmt.Fprintf(&b, "- memory usage: %.2f%%\n", m.MemoryUsage)
	fmt.Fprintf(&b, "- error rate: %.2f%%\n\n", m.ErrorRate*100)
	b.WriteString(`Respond with a JSON object with the fields "category" (performance, resource, user_experience, error or business), `)
	b.WriteString(`"title", "description", "impact" and "effort" (low, medium or high), `)
	b.WriteString(`"metrics" (a list of objects with "metric", "current", "target" and "improvement" in percent) `)
	b.WriteString(`and "implementation" (a list of steps).`)
	return b.String()
}

// ExtractJSONObject returns the first balanced {...} in text. Braces inside
// JSON strings do not count.
func ExtractJSONObject(text string) (string, error) {
	start := strings.IndexByte(text, '{')
	for start >= 0 {
		if end, ok := matchObject(text, start); ok {
			return text[start : end+1], nil
		}
		next := strings.IndexByte(text[start+1:], '{')
		if next < 0 {
			break
		}
		start += next + 1
	}
	return "", ErrNoJSONObject
}

func matchObject(text string, start int) (int, bool) {
	depth := 0
	inString, escaped := false, false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}
