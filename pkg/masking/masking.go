// Package masking scrubs secret material from tool output before it
// is journaled. The journal is append-only and snapshots replay it to
// every subscriber, so a leaked credential would be permanent; output
// is therefore masked once, at the recording boundary.
package masking

import (
	"log/slog"
	"regexp"
)

// Pattern is a regex masking rule. Custom patterns can be supplied per
// deployment on top of the built-in set.
type Pattern struct {
	Name        string
	Pattern     string
	Replacement string
}

type compiledPattern struct {
	name        string
	regex       *regexp.Regexp
	replacement string
}

// Service applies masking patterns to strings and structured tool
// results. Stateless aside from compiled patterns; safe for
// concurrent use.
type Service struct {
	patterns []*compiledPattern
}

// NewService compiles the built-in patterns plus any custom ones.
// Invalid custom patterns are logged and skipped.
func NewService(custom ...Pattern) *Service {
	s := &Service{}
	for _, p := range builtinPatterns() {
		s.compile(p)
	}
	for _, p := range custom {
		s.compile(p)
	}
	return s
}

func (s *Service) compile(p Pattern) {
	regex, err := regexp.Compile(p.Pattern)
	if err != nil {
		slog.Error("Failed to compile masking pattern, skipping",
			"pattern", p.Name, "error", err)
		return
	}
	s.patterns = append(s.patterns, &compiledPattern{
		name:        p.Name,
		regex:       regex,
		replacement: p.Replacement,
	})
}

// MaskString applies every pattern to the input.
func (s *Service) MaskString(in string) string {
	if in == "" {
		return in
	}
	for _, p := range s.patterns {
		in = p.regex.ReplaceAllString(in, p.replacement)
	}
	return in
}

// MaskResult walks a structured tool result and masks every string
// value in place of returning it, leaving non-string values untouched.
func (s *Service) MaskResult(result map[string]any) map[string]any {
	if result == nil {
		return nil
	}
	masked := make(map[string]any, len(result))
	for k, v := range result {
		masked[k] = s.maskValue(v)
	}
	return masked
}

func (s *Service) maskValue(v any) any {
	switch val := v.(type) {
	case string:
		return s.MaskString(val)
	case map[string]any:
		return s.MaskResult(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = s.maskValue(item)
		}
		return out
	default:
		return v
	}
}
