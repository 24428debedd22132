package service

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer strips HTML from user-submitted text before it is persisted.
// Content is plain text for this API; markup is never rendered back.
type Sanitizer struct {
	policy *bluemonday.Policy
}

func NewSanitizer() *Sanitizer {
	return &Sanitizer{policy: bluemonday.StrictPolicy()}
}

func (s *Sanitizer) Clean(text string) string {
	return strings.TrimSpace(s.policy.Sanitize(text))
}
