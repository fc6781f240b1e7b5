// Package safejson extracts structured JSON from completion-model output.
//
// Completion services are not contractually bound to emit clean JSON: the
// object may arrive wrapped in markdown fences, prefixed with prose, or glued
// to trailing commentary. Decode tries progressively more tolerant extraction
// strategies and reports ErrNoJSON only when every one of them fails, so
// callers can substitute a deterministic fallback value.
package safejson

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

// ErrNoJSON is returned when no decodable JSON object could be extracted.
var ErrNoJSON = errors.New("safejson: no decodable JSON object found")

var (
	fenceRe    = regexp.MustCompile("(?s)(?:```|~~~)[ \t]*([a-zA-Z0-9_-]+)?[ \t]*\n(.*?)(?:```|~~~)")
	langLineRe = regexp.MustCompile(`(?i)^[ \t]*(json|javascript)[ \t]*\n`)
)

// Decode extracts the first JSON object from raw and unmarshals it into v.
//
// Strategy, first success wins:
//  1. direct decode of the trimmed text
//  2. content of the first fenced block, then the same content with a leading
//     language-tag line stripped, then the first balanced object inside it
//  3. first top-level balanced object anywhere in the text
//
// On ErrNoJSON the caller must discard v and use its fallback value; a failed
// intermediate attempt may have partially populated it.
func Decode(raw string, v any) error {
	stripped := strings.TrimSpace(raw)
	if stripped == "" {
		return ErrNoJSON
	}

	for _, candidate := range candidates(stripped) {
		if !json.Valid([]byte(candidate)) {
			continue
		}
		if err := json.Unmarshal([]byte(candidate), v); err == nil {
			return nil
		}
	}
	return ErrNoJSON
}

func candidates(stripped string) []string {
	out := []string{stripped}

	if fenced, ok := firstFencedBlock(stripped); ok {
		out = append(out, fenced)
		if noLang := langLineRe.ReplaceAllString(fenced, ""); noLang != fenced {
			out = append(out, noLang)
		}
		if balanced, ok := firstBalancedObject(fenced); ok {
			out = append(out, balanced)
		}
	}

	if balanced, ok := firstBalancedObject(stripped); ok {
		out = append(out, balanced)
	}
	return out
}

func firstFencedBlock(s string) (string, bool) {
	m := fenceRe.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[2]), true
}

// firstBalancedObject scans for the first top-level {...} span, tracking
// string-quote and escape state so braces inside quoted strings do not affect
// nesting depth. Safer than a greedy regexp.
func firstBalancedObject(s string) (string, bool) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i, ch := range s {
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth > 0 {
				depth--
				if depth == 0 && start >= 0 {
					return s[start : i+1], true
				}
			}
		}
	}
	return "", false
}
