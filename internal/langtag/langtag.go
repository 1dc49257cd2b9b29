// Package langtag handles the bilingual plumbing: parsing the language
// marker the model appends to each reply, and guessing the language of
// typed input so the terminal client can speak in the right voice.
package langtag

import (
	"strings"

	"github.com/abadojack/whatlanggo"
)

// Lang is a reply language code.
type Lang string

const (
	English   Lang = "en"
	Malayalam Lang = "ml"
)

// Marker tokens the model is instructed to append on a trailing line.
const (
	MarkerEnglish   = "[lang:en]"
	MarkerMalayalam = "[lang:ml]"
)

// ParseReply inspects the last non-empty line of a model reply for a
// language marker. When found, the literal token is removed from the text,
// the surrounding whitespace trimmed, and found is true. No marker defaults
// to English with the text untouched.
//
// Matching is deliberately a substring check on the last line, not an exact
// trailing-token match: a marker embedded alongside other trailing content
// still matches, and only the token itself is stripped.
func ParseReply(raw string) (text string, lang Lang, found bool) {
	last := lastNonEmptyLine(raw)
	switch {
	case strings.Contains(last, MarkerMalayalam):
		return strings.TrimSpace(strings.ReplaceAll(raw, MarkerMalayalam, "")), Malayalam, true
	case strings.Contains(last, MarkerEnglish):
		return strings.TrimSpace(strings.ReplaceAll(raw, MarkerEnglish, "")), English, true
	default:
		return raw, English, false
	}
}

func lastNonEmptyLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}

// DetectTyped guesses the language of typed input. Anything recognized as
// Malayalam maps to ml; every other outcome, including an unreliable
// detection, maps to en.
func DetectTyped(text string) Lang {
	info := whatlanggo.Detect(text)
	if info.Lang == whatlanggo.Mal {
		return Malayalam
	}
	return English
}
