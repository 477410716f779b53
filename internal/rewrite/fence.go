package rewrite

import (
	"regexp"
	"strings"
)

const fenceMarker = "```"

var fenceLangRegex = regexp.MustCompile("^```\\s*(\\w+)?")

// fenceState tracks whether the scan position is inside a fenced code block
// and, when inside, the language declared on the opening fence.
type fenceState struct {
	open bool
	lang string
}

// next consumes one line and returns the updated state plus whether the line
// is itself a fence boundary. Boundary lines always pass through unmodified.
// An opening fence with no closing marker leaves the state open for the rest
// of the document, so everything after it is treated as verbatim code.
func (s fenceState) next(line string) (fenceState, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, fenceMarker) {
		return s, false
	}
	if s.open {
		return fenceState{}, true
	}
	lang := ""
	if m := fenceLangRegex.FindStringSubmatch(trimmed); m != nil {
		lang = m[1]
	}
	return fenceState{open: true, lang: lang}, true
}
