package rename

import (
	"fmt"
	"regexp"
)

// matchFlags is the fixed flag policy applied to every pattern:
// case-insensitive, with ^ and $ anchoring at line boundaries. Dot does not
// match newline unless the pattern opts in with (?s).
const matchFlags = "(?im)"

// Pattern is a compiled search pattern, shared across one batch.
type Pattern struct {
	re *regexp.Regexp
}

// CompilePattern compiles pattern under the fixed flag policy. An invalid
// pattern fails the whole invocation, before any file is read.
func CompilePattern(pattern string) (*Pattern, error) {
	re, err := regexp.Compile(matchFlags + pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern: %w", err)
	}
	return &Pattern{re: re}, nil
}

// Match applies the pattern to text and returns the capture groups of the
// first match. If the pattern does not match, the zero CaptureSet is
// returned with Matched false and both group collections empty.
func (p *Pattern) Match(text string) CaptureSet {
	m := p.re.FindStringSubmatch(text)
	if m == nil {
		return CaptureSet{}
	}

	cs := CaptureSet{
		Matched:    true,
		Positional: m[1:],
		Named:      make(map[string]string),
	}
	for i, name := range p.re.SubexpNames() {
		if name != "" && i < len(m) {
			cs.Named[name] = m[i]
		}
	}
	return cs
}
