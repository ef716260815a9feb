package rename

import (
	"fmt"
	"strconv"
	"strings"
)

type tokenKind int

const (
	tokenLiteral tokenKind = iota
	tokenPositional
	tokenNamed
)

// token is either a literal run or a placeholder referencing a capture
// group by position or by name.
type token struct {
	kind tokenKind
	text string // literal text, or the named group key
	idx  int    // 1-based group index for tokenPositional
}

// Template is a parsed filename template. Placeholders are {1}, {2}, ...
// for positional groups and {name} for named groups.
type Template struct {
	raw    string
	tokens []token
}

// ParseTemplate tokenizes raw. Parsing never fails: whether a placeholder
// resolves is only known per file, at render time. A brace that does not
// form a valid placeholder (no closing brace, or a key that is neither a
// decimal integer nor an identifier) is passed through as literal text.
func ParseTemplate(raw string) *Template {
	t := &Template{raw: raw}
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			t.tokens = append(t.tokens, token{kind: tokenLiteral, text: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(raw); {
		if raw[i] != '{' {
			lit.WriteByte(raw[i])
			i++
			continue
		}

		end := strings.IndexByte(raw[i:], '}')
		if end < 0 {
			lit.WriteString(raw[i:])
			break
		}

		key := raw[i+1 : i+end]
		switch {
		case isGroupIndex(key):
			flush()
			idx, _ := strconv.Atoi(key)
			t.tokens = append(t.tokens, token{kind: tokenPositional, idx: idx})
		case isIdentifier(key):
			flush()
			t.tokens = append(t.tokens, token{kind: tokenNamed, text: key})
		default:
			// Not a placeholder; keep the brace and rescan after it
			lit.WriteByte('{')
			i++
			continue
		}
		i += end + 1
	}
	flush()

	return t
}

// Render substitutes every placeholder from cs and returns the target name.
// A positional index outside 1..len(Positional) or a named key absent from
// Named fails the render; the error message names the offending placeholder.
func (t *Template) Render(cs CaptureSet) (string, error) {
	var b strings.Builder
	for _, tok := range t.tokens {
		switch tok.kind {
		case tokenLiteral:
			b.WriteString(tok.text)
		case tokenPositional:
			if tok.idx < 1 || tok.idx > len(cs.Positional) {
				return "", fmt.Errorf("index %d out of range", tok.idx)
			}
			b.WriteString(cs.Positional[tok.idx-1])
		case tokenNamed:
			v, ok := cs.Named[tok.text]
			if !ok {
				return "", fmt.Errorf("unknown group %q", tok.text)
			}
			b.WriteString(v)
		}
	}
	return b.String(), nil
}

// String returns the raw template text.
func (t *Template) String() string { return t.raw }

func isGroupIndex(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
