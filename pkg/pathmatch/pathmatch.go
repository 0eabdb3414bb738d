// Package pathmatch matches slash paths against shell globs the way find -path does.
//
// Unlike path.Match, the wildcards are not stopped by directory separators:
//   - * matches any run of characters, / included
//   - ? matches any single character
//   - [...] and [!...] match one character from (or outside) a set
//   - \ makes the next character literal
package pathmatch

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
)

var (
	// ErrUnclosedClass is returned for a [ without a matching ].
	ErrUnclosedClass = errors.New("unclosed character class")
	// ErrTrailingEscape is returned for a pattern ending in a lone backslash.
	ErrTrailingEscape = errors.New("trailing backslash")
)

// Match reports whether name matches pattern.
func Match(pattern, name string) (bool, error) {
	re, err := compile(pattern)
	if err != nil {
		return false, err
	}

	return re.MatchString(name), nil
}

// Matcher holds a set of compiled patterns.
// The zero Matcher matches nothing.
type Matcher struct {
	patterns []*regexp.Regexp
}

// NewMatcher compiles patterns, failing on the first malformed one.
func NewMatcher(patterns []string) (*Matcher, error) {
	m := &Matcher{patterns: make([]*regexp.Regexp, 0, len(patterns))}

	for _, pattern := range patterns {
		re, err := compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", pattern, err)
		}

		m.patterns = append(m.patterns, re)
	}

	return m, nil
}

// Len returns the number of patterns in the matcher.
func (m *Matcher) Len() int {
	return len(m.patterns)
}

// MatchAny reports whether any pattern matches name.
func (m *Matcher) MatchAny(names ...string) bool {
	for _, re := range m.patterns {
		for _, name := range names {
			if re.MatchString(name) {
				return true
			}
		}
	}

	return false
}

// compiled caches pattern -> *regexp.Regexp.
var compiled sync.Map //nolint:gochecknoglobals

func compile(pattern string) (*regexp.Regexp, error) {
	if cached, ok := compiled.Load(pattern); ok {
		return cached.(*regexp.Regexp), nil //nolint:forcetypeassert
	}

	expr, err := translate(pattern)
	if err != nil {
		return nil, err
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compiling %q: %w", pattern, err)
	}

	actual, _ := compiled.LoadOrStore(pattern, re)

	return actual.(*regexp.Regexp), nil //nolint:forcetypeassert
}

// translate rewrites a glob into an anchored regular expression.
func translate(pattern string) (string, error) {
	var expr strings.Builder

	expr.WriteByte('^')

	for i := 0; i < len(pattern); i++ {
		switch c := pattern[i]; c {
		case '*':
			expr.WriteString(".*")
		case '?':
			expr.WriteByte('.')
		case '\\':
			if i+1 == len(pattern) {
				return "", fmt.Errorf("%w in %q", ErrTrailingEscape, pattern)
			}

			i++
			expr.WriteString(regexp.QuoteMeta(pattern[i : i+1]))
		case '[':
			end := classEnd(pattern, i)
			if end < 0 {
				return "", fmt.Errorf("%w in %q", ErrUnclosedClass, pattern)
			}

			class := pattern[i+1 : end]
			if strings.HasPrefix(class, "!") {
				class = "^" + class[1:]
			}

			expr.WriteString("[" + class + "]")

			i = end
		default:
			expr.WriteString(regexp.QuoteMeta(pattern[i : i+1]))
		}
	}

	expr.WriteByte('$')

	return expr.String(), nil
}

// classEnd returns the index of the ] closing the class opened at start, or -1.
// A ] right after [ or [! is part of the set.
func classEnd(pattern string, start int) int {
	i := start + 1

	if i < len(pattern) && pattern[i] == '!' {
		i++
	}

	if i < len(pattern) && pattern[i] == ']' {
		i++
	}

	if end := strings.IndexByte(pattern[i:], ']'); end >= 0 {
		return i + end
	}

	return -1
}
