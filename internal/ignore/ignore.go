// Package ignore reads .a11yignore files: one doublestar glob per line matched
// against the source file an issue points at.
package ignore

import (
	"bufio"
	"io"
	"os"
	"path"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// DefaultFile is the ignore file looked up in the working directory.
const DefaultFile = ".a11yignore"

// Matcher holds parsed ignore patterns.
type Matcher struct {
	patterns []string
}

// Load parses the ignore file at p.
func Load(p string) (*Matcher, error) {
	f, err := os.Open(p)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads patterns from r. Blank lines and lines starting with # are
// skipped; a trailing slash matches everything below that directory.
func Parse(r io.Reader) (*Matcher, error) {
	m := &Matcher{}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "./")
		if strings.HasSuffix(line, "/") {
			line += "**"
		}
		if !doublestar.ValidatePattern(line) {
			continue
		}
		m.patterns = append(m.patterns, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return m, nil
}

// Patterns returns the normalized patterns in file order.
func (m *Matcher) Patterns() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.patterns...)
}

// Match reports whether p (slash separated) is ignored. A nil Matcher ignores
// nothing.
func (m *Matcher) Match(p string) bool {
	if m == nil {
		return false
	}
	p = strings.TrimPrefix(strings.ReplaceAll(p, "\\", "/"), "./")
	base := path.Base(p)
	for _, pat := range m.patterns {
		if ok, _ := doublestar.Match(pat, p); ok {
			return true
		}
		if ok, _ := doublestar.Match(pat, base); ok {
			return true
		}
	}
	return false
}
