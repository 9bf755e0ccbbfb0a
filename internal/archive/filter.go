package archive

import "fmt"

// StripArchivesConfig is the built, immutable result of a
// StripArchivesBuilder: an ordered list of glob patterns, terminated by
// the implicit "exclude class files, include everything else" rules.
type StripArchivesConfig struct {
	patterns []Pattern
}

// ShouldInclude walks the pattern list in order and returns the
// IsInclude verdict of the first pattern whose glob matches path. The
// two auto-appended terminal patterns guarantee a match always exists,
// so the bool return is always meaningful — no caller needs a
// "no rule matched" fallback.
func (c *StripArchivesConfig) ShouldInclude(path string) (bool, error) {
	for _, p := range c.patterns {
		matched, err := p.Matches(path)
		if err != nil {
			return false, fmt.Errorf("archive: evaluating pattern %q: %w", p.Glob, err)
		}
		if matched {
			return p.IsInclude, nil
		}
	}
	// Unreachable: Build always appends a catch-all "**/*" include.
	return true, nil
}

// Patterns returns the ordered pattern list, for diagnostics/tests.
func (c *StripArchivesConfig) Patterns() []Pattern {
	return c.patterns
}
