package archive

import "github.com/bmatcuk/doublestar/v4"

// matcher is the opaque glob collaborator a Pattern delegates matching
// to. Its only contract is "does this path satisfy this glob", so the
// archive package never needs to know doublestar's matching rules
// beyond that.
type matcher interface {
	Match(glob, path string) (bool, error)
}

type doublestarMatcher struct{}

func (doublestarMatcher) Match(glob, path string) (bool, error) {
	return doublestar.Match(glob, path)
}

// Pattern is one ordered include/exclude rule of a StripArchivesConfig.
// Glob follows Ant-style syntax: '?' matches one character, '*' matches
// any run of characters within a path segment, '**' matches across
// segment boundaries.
type Pattern struct {
	Glob      string
	IsInclude bool

	match matcher
}

// NewPattern builds a Pattern backed by the default doublestar matcher.
func NewPattern(glob string, isInclude bool) Pattern {
	return Pattern{Glob: glob, IsInclude: isInclude, match: doublestarMatcher{}}
}

// Matches reports whether path satisfies this pattern's glob.
func (p Pattern) Matches(path string) (bool, error) {
	m := p.match
	if m == nil {
		m = doublestarMatcher{}
	}
	return m.Match(p.Glob, path)
}
