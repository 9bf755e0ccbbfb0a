package archive

import "errors"

// ErrBuilderReused is returned by Build when called more than once on
// the same StripArchivesBuilder.
var ErrBuilderReused = errors.New("archive: builder already built, construct a new StripArchivesBuilder")

// StripArchivesBuilder accumulates an ordered list of include/exclude
// glob patterns and produces a single StripArchivesConfig from them.
// It is single-use: Build appends the two terminal rules and marks the
// builder spent, so a second Build call is a programming error rather
// than a silently-different config.
type StripArchivesBuilder struct {
	patterns []Pattern
	built    bool
}

// NewStripArchivesBuilder returns an empty builder.
func NewStripArchivesBuilder() *StripArchivesBuilder {
	return &StripArchivesBuilder{}
}

// AddInclude appends an include rule for glob, in order.
func (b *StripArchivesBuilder) AddInclude(glob string) *StripArchivesBuilder {
	b.patterns = append(b.patterns, NewPattern(glob, true))
	return b
}

// AddExclude appends an exclude rule for glob, in order.
func (b *StripArchivesBuilder) AddExclude(glob string) *StripArchivesBuilder {
	b.patterns = append(b.patterns, NewPattern(glob, false))
	return b
}

// Build finalizes the pattern list — appending the terminal rules
// "exclude **/*.class" then "include **/*" — and returns the resulting
// config. A builder can only be built once; a second call returns
// ErrBuilderReused.
func (b *StripArchivesBuilder) Build() (*StripArchivesConfig, error) {
	if b.built {
		return nil, ErrBuilderReused
	}
	b.built = true

	patterns := append(append([]Pattern(nil), b.patterns...),
		NewPattern("**/*.class", false),
		NewPattern("**/*", true),
	)
	return &StripArchivesConfig{patterns: patterns}, nil
}
