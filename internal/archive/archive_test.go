package archive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigExcludesClassFilesIncludesRest(t *testing.T) {
	cfg, err := NewStripArchivesBuilder().Build()
	require.NoError(t, err)

	include, err := cfg.ShouldInclude("com/example/Foo.class")
	require.NoError(t, err)
	assert.False(t, include)

	include, err = cfg.ShouldInclude("META-INF/MANIFEST.MF")
	require.NoError(t, err)
	assert.True(t, include)

	include, err = cfg.ShouldInclude("assets/icon.png")
	require.NoError(t, err)
	assert.True(t, include)
}

func TestFirstMatchingPatternWins(t *testing.T) {
	cfg, err := NewStripArchivesBuilder().
		AddExclude("**/*.class").
		AddInclude("com/keep/**/*.class").
		Build()
	require.NoError(t, err)

	// The earlier, broader exclude fires first: ordering, not
	// specificity, decides the winner.
	include, err := cfg.ShouldInclude("com/keep/Foo.class")
	require.NoError(t, err)
	assert.False(t, include)
}

func TestOrderingLetsIncludeWinWhenListedFirst(t *testing.T) {
	cfg, err := NewStripArchivesBuilder().
		AddInclude("com/keep/**/*.class").
		AddExclude("**/*.class").
		Build()
	require.NoError(t, err)

	include, err := cfg.ShouldInclude("com/keep/Foo.class")
	require.NoError(t, err)
	assert.True(t, include)

	include, err = cfg.ShouldInclude("com/other/Bar.class")
	require.NoError(t, err)
	assert.False(t, include)
}

func TestBuilderRejectsReuse(t *testing.T) {
	b := NewStripArchivesBuilder().AddExclude("**/*.tmp")

	_, err := b.Build()
	require.NoError(t, err)

	_, err = b.Build()
	assert.ErrorIs(t, err, ErrBuilderReused)
}

func TestNonClassNonMatchedPathFallsThroughToCatchAllInclude(t *testing.T) {
	cfg, err := NewStripArchivesBuilder().
		AddExclude("**/secrets/**").
		Build()
	require.NoError(t, err)

	include, err := cfg.ShouldInclude("lib/secrets/key.pem")
	require.NoError(t, err)
	assert.False(t, include)

	include, err = cfg.ShouldInclude("lib/public/readme.txt")
	require.NoError(t, err)
	assert.True(t, include)
}

func TestDoubleStarGlobMatchesNestedDirectories(t *testing.T) {
	p := NewPattern("assets/**/*.png", true)

	matched, err := p.Matches("assets/icons/dark/close.png")
	require.NoError(t, err)
	assert.True(t, matched)

	matched, err = p.Matches("assets/close.png")
	require.NoError(t, err)
	assert.True(t, matched)

	matched, err = p.Matches("other/close.png")
	require.NoError(t, err)
	assert.False(t, matched)
}
