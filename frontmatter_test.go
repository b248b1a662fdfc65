package revealdown

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDeckOptions(t *testing.T) {
	in := []byte("+++\ntitle: Talk\ntheme: night\nslide_level: 2\nhr_breaks_slide: true\nheader_footer: false\n+++\n# A\n")

	deck, content, err := ParseDeckOptions(in)
	require.NoError(t, err)
	assert.Equal(t, "# A\n", string(content))
	assert.Equal(t, "Talk", deck.Title)
	assert.Equal(t, "night", deck.Theme)
	require.NotNil(t, deck.SlideLevel)
	assert.Equal(t, 2, *deck.SlideLevel)
	require.NotNil(t, deck.HorizontalRuleBreaksSlide)
	assert.True(t, *deck.HorizontalRuleBreaksSlide)
	require.NotNil(t, deck.AddHeaderFooter)
	assert.False(t, *deck.AddHeaderFooter)

	opts, err := deck.Options()
	require.NoError(t, err)
	c := NewConfig(opts...)
	assert.Equal(t, 2, c.SlideLevel)
	assert.True(t, c.HorizontalRuleBreaksSlide)
	assert.False(t, c.AddHeaderFooter)
	assert.Contains(t, c.Header, "<title>Talk</title>")
}

func TestParseDeckOptionsWithoutFrontMatter(t *testing.T) {
	for _, in := range []string{"# A\n", "+++ not closed\n# A\n", ""} {
		deck, content, err := ParseDeckOptions([]byte(in))
		require.NoError(t, err)
		assert.Equal(t, in, string(content))

		opts, err := deck.Options()
		require.NoError(t, err)
		assert.Empty(t, opts)
	}
}

func TestParseDeckOptionsInvalidYAML(t *testing.T) {
	_, _, err := ParseDeckOptions([]byte("+++\nslide_level: [1\n+++\n"))
	assert.True(t, errors.Is(err, ErrFrontMatter))
}
