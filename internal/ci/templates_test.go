package ci

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestProviders(t *testing.T) {
	assert.Equal(t, []string{"azure", "bitbucket", "github", "gitlab"}, Providers())
}

func TestLookup(t *testing.T) {
	tpl, err := Lookup(" GitHub ")
	require.NoError(t, err)
	assert.Equal(t, ".github/workflows/a11y-check.yml", tpl.Path)
	assert.True(t, strings.HasPrefix(tpl.Content, "# .github/workflows/a11y-check.yml\nname: Accessibility CI\n"))
	assert.Contains(t, tpl.Content, "fail-on: critical,warning")

	_, err = Lookup("jenkins")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "azure, bitbucket, github, gitlab")
}

func TestTemplates_AreValidYAML(t *testing.T) {
	for _, p := range Providers() {
		tpl, err := Lookup(p)
		require.NoError(t, err)
		var doc map[string]any
		require.NoError(t, yaml.Unmarshal([]byte(tpl.Content), &doc), p)
		assert.NotEmpty(t, doc, p)
	}
}
