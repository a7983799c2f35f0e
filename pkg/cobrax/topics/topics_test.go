// Test Type: Unit Test
// Description: Tests for the topics package - embedded help topic discovery

package topics_test

import (
	"testing"
	"testing/fstest"

	"github.com/isker/robots/pkg/cobrax/topics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"wildcards.md":  {Data: []byte("# Wildcards\n\nPatterns may contain `*`.")},
		"precedence.md": {Data: []byte("# Precedence\n\nLongest pattern wins.")},
		"notes.txt":     {Data: []byte("plain text topic")},
		"ignored.json":  {Data: []byte("{}")},
	}
}

func TestNewFromFS(t *testing.T) {
	m, err := topics.NewFromFS(testFS(), topics.Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"notes", "precedence", "wildcards"}, m.List(),
		"markdown and txt files become topics, other extensions are skipped")
}

func TestGet(t *testing.T) {
	m, err := topics.NewFromFS(testFS(), topics.Options{})
	require.NoError(t, err)

	topic, ok := m.Get("wildcards")
	require.True(t, ok)
	assert.Equal(t, ".md", topic.Format)
	assert.Contains(t, topic.Content, "Wildcards")

	_, ok = m.Get("missing")
	assert.False(t, ok)
}

func TestRender_PlainByDefault(t *testing.T) {
	m, err := topics.NewFromFS(testFS(), topics.Options{})
	require.NoError(t, err)

	topic, ok := m.Get("notes")
	require.True(t, ok)
	assert.Equal(t, "plain text topic", m.Render(topic))
}

func TestCommand_ListsAndRenders(t *testing.T) {
	m, err := topics.NewFromFS(testFS(), topics.Options{})
	require.NoError(t, err)

	cmd := m.Command()
	cmd.SetArgs([]string{"no-such-topic"})
	assert.Error(t, cmd.Execute(), "unknown topics are an error")
}
