package matching

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSynonymsDoc = `{
  "languages": {
    "javascript": ["js", "ecmascript"],
    "python": ["py"]
  },
  "frontend": {
    "react": ["reactjs", "React.js"]
  },
  "hierarchies": [
    {"parent": "javascript", "children": ["react", "vue", "node"]}
  ]
}`

func writeSynonymsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "skill_synonyms.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadRegistry_ValidFile(t *testing.T) {
	registry, err := LoadRegistry(writeSynonymsFile(t, testSynonymsDoc))
	require.NoError(t, err)
	require.NotNil(t, registry)

	assert.Equal(t, 3, registry.GroupCount())
	assert.Equal(t, 1, registry.HierarchyCount())

	canonical, ok := registry.CanonicalOf("js")
	assert.True(t, ok)
	assert.Equal(t, "javascript", canonical)

	// A canonical name maps to itself
	canonical, ok = registry.CanonicalOf("python")
	assert.True(t, ok)
	assert.Equal(t, "python", canonical)

	// Synonyms are normalized at load ("React.js" -> "react")
	assert.Contains(t, registry.SynonymsOf("react"), "react")
	assert.Contains(t, registry.SynonymsOf("javascript"), "ecmascript")
}

func TestLoadRegistry_MissingFile(t *testing.T) {
	registry, err := LoadRegistry(filepath.Join(t.TempDir(), "does_not_exist.json"))

	// Degrades to an empty registry with a loggable warning, never a nil registry.
	assert.Error(t, err)
	require.NotNil(t, registry)
	assert.Equal(t, 0, registry.GroupCount())

	_, ok := registry.CanonicalOf("js")
	assert.False(t, ok)
}

func TestLoadRegistry_MalformedJSON(t *testing.T) {
	registry, err := LoadRegistry(writeSynonymsFile(t, `{"languages": {`))

	assert.Error(t, err)
	require.NotNil(t, registry)
	assert.Equal(t, 0, registry.GroupCount())
}

func TestLoadRegistry_MalformedFileStillMatchesExact(t *testing.T) {
	registry, _ := LoadRegistry(writeSynonymsFile(t, `not json at all`))
	matcher := NewMatcher(registry)

	assert.True(t, matcher.MatchSkill("Python", "python"))
	assert.False(t, matcher.MatchSkill("js", "javascript"))
}

func TestRegistry_Hierarchy(t *testing.T) {
	registry, err := LoadRegistry(writeSynonymsFile(t, testSynonymsDoc))
	require.NoError(t, err)

	assert.True(t, registry.IsChildOf("react", "javascript"))
	assert.False(t, registry.IsChildOf("javascript", "react"))
	assert.False(t, registry.IsChildOf("python", "javascript"))
}

func TestEmptyRegistry(t *testing.T) {
	registry := EmptyRegistry()

	assert.Equal(t, 0, registry.GroupCount())
	assert.Equal(t, 0, registry.HierarchyCount())
	assert.Nil(t, registry.SynonymsOf("anything"))
	assert.False(t, registry.IsChildOf("react", "javascript"))
}
