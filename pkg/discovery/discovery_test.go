package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSkill(t *testing.T, root, relDir, name, description string) string {
	t.Helper()
	dir := filepath.Join(root, relDir)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	content := "---\nname: " + name + "\ndescription: " + description + "\n---\n\n# " + name + "\n\nInstructions here.\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "SKILL.md"), []byte(content), 0o644))
	return dir
}

func TestDiscoverFlat(t *testing.T) {
	root := t.TempDir()
	skillA := writeSkill(t, root, "skill-a", "skill-a", "First")
	skillB := writeSkill(t, root, "skill-b", "skill-b", "Second")

	// Nested one level down; the flat scan must not find it.
	writeSkill(t, root, filepath.Join("nested", "skill-c"), "skill-c", "Third")

	// A plain subdirectory without a manifest.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "not-a-skill"), 0o755))

	dirs, err := Discover(root, false)
	require.NoError(t, err)
	assert.Equal(t, []string{skillA, skillB}, dirs)
}

func TestDiscoverRecursive(t *testing.T) {
	root := t.TempDir()
	skillA := writeSkill(t, root, filepath.Join("level1", "skill-a"), "skill-a", "First")
	skillB := writeSkill(t, root, filepath.Join("level1", "level2", "skill-b"), "skill-b", "Second")

	dirs, err := Discover(root, true)
	require.NoError(t, err)
	assert.Equal(t, []string{skillB, skillA}, dirs)
}

func TestDiscoverRecursiveLowercaseVariant(t *testing.T) {
	root := t.TempDir()

	lowerDir := filepath.Join(root, "lower-skill")
	require.NoError(t, os.MkdirAll(lowerDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(lowerDir, "skill.md"),
		[]byte("---\nname: lower-skill\ndescription: Lowercase manifest\n---\nBody\n"), 0o644))

	both := writeSkill(t, root, "both-skill", "both-skill", "Has both")
	require.NoError(t, os.WriteFile(filepath.Join(both, "skill.md"),
		[]byte("---\nname: both-skill\ndescription: Duplicate manifest\n---\nBody\n"), 0o644))

	dirs, err := Discover(root, true)
	require.NoError(t, err)
	assert.Equal(t, []string{both, lowerDir}, dirs)
}

func TestDiscoverEmpty(t *testing.T) {
	dirs, err := Discover(t.TempDir(), false)
	require.NoError(t, err)
	assert.Empty(t, dirs)

	dirs, err = Discover(t.TempDir(), true)
	require.NoError(t, err)
	assert.Empty(t, dirs)
}

func TestCount(t *testing.T) {
	root := t.TempDir()
	writeSkill(t, root, "skill-a", "skill-a", "First")
	writeSkill(t, root, "skill-b", "skill-b", "Second")
	writeSkill(t, root, filepath.Join("deep", "skill-c"), "skill-c", "Third")

	flat, err := Count(root, false)
	require.NoError(t, err)
	assert.Equal(t, 2, flat)

	recursive, err := Count(root, true)
	require.NoError(t, err)
	assert.Equal(t, 3, recursive)
}

func TestLoad(t *testing.T) {
	t.Run("valid skill", func(t *testing.T) {
		dir := writeSkill(t, t.TempDir(), "test-skill", "test-skill", "A test skill for unit testing")

		skill, err := Load(dir)
		require.NoError(t, err)
		assert.Equal(t, "test-skill", skill.Name)
		assert.Equal(t, "A test skill for unit testing", skill.Description)
		assert.Equal(t, dir, skill.Directory)
		assert.Contains(t, skill.Content, "# test-skill")
		assert.Contains(t, skill.Content, "Instructions here.")
		assert.NotContains(t, skill.Content, "description:")
	})

	t.Run("missing manifest", func(t *testing.T) {
		_, err := Load(t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no SKILL.md found")
	})

	t.Run("missing frontmatter", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "plain")
		require.NoError(t, os.MkdirAll(dir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "SKILL.md"), []byte("# Just markdown\n"), 0o644))

		_, err := Load(dir)
		require.Error(t, err)
	})

	t.Run("missing description", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nameless")
		require.NoError(t, os.MkdirAll(dir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "SKILL.md"),
			[]byte("---\nname: nameless\n---\nBody\n"), 0o644))

		_, err := Load(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "description is required")
	})
}
