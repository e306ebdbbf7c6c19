package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"wardrobe/internal/errors"
	"wardrobe/pkg/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupLibrary creates tops/bottoms/shoes under a temp root.
func setupLibrary(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	testutils.CreateLibrary(t, root, map[string][]string{
		"tops":    {"shirt.png", "tee.png", ".DS_Store"},
		"bottoms": {"jeans.png"},
		"shoes":   {"boots.png", "sneakers.png", "sandals.png"},
	})
	return root
}

// execute runs the root command with a config path that does not exist, so
// the defaults are used regardless of the user's home directory.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	root := setupLibrary(t)

	out, err := execute(t, "list", "--root", root)
	require.NoError(t, err)
	assert.Contains(t, out, "tops (2):\n  shirt.png\n  tee.png\n")
	assert.Contains(t, out, "bottoms (1):\n  jeans.png\n")
	assert.Contains(t, out, "shoes (3):")
	assert.NotContains(t, out, ".DS_Store")
}

func TestOutfitCommandSeed(t *testing.T) {
	root := setupLibrary(t)

	first, err := execute(t, "outfit", "--root", root, "--seed", "42")
	require.NoError(t, err)
	second, err := execute(t, "outfit", "--root", root, "--seed", "42")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	lines := strings.Split(strings.TrimSpace(first), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "tops: "+filepath.Join(root, "tops")))
	assert.Equal(t, "bottoms: "+filepath.Join(root, "bottoms", "jeans.png"), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "shoes: "+filepath.Join(root, "shoes")))
}

func TestMissingCategoryDirectory(t *testing.T) {
	root := t.TempDir()
	_, err := execute(t, "list", "--root", root)
	require.Error(t, err)
	assert.True(t, errors.IsFileNotFound(err))
}

func TestConfigInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wardrobe", "config.yaml")

	out, err := execute(t, "config", "init", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)
	_, err = os.Stat(path)
	require.NoError(t, err)

	_, err = execute(t, "config", "init", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = execute(t, "config", "init", "--force", path)
	require.NoError(t, err)

	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--config", path, "config", "show"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "title: Giddy Clothing Services")
	assert.Contains(t, buf.String(), "- name: tops")
}

func TestRootFlagsRegistered(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"config", "root", "debug"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Subset(t, names, []string{"gui", "tui", "list", "outfit", "config"})
}
