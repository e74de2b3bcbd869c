package config_test

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/forgebsd/isoforge/internal/adapters/config"
	"github.com/forgebsd/isoforge/internal/adapters/logger"
	"github.com/forgebsd/isoforge/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
)

func writeRecipe(t *testing.T, content string) string {
	t.Helper()

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, domain.RecipeFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func load(t *testing.T, content string) (*domain.Recipe, error) {
	t.Helper()

	loader := config.NewLoader(logger.New())
	return loader.Load(writeRecipe(t, content))
}

func TestLoad_Success(t *testing.T) {
	recipe, err := load(t, `
version: "1"
default: iso
clean: clean
workdir: work
output: out/image.iso
vars:
  hostname: forge
targets:
  base:
    artifact: work/base.iso
    action: ["fetch", "base"]
  iso:
    artifact: out/image.iso
    action: ["make", "iso"]
    prerequisites: ["base"]
  clean:
    action: ["make", "clean"]
    always: true
`)
	require.NoError(t, err)
	require.NoError(t, recipe.Graph.Validate())

	assert.Equal(t, "iso", recipe.Default.String())
	assert.Equal(t, "clean", recipe.Clean.String())
	assert.Equal(t, "forge", recipe.Vars["hostname"])

	// Declaration order is preserved by the graph walk.
	order := make([]string, 0, 3)
	for target := range recipe.Graph.Walk() {
		order = append(order, target.Name.String())
	}
	assert.Equal(t, []string{"base", "iso", "clean"}, order)

	// Relative paths resolve against the recipe directory.
	iso, ok := recipe.Graph.Get(domain.NewInternedString("iso"))
	require.True(t, ok)
	assert.True(t, filepath.IsAbs(iso.Artifact.String()))
	assert.Equal(t, recipe.Layout.Output, iso.Artifact.String())
}

// TestLoad_ShippedRecipe guards the repo's example recipe end to end: the
// OVA action tars template.ovf and image.iso out of a single directory, so
// both files must actually be produced there by earlier targets.
func TestLoad_ShippedRecipe(t *testing.T) {
	loader := config.NewLoader(logger.New())
	recipe, err := loader.Load(filepath.Join("..", "..", "..", domain.RecipeFileName))
	require.NoError(t, err)
	require.NoError(t, recipe.Graph.Validate())

	ova, ok := recipe.Graph.Get(domain.NewInternedString("ova"))
	require.True(t, ok)

	dirIdx := slices.Index(ova.Action, "--directory")
	require.GreaterOrEqual(t, dirIdx, 0)
	require.Less(t, dirIdx+2, len(ova.Action))
	tarDir := recipe.Layout.Resolve(ova.Action[dirIdx+1])
	assert.ElementsMatch(t, []string{"template.ovf", "image.iso"}, ova.Action[dirIdx+2:])

	// The rendered OVF descriptor is staged into the tar directory.
	assert.Equal(t, tarDir, recipe.Staging.Dest)
	_, statErr := os.Stat(filepath.Join(recipe.Staging.Source, "template.ovf"))
	assert.NoError(t, statErr)

	// The image member is the artifact of ova's prerequisite.
	image, ok := recipe.Graph.Get(domain.NewInternedString("image"))
	require.True(t, ok)
	assert.Equal(t, filepath.Join(tarDir, "image.iso"), image.Artifact.String())
	assert.Contains(t, ova.Prerequisites, domain.NewInternedString("image"))

	// make iso pins the output name, so the iso artifact actually appears.
	iso, ok := recipe.Graph.Get(domain.NewInternedString("iso"))
	require.True(t, ok)
	assert.Contains(t, iso.Action, "ISOIMAGE="+filepath.Base(iso.Artifact.String()))
	assert.Contains(t, image.Prerequisites, iso.Name)
}

func TestLoad_MissingPrerequisite(t *testing.T) {
	_, err := load(t, `
version: "1"
targets:
  iso:
    action: ["make", "iso"]
    prerequisites: ["missing"]
`)
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrMissingPrerequisite)

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok)
	assert.Equal(t, "missing", zErr.Metadata()["prerequisite"])
}

func TestLoad_ReservedTargetName(t *testing.T) {
	_, err := load(t, `
version: "1"
targets:
  all:
    action: ["echo", "hello"]
`)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReservedTargetName)
}

func TestLoad_CleanAsPrerequisite(t *testing.T) {
	_, err := load(t, `
version: "1"
clean: clean
targets:
  iso:
    action: ["make", "iso"]
    prerequisites: ["clean"]
  clean:
    action: ["make", "clean"]
`)
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrCleanAsPrerequisite)

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok)
	assert.Equal(t, "iso", zErr.Metadata()["target"])
}

func TestLoad_DefaultNotDeclared(t *testing.T) {
	_, err := load(t, `
version: "1"
default: iso
targets:
  base:
    action: ["fetch", "base"]
`)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTargetNotFound)
}

func TestLoad_MissingFile(t *testing.T) {
	loader := config.NewLoader(logger.New())
	_, err := loader.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRecipeReadFailed)
}

func TestLoad_MalformedYAML(t *testing.T) {
	_, err := load(t, "targets: [not, a, mapping]")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRecipeParseFailed)
}
