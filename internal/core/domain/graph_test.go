package domain_test

import (
	"testing"

	"github.com/forgebsd/isoforge/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
)

func addTarget(t *testing.T, g *domain.Graph, name string, prereqs ...string) {
	t.Helper()
	require.NoError(t, g.AddTarget(domain.Target{
		Name:          domain.NewInternedString(name),
		Action:        []string{"echo", name},
		Prerequisites: domain.NewInternedStrings(prereqs),
	}))
}

func TestGraph_AddDuplicate(t *testing.T) {
	g := domain.NewGraph()
	addTarget(t, g, "iso")

	err := g.AddTarget(domain.Target{Name: domain.NewInternedString("iso")})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTargetAlreadyExists)
}

func TestGraph_ValidateAcyclic(t *testing.T) {
	g := domain.NewGraph()
	addTarget(t, g, "base")
	addTarget(t, g, "mount", "base")
	addTarget(t, g, "packages", "mount")
	addTarget(t, g, "iso", "packages", "mount")

	require.NoError(t, g.Validate())
}

func TestGraph_ValidateCycle(t *testing.T) {
	g := domain.NewGraph()
	addTarget(t, g, "a", "c")
	addTarget(t, g, "b", "a")
	addTarget(t, g, "c", "b")

	err := g.Validate()
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrCycleDetected)

	// The error names the cycle path.
	zErr, ok := err.(*zerr.Error)
	require.True(t, ok)
	cycle, ok := zErr.Metadata()["cycle"].(string)
	require.True(t, ok)
	assert.Contains(t, cycle, "->")
}

func TestGraph_ValidateSelfCycle(t *testing.T) {
	g := domain.NewGraph()
	addTarget(t, g, "iso", "iso")

	err := g.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCycleDetected)
}

func TestGraph_ValidateDanglingPrerequisite(t *testing.T) {
	g := domain.NewGraph()
	addTarget(t, g, "iso", "missing")

	err := g.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingPrerequisite)
}

func TestGraph_WalkDeclarationOrder(t *testing.T) {
	g := domain.NewGraph()
	addTarget(t, g, "base")
	addTarget(t, g, "mount", "base")
	addTarget(t, g, "iso", "mount")
	addTarget(t, g, "clean")
	require.NoError(t, g.Validate())

	var names []string
	for target := range g.Walk() {
		names = append(names, target.Name.String())
	}
	assert.Equal(t, []string{"base", "mount", "iso", "clean"}, names)
}

func TestGraph_WalkEarlyStop(t *testing.T) {
	g := domain.NewGraph()
	addTarget(t, g, "base")
	addTarget(t, g, "iso")

	count := 0
	for range g.Walk() {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestGraph_Get(t *testing.T) {
	g := domain.NewGraph()
	addTarget(t, g, "iso")

	_, ok := g.Get(domain.NewInternedString("iso"))
	assert.True(t, ok)

	_, ok = g.Get(domain.NewInternedString("missing"))
	assert.False(t, ok)
}
