// Package config provides the recipe loader for isoforge.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/forgebsd/isoforge/internal/core/domain"
	"github.com/forgebsd/isoforge/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.RecipeLoader = (*Loader)(nil)

// Loader implements ports.RecipeLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new recipe loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the recipe file at the given path and returns a domain.Recipe.
func (l *Loader) Load(path string) (*domain.Recipe, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, errors.Join(domain.ErrRecipeReadFailed, err)
	}

	var file Recipefile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Join(domain.ErrRecipeParseFailed, err)
	}

	root, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, errors.Join(domain.ErrRecipeReadFailed, err)
	}
	layout := buildLayout(root, &file)

	graph, err := buildGraph(&file, layout)
	if err != nil {
		return nil, err
	}

	recipe := &domain.Recipe{
		Graph:   graph,
		Default: domain.NewInternedString(file.Default),
		Clean:   domain.NewInternedString(file.Clean),
		Vars:    file.Vars,
		Staging: domain.StagingSpec{
			Source: layout.Resolve(file.Staging.Source),
			Dest:   layout.Resolve(file.Staging.Dest),
		},
		Layout: layout,
	}

	if err := validateNamedTargets(recipe, &file); err != nil {
		return nil, err
	}

	l.logger.Info(fmt.Sprintf("loaded recipe %s with %d targets", path, graph.TargetCount()))
	return recipe, nil
}

// buildGraph runs the two-pass translation from DTOs to the domain graph.
func buildGraph(file *Recipefile, layout domain.Layout) (*domain.Graph, error) {
	targetNames := make(map[string]bool, len(file.Targets))

	// First pass: collect all target names to verify prerequisites later.
	for _, dto := range file.Targets {
		targetNames[dto.Name] = true
	}

	// Second pass: validate and add to the graph in declaration order.
	g := domain.NewGraph()
	for _, dto := range file.Targets {
		if dto.Name == domain.ReservedAllName {
			return nil, zerr.With(domain.ErrReservedTargetName, "target", dto.Name)
		}

		for _, pre := range dto.Prerequisites {
			if !targetNames[pre] {
				return nil, zerr.With(
					zerr.With(domain.ErrMissingPrerequisite, "target", dto.Name),
					"prerequisite", pre,
				)
			}
			if file.Clean != "" && pre == file.Clean {
				return nil, zerr.With(
					zerr.With(domain.ErrCleanAsPrerequisite, "target", dto.Name),
					"prerequisite", pre,
				)
			}
		}

		workingDir := dto.WorkingDir
		if workingDir != "" {
			workingDir = layout.Resolve(workingDir)
		}

		target := domain.Target{
			Name:          domain.NewInternedString(dto.Name),
			Action:        dto.Action,
			Artifact:      domain.NewInternedString(layout.Resolve(dto.Artifact)),
			Prerequisites: domain.NewInternedStrings(dto.Prerequisites),
			Environment:   dto.Environment,
			WorkingDir:    domain.NewInternedString(workingDir),
			Tolerant:      dto.Tolerant,
			Always:        dto.Always,
		}

		if err := g.AddTarget(target); err != nil {
			return nil, err
		}
	}

	// Cyclic recipes are rejected at load time, not halfway into a run.
	if err := g.Validate(); err != nil {
		return nil, err
	}

	return g, nil
}

// validateNamedTargets checks that the default and clean names, when set,
// refer to targets the recipe declares.
func validateNamedTargets(recipe *domain.Recipe, file *Recipefile) error {
	if file.Default != "" {
		if _, ok := recipe.Graph.Get(recipe.Default); !ok {
			return zerr.With(domain.ErrTargetNotFound, "default", file.Default)
		}
	}
	if file.Clean != "" {
		if _, ok := recipe.Graph.Get(recipe.Clean); !ok {
			return zerr.With(domain.ErrTargetNotFound, "clean", file.Clean)
		}
	}
	return nil
}

// buildLayout resolves the recipe's path entries against the recipe's
// directory.
func buildLayout(root string, file *Recipefile) domain.Layout {
	layout := domain.Layout{
		Root:        root,
		JournalPath: domain.DefaultJournalPath(root),
	}
	layout.WorkDir = layout.Resolve(file.WorkDir)
	layout.PackagesDir = layout.Resolve(file.Packages)
	layout.Output = layout.Resolve(file.Output)
	return layout
}
