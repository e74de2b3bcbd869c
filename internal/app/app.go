// Package app implements the application layer for isoforge.
package app

import (
	"context"
	"errors"

	"github.com/forgebsd/isoforge/internal/adapters/staging"
	"github.com/forgebsd/isoforge/internal/core/domain"
	"github.com/forgebsd/isoforge/internal/core/ports"
	"github.com/forgebsd/isoforge/internal/engine/runner"
)

// App represents the main application logic.
type App struct {
	loader    ports.RecipeLoader
	runner    *runner.Runner
	stager    *staging.Renderer
	journal   ports.RunJournal
	logger    ports.Logger
	telemetry ports.Telemetry

	recipePath string
}

// New creates a new App instance.
func New(
	loader ports.RecipeLoader,
	run *runner.Runner,
	stager *staging.Renderer,
	journal ports.RunJournal,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		loader:     loader,
		runner:     run,
		stager:     stager,
		journal:    journal,
		logger:     logger,
		telemetry:  telemetry,
		recipePath: domain.RecipeFileName,
	}
}

// SetRecipePath overrides the default recipe file location.
func (a *App) SetRecipePath(path string) {
	if path != "" {
		a.recipePath = path
	}
}

// Run brings the named targets up to date. With no names it runs the
// recipe's default target; the reserved name "all" expands to every target
// except the clean target.
func (a *App) Run(ctx context.Context, targetNames []string) error {
	recipe, err := a.loader.Load(a.recipePath)
	if err != nil {
		return err
	}

	names, err := resolveTargetNames(recipe, targetNames)
	if err != nil {
		return err
	}

	// Custom files are staged before any action runs, so targets that bundle
	// them always see the rendered tree.
	if err := a.stager.Render(ctx, recipe.Staging, recipe.Vars); err != nil {
		return err
	}

	if err := a.runner.Run(ctx, recipe, names); err != nil {
		return errors.Join(domain.ErrRunFailed, err)
	}

	return nil
}

// Clean executes the recipe's clean target and discards the run journal, so
// the next run rebuilds from scratch.
func (a *App) Clean(ctx context.Context) error {
	recipe, err := a.loader.Load(a.recipePath)
	if err != nil {
		return err
	}

	if recipe.Clean.String() == "" {
		return domain.ErrTargetNotFound
	}

	if err := a.runner.Run(ctx, recipe, []string{recipe.Clean.String()}); err != nil {
		return errors.Join(domain.ErrRunFailed, err)
	}

	return a.journal.Reset()
}

// Stage renders the recipe's custom-file templates without running any
// target. Overrides shadow recipe variables of the same name.
func (a *App) Stage(ctx context.Context, overrides map[string]string) error {
	recipe, err := a.loader.Load(a.recipePath)
	if err != nil {
		return err
	}

	vars := recipe.Vars
	if len(overrides) > 0 {
		vars = make(map[string]string, len(recipe.Vars)+len(overrides))
		for k, v := range recipe.Vars {
			vars[k] = v
		}
		for k, v := range overrides {
			vars[k] = v
		}
	}

	return a.stager.Render(ctx, recipe.Staging, vars)
}

// Recipe loads and returns the recipe, for inspection commands.
func (a *App) Recipe() (*domain.Recipe, error) {
	return a.loader.Load(a.recipePath)
}

// Close flushes the telemetry session.
func (a *App) Close() error {
	return a.telemetry.Close()
}

// resolveTargetNames maps the caller's target names onto concrete recipe
// targets.
func resolveTargetNames(recipe *domain.Recipe, targetNames []string) ([]string, error) {
	if len(targetNames) == 0 {
		if recipe.Default.String() == "" {
			return nil, domain.ErrNoDefaultTarget
		}
		return []string{recipe.Default.String()}, nil
	}

	names := make([]string, 0, len(targetNames))
	for _, name := range targetNames {
		if name == domain.ReservedAllName {
			names = append(names, recipe.AllTargets()...)
			continue
		}
		names = append(names, name)
	}
	return names, nil
}
