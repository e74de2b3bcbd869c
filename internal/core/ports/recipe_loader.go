package ports

import "github.com/forgebsd/isoforge/internal/core/domain"

// RecipeLoader defines the interface for loading the build recipe.
//
//go:generate mockgen -source=recipe_loader.go -destination=mocks/mock_recipe_loader.go -package=mocks
type RecipeLoader interface {
	// Load reads the recipe file at the given path and returns the target
	// graph together with its layout and run metadata.
	Load(path string) (*domain.Recipe, error)
}
