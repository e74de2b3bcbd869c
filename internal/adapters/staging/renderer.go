// Package staging renders custom-file templates into the work tree.
package staging

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/forgebsd/isoforge/internal/core/domain"
	"github.com/forgebsd/isoforge/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Renderer walks a source tree and renders every file through text/template
// with the recipe's variables. The rendered tree mirrors the source layout.
type Renderer struct {
	logger ports.Logger
}

// NewRenderer creates a new staging renderer.
func NewRenderer(logger ports.Logger) *Renderer {
	return &Renderer{logger: logger}
}

// Render stages the source tree into its destination. Files render
// concurrently; directories are created up front so the workers never race
// on MkdirAll. Missing template variables are an error, not an empty string,
// so a typo in a customfile fails the stage instead of producing a broken
// image.
func (r *Renderer) Render(ctx context.Context, spec domain.StagingSpec, vars map[string]string) error {
	if spec.Source == "" {
		return nil
	}

	var files []string
	err := filepath.WalkDir(spec.Source, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(spec.Source, path)
		if err != nil {
			return err
		}

		if d.IsDir() {
			return os.MkdirAll(filepath.Join(spec.Dest, rel), domain.DirPerm)
		}

		files = append(files, rel)
		return nil
	})
	if err != nil {
		return errors.Join(domain.ErrStagingFailed, err)
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, rel := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return r.renderFile(spec, rel, vars)
		})
	}

	if err := g.Wait(); err != nil {
		return errors.Join(domain.ErrStagingFailed, err)
	}

	r.logger.Info(fmt.Sprintf("staged %d custom files", len(files)))
	return nil
}

// renderFile renders a single source file into the destination tree,
// preserving the source file's permission bits.
func (r *Renderer) renderFile(spec domain.StagingSpec, rel string, vars map[string]string) error {
	src := filepath.Join(spec.Source, rel)

	info, err := os.Stat(src)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat source file"), "path", src)
	}

	data, err := os.ReadFile(src) //nolint:gosec // path is under the recipe's staging source
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to read source file"), "path", src)
	}

	tmpl, err := template.New(rel).Option("missingkey=error").Parse(string(data))
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to parse template"), "path", src)
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, vars); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to render template"), "path", src)
	}

	dest := filepath.Join(spec.Dest, rel)
	if err := os.WriteFile(dest, []byte(out.String()), info.Mode().Perm()); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write staged file"), "path", dest)
	}

	return nil
}
