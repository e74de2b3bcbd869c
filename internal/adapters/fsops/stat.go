// Package fsops provides filesystem-backed freshness checks and hashing.
package fsops

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/forgebsd/isoforge/internal/core/domain"
	"go.trai.ch/zerr"
)

// Stat implements ports.ArtifactStat using os.Stat.
type Stat struct{}

// NewStat creates a new artifact stat adapter.
func NewStat() *Stat {
	return &Stat{}
}

// Stat returns the modification time of the artifact at path.
// A missing artifact is not an error; it reports exists=false.
func (s *Stat) Stat(path string) (time.Time, bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, zerr.With(
			zerr.Wrap(err, domain.ErrArtifactStatFailed.Error()),
			"path", path,
		)
	}
	return info.ModTime(), true, nil
}
