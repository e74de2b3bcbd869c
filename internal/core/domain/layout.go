package domain

import "path/filepath"

const (
	// ForgeDirName is the name of the internal metadata directory.
	ForgeDirName = ".isoforge"

	// JournalFileName is the name of the run journal file.
	JournalFileName = "journal.json"

	// RecipeFileName is the default name of the recipe file.
	RecipeFileName = "isoforge.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// Layout is the explicit registry of filesystem paths a run operates on.
// It is resolved once by the recipe loader and passed into the runner, so
// tests can redirect an entire run into a temporary directory.
type Layout struct {
	// Root is the directory containing the recipe file. All relative paths
	// in the recipe resolve against it.
	Root string

	// WorkDir holds fetched ISOs, the unpacked mfsbsd tree and the staged
	// custom files.
	WorkDir string

	// PackagesDir is the pkg fetch output directory bundled into the image.
	PackagesDir string

	// Output is the path of the final ISO artifact.
	Output string

	// JournalPath is the location of the run journal.
	JournalPath string
}

// DefaultJournalPath returns the journal location under the given root.
func DefaultJournalPath(root string) string {
	return filepath.Join(root, ForgeDirName, JournalFileName)
}

// Resolve joins a recipe-relative path with the layout root.
// Absolute paths pass through untouched.
func (l Layout) Resolve(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Clean(filepath.Join(l.Root, path))
}
