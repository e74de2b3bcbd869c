package domain

import "go.trai.ch/zerr"

var (
	// ErrTargetAlreadyExists is returned when attempting to add a target with a name that already exists.
	ErrTargetAlreadyExists = zerr.New("target already exists")

	// ErrMissingPrerequisite is returned when a target references a prerequisite that doesn't exist in the graph.
	ErrMissingPrerequisite = zerr.New("missing prerequisite")

	// ErrCycleDetected is returned when a cycle is detected in the prerequisite graph.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrTargetNotFound is returned when a requested target is not found in the graph.
	ErrTargetNotFound = zerr.New("target not found")

	// ErrNoDefaultTarget is returned when a run names no targets and the recipe declares no default.
	ErrNoDefaultTarget = zerr.New("no targets specified and recipe declares no default")

	// ErrReservedTargetName is returned when a target uses the reserved name "all".
	ErrReservedTargetName = zerr.New("target name 'all' is reserved")

	// ErrCleanAsPrerequisite is returned when the clean target is listed as a prerequisite;
	// cleanup must stay independent of the build graph.
	ErrCleanAsPrerequisite = zerr.New("clean target cannot be a prerequisite")

	// ErrActionFailed is returned when a fatal action exits non-zero. The run halts.
	ErrActionFailed = zerr.New("action failed")

	// ErrRunFailed wraps the first fatal error of a run for the CLI exit path.
	ErrRunFailed = zerr.New("run failed")

	// ErrRecipeReadFailed is returned when the recipe file cannot be read.
	ErrRecipeReadFailed = zerr.New("failed to read recipe file")

	// ErrRecipeParseFailed is returned when the recipe file cannot be parsed.
	ErrRecipeParseFailed = zerr.New("failed to parse recipe file")

	// ErrJournalReadFailed is returned when the run journal cannot be read.
	ErrJournalReadFailed = zerr.New("failed to read run journal")

	// ErrJournalWriteFailed is returned when the run journal cannot be written.
	ErrJournalWriteFailed = zerr.New("failed to write run journal")

	// ErrArtifactStatFailed is returned when an artifact path cannot be stated.
	ErrArtifactStatFailed = zerr.New("failed to stat artifact")

	// ErrStagingFailed is returned when rendering the custom-files staging tree fails.
	ErrStagingFailed = zerr.New("failed to stage custom files")
)
