package domain

// Target represents a named unit of work in the build recipe.
// It uses InternedString for fields that are frequently repeated to save memory.
type Target struct {
	Name InternedString

	// Action is the external command to run when the target is stale,
	// as an argv vector. An empty action means the target produces its
	// artifact through its prerequisites alone.
	Action []string

	// Artifact is the filesystem path (or device node) whose presence and
	// modification time signal completion. Empty means the target has no
	// artifact check and always runs.
	Artifact InternedString

	// Prerequisites are satisfied depth-first, in declaration order,
	// before the target itself is considered.
	Prerequisites []InternedString

	Environment map[string]string
	WorkingDir  InternedString

	// Tolerant marks the action as best-effort: a non-zero exit is logged
	// but does not halt the run. Used for mount-style actions that may
	// legitimately fail on re-runs.
	Tolerant bool

	// Always forces the action to run regardless of artifact freshness.
	Always bool
}

// HasArtifact reports whether the target carries an artifact check.
func (t *Target) HasArtifact() bool {
	return t.Artifact.String() != ""
}
