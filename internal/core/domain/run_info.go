package domain

import "time"

// RunInfo records the last successful run of a target.
// The action hash lets the runner re-run a target whose command or
// environment changed in the recipe even though its artifact looks fresh.
// ArtifactMtime is the modification time of the artifact that run produced;
// it binds the record to that exact file, so an artifact replaced outside a
// run reads as stale.
type RunInfo struct {
	TargetName    string    `json:"target_name,omitzero"`
	ActionHash    string    `json:"action_hash,omitzero"`
	ArtifactMtime time.Time `json:"artifact_mtime,omitzero"`
	Timestamp     time.Time `json:"timestamp,omitzero"`
}
