// Package runner implements the sequential target graph runner.
package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/forgebsd/isoforge/internal/core/domain"
	"github.com/forgebsd/isoforge/internal/core/ports"
	"go.trai.ch/zerr"
)

// TargetStatus represents the status of a target during a run.
type TargetStatus string

const (
	// StatusPending indicates the target has not been visited yet.
	StatusPending TargetStatus = "Pending"
	// StatusSatisfying indicates the target's prerequisites are being resolved.
	StatusSatisfying TargetStatus = "Satisfying"
	// StatusRunning indicates the target's action is executing.
	StatusRunning TargetStatus = "Running"
	// StatusDone indicates the target finished successfully.
	StatusDone TargetStatus = "Done"
	// StatusFailed indicates the target's action failed fatally.
	StatusFailed TargetStatus = "Failed"
	// StatusSkipped indicates the target's artifact was already fresh.
	StatusSkipped TargetStatus = "Skipped"
)

// Runner resolves targets depth-first and executes stale actions one at a
// time. Execution is strictly sequential: targets share mount points and
// device nodes, so there is no parallel scheduling by design.
type Runner struct {
	executor  ports.Executor
	stat      ports.ArtifactStat
	hasher    ports.ActionHasher
	journal   ports.RunJournal
	logger    ports.Logger
	telemetry ports.Telemetry
}

// NewRunner creates a new Runner with the given collaborators.
func NewRunner(
	executor ports.Executor,
	stat ports.ArtifactStat,
	hasher ports.ActionHasher,
	journal ports.RunJournal,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *Runner {
	return &Runner{
		executor:  executor,
		stat:      stat,
		hasher:    hasher,
		journal:   journal,
		logger:    logger,
		telemetry: telemetry,
	}
}

// Run satisfies the named targets against the recipe graph.
// Prerequisites are satisfied before their dependents, in declaration
// order; each target is visited at most once. The first fatal action
// failure aborts the whole run.
func (r *Runner) Run(ctx context.Context, recipe *domain.Recipe, targetNames []string) error {
	if err := recipe.Graph.Validate(); err != nil {
		return err
	}

	state := &runState{
		r:      r,
		recipe: recipe,
		status: make(map[domain.InternedString]TargetStatus, recipe.Graph.TargetCount()),
	}

	for _, name := range targetNames {
		interned := domain.NewInternedString(name)
		if _, ok := recipe.Graph.Get(interned); !ok {
			return zerr.With(domain.ErrTargetNotFound, "target", name)
		}
		if err := state.satisfy(ctx, interned); err != nil {
			return err
		}
	}

	return nil
}

type runState struct {
	r      *Runner
	recipe *domain.Recipe
	status map[domain.InternedString]TargetStatus
}

// satisfy brings a single target up to date, recursing into its
// prerequisites first.
func (st *runState) satisfy(ctx context.Context, name domain.InternedString) error {
	switch st.status[name] {
	case StatusDone, StatusSkipped:
		return nil
	case StatusSatisfying, StatusRunning:
		// Unreachable after Graph.Validate, kept as a guard against
		// graphs mutated between validation and execution.
		return zerr.With(domain.ErrCycleDetected, "target", name.String())
	case StatusFailed:
		return zerr.With(domain.ErrActionFailed, "target", name.String())
	}
	st.status[name] = StatusSatisfying

	target, _ := st.recipe.Graph.Get(name)
	for _, pre := range target.Prerequisites {
		if err := st.satisfy(ctx, pre); err != nil {
			return err
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	stale, err := st.isStale(&target)
	if err != nil {
		st.status[name] = StatusFailed
		return err
	}
	if !stale {
		st.status[name] = StatusSkipped
		_, vtx := st.r.telemetry.Record(ctx, name.String())
		vtx.Cached()
		vtx.Complete(nil)
		return nil
	}

	return st.run(ctx, &target)
}

// isStale decides whether a target's action must run.
func (st *runState) isStale(target *domain.Target) (bool, error) {
	if target.Always || !target.HasArtifact() {
		return true, nil
	}

	mtime, exists, err := st.r.stat.Stat(target.Artifact.String())
	if err != nil {
		return false, zerr.With(
			zerr.Wrap(err, domain.ErrArtifactStatFailed.Error()),
			"artifact", target.Artifact.String(),
		)
	}
	if !exists {
		return true, nil
	}

	newer, err := st.prerequisiteNewerThan(target, mtime)
	if err != nil {
		return false, err
	}
	if newer {
		return true, nil
	}

	// A fresh artifact still goes stale when the recipe's command for it
	// changed since the journaled run.
	info, err := st.r.journal.Get(target.Name.String())
	if err != nil {
		return false, zerr.Wrap(err, domain.ErrJournalReadFailed.Error())
	}
	if info == nil || info.ActionHash != st.r.hasher.HashAction(target) {
		return true, nil
	}
	// The journal entry describes the artifact it was written for. A
	// different mtime means the file was replaced since that run, so its
	// provenance is unknown.
	if !info.ArtifactMtime.IsZero() && !info.ArtifactMtime.Equal(mtime) {
		return true, nil
	}

	return false, nil
}

// prerequisiteNewerThan reports whether any prerequisite artifact is newer
// than the given modification time. Prerequisites without an artifact (or
// whose artifact is absent) contribute nothing to the comparison.
func (st *runState) prerequisiteNewerThan(target *domain.Target, mtime time.Time) (bool, error) {
	for _, pre := range target.Prerequisites {
		preTarget, ok := st.recipe.Graph.Get(pre)
		if !ok || !preTarget.HasArtifact() {
			continue
		}
		preMtime, exists, err := st.r.stat.Stat(preTarget.Artifact.String())
		if err != nil {
			return false, zerr.With(
				zerr.Wrap(err, domain.ErrArtifactStatFailed.Error()),
				"artifact", preTarget.Artifact.String(),
			)
		}
		if exists && preMtime.After(mtime) {
			return true, nil
		}
	}
	return false, nil
}

// run executes a stale target's action and records the outcome.
func (st *runState) run(ctx context.Context, target *domain.Target) error {
	name := target.Name.String()
	st.status[target.Name] = StatusRunning
	st.r.logger.Info(fmt.Sprintf("running %s", name))

	vctx, vtx := st.r.telemetry.Record(ctx, name)
	err := st.r.executor.Execute(vctx, target, vtx.Stdout(), vtx.Stderr())
	if err != nil {
		if target.Tolerant {
			st.r.logger.Warn(fmt.Sprintf("%s: action failed, tolerated: %v", name, err))
			vtx.Complete(nil)
			st.status[target.Name] = StatusDone
			return nil
		}
		vtx.Complete(err)
		st.status[target.Name] = StatusFailed
		return zerr.With(zerr.Wrap(err, domain.ErrActionFailed.Error()), "target", name)
	}
	vtx.Complete(nil)
	st.status[target.Name] = StatusDone

	if target.HasArtifact() && !target.Always {
		info := domain.RunInfo{
			TargetName: name,
			ActionHash: st.r.hasher.HashAction(target),
			Timestamp:  time.Now(),
		}
		if mtime, exists, statErr := st.r.stat.Stat(target.Artifact.String()); statErr == nil && exists {
			info.ArtifactMtime = mtime
		}
		if err := st.r.journal.Put(info); err != nil {
			// A stale journal only costs a spurious re-run next time.
			st.r.logger.Warn(fmt.Sprintf("%s: failed to journal run: %v", name, err))
		}
	}

	return nil
}
