package domain

// ReservedAllName expands to every target except the clean target. It may
// not be declared as a target of its own.
const ReservedAllName = "all"

// Recipe is the loaded build recipe: the target graph plus the run metadata
// that surrounds it.
type Recipe struct {
	Graph *Graph

	// Default is the target run when the caller names none.
	Default InternedString

	// Clean is the cleanup target. It is excluded from "all" and is never a
	// prerequisite of another target.
	Clean InternedString

	// Vars are the template variables interpolated into staged custom files.
	Vars map[string]string

	// Staging describes the custom-files source tree and its destination in
	// the work directory. Zero value means the recipe stages nothing.
	Staging StagingSpec

	Layout Layout
}

// StagingSpec names the source directory of custom-file templates and the
// directory they are rendered into.
type StagingSpec struct {
	Source string
	Dest   string
}

// AllTargets returns the names of every target except the clean target,
// in execution order. Used to expand the reserved "all" name.
func (r *Recipe) AllTargets() []string {
	names := make([]string, 0, r.Graph.TargetCount())
	for t := range r.Graph.Walk() {
		if t.Name == r.Clean {
			continue
		}
		names = append(names, t.Name.String())
	}
	return names
}
