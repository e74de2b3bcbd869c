package config

import "gopkg.in/yaml.v3"

// Recipefile represents the structure of the isoforge.yaml recipe file.
type Recipefile struct {
	Version  string            `yaml:"version"`
	Default  string            `yaml:"default"`
	Clean    string            `yaml:"clean"`
	WorkDir  string            `yaml:"workdir"`
	Packages string            `yaml:"packages"`
	Output   string            `yaml:"output"`
	Vars     map[string]string `yaml:"vars"`
	Staging  StagingDTO        `yaml:"staging"`
	Targets  TargetList        `yaml:"targets"`
}

// StagingDTO names the custom-files source tree and its render destination.
type StagingDTO struct {
	Source string `yaml:"source"`
	Dest   string `yaml:"dest"`
}

// TargetDTO represents a target definition in the recipe.
type TargetDTO struct {
	Name          string            `yaml:"-"`
	Artifact      string            `yaml:"artifact"`
	Action        []string          `yaml:"action"`
	Prerequisites []string          `yaml:"prerequisites"`
	Tolerant      bool              `yaml:"tolerant"`
	Always        bool              `yaml:"always"`
	Environment   map[string]string `yaml:"environment"`
	WorkingDir    string            `yaml:"workingDir"`
}

// TargetList is a YAML mapping of target name to definition that preserves
// document order. Order matters: it fixes the execution order of "all" and
// of prerequisite ties.
type TargetList []TargetDTO

// UnmarshalYAML decodes the targets mapping without losing key order.
func (l *TargetList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return &yaml.TypeError{Errors: []string{"targets must be a mapping"}}
	}

	targets := make(TargetList, 0, len(node.Content)/2)
	for i := 0; i < len(node.Content); i += 2 {
		var dto TargetDTO
		if err := node.Content[i+1].Decode(&dto); err != nil {
			return err
		}
		dto.Name = node.Content[i].Value
		targets = append(targets, dto)
	}

	*l = targets
	return nil
}
