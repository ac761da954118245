package harness

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/roach88/tally/internal/calc"
	"github.com/roach88/tally/internal/keymap"
)

// Scenario defines a conformance test scenario.
type Scenario struct {
	// Name uniquely identifies this scenario. It also names the golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// AngleMode is the initial angle mode. Defaults to deg.
	AngleMode string `yaml:"angle_mode,omitempty"`

	// Keys are extra key bindings (key to canonical token) layered over
	// the default table.
	Keys map[string]string `yaml:"keys,omitempty"`

	// Steps are pressed in order.
	Steps []Step `yaml:"steps"`

	// Final is checked against the state after the last step.
	Final *Expect `yaml:"final,omitempty"`
}

// Step presses one or more keys and optionally checks the result.
type Step struct {
	// Press is a single key or a list of keys.
	Press Keys `yaml:"press"`

	// Expect is checked after the last key of the step.
	Expect *Expect `yaml:"expect,omitempty"`
}

// Keys is a list of keys that also accepts a single scalar in YAML.
type Keys []string

// UnmarshalYAML accepts `press: 7` as well as `press: [7, "+"]`.
func (k *Keys) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*k = Keys{node.Value}
		return nil
	case yaml.SequenceNode:
		keys := make(Keys, 0, len(node.Content))
		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: press entries must be scalars", item.Line)
			}
			keys = append(keys, item.Value)
		}
		*k = keys
		return nil
	}
	return fmt.Errorf("line %d: press must be a key or a list of keys", node.Line)
}

// Expect is a subset match over the screen and the machine state. Nil
// fields are not checked.
type Expect struct {
	Display  *string  `yaml:"display,omitempty"`
	History  *string  `yaml:"history,omitempty"`
	Tier     *string  `yaml:"tier,omitempty"`
	Current  *string  `yaml:"current,omitempty"`
	Previous *string  `yaml:"previous,omitempty"`
	Operator *string  `yaml:"operator,omitempty"`
	Awaiting *bool    `yaml:"awaiting,omitempty"`
	Memory   *float64 `yaml:"memory,omitempty"`
	Angle    *string  `yaml:"angle_mode,omitempty"`
	Phase    *string  `yaml:"phase,omitempty"`
}

func (e *Expect) empty() bool {
	return e.Display == nil && e.History == nil && e.Tier == nil &&
		e.Current == nil && e.Previous == nil && e.Operator == nil &&
		e.Awaiting == nil && e.Memory == nil && e.Angle == nil && e.Phase == nil
}

var (
	validTiers  = map[string]bool{"default": true, "medium": true, "small": true}
	validPhases = map[string]bool{"entry": true, "result": true, "error": true, "operand": true, "right": true}
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(fs afero.Fs, path string) (*Scenario, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	return ParseScenario(data)
}

// ParseScenario parses scenario YAML from memory.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// LoadDir loads every *.yaml and *.yml scenario in dir, sorted by path.
func LoadDir(fs afero.Fs, dir string) ([]*Scenario, error) {
	var paths []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := afero.Glob(fs, filepath.Join(dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("glob %s: %w", pattern, err)
		}
		paths = append(paths, matches...)
	}
	sort.Strings(paths)

	scenarios := make([]*Scenario, 0, len(paths))
	for _, path := range paths {
		s, err := LoadScenario(fs, path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.AngleMode != "" {
		if _, err := calc.ParseAngleMode(s.AngleMode); err != nil {
			return err
		}
	}

	if _, err := keymap.New(s.Keys); err != nil {
		return fmt.Errorf("keys: %w", err)
	}

	if len(s.Steps) == 0 {
		return fmt.Errorf("at least one step is required")
	}

	for i, step := range s.Steps {
		if len(step.Press) == 0 {
			return fmt.Errorf("steps[%d]: press is required", i)
		}
		for _, key := range step.Press {
			if key == "" {
				return fmt.Errorf("steps[%d]: empty key", i)
			}
		}
		if step.Expect != nil {
			if err := validateExpect(step.Expect); err != nil {
				return fmt.Errorf("steps[%d]: %w", i, err)
			}
		}
	}

	if s.Final != nil {
		if err := validateExpect(s.Final); err != nil {
			return fmt.Errorf("final: %w", err)
		}
	}

	return nil
}

func validateExpect(e *Expect) error {
	if e.empty() {
		return fmt.Errorf("expect must name at least one field")
	}
	if e.Tier != nil && !validTiers[*e.Tier] {
		return fmt.Errorf("unknown tier %q", *e.Tier)
	}
	if e.Phase != nil && !validPhases[*e.Phase] {
		return fmt.Errorf("unknown phase %q", *e.Phase)
	}
	if e.Operator != nil && *e.Operator != "" {
		if _, err := calc.ParseOperator(*e.Operator); err != nil {
			return err
		}
	}
	if e.Angle != nil {
		if _, err := calc.ParseAngleMode(*e.Angle); err != nil {
			return err
		}
	}
	return nil
}
