package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultScenariosFilepath is where `run --scenario` looks for presets
// unless overridden.
const DefaultScenariosFilepath = "scenarios.yaml"

// ScenariosFile is the top-level layout of scenarios.yaml.
type ScenariosFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Scenario is a named preset of simulation parameters.
type Scenario struct {
	Name                      string  `yaml:"name"`
	Berths                    int     `yaml:"berths"`
	Cranes                    int     `yaml:"cranes"`
	UnloadMinutesPerContainer float64 `yaml:"unload_minutes_per_container"`
	Input                     string  `yaml:"input"`
	Output                    string  `yaml:"output"`
}

// LoadScenario reads the presets file and returns the scenario with the
// given name.
func LoadScenario(path, name string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenarios file: %w", err)
	}

	var file ScenariosFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse scenarios file: %w", err)
	}

	for i := range file.Scenarios {
		if file.Scenarios[i].Name == name {
			return &file.Scenarios[i], nil
		}
	}
	return nil, fmt.Errorf("scenario %q not found in %s", name, path)
}
