package utils

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jiaming2012/decision-sim/src/models"
)

// LoadSimulationParams overlays the yaml file at path onto the default
// params. An empty path returns the defaults. Unknown keys are rejected.
func LoadSimulationParams(path string) (models.SimulationParams, error) {
	params := models.DefaultSimulationParams()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return models.SimulationParams{}, fmt.Errorf("failed to read simulation params: %w", err)
		}

		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)

		if err := dec.Decode(&params); err != nil && !errors.Is(err, io.EOF) {
			return models.SimulationParams{}, fmt.Errorf("failed to unmarshal simulation params: %w", err)
		}
	}

	if err := params.Validate(); err != nil {
		return models.SimulationParams{}, fmt.Errorf("LoadSimulationParams: %w", err)
	}

	return params, nil
}
