// Package config loads simulation defaults: a Settings struct with JSON
// defaults applied in code and an optional settings.json overlay.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Settings is the on-disk configuration for a recrystallization run.
type Settings struct {
	Simulation SimulationSettings `json:"simulation"`
	Server     ServerSettings     `json:"server"`
}

// SimulationSettings mirrors the external, user-facing run parameters.
type SimulationSettings struct {
	Nx             int     `json:"nx"`
	Ny             int     `json:"ny"`
	Nz             int     `json:"nz"`
	Dx             float64 `json:"dx"`
	Dy             float64 `json:"dy"`
	Dz             float64 `json:"dz"`
	NucleationRate float64 `json:"nucleationRate"`
	Neighborhood   int     `json:"neighborhood"`
	Seed           int64   `json:"seed"`
}

// ServerSettings configures the optional progress websocket server.
type ServerSettings struct {
	Port             int `json:"port"`
	UpdateIntervalMs int `json:"updateIntervalMs"`
}

// Default returns the built-in hard-coded fallback values.
func Default() Settings {
	return Settings{
		Simulation: SimulationSettings{
			Nx: 128, Ny: 128, Nz: 128,
			Dx: 0.25, Dy: 0.25, Dz: 0.25,
			NucleationRate: 0.0001,
			Neighborhood:   0,
		},
		Server: ServerSettings{
			Port:             8080,
			UpdateIntervalMs: 100,
		},
	}
}

// Load returns Default() overlaid with path's JSON contents, if it
// exists. A missing file is not an error; it falls back to defaults.
func Load(path string) (Settings, error) {
	settings := Default()

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&settings); err != nil {
		return settings, fmt.Errorf("config: error parsing %s: %w", path, err)
	}
	return settings, nil
}
