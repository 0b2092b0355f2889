package engineconfig

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// EngineConfigPath is the path to the engine config file, relative to the process working directory.
const EngineConfigPath = "config/engine.json"

// defaultTargetFPS caps the frame loop when the config does not say otherwise.
const defaultTargetFPS = 60

// EnginePrefs holds sandbox preferences (debug overlays, grid, scene choice).
// Persisted across runs. Scene files themselves are separate and live under
// assets/scenes/.
type EnginePrefs struct {
	ShowFPS      bool   `json:"show_fps"`
	ShowMemAlloc bool   `json:"show_memalloc"`
	GridVisible  bool   `json:"grid_visible"`
	ScenePath    string `json:"scene_path,omitempty"`
	TargetFPS    int32  `json:"target_fps,omitempty"`
}

// Default returns default preferences (debug overlays off, grid on, 60 FPS,
// built-in demo scene).
func Default() EnginePrefs {
	return EnginePrefs{
		ShowFPS:      false,
		ShowMemAlloc: false,
		GridVisible:  true,
		TargetFPS:    defaultTargetFPS,
	}
}

// Load reads preferences from config/engine.json. If the file is missing or
// invalid, returns Default() and does not create a file.
func Load() (EnginePrefs, error) {
	data, err := os.ReadFile(EngineConfigPath)
	if err != nil {
		return Default(), nil
	}
	var p EnginePrefs
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	if p.TargetFPS <= 0 {
		p.TargetFPS = defaultTargetFPS
	}
	return p, nil
}

// Save writes preferences to config/engine.json, creating the config
// directory if needed.
func Save(p EnginePrefs) error {
	dir := filepath.Dir(EngineConfigPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(EngineConfigPath, data, 0644)
}
