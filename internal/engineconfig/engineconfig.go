package engineconfig

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EngineConfigPath is the default path to the config file, relative to the process working directory.
const EngineConfigPath = "config/merrygoround.yaml"

// Window holds window and frame-buffer settings.
type Window struct {
	Width      int32      `yaml:"width"`
	Height     int32      `yaml:"height"`
	Title      string     `yaml:"title"`
	TargetFPS  int32      `yaml:"target_fps"`
	ClearColor [3]float32 `yaml:"clear_color"`
}

// Camera holds the starting camera and how far one key press moves or turns it.
type Camera struct {
	Eye         [3]float32 `yaml:"eye"`
	Look        [3]float32 `yaml:"look"`
	Up          [3]float32 `yaml:"up"`
	FovY        float32    `yaml:"fovy"`
	Near        float32    `yaml:"near"`
	Far         float32    `yaml:"far"`
	MoveStep    float32    `yaml:"move_step"`
	TurnDegrees float32    `yaml:"turn_degrees"`
}

// Animation controls the carousel clock. WorldPosition must hold three numbers to take
// effect; any other length leaves the carousel at the origin.
type Animation struct {
	TimeStep      float32   `yaml:"time_step"`
	WorldPosition []float32 `yaml:"world_position"`
	BobFrequency  float32   `yaml:"bob_frequency"`
}

// Debug holds overlay toggles.
type Debug struct {
	ShowFPS      bool `yaml:"show_fps"`
	ShowMemAlloc bool `yaml:"show_memalloc"`
	ShowClock    bool `yaml:"show_clock"`
}

// Log holds logging settings.
type Log struct {
	Level string `yaml:"level"`
	Dir   string `yaml:"dir"`
}

// EnginePrefs holds everything read from the config file. Persisted across runs.
type EnginePrefs struct {
	Window    Window    `yaml:"window"`
	Camera    Camera    `yaml:"camera"`
	Animation Animation `yaml:"animation"`
	Debug     Debug     `yaml:"debug"`
	Log       Log       `yaml:"log"`
}

// Default returns the preferences that reproduce the stock amusement park scene.
func Default() EnginePrefs {
	return EnginePrefs{
		Window: Window{
			Width:      1024,
			Height:     768,
			Title:      "Merry-Go-Round",
			TargetFPS:  60,
			ClearColor: [3]float32{1, 1, 0.5},
		},
		Camera: Camera{
			Eye:         [3]float32{-3, 3, -3},
			Look:        [3]float32{6, 0, 6},
			Up:          [3]float32{0, 1, 0},
			FovY:        60,
			Near:        0.1,
			Far:         100,
			MoveStep:    0.1,
			TurnDegrees: 2,
		},
		Animation: Animation{
			TimeStep:      0.8,
			WorldPosition: []float32{6, 0, 6},
			BobFrequency:  0.03,
		},
		Log: Log{
			Level: "info",
			Dir:   "logs",
		},
	}
}

// Load reads preferences from path. Values absent from the file keep their defaults. If the
// file is missing or invalid, returns Default() and does not create a file; the error is
// returned only for an unreadable existing file so the caller can log it.
func Load(path string) (EnginePrefs, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return p, err
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	return p, nil
}

// Save writes preferences to path, creating the directory if needed.
func Save(path string, p EnginePrefs) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Update loads the preferences at path, applies fn and writes them back. Settings the
// running program never touches are preserved.
func Update(path string, fn func(*EnginePrefs)) error {
	p, err := Load(path)
	if err != nil {
		return err
	}
	fn(&p)
	return Save(path, p)
}
