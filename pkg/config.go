package qrgen

import (
	"os"
	"path/filepath"
)

type ServerConfig struct {
	DataDir string
	Bind    string
	Port    int
	UiDir   string
	Verbose bool
}

// AppConfig holds the user preferences that survive between runs.
// Persisted as a single JSON file via pkg/confdb.
type AppConfig struct {
	SavePath        string                 `json:"savePath"`
	FileType        string                 `json:"fileType"`
	BoxSize         int                    `json:"boxSize"`
	BorderSize      int                    `json:"borderSize"`
	ErrorCorrection string                 `json:"errorCorrection"`
	Style           string                 `json:"style"`
	ColorPresets    map[string]ColorPreset `json:"colorPresets"`
}

// ColorPreset is a named set of hex colors for the renderer.
type ColorPreset struct {
	Foreground     string `json:"fg"`
	Background     string `json:"bg"`
	GradientCenter string `json:"gradCenter,omitempty"`
	GradientEdge   string `json:"gradEdge,omitempty"`
}

func DefaultAppConfig() AppConfig {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return AppConfig{
		SavePath:        filepath.Join(home, "Downloads"),
		FileType:        ".png",
		BoxSize:         10,
		BorderSize:      4,
		ErrorCorrection: "H",
		Style:           "square",
		ColorPresets:    map[string]ColorPreset{},
	}
}
