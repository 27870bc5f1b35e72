package roomview

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the viewer-facing settings: which room model to show, how it's placed, and how
// drag translation maps to rotation. It round-trips through YAML.
type Config struct {
	// ModelPath points at the glTF room model to load. Empty means the host shows its
	// built-in placeholder room.
	ModelPath string `yaml:"model_path,omitempty"`

	// RoomNode names the scene node the drag gestures reorient.
	RoomNode string `yaml:"room_node"`

	// Sensitivity is the rotation applied per unit of drag translation, in degrees. Must be > 0.
	Sensitivity float64 `yaml:"sensitivity"`

	// Placement selects the presentation mode: "tracked" or "fixed".
	Placement string `yaml:"placement"`

	// Anchor is the world position of the tracked anchor, used when Placement is "tracked".
	Anchor [3]float64 `yaml:"anchor,omitempty"`

	// Offset is the fixed world offset, used when Placement is "fixed".
	Offset [3]float64 `yaml:"offset,omitempty"`

	// Width and Height size the host window.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// FocusNodes names the scene nodes the host will reference at runtime (material swap
	// targets and the like); they are preflighted against the model's inventory on startup.
	FocusNodes []string `yaml:"focus_nodes,omitempty"`
}

// DefaultConfig returns the settings the viewer runs with when no config file is present:
// a fixed placement two meters in front of the viewer and a half-degree-per-point sensitivity.
func DefaultConfig() Config {
	return Config{
		RoomNode:    "Room",
		Sensitivity: DefaultSensitivity,
		Placement:   "fixed",
		Offset:      [3]float64{0, 0, -2},
		Width:       796,
		Height:      448,
	}
}

// LoadConfig reads a Config from the YAML file at the given path, applying defaults for
// anything the file leaves unset, and validates it.
func LoadConfig(path string) (Config, error) {

	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("config %s: %w", path, err)
	}

	return config, nil

}

// Validate reports the first invalid setting in the Config, or nil if it's usable.
func (config Config) Validate() error {
	if config.Sensitivity <= 0 {
		return fmt.Errorf("sensitivity must be > 0, got %v", config.Sensitivity)
	}
	if config.Placement != "tracked" && config.Placement != "fixed" {
		return fmt.Errorf("placement must be %q or %q, got %q", "tracked", "fixed", config.Placement)
	}
	if config.Width <= 0 || config.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", config.Width, config.Height)
	}
	return nil
}

// PlacementValue builds the Placement the Config describes.
func (config Config) PlacementValue() Placement {
	if config.Placement == "tracked" {
		return NewTrackedPlacement(NewVector3(config.Anchor[0], config.Anchor[1], config.Anchor[2]))
	}
	return NewFixedPlacement(NewVector3(config.Offset[0], config.Offset[1], config.Offset[2]))
}
