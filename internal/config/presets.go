package config

import "sort"

var Presets = map[string]*Config{
	"demo": {
		Size: 10, Generations: 10, Theme: "retro", FrameRate: DefaultFrameRate,
	},
	"pulse": {
		Initial: "0,0,1,0,0", Size: 5, Generations: 4, Theme: "ocean", FrameRate: 4,
	},
	"edges": {
		Initial: "1,0,0,0,1", Size: 5, Generations: 4, Theme: "sunset", FrameRate: 4,
	},
	"blinker": {
		Initial: "1,0,1", Size: 3, Generations: 6, Theme: "minimal", FrameRate: 4,
	},
	"wide": {
		Size: 64, Generations: 32, StopWhenStable: true, Theme: "cyberpunk", FrameRate: 12,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
