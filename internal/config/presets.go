package config

var Presets = map[string]*Config{
	"smoke": {
		Rows: 64, Cols: 64, Iterations: 10,
		Tolerance: DefaultTolerance, OutDir: DefaultOutDir,
	},
	"small": {
		Rows: 256, Cols: 256, Iterations: 500,
		Tolerance: DefaultTolerance, OutDir: DefaultOutDir,
	},
	"standard": {
		Rows: 1000, Cols: 1000, Iterations: 2000,
		Tolerance: DefaultTolerance, OutDir: DefaultOutDir,
	},
	"large": {
		Rows: 4000, Cols: 4000, Iterations: 1000,
		Tolerance: DefaultTolerance, OutDir: DefaultOutDir,
	},
	"tall": {
		Rows: 4000, Cols: 500, Iterations: 1000,
		Tolerance: DefaultTolerance, OutDir: DefaultOutDir,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	clone := *cfg
	return &clone
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
