package config

// TAPConfig describes the TAP numbering convention
type TAPConfig struct {
	Ceiling    int `yaml:"ceiling" validate:"gt=0"`
	BlockSize  int `yaml:"blockSize" validate:"gt=0"`
	BlockFloor int `yaml:"blockFloor" validate:"gte=0,ltfield=BlockSize"`
}

// PseudoTAPConfig describes the id band and placement of pseudo-TAPs
type PseudoTAPConfig struct {
	Start    int     `yaml:"start" validate:"gt=0"`
	Capacity int     `yaml:"capacity" validate:"gt=0"`
	Offset   float64 `yaml:"offset"` // added to both x and y
}

// WalkLinkConfig contains the tags written on pseudo-TAP to stop links
type WalkLinkConfig struct {
	Mode   string  `yaml:"mode" validate:"required,excludesall=0x2C"`
	Weight float64 `yaml:"weight" validate:"gte=0"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	TAP       TAPConfig       `yaml:"tap"`
	PseudoTAP PseudoTAPConfig `yaml:"pseudoTap"`
	WalkLink  WalkLinkConfig  `yaml:"walkLink"`
}

// Default returns the standard network configuration
func Default() AppConfig {
	return AppConfig{
		TAP: TAPConfig{
			Ceiling:    900000,
			BlockSize:  100000,
			BlockFloor: 90000,
		},
		// externals own 900001-901000
		PseudoTAP: PseudoTAPConfig{
			Start:    901001,
			Capacity: 1000,
			Offset:   7,
		},
		WalkLink: WalkLinkConfig{
			Mode:   "TRWALK",
			Weight: 1.0,
		},
	}
}
