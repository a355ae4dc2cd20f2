package cmd

import "github.com/arl/fieldcenter/center"

// Settings is the on-disk YAML shape for `fieldcenter generate`: the
// center/headland/GA tunables plus the handful of parameters the OBJ
// loader needs that aren't recoverable from geometry alone.
type Settings struct {
	Width         float32               `yaml:"width"`
	NFieldPasses  int                   `yaml:"nFieldPasses"`
	CircleStart   int                   `yaml:"circleStart"`
	CircleStep    int                   `yaml:"circleStep"`
	Seed          int64                 `yaml:"seed"`
	Center        center.CenterSettings `yaml:"center"`
	Headland      center.HeadlandSettings `yaml:"headland"`
	GA            center.GASettings     `yaml:"ga"`
}

// DefaultSettings returns a Settings prefilled with the package
// defaults for a single-pass headland and a best-angle UP_DOWN search.
func DefaultSettings() Settings {
	return Settings{
		Width:        4,
		NFieldPasses: 1,
		CircleStart:  0,
		CircleStep:   1,
		Seed:         1,
		Center:       center.DefaultCenterSettings(),
		Headland:     center.HeadlandSettings{NPasses: 1},
		GA:           center.DefaultGASettings(),
	}
}
