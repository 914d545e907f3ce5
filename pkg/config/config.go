// Package config loads the tuning for the drive and arm controllers.
package config

import (
	"io/ioutil"
	"os"
	"time"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"

	"github.com/tigerbot-team/tigerbot/go-motion/pkg/arm"
	"github.com/tigerbot-team/tigerbot/go-motion/pkg/drive"
)

const DefaultPath = "/cfg/motion.yaml"

type Config struct {
	// TickInterval is the control period; 20ms is 50Hz.
	TickInterval time.Duration `yaml:"tick_interval"`
	Drive        drive.Config  `yaml:"drive"`
	Arm          arm.Config    `yaml:"arm"`
}

func Default() Config {
	return Config{
		TickInterval: 20 * time.Millisecond,
		Drive:        drive.DefaultConfig(),
		Arm:          arm.DefaultConfig(),
	}
}

// Load reads a YAML file over the defaults, so the file only needs to hold
// the values being changed.  A missing file gives the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := ioutil.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	} else if err != nil {
		return Config{}, errors.Wrapf(err, "reading config %s", path)
	}
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "parsing config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Save writes out the config in use.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return errors.Wrap(err, "marshalling config")
	}
	return errors.Wrapf(ioutil.WriteFile(path, data, 0666), "writing config %s", path)
}

func (c Config) Validate() error {
	if c.TickInterval <= 0 {
		return errors.Errorf("tick_interval must be positive, not %v", c.TickInterval)
	}

	d := c.Drive
	for name, v := range map[string]float64{
		"drive.speed":               d.Speed,
		"drive.follow_tolerance":    d.FollowTolerance,
		"drive.arrival_tolerance":   d.ArrivalTolerance,
		"drive.angle_tolerance_deg": d.AngleToleranceDeg,
		"drive.max_turn_rate":       d.MaxTurnRate,
		"arm.speed":                 c.Arm.Speed,
		"arm.stop_tolerance":        c.Arm.StopTolerance,
		"arm.start_tolerance":       c.Arm.StartTolerance,
		"arm.follow_tolerance":      c.Arm.FollowTolerance,
	} {
		if !(v > 0) {
			return errors.Errorf("%s must be positive, not %v", name, v)
		}
	}
	if d.TurnGain < 0 {
		return errors.Errorf("drive.turn_gain must not be negative, not %v", d.TurnGain)
	}
	if d.ArrivalTolerance > d.FollowTolerance {
		return errors.Errorf("drive.arrival_tolerance (%v) must not exceed drive.follow_tolerance (%v)",
			d.ArrivalTolerance, d.FollowTolerance)
	}
	if c.Arm.StopTolerance >= c.Arm.StartTolerance {
		return errors.Errorf("arm.stop_tolerance (%v) must be smaller than arm.start_tolerance (%v)",
			c.Arm.StopTolerance, c.Arm.StartTolerance)
	}
	return nil
}
