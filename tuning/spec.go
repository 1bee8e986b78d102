package tuning

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Spec holds every knob the demo exposes: integrator coefficients and the
// backdrop gradient colors. The embedded tuning.yaml provides the defaults;
// a tuning/tuning.yaml on disk overrides it for live iteration.
type Spec struct {
	Physics Physics `yaml:"physics"`
	Look    Look    `yaml:"look"`
}

type Physics struct {
	// PixelsPerMeter converts the 9.81 m/s² gravity constant to world units.
	PixelsPerMeter float64 `yaml:"pixels_per_meter"`
	// Drive is the horizontal force applied while a direction key is held.
	Drive float64 `yaml:"drive"`
	// JumpImpulse is added to vertical velocity on the jump frame, un-scaled
	// by dt so jump height does not depend on frame length.
	JumpImpulse    float64 `yaml:"jump_impulse"`
	HorizontalDrag float64 `yaml:"horizontal_drag"`
	VerticalDrag   float64 `yaml:"vertical_drag"`
	// AirControl attenuates horizontal input while airborne.
	AirControl float64 `yaml:"air_control"`
	// RunThreshold is the horizontal speed above which the running sprite is
	// shown. Strictly above: at exactly the threshold the idle sprite wins.
	RunThreshold float64 `yaml:"run_threshold"`
	// GroundFraction is the ground band height as a fraction of frame height.
	GroundFraction float64 `yaml:"ground_fraction"`
}

// Gravity is the vertical acceleration in world units/s², negative (Y up).
func (p Physics) Gravity() float64 {
	return -9.81 * p.PixelsPerMeter
}

type Look struct {
	SkyTop       *Color `yaml:"sky_top"`
	SkyBottom    *Color `yaml:"sky_bottom"`
	GroundTop    *Color `yaml:"ground_top"`
	GroundBottom *Color `yaml:"ground_bottom"`
}

// Default returns the spec matching the built-in constants; loaded yaml is
// unmarshalled on top of it so partial files only override what they name.
func Default() Spec {
	return Spec{
		Physics: Physics{
			PixelsPerMeter: 64,
			Drive:          1500,
			JumpImpulse:    350,
			HorizontalDrag: 8,
			VerticalDrag:   0.2,
			AirControl:     0.5,
			RunThreshold:   10,
			GroundFraction: 0.2,
		},
		Look: Look{
			SkyTop:       rgb(114, 177, 211),
			SkyBottom:    rgb(221, 236, 244),
			GroundTop:    rgb(170, 140, 72),
			GroundBottom: rgb(102, 91, 68),
		},
	}
}

// LoadSpec parses a tuning file from disk or the embedded defaults,
// overriding Default field by field.
func LoadSpec(filename string) (Spec, error) {
	data, err := Load(filename)
	if err != nil {
		return Spec{}, fmt.Errorf("tuning: load %s: %w", filename, err)
	}

	spec := Default()
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return Spec{}, fmt.Errorf("tuning: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

func rgb(r, g, b uint8) *Color {
	return &Color{Color: color.NRGBA{R: r, G: g, B: b, A: 255}}
}

// Color unmarshals "#rrggbb" or "#rrggbbaa" yaml scalars.
type Color struct {
	color.Color
}

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
