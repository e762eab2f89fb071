package main

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
	"honnef.co/go/mask"
)

const (
	CfgLogLevel       = "log.level"
	CfgLogFormat      = "log.format"
	CfgLogDevelopment = "log.development"
	CfgLogOutput      = "log.output"

	CfgChipName        = "chip.name"
	CfgChipWidth       = "chip.width"
	CfgChipHeight      = "chip.height"
	CfgChipFrame       = "chip.frame"
	CfgChipLabel       = "chip.label"
	CfgChipWafer       = "chip.wafer"
	CfgChipDate        = "chip.date"
	CfgChipArcSegments = "chip.arcSegments"

	CfgLayoutMarkers   = "layout.markers"
	CfgLayoutTestPads  = "layout.testPads"
	CfgLayoutDicing    = "layout.dicing"
	CfgLayoutAlignment = "layout.alignment"
	CfgLayoutVernier   = "layout.vernier"
	CfgLayoutHoles     = "layout.holes"
)

// Prefixes of the parameter records. The single-junction records live at
// the top level, the SQUID records below squid.
const (
	prefixPads          = "pads"
	prefixJunction      = "junction"
	prefixSquidPads     = "squid.pads"
	prefixSquidJunction = "squid.junction"
	prefixSquidLoop     = "squid.loop"
	prefixSingleArray   = "layout.single"
	prefixSquidArray    = "layout.squid"
)

// SetDefaults seeds v with the built-in layout: a 9000 µm chip holding a row
// of three single-junction transmons and a 3 × 2 array of SQUID transmons.
func SetDefaults(v *viper.Viper) {
	v.SetConfigName("maskgen")
	v.AddConfigPath(".")
	v.SetConfigType("toml")

	v.SetDefault(CfgLogLevel, "info")
	v.SetDefault(CfgLogFormat, "console")
	v.SetDefault(CfgLogDevelopment, false)
	v.SetDefault(CfgLogOutput, "stderr")

	chip := mask.DefaultChipOptions()
	v.SetDefault(CfgChipName, "test_single junction transmon_chip")
	v.SetDefault(CfgChipWidth, 9000)
	v.SetDefault(CfgChipHeight, 9000)
	v.SetDefault(CfgChipFrame, chip.Frame)
	v.SetDefault(CfgChipLabel, chip.Label)
	v.SetDefault(CfgChipWafer, chip.Wafer)
	// An empty date is replaced by today's date.
	v.SetDefault(CfgChipDate, "")
	v.SetDefault(CfgChipArcSegments, chip.ArcSegments)

	single := mask.DefaultPadOptions()
	single.Width, single.Height = 700, 350
	single.LeadWidth, single.LeadHeight = 20, 30
	single.RoundedEdges = true
	setPadDefaults(v, prefixPads, single)
	setJunctionDefaults(v, prefixJunction, mask.DefaultJunctionOptions())

	squid := single
	squid.LeadWidth, squid.LeadHeight = 10, 40
	setPadDefaults(v, prefixSquidPads, squid)
	jj := mask.DefaultJunctionOptions()
	jj.BaseHeight = 10
	setJunctionDefaults(v, prefixSquidJunction, jj)
	v.SetDefault(prefixSquidLoop+".thickness", 8)
	v.SetDefault(prefixSquidLoop+".width", 10)
	v.SetDefault(prefixSquidLoop+".height", 10)

	setArrayDefaults(v, prefixSingleArray, array{
		Name:    "test",
		Start:   mask.Pt(-2000, -2000),
		Pitch:   mask.Vec(2000, 2000),
		Columns: 3,
		Rows:    1,
	})
	setArrayDefaults(v, prefixSquidArray, array{
		Name:    "test2",
		Start:   mask.Pt(-2000, 0),
		Pitch:   mask.Vec(2000, 2000),
		Columns: 3,
		Rows:    2,
	})

	v.SetDefault(CfgLayoutMarkers, false)
	v.SetDefault(CfgLayoutTestPads, false)
	v.SetDefault(CfgLayoutDicing, false)
	v.SetDefault(CfgLayoutAlignment, false)
	v.SetDefault(CfgLayoutVernier, false)
	v.SetDefault(CfgLayoutHoles, false)
}

// ProcessConfigFile reads the config file. A missing file is not an error;
// the defaults apply.
func ProcessConfigFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	}
	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if path == "" && errors.As(err, &notFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading configuration: %w", err)
	}
	return nil
}

func setPadDefaults(v *viper.Viper, prefix string, o mask.PadOptions) {
	v.SetDefault(prefix+".width", o.Width)
	v.SetDefault(prefix+".height", o.Height)
	v.SetDefault(prefix+".leadWidth", o.LeadWidth)
	v.SetDefault(prefix+".leadHeight", o.LeadHeight)
	v.SetDefault(prefix+".forkDepth", o.ForkDepth)
	v.SetDefault(prefix+".tipMargin", o.TipMargin)
	v.SetDefault(prefix+".roundedEdges", o.RoundedEdges)
	v.SetDefault(prefix+".cornerRadius", o.CornerRadius)
	v.SetDefault(prefix+".arcSegments", o.ArcSegments)
	v.SetDefault(prefix+".layer", int(o.Layer))
}

func padOptions(v *viper.Viper, prefix string) mask.PadOptions {
	return mask.PadOptions{
		Width:        v.GetFloat64(prefix + ".width"),
		Height:       v.GetFloat64(prefix + ".height"),
		LeadWidth:    v.GetFloat64(prefix + ".leadWidth"),
		LeadHeight:   v.GetFloat64(prefix + ".leadHeight"),
		ForkDepth:    v.GetFloat64(prefix + ".forkDepth"),
		TipMargin:    v.GetFloat64(prefix + ".tipMargin"),
		RoundedEdges: v.GetBool(prefix + ".roundedEdges"),
		CornerRadius: v.GetFloat64(prefix + ".cornerRadius"),
		ArcSegments:  v.GetInt(prefix + ".arcSegments"),
		Layer:        mask.Layer(v.GetInt(prefix + ".layer")),
	}
}

func setJunctionDefaults(v *viper.Viper, prefix string, o mask.JunctionOptions) {
	v.SetDefault(prefix+".baseWidth", o.BaseWidth)
	v.SetDefault(prefix+".baseHeight", o.BaseHeight)
	v.SetDefault(prefix+".width", o.Width)
	v.SetDefault(prefix+".height", o.Height)
	v.SetDefault(prefix+".bridgeWidth", o.BridgeWidth)
	v.SetDefault(prefix+".approachOverlap", o.ApproachOverlap)
	v.SetDefault(prefix+".leadOverlap", o.LeadOverlap)
	v.SetDefault(prefix+".layer", int(o.Layer))
}

func junctionOptions(v *viper.Viper, prefix string) mask.JunctionOptions {
	return mask.JunctionOptions{
		BaseWidth:       v.GetFloat64(prefix + ".baseWidth"),
		BaseHeight:      v.GetFloat64(prefix + ".baseHeight"),
		Width:           v.GetFloat64(prefix + ".width"),
		Height:          v.GetFloat64(prefix + ".height"),
		BridgeWidth:     v.GetFloat64(prefix + ".bridgeWidth"),
		ApproachOverlap: v.GetFloat64(prefix + ".approachOverlap"),
		LeadOverlap:     v.GetFloat64(prefix + ".leadOverlap"),
		Layer:           mask.Layer(v.GetInt(prefix + ".layer")),
	}
}

func squidLoopOptions(v *viper.Viper) mask.SquidLoopOptions {
	return mask.SquidLoopOptions{
		Thickness: v.GetFloat64(prefixSquidLoop + ".thickness"),
		Width:     v.GetFloat64(prefixSquidLoop + ".width"),
		Height:    v.GetFloat64(prefixSquidLoop + ".height"),
	}
}

// chipOptions returns the chip record. date is used if chip.date is empty.
func chipOptions(v *viper.Viper, date string) mask.ChipOptions {
	o := mask.DefaultChipOptions()
	o.Width = v.GetFloat64(CfgChipWidth)
	o.Height = v.GetFloat64(CfgChipHeight)
	o.Frame = v.GetBool(CfgChipFrame)
	o.Label = v.GetBool(CfgChipLabel)
	o.Wafer = v.GetInt(CfgChipWafer)
	o.ArcSegments = v.GetInt(CfgChipArcSegments)
	o.Date = v.GetString(CfgChipDate)
	if o.Date == "" {
		o.Date = date
	}
	return o
}

// array is a rectangular arrangement of copies of one component.
type array struct {
	Name    string
	Start   mask.Point
	Pitch   mask.Vec2
	Columns int
	Rows    int
}

func setArrayDefaults(v *viper.Viper, prefix string, a array) {
	v.SetDefault(prefix+".name", a.Name)
	v.SetDefault(prefix+".start", []float64{a.Start.X, a.Start.Y})
	v.SetDefault(prefix+".pitch", []float64{a.Pitch.X, a.Pitch.Y})
	v.SetDefault(prefix+".columns", a.Columns)
	v.SetDefault(prefix+".rows", a.Rows)
}

func arrayOptions(v *viper.Viper, prefix string) (array, error) {
	start, err := pair(v, prefix+".start")
	if err != nil {
		return array{}, err
	}
	pitch, err := pair(v, prefix+".pitch")
	if err != nil {
		return array{}, err
	}
	return array{
		Name:    v.GetString(prefix + ".name"),
		Start:   mask.Pt(start[0], start[1]),
		Pitch:   mask.Vec(pitch[0], pitch[1]),
		Columns: v.GetInt(prefix + ".columns"),
		Rows:    v.GetInt(prefix + ".rows"),
	}, nil
}

// Positions returns the array's positions row by row. Both components of
// Pitch must be positive.
func (a array) Positions() []mask.Point {
	end := mask.Pt(
		a.Start.X+float64(a.Columns)*a.Pitch.X,
		a.Start.Y+float64(a.Rows)*a.Pitch.Y,
	)
	var out []mask.Point
	for pt := range mask.Grid(a.Start, end, a.Pitch) {
		out = append(out, pt)
	}
	return out
}

func pair(v *viper.Viper, key string) ([2]float64, error) {
	var out [2]float64
	raw := v.Get(key)
	var vals []float64
	switch raw := raw.(type) {
	case []float64:
		vals = raw
	case []any:
		for _, e := range raw {
			switch e := e.(type) {
			case float64:
				vals = append(vals, e)
			case int64:
				vals = append(vals, float64(e))
			case int:
				vals = append(vals, float64(e))
			default:
				return out, fmt.Errorf("%s: element %v is not a number", key, e)
			}
		}
	default:
		return out, fmt.Errorf("%s: want a pair of numbers, got %v", key, raw)
	}
	if len(vals) != 2 {
		return out, fmt.Errorf("%s: want a pair of numbers, got %d", key, len(vals))
	}
	copy(out[:], vals)
	return out, nil
}
