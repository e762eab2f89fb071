package main

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"honnef.co/go/mask"
)

// buildChip builds the chip described by v. date labels the chip unless
// chip.date is set.
func buildChip(v *viper.Viper, log *zap.Logger, date string) (*mask.Chip, error) {
	co := chipOptions(v, date)
	name := v.GetString(CfgChipName)
	ch, err := mask.NewChip(name, co)
	if err != nil {
		return nil, fmt.Errorf("creating chip: %w", err)
	}
	log.Info("created chip",
		zap.String("name", name),
		zap.Float64("width", co.Width),
		zap.Float64("height", co.Height),
		zap.Int("wafer", co.Wafer),
		zap.String("date", co.Date))

	topts := mask.DefaultTransmonOptions()
	topts.Layers = co.Layers
	topts.Holes = v.GetBool(CfgLayoutHoles)

	single, err := arrayOptions(v, prefixSingleArray)
	if err != nil {
		return nil, err
	}
	if single.Columns > 0 && single.Rows > 0 {
		jj, err := mask.NewDolanJunction(junctionOptions(v, prefixJunction), co.Layers)
		if err != nil {
			return nil, fmt.Errorf("single-junction transmon: %w", err)
		}
		tm, err := mask.SingleJunctionTransmon(single.Name, padOptions(v, prefixPads), jj, topts)
		if err != nil {
			return nil, fmt.Errorf("single-junction transmon: %w", err)
		}
		log.Debug("generated transmon",
			zap.String("cell", single.Name),
			zap.Float64("padSpacing", tm.PadSpacing),
			zap.Int("vertices", tm.Lower.Len()))
		if err := attachArray(ch, tm.Cell, single, log); err != nil {
			return nil, err
		}
	}

	squid, err := arrayOptions(v, prefixSquidArray)
	if err != nil {
		return nil, err
	}
	if squid.Columns > 0 && squid.Rows > 0 {
		jj, err := mask.NewDolanJunction(junctionOptions(v, prefixSquidJunction), co.Layers)
		if err != nil {
			return nil, fmt.Errorf("SQUID transmon: %w", err)
		}
		tm, err := mask.SquidTransmon(squid.Name, padOptions(v, prefixSquidPads), squidLoopOptions(v), jj, topts)
		if err != nil {
			return nil, fmt.Errorf("SQUID transmon: %w", err)
		}
		log.Debug("generated transmon",
			zap.String("cell", squid.Name),
			zap.Float64("padSpacing", tm.PadSpacing),
			zap.Int("vertices", tm.Lower.Len()))
		if err := attachArray(ch, tm.Cell, squid, log); err != nil {
			return nil, err
		}
	}

	markers := []struct {
		key string
		add func() error
	}{
		{CfgLayoutMarkers, func() error { return ch.AddEBPGMarker(mask.DefaultEBPGMarkerOptions()) }},
		{CfgLayoutTestPads, func() error { return ch.AddBondTestPads(mask.DefaultTestPadOptions()) }},
		{CfgLayoutDicing, func() error { return ch.AddDicingMarks(mask.DefaultDicingOptions()) }},
		{CfgLayoutAlignment, func() error { return ch.AddAlignmentMark(mask.DefaultAlignmentMarkOptions()) }},
		{CfgLayoutVernier, func() error { return ch.AddVernier(mask.DefaultVernierOptions()) }},
	}
	for _, m := range markers {
		if !v.GetBool(m.key) {
			continue
		}
		if err := m.add(); err != nil {
			return nil, fmt.Errorf("%s: %w", m.key, err)
		}
		log.Debug("added markers", zap.String("kind", m.key))
	}
	return ch, nil
}

func attachArray(ch *mask.Chip, cell *mask.Cell, a array, log *zap.Logger) error {
	for _, pos := range a.Positions() {
		if err := ch.Attach(cell, pos); err != nil {
			return err
		}
		log.Debug("attached component",
			zap.String("cell", cell.Name()),
			zap.Float64("x", pos.X),
			zap.Float64("y", pos.Y))
	}
	return nil
}

// logStats logs the flattened geometry of ch, one entry per layer in
// ascending order.
func logStats(ch *mask.Chip, log *zap.Logger) {
	stats := ch.Cell.Stats()
	layers := slices.Sorted(maps.Keys(stats))
	for _, l := range layers {
		s := stats[l]
		log.Info("layer",
			zap.Stringer("layer", l),
			zap.Int("polygons", s.Polygons),
			zap.Int("vertices", s.Vertices),
			zap.Float64("area", s.Area))
	}
	log.Info("cells", zap.Strings("names", ch.Cell.Names()))
}
