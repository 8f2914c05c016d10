package config

import "fmt"

// QualityPreset represents a named render quality level.
type QualityPreset string

const (
	QualityLow    QualityPreset = "low"
	QualityMedium QualityPreset = "medium"
	QualityHigh   QualityPreset = "high"
	QualityUltra  QualityPreset = "ultra"
)

// QualityPresets lists presets from cheapest to most detailed.
var QualityPresets = []QualityPreset{QualityLow, QualityMedium, QualityHigh, QualityUltra}

// qualitySettings are the view parameters a preset overrides.
type qualitySettings struct {
	columnWidth int
	maxDistance float64
	workers     int
}

var qualityTable = map[QualityPreset]qualitySettings{
	QualityLow:    {columnWidth: 4, maxDistance: 12, workers: 1},
	QualityMedium: {columnWidth: 2, maxDistance: 16, workers: 1},
	QualityHigh:   {columnWidth: 1, maxDistance: 20, workers: 2},
	QualityUltra:  {columnWidth: 1, maxDistance: 32, workers: 4},
}

// IsValidQuality returns true if the preset is known.
func IsValidQuality(preset QualityPreset) bool {
	_, ok := qualityTable[preset]
	return ok
}

// ApplyQualityPreset overrides column width, render distance and worker
// count with the preset's values.
func ApplyQualityPreset(cfg *RaycasterConfig, preset QualityPreset) error {
	s, ok := qualityTable[preset]
	if !ok {
		return fmt.Errorf("unknown quality preset %q (want low, medium, high or ultra)", preset)
	}
	cfg.Quality = string(preset)
	cfg.View.ColumnWidth = s.columnWidth
	cfg.View.MaxDistance = s.maxDistance
	cfg.Render.Workers = s.workers
	return nil
}
