package costfunction

import (
	"strconv"
	"strings"
)

// SpeedStrategy travel-time weight. reads the speed from an attribute field,
// falls back to defaultSpeed when the field is missing or unparsable.
// toMetricFactor converts the field's unit to meter/second (e.g. km/h -> 1000/3600).
type SpeedStrategy struct {
	attributeId    int
	defaultSpeed   float64
	toMetricFactor float64
}

func NewSpeedStrategy(attributeId int, defaultSpeed, toMetricFactor float64) *SpeedStrategy {
	return &SpeedStrategy{
		attributeId:    attributeId,
		defaultSpeed:   defaultSpeed,
		toMetricFactor: toMetricFactor,
	}
}

func (ss *SpeedStrategy) Cost(distanceMeter float64, rec RecordAttributes) float64 {
	speed := ss.defaultSpeed
	if ss.attributeId >= 0 && ss.attributeId < rec.NumAttributes() {
		if parsed, ok := parseSpeed(rec.GetAttribute(ss.attributeId)); ok {
			speed = parsed
		}
	}
	if speed <= 0 {
		speed = ss.defaultSpeed
	}
	return distanceMeter / (speed * ss.toMetricFactor)
}

func (ss *SpeedStrategy) Name() string {
	return "time"
}

// parseSpeed lenient numeric parse: accepts "50", "50.5", "50 km/h".
func parseSpeed(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f, true
	}
	fields := strings.Fields(raw)
	if len(fields) > 0 {
		if f, err := strconv.ParseFloat(fields[0], 64); err == nil {
			return f, true
		}
	}
	return 0, false
}
