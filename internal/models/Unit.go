package models

import "fmt"

type Unit string

const (
	Metric   Unit = "metric"
	Imperial Unit = "imperial"
)

// ParseUnit accepts the provider's unit system names only.
func ParseUnit(s string) (Unit, error) {
	switch Unit(s) {
	case Metric, Imperial:
		return Unit(s), nil
	}
	return "", fmt.Errorf("unsupported unit %q", s)
}

// TemperatureSymbol is the degree label shown next to a temperature.
func (u Unit) TemperatureSymbol() string {
	if u == Imperial {
		return "°F"
	}
	return "°C"
}

// SpeedSymbol is the label for wind speeds as stored in WeatherRecord.
func (u Unit) SpeedSymbol() string {
	if u == Imperial {
		return "mph"
	}
	return "km/h"
}
