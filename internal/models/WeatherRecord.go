package models

import "fmt"

// WeatherRecord is the normalized result of one successful lookup. It is never
// mutated; a new lookup produces a new record.
type WeatherRecord struct {
	Temperature   int     `json:"temperature" example:"18"`
	FeelsLike     int     `json:"feels_like" example:"17"`
	Humidity      int     `json:"humidity" example:"72"`
	WindSpeed     int     `json:"wind_speed" example:"15"`
	Pressure      int     `json:"pressure" example:"1012"`
	VisibilityKm  float64 `json:"visibility_km" example:"10"`
	City          string  `json:"city" example:"London"`
	Country       string  `json:"country" example:"GB"`
	Location      string  `json:"location" example:"London, GB"`
	ConditionCode string  `json:"condition_code" example:"10d"`
	Description   string  `json:"description" example:"light rain"`
	Sunrise       string  `json:"sunrise,omitempty" example:"06:12"`
	Sunset        string  `json:"sunset,omitempty" example:"19:48"`
	Unit          Unit    `json:"unit" example:"metric"`
}

type Coordinates struct {
	Lat float64 `json:"lat" example:"51.5072"`
	Lon float64 `json:"lon" example:"-0.1276"`
}

func (c Coordinates) String() string {
	return fmt.Sprintf("lat: %.4f lon: %.4f", c.Lat, c.Lon)
}

// Validate checks the coordinates are on the globe.
func (c Coordinates) Validate() error {
	if c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("latitude must be between -90 and 90")
	}
	if c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("longitude must be between -180 and 180")
	}
	return nil
}
