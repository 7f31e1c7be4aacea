package repositories

import (
	"context"
	"net/http"
	"time"

	"weather-widget/config"
	"weather-widget/internal/models"
	"weather-widget/pkg/logger"
)

type WeatherRepository interface {
	Name() string
	FetchByCity(ctx context.Context, city string, unit models.Unit) (models.WeatherRecord, error)
	FetchByCoordinates(ctx context.Context, lat, lon float64, unit models.Unit) (models.WeatherRecord, error)
}

// InitWeatherRepository builds the provider client described by cfg.
func InitWeatherRepository(cfg *config.Config, l *logger.Logger) WeatherRepository {
	httpClient := &http.Client{
		Timeout: time.Duration(cfg.Weather.Timeout) * time.Second,
	}

	return NewOpenWeatherRepository(OpenWeatherOptions{
		BaseURL:       cfg.Weather.BaseURL,
		APIKey:        cfg.Weather.APIKey,
		RequireAPIKey: cfg.RequireAPIKey(),
		HTTPClient:    httpClient,
	}, l)
}
