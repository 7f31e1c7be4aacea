package weather

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"weather-widget/internal/models"
	"weather-widget/internal/repositories"
	"weather-widget/pkg/logger"
)

// Messages shown to the user. Every failure maps to exactly one of them.
const (
	MessageNotFound = "City not found. Please try again."
	MessageFailed   = "Failed to fetch weather data"
)

// Error kinds used in logs and for HTTP status mapping.
const (
	KindConfig    = "config"
	KindNotFound  = "not_found"
	KindMalformed = "malformed"
	KindNetwork   = "network"
	KindUnknown   = "unknown"
)

var ErrEmptyQuery = errors.New("city name is empty")

// WeatherService is the fetch boundary: every provider error is logged here
// before it reaches a caller.
type WeatherService struct {
	repo repositories.WeatherRepository
	l    *logger.Logger
}

func NewWeatherService(repo repositories.WeatherRepository, l *logger.Logger) *WeatherService {
	return &WeatherService{
		repo: repo,
		l:    l,
	}
}

// FetchByCity looks up current conditions for the trimmed city name.
func (s *WeatherService) FetchByCity(ctx context.Context, city string, unit models.Unit) (models.WeatherRecord, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return models.WeatherRecord{}, ErrEmptyQuery
	}

	record, err := s.repo.FetchByCity(ctx, city, unit)
	if err != nil {
		s.l.Error(errors.Wrap(err, "fetch weather by city"), map[string]any{
			"repo": s.repo.Name(),
			"city": city,
			"unit": unit,
			"kind": Kind(err),
		})
		return models.WeatherRecord{}, err
	}

	s.l.Info("fetched weather", map[string]any{
		"repo":      s.repo.Name(),
		"city":      city,
		"unit":      unit,
		"location":  record.Location,
		"condition": record.ConditionCode,
	})

	return record, nil
}

// FetchByCoordinates looks up current conditions at a position.
func (s *WeatherService) FetchByCoordinates(ctx context.Context, lat, lon float64, unit models.Unit) (models.WeatherRecord, error) {
	record, err := s.repo.FetchByCoordinates(ctx, lat, lon, unit)
	if err != nil {
		s.l.Error(errors.Wrap(err, "fetch weather by coordinates"), map[string]any{
			"repo": s.repo.Name(),
			"lat":  lat,
			"lon":  lon,
			"unit": unit,
			"kind": Kind(err),
		})
		return models.WeatherRecord{}, err
	}

	s.l.Info("fetched weather", map[string]any{
		"repo":     s.repo.Name(),
		"lat":      lat,
		"lon":      lon,
		"unit":     unit,
		"location": record.Location,
	})

	return record, nil
}

// Kind classifies err into one of the Kind constants.
func Kind(err error) string {
	var (
		configErr    *repositories.ConfigError
		notFoundErr  *repositories.NotFoundError
		malformedErr *repositories.MalformedResponseError
		networkErr   *repositories.NetworkError
	)

	switch {
	case errors.As(err, &configErr):
		return KindConfig
	case errors.As(err, &notFoundErr):
		return KindNotFound
	case errors.As(err, &malformedErr):
		return KindMalformed
	case errors.As(err, &networkErr):
		return KindNetwork
	}
	return KindUnknown
}

// UserMessage turns any lookup error into the text shown to the user.
func UserMessage(err error) string {
	var notFoundErr *repositories.NotFoundError
	if errors.As(err, &notFoundErr) && strings.Contains(strings.ToLower(notFoundErr.Message), "city not found") {
		return MessageNotFound
	}
	return MessageFailed
}
