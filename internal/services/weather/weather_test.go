package weather_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-widget/internal/models"
	"weather-widget/internal/repositories"
	"weather-widget/internal/services/weather"
	"weather-widget/pkg/logger"
)

// MockRepository implements WeatherRepository for testing
type MockRepository struct {
	record    models.WeatherRecord
	err       error
	cities    []string
	callCount int
}

func (m *MockRepository) Name() string {
	return "mock"
}

func (m *MockRepository) FetchByCity(ctx context.Context, city string, unit models.Unit) (models.WeatherRecord, error) {
	m.callCount++
	m.cities = append(m.cities, city)
	if m.err != nil {
		return models.WeatherRecord{}, m.err
	}
	return m.record, nil
}

func (m *MockRepository) FetchByCoordinates(ctx context.Context, lat, lon float64, unit models.Unit) (models.WeatherRecord, error) {
	m.callCount++
	if m.err != nil {
		return models.WeatherRecord{}, m.err
	}
	return m.record, nil
}

func TestWeatherService_FetchByCity_Success(t *testing.T) {
	repo := &MockRepository{record: models.WeatherRecord{City: "Oslo", Temperature: 4}}
	service := weather.NewWeatherService(repo, logger.NewNop())

	record, err := service.FetchByCity(context.Background(), "  Oslo  ", models.Metric)

	require.NoError(t, err)
	assert.Equal(t, "Oslo", record.City)
	assert.Equal(t, []string{"Oslo"}, repo.cities)
}

func TestWeatherService_FetchByCity_EmptyIsNoop(t *testing.T) {
	repo := &MockRepository{}
	service := weather.NewWeatherService(repo, logger.NewNop())

	for _, city := range []string{"", "   ", "\t\n"} {
		_, err := service.FetchByCity(context.Background(), city, models.Metric)
		assert.ErrorIs(t, err, weather.ErrEmptyQuery)
	}
	assert.Zero(t, repo.callCount)
}

func TestWeatherService_FetchByCity_LogsFailures(t *testing.T) {
	var buf bytes.Buffer
	repo := &MockRepository{err: &repositories.NotFoundError{Code: 404, Message: "city not found"}}
	service := weather.NewWeatherService(repo, logger.NewZapLogger("test-app", "test", "debug", &buf))

	_, err := service.FetchByCity(context.Background(), "Atlantis", models.Metric)

	require.Error(t, err)
	assert.Contains(t, buf.String(), `"kind":"not_found"`)
	assert.Contains(t, buf.String(), `"city":"Atlantis"`)
}

func TestWeatherService_FetchByCoordinates(t *testing.T) {
	repo := &MockRepository{record: models.WeatherRecord{City: "Lisbon"}}
	service := weather.NewWeatherService(repo, logger.NewNop())

	record, err := service.FetchByCoordinates(context.Background(), 38.72, -9.14, models.Metric)
	require.NoError(t, err)
	assert.Equal(t, "Lisbon", record.City)

	repo.err = &repositories.NetworkError{Err: errors.New("connection refused")}
	_, err = service.FetchByCoordinates(context.Background(), 38.72, -9.14, models.Metric)
	assert.Error(t, err)
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"provider city not found", &repositories.NotFoundError{Code: 404, Message: "city not found"}, weather.MessageNotFound},
		{"default not found message", &repositories.NotFoundError{Code: 404, Message: "City not found"}, weather.MessageNotFound},
		{"wrapped not found", fmt.Errorf("lookup: %w", &repositories.NotFoundError{Code: 404, Message: "city not found"}), weather.MessageNotFound},
		{"other provider rejection", &repositories.NotFoundError{Code: 401, Message: "Invalid API key"}, weather.MessageFailed},
		{"server error", &repositories.NotFoundError{Code: 500, Message: "Internal error"}, weather.MessageFailed},
		{"malformed", &repositories.MalformedResponseError{Reason: "missing wind section"}, weather.MessageFailed},
		{"network", &repositories.NetworkError{Err: context.DeadlineExceeded}, weather.MessageFailed},
		{"config", &repositories.ConfigError{Reason: "API key is missing"}, weather.MessageFailed},
		{"unknown", errors.New("boom"), weather.MessageFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, weather.UserMessage(tt.err))
		})
	}
}

func TestKind(t *testing.T) {
	assert.Equal(t, weather.KindConfig, weather.Kind(&repositories.ConfigError{}))
	assert.Equal(t, weather.KindNotFound, weather.Kind(&repositories.NotFoundError{}))
	assert.Equal(t, weather.KindMalformed, weather.Kind(&repositories.MalformedResponseError{}))
	assert.Equal(t, weather.KindNetwork, weather.Kind(&repositories.NetworkError{Err: errors.New("x")}))
	assert.Equal(t, weather.KindUnknown, weather.Kind(errors.New("x")))
}
