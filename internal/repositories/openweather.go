package repositories

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"weather-widget/internal/models"
	"weather-widget/pkg/logger"
)

const (
	OpenWeatherBaseURL = "https://api.openweathermap.org/data/2.5"

	currentWeatherEndpoint = "/weather"
	defaultNotFoundMessage = "City not found"
	userAgent              = "weather-widget/1.0"

	// metres per second to kilometres per hour
	msToKmh = 3.6
)

var tracer = otel.Tracer("weather-widget/repositories")

type OpenWeatherOptions struct {
	BaseURL string
	APIKey  string
	// RequireAPIKey fails lookups locally when APIKey is blank instead of
	// letting the provider reject them.
	RequireAPIKey bool
	HTTPClient    *http.Client
}

// OpenWeatherRepository queries the OpenWeatherMap current weather endpoint.
// It never retries.
type OpenWeatherRepository struct {
	apiKey        string
	requireAPIKey bool
	client        *resty.Client
	l             *logger.Logger
}

func NewOpenWeatherRepository(opts OpenWeatherOptions, l *logger.Logger) *OpenWeatherRepository {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = OpenWeatherBaseURL
	}

	client := resty.NewWithClient(httpClient).
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json")

	return &OpenWeatherRepository{
		apiKey:        opts.APIKey,
		requireAPIKey: opts.RequireAPIKey,
		client:        client,
		l:             l,
	}
}

func (o *OpenWeatherRepository) Name() string {
	return "openweather"
}

// providerCode is the "cod" field, which the provider sends as a number on
// success and as a string on errors.
type providerCode struct {
	value int
	set   bool
}

func (c *providerCode) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	c.value, c.set = v, true
	return nil
}

type CurrentWeatherResponse struct {
	Cod     providerCode `json:"cod"`
	Message string       `json:"message"`
	Weather []struct {
		Icon        string `json:"icon"`
		Description string `json:"description"`
	} `json:"weather"`
	Main *struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
		Pressure  int     `json:"pressure"`
	} `json:"main"`
	Wind *struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Visibility int    `json:"visibility"`
	Name       string `json:"name"`
	Sys        struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
	Timezone int `json:"timezone"`
}

func (o *OpenWeatherRepository) FetchByCity(ctx context.Context, city string, unit models.Unit) (models.WeatherRecord, error) {
	city = strings.TrimSpace(city)
	return o.fetch(ctx, map[string]string{"q": city}, unit, attribute.String("weather.city", city))
}

func (o *OpenWeatherRepository) FetchByCoordinates(ctx context.Context, lat, lon float64, unit models.Unit) (models.WeatherRecord, error) {
	return o.fetch(ctx, map[string]string{
		"lat": strconv.FormatFloat(lat, 'f', -1, 64),
		"lon": strconv.FormatFloat(lon, 'f', -1, 64),
	}, unit, attribute.Float64("weather.lat", lat), attribute.Float64("weather.lon", lon))
}

func (o *OpenWeatherRepository) fetch(ctx context.Context, query map[string]string, unit models.Unit, attrs ...attribute.KeyValue) (models.WeatherRecord, error) {
	ctx, span := tracer.Start(ctx, "openweather.current")
	defer span.End()
	span.SetAttributes(append(attrs, attribute.String("weather.unit", string(unit)))...)

	record, err := o.doFetch(ctx, query, unit)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return record, err
}

func (o *OpenWeatherRepository) doFetch(ctx context.Context, query map[string]string, unit models.Unit) (models.WeatherRecord, error) {
	if o.requireAPIKey && strings.TrimSpace(o.apiKey) == "" {
		return models.WeatherRecord{}, &ConfigError{Reason: "API key is missing"}
	}

	query["units"] = string(unit)
	query["appid"] = o.apiKey

	o.l.Debug("making openweather API request", map[string]any{
		"q":     query["q"],
		"lat":   query["lat"],
		"lon":   query["lon"],
		"units": unit,
	})

	resp, err := o.client.R().
		SetContext(ctx).
		SetQueryParams(query).
		Get(currentWeatherEndpoint)
	if err != nil {
		return models.WeatherRecord{}, &NetworkError{Err: err}
	}

	o.l.Debug("received openweather API response", map[string]any{
		"status":   resp.StatusCode(),
		"duration": resp.Time().String(),
	})

	var body CurrentWeatherResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		// gateways answer outages with HTML or plain text
		if resp.IsError() {
			return models.WeatherRecord{}, &NotFoundError{Code: resp.StatusCode(), Message: http.StatusText(resp.StatusCode())}
		}
		return models.WeatherRecord{}, &MalformedResponseError{Reason: "body is not JSON", Err: err}
	}

	code := resp.StatusCode()
	if body.Cod.set {
		code = body.Cod.value
	}
	if code != http.StatusOK {
		message := body.Message
		if message == "" {
			message = defaultNotFoundMessage
		}
		return models.WeatherRecord{}, &NotFoundError{Code: code, Message: message}
	}

	return normalize(body, unit)
}

func normalize(body CurrentWeatherResponse, unit models.Unit) (models.WeatherRecord, error) {
	switch {
	case len(body.Weather) == 0:
		return models.WeatherRecord{}, &MalformedResponseError{Reason: "missing weather section"}
	case body.Main == nil:
		return models.WeatherRecord{}, &MalformedResponseError{Reason: "missing main section"}
	case body.Wind == nil:
		return models.WeatherRecord{}, &MalformedResponseError{Reason: "missing wind section"}
	}

	wind := body.Wind.Speed
	if unit == models.Metric {
		wind *= msToKmh
	}

	location := body.Name
	if body.Name != "" && body.Sys.Country != "" {
		location = body.Name + ", " + body.Sys.Country
	}

	zone := time.FixedZone("", body.Timezone)

	return models.WeatherRecord{
		Temperature:   int(roundHalfUp(body.Main.Temp)),
		FeelsLike:     int(roundHalfUp(body.Main.FeelsLike)),
		Humidity:      body.Main.Humidity,
		WindSpeed:     int(roundHalfUp(wind)),
		Pressure:      body.Main.Pressure,
		VisibilityKm:  math.Round(float64(body.Visibility)/100) / 10,
		City:          body.Name,
		Country:       body.Sys.Country,
		Location:      location,
		ConditionCode: body.Weather[0].Icon,
		Description:   body.Weather[0].Description,
		Sunrise:       localClock(body.Sys.Sunrise, zone),
		Sunset:        localClock(body.Sys.Sunset, zone),
		Unit:          unit,
	}, nil
}

// roundHalfUp rounds .5 towards positive infinity, so -2.5 becomes -2.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

func localClock(unix int64, zone *time.Location) string {
	if unix == 0 {
		return ""
	}
	return time.Unix(unix, 0).In(zone).Format("15:04")
}
