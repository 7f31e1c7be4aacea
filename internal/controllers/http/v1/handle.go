package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"weather-widget/internal/models"
	"weather-widget/internal/services/weather"
	"weather-widget/pkg/httpserver"
)

// GetCurrentWeather godoc
// @Summary Get current weather
// @Description Looks up current conditions by city name or by coordinates. Exactly one of q or lat+lon is required.
// @Tags Weather
// @Accept json
// @Produce json
// @Param q query string false "City name" example(London)
// @Param lat query number false "Latitude coordinate (-90 to 90)" minimum(-90) maximum(90) example(51.5072)
// @Param lon query number false "Longitude coordinate (-180 to 180)" minimum(-180) maximum(180) example(-0.1276)
// @Param units query string false "Unit system (metric or imperial, default: metric)" Enums(metric, imperial)
// @Success 200 {object} models.WeatherRecord "Successful response"
// @Failure 400 {object} httpserver.ErrorResponse "Bad request - invalid parameters"
// @Failure 404 {object} httpserver.ErrorResponse "City not found"
// @Failure 500 {object} httpserver.ErrorResponse "Lookup failed"
// @Router /weather [get]
// @Example {curl} Example usage:
//
//	curl -X GET "http://localhost:8080/weather?q=London&units=metric"
func (r *routes) handleWeatherCall(c *fiber.Ctx) error {
	unit := models.Metric
	if u := c.Query("units"); u != "" {
		parsed, err := models.ParseUnit(u)
		if err != nil {
			return badRequest(c, err.Error())
		}
		unit = parsed
	}

	var (
		record models.WeatherRecord
		err    error
	)

	city, lat, lon := c.Query("q"), c.Query("lat"), c.Query("lon")
	switch {
	case city != "" && (lat != "" || lon != ""):
		return badRequest(c, "Use either q or lat and lon, not both")
	case city != "":
		record, err = r.service.FetchByCity(c.UserContext(), city, unit)
	case lat != "" || lon != "":
		pos, perr := parseCoordinates(lat, lon)
		if perr != nil {
			return badRequest(c, perr.Error())
		}
		record, err = r.service.FetchByCoordinates(c.UserContext(), pos.Lat, pos.Lon, unit)
	default:
		return badRequest(c, "Missing required parameter: q or lat and lon")
	}

	if err != nil {
		if errors.Is(err, weather.ErrEmptyQuery) {
			return badRequest(c, "Missing required parameter: q")
		}

		message := weather.UserMessage(err)
		status := fiber.StatusInternalServerError
		if message == weather.MessageNotFound {
			status = fiber.StatusNotFound
		}
		return c.Status(status).JSON(httpserver.ErrorResponse{Error: message})
	}

	return c.JSON(record)
}

func parseCoordinates(lat, lon string) (models.Coordinates, error) {
	if lat == "" {
		return models.Coordinates{}, errors.New("Missing required parameter: lat")
	}
	if lon == "" {
		return models.Coordinates{}, errors.New("Missing required parameter: lon")
	}

	latFloat, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return models.Coordinates{}, errors.New("Invalid latitude format")
	}
	lonFloat, err := strconv.ParseFloat(lon, 64)
	if err != nil {
		return models.Coordinates{}, errors.New("Invalid longitude format")
	}

	pos := models.Coordinates{Lat: latFloat, Lon: lonFloat}
	if err := pos.Validate(); err != nil {
		return models.Coordinates{}, err
	}
	return pos, nil
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(httpserver.ErrorResponse{Error: message})
}
