package widget

import (
	"context"
	"errors"

	"weather-widget/internal/models"
)

var ErrLocationUnavailable = errors.New("location services unavailable")

// Locator yields a one-shot geographic position.
type Locator interface {
	CurrentPosition(ctx context.Context) (models.Coordinates, error)
}

// StaticLocator reports a position captured elsewhere, typically posted by
// the browser when the widget is mounted.
type StaticLocator struct {
	Position models.Coordinates
}

func (s StaticLocator) CurrentPosition(ctx context.Context) (models.Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return models.Coordinates{}, err
	}
	return s.Position, nil
}

// NoLocator is used when the host did not share a position.
type NoLocator struct{}

func (NoLocator) CurrentPosition(context.Context) (models.Coordinates, error) {
	return models.Coordinates{}, ErrLocationUnavailable
}
