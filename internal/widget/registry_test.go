package widget_test

import (
	"context"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-widget/config"
	"weather-widget/internal/icons"
	"weather-widget/internal/models"
	"weather-widget/internal/widget"
	"weather-widget/pkg/logger"
)

func newRegistry(t *testing.T, f widget.Features, fetcher widget.Fetcher) *widget.Registry {
	t.Helper()
	return newLimitedRegistry(t, f, fetcher, widget.Limits{})
}

func newLimitedRegistry(t *testing.T, f widget.Features, fetcher widget.Fetcher, limits widget.Limits) *widget.Registry {
	t.Helper()
	mapper, err := icons.NewMapper(f.IconTable, nil)
	require.NoError(t, err)
	r := widget.NewRegistry(f, fetcher, mapper, logger.NewNop(), limits)
	t.Cleanup(r.Close)
	return r
}

func mount(t *testing.T, r *widget.Registry, locator widget.Locator) *widget.Widget {
	t.Helper()
	w, err := r.Mount(locator)
	require.NoError(t, err)
	return w
}

func TestRegistry_MountGetUnmount(t *testing.T) {
	r := newRegistry(t, widget.ClassicFeatures(), &fakeFetcher{})

	a := mount(t, r, nil)
	b := mount(t, r, widget.NoLocator{})

	assert.NotEqual(t, a.ID(), b.ID())
	_, err := ulid.Parse(a.ID())
	assert.NoError(t, err)
	assert.Equal(t, 2, r.Len())

	got, err := r.Get(a.ID())
	require.NoError(t, err)
	assert.Same(t, a, got)

	require.NoError(t, r.Unmount(a.ID()))
	_, err = r.Get(a.ID())
	assert.ErrorIs(t, err, widget.ErrNotFound)
	assert.ErrorIs(t, r.Unmount(a.ID()), widget.ErrNotFound)
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_MountStartsGeolocation(t *testing.T) {
	fetcher := &fakeFetcher{byCoordinates: func(_ context.Context, _, _ float64, _ models.Unit) (models.WeatherRecord, error) {
		return models.WeatherRecord{City: "Lisbon"}, nil
	}}
	r := newRegistry(t, widget.ExtendedFeatures(), fetcher)

	w := mount(t, r, widget.StaticLocator{Position: models.Coordinates{Lat: 38.72, Lon: -9.14}})
	wait(t, w)

	assert.Equal(t, "Lisbon", w.State().City)
}

func TestRegistry_WidgetsAreIndependent(t *testing.T) {
	r := newRegistry(t, widget.ExtendedFeatures(), &fakeFetcher{})

	a := mount(t, r, nil)
	b := mount(t, r, nil)
	a.SetCity("Paris")
	a.Submit()
	wait(t, a)

	assert.NotNil(t, a.State().Data)
	assert.Empty(t, b.State().City)
	assert.Nil(t, b.State().Data)
}

func TestRegistry_CloseUnmountsAll(t *testing.T) {
	fetcher := &fakeFetcher{}
	r := newRegistry(t, widget.ExtendedFeatures(), fetcher)
	w := mount(t, r, nil)

	r.Close()

	assert.Zero(t, r.Len())
	w.SetCity("Oslo")
	assert.False(t, w.Submit())
}

func TestRegistry_EvictsIdleWidgets(t *testing.T) {
	r := newLimitedRegistry(t, widget.ExtendedFeatures(), &fakeFetcher{}, widget.Limits{IdleTTL: 50 * time.Millisecond})
	w := mount(t, r, nil)

	assert.Eventually(t, w.Closed, time.Second, 10*time.Millisecond)

	_, err := r.Get(w.ID())
	assert.ErrorIs(t, err, widget.ErrNotFound)
	assert.Zero(t, r.Len())
	w.SetCity("Oslo")
	assert.False(t, w.Submit())
}

func TestRegistry_GetKeepsWidgetAlive(t *testing.T) {
	r := newLimitedRegistry(t, widget.ExtendedFeatures(), &fakeFetcher{}, widget.Limits{IdleTTL: 300 * time.Millisecond})
	w := mount(t, r, nil)

	deadline := time.Now().Add(900 * time.Millisecond)
	for time.Now().Before(deadline) {
		_, err := r.Get(w.ID())
		require.NoError(t, err)
		time.Sleep(50 * time.Millisecond)
	}

	assert.False(t, w.Closed())
}

func TestRegistry_MountLimit(t *testing.T) {
	r := newLimitedRegistry(t, widget.ExtendedFeatures(), &fakeFetcher{}, widget.Limits{MaxWidgets: 2})
	a := mount(t, r, nil)
	mount(t, r, nil)

	_, err := r.Mount(nil)
	assert.ErrorIs(t, err, widget.ErrRegistryFull)
	assert.Equal(t, 2, r.Len())

	require.NoError(t, r.Unmount(a.ID()))
	assert.True(t, a.Closed())
	mount(t, r, nil)
}

func TestRegistry_NilLoggerAndMapper(t *testing.T) {
	r := widget.NewRegistry(widget.ClassicFeatures(), &fakeFetcher{}, nil, nil, widget.Limits{})
	t.Cleanup(r.Close)

	w := mount(t, r, nil)
	w.SetCity("Paris")
	require.True(t, w.Submit())
	wait(t, w)

	require.NotNil(t, w.State().Data)
	require.NoError(t, r.Unmount(w.ID()))
}

func TestFeaturesFromConfig(t *testing.T) {
	f, mapper, err := widget.FeaturesFromConfig(config.WidgetConfig{Variant: config.VariantClassic})
	require.NoError(t, err)
	assert.True(t, f.ClearInputOnError)
	assert.False(t, f.ShowSettings)
	assert.Equal(t, icons.Drizzle, mapper.Lookup("04d"))

	f, mapper, err = widget.FeaturesFromConfig(config.WidgetConfig{
		Variant:        config.VariantExtended,
		SearchOnLocate: true,
		Icons:          map[string]string{"04d": "drizzle"},
	})
	require.NoError(t, err)
	assert.True(t, f.EnableGeolocation)
	assert.True(t, f.SearchOnLocate)
	assert.Equal(t, icons.Drizzle, mapper.Lookup("04d"))
	assert.Equal(t, icons.Cloud, mapper.Lookup("04n"))

	_, _, err = widget.FeaturesFromConfig(config.WidgetConfig{Variant: "v3"})
	assert.Error(t, err)

	_, _, err = widget.FeaturesFromConfig(config.WidgetConfig{Variant: config.VariantExtended, Icons: map[string]string{"04d": "fog"}})
	assert.Error(t, err)
}
