// Package widget holds the weather widget state machine: the search input,
// the optional geolocation pre-fill, the lookup lifecycle and the render
// model derived from it.
package widget

import (
	"context"
	"errors"
	"strings"
	"sync"

	"weather-widget/internal/icons"
	"weather-widget/internal/models"
	"weather-widget/internal/services/weather"
	"weather-widget/pkg/logger"
)

const EnterKey = "Enter"

var ErrSettingsDisabled = errors.New("settings are not enabled for this widget")

// Fetcher performs lookups. *weather.WeatherService satisfies it.
type Fetcher interface {
	FetchByCity(ctx context.Context, city string, unit models.Unit) (models.WeatherRecord, error)
	FetchByCoordinates(ctx context.Context, lat, lon float64, unit models.Unit) (models.WeatherRecord, error)
}

// State is the complete observable state of one widget. Data and Error are
// never set together.
type State struct {
	City         string                `json:"city"`
	Focused      bool                  `json:"focused"`
	Loading      bool                  `json:"loading"`
	Error        string                `json:"error,omitempty"`
	Data         *models.WeatherRecord `json:"data,omitempty"`
	Unit         models.Unit           `json:"unit"`
	DarkMode     bool                  `json:"dark_mode"`
	SettingsOpen bool                  `json:"settings_open"`
}

type Options struct {
	ID       string
	Features Features
	Fetcher  Fetcher
	// Locator defaults to NoLocator.
	Locator Locator
	// Icons defaults to a mapper over Features.IconTable.
	Icons  *icons.Mapper
	Logger *logger.Logger
}

// Widget serializes every state transition behind mu. Lookups run on their
// own goroutines and report back under the same lock; each carries a sequence
// number and only the latest one may settle the state.
type Widget struct {
	id       string
	features Features
	fetcher  Fetcher
	locator  Locator
	icons    *icons.Mapper
	l        *logger.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu        sync.Mutex
	state     State
	seq       uint64
	locateSeq uint64
	mounted   bool
	closed    bool
	pending   int
	idle      chan struct{}
}

func New(opts Options) *Widget {
	locator := opts.Locator
	if locator == nil {
		locator = NoLocator{}
	}
	mapper := opts.Icons
	if mapper == nil {
		// a nil override map cannot fail
		mapper, _ = icons.NewMapper(opts.Features.IconTable, nil)
	}
	l := opts.Logger
	if l == nil {
		l = logger.NewNop()
	}

	ctx, cancel := context.WithCancel(context.Background())
	idle := make(chan struct{})
	close(idle)

	return &Widget{
		id:       opts.ID,
		features: opts.Features,
		fetcher:  opts.Fetcher,
		locator:  locator,
		icons:    mapper,
		l:        l,
		ctx:      ctx,
		cancel:   cancel,
		state:    State{Unit: models.Metric},
		idle:     idle,
	}
}

func (w *Widget) ID() string {
	return w.id
}

func (w *Widget) Features() Features {
	return w.features
}

// State returns a snapshot that shares nothing with the widget.
func (w *Widget) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshotLocked()
}

func (w *Widget) snapshotLocked() State {
	s := w.state
	if s.Data != nil {
		d := *s.Data
		s.Data = &d
	}
	return s
}

// Mount starts the one-shot geolocation pre-fill. Only the first call has an
// effect.
func (w *Widget) Mount() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.mounted || w.closed {
		return
	}
	w.mounted = true
	w.locateLocked()
}

// SetCity replaces the input text verbatim.
func (w *Widget) SetCity(text string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.state.City = text
}

func (w *Widget) SetFocus(focused bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.state.Focused = focused
}

// KeyDown submits on Enter while the input has focus and reports whether a
// lookup was started.
func (w *Widget) KeyDown(key string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if key != EnterKey || !w.state.Focused {
		return false
	}
	return w.submitLocked()
}

// Submit starts a lookup for the current text. Blank text is ignored and
// leaves the state untouched.
func (w *Widget) Submit() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.submitLocked()
}

func (w *Widget) submitLocked() bool {
	city := strings.TrimSpace(w.state.City)
	if city == "" || w.closed {
		return false
	}

	w.seq++
	seq, unit := w.seq, w.state.Unit

	w.state.Loading = true
	w.state.Error = ""
	if w.features.ClearDataOnSearch {
		w.state.Data = nil
	}

	w.beginLocked()
	go w.runFetch(seq, city, unit)

	return true
}

func (w *Widget) runFetch(seq uint64, city string, unit models.Unit) {
	record, err := w.fetcher.FetchByCity(w.ctx, city, unit)

	w.mu.Lock()
	defer w.mu.Unlock()
	defer w.endLocked()

	if seq != w.seq {
		w.l.Debug("discarding stale weather response", map[string]any{
			"widget": w.id,
			"seq":    seq,
			"latest": w.seq,
		})
		return
	}

	w.state.Loading = false
	if err != nil {
		w.state.Error = weather.UserMessage(err)
		w.state.Data = nil
		if w.features.ClearInputOnError {
			w.state.City = ""
			w.state.Focused = true
		}
		return
	}
	w.state.Data = &record
}

func (w *Widget) locateLocked() {
	if !w.features.EnableGeolocation || w.closed {
		return
	}

	w.locateSeq++
	seq, unit := w.locateSeq, w.state.Unit

	w.beginLocked()
	go w.runLocate(seq, unit)
}

func (w *Widget) runLocate(seq uint64, unit models.Unit) {
	city := w.resolveCity(unit)

	w.mu.Lock()
	defer w.mu.Unlock()
	defer w.endLocked()

	if city == "" || seq != w.locateSeq || w.closed {
		return
	}

	w.state.City = city
	if w.features.SearchOnLocate {
		w.submitLocked()
	}
}

// resolveCity never fails loudly: geolocation problems only reach the log.
func (w *Widget) resolveCity(unit models.Unit) string {
	pos, err := w.locator.CurrentPosition(w.ctx)
	if err != nil {
		w.l.Warning("geolocation unavailable", map[string]any{"widget": w.id, "err": err.Error()})
		return ""
	}

	record, err := w.fetcher.FetchByCoordinates(w.ctx, pos.Lat, pos.Lon, unit)
	if err != nil {
		w.l.Warning("reverse lookup failed", map[string]any{"widget": w.id, "position": pos.String(), "err": err.Error()})
		return ""
	}

	return record.City
}

// DismissError clears the error so the user can try again.
func (w *Widget) DismissError() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.state.Error = ""
}

// SetUnit switches the unit system. On a mounted widget a real change runs
// geolocation again, since the reverse lookup is unit dependent.
func (w *Widget) SetUnit(unit models.Unit) error {
	if _, err := models.ParseUnit(string(unit)); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.features.ShowSettings {
		return ErrSettingsDisabled
	}
	if w.state.Unit == unit {
		return nil
	}
	w.state.Unit = unit
	if w.mounted {
		w.locateLocked()
	}
	return nil
}

func (w *Widget) SetDarkMode(on bool) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.features.ShowSettings {
		return ErrSettingsDisabled
	}
	w.state.DarkMode = on
	return nil
}

func (w *Widget) SetSettingsOpen(open bool) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.features.ShowSettings {
		return ErrSettingsDisabled
	}
	w.state.SettingsOpen = open
	return nil
}

// Wait blocks until no lookup or geolocation is in flight.
func (w *Widget) Wait(ctx context.Context) error {
	for {
		w.mu.Lock()
		if w.pending == 0 {
			w.mu.Unlock()
			return nil
		}
		idle := w.idle
		w.mu.Unlock()

		select {
		case <-idle:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Close cancels in-flight work. A closed widget ignores further submits.
func (w *Widget) Close() {
	w.mu.Lock()
	w.closed = true
	w.mu.Unlock()
	w.cancel()
}

func (w *Widget) Closed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed
}

func (w *Widget) beginLocked() {
	if w.pending == 0 {
		w.idle = make(chan struct{})
	}
	w.pending++
}

func (w *Widget) endLocked() {
	w.pending--
	if w.pending == 0 {
		close(w.idle)
	}
}
