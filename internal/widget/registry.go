package widget

import (
	"errors"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/patrickmn/go-cache"

	"weather-widget/internal/icons"
	"weather-widget/pkg/logger"
)

var (
	ErrNotFound     = errors.New("widget not found")
	ErrRegistryFull = errors.New("too many widgets mounted")
)

// Limits bound the registry. A zero IdleTTL keeps widgets until they are
// unmounted, a zero MaxWidgets means no cap.
type Limits struct {
	IdleTTL    time.Duration
	MaxWidgets int
}

// Registry owns the mounted widgets, one per browser view. Widgets expire
// after IdleTTL without a Get and are closed on the way out.
type Registry struct {
	features Features
	fetcher  Fetcher
	icons    *icons.Mapper
	l        *logger.Logger
	limits   Limits

	// mu keeps Get's refresh and Mount's cap check consistent with Unmount.
	mu      sync.Mutex
	widgets *cache.Cache
}

func NewRegistry(features Features, fetcher Fetcher, mapper *icons.Mapper, l *logger.Logger, limits Limits) *Registry {
	if l == nil {
		l = logger.NewNop()
	}
	if mapper == nil {
		// a nil override map cannot fail
		mapper, _ = icons.NewMapper(features.IconTable, nil)
	}

	ttl, cleanup := cache.NoExpiration, time.Duration(0)
	if limits.IdleTTL > 0 {
		ttl, cleanup = limits.IdleTTL, limits.IdleTTL
	}

	r := &Registry{
		features: features,
		fetcher:  fetcher,
		icons:    mapper,
		l:        l,
		limits:   limits,
		widgets:  cache.New(ttl, cleanup),
	}
	r.widgets.OnEvicted(r.evicted)

	return r
}

func (r *Registry) evicted(id string, v any) {
	w, ok := v.(*Widget)
	if !ok {
		return
	}
	w.Close()
	r.l.Debug("widget evicted", map[string]any{"widget": id})
}

// Mount creates a widget with a fresh ULID, registers it and mounts it.
func (r *Registry) Mount(locator Locator) (*Widget, error) {
	r.mu.Lock()
	if r.limits.MaxWidgets > 0 && r.widgets.ItemCount() >= r.limits.MaxWidgets {
		r.widgets.DeleteExpired()
		if r.widgets.ItemCount() >= r.limits.MaxWidgets {
			r.mu.Unlock()
			r.l.Warning("widget limit reached", map[string]any{"max": r.limits.MaxWidgets})
			return nil, ErrRegistryFull
		}
	}

	w := New(Options{
		ID:       ulid.Make().String(),
		Features: r.features,
		Fetcher:  r.fetcher,
		Locator:  locator,
		Icons:    r.icons,
		Logger:   r.l,
	})
	r.widgets.SetDefault(w.ID(), w)
	total := r.widgets.ItemCount()
	r.mu.Unlock()

	w.Mount()

	r.l.Info("widget mounted", map[string]any{"widget": w.ID(), "total": total})

	return w, nil
}

// Get returns the widget and restarts its idle timer.
func (r *Registry) Get(id string) (*Widget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.widgets.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	w := v.(*Widget)
	if w.Closed() {
		r.widgets.Delete(id)
		return nil, ErrNotFound
	}
	r.widgets.SetDefault(id, w)

	return w, nil
}

// Unmount closes and forgets the widget.
func (r *Registry) Unmount(id string) error {
	r.mu.Lock()
	_, ok := r.widgets.Get(id)
	if ok {
		// eviction closes it
		r.widgets.Delete(id)
	}
	r.mu.Unlock()

	if !ok {
		return ErrNotFound
	}

	r.l.Info("widget unmounted", map[string]any{"widget": id})
	return nil
}

// Len counts mounted widgets, including expired ones not yet collected.
func (r *Registry) Len() int {
	return r.widgets.ItemCount()
}

// Close unmounts every widget.
func (r *Registry) Close() {
	r.mu.Lock()
	items := r.widgets.Items()
	r.widgets.Flush()
	r.mu.Unlock()

	for _, item := range items {
		if w, ok := item.Object.(*Widget); ok {
			w.Close()
		}
	}
}
