package widget

import (
	"fmt"

	"weather-widget/config"
	"weather-widget/internal/icons"
)

// Features selects the widget behaviour. ClassicFeatures and ExtendedFeatures
// reproduce the two historical variants.
type Features struct {
	// ShowSettings enables the unit, dark mode and settings panel controls.
	ShowSettings bool
	// EnableGeolocation pre-fills the city from the locator on mount.
	EnableGeolocation bool
	// ExtendedMetrics adds feels-like, pressure, visibility and sun times to
	// the result view.
	ExtendedMetrics bool
	// ClearDataOnSearch drops the displayed record as soon as a lookup starts.
	ClearDataOnSearch bool
	// ClearInputOnError empties the input and refocuses it after a failure.
	ClearInputOnError bool
	// SearchOnLocate submits a lookup once geolocation has filled the city.
	SearchOnLocate bool
	IconTable      icons.Table
}

func ClassicFeatures() Features {
	return Features{
		ClearDataOnSearch: true,
		ClearInputOnError: true,
		IconTable:         icons.ClassicTable(),
	}
}

func ExtendedFeatures() Features {
	return Features{
		ShowSettings:      true,
		EnableGeolocation: true,
		ExtendedMetrics:   true,
		IconTable:         icons.DefaultTable(),
	}
}

// FeaturesFromConfig resolves the configured variant and builds its icon
// mapper with the configured overrides applied.
func FeaturesFromConfig(cfg config.WidgetConfig) (Features, *icons.Mapper, error) {
	var f Features
	switch cfg.Variant {
	case config.VariantClassic:
		f = ClassicFeatures()
	case config.VariantExtended:
		f = ExtendedFeatures()
	default:
		return Features{}, nil, fmt.Errorf("unknown widget variant %q", cfg.Variant)
	}
	f.SearchOnLocate = cfg.SearchOnLocate

	mapper, err := icons.NewMapper(f.IconTable, cfg.Icons)
	if err != nil {
		return Features{}, nil, err
	}
	return f, mapper, nil
}
