package widget

import (
	"fmt"
	"strings"

	"weather-widget/internal/icons"
	"weather-widget/internal/models"
)

type Branch string

const (
	BranchIdle    Branch = "idle"
	BranchLoading Branch = "loading"
	BranchError   Branch = "error"
	BranchResult  Branch = "result"
)

const (
	loadingText = "Loading weather data..."
	retryText   = "Try again"
)

// View is everything a client needs to draw the widget. Exactly one of
// Loading, Error and Result is filled, matching Branch.
type View struct {
	ID            string        `json:"id"`
	Branch        Branch        `json:"branch"`
	City          string        `json:"city"`
	FocusInput    bool          `json:"focus_input"`
	SubmitEnabled bool          `json:"submit_enabled"`
	SearchIcon    string        `json:"search_icon"`
	Loading       string        `json:"loading,omitempty"`
	Error         *ErrorView    `json:"error,omitempty"`
	Result        *ResultView   `json:"result,omitempty"`
	Settings      *SettingsView `json:"settings,omitempty"`
}

type ErrorView struct {
	Message     string `json:"message"`
	RetryButton string `json:"retry_button"`
}

type SettingsView struct {
	Open     bool        `json:"open"`
	Unit     models.Unit `json:"unit"`
	DarkMode bool        `json:"dark_mode"`
}

type ResultView struct {
	Icon            icons.Category   `json:"icon"`
	IconAsset       string           `json:"icon_asset"`
	Description     string           `json:"description"`
	Location        string           `json:"location"`
	Temperature     int              `json:"temperature"`
	TemperatureUnit string           `json:"temperature_unit"`
	Humidity        string           `json:"humidity"`
	HumidityIcon    string           `json:"humidity_icon"`
	WindSpeed       string           `json:"wind_speed"`
	WindIcon        string           `json:"wind_icon"`
	Extended        *ExtendedMetrics `json:"extended,omitempty"`
}

type ExtendedMetrics struct {
	FeelsLike  string `json:"feels_like"`
	Pressure   string `json:"pressure"`
	Visibility string `json:"visibility"`
	Sunrise    string `json:"sunrise,omitempty"`
	Sunset     string `json:"sunset,omitempty"`
}

// SelectBranch picks the single branch to draw for s.
func SelectBranch(s State) Branch {
	switch {
	case s.Loading:
		return BranchLoading
	case s.Error != "":
		return BranchError
	case s.Data != nil:
		return BranchResult
	}
	return BranchIdle
}

// Render builds the view for the current state. Icons are resolved here and
// nowhere else.
func (w *Widget) Render() View {
	w.mu.Lock()
	s := w.snapshotLocked()
	w.mu.Unlock()

	v := View{
		ID:            w.id,
		Branch:        SelectBranch(s),
		City:          s.City,
		FocusInput:    s.Focused,
		SubmitEnabled: !s.Loading && strings.TrimSpace(s.City) != "",
		SearchIcon:    icons.SearchAsset,
	}

	if w.features.ShowSettings {
		v.Settings = &SettingsView{
			Open:     s.SettingsOpen,
			Unit:     s.Unit,
			DarkMode: s.DarkMode,
		}
	}

	switch v.Branch {
	case BranchLoading:
		v.Loading = loadingText
	case BranchError:
		v.Error = &ErrorView{Message: s.Error, RetryButton: retryText}
	case BranchResult:
		v.Result = w.resultView(*s.Data)
	}

	return v
}

func (w *Widget) resultView(r models.WeatherRecord) *ResultView {
	category := w.icons.Lookup(r.ConditionCode)

	rv := &ResultView{
		Icon:            category,
		IconAsset:       icons.Asset(category),
		Description:     r.Description,
		Location:        r.City,
		Temperature:     r.Temperature,
		TemperatureUnit: r.Unit.TemperatureSymbol(),
		Humidity:        fmt.Sprintf("%d%%", r.Humidity),
		HumidityIcon:    icons.HumidityAsset,
		WindSpeed:       fmt.Sprintf("%d %s", r.WindSpeed, r.Unit.SpeedSymbol()),
		WindIcon:        icons.WindAsset,
	}

	if w.features.ExtendedMetrics {
		rv.Location = r.Location
		rv.Extended = &ExtendedMetrics{
			FeelsLike:  fmt.Sprintf("%d%s", r.FeelsLike, r.Unit.TemperatureSymbol()),
			Pressure:   fmt.Sprintf("%d hPa", r.Pressure),
			Visibility: fmt.Sprintf("%.1f km", r.VisibilityKm),
			Sunrise:    r.Sunrise,
			Sunset:     r.Sunset,
		}
	}

	return rv
}
