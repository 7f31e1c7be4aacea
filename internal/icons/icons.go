// Package icons maps provider condition codes to the widget's icon
// categories and their image handles.
package icons

import "fmt"

type Category string

const (
	Clear   Category = "clear"
	Cloud   Category = "cloud"
	Drizzle Category = "drizzle"
	Rain    Category = "rain"
	Snow    Category = "snow"
	Mist    Category = "mist"
)

// Fixed handles for the non-weather images of the widget.
const (
	HumidityAsset = "/assets/humidity.png"
	WindAsset     = "/assets/wind.png"
	SearchAsset   = "/assets/search.png"
)

var assets = map[Category]string{
	Clear:   "/assets/clear.png",
	Cloud:   "/assets/cloud.png",
	Drizzle: "/assets/drizzle.png",
	Rain:    "/assets/rain.png",
	Snow:    "/assets/snow.png",
	Mist:    "/assets/cloud.png",
}

// Table maps full condition codes ("04d") to categories.
type Table map[string]Category

// ClassicTable is the original mapping, where broken clouds (04) show drizzle.
func ClassicTable() Table {
	return Table{
		"01d": Clear, "01n": Clear,
		"02d": Cloud, "02n": Cloud,
		"03d": Drizzle, "03n": Drizzle,
		"04d": Drizzle, "04n": Drizzle,
		"09d": Rain, "09n": Rain,
		"10d": Rain, "10n": Rain,
		"13d": Snow, "13n": Snow,
		"50d": Mist, "50n": Mist,
	}
}

// DefaultTable differs from ClassicTable only in showing 04 as cloud.
func DefaultTable() Table {
	t := ClassicTable()
	t["04d"], t["04n"] = Cloud, Cloud
	return t
}

// ParseCategory accepts the category names used in configuration files.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if _, ok := assets[c]; !ok {
		return "", fmt.Errorf("unknown icon category %q", s)
	}
	return c, nil
}

// Mapper is safe for concurrent use; its table is never modified after
// construction.
type Mapper struct {
	table Table
}

// NewMapper copies base and applies overrides (code -> category name) on top.
func NewMapper(base Table, overrides map[string]string) (*Mapper, error) {
	table := make(Table, len(base)+len(overrides))
	for code, c := range base {
		table[code] = c
	}
	for code, name := range overrides {
		c, err := ParseCategory(name)
		if err != nil {
			return nil, fmt.Errorf("icon override for %q: %w", code, err)
		}
		table[code] = c
	}
	return &Mapper{table: table}, nil
}

// Lookup returns the category for code, Clear when the code is unknown.
func (m *Mapper) Lookup(code string) Category {
	if c, ok := m.table[code]; ok {
		return c
	}
	return Clear
}

func Asset(c Category) string {
	if a, ok := assets[c]; ok {
		return a
	}
	return assets[Clear]
}
