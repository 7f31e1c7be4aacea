package config

const (
	// VariantClassic is the original search-only widget.
	VariantClassic = "v1"
	// VariantExtended adds settings, geolocation and extended metrics.
	VariantExtended = "v2"
)

// RequireAPIKey reports whether lookups must fail fast when no API key is
// configured. Only the classic widget checks before calling the provider.
func (c *Config) RequireAPIKey() bool {
	return c.Widget.Variant == VariantClassic
}
