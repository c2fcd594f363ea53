package display

// Condition is the coarse weather category reported in weather[0].main.
type Condition string

const (
	Thunderstorm Condition = "Thunderstorm"
	Drizzle      Condition = "Drizzle"
	Rain         Condition = "Rain"
	Snow         Condition = "Snow"
	Clear        Condition = "Clear"
	Clouds       Condition = "Clouds"

	// Atmosphere group.
	Mist    Condition = "Mist"
	Smoke   Condition = "Smoke"
	Haze    Condition = "Haze"
	Dust    Condition = "Dust"
	Fog     Condition = "Fog"
	Sand    Condition = "Sand"
	Ash     Condition = "Ash"
	Squall  Condition = "Squall"
	Tornado Condition = "Tornado"
)

// UnknownGlyph is shown for categories outside the known vocabulary.
const UnknownGlyph = "?"

const atmosphereGlyph = "🌫️"

var glyphs = map[Condition]string{
	Thunderstorm: "⛈️",
	Drizzle:      "🌦️",
	Rain:         "🌧️",
	Snow:         "❄️",
	Clear:        "☀️",
	Clouds:       "☁️",
	Mist:         atmosphereGlyph,
	Smoke:        atmosphereGlyph,
	Haze:         atmosphereGlyph,
	Dust:         atmosphereGlyph,
	Fog:          atmosphereGlyph,
	Sand:         atmosphereGlyph,
	Ash:          atmosphereGlyph,
	Squall:       atmosphereGlyph,
	Tornado:      atmosphereGlyph,
}

// Glyph maps a condition category to its display symbol. Matching is exact
// and case-sensitive.
func Glyph(condition string) string {
	if g, ok := glyphs[Condition(condition)]; ok {
		return g
	}
	return UnknownGlyph
}

// Known reports whether condition is part of the recognized vocabulary.
func Known(condition string) bool {
	_, ok := glyphs[Condition(condition)]
	return ok
}
