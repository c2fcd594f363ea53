package models

// Coord is the city position reported by OpenWeatherMap. It is carried
// through but not rendered.
type Coord struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// CurrentWeather represents the current conditions for a queried location
type CurrentWeather struct {
	DisplayName     string  `json:"displayName"`
	CountryCode     string  `json:"countryCode"`
	RegionState     *string `json:"regionState,omitempty"`
	Condition       string  `json:"condition"`       // coarse category, e.g. "Rain"
	ConditionDetail string  `json:"conditionDetail"` // e.g. "light rain"
	TemperatureF    float64 `json:"temperatureF"`
	Coord           Coord   `json:"coord"`
}

// State returns the region/state code, or "" when the service omitted it.
func (c *CurrentWeather) State() string {
	if c.RegionState == nil {
		return ""
	}
	return *c.RegionState
}
