package models

// ForecastTimeLayout is the layout of ForecastPoint.TimestampUTC ("dt_txt").
const ForecastTimeLayout = "2006-01-02 15:04:05"

// ForecastPoint represents a single 3-hour forecast sample
type ForecastPoint struct {
	TimestampUTC    string  `json:"timestampUtc"` // "YYYY-MM-DD HH:MM:SS", UTC
	Condition       string  `json:"condition"`
	ConditionDetail string  `json:"conditionDetail"`
	TemperatureF    float64 `json:"temperatureF"`
}

// ForecastSeries is the forecast list in the order the service delivered it
// (ascending time).
type ForecastSeries []ForecastPoint
