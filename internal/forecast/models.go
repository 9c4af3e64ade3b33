package forecast

type Condition struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
}

type HourlyReading struct {
	Time      string    `json:"time"`
	TimeEpoch int64     `json:"time_epoch"`
	TempC     float64   `json:"temp_c"`
	TempF     float64   `json:"temp_f"`
	Condition Condition `json:"condition"`
}

type DayStats struct {
	MaxTempC float64 `json:"maxtemp_c"`
	MaxTempF float64 `json:"maxtemp_f"`
	MinTempC float64 `json:"mintemp_c"`
	MinTempF float64 `json:"mintemp_f"`
}

// DayForecast holds one calendar day, hour ordered 00:00 to 23:00.
type DayForecast struct {
	Date string          `json:"date"`
	Day  DayStats        `json:"day"`
	Hour []HourlyReading `json:"hour"`
}

type Location struct {
	Name      string `json:"name"`
	Region    string `json:"region"`
	Country   string `json:"country"`
	Localtime string `json:"localtime"`
}

type Current struct {
	TempC     float64   `json:"temp_c"`
	TempF     float64   `json:"temp_f"`
	Condition Condition `json:"condition"`
}

// ForecastResponse is the forecast.json payload. ForecastDay[0] is today and
// ForecastDay[1] is tomorrow when two or more days were requested.
type ForecastResponse struct {
	Location Location `json:"location"`
	Current  Current  `json:"current"`
	Forecast struct {
		ForecastDay []DayForecast `json:"forecastday"`
	} `json:"forecast"`
}

// Suggestion is one entry of the search.json payload.
type Suggestion struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Region  string `json:"region,omitempty"`
	Country string `json:"country,omitempty"`
}
