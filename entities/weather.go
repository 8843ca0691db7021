package entities

type CurrentConditions struct {
	Temperature float64 `json:"temperature"`
	Condition   string  `json:"condition"` // sunny|cloudy|rainy|stormy
	Humidity    float64 `json:"humidity"`
	WindSpeed   float64 `json:"windSpeed"`
	Location    string  `json:"location"`
}

type ForecastDay struct {
	Date          string  `json:"date"`
	DayOfWeek     string  `json:"dayOfWeek"`
	High          float64 `json:"high"`
	Low           float64 `json:"low"`
	Condition     string  `json:"condition"`
	Precipitation float64 `json:"precipitation"` // chance, percent
}

type WeatherAlert struct {
	Type     string `json:"type"`     // frost|storm|drought|heat
	Severity string `json:"severity"` // info|warning|critical
	Message  string `json:"message"`
}

type WeatherData struct {
	Current  CurrentConditions `json:"current"`
	Forecast []ForecastDay     `json:"forecast"`
	Alerts   []WeatherAlert    `json:"alerts"`
}
