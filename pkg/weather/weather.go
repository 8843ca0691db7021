package weather

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"farmdesk/entities"
)

type Provider interface {
	GetCurrent() entities.CurrentConditions
	GetForecast(days int) []entities.ForecastDay
	GetAlerts() []entities.WeatherAlert
	GetWeatherData() entities.WeatherData
}

type provider struct {
	current  entities.CurrentConditions
	forecast []entities.ForecastDay
	alerts   []entities.WeatherAlert
}

// LoadFromFiles builds a Provider from fixture files. Each path is optional;
// missing or unreadable files fall back to the built-in defaults so the server
// still starts with plausible data.
func LoadFromFiles(forecastCSV, alertsCSV, currentXLSX string) (Provider, error) {
	p := &provider{
		current:  defaultCurrent(),
		forecast: defaultForecast(),
		alerts:   defaultAlerts(),
	}

	if forecastCSV != "" {
		if err := p.loadForecastCSV(forecastCSV); err != nil && !os.IsNotExist(err) {
			return nil, err
		}
	}
	if alertsCSV != "" { _ = p.loadAlertsCSV(alertsCSV) }
	if currentXLSX != "" { _ = p.loadCurrentXLSX(currentXLSX) }

	if len(p.forecast) == 0 {
		return nil, errors.New("no forecast data loaded")
	}
	return p, nil
}

// Default returns a Provider backed entirely by the built-in fixture data.
func Default() Provider {
	return &provider{current: defaultCurrent(), forecast: defaultForecast(), alerts: defaultAlerts()}
}

func (p *provider) GetCurrent() entities.CurrentConditions { return p.current }

func (p *provider) GetForecast(days int) []entities.ForecastDay {
	if days <= 0 || days > len(p.forecast) {
		days = len(p.forecast)
	}
	out := make([]entities.ForecastDay, days)
	copy(out, p.forecast[:days])
	return out
}

func (p *provider) GetAlerts() []entities.WeatherAlert {
	out := make([]entities.WeatherAlert, len(p.alerts))
	copy(out, p.alerts)
	return out
}

func (p *provider) GetWeatherData() entities.WeatherData {
	return entities.WeatherData{
		Current:  p.GetCurrent(),
		Forecast: p.GetForecast(0),
		Alerts:   p.GetAlerts(),
	}
}

func (p *provider) loadForecastCSV(path string) error {
	f, err := os.Open(path)
	if err != nil { return err }
	defer f.Close()

	cr := csv.NewReader(f)
	head, err := cr.Read()
	if err != nil { return err }

	norm := func(s string) string {
		s = strings.TrimSpace(s)
		s = strings.TrimPrefix(s, "\ufeff") // BOM
		s = strings.ToLower(s)
		s = strings.ReplaceAll(s, " ", "")
		s = strings.ReplaceAll(s, "-", "")
		s = strings.ReplaceAll(s, "_", "")
		return s
	}
	hmap := map[string]int{}
	for i, h := range head {
		hmap[norm(h)] = i
	}
	findAny := func(keys ...string) int {
		for _, k := range keys {
			if idx, ok := hmap[norm(k)]; ok { return idx }
		}
		return -1
	}

	cDate := findAny("Date", "day")
	cDow  := findAny("DayOfWeek", "weekday", "dow")
	cHigh := findAny("High", "high_temp", "tmax")
	cLow  := findAny("Low", "low_temp", "tmin")
	cCond := findAny("Condition", "weather", "sky")
	cPrec := findAny("Precipitation", "precip", "rain_chance", "pop")

	if cDate == -1 || cHigh == -1 || cLow == -1 {
		// Header we don't understand; keep defaults.
		return nil
	}

	var rows []entities.ForecastDay
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) { break }
			return err
		}
		get := func(idx int) string {
			if idx < 0 || idx >= len(rec) { return "" }
			return strings.TrimSpace(rec[idx])
		}

		date := get(cDate)
		if date == "" { continue }
		high, _ := strconv.ParseFloat(get(cHigh), 64)
		low, _ := strconv.ParseFloat(get(cLow), 64)
		prec, _ := strconv.ParseFloat(get(cPrec), 64)

		dow := get(cDow)
		if dow == "" {
			if d, err := time.Parse("2006-01-02", date); err == nil {
				dow = d.Weekday().String()
			}
		}
		cond := get(cCond)
		if cond == "" { cond = "sunny" }

		rows = append(rows, entities.ForecastDay{
			Date:          date,
			DayOfWeek:     dow,
			High:          high,
			Low:           low,
			Condition:     cond,
			Precipitation: prec,
		})
	}
	if len(rows) > 0 {
		p.forecast = rows
	}
	return nil
}

func (p *provider) loadAlertsCSV(path string) error {
	f, err := os.Open(path)
	if err != nil { return err }
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	_, _ = cr.Read()

	var rows []entities.WeatherAlert
	for {
		rec, err := cr.Read()
		if err != nil { break }
		if len(rec) < 3 { continue }
		rows = append(rows, entities.WeatherAlert{
			Type:     strings.TrimSpace(rec[0]),
			Severity: strings.TrimSpace(rec[1]),
			Message:  strings.TrimSpace(rec[2]),
		})
	}
	p.alerts = rows
	return nil
}

// loadCurrentXLSX reads the first sheet: row 1 is headers, row 2 values.
// Expected columns: Temperature, Condition, Humidity, WindSpeed, Location.
func (p *provider) loadCurrentXLSX(path string) error {
	x, err := excelize.OpenFile(path)
	if err != nil { return err }
	defer x.Close()

	sheet := x.GetSheetName(0)
	rows, err := x.GetRows(sheet)
	if err != nil || len(rows) < 2 { return err }

	idx := map[string]int{}
	for i, h := range rows[0] {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	val := func(key string) string {
		i, ok := idx[key]
		if !ok || i >= len(rows[1]) { return "" }
		return strings.TrimSpace(rows[1][i])
	}

	if v, err := strconv.ParseFloat(val("temperature"), 64); err == nil {
		p.current.Temperature = v
	}
	if v := val("condition"); v != "" {
		p.current.Condition = v
	}
	if v, err := strconv.ParseFloat(val("humidity"), 64); err == nil {
		p.current.Humidity = v
	}
	if v, err := strconv.ParseFloat(val("windspeed"), 64); err == nil {
		p.current.WindSpeed = v
	}
	if v := val("location"); v != "" {
		p.current.Location = v
	}
	return nil
}

func defaultCurrent() entities.CurrentConditions {
	return entities.CurrentConditions{
		Temperature: 24,
		Condition:   "sunny",
		Humidity:    55,
		WindSpeed:   12,
		Location:    "Farm Region",
	}
}

func defaultForecast() []entities.ForecastDay {
	conds := []string{"sunny", "cloudy", "rainy", "sunny", "cloudy", "sunny", "stormy"}
	highs := []float64{26, 24, 21, 27, 25, 28, 20}
	lows := []float64{15, 14, 12, 16, 14, 17, 11}
	precip := []float64{5, 20, 80, 10, 30, 5, 90}

	start := time.Now()
	out := make([]entities.ForecastDay, 0, len(conds))
	for i := range conds {
		d := start.AddDate(0, 0, i)
		out = append(out, entities.ForecastDay{
			Date:          d.Format("2006-01-02"),
			DayOfWeek:     d.Weekday().String(),
			High:          highs[i],
			Low:           lows[i],
			Condition:     conds[i],
			Precipitation: precip[i],
		})
	}
	return out
}

func defaultAlerts() []entities.WeatherAlert {
	return []entities.WeatherAlert{
		{Type: "frost", Severity: "warning", Message: "Frost expected overnight; protect sensitive crops."},
		{Type: "storm", Severity: "info", Message: "Thunderstorms possible later this week."},
	}
}
