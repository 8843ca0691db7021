package weather

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultProvider(t *testing.T) {
	p := Default()

	cur := p.GetCurrent()
	assert.NotEmpty(t, cur.Condition)
	assert.NotEmpty(t, cur.Location)

	fc := p.GetForecast(0)
	assert.Len(t, fc, 7)

	data := p.GetWeatherData()
	assert.Equal(t, cur, data.Current)
	assert.Len(t, data.Forecast, 7)
	assert.NotEmpty(t, data.Alerts)
}

func TestGetForecastDays(t *testing.T) {
	p := Default()

	assert.Len(t, p.GetForecast(3), 3)
	assert.Len(t, p.GetForecast(99), 7)
	assert.Len(t, p.GetForecast(-1), 7)
}

func TestLoadForecastCSV(t *testing.T) {
	t.Run("plain headers", func(t *testing.T) {
		path := writeFile(t, "forecast.csv", `Date,DayOfWeek,High,Low,Condition,Precipitation
2024-07-01,Monday,30,18,sunny,5
2024-07-02,Tuesday,28,17,rainy,70
`)
		p, err := LoadFromFiles(path, "", "")
		require.NoError(t, err)
		fc := p.GetForecast(0)
		require.Len(t, fc, 2)
		assert.Equal(t, 30.0, fc[0].High)
		assert.Equal(t, "rainy", fc[1].Condition)
		assert.Equal(t, 70.0, fc[1].Precipitation)
	})

	t.Run("aliased headers with BOM", func(t *testing.T) {
		path := writeFile(t, "forecast.csv", "\ufeffday,tmax,tmin,pop\n2024-07-01,25,12,10\n")
		p, err := LoadFromFiles(path, "", "")
		require.NoError(t, err)
		fc := p.GetForecast(0)
		require.Len(t, fc, 1)
		assert.Equal(t, 25.0, fc[0].High)
		// weekday derived from the date when the column is absent
		assert.Equal(t, "Monday", fc[0].DayOfWeek)
		// condition falls back when missing
		assert.Equal(t, "sunny", fc[0].Condition)
	})

	t.Run("unrecognized header keeps defaults", func(t *testing.T) {
		path := writeFile(t, "forecast.csv", "foo,bar\n1,2\n")
		p, err := LoadFromFiles(path, "", "")
		require.NoError(t, err)
		assert.Len(t, p.GetForecast(0), 7)
	})

	t.Run("missing file keeps defaults", func(t *testing.T) {
		p, err := LoadFromFiles(filepath.Join(t.TempDir(), "nope.csv"), "", "")
		require.NoError(t, err)
		assert.Len(t, p.GetForecast(0), 7)
	})
}

func TestLoadAlertsCSV(t *testing.T) {
	path := writeFile(t, "alerts.csv", `Type,Severity,Message
frost,warning,Cover seedlings tonight.
heat,critical,Irrigate before noon.
`)
	p, err := LoadFromFiles("", path, "")
	require.NoError(t, err)

	alerts := p.GetAlerts()
	require.Len(t, alerts, 2)
	assert.Equal(t, "frost", alerts[0].Type)
	assert.Equal(t, "critical", alerts[1].Severity)
	assert.Equal(t, "Irrigate before noon.", alerts[1].Message)
}

func TestLoadCurrentXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "current.xlsx")
	x := excelize.NewFile()
	sheet := x.GetSheetName(0)
	require.NoError(t, x.SetSheetRow(sheet, "A1", &[]any{"Temperature", "Condition", "Humidity", "WindSpeed", "Location"}))
	require.NoError(t, x.SetSheetRow(sheet, "A2", &[]any{31.5, "cloudy", 62, 8, "River Bend"}))
	require.NoError(t, x.SaveAs(path))

	p, err := LoadFromFiles("", "", path)
	require.NoError(t, err)

	cur := p.GetCurrent()
	assert.Equal(t, 31.5, cur.Temperature)
	assert.Equal(t, "cloudy", cur.Condition)
	assert.Equal(t, 62.0, cur.Humidity)
	assert.Equal(t, 8.0, cur.WindSpeed)
	assert.Equal(t, "River Bend", cur.Location)
}
