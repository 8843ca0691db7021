package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"farmdesk/pkg/weather"
)

type WeatherCtrl struct{ p weather.Provider }

func New(p weather.Provider) *WeatherCtrl { return &WeatherCtrl{p} }

func (h *WeatherCtrl) Current(c echo.Context) error {
	return c.JSON(http.StatusOK, h.p.GetCurrent())
}

func (h *WeatherCtrl) Forecast(c echo.Context) error {
	days, _ := strconv.Atoi(c.QueryParam("days"))
	return c.JSON(http.StatusOK, h.p.GetForecast(days))
}

func (h *WeatherCtrl) Alerts(c echo.Context) error {
	return c.JSON(http.StatusOK, h.p.GetAlerts())
}

func (h *WeatherCtrl) All(c echo.Context) error {
	return c.JSON(http.StatusOK, h.p.GetWeatherData())
}
