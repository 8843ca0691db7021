package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"farmdesk/entities"
	"farmdesk/pkg/expense/service"
)

type ExpenseCtrl struct{ svc service.ExpenseService }

func New(svc service.ExpenseService) *ExpenseCtrl { return &ExpenseCtrl{svc} }

func (h *ExpenseCtrl) List(c echo.Context) error {
	if farmID := c.QueryParam("farmId"); farmID != "" {
		return c.JSON(http.StatusOK, h.svc.GetByFarmID(farmID))
	}
	return c.JSON(http.StatusOK, h.svc.GetAll())
}

func (h *ExpenseCtrl) MonthlyTotal(c echo.Context) error {
	month, _ := strconv.Atoi(c.QueryParam("month"))
	year, _ := strconv.Atoi(c.QueryParam("year"))
	total := h.svc.GetMonthlyTotal(c.QueryParam("farmId"), month, year)
	return c.JSON(http.StatusOK, map[string]float64{"total": total})
}

func (h *ExpenseCtrl) Get(c echo.Context) error {
	e, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, e)
}

func (h *ExpenseCtrl) Create(c echo.Context) error {
	var req entities.ExpenseInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	e, err := h.svc.Create(req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, e)
}

func (h *ExpenseCtrl) Update(c echo.Context) error {
	var req entities.ExpenseInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	e, err := h.svc.Update(c.Param("id"), req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, e)
}

func (h *ExpenseCtrl) Delete(c echo.Context) error {
	ok, err := h.svc.Delete(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]bool{"deleted": ok})
}
