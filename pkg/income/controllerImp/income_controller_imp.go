package controllerImp

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"farmdesk/entities"
	"farmdesk/pkg/income/service"
)

type IncomeCtrl struct{ svc service.IncomeService }

func New(svc service.IncomeService) *IncomeCtrl { return &IncomeCtrl{svc} }

func (h *IncomeCtrl) List(c echo.Context) error {
	if farmID := c.QueryParam("farmId"); farmID != "" {
		return c.JSON(http.StatusOK, h.svc.GetByFarmID(farmID))
	}
	return c.JSON(http.StatusOK, h.svc.GetAll())
}

func (h *IncomeCtrl) Get(c echo.Context) error {
	inc, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, inc)
}

// Create and Update take one record or a batch; the response carries
// whatever subset the store accepted.
func (h *IncomeCtrl) Create(c echo.Context) error {
	items, err := bindItems(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	return c.JSON(http.StatusCreated, h.svc.Create(items))
}

func (h *IncomeCtrl) Update(c echo.Context) error {
	items, err := bindItems(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	return c.JSON(http.StatusOK, h.svc.Update(items))
}

func (h *IncomeCtrl) Delete(c echo.Context) error {
	var body struct {
		IDs []string `json:"ids"`
	}
	if err := c.Bind(&body); err != nil || len(body.IDs) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "ids required"})
	}
	return c.JSON(http.StatusOK, map[string]bool{"deleted": h.svc.Delete(body.IDs)})
}

// the body is either a single record object or an array of them
func bindItems(c echo.Context) ([]entities.Income, error) {
	b, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, err
	}
	var items []entities.Income
	if err := json.Unmarshal(b, &items); err == nil {
		return items, nil
	}
	var one entities.Income
	if err := json.Unmarshal(b, &one); err != nil {
		return nil, err
	}
	return []entities.Income{one}, nil
}
