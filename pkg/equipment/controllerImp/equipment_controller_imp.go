package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmdesk/entities"
	"farmdesk/pkg/equipment/service"
)

type EquipmentCtrl struct{ svc service.EquipmentService }

func New(svc service.EquipmentService) *EquipmentCtrl { return &EquipmentCtrl{svc} }

func (h *EquipmentCtrl) List(c echo.Context) error {
	if farmID := c.QueryParam("farmId"); farmID != "" {
		return c.JSON(http.StatusOK, h.svc.GetByFarmID(farmID))
	}
	return c.JSON(http.StatusOK, h.svc.GetAll())
}

func (h *EquipmentCtrl) TotalValue(c echo.Context) error {
	total := h.svc.GetTotalValue(c.QueryParam("farmId"))
	return c.JSON(http.StatusOK, map[string]float64{"total": total})
}

func (h *EquipmentCtrl) Get(c echo.Context) error {
	e, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, e)
}

func (h *EquipmentCtrl) Create(c echo.Context) error {
	var req entities.EquipmentInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	e, err := h.svc.Create(req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, e)
}

func (h *EquipmentCtrl) Update(c echo.Context) error {
	var req entities.EquipmentInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	e, err := h.svc.Update(c.Param("id"), req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, e)
}

func (h *EquipmentCtrl) Delete(c echo.Context) error {
	ok, err := h.svc.Delete(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]bool{"deleted": ok})
}
