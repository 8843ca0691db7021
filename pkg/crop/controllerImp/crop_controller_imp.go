package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmdesk/entities"
	"farmdesk/pkg/crop/service"
)

type CropCtrl struct{ svc service.CropService }

func New(svc service.CropService) *CropCtrl { return &CropCtrl{svc} }

func (h *CropCtrl) List(c echo.Context) error {
	if farmID := c.QueryParam("farmId"); farmID != "" {
		return c.JSON(http.StatusOK, h.svc.GetByFarmID(farmID))
	}
	return c.JSON(http.StatusOK, h.svc.GetAll())
}

func (h *CropCtrl) Get(c echo.Context) error {
	cr, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, cr)
}

func (h *CropCtrl) Create(c echo.Context) error {
	var req entities.CropInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	cr, err := h.svc.Create(req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, cr)
}

func (h *CropCtrl) Update(c echo.Context) error {
	var req entities.CropInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	cr, err := h.svc.Update(c.Param("id"), req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, cr)
}

func (h *CropCtrl) Delete(c echo.Context) error {
	ok, err := h.svc.Delete(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]bool{"deleted": ok})
}
