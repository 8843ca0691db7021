package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"farmdesk/pkg/ai"
)

type notesRequest struct {
	CropName string `json:"cropName"`
	Variety  string `json:"variety"`
	Stage    string `json:"stage"`
	Status   string `json:"status"`
}

type NotesCtrl struct {
	llm ai.Client // nil when no provider key is configured
	log *zap.SugaredLogger
}

func New(llm ai.Client, log *zap.SugaredLogger) *NotesCtrl {
	return &NotesCtrl{llm: llm, log: log}
}

func fail(c echo.Context, status int, msg string) error {
	return c.JSON(status, map[string]any{"success": false, "message": msg})
}

// Generate is mounted with e.Any so that non-POST methods hit the 405 branch.
func (h *NotesCtrl) Generate(c echo.Context) error {
	if c.Request().Method != http.MethodPost {
		return fail(c, http.StatusMethodNotAllowed, "Method not allowed. Use POST.")
	}

	var req notesRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Missing required fields: cropName and status are required")
	}
	if req.CropName == "" || req.Status == "" {
		return fail(c, http.StatusBadRequest, "Missing required fields: cropName and status are required")
	}

	if h.llm == nil {
		return fail(c, http.StatusInternalServerError, "OpenAI API key not configured")
	}

	notes, err := h.llm.GenerateCropNotes(ai.NotesRequest{
		CropName: req.CropName,
		Variety:  req.Variety,
		Stage:    req.Stage,
		Status:   req.Status,
	})
	if err != nil {
		h.log.Warnw("crop notes generation failed", "crop", req.CropName, "err", err)
		msg := err.Error()
		if msg == "" {
			msg = "An error occurred while generating crop notes"
		}
		return fail(c, http.StatusInternalServerError, msg)
	}
	if notes == "" {
		return fail(c, http.StatusInternalServerError, "Failed to generate notes from OpenAI")
	}

	return c.JSON(http.StatusOK, map[string]any{"success": true, "notes": notes})
}
