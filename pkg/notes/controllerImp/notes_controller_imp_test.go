package controllerImp

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"farmdesk/pkg/ai"
)

type stubLLM struct {
	notes string
	err   error
}

func (s *stubLLM) GenerateCropNotes(ai.NotesRequest) (string, error) { return s.notes, s.err }

func do(t *testing.T, ctrl *NotesCtrl, method, body string) (int, map[string]any) {
	t.Helper()
	e := echo.New()
	e.Any("/crop-notes", ctrl.Generate)

	req := httptest.NewRequest(method, "/crop-notes", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	out := map[string]any{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return rec.Code, out
}

func TestGenerateMethodGuard(t *testing.T) {
	ctrl := New(ai.NewMock(), zap.NewNop().Sugar())

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		code, out := do(t, ctrl, method, "")
		assert.Equal(t, http.StatusMethodNotAllowed, code, method)
		assert.Equal(t, false, out["success"])
		assert.Equal(t, "Method not allowed. Use POST.", out["message"])
	}
}

func TestGenerateValidation(t *testing.T) {
	ctrl := New(ai.NewMock(), zap.NewNop().Sugar())

	cases := map[string]string{
		"missing cropName": `{"status":"healthy"}`,
		"missing status":   `{"cropName":"Tomatoes"}`,
		"empty body":       `{}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			code, out := do(t, ctrl, http.MethodPost, body)
			assert.Equal(t, http.StatusBadRequest, code)
			assert.Equal(t, false, out["success"])
			assert.Equal(t, "Missing required fields: cropName and status are required", out["message"])
		})
	}
}

func TestGenerateNoKeyConfigured(t *testing.T) {
	ctrl := New(nil, zap.NewNop().Sugar())

	code, out := do(t, ctrl, http.MethodPost, `{"cropName":"Tomatoes","status":"healthy"}`)
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "OpenAI API key not configured", out["message"])
}

func TestGenerateUpstreamFailures(t *testing.T) {
	t.Run("error surfaces its message", func(t *testing.T) {
		ctrl := New(&stubLLM{err: errors.New("rate limited")}, zap.NewNop().Sugar())
		code, out := do(t, ctrl, http.MethodPost, `{"cropName":"Tomatoes","status":"healthy"}`)
		assert.Equal(t, http.StatusInternalServerError, code)
		assert.Equal(t, "rate limited", out["message"])
	})

	t.Run("empty generation", func(t *testing.T) {
		ctrl := New(&stubLLM{notes: ""}, zap.NewNop().Sugar())
		code, out := do(t, ctrl, http.MethodPost, `{"cropName":"Tomatoes","status":"healthy"}`)
		assert.Equal(t, http.StatusInternalServerError, code)
		assert.Equal(t, "Failed to generate notes from OpenAI", out["message"])
	})
}

func TestGenerateSuccess(t *testing.T) {
	ctrl := New(&stubLLM{notes: "Water deeply twice a week."}, zap.NewNop().Sugar())

	code, out := do(t, ctrl, http.MethodPost, `{"cropName":"Tomatoes","variety":"Roma","stage":"flowering","status":"attention"}`)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, out["success"])
	assert.Equal(t, "Water deeply twice a week.", out["notes"])
	_, hasMsg := out["message"]
	assert.False(t, hasMsg)
}
