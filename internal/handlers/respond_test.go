package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"urbannest-properties/internal/apperrors"
	"urbannest-properties/internal/importer"
	"urbannest-properties/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.InitLogger(io.Discard, "error")
	os.Exit(m.Run())
}

func recordError(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	respondError(c, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestRespondErrorEvaluationFailure(t *testing.T) {
	err := apperrors.NewAppError(apperrors.ErrCodeEvaluationFailed, "AI evaluation failed",
		http.StatusInternalServerError, errors.New("generate: 429"))

	w, body := recordError(t, err)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "AI evaluation failed", body["message"])
	assert.NotContains(t, body, "error")
	assert.NotContains(t, body, "code")
}

func TestRespondErrorAppError(t *testing.T) {
	w, body := recordError(t, apperrors.NotFound("Property not found"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Property not found", body["error"])
	assert.Equal(t, apperrors.ErrCodeNotFound, body["code"])
}

func TestRespondErrorCSVValidation(t *testing.T) {
	w, body := recordError(t, &importer.ValidationError{InvalidRows: []string{"PROP2", "row 4"}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "CSV contains invalid rows", body["message"])
	assert.Equal(t, []interface{}{"PROP2", "row 4"}, body["invalidRows"])
}

func TestRespondErrorUnknown(t *testing.T) {
	w, body := recordError(t, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Server error", body["error"])
}
