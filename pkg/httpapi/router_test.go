package httpapi_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arclab-robotics/gridsearch/pkg/httpapi"
	"github.com/arclab-robotics/gridsearch/pkg/logger"
)

func TestHealthzReturnsOK(t *testing.T) {
	svc := newTestService(t)
	log, err := logger.New()
	require.NoError(t, err)
	router := httpapi.NewRouter(log, svc, false)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPlanBatchEndpointAnswersQueries(t *testing.T) {
	svc := newTestService(t)
	log, err := logger.New()
	require.NoError(t, err)
	router := httpapi.NewRouter(log, svc, false)

	body := `{
		"bounds_x_max": 10, "bounds_y_max": 10,
		"cell_size": 1, "grid_resolution": 1,
		"queries": [{"id": "q1", "start": {"x": 0, "y": 0}, "goal": {"x": 9, "y": 9}}]
	}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/plan/batch", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"q1"`)
}

func TestPlanEndpointRejectsMalformedJSON(t *testing.T) {
	svc := newTestService(t)
	log, err := logger.New()
	require.NoError(t, err)
	router := httpapi.NewRouter(log, svc, false)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/plan", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
