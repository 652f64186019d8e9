package version_test

import (
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/cashflow-insight/backend/pkg/controllers/version"
	"github.com/cashflow-insight/backend/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestOptions(t *testing.T) {
	w := httptest.NewRecorder()
	_, r := gin.CreateTestContext(w)
	version.RegisterRoutes(r.Group("/version"), "1.2.3")

	req, _ := http.NewRequest(http.MethodOptions, "http://example.com/version", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "OPTIONS, GET", w.Header().Get("allow"))
}

func TestGet(t *testing.T) {
	tests := []struct {
		name    string
		release string
	}{
		{"Release build", "1.2.3"},
		{"Development build", "0.0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			_, r := gin.CreateTestContext(recorder)
			version.RegisterRoutes(r.Group("/version"), tt.release)

			req, _ := http.NewRequest(http.MethodGet, "https://example.com/version", nil)
			r.ServeHTTP(recorder, req)

			var response version.Response
			test.DecodeResponse(t, recorder, &response)

			assert.Equal(t, http.StatusOK, recorder.Code)
			assert.Equal(t, version.Build{Version: tt.release, GoVersion: runtime.Version()}, response.Data)
		})
	}
}

// Each router keeps the release it was set up with.
func TestGetIndependentRouters(t *testing.T) {
	_, first := gin.CreateTestContext(httptest.NewRecorder())
	version.RegisterRoutes(first.Group("/version"), "1.0.0")

	_, second := gin.CreateTestContext(httptest.NewRecorder())
	version.RegisterRoutes(second.Group("/version"), "2.0.0")

	recorder := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "https://example.com/version", nil)
	first.ServeHTTP(recorder, req)

	var response version.Response
	test.DecodeResponse(t, recorder, &response)
	assert.Equal(t, "1.0.0", response.Data.Version)
}
