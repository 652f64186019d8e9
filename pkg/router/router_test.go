package router_test

import (
	"net/http"
	"net/url"
	"runtime"
	"testing"

	"github.com/cashflow-insight/backend/internal/config"
	"github.com/cashflow-insight/backend/pkg/router"
	"github.com/cashflow-insight/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.Config {
	url, _ := url.Parse("http://example.com")

	return config.Config{
		GinMode:          "release",
		Port:             8080,
		APIURL:           url,
		CORSAllowOrigins: []string{"*"},
		MaxUploadSize:    1024,
	}
}

func TestPprof(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
	}{
		{"Enabled", true},
		{"Disabled", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, teardown, err := router.Config(testConfig())
			require.NoError(t, err, "Error on router initialization")
			defer teardown()

			router.AttachRoutes(r.Group("/"), tt.enabled)

			found := false
			for _, route := range r.Routes() {
				if route.Path == "/debug/pprof/" {
					found = true
				}
			}
			assert.Equal(t, tt.enabled, found, "pprof routes registered: %v", found)
		})
	}
}

func TestRoutes(t *testing.T) {
	r, teardown, err := router.Config(testConfig())
	require.NoError(t, err)
	defer teardown()

	router.AttachRoutes(r.Group("/"), false)

	routes := make(map[string]bool)
	for _, route := range r.Routes() {
		routes[route.Method+" "+route.Path] = true
	}

	for _, route := range []string{
		"GET /",
		"OPTIONS /",
		"GET /healthz",
		"OPTIONS /healthz",
		"GET /version",
		"OPTIONS /version",
		"POST /analyze",
		"OPTIONS /analyze",
		"GET /metrics",
		"GET /docs/*any",
	} {
		assert.True(t, routes[route], "route %s is not registered", route)
	}
}

func TestMetricsRegisteredOnce(t *testing.T) {
	_, teardown, err := router.Config(testConfig())
	require.NoError(t, err)

	_, _, err = router.Config(testConfig())
	assert.ErrorContains(t, err, "could not register")

	teardown()

	_, teardown, err = router.Config(testConfig())
	require.NoError(t, err, "metrics must be registrable again after teardown")
	teardown()
}

func TestRoot(t *testing.T) {
	t.Setenv("API_URL", "https://cashflow.example.com/api")

	recorder := test.Request(t, http.MethodGet, "/", "")
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response struct {
		Message string            `json:"message"`
		Links   map[string]string `json:"links"`
	}
	test.DecodeResponse(t, &recorder, &response)

	assert.Equal(t, "Cash flow insight API is running", response.Message)
	assert.Equal(t, map[string]string{
		"docs":    "https://cashflow.example.com/api/docs/index.html",
		"healthz": "https://cashflow.example.com/api/healthz",
		"version": "https://cashflow.example.com/api/version",
		"metrics": "https://cashflow.example.com/api/metrics",
		"analyze": "https://cashflow.example.com/api/analyze",
	}, response.Links)
}

func TestRequestID(t *testing.T) {
	recorder := test.Request(t, http.MethodGet, "/healthz", "")
	test.AssertHTTPStatus(t, &recorder, http.StatusNoContent)
	assert.Len(t, recorder.Header().Get("x-request-id"), 36, "request ids are UUIDs")
}

func TestMethodNotAllowed(t *testing.T) {
	recorder := test.Request(t, http.MethodDelete, "/analyze", "")
	test.AssertHTTPStatus(t, &recorder, http.StatusMethodNotAllowed)
	assert.Contains(t, test.DecodeError(t, recorder.Body.Bytes()), "not allowed")
}

func TestNotFound(t *testing.T) {
	recorder := test.Request(t, http.MethodGet, "/budgets", "")
	test.AssertHTTPStatus(t, &recorder, http.StatusNotFound)
	assert.Contains(t, test.DecodeError(t, recorder.Body.Bytes()), "no endpoint")
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name    string
		origins string
		origin  string
		status  int
		allow   string
	}{
		{"All origins by default", "", "https://frontend.example.com", http.StatusNoContent, "*"},
		{"Listed origin", "https://frontend.example.com https://other.example.com", "https://frontend.example.com", http.StatusNoContent, "https://frontend.example.com"},
		{"Origin not listed", "https://other.example.com", "https://frontend.example.com", http.StatusForbidden, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.origins != "" {
				t.Setenv("CORS_ALLOW_ORIGINS", tt.origins)
			}

			recorder := test.Request(t, http.MethodGet, "http://localhost:8080/healthz", "", map[string]string{"Origin": tt.origin})
			test.AssertHTTPStatus(t, &recorder, tt.status)
			assert.Equal(t, tt.allow, recorder.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestMetrics(t *testing.T) {
	recorder := test.Request(t, http.MethodGet, "/healthz", "")
	test.AssertHTTPStatus(t, &recorder, http.StatusNoContent)

	recorder = test.Request(t, http.MethodGet, "/metrics", "")
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)
	assert.Contains(t, recorder.Body.String(), `requests_total{code="204",method="GET",url="/healthz"}`)
}

func TestVersion(t *testing.T) {
	recorder := test.Request(t, http.MethodGet, "/version", "")
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)
	assert.Equal(t, "0.0.0", router.Version())
	assert.JSONEq(t, `{"data":{"version":"0.0.0","goVersion":"`+runtime.Version()+`"}}`, recorder.Body.String())
}

func TestDocs(t *testing.T) {
	recorder := test.Request(t, http.MethodGet, "/docs/doc.json", "")
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var doc struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths map[string]any `json:"paths"`
	}
	test.DecodeResponse(t, &recorder, &doc)

	assert.Equal(t, "Cash Flow Insight", doc.Info.Title)
	assert.Contains(t, doc.Paths, "/analyze")
}
