package version

import (
	"net/http"
	"runtime"

	"github.com/cashflow-insight/backend/pkg/httputil"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Data Build `json:"data"`
}

// Build describes the running binary.
type Build struct {
	Version   string `json:"version" example:"1.1.0"`    // Release the binary was built from, 0.0.0 for development builds
	GoVersion string `json:"goVersion" example:"go1.25.5"` // Go toolchain the binary was compiled with
}

// RegisterRoutes serves the build information for the given release.
func RegisterRoutes(r *gin.RouterGroup, release string) {
	r.GET("", Get(release))
	r.OPTIONS("", Options)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// Get returns the handler reporting the release and Go version of the binary.
//
//	@Summary		API version
//	@Description	Returns the release of the backend and the Go version it was built with
//	@Tags			General
//	@Success		200	{object}	Response
//	@Router			/version [get]
func Get(release string) gin.HandlerFunc {
	build := Build{
		Version:   release,
		GoVersion: runtime.Version(),
	}

	return func(c *gin.Context) {
		c.JSON(http.StatusOK, Response{Data: build})
	}
}
