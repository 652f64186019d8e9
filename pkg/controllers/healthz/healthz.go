package healthz

import (
	"net/http"

	"github.com/cashflow-insight/backend/pkg/httputil"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", Get)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health. The service holds no state, so it is healthy as long as it answers.
// @Tags			General
// @Success		204
// @Router			/healthz [get]
func Get(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
