package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/birdcall/birdcall/internal/rest/model"
)

// Status godoc
// @Summary      Service status
// @Description  Return the service status together with the build it runs
// @Tags         status
// @Produce      json
// @Success      200 {object} model.Status
// @Router       /status [get]
func (a *API) Status(c *gin.Context) {
	c.JSON(http.StatusOK, model.NewStatusFromRelease(a.release))
}

// StatusByPrefix godoc
// @Summary      Service status
// @Description  Same as /status, the route segment is accepted and ignored
// @Tags         status
// @Produce      json
// @Param        prefix path string true "Ignored route segment"
// @Success      200 {object} model.Status
// @Router       /status/{prefix} [get]
func (a *API) StatusByPrefix(c *gin.Context) {
	a.Status(c)
}
