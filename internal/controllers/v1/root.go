// Package v1 implements the v1 API.
package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketwise/backend/internal/httputil"
)

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	CategoryGroups string `json:"categoryGroups" example:"https://example.com/api/v1/category-groups"`
	Categories     string `json:"categories" example:"https://example.com/api/v1/categories"`
	Transactions   string `json:"transactions" example:"https://example.com/api/v1/transactions"`
	Allocations    string `json:"allocations" example:"https://example.com/api/v1/allocations"`
	Months         string `json:"months" example:"https://example.com/api/v1/months"`
	Rollovers      string `json:"rollovers" example:"https://example.com/api/v1/rollovers"`
}

// RegisterRootRoutes registers the routes for the v1 API root with
// the RouterGroup that is passed.
func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			v1
// @Success		204
// @Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			v1
// @Success		200	{object}	RootResponse
// @Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString("baseURL") + "/v1"

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			CategoryGroups: url + "/category-groups",
			Categories:     url + "/categories",
			Transactions:   url + "/transactions",
			Allocations:    url + "/allocations",
			Months:         url + "/months",
			Rollovers:      url + "/rollovers",
		},
	})
}
