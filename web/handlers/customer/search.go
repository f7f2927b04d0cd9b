package customer

import (
	"net/http"
	"strings"

	"github.com/axleworks/customers/core"
	"github.com/axleworks/customers/utils"
	"github.com/axleworks/customers/web/common"
	"github.com/gin-gonic/gin"
)

// List returns customers as a bare JSON array. first_name, last_name and
// address query parameters are combined with AND; name=<query> runs the
// full-name search instead. Matching is fuzzy unless match=exact.
func (ep *Endpoint) List(c *gin.Context) {
	ctx := c.Request.Context()
	fuzzy := !strings.EqualFold(c.Query("match"), "exact")

	var customers []core.Customer
	var err error
	if name := c.Query("name"); name != "" {
		customers, err = ep.store.FindByName(ctx, name, fuzzy)
	} else {
		customers, err = ep.store.Search(ctx, core.CustomerFilters{
			FirstName: c.Query("first_name"),
			LastName:  c.Query("last_name"),
			Address:   c.Query("address"),
			Fuzzy:     fuzzy,
		})
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, serializeAll(customers))
}

type SearchParams struct {
	Filters *core.ClauseGroup `json:"filters" binding:"required"`
}

// Search runs a typed clause-group query posted as JSON and wraps the result
// with its total count.
func (ep *Endpoint) Search(c *gin.Context) {
	var params SearchParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	customers, total, err := ep.store.SearchClauses(c.Request.Context(), *params.Filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, common.NewSearchResponse(serializeAll(customers), total))
}

func serializeAll(customers []core.Customer) []map[string]any {
	return utils.Map(customers, func(c core.Customer) map[string]any {
		return c.Serialize()
	})
}
