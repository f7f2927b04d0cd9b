package customer

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/axleworks/customers/core"
	"github.com/axleworks/customers/web/common"
	"github.com/axleworks/customers/web/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Endpoint struct {
	store *core.CustomerStore
}

func Register(r *gin.Engine, store *core.CustomerStore) {
	endpoint := &Endpoint{store: store}
	requireJSON := middlewares.RequireJSON()

	r.GET("/customers", endpoint.List)
	r.POST("/customers", requireJSON, endpoint.Create)
	r.POST("/customers/search", requireJSON, endpoint.Search)
	r.GET("/customers/:id", endpoint.Get)
	r.PUT("/customers/:id", requireJSON, endpoint.Update)
	r.DELETE("/customers/:id", endpoint.Delete)
	r.PUT("/customers/:id/suspend", endpoint.Suspend)
	r.PUT("/customers/:id/unsuspend", endpoint.Unsuspend)
}

func (ep *Endpoint) Create(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	customer := &core.Customer{}
	if err := customer.Deserialize(payload); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(err.Error()))
		return
	}

	if err := ep.store.Create(c.Request.Context(), customer); err != nil {
		ep.storeError(c, err)
		return
	}

	c.Header("Location", "/customers/"+customer.ID.String())
	c.JSON(http.StatusCreated, customer.Serialize())
}

func (ep *Endpoint) Get(c *gin.Context) {
	id, ok := ep.customerID(c)
	if !ok {
		return
	}

	found, err := ep.store.Find(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	if found == nil {
		notFound(c, id)
		return
	}

	c.JSON(http.StatusOK, found.Serialize())
}

func (ep *Endpoint) Update(c *gin.Context) {
	id, ok := ep.customerID(c)
	if !ok {
		return
	}

	found, err := ep.store.Find(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	if found == nil {
		notFound(c, id)
		return
	}

	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}
	if err := found.Deserialize(payload); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(err.Error()))
		return
	}

	if err := ep.store.Update(c.Request.Context(), found); err != nil {
		ep.storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, found.Serialize())
}

// Delete is idempotent: a well-formed id that matches nothing still returns
// 204.
func (ep *Endpoint) Delete(c *gin.Context) {
	id, ok := ep.customerID(c)
	if !ok {
		return
	}

	if err := ep.store.Delete(c.Request.Context(), &core.Customer{ID: id}); err != nil {
		ep.storeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (ep *Endpoint) Suspend(c *gin.Context) {
	ep.setSuspended(c, true)
}

func (ep *Endpoint) Unsuspend(c *gin.Context) {
	ep.setSuspended(c, false)
}

func (ep *Endpoint) setSuspended(c *gin.Context, suspended bool) {
	id, ok := ep.customerID(c)
	if !ok {
		return
	}

	found, err := ep.store.Find(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	if found == nil {
		notFound(c, id)
		return
	}

	if suspended {
		err = ep.store.Suspend(c.Request.Context(), found)
	} else {
		err = ep.store.Unsuspend(c.Request.Context(), found)
	}
	if err != nil {
		ep.storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, found.Serialize())
}

// customerID parses the path id. An identifier that is not a canonical uuid
// is treated as not found, not as a validation error.
func (ep *Endpoint) customerID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, common.NewErrorResponse(
			fmt.Sprintf("Customer with id '%s' was not found.", c.Param("id")),
		))
		return uuid.Nil, false
	}
	return id, true
}

func notFound(c *gin.Context, id uuid.UUID) {
	c.JSON(http.StatusNotFound, common.NewErrorResponse(
		fmt.Sprintf("Customer with id '%s' was not found.", id),
	))
}

// storeError maps the domain error to 400 and anything else to 500.
func (ep *Endpoint) storeError(c *gin.Context, err error) {
	var dve *core.DataValidationError
	if errors.As(err, &dve) {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
}
