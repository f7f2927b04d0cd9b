package handlers

import (
	"net/http"

	"github.com/axleworks/customers/core"
	"github.com/axleworks/customers/web/handlers/customer"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the full route table for the service.
func NewRouter(store *core.CustomerStore) *gin.Engine {
	r := gin.Default()
	r.HandleMethodNotAllowed = true

	r.GET("/", Index)
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	customer.Register(r, store)
	return r
}

// Index describes the service and its paths.
func Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    "Customers REST API Service",
		"version": "2.0",
		"status":  "OK",
		"paths": gin.H{
			"List/Create Customers":       "/customers",
			"Read/Update/Delete Customer": "/customers/<customer_id>",
			"Suspend Customer":            "/customers/<customer_id>/suspend",
			"Unsuspend Customer":          "/customers/<customer_id>/unsuspend",
		},
	})
}
