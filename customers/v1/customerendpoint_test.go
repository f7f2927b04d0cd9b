package v1

import (
	"net/http/httptest"
	"testing"

	"github.com/axleworks/customers/core"
	"github.com/axleworks/customers/web/handlers"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, core.Migrate(db))

	srv := httptest.NewServer(handlers.NewRouter(core.NewCustomerStore(db)))
	t.Cleanup(srv.Close)

	return NewClient(srv.URL)
}

func TestCustomerLifecycle(t *testing.T) {
	client := newTestClient(t)

	created, err := client.Customers.Create(&CustomerDTO{
		FirstName: "Jane",
		LastName:  "Doe",
		Address:   "1 New Ave",
	})
	require.NoError(t, err)
	require.NotNil(t, created.ID)
	assert.Equal(t, "Jane", created.FirstName)
	assert.False(t, created.Suspended)
	require.NotNil(t, created.CreatedAt)

	found, err := client.Customers.Get(*created.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, *created.ID, *found.ID)
	assert.Equal(t, "Doe", found.LastName)

	updated, err := client.Customers.Update(*created.ID, &CustomerDTO{
		FirstName: "Jane",
		LastName:  "Doe",
		Address:   "99 Updated Road",
	})
	require.NoError(t, err)
	assert.Equal(t, "99 Updated Road", updated.Address)

	suspended, err := client.Customers.Suspend(*created.ID)
	require.NoError(t, err)
	assert.True(t, suspended.Suspended)

	active, err := client.Customers.Unsuspend(*created.ID)
	require.NoError(t, err)
	assert.False(t, active.Suspended)

	require.NoError(t, client.Customers.Delete(*created.ID))

	gone, err := client.Customers.Get(*created.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestCustomerList(t *testing.T) {
	client := newTestClient(t)

	for _, row := range [][3]string{
		{"Alice", "Jones", "1 Ave"},
		{"Alice", "Smith", "2 Ave"},
		{"Bob", "Jones", "3 Ave"},
	} {
		_, err := client.Customers.Create(&CustomerDTO{
			FirstName: row[0], LastName: row[1], Address: row[2],
		})
		require.NoError(t, err)
	}

	all, err := client.Customers.List(ListQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	matched, err := client.Customers.List(ListQuery{Name: "Ali Jon"})
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "Alice", matched[0].FirstName)
	assert.Equal(t, "Jones", matched[0].LastName)

	exact, err := client.Customers.List(ListQuery{FirstName: "Ali", Exact: true})
	require.NoError(t, err)
	assert.Empty(t, exact)
}

func TestCustomerSearch(t *testing.T) {
	client := newTestClient(t)

	for _, row := range [][3]string{
		{"Alice", "Jones", "1 Ave"},
		{"Bob", "Jones", "3 Ave"},
	} {
		_, err := client.Customers.Create(&CustomerDTO{
			FirstName: row[0], LastName: row[1], Address: row[2],
		})
		require.NoError(t, err)
	}

	result, err := client.Customers.Search(FilterGroup{
		Logic: "and",
		Filters: []Filter{
			{Field: "last_name", Operator: "eq", Value: "Jones"},
			{Field: "first_name", Operator: "icontains", Value: "bo"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Pagination.Total)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "Bob", result.Data[0].FirstName)
}

func TestCreateValidationError(t *testing.T) {
	client := newTestClient(t)

	_, err := client.Customers.Create(&CustomerDTO{FirstName: "Jane"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
}
