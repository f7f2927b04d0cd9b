package core

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *CustomerStore {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// a single connection keeps every statement on the same in-memory DB
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db))
	return NewCustomerStore(db)
}

func newCustomer(first, last, address string) *Customer {
	return &Customer{FirstName: first, LastName: last, Address: address}
}

func TestCreateAssignsIDAndTimestamps(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	c := newCustomer("Jane", "Doe", "1 New Ave")
	assert.Equal(t, uuid.Nil, c.ID)

	require.NoError(t, store.Create(ctx, c))
	assert.NotEqual(t, uuid.Nil, c.ID)
	assert.False(t, c.CreatedAt.IsZero())
	assert.Equal(t, c.CreatedAt, c.UpdatedAt)

	all, err := store.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCreateRejectsBlankColumns(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		customer *Customer
	}{
		{"blank address", newCustomer("Jane", "Doe", "   ")},
		{"empty first name", newCustomer("", "Doe", "1 Ave")},
		{"empty last name", newCustomer("Jane", "", "1 Ave")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := store.Create(ctx, tt.customer)
			var dve *DataValidationError
			assert.ErrorAs(t, err, &dve)
		})
	}

	all, err := store.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestFind(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	c := newCustomer("Jane", "Doe", "1 New Ave")
	require.NoError(t, store.Create(ctx, c))

	found, err := store.Find(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, c.ID, found.ID)
	assert.Equal(t, "Jane", found.FirstName)
	assert.Equal(t, "Doe", found.LastName)
	assert.Equal(t, "1 New Ave", found.Address)
}

func TestFindMissingReturnsNil(t *testing.T) {
	store := newTestStore(t)

	found, err := store.Find(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestUpdate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	c := newCustomer("Jane", "Doe", "1 New Ave")
	require.NoError(t, store.Create(ctx, c))
	created := c.CreatedAt

	time.Sleep(10 * time.Millisecond) // ensure timestamp difference
	c.Address = "99 Updated Road"
	require.NoError(t, store.Update(ctx, c))

	found, err := store.Find(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "99 Updated Road", found.Address)
	assert.Equal(t, "Jane", found.FirstName)
	assert.False(t, found.UpdatedAt.Before(created))
	assert.True(t, found.UpdatedAt.After(found.CreatedAt))
}

func TestUpdateWithoutID(t *testing.T) {
	store := newTestStore(t)

	c := newCustomer("A", "B", "1 Ave")
	err := store.Update(context.Background(), c)

	var dve *DataValidationError
	assert.ErrorAs(t, err, &dve)
	assert.Contains(t, err.Error(), "no id")
}

func TestDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	c := newCustomer("Jane", "Doe", "1 New Ave")
	require.NoError(t, store.Create(ctx, c))

	require.NoError(t, store.Delete(ctx, c))

	found, err := store.Find(ctx, c.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	// deleting an id that no longer exists is a no-op
	require.NoError(t, store.Delete(ctx, c))
}

func TestAll(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	all, err := store.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	for i := 0; i < 5; i++ {
		require.NoError(t, store.Create(ctx, newCustomer("Jane", "Doe", "1 New Ave")))
	}

	all, err = store.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestSuspendAndUnsuspend(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	c := newCustomer("Jane", "Doe", "1 New Ave")
	require.NoError(t, store.Create(ctx, c))
	assert.False(t, c.Suspended)

	require.NoError(t, store.Suspend(ctx, c))
	found, err := store.Find(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, found.Suspended)

	// suspending again still succeeds and changes nothing
	require.NoError(t, store.Suspend(ctx, c))
	found, err = store.Find(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, found.Suspended)

	require.NoError(t, store.Unsuspend(ctx, c))
	found, err = store.Find(ctx, c.ID)
	require.NoError(t, err)
	assert.False(t, found.Suspended)

	require.NoError(t, store.Unsuspend(ctx, c))
	found, err = store.Find(ctx, c.ID)
	require.NoError(t, err)
	assert.False(t, found.Suspended)
}

func TestSuspendUnpersisted(t *testing.T) {
	store := newTestStore(t)

	err := store.Suspend(context.Background(), newCustomer("Jane", "Doe", "1 New Ave"))
	var dve *DataValidationError
	assert.ErrorAs(t, err, &dve)
}
