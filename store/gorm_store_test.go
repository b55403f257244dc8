package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"heath-crm-backend/models"
)

const (
	ownerA = "a3c5e970-0000-0000-0000-000000000001"
	ownerB = "a3c5e970-0000-0000-0000-000000000002"
)

func newTestStore(t *testing.T) *GormStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	s := NewGormStore(db)
	require.NoError(t, s.AutoMigrate())
	return s
}

func TestGormStore_CustomerCRUD(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateCustomer(ctx, ownerA, &models.Customer{
		Name: "王小明", Phone: "0912345678", City: "台北市", District: "大安區",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.CreatedAt)
	assert.Equal(t, ownerA, created.OwnerID)
	assert.Equal(t, "台北市大安區", created.Region)

	got, err := s.GetCustomer(ctx, ownerA, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "王小明", got.Name)

	got.Name = "王大明"
	updated, err := s.UpdateCustomer(ctx, ownerA, created.ID, got)
	require.NoError(t, err)
	assert.Equal(t, "王大明", updated.Name)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	require.NoError(t, s.DeleteCustomer(ctx, ownerA, created.ID))
	_, err = s.GetCustomer(ctx, ownerA, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGormStore_OwnerScoping(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	mine, err := s.CreateCustomer(ctx, ownerA, &models.Customer{Name: "甲的客戶", Phone: "0911111111", City: "台北市", District: "大安區"})
	require.NoError(t, err)
	theirs, err := s.CreateCustomer(ctx, ownerB, &models.Customer{Name: "乙的客戶", Phone: "0922222222", City: "台中市", District: "西區"})
	require.NoError(t, err)

	listA, err := s.ListCustomers(ctx, ownerA)
	require.NoError(t, err)
	require.Len(t, listA, 1)
	assert.Equal(t, mine.ID, listA[0].ID)

	listB, err := s.ListCustomers(ctx, ownerB)
	require.NoError(t, err)
	require.Len(t, listB, 1)
	assert.Equal(t, theirs.ID, listB[0].ID)

	// A read of a foreign id is indistinguishable from a missing one.
	_, err = s.GetCustomer(ctx, ownerA, theirs.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// So are writes and deletes.
	_, err = s.UpdateCustomer(ctx, ownerA, theirs.ID, theirs)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.DeleteCustomer(ctx, ownerA, theirs.ID), ErrNotFound)

	// The foreign record is untouched.
	still, err := s.GetCustomer(ctx, ownerB, theirs.ID)
	require.NoError(t, err)
	assert.Equal(t, "乙的客戶", still.Name)
}

func TestGormStore_ScheduleScoping(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateSchedule(ctx, ownerA, &models.Schedule{Title: "拜訪", Date: "2025-03-10"})
	require.NoError(t, err)
	_, err = s.CreateSchedule(ctx, ownerB, &models.Schedule{Title: "盤點", Date: "2025-03-10"})
	require.NoError(t, err)

	listA, err := s.ListSchedules(ctx, ownerA)
	require.NoError(t, err)
	require.Len(t, listA, 1)
	assert.Equal(t, "拜訪", listA[0].Title)
	assert.Equal(t, models.ScheduleTypeOther, listA[0].Type)
}

func TestGormStore_OrderScoping(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	mine, err := s.CreateOrder(ctx, ownerA, &models.Order{Date: "2025-01-01", CustomerID: "42", Product: "維他命"})
	require.NoError(t, err)
	assert.Equal(t, 1, mine.Quantity)

	_, err = s.GetOrder(ctx, ownerB, mine.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.UpdateOrder(ctx, ownerB, mine.ID, mine)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.DeleteOrder(ctx, ownerB, mine.ID), ErrNotFound)
}

func TestGormStore_RestampOwner(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	legacy := "grandma@example.com"

	_, err := s.CreateCustomer(ctx, legacy, &models.Customer{Name: "舊客戶", Phone: "0911111111", City: "台北市", District: "大安區"})
	require.NoError(t, err)
	_, err = s.CreateOrder(ctx, legacy, &models.Order{Date: "2024-01-01", CustomerID: "1", Product: "鈣片"})
	require.NoError(t, err)

	n, err := s.RestampOwner(ctx, legacy, ownerA)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	customers, err := s.ListCustomers(ctx, ownerA)
	require.NoError(t, err)
	assert.Len(t, customers, 1)

	// Nothing is left under the legacy key, and the sweep is idempotent.
	orphans, err := s.ListCustomers(ctx, legacy)
	require.NoError(t, err)
	assert.Empty(t, orphans)

	n, err = s.RestampOwner(ctx, legacy, ownerA)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestNewRecordID_Monotonic(t *testing.T) {
	prev := NewRecordID()
	for i := 0; i < 100; i++ {
		next := NewRecordID()
		assert.Greater(t, len(next), 0)
		assert.NotEqual(t, prev, next)
		prev = next
	}
}
