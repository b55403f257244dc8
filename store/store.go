// Package store is the data-access layer: one Facade in front of three
// interchangeable backend drivers (relational via gorm, spreadsheet proxy,
// remote REST API). Exactly one driver is active per process, selected from
// configuration at startup.
package store

import (
	"context"
	"strconv"
	"sync"
	"time"

	"heath-crm-backend/models"
)

// Entity classes, used as cache and in-flight guard keys.
const (
	EntityCustomers = "customers"
	EntitySchedules = "schedules"
	EntityOrders    = "orders"
)

// Store is the backend driver contract. Every operation carries the resolved
// owner key: reads return only that owner's records, writes require an
// existing record with a matching key and report ErrNotFound otherwise.
// Drivers assign record ids; callers never do.
type Store interface {
	ListCustomers(ctx context.Context, owner string) ([]models.Customer, error)
	GetCustomer(ctx context.Context, owner, id string) (*models.Customer, error)
	CreateCustomer(ctx context.Context, owner string, c *models.Customer) (*models.Customer, error)
	UpdateCustomer(ctx context.Context, owner, id string, c *models.Customer) (*models.Customer, error)
	DeleteCustomer(ctx context.Context, owner, id string) error

	ListSchedules(ctx context.Context, owner string) ([]models.Schedule, error)
	CreateSchedule(ctx context.Context, owner string, s *models.Schedule) (*models.Schedule, error)
	DeleteSchedule(ctx context.Context, owner, id string) error

	ListOrders(ctx context.Context, owner string) ([]models.Order, error)
	GetOrder(ctx context.Context, owner, id string) (*models.Order, error)
	CreateOrder(ctx context.Context, owner string, o *models.Order) (*models.Order, error)
	UpdateOrder(ctx context.Context, owner, id string, o *models.Order) (*models.Order, error)
	DeleteOrder(ctx context.Context, owner, id string) error
}

var (
	idMu   sync.Mutex
	lastID int64
)

// NewRecordID returns a time-derived decimal string id (Unix milliseconds),
// bumped when two creations land in the same millisecond. Listing by id is
// therefore an approximate creation-time sort.
func NewRecordID() string {
	idMu.Lock()
	defer idMu.Unlock()
	now := time.Now().UnixMilli()
	if now <= lastID {
		now = lastID + 1
	}
	lastID = now
	return strconv.FormatInt(now, 10)
}
