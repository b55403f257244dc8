package store

import (
	"context"
	"time"

	"heath-crm-backend/models"
)

// Facade is the single operation surface the controllers use. It validates
// required fields, guards against re-entrant submits, serves listings from
// the snapshot cache, joins customer names onto schedules and orders, and
// dispatches everything else to the one active driver.
type Facade struct {
	driver Store
	cache  *snapshotCache
	guard  *inflightGuard
}

func NewFacade(driver Store) *Facade {
	return newFacade(driver, SnapshotTTL)
}

func newFacade(driver Store, ttl time.Duration) *Facade {
	return &Facade{
		driver: driver,
		cache:  newSnapshotCache(ttl),
		guard:  newInflightGuard(),
	}
}

// Driver exposes the active backend driver for startup wiring (owner-key
// restamping, sheet normalization). Not used on request paths.
func (f *Facade) Driver() Store {
	return f.driver
}

// Logout drops the owner's cached snapshots together with the session.
func (f *Facade) Logout(owner string) {
	f.cache.clearOwner(owner)
}

// ==================== customers ====================

func (f *Facade) GetCustomers(ctx context.Context, owner string) ([]models.Customer, error) {
	if snapshot, ok := f.cache.getCustomers(owner); ok {
		return snapshot, nil
	}
	customers, err := f.driver.ListCustomers(ctx, owner)
	if err != nil {
		return nil, ctxErr(err)
	}
	f.cache.setCustomers(owner, customers)
	return customers, nil
}

func (f *Facade) GetCustomer(ctx context.Context, owner, id string) (*models.Customer, error) {
	c, err := f.driver.GetCustomer(ctx, owner, id)
	if err != nil {
		return nil, ctxErr(err)
	}
	return c, nil
}

func (f *Facade) AddCustomer(ctx context.Context, owner string, c *models.Customer) (*models.Customer, error) {
	switch {
	case c.Name == "":
		return nil, validationErr("customer name is required")
	case c.Phone == "":
		return nil, validationErr("customer phone is required")
	case c.City == "":
		return nil, validationErr("customer city is required")
	case c.District == "":
		return nil, validationErr("customer district is required")
	}

	if err := f.guard.begin(owner, EntityCustomers); err != nil {
		return nil, err
	}
	defer f.guard.end(owner, EntityCustomers)

	created, err := f.driver.CreateCustomer(ctx, owner, c)
	if err != nil {
		return nil, ctxErr(err)
	}
	f.cache.invalidate(EntityCustomers, owner)
	created.SyncRegion()
	return created, nil
}

func (f *Facade) UpdateCustomer(ctx context.Context, owner, id string, c *models.Customer) (*models.Customer, error) {
	if err := f.guard.begin(owner, EntityCustomers); err != nil {
		return nil, err
	}
	defer f.guard.end(owner, EntityCustomers)

	updated, err := f.driver.UpdateCustomer(ctx, owner, id, c)
	if err != nil {
		return nil, ctxErr(err)
	}
	f.cache.invalidate(EntityCustomers, owner)
	updated.SyncRegion()
	return updated, nil
}

func (f *Facade) DeleteCustomer(ctx context.Context, owner, id string) error {
	if err := f.guard.begin(owner, EntityCustomers); err != nil {
		return err
	}
	defer f.guard.end(owner, EntityCustomers)

	if err := f.driver.DeleteCustomer(ctx, owner, id); err != nil {
		return ctxErr(err)
	}
	f.cache.invalidate(EntityCustomers, owner)
	return nil
}

// ==================== schedules ====================

func (f *Facade) GetSchedules(ctx context.Context, owner string) ([]models.Schedule, error) {
	snapshot, ok := f.cache.getSchedules(owner)
	if !ok {
		fetched, err := f.driver.ListSchedules(ctx, owner)
		if err != nil {
			return nil, ctxErr(err)
		}
		f.cache.setSchedules(owner, fetched)
		snapshot = fetched
	}

	names, err := f.customerNames(ctx, owner)
	if err != nil {
		return nil, err
	}
	// Join into a copy so concurrent readers never write the cached slice.
	schedules := make([]models.Schedule, len(snapshot))
	copy(schedules, snapshot)
	for i := range schedules {
		schedules[i].CustomerName = names[schedules[i].CustomerID]
	}
	return schedules, nil
}

// GetSchedulesByDay returns the owner's schedules for one calendar day.
// Dates compare as plain YYYY-MM-DD strings; no timezone is involved.
func (f *Facade) GetSchedulesByDay(ctx context.Context, owner, date string) ([]models.Schedule, error) {
	all, err := f.GetSchedules(ctx, owner)
	if err != nil {
		return nil, err
	}
	day := make([]models.Schedule, 0)
	for _, s := range all {
		if s.Date == date {
			day = append(day, s)
		}
	}
	return day, nil
}

func (f *Facade) AddSchedule(ctx context.Context, owner string, s *models.Schedule) (*models.Schedule, error) {
	switch {
	case s.Title == "":
		return nil, validationErr("schedule title is required")
	case s.Date == "":
		return nil, validationErr("schedule date is required")
	}
	switch s.Type {
	case "":
		s.Type = models.ScheduleTypeOther
	case models.ScheduleTypeCustomer, models.ScheduleTypePartner, models.ScheduleTypeOther:
	default:
		return nil, validationErr("unknown schedule type %q", s.Type)
	}

	if err := f.guard.begin(owner, EntitySchedules); err != nil {
		return nil, err
	}
	defer f.guard.end(owner, EntitySchedules)

	created, err := f.driver.CreateSchedule(ctx, owner, s)
	if err != nil {
		return nil, ctxErr(err)
	}
	f.cache.invalidate(EntitySchedules, owner)
	return created, nil
}

func (f *Facade) DeleteSchedule(ctx context.Context, owner, id string) error {
	if err := f.guard.begin(owner, EntitySchedules); err != nil {
		return err
	}
	defer f.guard.end(owner, EntitySchedules)

	if err := f.driver.DeleteSchedule(ctx, owner, id); err != nil {
		return ctxErr(err)
	}
	f.cache.invalidate(EntitySchedules, owner)
	return nil
}

// ==================== orders ====================

func (f *Facade) GetOrders(ctx context.Context, owner string) ([]models.Order, error) {
	snapshot, ok := f.cache.getOrders(owner)
	if !ok {
		fetched, err := f.driver.ListOrders(ctx, owner)
		if err != nil {
			return nil, ctxErr(err)
		}
		f.cache.setOrders(owner, fetched)
		snapshot = fetched
	}

	names, err := f.customerNames(ctx, owner)
	if err != nil {
		return nil, err
	}
	orders := make([]models.Order, len(snapshot))
	copy(orders, snapshot)
	for i := range orders {
		orders[i].CustomerName = names[orders[i].CustomerID]
	}
	return orders, nil
}

func (f *Facade) GetOrder(ctx context.Context, owner, id string) (*models.Order, error) {
	o, err := f.driver.GetOrder(ctx, owner, id)
	if err != nil {
		return nil, ctxErr(err)
	}
	return o, nil
}

func (f *Facade) AddOrder(ctx context.Context, owner string, o *models.Order) (*models.Order, error) {
	switch {
	case o.Date == "":
		return nil, validationErr("order date is required")
	case o.CustomerID == "":
		return nil, validationErr("order customer is required")
	case o.Product == "":
		return nil, validationErr("order product is required")
	case o.Quantity < 0:
		return nil, validationErr("order quantity must be positive")
	case o.Amount < 0:
		return nil, validationErr("order amount must not be negative")
	}
	if o.Quantity == 0 {
		o.Quantity = 1
	}

	if err := f.guard.begin(owner, EntityOrders); err != nil {
		return nil, err
	}
	defer f.guard.end(owner, EntityOrders)

	created, err := f.driver.CreateOrder(ctx, owner, o)
	if err != nil {
		return nil, ctxErr(err)
	}
	f.cache.invalidate(EntityOrders, owner)
	return created, nil
}

func (f *Facade) UpdateOrder(ctx context.Context, owner, id string, o *models.Order) (*models.Order, error) {
	if o.Quantity < 0 {
		return nil, validationErr("order quantity must be positive")
	}
	if o.Amount < 0 {
		return nil, validationErr("order amount must not be negative")
	}

	if err := f.guard.begin(owner, EntityOrders); err != nil {
		return nil, err
	}
	defer f.guard.end(owner, EntityOrders)

	updated, err := f.driver.UpdateOrder(ctx, owner, id, o)
	if err != nil {
		return nil, ctxErr(err)
	}
	f.cache.invalidate(EntityOrders, owner)
	return updated, nil
}

func (f *Facade) DeleteOrder(ctx context.Context, owner, id string) error {
	if err := f.guard.begin(owner, EntityOrders); err != nil {
		return err
	}
	defer f.guard.end(owner, EntityOrders)

	if err := f.driver.DeleteOrder(ctx, owner, id); err != nil {
		return ctxErr(err)
	}
	f.cache.invalidate(EntityOrders, owner)
	return nil
}

// customerNames resolves the owner's customer id → name map for joins. The
// map only ever contains the owner's customers, so a dangling or foreign
// customerId joins to the empty string.
func (f *Facade) customerNames(ctx context.Context, owner string) (map[string]string, error) {
	customers, err := f.GetCustomers(ctx, owner)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(customers))
	for i := range customers {
		names[customers[i].ID] = customers[i].Name
	}
	return names, nil
}
