package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"heath-crm-backend/models"
)

// GormStore is the relational driver. Ownership scoping is an owner_id column
// filter on every query; deletes are hard deletes.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// AutoMigrate creates the entity tables. Only the relational driver owns its
// storage layout; the other drivers talk to remote backends.
func (s *GormStore) AutoMigrate() error {
	return s.db.AutoMigrate(&models.Customer{}, &models.Schedule{}, &models.Order{})
}

func translateGormErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return validationErr("duplicate key")
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return transientErr(err)
	default:
		return transientErr(err)
	}
}

// ==================== customers ====================

func (s *GormStore) ListCustomers(ctx context.Context, owner string) ([]models.Customer, error) {
	var customers []models.Customer
	if err := s.db.WithContext(ctx).
		Where("owner_id = ?", owner).
		Order("created_at DESC").
		Find(&customers).Error; err != nil {
		return nil, translateGormErr(err)
	}
	for i := range customers {
		customers[i].SyncRegion()
	}
	return customers, nil
}

func (s *GormStore) GetCustomer(ctx context.Context, owner, id string) (*models.Customer, error) {
	var c models.Customer
	if err := s.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", owner, id).
		First(&c).Error; err != nil {
		return nil, translateGormErr(err)
	}
	c.SyncRegion()
	return &c, nil
}

func (s *GormStore) CreateCustomer(ctx context.Context, owner string, c *models.Customer) (*models.Customer, error) {
	rec := *c
	rec.ID = NewRecordID()
	rec.OwnerID = owner
	if rec.CreatedAt == "" {
		rec.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, translateGormErr(err)
	}
	rec.SyncRegion()
	return &rec, nil
}

func (s *GormStore) UpdateCustomer(ctx context.Context, owner, id string, c *models.Customer) (*models.Customer, error) {
	var existing models.Customer
	if err := s.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", owner, id).
		First(&existing).Error; err != nil {
		return nil, translateGormErr(err)
	}

	// Full replace of mutable fields; id, owner key and creation time are
	// immutable.
	rec := *c
	rec.ID = existing.ID
	rec.OwnerID = existing.OwnerID
	rec.CreatedAt = existing.CreatedAt

	if err := s.db.WithContext(ctx).Save(&rec).Error; err != nil {
		return nil, translateGormErr(err)
	}
	rec.SyncRegion()
	return &rec, nil
}

func (s *GormStore) DeleteCustomer(ctx context.Context, owner, id string) error {
	result := s.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", owner, id).
		Delete(&models.Customer{})
	if result.Error != nil {
		return translateGormErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ==================== schedules ====================

func (s *GormStore) ListSchedules(ctx context.Context, owner string) ([]models.Schedule, error) {
	var schedules []models.Schedule
	if err := s.db.WithContext(ctx).
		Where("owner_id = ?", owner).
		Order("date ASC").
		Find(&schedules).Error; err != nil {
		return nil, translateGormErr(err)
	}
	return schedules, nil
}

func (s *GormStore) CreateSchedule(ctx context.Context, owner string, sched *models.Schedule) (*models.Schedule, error) {
	rec := *sched
	rec.ID = NewRecordID()
	rec.OwnerID = owner
	if rec.Type == "" {
		rec.Type = models.ScheduleTypeOther
	}
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, translateGormErr(err)
	}
	return &rec, nil
}

func (s *GormStore) DeleteSchedule(ctx context.Context, owner, id string) error {
	result := s.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", owner, id).
		Delete(&models.Schedule{})
	if result.Error != nil {
		return translateGormErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ==================== orders ====================

func (s *GormStore) ListOrders(ctx context.Context, owner string) ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.WithContext(ctx).
		Where("owner_id = ?", owner).
		Order("date DESC").
		Find(&orders).Error; err != nil {
		return nil, translateGormErr(err)
	}
	return orders, nil
}

func (s *GormStore) GetOrder(ctx context.Context, owner, id string) (*models.Order, error) {
	var o models.Order
	if err := s.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", owner, id).
		First(&o).Error; err != nil {
		return nil, translateGormErr(err)
	}
	return &o, nil
}

func (s *GormStore) CreateOrder(ctx context.Context, owner string, o *models.Order) (*models.Order, error) {
	rec := *o
	rec.ID = NewRecordID()
	rec.OwnerID = owner
	if rec.Quantity <= 0 {
		rec.Quantity = 1
	}
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, translateGormErr(err)
	}
	return &rec, nil
}

func (s *GormStore) UpdateOrder(ctx context.Context, owner, id string, o *models.Order) (*models.Order, error) {
	var existing models.Order
	if err := s.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", owner, id).
		First(&existing).Error; err != nil {
		return nil, translateGormErr(err)
	}

	rec := *o
	rec.ID = existing.ID
	rec.OwnerID = existing.OwnerID
	if rec.Quantity <= 0 {
		rec.Quantity = 1
	}

	if err := s.db.WithContext(ctx).Save(&rec).Error; err != nil {
		return nil, translateGormErr(err)
	}
	return &rec, nil
}

func (s *GormStore) DeleteOrder(ctx context.Context, owner, id string) error {
	result := s.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", owner, id).
		Delete(&models.Order{})
	if result.Error != nil {
		return translateGormErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// RestampOwner rewrites records stamped with a legacy owner key (the email)
// to the canonical key (the user id). Run once per user at login; a no-op
// once every record carries the canonical key.
func (s *GormStore) RestampOwner(ctx context.Context, legacyKey, ownerKey string) (int64, error) {
	var total int64
	for _, model := range []any{&models.Customer{}, &models.Schedule{}, &models.Order{}} {
		result := s.db.WithContext(ctx).
			Model(model).
			Where("owner_id = ?", legacyKey).
			Update("owner_id", ownerKey)
		if result.Error != nil {
			return total, translateGormErr(result.Error)
		}
		total += result.RowsAffected
	}
	return total, nil
}
