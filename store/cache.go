package store

import (
	"time"

	"github.com/jellydator/ttlcache/v3"

	"heath-crm-backend/models"
)

// SnapshotTTL bounds how stale a listing may be after another session's
// write. A session's own writes invalidate synchronously.
const SnapshotTTL = 60 * time.Second

// snapshotCache holds one listing snapshot per entity class per owner.
// Hits inside the TTL return the identical slice; the TTL is not extended on
// reads. There is no cross-process coherence, by contract.
type snapshotCache struct {
	customers *ttlcache.Cache[string, []models.Customer]
	schedules *ttlcache.Cache[string, []models.Schedule]
	orders    *ttlcache.Cache[string, []models.Order]
}

func newSnapshotCache(ttl time.Duration) *snapshotCache {
	return &snapshotCache{
		customers: ttlcache.New(
			ttlcache.WithTTL[string, []models.Customer](ttl),
			ttlcache.WithDisableTouchOnHit[string, []models.Customer](),
		),
		schedules: ttlcache.New(
			ttlcache.WithTTL[string, []models.Schedule](ttl),
			ttlcache.WithDisableTouchOnHit[string, []models.Schedule](),
		),
		orders: ttlcache.New(
			ttlcache.WithTTL[string, []models.Order](ttl),
			ttlcache.WithDisableTouchOnHit[string, []models.Order](),
		),
	}
}

func (sc *snapshotCache) getCustomers(owner string) ([]models.Customer, bool) {
	if item := sc.customers.Get(owner); item != nil {
		return item.Value(), true
	}
	return nil, false
}

func (sc *snapshotCache) setCustomers(owner string, snapshot []models.Customer) {
	sc.customers.Set(owner, snapshot, ttlcache.DefaultTTL)
}

func (sc *snapshotCache) getSchedules(owner string) ([]models.Schedule, bool) {
	if item := sc.schedules.Get(owner); item != nil {
		return item.Value(), true
	}
	return nil, false
}

func (sc *snapshotCache) setSchedules(owner string, snapshot []models.Schedule) {
	sc.schedules.Set(owner, snapshot, ttlcache.DefaultTTL)
}

func (sc *snapshotCache) getOrders(owner string) ([]models.Order, bool) {
	if item := sc.orders.Get(owner); item != nil {
		return item.Value(), true
	}
	return nil, false
}

func (sc *snapshotCache) setOrders(owner string, snapshot []models.Order) {
	sc.orders.Set(owner, snapshot, ttlcache.DefaultTTL)
}

// invalidate drops the owner's snapshot for one entity class. Called
// synchronously after every write; the next read is a forced full fetch.
func (sc *snapshotCache) invalidate(entity, owner string) {
	switch entity {
	case EntityCustomers:
		sc.customers.Delete(owner)
	case EntitySchedules:
		sc.schedules.Delete(owner)
	case EntityOrders:
		sc.orders.Delete(owner)
	}
}

// clearOwner drops every snapshot the owner has. Called at logout so a later
// principal on the same process never observes a stale snapshot.
func (sc *snapshotCache) clearOwner(owner string) {
	sc.customers.Delete(owner)
	sc.schedules.Delete(owner)
	sc.orders.Delete(owner)
}
