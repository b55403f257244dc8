// services/identity_service.go
package services

import (
	"context"
	"errors"
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"heath-crm-backend/models"
	"heath-crm-backend/store"
)

// IdentityService owns owner-key resolution. The canonical owner key is the
// user id; it is the only key ever read. Records stamped with the historical
// email key are restamped at login instead of being matched through a
// fallback chain, which would silently split a user's data between keys.
type IdentityService struct {
	db *gorm.DB
}

func NewIdentityService(db *gorm.DB) *IdentityService {
	return &IdentityService{db: db}
}

// Resolve returns the owner key of the authenticated principal on this
// request, or ErrUnauthenticated when there is no active session or the
// account has been deactivated.
func (s *IdentityService) Resolve(c *gin.Context) (string, error) {
	user, err := s.CurrentUser(c)
	if err != nil {
		return "", err
	}
	return user.OwnerKey(), nil
}

// CurrentUser loads the user behind the request's session.
func (s *IdentityService) CurrentUser(c *gin.Context) (*models.User, error) {
	v, exists := c.Get("userId")
	if !exists {
		return nil, store.ErrUnauthenticated
	}
	userID, ok := v.(string)
	if !ok || userID == "" {
		return nil, store.ErrUnauthenticated
	}

	var user models.User
	if err := s.db.WithContext(c.Request.Context()).
		Where("id = ?", userID).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrUnauthenticated
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, store.ErrUnauthenticated
	}
	return &user, nil
}

// MigrateLegacyOwnerKeys restamps the user's records that still carry the
// email owner key with the canonical user id. Idempotent; only the relational
// driver holds restampable rows.
func (s *IdentityService) MigrateLegacyOwnerKeys(ctx context.Context, driver store.Store, user *models.User) {
	gs, ok := driver.(*store.GormStore)
	if !ok {
		return
	}
	n, err := gs.RestampOwner(ctx, user.LegacyOwnerKey(), user.OwnerKey())
	if err != nil {
		log.Printf("owner key migration for %s failed: %v", user.Email, err)
		return
	}
	if n > 0 {
		log.Printf("owner key migration: restamped %d records for %s", n, user.Email)
	}
}
