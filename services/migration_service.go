// services/migration_service.go
package services

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"heath-crm-backend/store"
)

// MigrationService sweeps the spreadsheet backend and rewrites legacy 9- and
// 17-column customer rows into the canonical 19-column shape, so steady-state
// reads stop depending on runtime shape sniffing. Only the sheets driver
// needs this; the relational schema never had the legacy shapes.
type MigrationService struct {
	sheets *store.SheetStore
}

func NewMigrationService(sheets *store.SheetStore) *MigrationService {
	return &MigrationService{sheets: sheets}
}

// StartScheduler runs one sweep immediately, then nightly.
func (s *MigrationService) StartScheduler() {
	c := cron.New()

	s.RunOnce()

	// Run every day at 4 AM
	c.AddFunc("0 4 * * *", s.RunOnce)

	c.Start()
	log.Println("Row normalization scheduler started")
}

func (s *MigrationService) RunOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	n, err := s.sheets.NormalizeLegacyCustomerRows(ctx)
	if err != nil {
		log.Printf("Row normalization failed after %d rows: %v", n, err)
		return
	}
	if n > 0 {
		log.Printf("Row normalization rewrote %d legacy rows", n)
	}
}
