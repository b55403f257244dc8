package models

// Schedule types. Unknown values are stored as "other".
const (
	ScheduleTypeCustomer = "customer"
	ScheduleTypePartner  = "partner"
	ScheduleTypeOther    = "other"
)

type Schedule struct {
	ID      string `gorm:"primaryKey" json:"id"`
	OwnerID string `gorm:"index;not null" json:"-"`

	Title string `gorm:"not null" json:"title"`

	// Date is a plain calendar day (YYYY-MM-DD). It is stored and compared as
	// a string, never as a timezone-bearing timestamp.
	Date      string `gorm:"index;not null" json:"date"`
	StartTime string `json:"startTime"` // HH:MM, optional
	EndTime   string `json:"endTime"`   // HH:MM, optional

	Type       string `gorm:"default:'other'" json:"type"`
	CustomerID string `gorm:"index" json:"customerId"`
	Notes      string `json:"notes"`

	// CustomerName is joined from the owner's customers on read; a customerId
	// outside the owner scope resolves to "".
	CustomerName string `gorm:"-" json:"customerName"`
}
