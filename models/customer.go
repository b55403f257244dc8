package models

// Customer is the canonical customer record. The column order of the wire
// shape (see schema.EncodeCustomerRow) follows the field order here: id, name,
// phone, the ten address components, fullAddress, the health fields, avatar
// and createdAt.
type Customer struct {
	ID      string `gorm:"primaryKey" json:"id"`
	OwnerID string `gorm:"index;not null" json:"-"`

	Name  string `gorm:"not null" json:"name"`
	Phone string `gorm:"not null" json:"phone"`

	City         string `json:"city"`
	District     string `json:"district"`
	Village      string `json:"village"`
	Neighborhood string `json:"neighborhood"`
	StreetType   string `json:"streetType"`
	StreetName   string `json:"streetName"`
	Lane         string `json:"lane"`
	Alley        string `json:"alley"`
	Number       string `json:"number"`
	Floor        string `json:"floor"`

	// FullAddress is a manual override when set; otherwise the UI derives it
	// from the address components.
	FullAddress string `json:"fullAddress"`

	HealthStatus string `json:"healthStatus"`
	Medications  string `json:"medications"`
	Supplements  string `json:"supplements"`
	Avatar       string `json:"avatar"`
	CreatedAt    string `json:"createdAt"`

	// Region is kept for display compatibility with records that predate the
	// structured address. Derived as city+district everywhere except the
	// oldest rows, where it is the stored freeform string.
	Region string `gorm:"-" json:"region"`
}

// SyncRegion refreshes the derived region field from the address components.
func (c *Customer) SyncRegion() {
	c.Region = c.City + c.District
}
