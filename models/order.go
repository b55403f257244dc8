package models

type Order struct {
	ID      string `gorm:"primaryKey" json:"id"`
	OwnerID string `gorm:"index;not null" json:"-"`

	Date       string `gorm:"index;not null" json:"date"` // YYYY-MM-DD
	CustomerID string `gorm:"index;not null" json:"customerId"`

	Product  string  `gorm:"not null" json:"product"`
	Quantity int     `gorm:"default:1" json:"quantity"`
	Amount   float64 `gorm:"type:decimal(10,2);default:0.0" json:"amount"`
	Paid     bool    `gorm:"default:false" json:"paid"`
	Notes    string  `json:"notes"`

	CustomerName string `gorm:"-" json:"customerName"`
}
