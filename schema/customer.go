package schema

import "heath-crm-backend/models"

// DecodeCustomerRow decodes one stored row into the canonical customer record.
// Three historical widths are recognized:
//
//	19 columns — latest, includes village and neighborhood
//	17 columns — structured address without village/neighborhood; the fields
//	             after district sit two positions earlier
//	 9 columns — a single freeform region string, no structured address
//
// The reported ok is false when the row has no id; such rows are skipped by
// listing operations rather than failing them.
func DecodeCustomerRow(row Row) (c *models.Customer, ok bool) {
	id := cellString(row, 0)
	if id == "" {
		return nil, false
	}

	c = &models.Customer{
		ID:    id,
		Name:  cellString(row, 1),
		Phone: cellString(row, 2),
	}

	switch {
	case len(row) >= 19 && defined(row, 5):
		c.City = cellString(row, 3)
		c.District = cellString(row, 4)
		c.Village = cellString(row, 5)
		c.Neighborhood = cellString(row, 6)
		c.StreetType = cellString(row, 7)
		c.StreetName = cellString(row, 8)
		c.Lane = cellString(row, 9)
		c.Alley = cellString(row, 10)
		c.Number = cellString(row, 11)
		c.Floor = cellString(row, 12)
		c.FullAddress = cellString(row, 13)
		c.HealthStatus = cellString(row, 14)
		c.Medications = cellString(row, 15)
		c.Supplements = cellString(row, 16)
		c.Avatar = cellString(row, 17)
		c.CreatedAt = cellString(row, 18)
		c.SyncRegion()
	case len(row) >= 12 && defined(row, 4):
		c.City = cellString(row, 3)
		c.District = cellString(row, 4)
		c.StreetType = cellString(row, 5)
		c.StreetName = cellString(row, 6)
		c.Lane = cellString(row, 7)
		c.Alley = cellString(row, 8)
		c.Number = cellString(row, 9)
		c.Floor = cellString(row, 10)
		c.FullAddress = cellString(row, 11)
		c.HealthStatus = cellString(row, 12)
		c.Medications = cellString(row, 13)
		c.Supplements = cellString(row, 14)
		c.Avatar = cellString(row, 15)
		c.CreatedAt = cellString(row, 16)
		c.SyncRegion()
	default:
		// Oldest shape: column 3 is a freeform region doubling as the full
		// address, the health fields follow directly.
		c.Region = cellString(row, 3)
		c.FullAddress = cellString(row, 3)
		c.HealthStatus = cellString(row, 4)
		c.Medications = cellString(row, 5)
		c.Supplements = cellString(row, 6)
		c.Avatar = cellString(row, 7)
	}

	return c, true
}

// EncodeCustomerRow encodes a canonical record into the latest 19-column
// shape. No write path ever produces the legacy shapes.
func EncodeCustomerRow(c *models.Customer) Row {
	return Row{
		c.ID,
		c.Name,
		c.Phone,
		c.City,
		c.District,
		c.Village,
		c.Neighborhood,
		c.StreetType,
		c.StreetName,
		c.Lane,
		c.Alley,
		c.Number,
		c.Floor,
		c.FullAddress,
		c.HealthStatus,
		c.Medications,
		c.Supplements,
		c.Avatar,
		c.CreatedAt,
	}
}

// IsLegacyCustomerRow reports whether a row still uses one of the pre-19
// column shapes and should be rewritten by the normalization sweep. Rows
// without an id are not legacy, they are garbage, and are left alone.
func IsLegacyCustomerRow(row Row) bool {
	if cellString(row, 0) == "" {
		return false
	}
	return !(len(row) >= 19 && defined(row, 5))
}
