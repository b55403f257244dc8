package schema

import "heath-crm-backend/models"

// DecodeOrderRow decodes the fixed 8-column order row: id, date, customerId,
// product, quantity, amount, paid, notes. ok is false when the id cell is
// empty.
func DecodeOrderRow(row Row) (o *models.Order, ok bool) {
	id := cellString(row, 0)
	if id == "" {
		return nil, false
	}

	return &models.Order{
		ID:         id,
		Date:       cellString(row, 1),
		CustomerID: cellString(row, 2),
		Product:    cellString(row, 3),
		Quantity:   cellInt(row, 4, 1),
		Amount:     cellFloat(row, 5, 0),
		Paid:       cellBool(row, 6),
		Notes:      cellString(row, 7),
	}, true
}

func EncodeOrderRow(o *models.Order) Row {
	quantity := o.Quantity
	if quantity <= 0 {
		quantity = 1
	}
	return Row{
		o.ID,
		o.Date,
		o.CustomerID,
		o.Product,
		quantity,
		o.Amount,
		o.Paid,
		o.Notes,
	}
}
