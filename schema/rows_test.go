package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heath-crm-backend/models"
)

func TestDecodeScheduleRow(t *testing.T) {
	s, ok := DecodeScheduleRow(Row{"1700000000001", "拜訪", "2025-03-10", "10:00", "11:00", "customer", "42", "帶保健食品"})
	require.True(t, ok)

	assert.Equal(t, "1700000000001", s.ID)
	assert.Equal(t, "拜訪", s.Title)
	assert.Equal(t, "2025-03-10", s.Date)
	assert.Equal(t, "10:00", s.StartTime)
	assert.Equal(t, "11:00", s.EndTime)
	assert.Equal(t, models.ScheduleTypeCustomer, s.Type)
	assert.Equal(t, "42", s.CustomerID)
	assert.Equal(t, "帶保健食品", s.Notes)
}

func TestDecodeScheduleRow_Defaults(t *testing.T) {
	s, ok := DecodeScheduleRow(Row{"1", "會議", "2025-03-10", "", "", "", "", ""})
	require.True(t, ok)
	assert.Equal(t, models.ScheduleTypeOther, s.Type)

	_, ok = DecodeScheduleRow(Row{"", "孤兒列"})
	assert.False(t, ok)
}

func TestScheduleRow_RoundTrip(t *testing.T) {
	s := &models.Schedule{ID: "9", Title: "送貨", Date: "2025-04-01", Type: models.ScheduleTypePartner}
	row := EncodeScheduleRow(s)
	require.Len(t, row, ScheduleRowWidth)

	decoded, ok := DecodeScheduleRow(row)
	require.True(t, ok)
	assert.Equal(t, s, decoded)
}

func TestDecodeOrderRow(t *testing.T) {
	o, ok := DecodeOrderRow(Row{"1700000000002", "2025-01-01", "42", "維他命", float64(2), float64(500), false, "宅配"})
	require.True(t, ok)

	assert.Equal(t, "2025-01-01", o.Date)
	assert.Equal(t, "42", o.CustomerID)
	assert.Equal(t, "維他命", o.Product)
	assert.Equal(t, 2, o.Quantity)
	assert.Equal(t, 500.0, o.Amount)
	assert.False(t, o.Paid)
	assert.Equal(t, "宅配", o.Notes)
}

func TestDecodeOrderRow_Defaults(t *testing.T) {
	o, ok := DecodeOrderRow(Row{"1", "2025-01-01", "42", "鈣片", nil, nil, "true", ""})
	require.True(t, ok)
	assert.Equal(t, 1, o.Quantity)
	assert.Equal(t, 0.0, o.Amount)
	// The sheet stored paid flags both as booleans and as the string "true".
	assert.True(t, o.Paid)

	_, ok = DecodeOrderRow(Row{nil})
	assert.False(t, ok)
}

func TestEncodeOrderRow_QuantityFloor(t *testing.T) {
	row := EncodeOrderRow(&models.Order{ID: "1", Date: "2025-01-01", CustomerID: "42", Product: "鈣片"})
	require.Len(t, row, OrderRowWidth)
	assert.Equal(t, 1, row[4])
}
