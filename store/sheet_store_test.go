package store

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heath-crm-backend/models"
	"heath-crm-backend/schema"
)

// fakeProxy mimics the spreadsheet web app: raw positional rows, ids assigned
// on add, prose errors on missing records.
type fakeProxy struct {
	customers []schema.Row
	schedules []schema.Row
	orders    []schema.Row
	nextID    int
}

func (p *fakeProxy) assignID() string {
	p.nextID++
	return strconv.Itoa(1700000000000 + p.nextID)
}

func (p *fakeProxy) handler() http.HandlerFunc {
	ok := func(w http.ResponseWriter, data any) {
		json.NewEncoder(w).Encode(map[string]any{"success": true, "data": data})
	}
	fail := func(w http.ResponseWriter, msg string) {
		json.NewEncoder(w).Encode(map[string]any{"success": false, "error": msg})
	}
	readRow := func(r *http.Request) schema.Row {
		var req struct {
			Row schema.Row `json:"row"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		return req.Row
	}
	find := func(rows []schema.Row, id string) int {
		for i, row := range rows {
			if len(row) > 0 && fmt.Sprint(row[0]) == id {
				return i
			}
		}
		return -1
	}

	return func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Query().Get("id")
		switch r.URL.Query().Get("action") {
		case "getAll":
			ok(w, p.customers)
		case "getById":
			if i := find(p.customers, id); i >= 0 {
				ok(w, p.customers[i])
				return
			}
			fail(w, "找不到客戶")
		case "add":
			row := readRow(r)
			row[0] = p.assignID()
			p.customers = append(p.customers, row)
			ok(w, row)
		case "update":
			i := find(p.customers, id)
			if i < 0 {
				fail(w, "找不到客戶")
				return
			}
			row := readRow(r)
			row[0] = id
			p.customers[i] = row
			ok(w, row)
		case "delete":
			i := find(p.customers, id)
			if i < 0 {
				fail(w, "找不到客戶")
				return
			}
			p.customers = append(p.customers[:i], p.customers[i+1:]...)
			ok(w, true)
		case "getSchedules":
			ok(w, p.schedules)
		case "addSchedule":
			row := readRow(r)
			row[0] = p.assignID()
			p.schedules = append(p.schedules, row)
			ok(w, row)
		case "deleteSchedule":
			i := find(p.schedules, id)
			if i < 0 {
				fail(w, "找不到行程")
				return
			}
			p.schedules = append(p.schedules[:i], p.schedules[i+1:]...)
			ok(w, true)
		case "getOrders":
			ok(w, p.orders)
		case "addOrder":
			row := readRow(r)
			row[0] = p.assignID()
			p.orders = append(p.orders, row)
			ok(w, row)
		case "updateOrder":
			i := find(p.orders, id)
			if i < 0 {
				fail(w, "找不到訂單")
				return
			}
			row := readRow(r)
			row[0] = id
			p.orders[i] = row
			ok(w, row)
		case "deleteOrder":
			i := find(p.orders, id)
			if i < 0 {
				fail(w, "找不到訂單")
				return
			}
			p.orders = append(p.orders[:i], p.orders[i+1:]...)
			ok(w, true)
		default:
			fail(w, "unknown action")
		}
	}
}

func newSheetFixture(t *testing.T, proxy *fakeProxy) *SheetStore {
	t.Helper()
	srv := httptest.NewServer(proxy.handler())
	t.Cleanup(srv.Close)
	return NewSheetStore(srv.URL)
}

func TestSheetStore_ListDecodesEveryRowShape(t *testing.T) {
	proxy := &fakeProxy{customers: []schema.Row{
		// Oldest 9-column shape: freeform region doubles as the address.
		{"1500000000000", "陳阿姨", "0933555777", "高雄市左營區", "關節炎", "止痛藥", "葡萄糖胺", "", ""},
		// 17-column shape.
		{"1600000000000", "李大華", "0922333444", "新北市", "板橋區", "街", "文化", "", "", "100", "2F",
			"新北市板橋區文化街100號2F", "糖尿病", "胰島素", "", "", "2023-01-01T00:00:00Z"},
		// Canonical 19-column shape.
		{"1700000000000", "王小明", "0912345678", "台北市", "大安區", "仁愛里", "5", "路", "仁愛",
			"12", "3", "45", "6F", "台北市大安區仁愛路12巷3弄45號6F", "高血壓", "降壓藥", "魚油", "", "2024-11-15T08:00:00Z"},
		// Corrupt row without an id: skipped, never fatal.
		{"", "孤兒"},
	}}
	s := newSheetFixture(t, proxy)

	customers, err := s.ListCustomers(context.Background(), ownerA)
	require.NoError(t, err)
	require.Len(t, customers, 3)

	assert.Equal(t, "高雄市左營區", customers[0].Region)
	assert.Equal(t, "高雄市左營區", customers[0].FullAddress)
	assert.Equal(t, "新北市板橋區", customers[1].Region)
	assert.Equal(t, "大安區", customers[2].District)
	assert.Equal(t, "仁愛里", customers[2].Village)
}

func TestSheetStore_CreateCustomer(t *testing.T) {
	proxy := &fakeProxy{}
	s := newSheetFixture(t, proxy)
	ctx := context.Background()

	created, err := s.CreateCustomer(ctx, ownerA, &models.Customer{
		Name: "王小明", Phone: "0912345678", City: "台北市", District: "大安區",
	})
	require.NoError(t, err)
	// The proxy assigns the id; the driver stamps the rest.
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, ownerA, created.OwnerID)
	assert.NotEmpty(t, created.CreatedAt)

	got, err := s.GetCustomer(ctx, ownerA, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "王小明", got.Name)
}

func TestSheetStore_NotFoundPhrasesMapToNotFound(t *testing.T) {
	s := newSheetFixture(t, &fakeProxy{})
	ctx := context.Background()

	_, err := s.GetCustomer(ctx, ownerA, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.UpdateCustomer(ctx, ownerA, "missing", &models.Customer{Name: "x", Phone: "0911", City: "c", District: "d"})
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.DeleteCustomer(ctx, ownerA, "missing"), ErrNotFound)
	assert.ErrorIs(t, s.DeleteOrder(ctx, ownerA, "missing"), ErrNotFound)
}

func TestSheetStore_ProxyErrorsAreTransient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)
	s := NewSheetStore(srv.URL)

	_, err := s.ListCustomers(context.Background(), ownerA)
	assert.ErrorIs(t, err, ErrTransient)
}

func TestSheetStore_ScheduleAndOrderRoundTrip(t *testing.T) {
	proxy := &fakeProxy{}
	s := newSheetFixture(t, proxy)
	ctx := context.Background()

	sched, err := s.CreateSchedule(ctx, ownerA, &models.Schedule{Title: "拜訪", Date: "2025-03-10", Type: models.ScheduleTypeCustomer})
	require.NoError(t, err)
	require.NotEmpty(t, sched.ID)

	schedules, err := s.ListSchedules(ctx, ownerA)
	require.NoError(t, err)
	require.Len(t, schedules, 1)
	assert.Equal(t, "拜訪", schedules[0].Title)

	require.NoError(t, s.DeleteSchedule(ctx, ownerA, sched.ID))

	order, err := s.CreateOrder(ctx, ownerA, &models.Order{Date: "2025-01-01", CustomerID: "42", Product: "維他命", Quantity: 2, Amount: 500})
	require.NoError(t, err)
	require.NotEmpty(t, order.ID)

	// There is no per-order endpoint; the driver scans the listing.
	got, err := s.GetOrder(ctx, ownerA, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "維他命", got.Product)
	assert.Equal(t, 2, got.Quantity)

	got.Paid = true
	updated, err := s.UpdateOrder(ctx, ownerA, order.ID, got)
	require.NoError(t, err)
	assert.True(t, updated.Paid)
}

func TestSheetStore_NormalizeLegacyCustomerRows(t *testing.T) {
	proxy := &fakeProxy{customers: []schema.Row{
		{"1500000000000", "陳阿姨", "0933555777", "高雄市左營區", "關節炎", "止痛藥", "葡萄糖胺", "", ""},
		{"1600000000000", "李大華", "0922333444", "新北市", "板橋區", "街", "文化", "", "", "100", "2F",
			"新北市板橋區文化街100號2F", "糖尿病", "胰島素", "", "", "2023-01-01T00:00:00Z"},
		{"1700000000000", "王小明", "0912345678", "台北市", "大安區", "仁愛里", "5", "路", "仁愛",
			"12", "3", "45", "6F", "台北市大安區仁愛路12巷3弄45號6F", "高血壓", "降壓藥", "魚油", "", "2024-11-15T08:00:00Z"},
	}}
	s := newSheetFixture(t, proxy)
	ctx := context.Background()

	migrated, err := s.NormalizeLegacyCustomerRows(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, migrated)

	// Every stored row is canonical now, so the sweep converges.
	for _, row := range proxy.customers {
		assert.Len(t, row, schema.CustomerRowWidth)
		assert.False(t, schema.IsLegacyCustomerRow(row))
	}

	migrated, err = s.NormalizeLegacyCustomerRows(ctx)
	require.NoError(t, err)
	assert.Zero(t, migrated)
}
