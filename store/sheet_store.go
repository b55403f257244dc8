package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"heath-crm-backend/models"
	"heath-crm-backend/schema"
)

// sheetTimeout bounds every call to the spreadsheet web app. Timeouts and
// aborts surface as ErrTransient.
const sheetTimeout = 30 * time.Second

// SheetStore is the spreadsheet driver. It talks to an Apps-Script-style web
// app that stores raw positional rows; this side owns the row codec, the
// proxy owns id assignment and the owner filter (owner key travels as a query
// parameter).
type SheetStore struct {
	baseURL string
	client  *http.Client
}

func NewSheetStore(baseURL string) *SheetStore {
	return &SheetStore{
		baseURL: baseURL,
		client:  &http.Client{Timeout: sheetTimeout},
	}
}

type sheetResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

type sheetRowRequest struct {
	Row schema.Row `json:"row"`
}

func (s *SheetStore) call(ctx context.Context, method, action string, params url.Values, body any) (json.RawMessage, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("action", action)

	var reqBody *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewReader(raw)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+"?"+params.Encode(), reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, transientErr(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, transientErr(fmt.Errorf("sheet proxy returned %d", resp.StatusCode))
	}

	var envelope sheetResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, transientErr(err)
	}
	if !envelope.Success {
		// The proxy reports missing records in prose ("找不到...").
		if strings.Contains(envelope.Error, "找不到") || strings.Contains(strings.ToLower(envelope.Error), "not found") {
			return nil, ErrNotFound
		}
		return nil, transientErr(fmt.Errorf("sheet proxy: %s", envelope.Error))
	}
	return envelope.Data, nil
}

func (s *SheetStore) listRows(ctx context.Context, action, owner string) ([]schema.Row, error) {
	params := url.Values{}
	if owner != "" {
		params.Set("owner", owner)
	}
	data, err := s.call(ctx, http.MethodGet, action, params, nil)
	if err != nil {
		return nil, err
	}
	var rows []schema.Row
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, transientErr(err)
	}
	return rows, nil
}

func (s *SheetStore) rowCall(ctx context.Context, action, owner, id string, row schema.Row) (schema.Row, error) {
	params := url.Values{}
	if owner != "" {
		params.Set("owner", owner)
	}
	if id != "" {
		params.Set("id", id)
	}
	data, err := s.call(ctx, http.MethodPost, action, params, sheetRowRequest{Row: row})
	if err != nil {
		return nil, err
	}
	var stored schema.Row
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, transientErr(err)
	}
	return stored, nil
}

func (s *SheetStore) deleteCall(ctx context.Context, action, owner, id string) error {
	params := url.Values{"owner": {owner}, "id": {id}}
	_, err := s.call(ctx, http.MethodPost, action, params, nil)
	return err
}

// ==================== customers ====================

func (s *SheetStore) ListCustomers(ctx context.Context, owner string) ([]models.Customer, error) {
	rows, err := s.listRows(ctx, "getAll", owner)
	if err != nil {
		return nil, err
	}
	customers := make([]models.Customer, 0, len(rows))
	for _, row := range rows {
		c, ok := schema.DecodeCustomerRow(row)
		if !ok {
			// A single corrupt row must never block the listing.
			log.Printf("skipping malformed customer row (%d cells, no id)", len(row))
			continue
		}
		customers = append(customers, *c)
	}
	return customers, nil
}

func (s *SheetStore) GetCustomer(ctx context.Context, owner, id string) (*models.Customer, error) {
	params := url.Values{"owner": {owner}, "id": {id}}
	data, err := s.call(ctx, http.MethodGet, "getById", params, nil)
	if err != nil {
		return nil, err
	}
	var row schema.Row
	if err := json.Unmarshal(data, &row); err != nil {
		return nil, transientErr(err)
	}
	c, ok := schema.DecodeCustomerRow(row)
	if !ok {
		return nil, ErrNotFound
	}
	return c, nil
}

func (s *SheetStore) CreateCustomer(ctx context.Context, owner string, c *models.Customer) (*models.Customer, error) {
	rec := *c
	rec.ID = "" // the proxy assigns the id
	if rec.CreatedAt == "" {
		rec.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	stored, err := s.rowCall(ctx, "add", owner, "", schema.EncodeCustomerRow(&rec))
	if err != nil {
		return nil, err
	}
	created, ok := schema.DecodeCustomerRow(stored)
	if !ok {
		return nil, transientErr(fmt.Errorf("sheet proxy returned row without id"))
	}
	created.OwnerID = owner
	return created, nil
}

func (s *SheetStore) UpdateCustomer(ctx context.Context, owner, id string, c *models.Customer) (*models.Customer, error) {
	rec := *c
	rec.ID = id
	stored, err := s.rowCall(ctx, "update", owner, id, schema.EncodeCustomerRow(&rec))
	if err != nil {
		return nil, err
	}
	updated, ok := schema.DecodeCustomerRow(stored)
	if !ok {
		return nil, ErrNotFound
	}
	updated.OwnerID = owner
	return updated, nil
}

func (s *SheetStore) DeleteCustomer(ctx context.Context, owner, id string) error {
	return s.deleteCall(ctx, "delete", owner, id)
}

// ==================== schedules ====================

func (s *SheetStore) ListSchedules(ctx context.Context, owner string) ([]models.Schedule, error) {
	rows, err := s.listRows(ctx, "getSchedules", owner)
	if err != nil {
		return nil, err
	}
	schedules := make([]models.Schedule, 0, len(rows))
	for _, row := range rows {
		sched, ok := schema.DecodeScheduleRow(row)
		if !ok {
			log.Printf("skipping malformed schedule row (%d cells, no id)", len(row))
			continue
		}
		schedules = append(schedules, *sched)
	}
	return schedules, nil
}

func (s *SheetStore) CreateSchedule(ctx context.Context, owner string, sched *models.Schedule) (*models.Schedule, error) {
	rec := *sched
	rec.ID = ""
	stored, err := s.rowCall(ctx, "addSchedule", owner, "", schema.EncodeScheduleRow(&rec))
	if err != nil {
		return nil, err
	}
	created, ok := schema.DecodeScheduleRow(stored)
	if !ok {
		return nil, transientErr(fmt.Errorf("sheet proxy returned row without id"))
	}
	created.OwnerID = owner
	return created, nil
}

func (s *SheetStore) DeleteSchedule(ctx context.Context, owner, id string) error {
	return s.deleteCall(ctx, "deleteSchedule", owner, id)
}

// ==================== orders ====================

func (s *SheetStore) ListOrders(ctx context.Context, owner string) ([]models.Order, error) {
	rows, err := s.listRows(ctx, "getOrders", owner)
	if err != nil {
		return nil, err
	}
	orders := make([]models.Order, 0, len(rows))
	for _, row := range rows {
		o, ok := schema.DecodeOrderRow(row)
		if !ok {
			log.Printf("skipping malformed order row (%d cells, no id)", len(row))
			continue
		}
		orders = append(orders, *o)
	}
	return orders, nil
}

// GetOrder scans the listing; the proxy has no per-order lookup.
func (s *SheetStore) GetOrder(ctx context.Context, owner, id string) (*models.Order, error) {
	orders, err := s.ListOrders(ctx, owner)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}
	return nil, ErrNotFound
}

func (s *SheetStore) CreateOrder(ctx context.Context, owner string, o *models.Order) (*models.Order, error) {
	rec := *o
	rec.ID = ""
	stored, err := s.rowCall(ctx, "addOrder", owner, "", schema.EncodeOrderRow(&rec))
	if err != nil {
		return nil, err
	}
	created, ok := schema.DecodeOrderRow(stored)
	if !ok {
		return nil, transientErr(fmt.Errorf("sheet proxy returned row without id"))
	}
	created.OwnerID = owner
	return created, nil
}

func (s *SheetStore) UpdateOrder(ctx context.Context, owner, id string, o *models.Order) (*models.Order, error) {
	rec := *o
	rec.ID = id
	stored, err := s.rowCall(ctx, "updateOrder", owner, id, schema.EncodeOrderRow(&rec))
	if err != nil {
		return nil, err
	}
	updated, ok := schema.DecodeOrderRow(stored)
	if !ok {
		return nil, ErrNotFound
	}
	updated.OwnerID = owner
	return updated, nil
}

func (s *SheetStore) DeleteOrder(ctx context.Context, owner, id string) error {
	return s.deleteCall(ctx, "deleteOrder", owner, id)
}

// NormalizeLegacyCustomerRows rewrites every 9- and 17-column customer row to
// the canonical 19-column shape. Called without an owner filter, so it sweeps
// the whole sheet; run at startup and nightly so runtime decodes eventually
// see only the latest shape.
func (s *SheetStore) NormalizeLegacyCustomerRows(ctx context.Context) (int, error) {
	rows, err := s.listRows(ctx, "getAll", "")
	if err != nil {
		return 0, err
	}

	migrated := 0
	for _, row := range rows {
		if !schema.IsLegacyCustomerRow(row) {
			continue
		}
		c, ok := schema.DecodeCustomerRow(row)
		if !ok {
			continue
		}
		if _, err := s.rowCall(ctx, "update", "", c.ID, schema.EncodeCustomerRow(c)); err != nil {
			return migrated, err
		}
		migrated++
	}
	return migrated, nil
}
