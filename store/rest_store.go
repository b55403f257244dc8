package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"heath-crm-backend/models"
)

const restTimeout = 30 * time.Second

// RestStore is the remote REST driver. It speaks the canonical JSON shapes;
// the owner key travels as the userId query parameter on every call.
type RestStore struct {
	baseURL string
	client  *http.Client
}

func NewRestStore(baseURL string) *RestStore {
	return &RestStore{
		baseURL: baseURL,
		client:  &http.Client{Timeout: restTimeout},
	}
}

type restError struct {
	Error string `json:"error"`
}

// do runs one API call and decodes a 2xx response into out (out may be nil).
func (s *RestStore) do(ctx context.Context, method, path, owner string, body, out any) error {
	endpoint := s.baseURL + path + "?userId=" + url.QueryEscape(owner)

	var reqBody *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(raw)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return transientErr(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return transientErr(err)
		}
		return nil
	}

	var apiErr restError
	_ = json.NewDecoder(resp.Body).Decode(&apiErr)

	switch resp.StatusCode {
	case http.StatusBadRequest:
		return validationErr("%s", apiErr.Error)
	case http.StatusUnauthorized:
		return ErrUnauthenticated
	case http.StatusForbidden, http.StatusNotFound:
		return ErrNotFound
	default:
		return transientErr(fmt.Errorf("api returned %d: %s", resp.StatusCode, apiErr.Error))
	}
}

// ==================== customers ====================

func (s *RestStore) ListCustomers(ctx context.Context, owner string) ([]models.Customer, error) {
	var customers []models.Customer
	if err := s.do(ctx, http.MethodGet, "/customers", owner, nil, &customers); err != nil {
		return nil, err
	}
	for i := range customers {
		customers[i].OwnerID = owner
		customers[i].SyncRegion()
	}
	return customers, nil
}

func (s *RestStore) GetCustomer(ctx context.Context, owner, id string) (*models.Customer, error) {
	var c models.Customer
	if err := s.do(ctx, http.MethodGet, "/customers/"+url.PathEscape(id), owner, nil, &c); err != nil {
		return nil, err
	}
	c.OwnerID = owner
	c.SyncRegion()
	return &c, nil
}

func (s *RestStore) CreateCustomer(ctx context.Context, owner string, c *models.Customer) (*models.Customer, error) {
	var created models.Customer
	if err := s.do(ctx, http.MethodPost, "/customers", owner, c, &created); err != nil {
		return nil, err
	}
	created.OwnerID = owner
	created.SyncRegion()
	return &created, nil
}

func (s *RestStore) UpdateCustomer(ctx context.Context, owner, id string, c *models.Customer) (*models.Customer, error) {
	var updated models.Customer
	if err := s.do(ctx, http.MethodPut, "/customers/"+url.PathEscape(id), owner, c, &updated); err != nil {
		return nil, err
	}
	updated.OwnerID = owner
	updated.SyncRegion()
	return &updated, nil
}

func (s *RestStore) DeleteCustomer(ctx context.Context, owner, id string) error {
	return s.do(ctx, http.MethodDelete, "/customers/"+url.PathEscape(id), owner, nil, nil)
}

// ==================== schedules ====================

func (s *RestStore) ListSchedules(ctx context.Context, owner string) ([]models.Schedule, error) {
	var schedules []models.Schedule
	if err := s.do(ctx, http.MethodGet, "/schedules", owner, nil, &schedules); err != nil {
		return nil, err
	}
	for i := range schedules {
		schedules[i].OwnerID = owner
	}
	return schedules, nil
}

func (s *RestStore) CreateSchedule(ctx context.Context, owner string, sched *models.Schedule) (*models.Schedule, error) {
	var created models.Schedule
	if err := s.do(ctx, http.MethodPost, "/schedules", owner, sched, &created); err != nil {
		return nil, err
	}
	created.OwnerID = owner
	return &created, nil
}

func (s *RestStore) DeleteSchedule(ctx context.Context, owner, id string) error {
	return s.do(ctx, http.MethodDelete, "/schedules/"+url.PathEscape(id), owner, nil, nil)
}

// ==================== orders ====================

func (s *RestStore) ListOrders(ctx context.Context, owner string) ([]models.Order, error) {
	var orders []models.Order
	if err := s.do(ctx, http.MethodGet, "/orders", owner, nil, &orders); err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].OwnerID = owner
	}
	return orders, nil
}

func (s *RestStore) GetOrder(ctx context.Context, owner, id string) (*models.Order, error) {
	var o models.Order
	if err := s.do(ctx, http.MethodGet, "/orders/"+url.PathEscape(id), owner, nil, &o); err != nil {
		return nil, err
	}
	o.OwnerID = owner
	return &o, nil
}

func (s *RestStore) CreateOrder(ctx context.Context, owner string, o *models.Order) (*models.Order, error) {
	var created models.Order
	if err := s.do(ctx, http.MethodPost, "/orders", owner, o, &created); err != nil {
		return nil, err
	}
	created.OwnerID = owner
	return &created, nil
}

func (s *RestStore) UpdateOrder(ctx context.Context, owner, id string, o *models.Order) (*models.Order, error) {
	var updated models.Order
	if err := s.do(ctx, http.MethodPut, "/orders/"+url.PathEscape(id), owner, o, &updated); err != nil {
		return nil, err
	}
	updated.OwnerID = owner
	return &updated, nil
}

func (s *RestStore) DeleteOrder(ctx context.Context, owner, id string) error {
	return s.do(ctx, http.MethodDelete, "/orders/"+url.PathEscape(id), owner, nil, nil)
}
