package controllers

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"go-food-ordering/gateway"
	"go-food-ordering/models"
	"go-food-ordering/stores"
)

// memOrderStore is a small in-memory OrderStore for unit tests.
type memOrderStore struct {
	mu        sync.Mutex
	orders    map[string]models.Order
	insertErr error
}

func newMemOrderStore() *memOrderStore {
	return &memOrderStore{orders: map[string]models.Order{}}
}

func (m *memOrderStore) Insert(ctx context.Context, order models.Order) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.insertErr != nil {
		return "", m.insertErr
	}
	order.ID = primitive.NewObjectID()
	m.orders[order.ID.Hex()] = order
	return order.ID.Hex(), nil
}

func (m *memOrderStore) List(ctx context.Context) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Order{}
	for _, o := range m.orders {
		out = append(out, o)
	}
	return out, nil
}

func (m *memOrderStore) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Order{}
	for _, o := range m.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *memOrderStore) UpdateStatus(ctx context.Context, orderID, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.orders[orderID]
	if !ok {
		return stores.ErrNotFound
	}
	order.Status = status
	m.orders[orderID] = order
	return nil
}

func (m *memOrderStore) MarkPaid(ctx context.Context, orderID string) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.orders[orderID]
	if !ok {
		return nil, stores.ErrNotFound
	}
	order.Payment = true
	m.orders[orderID] = order
	return &order, nil
}

func (m *memOrderStore) Delete(ctx context.Context, orderID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.orders[orderID]; !ok {
		return stores.ErrNotFound
	}
	delete(m.orders, orderID)
	return nil
}

func (m *memOrderStore) DeleteStaleUnpaid(ctx context.Context, cutoff time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var deleted int64
	for id, o := range m.orders {
		if !o.Payment && o.CreatedAt.Before(cutoff) {
			delete(m.orders, id)
			deleted++
		}
	}
	return deleted, nil
}

func (m *memOrderStore) single() models.Order {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.orders {
		return o
	}
	return models.Order{}
}

func (m *memOrderStore) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.orders)
}

// memUserStore is a small in-memory UserStore for unit tests.
type memUserStore struct {
	mu         sync.Mutex
	users      map[string]models.User
	clearCalls int
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: map[string]models.User{}}
}

func (m *memUserStore) Insert(ctx context.Context, user models.User) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user.ID = primitive.NewObjectID()
	m.users[user.ID.Hex()] = user
	return user.ID.Hex(), nil
}

func (m *memUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, stores.ErrNotFound
}

func (m *memUserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return nil, stores.ErrNotFound
	}
	return &user, nil
}

func (m *memUserStore) ClearCart(ctx context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[userID]
	if !ok {
		return stores.ErrNotFound
	}
	user.CartData = map[string]int64{}
	m.users[userID] = user
	m.clearCalls++
	return nil
}

func (m *memUserStore) UpdateCart(ctx context.Context, userID string, cart map[string]int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[userID]
	if !ok {
		return stores.ErrNotFound
	}
	user.CartData = cart
	m.users[userID] = user
	return nil
}

func (m *memUserStore) cart(userID string) map[string]int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.users[userID].CartData
}

// fakeGateway records the last checkout-session request and returns a canned
// session, or fails when err is set.
type fakeGateway struct {
	mu         sync.Mutex
	err        error
	items      []gateway.LineItem
	currency   string
	successURL string
	cancelURL  string
	calls      int
}

func (g *fakeGateway) CreateCheckoutSession(ctx context.Context, items []gateway.LineItem, currency, successURL, cancelURL string) (*gateway.Session, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls++
	g.items = items
	g.currency = currency
	g.successURL = successURL
	g.cancelURL = cancelURL
	if g.err != nil {
		return nil, g.err
	}
	// echo the success redirect so assertions can see what the session
	// would eventually send the payer back to
	return &gateway.Session{ID: "cs_test_123", URL: successURL}, nil
}
