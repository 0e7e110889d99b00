package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"go-food-ordering/config"
	"go-food-ordering/controllers"
	"go-food-ordering/gateway"
	"go-food-ordering/middleware"
	"go-food-ordering/models"
	"go-food-ordering/stores"
	"go-food-ordering/utils"
)

// stubOrders is the minimal OrderStore the routing test needs.
type stubOrders struct {
	mu     sync.Mutex
	orders map[string]models.Order
}

func (s *stubOrders) Insert(ctx context.Context, order models.Order) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order.ID = primitive.NewObjectID()
	s.orders[order.ID.Hex()] = order
	return order.ID.Hex(), nil
}
func (s *stubOrders) List(ctx context.Context) ([]models.Order, error) { return []models.Order{}, nil }
func (s *stubOrders) ListByUser(ctx context.Context, _ string) ([]models.Order, error) {
	return []models.Order{}, nil
}
func (s *stubOrders) UpdateStatus(ctx context.Context, _, _ string) error { return nil }
func (s *stubOrders) MarkPaid(ctx context.Context, id string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[id]
	if !ok {
		return nil, stores.ErrNotFound
	}
	order.Payment = true
	s.orders[id] = order
	return &order, nil
}
func (s *stubOrders) Delete(ctx context.Context, id string) error { return nil }
func (s *stubOrders) DeleteStaleUnpaid(ctx context.Context, _ time.Time) (int64, error) {
	return 0, nil
}

// stubUsers holds a single account per role.
type stubUsers struct {
	byID map[string]models.User
}

func (s *stubUsers) Insert(ctx context.Context, user models.User) (string, error) { return "", nil }
func (s *stubUsers) FindByEmail(ctx context.Context, _ string) (*models.User, error) {
	return nil, stores.ErrNotFound
}
func (s *stubUsers) FindByID(ctx context.Context, id string) (*models.User, error) {
	user, ok := s.byID[id]
	if !ok {
		return nil, stores.ErrNotFound
	}
	return &user, nil
}
func (s *stubUsers) ClearCart(ctx context.Context, _ string) error                    { return nil }
func (s *stubUsers) UpdateCart(ctx context.Context, _ string, _ map[string]int64) error { return nil }

type stubFoods struct{}

func (stubFoods) Insert(ctx context.Context, _ models.Food) (string, error) { return "food-1", nil }
func (stubFoods) List(ctx context.Context) ([]models.Food, error)           { return []models.Food{}, nil }
func (stubFoods) Delete(ctx context.Context, _ string) error                { return nil }

type stubGateway struct{}

func (stubGateway) CreateCheckoutSession(ctx context.Context, _ []gateway.LineItem, _, _, _ string) (*gateway.Session, error) {
	return &gateway.Session{ID: "cs_1", URL: "https://checkout.test/cs_1"}, nil
}

func newTestRouter(t *testing.T) (*mux.Router, string, string) {
	t.Helper()
	cfg := config.Config{
		JWTSecret:      "test-secret",
		FrontendURL:    "http://localhost:5173",
		Currency:       "inr",
		DeliveryCharge: 50,
	}

	userID := primitive.NewObjectID().Hex()
	users := &stubUsers{byID: map[string]models.User{
		userID: {Email: "asha@example.com", Role: "user", CartData: map[string]int64{}},
	}}
	orders := &stubOrders{orders: map[string]models.Order{}}

	router := mux.NewRouter()
	auth := middleware.NewAuthMiddleware([]byte(cfg.JWTSecret))
	RegisterRoutes(router, auth,
		controllers.NewUserController(users, cfg),
		controllers.NewFoodController(stubFoods{}),
		controllers.NewCartController(users),
		controllers.NewOrderController(orders, users, stubGateway{}, nil, cfg),
	)

	userToken, err := utils.GenerateJWT([]byte(cfg.JWTSecret), userID, "asha@example.com", "user")
	require.NoError(t, err)
	adminToken, err := utils.GenerateJWT([]byte(cfg.JWTSecret), userID, "admin@example.com", "admin")
	require.NoError(t, err)
	return router, userToken, adminToken
}

func TestRouteSurface(t *testing.T) {
	router, userToken, adminToken := newTestRouter(t)

	do := func(method, path, token, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	placeBody := `{"items":[{"name":"Pizza","price":200,"quantity":2}],"amount":450,"deliveryTime":"18:30"}`

	// public surface
	assert.Equal(t, http.StatusOK, do("GET", "/orders", "", "").Code)
	assert.Equal(t, http.StatusOK, do("GET", "/foods", "", "").Code)
	assert.Equal(t, http.StatusBadRequest, do("POST", "/orders/verify", "", `{"success":"true"}`).Code)

	// protected surface rejects anonymous callers
	assert.Equal(t, http.StatusUnauthorized, do("POST", "/orders/place", "", placeBody).Code)
	assert.Equal(t, http.StatusUnauthorized, do("POST", "/orders/place-cod", "", placeBody).Code)
	assert.Equal(t, http.StatusUnauthorized, do("POST", "/orders/mine", "", "").Code)

	// and accepts authenticated ones
	rec := do("POST", "/orders/place", userToken, placeBody)
	require.Equal(t, http.StatusOK, rec.Code)
	var placed map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&placed))
	assert.Equal(t, "https://checkout.test/cs_1", placed["session_url"])

	assert.Equal(t, http.StatusOK, do("POST", "/orders/place-cod", userToken, placeBody).Code)
	assert.Equal(t, http.StatusOK, do("POST", "/orders/mine", userToken, "").Code)

	// admin food management sits behind the admin gate
	foodBody := `{"name":"Pizza","price":200}`
	assert.Equal(t, http.StatusUnauthorized, do("POST", "/foods", "", foodBody).Code)
	assert.Equal(t, http.StatusForbidden, do("POST", "/foods", userToken, foodBody).Code)
	assert.Equal(t, http.StatusCreated, do("POST", "/foods", adminToken, foodBody).Code)
	assert.Equal(t, http.StatusOK, do("DELETE", "/foods/food-1", adminToken, "").Code)
}
