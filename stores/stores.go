package stores

import (
	"context"
	"errors"
	"time"

	"go-food-ordering/models"
)

// ErrNotFound is returned when a referenced document does not exist.
var ErrNotFound = errors.New("document not found")

// OrderStore encapsulates operations on the orders collection.
type OrderStore interface {
	Insert(ctx context.Context, order models.Order) (string, error)
	List(ctx context.Context) ([]models.Order, error)
	ListByUser(ctx context.Context, userID string) ([]models.Order, error)
	UpdateStatus(ctx context.Context, orderID, status string) error
	// MarkPaid sets payment=true on the order and returns the updated
	// document. Marking an already-paid order again is harmless.
	MarkPaid(ctx context.Context, orderID string) (*models.Order, error)
	Delete(ctx context.Context, orderID string) error
	// DeleteStaleUnpaid removes unpaid orders created before the cutoff and
	// reports how many were deleted.
	DeleteStaleUnpaid(ctx context.Context, cutoff time.Time) (int64, error)
}

// UserStore encapsulates operations on the users collection, including the
// cart mapping stored on each user document.
type UserStore interface {
	Insert(ctx context.Context, user models.User) (string, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	ClearCart(ctx context.Context, userID string) error
	UpdateCart(ctx context.Context, userID string, cart map[string]int64) error
}

// FoodStore encapsulates operations on the foods collection.
type FoodStore interface {
	Insert(ctx context.Context, food models.Food) (string, error)
	List(ctx context.Context) ([]models.Food, error)
	Delete(ctx context.Context, id string) error
}
