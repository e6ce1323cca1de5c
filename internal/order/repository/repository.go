package repository

import (
	"context"
	"errors"

	"github.com/lessonhub/lessonhub/internal/order"
)

var ErrNotFound = errors.New("order not found")

// Repository defines order persistence. Insert returns the hex id of the
// stored order.
type Repository interface {
	Insert(ctx context.Context, o *order.Order) (string, error)
	Get(ctx context.Context, id string) (*order.Order, error)
}
