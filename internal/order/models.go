package order

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order combines free-form customer details with the hex ids of the ordered
// lessons. Orders are immutable once placed; lesson ids are checked for
// structural validity only, never for existence.
type Order struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	OrderInfo interface{}        `json:"orderInfo" bson:"orderInfo"`
	LessonIDs []string           `json:"lessonId" bson:"lessonId"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}
