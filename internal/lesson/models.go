package lesson

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Lesson is the persistent lesson model. The catalogue is schema-flexible:
// documents carry subject and location (both text-indexed) plus whatever
// extra attributes the storefront stored. Extra keeps those attributes
// intact across reads and writes via bson inlining.
type Lesson struct {
	ID       primitive.ObjectID     `bson:"_id,omitempty"`
	Subject  string                 `bson:"subject"`
	Location string                 `bson:"location"`
	Price    float64                `bson:"price,omitempty"`
	Spaces   int                    `bson:"spaces,omitempty"`
	Image    string                 `bson:"image,omitempty"`
	Extra    map[string]interface{} `bson:",inline"`
}

// MarshalJSON flattens Extra into the top-level object. Named fields win
// over extras on key collisions; the id is rendered as its hex form.
func (l Lesson) MarshalJSON() ([]byte, error) {
	m := make(map[string]interface{}, len(l.Extra)+6)
	for k, v := range l.Extra {
		m[k] = v
	}
	if !l.ID.IsZero() {
		m["_id"] = l.ID.Hex()
	}
	m["subject"] = l.Subject
	m["location"] = l.Location
	if l.Price != 0 {
		m["price"] = l.Price
	}
	if l.Spaces != 0 {
		m["spaces"] = l.Spaces
	}
	if l.Image != "" {
		m["image"] = l.Image
	}
	return json.Marshal(m)
}
