package repository

import (
	"context"
	"strings"
	"sync"
	"unicode"

	"github.com/lessonhub/lessonhub/internal/lesson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepo is an in-memory lesson repository used for unit tests and as a
// degraded fallback when MongoDB is unreachable at startup. Its search
// methods mimic the Mongo behavior: SearchText matches whole lowercased
// tokens (so a partial word misses, like an unstemmed $text query would),
// SearchSubstring matches case-insensitive substrings.
type MemoryRepo struct {
	mu    sync.RWMutex
	store map[string]*lesson.Lesson
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{store: make(map[string]*lesson.Lesson)}
}

// Add inserts a lesson, assigning an id when missing, and returns the hex id.
func (m *MemoryRepo) Add(l *lesson.Lesson) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if l.ID.IsZero() {
		l.ID = primitive.NewObjectID()
	}
	m.store[l.ID.Hex()] = l
	return l.ID.Hex()
}

func (m *MemoryRepo) List(ctx context.Context) ([]*lesson.Lesson, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*lesson.Lesson, 0, len(m.store))
	for _, l := range m.store {
		out = append(out, l)
	}
	return out, nil
}

func (m *MemoryRepo) SearchText(ctx context.Context, query string) ([]*lesson.Lesson, error) {
	words := tokenize(query)
	return m.match(func(l *lesson.Lesson) bool {
		doc := append(tokenize(l.Subject), tokenize(l.Location)...)
		for _, w := range words {
			for _, t := range doc {
				if w == t {
					return true
				}
			}
		}
		return false
	}), nil
}

func (m *MemoryRepo) SearchSubstring(ctx context.Context, query string) ([]*lesson.Lesson, error) {
	q := strings.ToLower(query)
	return m.match(func(l *lesson.Lesson) bool {
		return strings.Contains(strings.ToLower(l.Subject), q) ||
			strings.Contains(strings.ToLower(l.Location), q)
	}), nil
}

func (m *MemoryRepo) Update(ctx context.Context, id string, fields map[string]interface{}) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.store[id]
	if !ok {
		return 0, nil
	}
	for k, v := range fields {
		switch k {
		case "subject":
			if s, ok := v.(string); ok {
				l.Subject = s
			}
		case "location":
			if s, ok := v.(string); ok {
				l.Location = s
			}
		case "price":
			if f, ok := v.(float64); ok {
				l.Price = f
			}
		case "spaces":
			if f, ok := v.(float64); ok {
				l.Spaces = int(f)
			}
		case "image":
			if s, ok := v.(string); ok {
				l.Image = s
			}
		default:
			if l.Extra == nil {
				l.Extra = map[string]interface{}{}
			}
			l.Extra[k] = v
		}
	}
	return 1, nil
}

func (m *MemoryRepo) Delete(ctx context.Context, id string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[id]; !ok {
		return 0, nil
	}
	delete(m.store, id)
	return 1, nil
}

func (m *MemoryRepo) match(pred func(*lesson.Lesson) bool) []*lesson.Lesson {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []*lesson.Lesson{}
	for _, l := range m.store {
		if pred(l) {
			out = append(out, l)
		}
	}
	return out
}

func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
