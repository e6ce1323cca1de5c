package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lessonhub/lessonhub/internal/lesson"
	lessonrepo "github.com/lessonhub/lessonhub/internal/lesson/repository"
	lessonservice "github.com/lessonhub/lessonhub/internal/lesson/service"
	orderrepo "github.com/lessonhub/lessonhub/internal/order/repository"
	orderservice "github.com/lessonhub/lessonhub/internal/order/service"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fixture struct {
	router     *gin.Engine
	lessons    *lessonrepo.MemoryRepo
	orders     *orderrepo.MemoryRepo
	mathID     string
	orderSvc   *orderservice.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	lrepo := lessonrepo.NewMemoryRepo()
	mathID := lrepo.Add(&lesson.Lesson{Subject: "Mathematics", Location: "London", Price: 100, Spaces: 5})
	lrepo.Add(&lesson.Lesson{Subject: "Music", Location: "Oxford", Price: 80, Spaces: 3})

	orepo := orderrepo.NewMemoryRepo()
	osvc := orderservice.NewService(orepo)

	r := gin.New()
	api := NewAPI(lessonservice.NewService(lrepo), osvc)
	api.Register(r)

	return &fixture{router: r, lessons: lrepo, orders: orepo, mathID: mathID, orderSvc: osvc}
}

func (f *fixture) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestSearch_EmptyQuery(t *testing.T) {
	f := newFixture(t)
	require.Equal(t, http.StatusNotAcceptable, f.do("GET", "/search", "").Code)
	require.Equal(t, http.StatusNotAcceptable, f.do("GET", "/search?q=", "").Code)
	require.Equal(t, http.StatusNotAcceptable, f.do("GET", "/search?q=%20%20", "").Code)
}

func TestSearch_NoMatch(t *testing.T) {
	f := newFixture(t)
	require.Equal(t, http.StatusNotFound, f.do("GET", "/search?q=astronomy", "").Code)
}

func TestSearch_FullTextAndFallback(t *testing.T) {
	f := newFixture(t)

	// exact indexed word resolves via full text
	w := f.do("GET", "/search?q=Mathematics", "")
	require.Equal(t, http.StatusOK, w.Code)
	var hits []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &hits))
	require.Len(t, hits, 1)
	require.Equal(t, "Mathematics", hits[0]["subject"])

	// lowercase partial word only matches as a substring
	w = f.do("GET", "/search?q=math", "")
	require.Equal(t, http.StatusOK, w.Code)
	hits = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &hits))
	require.Len(t, hits, 1)
	require.Equal(t, "Mathematics", hits[0]["subject"])
}

func TestListLessons(t *testing.T) {
	f := newFixture(t)
	w := f.do("GET", "/lessons", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 2)
}

func TestCreateOrder_MalformedIDPersistsNothing(t *testing.T) {
	f := newFixture(t)
	body := `{"orderInfo":{"name":"Ada"},"lessonId":["` + f.mathID + `","nope"]}`
	w := f.do("POST", "/order", body)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Zero(t, f.orders.Len())
}

func TestCreateOrder_ValidIDs(t *testing.T) {
	f := newFixture(t)
	second := primitive.NewObjectID().Hex()
	body := `{"orderInfo":{"name":"Ada","phone":"0123456789"},"lessonId":["` + f.mathID + `","` + second + `"]}`
	w := f.do("POST", "/order", body)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	insertedID, _ := resp["insertedId"].(string)
	require.NotEmpty(t, insertedID)
	require.Equal(t, "Order created", resp["message"])

	got, err := f.orderSvc.Get(context.Background(), insertedID)
	require.NoError(t, err)
	require.Equal(t, []string{f.mathID, second}, got.LessonIDs)
	require.Equal(t, map[string]interface{}{"name": "Ada", "phone": "0123456789"}, got.OrderInfo)
}

func TestUpdateLesson_InvalidID(t *testing.T) {
	f := newFixture(t)
	w := f.do("PUT", "/updateLesson/banana", `{"spaces":4}`)
	require.Equal(t, http.StatusRequestTimeout, w.Code)
	require.Contains(t, w.Body.String(), "invalid id")
}

func TestUpdateLesson_EmptyBody(t *testing.T) {
	f := newFixture(t)
	w := f.do("PUT", "/updateLesson/"+f.mathID, "")
	require.Equal(t, http.StatusRequestTimeout, w.Code)
	require.Contains(t, w.Body.String(), "no data provided")

	w = f.do("PUT", "/updateLesson/"+f.mathID, `{}`)
	require.Equal(t, http.StatusRequestTimeout, w.Code)

	// document untouched
	list, err := f.lessons.List(context.Background())
	require.NoError(t, err)
	for _, l := range list {
		if l.ID.Hex() == f.mathID {
			require.Equal(t, 5, l.Spaces)
		}
	}
}

func TestUpdateLesson_UnknownID(t *testing.T) {
	f := newFixture(t)
	w := f.do("PUT", "/updateLesson/"+primitive.NewObjectID().Hex(), `{"spaces":4}`)
	require.Equal(t, http.StatusRequestTimeout, w.Code)
}

func TestUpdateLesson_Success(t *testing.T) {
	f := newFixture(t)
	w := f.do("PUT", "/updateLesson/"+f.mathID, `{"spaces":4,"location":"Cambridge"}`)
	require.Equal(t, http.StatusOK, w.Code)

	wl := f.do("GET", "/search?q=Cambridge", "")
	require.Equal(t, http.StatusOK, wl.Code)
}

func TestDeleteLesson(t *testing.T) {
	f := newFixture(t)

	require.Equal(t, http.StatusRequestTimeout, f.do("DELETE", "/deleteLesson/banana", "").Code)

	w := f.do("DELETE", "/deleteLesson/"+f.mathID, "")
	require.Equal(t, http.StatusOK, w.Code)

	// deleting again answers 408
	w = f.do("DELETE", "/deleteLesson/"+f.mathID, "")
	require.Equal(t, http.StatusRequestTimeout, w.Code)
}
