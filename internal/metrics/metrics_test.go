package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"

	"itemsBack/internal/models"
)

type failingStore struct {
	err error
}

func (f failingStore) GetItems(ctx context.Context) ([]models.Item, error) { return nil, f.err }
func (f failingStore) GetItemByID(ctx context.Context, id int64) (models.Item, error) {
	return models.Item{}, f.err
}
func (f failingStore) CreateItem(ctx context.Context, title string, categoryID int64) (models.Item, error) {
	return models.Item{}, f.err
}
func (f failingStore) UpdateItemTitle(ctx context.Context, id int64, title string) (models.Item, error) {
	return models.Item{}, f.err
}
func (f failingStore) DeleteItem(ctx context.Context, id int64) error { return f.err }

func TestManagerCreation(t *testing.T) {
	Convey("Given a metrics manager", t, func() {
		Convey("When created without options", func() {
			m := NewManager()

			Convey("Then it owns a private registry", func() {
				So(m.Registry(), ShouldNotBeNil)
			})
		})

		Convey("When created with a shared registry", func() {
			reg := prometheus.NewRegistry()
			m := NewManager(WithRegistry(reg), WithNamespace("test"), WithHistogramBuckets([]float64{0.1, 1}))

			Convey("Then collectors are registered on it", func() {
				So(m.Registry(), ShouldEqual, reg)
				m.httpRequests.WithLabelValues("r", "GET", "200").Inc()
				families, err := reg.Gather()
				So(err, ShouldBeNil)
				So(len(families), ShouldBeGreaterThan, 0)
				So(families[0].GetName(), ShouldStartWith, "test_")
			})
		})
	})
}

func TestInstrument(t *testing.T) {
	Convey("Given an instrumented handler", t, func() {
		m := NewManager()
		h := m.Instrument("items_get")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.WriteHeader(http.StatusOK)
		}))

		Convey("When it serves a request", func() {
			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/1", nil))

			Convey("Then the first status code is counted", func() {
				So(testutil.ToFloat64(m.httpRequests.WithLabelValues("items_get", "GET", "404")), ShouldEqual, 1)
				So(testutil.ToFloat64(m.httpRequests.WithLabelValues("items_get", "GET", "200")), ShouldEqual, 0)
			})
		})

		Convey("When a handler only writes a body", func() {
			plain := m.Instrument("index")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("ok"))
			}))
			plain.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

			Convey("Then it is counted as 200", func() {
				So(testutil.ToFloat64(m.httpRequests.WithLabelValues("index", "GET", "200")), ShouldEqual, 1)
			})
		})
	})
}

func TestStoreDecorator(t *testing.T) {
	Convey("Given an instrumented store", t, func() {
		m := NewManager()

		Convey("When the store fails", func() {
			s := &Store{Next: failingStore{err: errors.New("db down")}, Metrics: m}
			_, err := s.GetItems(context.Background())
			_ = s.DeleteItem(context.Background(), 1)

			Convey("Then the error is passed through and counted", func() {
				So(err, ShouldNotBeNil)
				So(testutil.ToFloat64(m.storeErrors.WithLabelValues("list")), ShouldEqual, 1)
				So(testutil.ToFloat64(m.storeErrors.WithLabelValues("delete")), ShouldEqual, 1)
			})
		})

		Convey("When an item is missing", func() {
			s := &Store{Next: failingStore{err: models.ErrItemNotFound}, Metrics: m}
			_, err := s.GetItemByID(context.Background(), 1)

			Convey("Then it is not counted as a failure", func() {
				So(errors.Is(err, models.ErrItemNotFound), ShouldBeTrue)
				So(testutil.ToFloat64(m.storeErrors.WithLabelValues("get")), ShouldEqual, 0)
			})
		})
	})
}

func TestHandler(t *testing.T) {
	Convey("Given the metrics handler", t, func() {
		m := NewManager()
		m.httpRequests.WithLabelValues("items_list", "GET", "200").Inc()

		rec := httptest.NewRecorder()
		m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		So(rec.Code, ShouldEqual, http.StatusOK)
		So(strings.Contains(rec.Body.String(), "items_http_requests_total"), ShouldBeTrue)
	})
}

func TestStatusWriter(t *testing.T) {
	Convey("Given a status writer", t, func() {
		rec := httptest.NewRecorder()
		sw := NewStatusWriter(rec)

		Convey("When nothing is written it reports 200", func() {
			So(sw.Status(), ShouldEqual, http.StatusOK)
		})

		Convey("When the header is written twice the first code wins", func() {
			sw.WriteHeader(http.StatusCreated)
			sw.WriteHeader(http.StatusInternalServerError)
			So(sw.Status(), ShouldEqual, http.StatusCreated)
			So(rec.Code, ShouldEqual, http.StatusCreated)
		})

		Convey("When a body is written first a later header is ignored", func() {
			_, err := sw.Write([]byte("{}"))
			So(err, ShouldBeNil)
			sw.WriteHeader(http.StatusTeapot)
			So(sw.Status(), ShouldEqual, http.StatusOK)
		})
	})
}
