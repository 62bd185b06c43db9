package searchindex

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/villagekeep/villagekeep-backend/internal/platform/logger"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	return log
}

func TestLoaderDirectArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"name":"Adobe House","sku":"56.58344","intro_year":2005}]`))
	}))
	defer srv.Close()

	loader := NewHTTPLoader(testLogger(t), srv.URL, srv.Client(), nil, 0)
	products, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(products) != 1 || products[0].Name != "Adobe House" {
		t.Fatalf("unexpected products: %+v", products)
	}
	if products[0].IntroYear == nil || *products[0].IntroYear != 2005 {
		t.Fatalf("intro_year not decoded: %+v", products[0])
	}
}

func TestLoaderWrappedHouses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"houses":[{"name":"Crooked Fence Cottage"},{"name":"Adobe House"}]}`))
	}))
	defer srv.Close()

	loader := NewHTTPLoader(testLogger(t), srv.URL, srv.Client(), nil, 0)
	products, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("len: want=2 got=%d", len(products))
	}
}

func TestLoaderNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	loader := NewHTTPLoader(testLogger(t), srv.URL, srv.Client(), nil, 0)
	_, err := loader.Load(context.Background())
	if !errors.Is(err, ErrIndexUnavailable) {
		t.Fatalf("want ErrIndexUnavailable got %v", err)
	}
}

func TestLoaderMalformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not": "an index"}`))
	}))
	defer srv.Close()

	loader := NewHTTPLoader(testLogger(t), srv.URL, srv.Client(), nil, 0)
	_, err := loader.Load(context.Background())
	if !errors.Is(err, ErrIndexUnavailable) {
		t.Fatalf("want ErrIndexUnavailable got %v", err)
	}
}

func TestLoaderUnreachable(t *testing.T) {
	loader := NewHTTPLoader(testLogger(t), "http://127.0.0.1:1/index.json", nil, nil, 0)
	_, err := loader.Load(context.Background())
	if !errors.Is(err, ErrIndexUnavailable) {
		t.Fatalf("want ErrIndexUnavailable got %v", err)
	}
}

func TestLoaderCacheOutageDegradesToFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"name":"Adobe House"}]`))
	}))
	defer srv.Close()

	// Nothing listens on this address: every cache read and write fails.
	cache := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	loader := NewHTTPLoader(testLogger(t), srv.URL, srv.Client(), cache, time.Minute)

	products, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load should survive a cache outage: %v", err)
	}
	if len(products) != 1 || products[0].Name != "Adobe House" {
		t.Fatalf("unexpected products: %+v", products)
	}
}

func TestLoaderSurvivesCallerCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"name":"Adobe House"}]`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loader := NewHTTPLoader(testLogger(t), srv.URL, srv.Client(), nil, 0)
	products, err := loader.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("len: want=1 got=%d", len(products))
	}
}
