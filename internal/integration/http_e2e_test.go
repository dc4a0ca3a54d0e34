//go:build integration || !unit

package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	goredis "github.com/redis/go-redis/v9"

	"sletayka/internal/adapters/feed"
	httpserver "sletayka/internal/adapters/http_server"
	redisad "sletayka/internal/adapters/redis"
	"sletayka/internal/app"
	"sletayka/internal/domain"
)

// startRedis runs an isolated redis container and returns its address.
func startRedis(t *testing.T) string {
	t.Helper()
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7-alpine",
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run redis: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	addr := fmt.Sprintf("127.0.0.1:%s", resource.GetPort("6379/tcp"))
	if err := pool.Retry(func() error {
		rdb := goredis.NewClient(&goredis.Options{Addr: addr})
		defer rdb.Close()
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		return rdb.Ping(ctx).Err()
	}); err != nil {
		t.Fatalf("connect redis: %v", err)
	}
	return addr
}

// upstreamFeed fakes the tour aggregator: a JSON tour list plus a
// refresh endpoint.
func upstreamFeed(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"tours":[
			{"id":"101","title":"Мальдивы Премиум","destination":"Мальдивы","country":"maldives","price":450000,"category":"beach","rating":4.9,"hotelStars":5},
			{"id":"102","title":"Горящий тур в Турцию","destination":"Анталья","country":"asia","price":55000,"category":"hot","rating":4.5,"discount":30}
		],"total":2}`)
	})
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_EndToEnd_CatalogOverRedis(t *testing.T) {
	addr := startRedis(t)
	upstream := upstreamFeed(t)
	ctx := context.Background()

	cache := redisad.New(addr, "", 0)
	client := feed.New(upstream.URL, "", 50)

	catalog := app.NewCatalogService(client, cache, nil, time.Hour, time.Minute)
	catalog.Seed(ctx)
	if err := catalog.Refresh(ctx); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	srv := httpserver.New()
	srv.MountHandlers(&httpserver.Handlers{Catalog: catalog, Feed: client})
	api := httptest.NewServer(srv.Mux())
	defer api.Close()

	// the live feed is being served
	res, err := http.Get(api.URL + "/v1/tours")
	if err != nil {
		t.Fatalf("GET tours: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}
	var body struct {
		Tours []domain.Tour `json:"tours"`
		Total int           `json:"total"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Total != 2 {
		t.Fatalf("want 2 tours, got %+v", body)
	}

	// the hot deal made it through classification
	res2, err := http.Get(api.URL + "/v1/hotdeals")
	if err != nil {
		t.Fatalf("GET hotdeals: %v", err)
	}
	defer res2.Body.Close()
	var deals struct {
		Deals []domain.Tour `json:"deals"`
	}
	if err := json.NewDecoder(res2.Body).Decode(&deals); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(deals.Deals) != 1 || deals.Deals[0].ID != "102" {
		t.Fatalf("hot deals: %+v", deals.Deals)
	}

	// a fresh service with a dead feed still serves the redis snapshot
	deadFeed := feed.New("http://127.0.0.1:1", "", 50)
	restarted := app.NewCatalogService(deadFeed, cache, nil, time.Hour, time.Minute)
	restarted.Seed(ctx)
	tours, updated := restarted.Tours(domain.DefaultFilter(), "")
	if len(tours) != 2 || updated.IsZero() {
		t.Fatalf("snapshot not served after restart: %d tours, updated %v", len(tours), updated)
	}
}
