package set_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RobertWHurst/trellis"
	"github.com/RobertWHurst/trellis/middleware/set"
)

func TestMiddleware(t *testing.T) {
	router := trellis.NewRouter()

	err := router.Get("/test",
		set.Middleware("apiVersion", "v1"),
		set.Middleware("config", map[string]int{"timeout": 30}),
		func(ctx *trellis.Context) {
			version, ok := ctx.Get("apiVersion")
			if !ok {
				t.Error("expected apiVersion to be set")
			}
			if version != "v1" {
				t.Errorf("expected 'v1', got %v", version)
			}

			config, ok := ctx.Get("config")
			if !ok {
				t.Error("expected config to be set")
			}
			configMap := config.(map[string]int)
			if configMap["timeout"] != 30 {
				t.Errorf("expected timeout 30, got %d", configMap["timeout"])
			}

			ctx.ResponseWriter().WriteHeader(http.StatusNoContent)
		},
	)
	if err != nil {
		t.Fatal(err)
	}

	res := httptest.NewRecorder()
	router.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/test", nil))

	if res.Code != http.StatusNoContent {
		t.Errorf("expected status 204, got %d", res.Code)
	}
}

func TestMiddlewareWithUse(t *testing.T) {
	router := trellis.NewRouter()

	if err := router.Use(set.Middleware("apiVersion", "v1")); err != nil {
		t.Fatal(err)
	}

	var versions []any
	for _, path := range []string{"/a", "/b"} {
		if err := router.Get(path, func(ctx *trellis.Context) {
			versions = append(versions, ctx.MustGet("apiVersion"))
		}); err != nil {
			t.Fatal(err)
		}
	}

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/a", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/b", nil))

	if len(versions) != 2 || versions[0] != "v1" || versions[1] != "v1" {
		t.Errorf("expected apiVersion v1 on both routes, got %v", versions)
	}
}

func TestMiddlewareValuesDoNotLeakBetweenRequests(t *testing.T) {
	router := trellis.NewRouter()

	if err := router.Get("/with", set.Middleware("key", "value"), func(ctx *trellis.Context) {}); err != nil {
		t.Fatal(err)
	}
	if err := router.Get("/without", func(ctx *trellis.Context) {
		if _, ok := ctx.Get("key"); ok {
			t.Error("expected key to be unset")
		}
	}); err != nil {
		t.Fatal(err)
	}

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/with", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/without", nil))
}
