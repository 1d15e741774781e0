package setvalue_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RobertWHurst/trellis"
	"github.com/RobertWHurst/trellis/middleware/setvalue"
)

type Config struct {
	MaxRetries int
	Timeout    int
}

func TestMiddleware(t *testing.T) {
	router := trellis.NewRouter()

	config := &Config{MaxRetries: 3, Timeout: 30}
	var got Config

	err := router.Get("/test", setvalue.Middleware("config", config), func(ctx *trellis.Context) {
		cfg, ok := ctx.Get("config")
		if !ok {
			t.Error("expected config to be set")
		}
		got = cfg.(Config)
	})
	if err != nil {
		t.Fatal(err)
	}

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/test", nil))
	if got.MaxRetries != 3 || got.Timeout != 30 {
		t.Errorf("expected {3 30}, got %+v", got)
	}

	config.MaxRetries = 5
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/test", nil))
	if got.MaxRetries != 5 {
		t.Errorf("expected MaxRetries 5 after update, got %d", got.MaxRetries)
	}
}
