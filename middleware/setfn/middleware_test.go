package setfn_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RobertWHurst/trellis"
	"github.com/RobertWHurst/trellis/middleware/setfn"
)

func TestMiddleware(t *testing.T) {
	router := trellis.NewRouter()

	counter := 0
	seen := []int{}

	err := router.Get("/test",
		setfn.Middleware("counter", func() int {
			counter++
			return counter
		}),
		func(ctx *trellis.Context) {
			seen = append(seen, ctx.MustGet("counter").(int))
		},
	)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 3; i++ {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/test", nil))
	}

	if len(seen) != 3 {
		t.Fatalf("expected 3 requests to be handled, got %d", len(seen))
	}
	for i, value := range seen {
		if value != i+1 {
			t.Errorf("expected counter %d for request %d, got %d", i+1, i, value)
		}
	}
}
