package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/nats-io/nats.go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/RobertWHurst/trellis"
	natsconnection "github.com/RobertWHurst/trellis/nats-connection"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Println("Error creating logger:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	registry := prometheus.NewRegistry()

	router := trellis.NewRouter()
	router.SetLogger(logger)
	router.SetMetrics(trellis.NewMetrics(registry))

	notes := &NoteStore{notes: map[string]string{}}

	_ = router.Get("/notes", notes.List)
	_ = router.Get("/notes/:id", notes.Show)
	_ = router.Put("/notes/:id", notes.Save)
	_ = router.Get("/static/**", func(ctx *trellis.Context) {
		fmt.Fprintf(ctx.ResponseWriter(), "static file %s\n", strings.Join(ctx.Remainder(), "/"))
	})
	_ = router.Get("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	logger.Debug("routes", zap.String("table", router.String()))

	if natsURL := os.Getenv("NATS_URL"); natsURL != "" {
		conn, err := nats.Connect(natsURL)
		if err != nil {
			logger.Fatal("failed to connect to nats", zap.Error(err))
		}
		defer conn.Close()

		directory := trellis.NewDirectory(router.RouteTable)
		directory.SetLogger(logger)
		if err := directory.SetConnection(natsconnection.New(conn)); err != nil {
			logger.Fatal("failed to announce routes", zap.Error(err))
		}
		defer func() { _ = directory.Close() }()
	}

	http.Handle("/", router)
	logger.Info("starting server", zap.Int("port", 8167))
	if err := http.ListenAndServe(":8167", nil); err != nil {
		logger.Error("server stopped", zap.Error(err))
	}
}

type NoteStore struct {
	mx    sync.Mutex
	notes map[string]string
}

func (s *NoteStore) List(ctx *trellis.Context) {
	s.mx.Lock()
	defer s.mx.Unlock()
	for id, note := range s.notes {
		fmt.Fprintf(ctx.ResponseWriter(), "%s: %s\n", id, note)
	}
}

func (s *NoteStore) Show(ctx *trellis.Context) {
	s.mx.Lock()
	note, ok := s.notes[ctx.Param("id")]
	s.mx.Unlock()
	if !ok {
		// Let the router's fallback answer with a 404.
		ctx.Next()
		return
	}
	fmt.Fprintln(ctx.ResponseWriter(), note)
}

func (s *NoteStore) Save(ctx *trellis.Context) {
	body := make([]byte, 4096)
	n, _ := ctx.Request().Body.Read(body)

	s.mx.Lock()
	s.notes[ctx.Param("id")] = string(body[:n])
	s.mx.Unlock()

	ctx.ResponseWriter().WriteHeader(http.StatusNoContent)
}
