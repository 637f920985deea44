//go:generate mockgen -source ./server.go -destination=./mocks/server.go -package=mock_server
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/techstore/chatbot/internal/catalog"
	"github.com/techstore/chatbot/internal/responder"
)

type Responder interface {
	Respond(ctx context.Context, query string, params map[string]string) (responder.Reply, error)
}

type Catalog interface {
	Order(id string) (catalog.Order, bool)
	Product(id string) (catalog.Product, bool)
}

type Server struct {
	catalog   Catalog
	responder Responder
	staticDir string
	logger    *zap.Logger
	server    *http.Server
}

func New(c Catalog, r Responder, staticDir string, logger *zap.Logger) *Server {
	return &Server{
		catalog:   c,
		responder: r,
		staticDir: staticDir,
		logger:    logger,
	}
}

// Run starts the HTTP server and blocks until it stops serving.
func (s *Server) Run(port string) error {
	s.server = &http.Server{
		Addr:         ":" + port,
		Handler:      s.setupRoutes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	s.logger.Info("server starting",
		zap.String("port", port),
		zap.String("chat", "http://localhost:"+port),
		zap.String("health", "http://localhost:"+port+"/health"),
	)
	s.logger.Info("demo orders available",
		zap.Strings("orders", []string{
			"ORDER-123 - Shipped (Headphones)",
			"ORDER-456 - Delivered (Smart Watch)",
			"ORDER-789 - Processing (Laptop)",
		}),
	)

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	s.logger.Info("shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

func (s *Server) setupRoutes() http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/webhook", s.handleWebhook).Methods(http.MethodPost)
	router.HandleFunc("/api/orders/{id}", s.handleGetOrder).Methods(http.MethodGet)
	router.HandleFunc("/api/products/{id}", s.handleGetProduct).Methods(http.MethodGet)
	router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	router.PathPrefix("/").Handler(http.FileServer(http.Dir(s.staticDir)))

	return s.loggingMiddleware(router)
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
}
