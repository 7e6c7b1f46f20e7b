package products

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"ProductStore/pkg/kit"
)

type Server struct {
	Store Store
	Log   *zap.Logger
}

// notFoundBody is the fixed contract for a missing product.
type notFoundBody struct {
	Message string `json:"message"`
}

const productNotFound = "Product not found."

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 1*time.Second)
		defer cancel()

		if err := s.Store.Ping(ctx); err != nil {
			if s.Log != nil {
				s.Log.Warn("readyz failed", zap.Error(err))
			}
			kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready", nil)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	// Generic landing surface for unhandled failures; the recoverer
	// middleware produces the same envelope.
	r.Get("/error", func(w http.ResponseWriter, r *http.Request) {
		kit.WriteError(w, r, http.StatusInternalServerError, "internal error", nil)
	})

	r.Route("/api", func(rr chi.Router) {
		rr.Get("/products", s.list)
		rr.Get("/products/{id}", s.get)
	})

	return r
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	products, err := s.Store.ListSortedByID(r.Context())
	if err != nil {
		if s.Log != nil {
			s.Log.Error("list products failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}
	kit.WriteJSON(w, http.StatusOK, products)
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")

	// Ids are positive integers; anything else cannot match a product
	// and gets the same not-found contract.
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		kit.WriteJSON(w, http.StatusNotFound, notFoundBody{Message: productNotFound})
		return
	}

	p, ok, err := s.Store.Get(r.Context(), id)
	if err != nil {
		if s.Log != nil {
			s.Log.Error("get product failed", zap.Error(err), zap.Int64("id", id))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}
	if !ok {
		kit.WriteJSON(w, http.StatusNotFound, notFoundBody{Message: productNotFound})
		return
	}
	kit.WriteJSON(w, http.StatusOK, p)
}
