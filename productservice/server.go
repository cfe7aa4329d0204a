package productservice

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const idPattern = "/product/{id:[0-9]+}"

// Server serves the product API on top of a Store.
type Server struct {
	Store *Store
	Log   *zap.Logger
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	r.Post("/product", s.create)
	r.Get(idPattern, s.get)
	r.Patch(idPattern, s.patch)
	r.Delete(idPattern, s.delete)

	return r
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(r)
	if !ok {
		s.writeStoreError(w, r, errUnknownProduct)
		return
	}
	p, err := s.Store.Fetch(id)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	payload, err := decodePayload(w, r)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	p, err := s.Store.Create(payload)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) patch(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(r)
	if !ok {
		s.writeStoreError(w, r, errUnknownProduct)
		return
	}
	// An unknown product is reported before the body is looked at.
	if _, err := s.Store.Fetch(id); err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	patch, err := decodePayload(w, r)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	p, err := s.Store.PartialUpdate(id, patch)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) delete(w http.ResponseWriter, r *http.Request) {
	id, _ := productID(r)
	s.writeStoreError(w, r, s.Store.Delete(id))
}

func (s *Server) writeStoreError(w http.ResponseWriter, r *http.Request, err error) {
	var e *Error
	if !errors.As(err, &e) {
		if s.Log != nil {
			s.Log.Error("product request failed", zap.Error(err), zap.String("path", r.URL.Path))
		}
		writeError(w, r, http.StatusInternalServerError, "server error")
		return
	}
	if s.Log != nil {
		s.Log.Debug("product request rejected",
			zap.Stringer("kind", e.Kind),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
		)
	}
	writeError(w, r, e.StatusCode(), e.Message)
}

// productID parses the id path parameter. Ids too large for an int cannot exist in the store.
func productID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0, false
	}
	return id, true
}
