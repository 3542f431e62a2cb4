package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"grubdash/internal/dishes"
)

type DishesHandler struct {
	Store *dishes.Store
}

func (h *DishesHandler) Register(r *chi.Mux) {
	r.Get("/dishes", h.list)
	r.Post("/dishes", h.create)
	r.Get("/dishes/{dishId}", h.read)
	r.Put("/dishes/{dishId}", h.update)
}

func (h *DishesHandler) list(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, dishes.List(h.Store))
}

func (h *DishesHandler) create(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeBody(w, r)
	if !ok {
		return
	}
	d, perr := dishes.Create(h.Store, body)
	if perr != nil {
		writePipelineError(w, perr)
		return
	}
	writeData(w, http.StatusCreated, d)
}

func (h *DishesHandler) read(w http.ResponseWriter, r *http.Request) {
	d, perr := dishes.Read(h.Store, chi.URLParam(r, "dishId"))
	if perr != nil {
		writePipelineError(w, perr)
		return
	}
	writeData(w, http.StatusOK, d)
}

func (h *DishesHandler) update(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeBody(w, r)
	if !ok {
		return
	}
	d, perr := dishes.Update(h.Store, chi.URLParam(r, "dishId"), body)
	if perr != nil {
		writePipelineError(w, perr)
		return
	}
	writeData(w, http.StatusOK, d)
}
