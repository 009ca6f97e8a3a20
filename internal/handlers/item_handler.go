package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"itemsBack/internal/models"
	"itemsBack/internal/services"
)

// ErrorReporter receives errors that end a request with a 500.
type ErrorReporter func(w http.ResponseWriter, err error)

type ItemHandler struct {
	Service *services.ItemService
	// ServerError writes the 500 response; nil falls back to a generic JSON error.
	ServerError ErrorReporter
}

func (h *ItemHandler) serverError(w http.ResponseWriter, err error) {
	if h.ServerError != nil {
		h.ServerError(w, err)
		return
	}
	writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

// respondError maps service errors onto status codes.
func (h *ItemHandler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidItem):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrItemNotFound):
		writeError(w, http.StatusNotFound, "Item not found")
	default:
		h.serverError(w, err)
	}
}

func decodeItemInput(r *http.Request) (models.ItemInput, error) {
	var in models.ItemInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		return models.ItemInput{}, err
	}
	return in, nil
}

func (h *ItemHandler) GetItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.ListItems(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.ItemsEnvelope{Items: items})
}

func (h *ItemHandler) GetItemByID(w http.ResponseWriter, r *http.Request) {
	item, err := h.Service.GetItem(r.Context(), getParam(r, "id"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.ItemEnvelope{Item: item})
}

func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	in, err := decodeItemInput(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.Service.CreateItem(r.Context(), in)
	if err != nil {
		h.respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, models.ItemEnvelope{Item: item})
}

func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	in, err := decodeItemInput(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.Service.UpdateItem(r.Context(), getParam(r, "id"), in)
	if err != nil {
		h.respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.ItemEnvelope{Item: item})
}

func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteItem(r.Context(), getParam(r, "id")); err != nil {
		h.respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct{}{})
}
