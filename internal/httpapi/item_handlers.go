package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"shopapi.dev/internal/auth"
	"shopapi.dev/internal/items"
)

func (a *API) handleItems(w http.ResponseWriter, r *http.Request) {
	ident, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	switch r.Method {
	case http.MethodPost:
		var in items.Input
		if err := decodeJSON(r, &in); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		item, err := a.items.Add(r.Context(), ident.Email, in)
		if err != nil {
			if errors.Is(err, items.ErrInvalidInput) {
				writeError(w, http.StatusBadRequest, "Invalid item")
				return
			}
			writeError(w, http.StatusInternalServerError, "Could not add item")
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{
			"msg":  "Item added successfully",
			"item": item,
		})

	case http.MethodGet:
		list, err := a.items.ListByOwner(r.Context(), ident.Email)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Could not list items")
			return
		}
		if list == nil {
			list = []*items.Item{}
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": list})

	default:
		methodNotAllowed(w, "GET, POST")
	}
}

func (a *API) handleItemDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		methodNotAllowed(w, http.MethodDelete)
		return
	}
	ident, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/items/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	if err := a.items.Delete(r.Context(), ident.Email, id); err != nil {
		switch {
		case errors.Is(err, items.ErrNotFound):
			writeError(w, http.StatusNotFound, "Item not found or unauthorized")
		case errors.Is(err, items.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, "Invalid item ID")
		default:
			writeError(w, http.StatusInternalServerError, "Could not delete item")
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
