package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/avoronov/go-library-api/internal/logger"
	"github.com/avoronov/go-library-api/internal/store"
	"github.com/avoronov/go-library-api/internal/utils"
	"github.com/avoronov/go-library-api/models"
)

// bookID extracts the {id} URL parameter. Non-numeric ids are reported as a
// missing book, the same as a numeric id with no record behind it.
func bookID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid book id", store.ErrBookNotFound)
	}
	return id, nil
}

func respondJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("failed to write response")
	}
}

// ListBooks handles GET /books.
func (h *Handler) ListBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.services.Library.ListBooks(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	if books == nil {
		books = []models.Book{}
	}
	respondJSON(w, r, books, http.StatusOK)
}

// GetBook handles GET /books/{id}.
func (h *Handler) GetBook(w http.ResponseWriter, r *http.Request) {
	id, err := bookID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	book, err := h.services.Library.GetBook(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respondJSON(w, r, book, http.StatusOK)
}

// CreateBook handles POST /books: answers 201 with the created record and a
// Location header pointing at it.
func (h *Handler) CreateBook(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err))
		return
	}

	book, err := h.services.Library.CreateBook(r.Context(), req.Title, req.Author)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/books/%d", book.ID))
	respondJSON(w, r, book, http.StatusCreated)
}

// UpdateBook handles PUT /books/{id}: applies a partial update and answers
// 204 on success.
func (h *Handler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	id, err := bookID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.BookUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err))
		return
	}

	if _, err := h.services.Library.UpdateBook(r.Context(), id, update); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteBook handles DELETE /books/{id}: answers 204 on success.
func (h *Handler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	id, err := bookID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.Library.DeleteBook(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CheckoutBook handles POST /books/{id}/checkout.
func (h *Handler) CheckoutBook(w http.ResponseWriter, r *http.Request) {
	id, err := bookID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	book, err := h.services.Library.CheckoutBook(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	msg := fmt.Sprintf("Book '%s' checked out successfully", book.Title)
	respondJSON(w, r, models.MessageResponse{Message: msg}, http.StatusOK)
}

// CheckinBook handles POST /books/{id}/checkin.
func (h *Handler) CheckinBook(w http.ResponseWriter, r *http.Request) {
	id, err := bookID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	book, err := h.services.Library.CheckinBook(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	msg := fmt.Sprintf("Book '%s' checked in successfully", book.Title)
	respondJSON(w, r, models.MessageResponse{Message: msg}, http.StatusOK)
}
