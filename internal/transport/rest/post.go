package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/alpha-backend/internal/domain"
	"github.com/heartmarshall/alpha-backend/internal/service/post"
)

// postService defines the minimal interface needed by PostHandler.
type postService interface {
	Create(ctx context.Context, input post.CreateInput) (*domain.Post, error)
	List(ctx context.Context, input post.ListInput) ([]*domain.Post, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	Update(ctx context.Context, id uuid.UUID, params domain.PostUpdateParams) (*domain.Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Publish(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	SetOfficial(ctx context.Context, id uuid.UUID, official bool) (*domain.Post, error)
}

// PostHandler serves the post REST endpoints.
type PostHandler struct {
	svc postService
	log *slog.Logger
}

// NewPostHandler creates a PostHandler.
func NewPostHandler(svc postService, logger *slog.Logger) *PostHandler {
	return &PostHandler{svc: svc, log: logger.With("handler", "post")}
}

type createPostRequest struct {
	Name     string  `json:"name"`
	Slug     string  `json:"slug"`
	Status   *string `json:"status"`
	Official *bool   `json:"official"`
	Active   *bool   `json:"active"`
}

type updatePostRequest struct {
	Name     *string `json:"name"`
	Slug     *string `json:"slug"`
	Status   *string `json:"status"`
	Official *bool   `json:"official"`
	Active   *bool   `json:"active"`
}

type postResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Status    string    `json:"status"`
	Official  bool      `json:"official"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// List handles GET /api/v1/posts.
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	posts, err := h.svc.List(r.Context(), post.ListInput{
		Active:        q.Get("active"),
		Official:      q.Get("official"),
		Status:        q.Get("status"),
		StartingAfter: q.Get("startingAfter"),
		EndingBefore:  q.Get("endingBefore"),
		Limit:         q.Get("limit"),
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPostResponses(posts))
}

// Get handles GET /api/v1/posts/{id}.
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.postID(w, r)
	if !ok {
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPostResponse(p))
}

// Create handles POST /api/v1/posts.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := post.CreateInput{
		Name:     req.Name,
		Slug:     req.Slug,
		Official: req.Official,
		Active:   req.Active,
	}
	if req.Status != nil {
		status := domain.PostStatus(*req.Status)
		input.Status = &status
	}

	created, err := h.svc.Create(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPostResponse(created))
}

// Update handles PUT /api/v1/posts/{id}.
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.postID(w, r)
	if !ok {
		return
	}

	var req updatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	params := domain.PostUpdateParams{
		Name:     req.Name,
		Slug:     req.Slug,
		Official: req.Official,
		Active:   req.Active,
	}
	if req.Status != nil {
		status := domain.PostStatus(*req.Status)
		params.Status = &status
	}

	updated, err := h.svc.Update(r.Context(), id, params)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPostResponse(updated))
}

// Delete handles DELETE /api/v1/posts/{id}.
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.postID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Publish handles PUT /api/v1/posts/{id}/publish.
func (h *PostHandler) Publish(w http.ResponseWriter, r *http.Request) {
	id, ok := h.postID(w, r)
	if !ok {
		return
	}

	if _, err := h.svc.Publish(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Officialize handles PUT /api/v1/posts/{id}/officialize.
func (h *PostHandler) Officialize(w http.ResponseWriter, r *http.Request) {
	h.setOfficial(w, r, true)
}

// Unofficialize handles PUT /api/v1/posts/{id}/unofficialize.
func (h *PostHandler) Unofficialize(w http.ResponseWriter, r *http.Request) {
	h.setOfficial(w, r, false)
}

func (h *PostHandler) setOfficial(w http.ResponseWriter, r *http.Request, official bool) {
	id, ok := h.postID(w, r)
	if !ok {
		return
	}

	if _, err := h.svc.SetOfficial(r.Context(), id, official); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// postID extracts and parses the {id} path segment. A malformed id is
// indistinguishable from a missing record, so it answers 404.
func (h *PostHandler) postID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not found")
		return uuid.Nil, false
	}
	return id, true
}

func (h *PostHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func toPostResponse(p *domain.Post) postResponse {
	return postResponse{
		ID:        p.ID.String(),
		Name:      p.Name,
		Slug:      p.Slug,
		Status:    p.Status.String(),
		Official:  p.Official,
		Active:    p.Active,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toPostResponses(posts []*domain.Post) []postResponse {
	out := make([]postResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, toPostResponse(p))
	}
	return out
}
