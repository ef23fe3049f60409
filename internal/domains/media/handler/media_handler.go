package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"photoshare-backend/internal/domains/identity"
	"photoshare-backend/internal/domains/media"
	"photoshare-backend/internal/shared/response"
	"photoshare-backend/internal/shared/utils"
)

// MediaHandler là thin HTTP layer trên content store.
type MediaHandler struct {
	contents media.Service
}

func NewMediaHandler(contents media.Service) *MediaHandler {
	return &MediaHandler{contents: contents}
}

// ========================================
// PRESENTATION
// ========================================

// mediaView thêm relative timestamp đã format sẵn cho card display.
type mediaView struct {
	*media.Media
	PostedAt string `json:"posted_at"`
}

// commentView dùng absolute timestamp - comment thread hiển thị giờ đầy đủ.
type commentView struct {
	*media.Comment
	PostedAt string `json:"posted_at"`
}

func presentMedia(item *media.Media) mediaView {
	return mediaView{
		Media:    item,
		PostedAt: utils.FormatDateShort(item.CreatedAt, time.Now()),
	}
}

func presentMediaList(items []media.Media) []mediaView {
	views := make([]mediaView, len(items))
	for i := range items {
		views[i] = presentMedia(&items[i])
	}
	return views
}

func presentComments(comments []media.Comment) []commentView {
	views := make([]commentView, len(comments))
	for i := range comments {
		views[i] = commentView{
			Comment:  &comments[i],
			PostedAt: utils.FormatDate(comments[i].CreatedAt),
		}
	}
	return views
}

// ========================================
// FEED
// ========================================

// List - GET /api/v1/media
func (h *MediaHandler) List(c *gin.Context) {
	items, err := h.contents.List(c.Request.Context())
	if err != nil {
		response.BadGateway(c, "Failed to load feed")
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, presentMediaList(items), &response.Meta{Total: len(items)})
}

// Search - GET /api/v1/media/search?q=...
// Query rỗng trả full collection, đúng contract của store.
func (h *MediaHandler) Search(c *gin.Context) {
	items, err := h.contents.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.BadGateway(c, "Search failed")
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, presentMediaList(items), &response.Meta{Total: len(items)})
}

// Get - GET /api/v1/media/:id
func (h *MediaHandler) Get(c *gin.Context) {
	item, err := h.contents.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, presentMedia(item))
}

// ListByUser - GET /api/v1/users/:id/media
func (h *MediaHandler) ListByUser(c *gin.Context) {
	items, err := h.contents.ListByUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.BadGateway(c, "Failed to load user media")
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, presentMediaList(items), &response.Meta{Total: len(items)})
}

// ========================================
// MUTATIONS
// ========================================

// Create - POST /api/v1/media
func (h *MediaHandler) Create(c *gin.Context) {
	var req media.CreateMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, 422, "VALIDATION_FAILED", "invalid media draft", err.Error())
		return
	}

	item, err := h.contents.Create(c.Request.Context(), req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, presentMedia(item))
}

// Delete - DELETE /api/v1/media/:id
func (h *MediaHandler) Delete(c *gin.Context) {
	if err := h.contents.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Media has been deleted."})
}

// ToggleLike - POST /api/v1/media/:id/like
func (h *MediaHandler) ToggleLike(c *gin.Context) {
	item, err := h.contents.ToggleLike(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, presentMedia(item))
}

// ========================================
// COMMENTS
// ========================================

// ListComments - GET /api/v1/media/:id/comments
func (h *MediaHandler) ListComments(c *gin.Context) {
	comments, err := h.contents.Comments(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, presentComments(comments), &response.Meta{Total: len(comments)})
}

// AddComment - POST /api/v1/media/:id/comments
func (h *MediaHandler) AddComment(c *gin.Context) {
	var req media.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, 422, "VALIDATION_FAILED", "invalid comment", err.Error())
		return
	}

	comment, err := h.contents.AddComment(c.Request.Context(), c.Param("id"), req.Content)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, commentView{
		Comment:  comment,
		PostedAt: utils.FormatDate(comment.CreatedAt),
	})
}

// DeleteComment - DELETE /api/v1/media/:id/comments/:commentId
func (h *MediaHandler) DeleteComment(c *gin.Context) {
	err := h.contents.DeleteComment(c.Request.Context(), c.Param("id"), c.Param("commentId"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Comment deleted."})
}

// renderError map store errors sang HTTP outcome - taxonomy nhất quán
// cho toàn bộ content operations.
func (h *MediaHandler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, identity.ErrNotAuthenticated):
		response.Unauthorized(c, "You must sign in to perform this action")
	case errors.Is(err, media.ErrMediaNotFound):
		response.NotFound(c, "Media not found")
	case errors.Is(err, media.ErrCommentNotFound):
		response.NotFound(c, "Comment not found")
	case errors.Is(err, media.ErrTitleRequired),
		errors.Is(err, media.ErrEmptyComment),
		errors.Is(err, media.ErrInvalidType):
		response.UnprocessableEntity(c, err.Error())
	case errors.Is(err, media.ErrUpstreamFailure):
		response.BadGateway(c, "Operation failed, please try again")
	default:
		response.InternalServerError(c, "Unexpected error")
	}
}
