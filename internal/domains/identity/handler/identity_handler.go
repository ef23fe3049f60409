package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"

	"photoshare-backend/internal/domains/identity"
	"photoshare-backend/internal/infrastructure/storage"
	"photoshare-backend/internal/shared/response"
	"photoshare-backend/internal/shared/utils"
	"photoshare-backend/pkg/logger"
)

// maxAvatarBytes giới hạn upload avatar (5MB)
const maxAvatarBytes = 5 << 20

// IdentityHandler là thin HTTP layer trên session store và directory.
type IdentityHandler struct {
	sessions  identity.Service
	directory identity.Directory
	objects   storage.ObjectStore
}

func NewIdentityHandler(sessions identity.Service, directory identity.Directory, objects storage.ObjectStore) *IdentityHandler {
	return &IdentityHandler{
		sessions:  sessions,
		directory: directory,
		objects:   objects,
	}
}

// profileView thêm birthdate đã format sẵn cho profile page.
type profileView struct {
	*identity.User
	BirthdateDisplay string `json:"birthdate_display,omitempty"`
}

func presentProfile(user *identity.User) profileView {
	view := profileView{User: user}
	if user.Birthdate != nil {
		view.BirthdateDisplay = utils.FormatBirthdate(*user.Birthdate)
	}
	return view
}

// ========================================
// AUTH
// ========================================

// Login - POST /api/v1/auth/login
func (h *IdentityHandler) Login(c *gin.Context) {
	var req identity.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, 422, "VALIDATION_FAILED", "invalid login request", err.Error())
		return
	}

	user, err := h.sessions.Login(c.Request.Context(), req.Email)
	if err != nil {
		switch {
		case errors.Is(err, identity.ErrNotAuthorized):
			response.Forbidden(c, "Sorry, this is a private platform. You're not on the invite list.")
		case errors.Is(err, identity.ErrLoginInProgress):
			response.Conflict(c, "A login attempt is already in progress")
		default:
			response.BadGateway(c, "Login failed, please try again")
		}
		return
	}

	response.Success(c, http.StatusOK, identity.LoginResponse{
		User:    user,
		Message: fmt.Sprintf("Welcome back, %s!", user.Name),
	})
}

// Logout - POST /api/v1/auth/logout
func (h *IdentityHandler) Logout(c *gin.Context) {
	h.sessions.Logout(c.Request.Context())
	response.Success(c, http.StatusOK, gin.H{"message": "You've been logged out successfully."})
}

// Session - GET /api/v1/auth/session
// Expose cả transitional state để view layer disable duplicate submit.
func (h *IdentityHandler) Session(c *gin.Context) {
	response.Success(c, http.StatusOK, identity.SessionResponse{
		State: h.sessions.State(),
		User:  h.sessions.Current(),
	})
}

// ========================================
// PROFILE
// ========================================

// GetProfile - GET /api/v1/users/me
func (h *IdentityHandler) GetProfile(c *gin.Context) {
	current := h.sessions.Current()
	if current == nil {
		response.Unauthorized(c, "You must sign in to view your profile")
		return
	}
	response.Success(c, http.StatusOK, presentProfile(current))
}

// UpdateProfile - PUT /api/v1/users/me
func (h *IdentityHandler) UpdateProfile(c *gin.Context) {
	var req identity.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, 422, "VALIDATION_FAILED", "invalid profile update", err.Error())
		return
	}

	updated, err := h.sessions.UpdateProfile(c.Request.Context(), req.ToUpdate())
	if err != nil {
		switch {
		case errors.Is(err, identity.ErrNotAuthenticated):
			response.Unauthorized(c, "You must sign in to update your profile")
		case errors.Is(err, identity.ErrUpstreamFailure):
			response.BadGateway(c, "Failed to update profile. Please try again.")
		default:
			response.InternalServerError(c, "Failed to update profile")
		}
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// UploadAvatar - POST /api/v1/users/me/avatar
// Upload file lên object store rồi merge URL vào profile.
func (h *IdentityHandler) UploadAvatar(c *gin.Context) {
	current := h.sessions.Current()
	if current == nil {
		response.Unauthorized(c, "You must sign in to upload a profile picture")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "missing file upload")
		return
	}
	if fileHeader.Size > maxAvatarBytes {
		response.UnprocessableEntity(c, "profile picture must be 5MB or smaller")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	mediaType, ok := utils.MediaTypeFromContentType(contentType)
	if !ok || mediaType != "image" {
		response.UnprocessableEntity(c, "profile picture must be an image")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.InternalServerError(c, "failed to read upload")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.InternalServerError(c, "failed to read upload")
		return
	}

	key := fmt.Sprintf("avatars/%s%s", current.ID, path.Ext(fileHeader.Filename))
	url, err := h.objects.Store(c.Request.Context(), key, data, contentType)
	if err != nil {
		response.BadGateway(c, "Failed to upload profile picture. Please try again.")
		return
	}

	updated, err := h.sessions.UpdateProfile(c.Request.Context(), identity.ProfileUpdate{AvatarURL: &url})
	if err != nil {
		response.BadGateway(c, "Uploaded picture but failed to update profile")
		return
	}

	// Avatar cũ (nếu do store này giữ) không còn ai reference - dọn luôn.
	// Best effort: object mồ côi không đáng fail request.
	if prev := avatarKeyFromURL(current.AvatarURL); prev != "" && prev != key {
		if err := h.objects.Remove(c.Request.Context(), prev); err != nil {
			logger.Warn("failed to remove previous profile picture", err)
		}
	}

	response.Success(c, http.StatusOK, updated)
}

// avatarKeyFromURL lấy lại object key từ URL mà ObjectStore đã trả về.
// URL ngoài store (seed data, external link) cho kết quả rỗng.
func avatarKeyFromURL(url *string) string {
	if url == nil {
		return ""
	}
	index := strings.Index(*url, "avatars/")
	if index < 0 {
		return ""
	}
	return (*url)[index:]
}

// ========================================
// DIRECTORY
// ========================================

// ListUsers - GET /api/v1/users
func (h *IdentityHandler) ListUsers(c *gin.Context) {
	users, err := h.directory.List(c.Request.Context())
	if err != nil {
		response.BadGateway(c, "Failed to load members")
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, users, &response.Meta{Total: len(users)})
}

// GetUser - GET /api/v1/users/:id
func (h *IdentityHandler) GetUser(c *gin.Context) {
	user, err := h.directory.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, identity.ErrUserNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		response.BadGateway(c, "Failed to load user")
		return
	}
	response.Success(c, http.StatusOK, presentProfile(user))
}
