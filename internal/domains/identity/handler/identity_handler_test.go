package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photoshare-backend/internal/domains/identity"
	identityRepo "photoshare-backend/internal/domains/identity/repository"
	identityService "photoshare-backend/internal/domains/identity/service"
	"photoshare-backend/internal/infrastructure/persistence"
	"photoshare-backend/internal/infrastructure/storage"
)

func newAvatarTestEnv(t *testing.T) (*gin.Engine, identity.Service, *storage.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	directory := identityRepo.NewMemoryDirectory(identityRepo.DefaultMembers())
	sessions := identityService.NewSessionService(directory, persistence.NewMemoryStore(), "test-secret", 0)
	objects := storage.NewMemoryStore()

	h := NewIdentityHandler(sessions, directory, objects)

	router := gin.New()
	router.POST("/users/me/avatar", h.UploadAvatar)

	return router, sessions, objects
}

func uploadAvatar(t *testing.T, router *gin.Engine, filename, contentType string) *httptest.ResponseRecorder {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte("fake-image-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/users/me/avatar", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestUploadAvatarStoresObjectAndUpdatesProfile(t *testing.T) {
	router, sessions, objects := newAvatarTestEnv(t)

	_, err := sessions.Login(context.Background(), "alex@example.com")
	require.NoError(t, err)

	w := uploadAvatar(t, router, "pic.png", "image/png")
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

	assert.Equal(t, 1, objects.Len())

	current := sessions.Current()
	require.NotNil(t, current)
	require.NotNil(t, current.AvatarURL)
	assert.Contains(t, *current.AvatarURL, "avatars/1.png")
}

func TestReuploadRemovesPreviousAvatarObject(t *testing.T) {
	router, sessions, objects := newAvatarTestEnv(t)

	_, err := sessions.Login(context.Background(), "alex@example.com")
	require.NoError(t, err)

	w := uploadAvatar(t, router, "first.png", "image/png")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 1, objects.Len())

	// Đổi extension -> key mới; object cũ phải được dọn
	w = uploadAvatar(t, router, "second.jpg", "image/jpeg")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, objects.Len())

	current := sessions.Current()
	require.NotNil(t, current)
	require.NotNil(t, current.AvatarURL)
	assert.Contains(t, *current.AvatarURL, "avatars/1.jpg")
}

func TestUploadAvatarRejectsNonImage(t *testing.T) {
	router, sessions, objects := newAvatarTestEnv(t)

	_, err := sessions.Login(context.Background(), "alex@example.com")
	require.NoError(t, err)

	w := uploadAvatar(t, router, "doc.pdf", "application/pdf")
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, 0, objects.Len())
}

func TestUploadAvatarRequiresSession(t *testing.T) {
	router, _, objects := newAvatarTestEnv(t)

	w := uploadAvatar(t, router, "pic.png", "image/png")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var env struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "NOT_AUTHENTICATED", env.Error.Code)
	assert.Equal(t, 0, objects.Len())
}
