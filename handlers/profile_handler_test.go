package handlers

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/tournament-hub/models"
	"github.com/Dosada05/tournament-hub/services"
)

func profileRouter(svc services.UserService, userID int) chi.Router {
	h := NewProfileHandler(svc, "https://auth.example.com", discardLogger())
	r := chi.NewRouter()
	if userID > 0 {
		r.Use(asUser(userID))
	}
	r.Get("/profile", h.RedirectProfile)
	r.Get("/api/profile", h.GetProfile)
	r.Put("/api/profile/avatar", h.UploadAvatar)
	return r
}

func TestProfileHandler_RedirectProfile(t *testing.T) {
	t.Run("anonymous goes to login", func(t *testing.T) {
		rec := do(t, profileRouter(&stubUserService{}, 0), http.MethodGet, "/profile", "")
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "https://auth.example.com/login?callbackUrl=/profile", rec.Header().Get("Location"))
	})

	t.Run("signed in goes to own page", func(t *testing.T) {
		rec := do(t, profileRouter(&stubUserService{}, 42), http.MethodGet, "/profile", "")
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/api/users/42", rec.Header().Get("Location"))
	})
}

func TestProfileHandler_GetProfile(t *testing.T) {
	email := "alice@example.com"
	svc := &stubUserService{profile: func(ctx context.Context, userID int) (*models.Profile, error) {
		return &models.Profile{
			User:        &models.User{ID: userID, Username: "alice", Email: email, PasswordHash: "secret-hash"},
			Teams:       []models.Team{},
			Tournaments: []models.Tournament{},
		}, nil
	}}

	rec := do(t, profileRouter(svc, 5), http.MethodGet, "/api/profile", "")
	require.Equal(t, http.StatusOK, rec.Code)
	user := decodeBody(t, rec)["user"].(map[string]any)
	assert.Equal(t, email, user["email"])
	assert.NotContains(t, rec.Body.String(), "secret-hash")

	rec = do(t, profileRouter(svc, 0), http.MethodGet, "/api/profile", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func avatarRequest(t *testing.T, contentType string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="avatar"; filename="me.png"`)
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPut, "/api/profile/avatar", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestProfileHandler_UploadAvatar(t *testing.T) {
	var got services.UploadAvatarInput
	var gotBytes []byte
	svc := &stubUserService{updateAvatar: func(ctx context.Context, userID int, input services.UploadAvatarInput) (*models.User, error) {
		got = input
		gotBytes, _ = io.ReadAll(input.File)
		if input.ContentType == "text/plain" {
			return nil, services.ErrUnsupportedFileType
		}
		image := "https://cdn.test/users/5/avatar.png"
		return &models.User{ID: userID, Username: "alice", Image: &image}, nil
	}}
	router := profileRouter(svc, 5)

	t.Run("stores image", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, avatarRequest(t, "image/png", []byte("png-bytes")))
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "image/png", got.ContentType)
		assert.EqualValues(t, len("png-bytes"), got.Size)
		assert.Equal(t, []byte("png-bytes"), gotBytes)
		assert.Equal(t, "https://cdn.test/users/5/avatar.png", decodeBody(t, rec)["user"].(map[string]any)["image"])
	})

	t.Run("rejects non images", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, avatarRequest(t, "text/plain", []byte("hello")))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("rejects oversized bodies", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, avatarRequest(t, "image/png", bytes.Repeat([]byte{0xff}, maxAvatarUploadBytes+128<<10)))
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})

	t.Run("missing field", func(t *testing.T) {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		require.NoError(t, mw.WriteField("note", "no file"))
		require.NoError(t, mw.Close())
		req := httptest.NewRequest(http.MethodPut, "/api/profile/avatar", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
