package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/kiroku/internal/constants"
	"github.com/yukikurage/kiroku/internal/dto"
	apierrors "github.com/yukikurage/kiroku/internal/errors"
	"github.com/yukikurage/kiroku/internal/models"
	"github.com/yukikurage/kiroku/internal/services"
)

func TestAuthHandler_Signup(t *testing.T) {
	env := setupTestEnv(t)

	payload := map[string]string{
		"username":              "newuser",
		"password":              "supersecret",
		"password_confirmation": "supersecret",
	}

	w := env.do(t, testRequest{
		method:      http.MethodPost,
		path:        "/api/auth/signup",
		body:        jsonBody(t, payload),
		contentType: "application/json",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, payload["username"], response.Username)
}

func TestAuthHandler_SignupRejections(t *testing.T) {
	env := setupTestEnv(t)
	env.loginAs(t, "taken")

	tests := []struct {
		name    string
		payload map[string]string
		status  int
		code    string
	}{
		{
			name:    "confirmation mismatch",
			payload: map[string]string{"username": "someone", "password": "supersecret", "password_confirmation": "different"},
			status:  http.StatusBadRequest,
			code:    apierrors.ErrCodeInvalidInput,
		},
		{
			name:    "password too short",
			payload: map[string]string{"username": "someone", "password": "short", "password_confirmation": "short"},
			status:  http.StatusBadRequest,
			code:    apierrors.ErrCodeInvalidInput,
		},
		{
			name:    "username taken",
			payload: map[string]string{"username": "taken", "password": "supersecret", "password_confirmation": "supersecret"},
			status:  http.StatusConflict,
			code:    apierrors.ErrCodeConflict,
		},
		{
			name:    "missing confirmation",
			payload: map[string]string{"username": "someone", "password": "supersecret"},
			status:  http.StatusBadRequest,
			code:    apierrors.ErrCodeInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(t, testRequest{
				method:      http.MethodPost,
				path:        "/api/auth/signup",
				body:        jsonBody(t, tt.payload),
				contentType: "application/json",
			})

			require.Equal(t, tt.status, w.Code)
			require.Equal(t, tt.code, decodeAPIError(t, w).Code)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	env := setupTestEnv(t)

	_, err := env.authService.Signup(context.Background(), services.SignupInput{
		Username:             "existing",
		Password:             "supersecret",
		PasswordConfirmation: "supersecret",
	})
	require.NoError(t, err)

	w := env.do(t, testRequest{
		method:      http.MethodPost,
		path:        "/api/auth/login",
		body:        jsonBody(t, map[string]string{"username": "existing", "password": "supersecret"}),
		contentType: "application/json",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "existing", response.Username)
	require.NotEmpty(t, w.Result().Cookies(), "expected session cookie to be set")

	w = env.do(t, testRequest{
		method:      http.MethodPost,
		path:        "/api/auth/login",
		body:        jsonBody(t, map[string]string{"username": "existing", "password": "wrong-password"}),
		contentType: "application/json",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_GetCurrentUser(t *testing.T) {
	env := setupTestEnv(t)

	user, err := env.authService.Signup(context.Background(), services.SignupInput{
		Username:             "current-user",
		Password:             "supersecret",
		PasswordConfirmation: "supersecret",
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	c.Set(constants.ContextKeyUserID, user.ID)

	env.authHandler.GetCurrentUser(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, user.Username, response.Username)
}

func TestAuthHandler_RequiresSession(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, testRequest{method: http.MethodGet, path: "/api/auth/me"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, apierrors.ErrCodeUnauthorized, decodeAPIError(t, w).Code)
}

func TestAuthHandler_DeleteAccount(t *testing.T) {
	env := setupTestEnv(t)
	cookies := env.loginAs(t, "leaving")
	otherCookies := env.loginAs(t, "staying")

	for _, c := range [][]*http.Cookie{cookies, cookies, otherCookies} {
		w := env.do(t, testRequest{
			method:      http.MethodPost,
			path:        "/api/records",
			body:        jsonBody(t, map[string]any{"date": "2024-06-01", "numbness_strength": 1}),
			contentType: "application/json",
			cookies:     c,
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w := env.do(t, testRequest{method: http.MethodDelete, path: "/api/auth/me", cookies: cookies})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var expired bool
	for _, c := range w.Result().Cookies() {
		if c.Name == constants.SessionCookieName && c.MaxAge < 0 {
			expired = true
		}
	}
	require.True(t, expired, "expected session cookie to be cleared")

	var users, records int64
	require.NoError(t, env.db.Model(&models.User{}).Count(&users).Error)
	require.NoError(t, env.db.Model(&models.Record{}).Count(&records).Error)
	require.EqualValues(t, 1, users)
	require.EqualValues(t, 1, records)

	w = env.do(t, testRequest{method: http.MethodGet, path: "/api/records", cookies: otherCookies})
	require.Equal(t, http.StatusOK, w.Code)

	var remaining []dto.RecordDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &remaining))
	require.Len(t, remaining, 1)
}

func TestAuthHandler_DeletedAccountSessionIsRejected(t *testing.T) {
	env := setupTestEnv(t)
	cookies := env.loginAs(t, "ghost")

	w := env.do(t, testRequest{method: http.MethodDelete, path: "/api/auth/me", cookies: cookies})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// The cookie captured before deletion is still correctly signed.
	w = env.do(t, testRequest{
		method:      http.MethodPost,
		path:        "/api/records",
		body:        jsonBody(t, map[string]any{"date": "2024-06-01", "numbness_strength": 3}),
		contentType: "application/json",
		cookies:     cookies,
	})
	require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	require.Equal(t, apierrors.ErrCodeUnauthorized, decodeAPIError(t, w).Code)

	var cleared bool
	for _, c := range w.Result().Cookies() {
		if c.Name == constants.SessionCookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	require.True(t, cleared, "expected stale session cookie to be cleared")

	w = env.do(t, testRequest{method: http.MethodGet, path: "/api/auth/me", cookies: cookies})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var orphans int64
	require.NoError(t, env.db.Model(&models.Record{}).
		Where("user_id NOT IN (?)", env.db.Model(&models.User{}).Select("id")).
		Count(&orphans).Error)
	require.Zero(t, orphans)
}
