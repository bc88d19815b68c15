// Copyright (c) 2026 Fitfolio. All rights reserved.

package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dnminh/fitfolio/internal/platform/constants"
	"github.com/dnminh/fitfolio/internal/platform/ctxutil"
	"github.com/dnminh/fitfolio/internal/platform/middleware"
	"github.com/dnminh/fitfolio/internal/platform/sec"
	"github.com/dnminh/fitfolio/internal/users/auth"
)

func newTestHandler(t *testing.T) (*auth.Handler, *auth.Service) {
	t.Helper()

	repository := newFakeAccountRepository()
	service, _ := newTestService(repository)
	return auth.NewHandler(service, false), service
}

func doJSON(handler http.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, target, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	handler(recorder, request)
	return recorder
}

// sessionCookie digs the session cookie out of a recorded response.
func sessionCookie(t *testing.T, recorder *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, cookie := range recorder.Result().Cookies() {
		if cookie.Name == constants.SessionCookieName {
			return cookie
		}
	}
	t.Fatalf("no %q cookie in response", constants.SessionCookieName)
	return nil
}

/*
TestHandler_Register checks the created response and that no token or
account data leaks into the body.
*/
func TestHandler_Register(t *testing.T) {
	handler, _ := newTestHandler(t)

	recorder := doJSON(handler.Register, http.MethodPost, "/register",
		`{"username":"minh","email":"minh@example.com","password":"hunter2hunter2"}`)

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.JSONEq(t, `{"Status":"Success"}`, recorder.Body.String())
	assert.Empty(t, recorder.Result().Cookies())
}

/*
TestHandler_Register_ShortPassword checks that password length is not
restricted: any non-empty password is accepted, short ones included.
*/
func TestHandler_Register_ShortPassword(t *testing.T) {
	handler, service := newTestHandler(t)

	recorder := doJSON(handler.Register, http.MethodPost, "/register",
		`{"username":"alice","email":"a@x.com","password":"secret1"}`)

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.JSONEq(t, `{"Status":"Success"}`, recorder.Body.String())

	// The account is usable immediately.
	session, err := service.Login(context.Background(), auth.LoginInput{
		Username: "alice",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
}

/*
TestHandler_Register_Validation checks the field-level rejections.
*/
func TestHandler_Register_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed_json", `{"username":`},
		{"missing_username", `{"email":"a@b.com","password":"hunter2hunter2"}`},
		{"short_username", `{"username":"ab","email":"a@b.com","password":"hunter2hunter2"}`},
		{"bad_email", `{"username":"minh","email":"nope","password":"hunter2hunter2"}`},
		{"empty_password", `{"username":"minh","email":"a@b.com","password":""}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _ := newTestHandler(t)

			recorder := doJSON(handler.Register, http.MethodPost, "/register", tt.body)

			assert.Equal(t, http.StatusBadRequest, recorder.Code)
		})
	}
}

/*
TestHandler_Register_Duplicate checks the conflict status and message shape.
*/
func TestHandler_Register_Duplicate(t *testing.T) {
	handler, service := newTestHandler(t)
	seedAccount(t, service, "minh", "minh@example.com", "hunter2hunter2")

	recorder := doJSON(handler.Register, http.MethodPost, "/register",
		`{"username":"minh","email":"other@example.com","password":"hunter2hunter2"}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var envelope struct {
		Error string `json:"Error"`
		Code  string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, "Username already registered", envelope.Error)
	assert.Equal(t, "CONFLICT", envelope.Code)
}

/*
TestHandler_Login checks the session cookie attributes on success.
*/
func TestHandler_Login(t *testing.T) {
	handler, service := newTestHandler(t)
	seedAccount(t, service, "minh", "minh@example.com", "hunter2hunter2")

	recorder := doJSON(handler.Login, http.MethodPost, "/login",
		`{"username":"minh","password":"hunter2hunter2"}`)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"Status":"Success"}`, recorder.Body.String())

	cookie := sessionCookie(t, recorder)
	assert.Equal(t, "session-token-for-minh", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.False(t, cookie.Expires.IsZero())

	// The token travels only in the cookie.
	assert.NotContains(t, recorder.Body.String(), cookie.Value)
}

/*
TestHandler_Login_Failures checks the status split between unknown username
and wrong password.
*/
func TestHandler_Login_Failures(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantStatus  int
		wantMessage string
	}{
		{"unknown_username", `{"username":"ghost","password":"whatever1"}`, http.StatusNotFound, "Username not registered"},
		{"wrong_password", `{"username":"minh","password":"wrong-password"}`, http.StatusUnauthorized, "Wrong Password"},
		{"missing_fields", `{}`, http.StatusBadRequest, "Validation failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := newTestHandler(t)
			seedAccount(t, service, "minh", "minh@example.com", "hunter2hunter2")

			recorder := doJSON(handler.Login, http.MethodPost, "/login", tt.body)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Contains(t, recorder.Body.String(), tt.wantMessage)
			assert.Empty(t, recorder.Result().Cookies())
		})
	}
}

/*
TestHandler_Logout checks that the session cookie is expired client-side.
*/
func TestHandler_Logout(t *testing.T) {
	handler, _ := newTestHandler(t)

	request := httptest.NewRequest(http.MethodGet, "/logout", nil)
	recorder := httptest.NewRecorder()
	handler.Logout(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"Status":"Success"}`, recorder.Body.String())

	cookie := sessionCookie(t, recorder)
	assert.Empty(t, cookie.Value)
	assert.Equal(t, -1, cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
}

/*
TestHandler_Logout_TokenReplay checks the stateless-session consequence of
logout: the cookie is gone from the browser, but a prior token captured
before logout still verifies and authenticates until its natural expiry.
*/
func TestHandler_Logout_TokenReplay(t *testing.T) {
	tokenService, err := sec.NewTokenService("replay-test-secret", "fitfolio.test")
	require.NoError(t, err)

	repository := newFakeAccountRepository()
	service := auth.NewService(repository, tokenService)
	handler := auth.NewHandler(service, false)
	seedAccount(t, service, "minh", "minh@example.com", "hunter2hunter2")

	// 1. Login and capture the issued session token.
	loginRecorder := doJSON(handler.Login, http.MethodPost, "/login",
		`{"username":"minh","password":"hunter2hunter2"}`)
	require.Equal(t, http.StatusOK, loginRecorder.Code)
	replayedToken := sessionCookie(t, loginRecorder).Value

	// 2. Logout only expires the cookie client-side.
	logoutRecorder := httptest.NewRecorder()
	handler.Logout(logoutRecorder, httptest.NewRequest(http.MethodGet, "/logout", nil))
	require.Equal(t, http.StatusOK, logoutRecorder.Code)
	assert.Equal(t, -1, sessionCookie(t, logoutRecorder).MaxAge)

	// 3. The old token still verifies: nothing server-side was revoked.
	claims, err := tokenService.VerifyToken(replayedToken)
	require.NoError(t, err)
	assert.Equal(t, "minh", claims.Username)

	// 4. And it still authenticates a protected request end to end.
	var protectedStatus int
	protected := middleware.Authenticate(tokenService, constants.SessionCookieName)(
		middleware.RequireAuth(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			protectedStatus = http.StatusOK
			writer.WriteHeader(http.StatusOK)
		})))

	request := httptest.NewRequest(http.MethodGet, "/get-calc", nil)
	request.AddCookie(&http.Cookie{Name: constants.SessionCookieName, Value: replayedToken})
	recorder := httptest.NewRecorder()
	protected.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, http.StatusOK, protectedStatus)
}

/*
TestHandler_Whoami checks identity introspection for both session states.
*/
func TestHandler_Whoami(t *testing.T) {
	handler, _ := newTestHandler(t)

	t.Run("authenticated", func(t *testing.T) {
		claims := &sec.SessionClaims{UserID: "user-1", Username: "minh"}
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request = request.WithContext(ctxutil.WithAuthUser(context.Background(), claims))
		recorder := httptest.NewRecorder()

		handler.Whoami(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"Status":"Success","userId":"user-1","data":"minh"}`, recorder.Body.String())
	})

	t.Run("anonymous", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		recorder := httptest.NewRecorder()

		handler.Whoami(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Not Authenticated")
	})
}
