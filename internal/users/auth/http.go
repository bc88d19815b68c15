// Copyright (c) 2026 Fitfolio. All rights reserved.

/*
Package auth provides the HTTP delivery layer for user identity management.

It implements the gateway for the authentication lifecycle: account creation,
login, session introspection, and logout.

# Architecture

The handler acts as a thin mediation layer between the web and domain services:
  - Protocol: Standard RESTful JSON interface.
  - Security: Manages the HTTP-only session cookie.
  - Verification: Enforces strict input validation before passing to [Service].

This layer is strictly responsible for transport concerns (status codes,
headers, cookies, JSON).
*/
package auth

import (
	"net/http"

	"github.com/dnminh/fitfolio/internal/platform/constants"
	requestutil "github.com/dnminh/fitfolio/internal/platform/request"
	"github.com/dnminh/fitfolio/internal/platform/respond"
	"github.com/dnminh/fitfolio/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements authentication-related HTTP endpoints.
type Handler struct {
	authService   *Service
	secureCookies bool
}

// NewHandler constructs a new [Handler] with its service dependency.
//
// secureCookies should be true whenever the API is served over TLS; it is
// disabled in local development so the cookie survives plain HTTP.
func NewHandler(service *Service, secureCookies bool) *Handler {
	return &Handler{authService: service, secureCookies: secureCookies}
}

// # Request & Response Payloads

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type whoamiResponse struct {
	Status string `json:"Status"`
	UserID string `json:"userId"`
	Data   string `json:"data"`
}

/*
Register handles the creation of a new user account.

POST /register

Description: Validates input, checks for identity conflicts, and persists
a new account. The response deliberately carries no account data and no
token — the user logs in separately.

Request:
  - Body: registerRequest (Username, Email, Password)

Response:
  - 201: {Status: "Success"}
  - 400: Conflict (username/email taken) or validation failure
  - 500: Storage failure
*/
func (handler *Handler) Register(writer http.ResponseWriter, request *http.Request) {
	var input registerRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldUsername, input.Username).
		MinLen(FieldUsername, input.Username, 3).
		MaxLen(FieldUsername, input.Username, 64).
		Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		Required(FieldPassword, input.Password)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	_, err := handler.authService.Register(request.Context(), RegisterInput{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
	})

	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer)
}

/*
Login authenticates a user and establishes a session.

POST /login

Description: Verifies credentials, generates the 24h session JWT, and
delivers it exclusively as an HTTP-only cookie — never in the body.

Request:
  - Body: loginRequest (Username, Password)

Response:
  - 200: {Status: "Success"} + session cookie
  - 401: Wrong password
  - 404: Unknown username
*/
func (handler *Handler) Login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldUsername, input.Username)
	validator.Required(FieldPassword, input.Password)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.authService.Login(request.Context(), LoginInput{
		Username: input.Username,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	http.SetCookie(writer, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		Secure:   handler.secureCookies,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	respond.Success(writer)
}

/*
Logout clears the client-held session cookie.

GET /logout

Description: Stateless by design — the server keeps no revocation list, so
the JWT itself stays cryptographically valid until its natural 24h expiry.
This only removes the cookie from the browser. Documented limitation, not
a bug.

Response:
  - 200: {Status: "Success"}, cookie expired
*/
func (handler *Handler) Logout(writer http.ResponseWriter, request *http.Request) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Secure:   handler.secureCookies,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	respond.Success(writer)
}

/*
Whoami returns the identity bound to the current session.

GET /

Description: Reads the claims the session middleware attached to the
request context. No database round trip.

Response:
  - 200: {Status, userId, data: username}
  - 401: Not authenticated
*/
func (handler *Handler) Whoami(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, whoamiResponse{
		Status: respond.StatusSuccess,
		UserID: claims.UserID,
		Data:   claims.Username,
	})
}
