package services

import (
	"context"

	"github.com/dmitrijs2005/fittrack/internal/client/api"
	"github.com/dmitrijs2005/fittrack/internal/client/session"
	"github.com/dmitrijs2005/fittrack/internal/common"
	"github.com/dmitrijs2005/fittrack/internal/logging"
	"github.com/dmitrijs2005/fittrack/internal/sanitize"
)

const (
	LoginPath  = "/api/auth/login"
	SignupPath = "/api/auth/signup"
)

// Client is the part of api.Client used by the services.
type Client interface {
	Get(ctx context.Context, path string, opts ...api.RequestOption) (*api.Response, error)
	Post(ctx context.Context, path string, body any, opts ...api.RequestOption) (*api.Response, error)
	Delete(ctx context.Context, path string, opts ...api.RequestOption) (*api.Response, error)
	SetAuthorization(token string)
	ClearAuthorization()
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupData struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

// AuthResult is a successful login or signup reply.
type AuthResult struct {
	Token string
	User  session.UserRecord
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login/Signup: validate, submit, persist the token and make it the
//     client's default authorization. The first failing step ends the call.
//   - Logout: forget the token and return to the login route. It never fails.
type AuthService interface {
	Login(ctx context.Context, c Credentials) (*AuthResult, error)
	Signup(ctx context.Context, d SignupData) (*AuthResult, error)
	Logout(ctx context.Context)
}

type authService struct {
	client    Client
	store     *session.Store
	navigator api.Navigator
	logger    logging.Logger
}

// NewAuthService constructs an AuthService. navigator may be nil.
func NewAuthService(client Client, store *session.Store, navigator api.Navigator, logger logging.Logger) AuthService {
	if logger == nil {
		logger = logging.Nop()
	}
	return &authService{client: client, store: store, navigator: navigator, logger: logger}
}

func (a *authService) Login(ctx context.Context, c Credentials) (*AuthResult, error) {
	if err := validateCredentials(c.Email, c.Password); err != nil {
		return nil, err
	}
	if err := validateEmail(c.Email); err != nil {
		return nil, err
	}

	body := Credentials{
		Email:    sanitize.String(c.Email),
		Password: sanitize.String(c.Password),
	}
	return a.submit(ctx, LoginPath, body, "Authentication failed: Token or user data missing")
}

func (a *authService) Signup(ctx context.Context, d SignupData) (*AuthResult, error) {
	if err := validateCredentials(d.Email, d.Password); err != nil {
		return nil, err
	}
	if err := validatePasswordPolicy(d.Password); err != nil {
		return nil, err
	}
	if err := validateEmail(d.Email); err != nil {
		return nil, err
	}

	body := SignupData{
		Email:    sanitize.String(d.Email),
		Password: sanitize.String(d.Password),
		Name:     sanitize.String(d.Name),
	}
	return a.submit(ctx, SignupPath, body, "Registration failed: Token or user data missing")
}

// submit posts an already sanitized body and completes the session on
// success.
func (a *authService) submit(ctx context.Context, path string, body any, missing string) (*AuthResult, error) {
	resp, err := a.client.Post(ctx, path, body,
		api.WithHeader(common.RequestedWithHeaderName, common.RequestedWithHeaderValue),
		api.SkipSanitize(),
	)
	if err != nil {
		return nil, err
	}

	var reply struct {
		Token string `json:"token"`
		User  any    `json:"user"`
	}
	if err := resp.Decode(&reply); err != nil {
		return nil, &ProtocolError{Endpoint: path, Message: missing}
	}
	user, ok := reply.User.(map[string]any)
	if reply.Token == "" || !ok || len(user) == 0 {
		return nil, &ProtocolError{Endpoint: path, Message: missing}
	}

	if err := a.store.Save(ctx, reply.Token); err != nil {
		a.logger.Error(ctx, "failed to persist token", "error", err)
		return nil, err
	}

	a.client.SetAuthorization(reply.Token)

	return &AuthResult{
		Token: reply.Token,
		User:  session.UserRecord(sanitize.Value(user).(map[string]any)),
	}, nil
}

func (a *authService) Logout(ctx context.Context) {
	if err := a.store.Clear(ctx); err != nil {
		a.logger.Error(ctx, "failed to remove token", "error", err)
	}
	a.client.ClearAuthorization()
	if a.navigator != nil {
		a.navigator.Navigate(common.LoginRoute)
	}
}
