package session

import (
	"context"
	"encoding/json"
	"net/http"

	"fridgechef/internal/core/ui"
	"fridgechef/internal/pkg/common"

	"go.uber.org/zap"
)

// Caller issues one backend request. Satisfied by *transport.Client.
type Caller interface {
	Call(ctx context.Context, method, path string, body interface{}) (json.RawMessage, error)
}

// credentials is the login/signup request body.
type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Service owns the auth operations and the session-state reconciliation that
// must follow each of them.
type Service struct {
	caller Caller
	port   ui.Port
}

// NewService wires a session service.
func NewService(caller Caller, port ui.Port) *Service {
	return &Service{caller: caller, port: port}
}

// Refresh probes /me and republishes the snapshot. A probe failure is logged
// and the prior UI state stays untouched: the usage display is informational,
// so a failed refresh must never surface as an error of the action that
// triggered it.
func (s *Service) Refresh(ctx context.Context) {
	payload, err := s.caller.Call(ctx, http.MethodGet, "/me", nil)
	if err != nil {
		common.LogError("session probe failed", zap.Error(err))
		return
	}

	var me meResponse
	if payload != nil {
		if err := common.ParseJSONBytes(payload, &me); err != nil {
			common.LogError("session probe returned unexpected body", zap.Error(err))
			return
		}
	}

	snapshot := me.session()
	s.port.SetUsage(snapshot.UsageLine())
	s.port.SetAuthButtons(snapshot.Authenticated)

	common.LogDebug("session refreshed",
		zap.Bool("authenticated", snapshot.Authenticated),
		zap.Int("used_today", snapshot.UsedToday),
	)
}

// Login authenticates and reconciles the session display.
func (s *Service) Login(ctx context.Context, username, password string) error {
	_, err := s.caller.Call(ctx, http.MethodPost, "/login", credentials{
		Username: username,
		Password: password,
	})
	if err != nil {
		return err
	}
	s.Refresh(ctx)
	return nil
}

// Signup registers a new account. The backend does not log the account in, so
// signup performs an explicit login before reconciling.
func (s *Service) Signup(ctx context.Context, username, password string) error {
	creds := credentials{Username: username, Password: password}

	if _, err := s.caller.Call(ctx, http.MethodPost, "/signup", creds); err != nil {
		return err
	}
	if _, err := s.caller.Call(ctx, http.MethodPost, "/login", creds); err != nil {
		return err
	}
	s.Refresh(ctx)
	return nil
}

// Logout clears the session and reconciles the session display.
func (s *Service) Logout(ctx context.Context) error {
	if _, err := s.caller.Call(ctx, http.MethodPost, "/logout", nil); err != nil {
		return err
	}
	s.Refresh(ctx)
	return nil
}
