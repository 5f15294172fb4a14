package auth

import (
	"context"
	"errors"
	"log"

	"visitas360/internal/apiclient"
	"visitas360/internal/domain"
	"visitas360/internal/session"
)

// Gateway drives the full sign-in flow: provider sign-in, bearer token
// propagation to both backend clients, backend session validation and
// session-store publication. Provider may be nil, in which case only
// locally persisted sessions can be restored.
type Gateway struct {
	Provider Provider
	Visits   *apiclient.Client
	Projects *apiclient.Client
	Sessions *session.Store
	Logger   *log.Logger
}

func (g *Gateway) logger() *log.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return log.Default()
}

func (g *Gateway) setTokens(token string) {
	g.Visits.SetToken(token)
	g.Projects.SetToken(token)
}

// validateSession asks the backend who the token belongs to and merges
// the reply over the provider identity. Backend fields win when set;
// anything outside the known mapping is logged, never merged.
func (g *Gateway) validateSession(ctx context.Context, id Identity, token string) (domain.Profile, error) {
	var backend domain.ValidateSessionResponse
	if err := g.Visits.Post(ctx, "/auth/validate-session", struct{}{}, &backend); err != nil {
		return domain.Profile{}, err
	}
	p := domain.Profile{
		UID:         id.UID,
		Email:       id.Email,
		DisplayName: id.DisplayName,
		Token:       token,
	}
	if backend.UID != "" {
		p.UID = backend.UID
	}
	if backend.Email != "" {
		p.Email = backend.Email
	}
	if backend.DisplayName != "" {
		p.DisplayName = backend.DisplayName
	}
	p.Role = backend.Role
	p.AgencyName = backend.AgencyName
	if len(backend.Extra) > 0 {
		g.logger().Printf("validate-session returned %d unmapped fields; ignoring", len(backend.Extra))
	}
	return p, nil
}

// Login signs in against the provider, validates the session with the
// backend and publishes the authenticated profile. On failure the
// session store carries the localized message and the raw error is
// returned.
func (g *Gateway) Login(ctx context.Context, email, password string) error {
	g.Sessions.SetLoading(true)
	if g.Provider == nil {
		g.Sessions.SetError("Proveedor de identidad no configurado")
		return errors.New("identity provider not configured")
	}
	id, err := g.Provider.SignIn(ctx, email, password)
	if err != nil {
		g.Sessions.SetError(LoginMessage(err.Error()))
		return err
	}
	token, err := g.Provider.IDToken(ctx, false)
	if err != nil {
		g.Sessions.SetError(LoginMessage(err.Error()))
		return err
	}
	g.setTokens(token)
	profile, err := g.validateSession(ctx, id, token)
	if err != nil {
		g.Sessions.SetError(LoginMessage(err.Error()))
		return err
	}
	g.Sessions.Login(profile)
	return nil
}

// Logout signs out of the provider best-effort and always clears the
// local session and both client tokens.
func (g *Gateway) Logout(ctx context.Context) {
	if g.Provider != nil {
		if err := g.Provider.SignOut(ctx); err != nil {
			g.logger().Printf("provider sign-out failed, continuing local logout: %v", err)
		}
	}
	g.setTokens("")
	g.Sessions.Logout()
}

// InitAuthListener wires provider state changes into the session store
// and returns an idempotent unsubscribe. Without a provider it falls
// back to the locally persisted session immediately.
func (g *Gateway) InitAuthListener(ctx context.Context) func() {
	if g.Provider == nil {
		if ok := g.Sessions.Restore(); ok {
			g.setTokens(g.Sessions.State().Token)
		} else {
			g.Sessions.SetLoading(false)
		}
		return func() {}
	}
	return g.Provider.OnStateChange(func(id *Identity) {
		if id == nil {
			if ok := g.Sessions.Restore(); ok {
				g.setTokens(g.Sessions.State().Token)
			} else {
				g.Sessions.SetLoading(false)
			}
			return
		}
		token, err := g.Provider.IDToken(ctx, true)
		if err != nil {
			g.restoreOrLogout()
			return
		}
		g.setTokens(token)
		profile, err := g.validateSession(ctx, *id, token)
		if err != nil {
			g.restoreOrLogout()
			return
		}
		g.Sessions.Login(profile)
	})
}

func (g *Gateway) restoreOrLogout() {
	if ok := g.Sessions.Restore(); ok {
		g.setTokens(g.Sessions.State().Token)
		return
	}
	g.setTokens("")
	g.Sessions.Logout()
}

// RegisterUser creates a backend account. The endpoint is public; the
// call carries no bearer token.
func (g *Gateway) RegisterUser(ctx context.Context, p domain.RegisterUserPayload) error {
	public := apiclient.New(g.Visits.BaseURL)
	public.HTTPClient = g.Visits.HTTPClient
	if err := public.Post(ctx, "/auth/register", p, nil); err != nil {
		return errors.New(RegisterMessage(err.Error()))
	}
	return nil
}

// ChangePassword updates the password for a backend account.
func (g *Gateway) ChangePassword(ctx context.Context, p domain.ChangePasswordPayload) error {
	data := map[string]string{
		"uid":          p.UID,
		"new_password": p.NewPassword,
	}
	return g.Visits.PostURLEncoded(ctx, "/auth/change-password", data, nil)
}

// GoogleAuth exchanges a Google token for a backend session.
func (g *Gateway) GoogleAuth(ctx context.Context, googleToken string) error {
	g.Sessions.SetLoading(true)
	var backend domain.ValidateSessionResponse
	data := map[string]string{"google_token": googleToken}
	if err := g.Visits.PostURLEncoded(ctx, "/auth/google", data, &backend); err != nil {
		g.Sessions.SetError("Error al autenticar con Google: " + err.Error())
		return err
	}
	g.setTokens(googleToken)
	p := domain.Profile{
		UID:         backend.UID,
		Email:       backend.Email,
		DisplayName: backend.DisplayName,
		Role:        backend.Role,
		AgencyName:  backend.AgencyName,
		Token:       googleToken,
	}
	g.Sessions.Login(p)
	return nil
}

// WorkloadIdentityStatus reports the Workload Identity Federation state.
func (g *Gateway) WorkloadIdentityStatus(ctx context.Context) (string, error) {
	var status string
	if err := g.Visits.Get(ctx, "/auth/workload-identity/status", nil, &status); err != nil {
		return "", err
	}
	return status, nil
}
