package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"visitas360/internal/apiclient"
	"visitas360/internal/domain"
	"visitas360/internal/session"
)

type fakeProvider struct {
	identity   Identity
	signInErr  error
	tokenErr   error
	token      string
	signedOut  bool
	lastForced bool
	listener   func(*Identity)
}

func (f *fakeProvider) SignIn(ctx context.Context, email, password string) (Identity, error) {
	if f.signInErr != nil {
		return Identity{}, f.signInErr
	}
	return f.identity, nil
}

func (f *fakeProvider) SignOut(ctx context.Context) error {
	f.signedOut = true
	return nil
}

func (f *fakeProvider) IDToken(ctx context.Context, forceRefresh bool) (string, error) {
	f.lastForced = forceRefresh
	if f.tokenErr != nil {
		return "", f.tokenErr
	}
	return f.token, nil
}

func (f *fakeProvider) OnStateChange(fn func(*Identity)) func() {
	f.listener = fn
	return func() { f.listener = nil }
}

func newTestGateway(t *testing.T, p Provider, backend http.HandlerFunc) (*Gateway, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)
	g := &Gateway{
		Provider: p,
		Visits:   apiclient.New(srv.URL),
		Projects: apiclient.New(srv.URL),
		Sessions: session.New(session.NewFileStore(t.TempDir())),
	}
	return g, srv
}

func TestLoginMergesBackendWithPrecedence(t *testing.T) {
	p := &fakeProvider{
		identity: Identity{UID: "prov-uid", Email: "mlopez@cali.gov.co", DisplayName: "Nombre Proveedor"},
		token:    "tok-1",
	}
	var gotAuth string
	g, _ := newTestGateway(t, p, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]any{
			"uid":                  "backend-uid",
			"displayName":          "María Fernanda López",
			"role":                 "operativo",
			"nombre_centro_gestor": "Secretaría de Infraestructura",
			"campo_sorpresa":       "ignorado",
		})
	})

	if err := g.Login(context.Background(), "mlopez@cali.gov.co", "secret"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if gotAuth != "Bearer tok-1" {
		t.Fatalf("validate-session must carry the fresh token, got %q", gotAuth)
	}
	st := g.Sessions.State()
	if !st.Authenticated || st.Profile == nil {
		t.Fatalf("session not authenticated: %+v", st)
	}
	if st.Profile.UID != "backend-uid" {
		t.Fatalf("backend uid must win, got %q", st.Profile.UID)
	}
	if st.Profile.Email != "mlopez@cali.gov.co" {
		t.Fatalf("provider email must survive when backend omits it, got %q", st.Profile.Email)
	}
	if st.Profile.DisplayName != "María Fernanda López" || st.Profile.AgencyName != "Secretaría de Infraestructura" {
		t.Fatalf("backend fields not merged: %+v", st.Profile)
	}
	if g.Projects.Token() != "tok-1" {
		t.Fatal("token not propagated to the projects client")
	}
}

func TestLoginProviderFailureSetsLocalizedError(t *testing.T) {
	p := &fakeProvider{signInErr: &Error{Code: "auth/wrong-password"}}
	g, _ := newTestGateway(t, p, func(w http.ResponseWriter, r *http.Request) {
		t.Error("backend must not be called when the provider rejects")
	})

	if err := g.Login(context.Background(), "a@b.co", "bad"); err == nil {
		t.Fatal("expected error")
	}
	st := g.Sessions.State()
	if st.Authenticated {
		t.Fatal("must not authenticate")
	}
	if st.Err != "Correo electrónico o contraseña incorrectos" {
		t.Fatalf("localized message wrong: %q", st.Err)
	}
}

func TestLoginBackendFailureDoesNotAuthenticate(t *testing.T) {
	p := &fakeProvider{identity: Identity{UID: "u"}, token: "tok"}
	g, _ := newTestGateway(t, p, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid"}`))
	})

	if err := g.Login(context.Background(), "a@b.co", "x"); err == nil {
		t.Fatal("expected error")
	}
	if g.Sessions.State().Authenticated {
		t.Fatal("must not authenticate on backend rejection")
	}
}

func TestLogoutClearsTokensAndSession(t *testing.T) {
	p := &fakeProvider{identity: Identity{UID: "u", Email: "a@b.co"}, token: "tok"}
	g, _ := newTestGateway(t, p, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"uid": "u"})
	})
	if err := g.Login(context.Background(), "a@b.co", "x"); err != nil {
		t.Fatalf("login: %v", err)
	}

	g.Logout(context.Background())
	if !p.signedOut {
		t.Fatal("provider sign-out not attempted")
	}
	if g.Visits.Token() != "" || g.Projects.Token() != "" {
		t.Fatal("client tokens not cleared")
	}
	if g.Sessions.State().Authenticated {
		t.Fatal("session not cleared")
	}
	if g.Sessions.Restore() {
		t.Fatal("persisted session should be gone after logout")
	}
}

func TestInitAuthListenerRevalidatesWithForcedRefresh(t *testing.T) {
	p := &fakeProvider{token: "tok-fresh"}
	g, _ := newTestGateway(t, p, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"uid": "u1", "email": "a@b.co"})
	})

	unsub := g.InitAuthListener(context.Background())
	defer unsub()
	if p.listener == nil {
		t.Fatal("listener not registered")
	}

	p.listener(&Identity{UID: "u1", Email: "a@b.co"})
	if !p.lastForced {
		t.Fatal("token refresh must be forced on state change")
	}
	st := g.Sessions.State()
	if !st.Authenticated || st.Token != "tok-fresh" {
		t.Fatalf("state change did not re-authenticate: %+v", st)
	}
}

func TestInitAuthListenerSignedOutSettlesLoading(t *testing.T) {
	p := &fakeProvider{}
	g, _ := newTestGateway(t, p, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{})
	})

	unsub := g.InitAuthListener(context.Background())
	defer unsub()
	p.listener(nil)
	st := g.Sessions.State()
	if st.Authenticated || st.Loading {
		t.Fatalf("signed-out with no persisted session should settle unauthenticated: %+v", st)
	}
}

func TestInitAuthListenerWithoutProviderRestoresLocally(t *testing.T) {
	dir := t.TempDir()
	persisted := session.New(session.NewFileStore(dir))
	persisted.Login(domain.Profile{
		UID:   "uid-1",
		Email: "mlopez@cali.gov.co",
		Role:  "operativo",
		Token: "tok-abc",
	})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no backend call expected")
	}))
	defer srv.Close()
	g := &Gateway{
		Visits:   apiclient.New(srv.URL),
		Projects: apiclient.New(srv.URL),
		Sessions: session.New(session.NewFileStore(dir)),
	}

	unsub := g.InitAuthListener(context.Background())
	defer unsub()
	st := g.Sessions.State()
	if !st.Authenticated || st.Token != "tok-abc" {
		t.Fatalf("local restore failed: %+v", st)
	}
	if g.Visits.Token() != "tok-abc" {
		t.Fatal("restored token not set on clients")
	}
}

func TestDevProviderMintsVerifiableToken(t *testing.T) {
	p := NewDevProvider("secret-1")
	id, err := p.SignIn(context.Background(), "mlopez@cali.gov.co", "x")
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if id.UID != "dev-mlopez" {
		t.Fatalf("uid derivation wrong: %q", id.UID)
	}
	token, err := p.IDToken(context.Background(), false)
	if err != nil || token == "" {
		t.Fatalf("id token: %v", err)
	}

	if _, err := p.SignIn(context.Background(), "", ""); err == nil {
		t.Fatal("empty credentials must fail")
	}

	if err := p.SignOut(context.Background()); err != nil {
		t.Fatalf("sign out: %v", err)
	}
	if _, err := p.IDToken(context.Background(), false); err == nil {
		t.Fatal("token after sign-out must fail")
	}
}

func TestErrorMessages(t *testing.T) {
	cases := map[string]string{
		"auth/user-not-found":     "Correo electrónico o contraseña incorrectos",
		"auth/wrong-password":     "Correo electrónico o contraseña incorrectos",
		"auth/too-many-requests":  "Demasiados intentos. Intente de nuevo más tarde.",
		"auth/invalid-credential": "Credenciales inválidas. Verifique su correo y contraseña.",
	}
	for code, want := range cases {
		if got := LoginMessage(code); got != want {
			t.Errorf("LoginMessage(%q) = %q, want %q", code, got, want)
		}
	}
	if got := RegisterMessage("user already exists"); got != "Este correo electrónico ya está registrado." {
		t.Errorf("duplicate mapping wrong: %q", got)
	}
	if got := RegisterMessage("weak-password"); got != "La contraseña es muy débil. Debe tener al menos 6 caracteres." {
		t.Errorf("weak password mapping wrong: %q", got)
	}
}
