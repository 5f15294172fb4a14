package mockapi

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/danielgtaylor/huma/v2"
	humachi "github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"

	"visitas360/internal/domain"
)

// Config for the mock backend handler. It stands in for both real
// services (auth/visits and project units) on a single port while the
// production backend is not yet available.
type Config struct {
	JWTSecret string
	Logger    *log.Logger
}

func (c Config) logger() *log.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return log.Default()
}

type account struct {
	UID        string
	Email      string
	Password   string
	FullName   string
	AgencyName string
}

type server struct {
	cfg Config

	mu           sync.Mutex
	accounts     map[string]account
	reports      []domain.Report
	nextReportID int64
}

type principal struct {
	UID   string
	Email string
}

type principalKey struct{}

type mockClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
}

type apiErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiError struct {
	status int
	Body   apiErrorBody `json:"error"`
}

func (e *apiError) GetStatus() int { return e.status }
func (e *apiError) Error() string  { return e.Body.Message }

func newAPIError(status int, code, message string) huma.StatusError {
	return &apiError{status: status, Body: apiErrorBody{Code: code, Message: message}}
}

// New returns an HTTP handler exposing the mock backend surface.
func New(cfg Config) http.Handler {
	s := &server{
		cfg:          cfg,
		accounts:     map[string]account{},
		reports:      seedReports(),
		nextReportID: 100,
	}

	router := chi.NewRouter()
	router.Use(s.authMiddleware)

	hcfg := huma.DefaultConfig("Visitas360 Mock API", "0.1.0")
	hcfg.OpenAPIPath = "/openapi"
	api := humachi.New(router, hcfg)

	s.registerHealth(api)
	s.registerDevLogin(api)
	s.registerValidateSession(api)
	s.registerWorkloadIdentity(api)
	s.registerProjectUnits(api)

	router.Post("/auth/register", s.handleRegister)
	router.Post("/auth/change-password", s.handleChangePassword)
	router.Post("/auth/google", s.handleGoogleAuth)
	router.Post("/registrar-visita/", s.handleRegisterVisit)
	router.Get("/grupo-operativo/reportes", s.handleListReports)
	router.Delete("/grupo-operativo/eliminar-reporte", s.handleDeleteReport)
	router.Post("/registrar-asistencia-delegado", s.handleDelegateAttendance)
	router.Post("/registrar-asistencia-comunidad", s.handleCommunityAttendance)
	router.Post("/registrar-requerimiento", s.handleRegisterRequirement)

	return router
}

var publicPaths = map[string]bool{
	"/health":         true,
	"/auth/dev/login": true,
	"/auth/register":  true,
	"/auth/google":    true,
	"/openapi":        true,
	"/openapi.json":   true,
	"/openapi.yaml":   true,
}

func (s *server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if publicPaths[req.URL.Path] {
			next.ServeHTTP(w, req)
			return
		}
		authz := strings.TrimSpace(req.Header.Get("Authorization"))
		parts := strings.Fields(authz)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			respondJSONError(w, http.StatusUnauthorized, "unauthorized", "authentication required")
			return
		}
		p, err := s.authenticate(parts[1])
		if err != nil {
			respondJSONError(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials")
			return
		}
		ctx := context.WithValue(req.Context(), principalKey{}, p)
		next.ServeHTTP(w, req.WithContext(ctx))
	})
}

func (s *server) authenticate(token string) (principal, error) {
	if strings.TrimSpace(s.cfg.JWTSecret) == "" {
		return principal{}, errors.New("jwt secret not configured")
	}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	claims := &mockClaims{}
	parsed, err := parser.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return principal{}, err
	}
	if !parsed.Valid {
		return principal{}, errors.New("invalid token")
	}
	if claims.Subject == "" {
		return principal{}, errors.New("subject claim required")
	}
	return principal{UID: claims.Subject, Email: claims.Email}, nil
}

func principalFromContext(ctx context.Context) (principal, bool) {
	p, ok := ctx.Value(principalKey{}).(principal)
	return p, ok
}

func respondJSONError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": apiErrorBody{Code: code, Message: message},
	})
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (s *server) registerHealth(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
	}, func(ctx context.Context, _ *struct{}) (*struct {
		Body map[string]string `json:"body"`
	}, error) {
		return &struct {
			Body map[string]string `json:"body"`
		}{Body: map[string]string{"status": "ok"}}, nil
	})
}

type devLoginRequest struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}

type devLoginResponse struct {
	Token string `json:"token"`
}

func (s *server) registerDevLogin(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "dev-login",
		Method:      http.MethodPost,
		Path:        "/auth/dev/login",
		Summary:     "DEV ONLY: mint a JWT for local testing",
		Errors:      []int{http.StatusBadRequest, http.StatusInternalServerError},
	}, func(ctx context.Context, input *struct {
		Body devLoginRequest `json:"body"`
	}) (*struct {
		Body devLoginResponse `json:"body"`
	}, error) {
		uid := strings.TrimSpace(input.Body.UID)
		if uid == "" {
			return nil, newAPIError(http.StatusBadRequest, "bad_request", "uid is required")
		}
		now := time.Now()
		claims := mockClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   uid,
				IssuedAt:  jwt.NewNumericDate(now),
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			},
			Email: strings.TrimSpace(input.Body.Email),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
		if err != nil {
			return nil, newAPIError(http.StatusInternalServerError, "internal_error", err.Error())
		}
		return &struct {
			Body devLoginResponse `json:"body"`
		}{Body: devLoginResponse{Token: token}}, nil
	})
}

func (s *server) registerValidateSession(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "validate-session",
		Method:      http.MethodPost,
		Path:        "/auth/validate-session",
		Summary:     "Validate the bearer token and return the backend profile",
		Errors:      []int{http.StatusUnauthorized},
	}, func(ctx context.Context, _ *struct{}) (*struct {
		Body map[string]any `json:"body"`
	}, error) {
		p, ok := principalFromContext(ctx)
		if !ok {
			return nil, newAPIError(http.StatusUnauthorized, "unauthorized", "authentication required")
		}
		body := map[string]any{
			"uid":   p.UID,
			"email": p.Email,
			"role":  "operativo",
		}
		s.mu.Lock()
		if acc, found := s.accounts[p.Email]; found {
			body["displayName"] = acc.FullName
			body["nombre_centro_gestor"] = acc.AgencyName
		}
		s.mu.Unlock()
		return &struct {
			Body map[string]any `json:"body"`
		}{Body: body}, nil
	})
}

func (s *server) registerWorkloadIdentity(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "workload-identity-status",
		Method:      http.MethodGet,
		Path:        "/auth/workload-identity/status",
		Summary:     "Workload Identity Federation status",
	}, func(ctx context.Context, _ *struct{}) (*struct {
		Body string `json:"body"`
	}, error) {
		return &struct {
			Body string `json:"body"`
		}{Body: "workload identity federation: mock (disabled)"}, nil
	})
}

type projectUnitsBody struct {
	Success bool                 `json:"success"`
	Data    []domain.ProjectUnit `json:"data"`
}

func (s *server) registerProjectUnits(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "project-units",
		Method:      http.MethodGet,
		Path:        "/unidades-proyecto/init-360",
		Summary:     "Project units available for field visits",
	}, func(ctx context.Context, _ *struct{}) (*struct {
		Body projectUnitsBody `json:"body"`
	}, error) {
		return &struct {
			Body projectUnitsBody `json:"body"`
		}{Body: projectUnitsBody{Success: true, Data: seedProjectUnits()}}, nil
	})
}

func (s *server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var p domain.RegisterUserPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		respondJSONError(w, http.StatusBadRequest, "bad_request", "invalid json body")
		return
	}
	if p.Email == "" || p.Password == "" {
		respondJSONError(w, http.StatusBadRequest, "bad_request", "email and password are required")
		return
	}
	if len(p.Password) < 6 {
		respondJSONError(w, http.StatusBadRequest, "weak-password", "password must be at least 6 characters")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, found := s.accounts[p.Email]; found {
		respondJSONError(w, http.StatusConflict, "conflict", "user already exists")
		return
	}
	uid := "mock-" + strconv.Itoa(len(s.accounts)+1)
	s.accounts[p.Email] = account{
		UID:        uid,
		Email:      p.Email,
		Password:   p.Password,
		FullName:   p.FullName,
		AgencyName: p.AgencyName,
	}
	respondJSON(w, http.StatusCreated, map[string]string{"uid": uid, "message": "usuario registrado"})
}

func (s *server) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondJSONError(w, http.StatusBadRequest, "bad_request", "invalid form body")
		return
	}
	uid := r.PostFormValue("uid")
	newPassword := r.PostFormValue("new_password")
	if uid == "" || newPassword == "" {
		respondJSONError(w, http.StatusBadRequest, "bad_request", "uid and new_password are required")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for email, acc := range s.accounts {
		if acc.UID == uid {
			acc.Password = newPassword
			s.accounts[email] = acc
			respondJSON(w, http.StatusOK, "password updated")
			return
		}
	}
	respondJSONError(w, http.StatusNotFound, "not_found", "user not found")
}

func (s *server) handleGoogleAuth(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondJSONError(w, http.StatusBadRequest, "bad_request", "invalid form body")
		return
	}
	googleToken := r.PostFormValue("google_token")
	if googleToken == "" {
		respondJSONError(w, http.StatusBadRequest, "bad_request", "google_token is required")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"uid":         "google-mock-user",
		"email":       "google.user@cali.gov.co",
		"displayName": "Usuario Google",
		"role":        "operativo",
	})
}

func (s *server) handleRegisterVisit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondJSONError(w, http.StatusBadRequest, "bad_request", "invalid form body")
		return
	}
	name := r.PostFormValue("nombre_up")
	date := r.PostFormValue("fecha_visita")
	if name == "" || date == "" {
		respondJSONError(w, http.StatusBadRequest, "bad_request", "nombre_up and fecha_visita are required")
		return
	}
	s.mu.Lock()
	s.nextReportID++
	id := s.nextReportID
	s.reports = append([]domain.Report{{
		ReportID:     id,
		Name:         name,
		Detail:       r.PostFormValue("nombre_up_detalle"),
		Neighborhood: r.PostFormValue("barrio_vereda"),
		District:     r.PostFormValue("comuna_corregimiento"),
		Date:         date,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}}, s.reports...)
	s.mu.Unlock()
	respondJSON(w, http.StatusCreated, domain.VisitResponse{
		ID:      id,
		VID:     "vid-" + strconv.FormatInt(id, 10),
		Message: "visita registrada",
	})
}

func (s *server) handleListReports(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	reports := append([]domain.Report(nil), s.reports...)
	s.mu.Unlock()
	respondJSON(w, http.StatusOK, reports)
}

func (s *server) handleDeleteReport(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("reporte_id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		respondJSONError(w, http.StatusBadRequest, "bad_request", "reporte_id must be an integer")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, rep := range s.reports {
		if rep.ReportID == id {
			s.reports = append(s.reports[:i], s.reports[i+1:]...)
			respondJSON(w, http.StatusOK, map[string]string{"message": "reporte eliminado"})
			return
		}
	}
	respondJSONError(w, http.StatusNotFound, "not_found", "reporte no encontrado")
}

func (s *server) handleDelegateAttendance(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondJSONError(w, http.StatusBadRequest, "bad_request", "invalid form body")
		return
	}
	if r.PostFormValue("vid") == "" || r.PostFormValue("nombre_completo") == "" {
		respondJSONError(w, http.StatusBadRequest, "bad_request", "vid and nombre_completo are required")
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"message": "asistencia de delegado registrada"})
}

func (s *server) handleCommunityAttendance(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondJSONError(w, http.StatusBadRequest, "bad_request", "invalid form body")
		return
	}
	if r.PostFormValue("vid") == "" || r.PostFormValue("nombre_completo") == "" {
		respondJSONError(w, http.StatusBadRequest, "bad_request", "vid and nombre_completo are required")
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"message": "asistencia de comunidad registrada"})
}

const maxRequirementBody = 32 << 20

func (s *server) handleRegisterRequirement(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxRequirementBody); err != nil {
		respondJSONError(w, http.StatusBadRequest, "bad_request", "invalid multipart body")
		return
	}
	if r.PostFormValue("vid") == "" || r.PostFormValue("requerimiento") == "" {
		respondJSONError(w, http.StatusBadRequest, "bad_request", "vid and requerimiento are required")
		return
	}
	voiceNote := ""
	if f, header, err := r.FormFile("nota_voz"); err == nil {
		f.Close()
		voiceNote = header.Filename
	}
	s.cfg.logger().Printf("requirement received vid=%s voice_note=%q", r.PostFormValue("vid"), voiceNote)
	respondJSON(w, http.StatusCreated, map[string]string{"message": "requerimiento registrado"})
}
