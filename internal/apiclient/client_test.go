package apiclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.SetToken("tok-123")
	if err := c.Get(context.Background(), "/x", nil, nil); err != nil {
		t.Fatalf("get: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("authorization header wrong: %q", gotAuth)
	}

	c.SetToken("")
	if err := c.Get(context.Background(), "/x", nil, nil); err != nil {
		t.Fatalf("get: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("empty token must send no header, got %q", gotAuth)
	}
}

func TestNon2xxBecomesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":"sin permiso"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.Post(context.Background(), "/auth/validate-session", struct{}{}, nil)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T: %v", err, err)
	}
	if apiErr.StatusCode != http.StatusForbidden {
		t.Fatalf("status wrong: %d", apiErr.StatusCode)
	}
	if !strings.Contains(apiErr.Body, "sin permiso") {
		t.Fatalf("raw body missing: %q", apiErr.Body)
	}
	if !strings.Contains(apiErr.Error(), "403") {
		t.Fatalf("error text should carry the status: %q", apiErr.Error())
	}
}

func TestGetAppendsQueryParams(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	if err := c.Delete(context.Background(), "/grupo-operativo/eliminar-reporte", map[string]string{"reporte_id": "42"}, nil); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if gotQuery != "reporte_id=42" {
		t.Fatalf("query wrong: %q", gotQuery)
	}
}

func TestPostURLEncoded(t *testing.T) {
	var gotType, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotType = r.Header.Get("Content-Type")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.PostURLEncoded(context.Background(), "/registrar-visita/", map[string]string{
		"nombre_up":    "Vía Rural",
		"fecha_visita": "2026-03-10",
	}, nil)
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	if gotType != "application/x-www-form-urlencoded" {
		t.Fatalf("content type wrong: %q", gotType)
	}
	if !strings.Contains(gotBody, "fecha_visita=2026-03-10") {
		t.Fatalf("form body wrong: %q", gotBody)
	}
}

func TestPostFormMultipartWithFile(t *testing.T) {
	var gotField, gotFile, gotFileContent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		gotField = r.PostFormValue("vid")
		f, header, err := r.FormFile("nota_voz")
		if err == nil {
			gotFile = header.Filename
			b, _ := io.ReadAll(f)
			gotFileContent = string(b)
			f.Close()
		}
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.PostForm(context.Background(), "/registrar-requerimiento",
		map[string]string{"vid": "vid-7"},
		[]FilePart{{Field: "nota_voz", Filename: "nota.webm", Reader: strings.NewReader("audio-bytes")}},
		nil)
	if err != nil {
		t.Fatalf("post form: %v", err)
	}
	if gotField != "vid-7" {
		t.Fatalf("field missing: %q", gotField)
	}
	if gotFile != "nota.webm" || gotFileContent != "audio-bytes" {
		t.Fatalf("file part wrong: %q %q", gotFile, gotFileContent)
	}
}

func TestDecodesJSONResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"uid":"u1","email":"a@b.co"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	var out struct {
		UID   string `json:"uid"`
		Email string `json:"email"`
	}
	if err := c.Post(context.Background(), "/auth/validate-session", struct{}{}, &out); err != nil {
		t.Fatalf("post: %v", err)
	}
	if out.UID != "u1" || out.Email != "a@b.co" {
		t.Fatalf("decode wrong: %+v", out)
	}
}
