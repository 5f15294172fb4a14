package geo

import (
	"context"
	"errors"
	"testing"
)

func TestFixedLocator(t *testing.T) {
	l := Fixed{Coords: Coordinates{Latitude: 3.451647, Longitude: -76.531985}}
	c, err := l.CurrentPosition(context.Background())
	if err != nil {
		t.Fatalf("current position: %v", err)
	}
	if got := Format(c); got != "3.451647, -76.531985" {
		t.Fatalf("format wrong: %q", got)
	}
}

func TestUnavailableLocator(t *testing.T) {
	_, err := Unavailable{}.CurrentPosition(context.Background())
	var geoErr *Error
	if !errors.As(err, &geoErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if geoErr.Cause != CausePositionUnavailable {
		t.Fatalf("cause wrong: %d", geoErr.Cause)
	}
	if geoErr.Error() != "Información de ubicación no disponible." {
		t.Fatalf("message wrong: %q", geoErr.Error())
	}
}

func TestErrorMessagesPerCause(t *testing.T) {
	cases := map[Cause]string{
		CausePermissionDenied: "Permiso de ubicación denegado. Por favor, habilite la ubicación en su dispositivo.",
		CauseTimeout:          "La solicitud de ubicación expiró.",
		Cause(99):             "Error al obtener ubicación",
	}
	for cause, want := range cases {
		if got := (&Error{Cause: cause}).Error(); got != want {
			t.Errorf("cause %d: %q, want %q", cause, got, want)
		}
	}
}
