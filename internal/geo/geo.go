package geo

import (
	"context"
	"fmt"
)

// Coordinates is a GPS fix.
type Coordinates struct {
	Latitude  float64 `json:"latitud"`
	Longitude float64 `json:"longitud"`
	Accuracy  float64 `json:"accuracy,omitempty"`
}

// Cause classifies why a position could not be obtained.
type Cause int

const (
	CausePermissionDenied Cause = iota + 1
	CausePositionUnavailable
	CauseTimeout
)

// Error is a device/permission-level geolocation failure.
type Error struct {
	Cause Cause
}

func (e *Error) Error() string {
	switch e.Cause {
	case CausePermissionDenied:
		return "Permiso de ubicación denegado. Por favor, habilite la ubicación en su dispositivo."
	case CausePositionUnavailable:
		return "Información de ubicación no disponible."
	case CauseTimeout:
		return "La solicitud de ubicación expiró."
	}
	return "Error al obtener ubicación"
}

// Locator obtains the current device position. The real implementation
// lives outside this module (a device capability); this boundary exists
// so payload builders can be fed coordinates from anywhere.
type Locator interface {
	CurrentPosition(ctx context.Context) (Coordinates, error)
}

// Fixed is a Locator that always returns the same coordinates, for CLI
// flags and tests.
type Fixed struct {
	Coords Coordinates
}

func (f Fixed) CurrentPosition(context.Context) (Coordinates, error) {
	return f.Coords, nil
}

// Unavailable is a Locator with no position source.
type Unavailable struct{}

func (Unavailable) CurrentPosition(context.Context) (Coordinates, error) {
	return Coordinates{}, &Error{Cause: CausePositionUnavailable}
}

// Format renders coordinates for display, six decimals like the field app.
func Format(c Coordinates) string {
	return fmt.Sprintf("%.6f, %.6f", c.Latitude, c.Longitude)
}
