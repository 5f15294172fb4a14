package domain

import "encoding/json"

// Wire shapes for the two backend services. Field names on the wire are
// the backend's contract and stay as-is.

// RegisterVisitPayload is the form body for POST /registrar-visita/.
type RegisterVisitPayload struct {
	Name         string `json:"nombre_up"`
	Detail       string `json:"nombre_up_detalle"`
	Neighborhood string `json:"barrio_vereda"`
	District     string `json:"comuna_corregimiento"`
	Date         string `json:"fecha_visita"`
}

// VisitResponse is the loosely-shaped acknowledgment from visit registration.
type VisitResponse struct {
	ID      int64  `json:"id,omitempty"`
	VID     string `json:"vid,omitempty"`
	Message string `json:"message,omitempty"`
}

// Report is a filed visit report from GET /grupo-operativo/reportes.
type Report struct {
	ReportID     int64  `json:"reporte_id"`
	Name         string `json:"nombre_up"`
	Detail       string `json:"nombre_up_detalle"`
	Neighborhood string `json:"barrio_vereda"`
	District     string `json:"comuna_corregimiento"`
	Date         string `json:"fecha_visita"`
	CreatedAt    string `json:"created_at,omitempty"`
}

// DelegateAttendancePayload is the form body for POST /registrar-asistencia-delegado.
type DelegateAttendancePayload struct {
	VID        string `json:"vid"`
	DelegateID string `json:"id_acompanante"`
	FullName   string `json:"nombre_completo"`
	Role       string `json:"rol"`
	AgencyName string `json:"nombre_centro_gestor"`
	Phone      string `json:"telefono"`
	Email      string `json:"email"`
	Latitude   string `json:"latitud"`
	Longitude  string `json:"longitud"`
}

// CommunityAttendancePayload is the form body for POST /registrar-asistencia-comunidad.
type CommunityAttendancePayload struct {
	VID          string `json:"vid"`
	AttendeeID   string `json:"id_asistente_comunidad"`
	FullName     string `json:"nombre_completo"`
	Role         string `json:"rol_comunidad"`
	Address      string `json:"direccion"`
	Neighborhood string `json:"barrio_vereda"`
	District     string `json:"comuna_corregimiento"`
	Phone        string `json:"telefono"`
	Email        string `json:"email"`
	Latitude     string `json:"latitud"`
	Longitude    string `json:"longitud"`
}

// RequirementSubmission is the multipart body for POST /registrar-requerimiento.
// The optional voice note travels as a file part named nota_voz.
type RequirementSubmission struct {
	VID             string `json:"vid"`
	RequesterAgency string `json:"centro_gestor_solicitante"`
	RequesterName   string `json:"solicitante_contacto"`
	Requirement     string `json:"requerimiento"`
	Notes           string `json:"observaciones"`
	Address         string `json:"direccion"`
	Neighborhood    string `json:"barrio_vereda"`
	District        string `json:"comuna_corregimiento"`
	Latitude        string `json:"latitud"`
	Longitude       string `json:"longitud"`
	Phone           string `json:"telefono"`
	RequesterEmail  string `json:"email_solicitante"`
	Assignees       string `json:"organismos_encargados"`
	VoiceNoteName   string `json:"-"`
}

// Profile is the authenticated user as held by the session store.
type Profile struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName,omitempty"`
	Role        string `json:"role,omitempty"`
	AgencyName  string `json:"nombre_centro_gestor,omitempty"`
	Token       string `json:"token"`
}

// ValidateSessionResponse is the backend reply to POST /auth/validate-session.
// Extra carries any fields outside the allow-listed mapping so callers can
// log what the backend started sending.
type ValidateSessionResponse struct {
	UID         string         `json:"uid"`
	Email       string         `json:"email"`
	Role        string         `json:"role,omitempty"`
	DisplayName string         `json:"displayName,omitempty"`
	AgencyName  string         `json:"nombre_centro_gestor,omitempty"`
	Extra       map[string]any `json:"-"`
}

// UnmarshalJSON keeps the allow-listed fields typed and collects the rest
// into Extra instead of letting them merge into the profile.
func (v *ValidateSessionResponse) UnmarshalJSON(data []byte) error {
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	take := func(key string, dst *string) {
		if b, ok := raw[key]; ok {
			_ = json.Unmarshal(b, dst)
			delete(raw, key)
		}
	}
	take("uid", &v.UID)
	take("email", &v.Email)
	take("role", &v.Role)
	take("displayName", &v.DisplayName)
	take("nombre_centro_gestor", &v.AgencyName)
	if len(raw) > 0 {
		v.Extra = make(map[string]any, len(raw))
		for k, b := range raw {
			var val any
			_ = json.Unmarshal(b, &val)
			v.Extra[k] = val
		}
	}
	return nil
}

// RegisterUserPayload is the JSON body for POST /auth/register.
type RegisterUserPayload struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	FullName   string `json:"full_name"`
	Cellphone  string `json:"cellphone"`
	AgencyName string `json:"nombre_centro_gestor"`
}

// ChangePasswordPayload is the form body for POST /auth/change-password.
type ChangePasswordPayload struct {
	UID         string `json:"uid"`
	NewPassword string `json:"new_password"`
}
