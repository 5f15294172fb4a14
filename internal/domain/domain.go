package domain

// VisitStatus is the lifecycle state of a scheduled visit.
type VisitStatus string

const (
	VisitScheduled  VisitStatus = "programada"
	VisitInProgress VisitStatus = "en-curso"
	VisitCompleted  VisitStatus = "finalizada"
	VisitCancelled  VisitStatus = "cancelada"
)

// Terminal reports whether no further visit transitions are expected.
func (s VisitStatus) Terminal() bool {
	return s == VisitCompleted || s == VisitCancelled
}

// RequirementStatus is the kanban state of a requirement.
type RequirementStatus string

const (
	StatusNew          RequirementStatus = "nuevo"
	StatusFiled        RequirementStatus = "radicado"
	StatusInManagement RequirementStatus = "en-gestion"
	StatusAssigned     RequirementStatus = "asignado"
	StatusInProcess    RequirementStatus = "en-proceso"
	StatusResolved     RequirementStatus = "resuelto"
	StatusClosed       RequirementStatus = "cerrado"
	StatusCancelled    RequirementStatus = "cancelado"
)

// RequirementStatuses lists every status in kanban column order.
var RequirementStatuses = []RequirementStatus{
	StatusNew,
	StatusFiled,
	StatusInManagement,
	StatusAssigned,
	StatusInProcess,
	StatusResolved,
	StatusClosed,
	StatusCancelled,
}

// Terminal reports whether the status accepts no nominal follow-up.
func (s RequirementStatus) Terminal() bool {
	return s == StatusClosed || s == StatusCancelled
}

// Valid reports whether s belongs to the known status domain.
func (s RequirementStatus) Valid() bool {
	for _, known := range RequirementStatuses {
		if s == known {
			return true
		}
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "baja"
	PriorityMedium Priority = "media"
	PriorityHigh   Priority = "alta"
	PriorityUrgent Priority = "urgente"
)

type Geometry struct {
	Coordinates string `json:"coordinates"`
	Type        string `json:"type"`
}

// ProjectUnit is a unit of municipal infrastructure work, sourced from
// GET /unidades-proyecto/init-360 and immutable once fetched.
type ProjectUnit struct {
	UPID             string    `json:"upid"`
	Name             string    `json:"nombre_up"`
	Detail           string    `json:"nombre_up_detalle"`
	FacilityType     string    `json:"tipo_equipamiento"`
	InterventionType string    `json:"tipo_intervencion"`
	Status           string    `json:"estado"`
	Progress         string    `json:"avance_obra"`
	BaseBudget       string    `json:"presupuesto_base"`
	Geometry         *Geometry `json:"geometry,omitempty"`
	Address          string    `json:"direccion"`
}

type Collaborator struct {
	ID     string `json:"id"`
	Name   string `json:"nombre"`
	Email  string `json:"email"`
	Phone  string `json:"telefono"`
	Role   string `json:"cargo"`
	Agency string `json:"centro_gestor"`
}

// Requester is the denormalized contact snapshot of the citizen who
// raised a requirement.
type Requester struct {
	ID           string `json:"id"`
	FullName     string `json:"nombre_completo"`
	NationalID   string `json:"cedula"`
	Phone        string `json:"telefono"`
	Email        string `json:"email"`
	Address      string `json:"direccion"`
	Neighborhood string `json:"barrio_vereda"`
	District     string `json:"comuna_corregimiento"`
}

type Visit struct {
	ID            string         `json:"id"`
	UPID          string         `json:"upid"`
	Unit          ProjectUnit    `json:"unidad_proyecto"`
	Date          string         `json:"fecha_visita"`
	StartTime     string         `json:"hora_inicio,omitempty"`
	EndTime       string         `json:"hora_fin,omitempty"`
	Status        VisitStatus    `json:"estado"`
	Collaborators []Collaborator `json:"colaboradores"`
	Notes         string         `json:"observaciones,omitempty"`
	CreatedAt     string         `json:"created_at"`
	UpdatedAt     string         `json:"updated_at"`
}

type EvidenceKind string

const (
	EvidencePhoto    EvidenceKind = "foto"
	EvidenceDocument EvidenceKind = "documento"
	EvidenceNote     EvidenceKind = "nota"
)

type Evidence struct {
	ID          string       `json:"id"`
	Kind        EvidenceKind `json:"tipo"`
	URL         string       `json:"url"`
	Description string       `json:"descripcion"`
	Date        string       `json:"fecha"`
}

// HistoryEntry is one immutable audit record of a status/progress change.
// The requirement's current estado/porcentaje_avance are denormalized
// copies of the latest entry's estado_nuevo/porcentaje_avance.
type HistoryEntry struct {
	ID          string            `json:"id"`
	Date        string            `json:"fecha"`
	Author      string            `json:"autor"`
	Description string            `json:"descripcion"`
	PrevStatus  RequirementStatus `json:"estado_anterior"`
	NewStatus   RequirementStatus `json:"estado_nuevo"`
	Evidence    []Evidence        `json:"evidencias"`
	Progress    int               `json:"porcentaje_avance"`
}

type Requirement struct {
	ID             string            `json:"id"`
	VisitID        string            `json:"visita_id"`
	Requester      Requester         `json:"solicitante"`
	Agencies       []string          `json:"centros_gestores"`
	Description    string            `json:"descripcion"`
	Notes          string            `json:"observaciones"`
	Address        string            `json:"direccion"`
	Latitude       string            `json:"latitud"`
	Longitude      string            `json:"longitud"`
	Photos         []string          `json:"evidencia_fotos"`
	Status         RequirementStatus `json:"estado"`
	Handler        string            `json:"encargado,omitempty"`
	LiaisonID      string            `json:"enlace_id,omitempty"`
	LiaisonName    string            `json:"enlace_nombre,omitempty"`
	Progress       int               `json:"porcentaje_avance"`
	History        []HistoryEntry    `json:"historial"`
	Priority       Priority          `json:"prioridad"`
	ResolutionDate string            `json:"fecha_propuesta_solucion,omitempty"`
	FilingNumber   string            `json:"numero_orfeo,omitempty"`
	FiledDate      string            `json:"fecha_radicado_orfeo,omitempty"`
	FilingDocURL   string            `json:"documento_peticion_url,omitempty"`
	FilingDocName  string            `json:"documento_peticion_nombre,omitempty"`
	CancelReason   string            `json:"motivo_cancelacion,omitempty"`
	CancelDocURL   string            `json:"documento_cancelacion_url,omitempty"`
	CancelDocName  string            `json:"documento_cancelacion_nombre,omitempty"`
	CreatedAt      string            `json:"created_at"`
	UpdatedAt      string            `json:"updated_at"`
}

// LastHistory returns the most recent history entry, or nil when empty.
func (r Requirement) LastHistory() *HistoryEntry {
	if len(r.History) == 0 {
		return nil
	}
	return &r.History[len(r.History)-1]
}

// Liaison is a named contact at a managing agency. Active is a
// soft-delete marker; liaisons are never physically removed.
type Liaison struct {
	ID         string `json:"id"`
	Name       string `json:"nombre"`
	Email      string `json:"email"`
	Phone      string `json:"telefono"`
	Role       string `json:"cargo"`
	AgencyID   string `json:"centro_gestor_id"`
	AgencyName string `json:"centro_gestor_nombre"`
	Department string `json:"dependencia,omitempty"`
	Active     bool   `json:"activo"`
}

// Agency is a managing municipal department or utility.
type Agency struct {
	ID      string `json:"id"`
	Name    string `json:"nombre"`
	Acronym string `json:"sigla"`
	Color   string `json:"color"`
}
