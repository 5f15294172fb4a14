package visitsapi

import (
	"context"
	"io"
	"path/filepath"
	"strconv"

	"visitas360/internal/apiclient"
	"visitas360/internal/domain"
)

// Service wraps the backend REST surface with typed calls. Visits talks
// to the visits/auth service, Projects to the project-units service;
// both carry the same bearer token once the gateway logs in.
type Service struct {
	Visits   *apiclient.Client
	Projects *apiclient.Client
}

// New builds a service over the two backend clients.
func New(visits, projects *apiclient.Client) *Service {
	return &Service{Visits: visits, Projects: projects}
}

type projectUnitsResponse struct {
	Success bool                 `json:"success"`
	Data    []domain.ProjectUnit `json:"data"`
}

// ProjectUnits fetches the project units available for field visits.
// A missing data array decodes as an empty slice, not an error.
func (s *Service) ProjectUnits(ctx context.Context) ([]domain.ProjectUnit, error) {
	var resp projectUnitsResponse
	if err := s.Projects.Get(ctx, "/unidades-proyecto/init-360", nil, &resp); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return []domain.ProjectUnit{}, nil
	}
	return resp.Data, nil
}

// RegisterVisit files a visit record. The endpoint takes a
// form-urlencoded body, not JSON.
func (s *Service) RegisterVisit(ctx context.Context, p domain.RegisterVisitPayload) (domain.VisitResponse, error) {
	data := map[string]string{
		"nombre_up":            p.Name,
		"nombre_up_detalle":    p.Detail,
		"barrio_vereda":        p.Neighborhood,
		"comuna_corregimiento": p.District,
		"fecha_visita":         p.Date,
	}
	var resp domain.VisitResponse
	err := s.Visits.PostURLEncoded(ctx, "/registrar-visita/", data, &resp)
	return resp, err
}

// Reports lists the operative group's filed visit reports.
func (s *Service) Reports(ctx context.Context) ([]domain.Report, error) {
	var reports []domain.Report
	if err := s.Visits.Get(ctx, "/grupo-operativo/reportes", nil, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

// DeleteReport removes one filed report by numeric id.
func (s *Service) DeleteReport(ctx context.Context, reportID int64) error {
	params := map[string]string{"reporte_id": strconv.FormatInt(reportID, 10)}
	return s.Visits.Delete(ctx, "/grupo-operativo/eliminar-reporte", params, nil)
}

// RegisterDelegateAttendance records an institutional delegate's
// attendance at a visit.
func (s *Service) RegisterDelegateAttendance(ctx context.Context, p domain.DelegateAttendancePayload) error {
	data := map[string]string{
		"vid":                  p.VID,
		"id_acompanante":       p.DelegateID,
		"nombre_completo":      p.FullName,
		"rol":                  p.Role,
		"nombre_centro_gestor": p.AgencyName,
		"telefono":             p.Phone,
		"email":                p.Email,
		"latitud":              p.Latitude,
		"longitud":             p.Longitude,
	}
	return s.Visits.PostURLEncoded(ctx, "/registrar-asistencia-delegado", data, nil)
}

// RegisterCommunityAttendance records a community member's attendance
// at a visit.
func (s *Service) RegisterCommunityAttendance(ctx context.Context, p domain.CommunityAttendancePayload) error {
	data := map[string]string{
		"vid":                    p.VID,
		"id_asistente_comunidad": p.AttendeeID,
		"nombre_completo":        p.FullName,
		"rol_comunidad":          p.Role,
		"direccion":              p.Address,
		"barrio_vereda":          p.Neighborhood,
		"comuna_corregimiento":   p.District,
		"telefono":               p.Phone,
		"email":                  p.Email,
		"latitud":                p.Latitude,
		"longitud":               p.Longitude,
	}
	return s.Visits.PostURLEncoded(ctx, "/registrar-asistencia-comunidad", data, nil)
}

// RegisterRequirement submits a citizen requirement as multipart form
// data. voiceNote may be nil; when set it travels as the nota_voz file
// part under the base name of p.VoiceNoteName, so a local path never
// leaks onto the wire.
func (s *Service) RegisterRequirement(ctx context.Context, p domain.RequirementSubmission, voiceNote io.Reader) error {
	fields := map[string]string{
		"vid":                       p.VID,
		"centro_gestor_solicitante": p.RequesterAgency,
		"solicitante_contacto":      p.RequesterName,
		"requerimiento":             p.Requirement,
		"observaciones":             p.Notes,
		"direccion":                 p.Address,
		"barrio_vereda":             p.Neighborhood,
		"comuna_corregimiento":      p.District,
		"latitud":                   p.Latitude,
		"longitud":                  p.Longitude,
		"telefono":                  p.Phone,
		"email_solicitante":         p.RequesterEmail,
		"organismos_encargados":     p.Assignees,
	}
	var files []apiclient.FilePart
	if voiceNote != nil {
		name := p.VoiceNoteName
		if name == "" {
			name = "nota_voz.webm"
		}
		files = append(files, apiclient.FilePart{Field: "nota_voz", Filename: filepath.Base(name), Reader: voiceNote})
	}
	return s.Visits.PostForm(ctx, "/registrar-requerimiento", fields, files, nil)
}
