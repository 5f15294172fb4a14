package tracking

import "visitas360/internal/domain"

// Reference working set used until the backend exposes the seguimiento
// endpoints. Loaded via Store.Load by the CLI when no snapshot exists.

// SeedVisits returns the reference scheduled visits.
func SeedVisits() []domain.Visit {
	return []domain.Visit{
		{
			ID:   "vis-001",
			UPID: "INF-BPIN-2020760010690-0019",
			Unit: domain.ProjectUnit{
				UPID:             "INF-BPIN-2020760010690-0019",
				Name:             "Vía Rural",
				Detail:           "Mezcla Caliente",
				FacilityType:     "Vias",
				InterventionType: "Recarpeteo",
				Status:           "Terminado",
				Progress:         "100.0",
				BaseBudget:       "30159728.68",
				Address:          "Avenida 43 Con Calle 5",
			},
			Date:      "2026-02-15",
			StartTime: "09:00",
			EndTime:   "12:00",
			Status:    domain.VisitScheduled,
			Collaborators: []domain.Collaborator{
				{ID: "col-001", Name: "María Fernanda López", Email: "mlopez@cali.gov.co", Phone: "3101234567", Role: "Coordinadora de Visitas", Agency: "Infraestructura"},
				{ID: "col-002", Name: "Carlos Andrés Muñoz", Email: "cmunoz@cali.gov.co", Phone: "3209876543", Role: "Inspector de Obra", Agency: "Infraestructura"},
				{ID: "col-004", Name: "Jorge Enrique Silva", Email: "jsilva@cali.gov.co", Phone: "3183456789", Role: "Gestor Social", Agency: "Bienestar Social"},
			},
			Notes:     "Verificar estado final de la vía después de recarpeteo",
			CreatedAt: "2026-02-08T10:00:00Z",
			UpdatedAt: "2026-02-08T10:00:00Z",
		},
		{
			ID:   "vis-002",
			UPID: "INF-BPIN-2020760010690-0050",
			Unit: domain.ProjectUnit{
				UPID:             "INF-BPIN-2020760010690-0050",
				Name:             "Vía Rural",
				Detail:           "Mezcla Caliente",
				FacilityType:     "Vias",
				InterventionType: "Fresado",
				Status:           "Terminado",
				Progress:         "100.0",
				BaseBudget:       "89641415.68",
				Address:          "Via Guacas-Golondrinas - La Paz",
			},
			Date:      "2026-02-12",
			StartTime: "08:00",
			EndTime:   "11:00",
			Status:    domain.VisitInProgress,
			Collaborators: []domain.Collaborator{
				{ID: "col-003", Name: "Ana Patricia Vargas", Email: "avargas@cali.gov.co", Phone: "3157894561", Role: "Ingeniera Civil", Agency: "Infraestructura"},
				{ID: "col-005", Name: "Diana Marcela Rojas", Email: "drojas@cali.gov.co", Phone: "3124567890", Role: "Arquitecta", Agency: "Planeación"},
				{ID: "col-006", Name: "Andrés Felipe García", Email: "agarcia@cali.gov.co", Phone: "3176543210", Role: "Técnico Ambiental", Agency: "DAGMA"},
			},
			Notes:     "Visita de verificación de fresado completado",
			CreatedAt: "2026-02-05T14:00:00Z",
			UpdatedAt: "2026-02-10T08:00:00Z",
		},
		{
			ID:   "vis-003",
			UPID: "INF-BPIN-2020760010690-0065",
			Unit: domain.ProjectUnit{
				UPID:             "INF-BPIN-2020760010690-0065",
				Name:             "Vía Rural",
				Detail:           "Mezcla Caliente",
				FacilityType:     "Vias",
				InterventionType: "Fresado",
				Status:           "Terminado",
				Progress:         "100.0",
				BaseBudget:       "5654949.12",
				Address:          "Cabecera Los Andes",
			},
			Date:      "2026-02-01",
			StartTime: "10:00",
			EndTime:   "13:00",
			Status:    domain.VisitCompleted,
			Collaborators: []domain.Collaborator{
				{ID: "col-001", Name: "María Fernanda López", Email: "mlopez@cali.gov.co", Phone: "3101234567", Role: "Coordinadora de Visitas", Agency: "Infraestructura"},
				{ID: "col-007", Name: "Laura Sofía Martínez", Email: "lmartinez@cali.gov.co", Phone: "3141234567", Role: "Supervisora", Agency: "Infraestructura"},
				{ID: "col-008", Name: "Roberto Carlos Peña", Email: "rpena@cali.gov.co", Phone: "3198765432", Role: "Interventor", Agency: "Infraestructura"},
			},
			Notes:     "Visita completada - se generaron 4 requerimientos",
			CreatedAt: "2026-01-28T09:00:00Z",
			UpdatedAt: "2026-02-01T14:00:00Z",
		},
	}
}

// SeedRequirements returns the reference requirements with their audit
// history.
func SeedRequirements() []domain.Requirement {
	torres := domain.Requester{
		ID: "sol-001", FullName: "Juana Esperanza Torres", NationalID: "31456789",
		Phone: "3201234567", Email: "juanatorres@gmail.com", Address: "Calle 15 #45-23",
		Neighborhood: "Los Andes", District: "Comuna 19",
	}
	return []domain.Requirement{
		{
			ID:          "req-001",
			VisitID:     "vis-003",
			Requester:   torres,
			Agencies:    []string{"EMCALI", "DAGMA"},
			Description: "Se requiere revisión del alcantarillado que quedó afectado por las obras de la vía. Adicionalmente hay árboles que fueron dañados y necesitan ser reemplazados.",
			Notes:       "La señora indica que lleva 3 meses con el problema de alcantarillado",
			Address:     "Calle 15 #45-23",
			Latitude:    "3.42564098",
			Longitude:   "-76.61724315",
			Photos:      []string{"https://placehold.co/400x300?text=Alcantarillado", "https://placehold.co/400x300?text=Arbol+Dañado"},
			Status:      domain.StatusInManagement,
			Handler:     "Carlos Andrés Muñoz",
			LiaisonID:   "enl-001",
			LiaisonName: "Héctor Fabio Ramírez",
			Progress:    45,
			Priority:    domain.PriorityHigh,
			History: []domain.HistoryEntry{
				{
					ID: "hist-001", Date: "2026-02-01T14:30:00Z", Author: "María Fernanda López",
					Description: "Requerimiento registrado durante visita de verificación",
					PrevStatus:  domain.StatusNew, NewStatus: domain.StatusNew,
					Evidence: []domain.Evidence{}, Progress: 0,
				},
				{
					ID: "hist-002", Date: "2026-02-03T09:15:00Z", Author: "María Fernanda López",
					Description: "Se radicó el caso ante EMCALI con número 2026-02-R001 y ante DAGMA con radicado AMD-456",
					PrevStatus:  domain.StatusNew, NewStatus: domain.StatusFiled,
					Evidence: []domain.Evidence{
						{ID: "ev-001", Kind: domain.EvidenceDocument, URL: "#", Description: "Radicado EMCALI 2026-02-R001", Date: "2026-02-03"},
					},
					Progress: 15,
				},
				{
					ID: "hist-003", Date: "2026-02-06T11:00:00Z", Author: "Carlos Andrés Muñoz",
					Description: "Se comunicó con el ingeniero de EMCALI responsable de la zona. Programan visita técnica para el 12 de febrero.",
					PrevStatus:  domain.StatusFiled, NewStatus: domain.StatusInManagement,
					Evidence: []domain.Evidence{}, Progress: 45,
				},
			},
			CreatedAt: "2026-02-01T14:30:00Z",
			UpdatedAt: "2026-02-06T11:00:00Z",
		},
		{
			ID:          "req-002",
			VisitID:     "vis-003",
			Requester:   torres,
			Agencies:    []string{"Secretaría del Deporte y la Recreación"},
			Description: "El parque infantil cercano a la obra quedó sin mantenimiento. Los juegos están oxidados y representan peligro para los niños.",
			Notes:       "La comunidad solicita intervención integral del espacio deportivo",
			Address:     "Calle 15 #45-23 (Parque aledaño)",
			Latitude:    "3.42570000",
			Longitude:   "-76.61730000",
			Photos:      []string{"https://placehold.co/400x300?text=Parque+Deteriorado"},
			Status:      domain.StatusFiled,
			Progress:    15,
			Priority:    domain.PriorityMedium,
			History: []domain.HistoryEntry{
				{
					ID: "hist-004", Date: "2026-02-01T15:00:00Z", Author: "María Fernanda López",
					Description: "Requerimiento registrado - misma solicitante, diferente necesidad",
					PrevStatus:  domain.StatusNew, NewStatus: domain.StatusNew,
					Evidence: []domain.Evidence{}, Progress: 0,
				},
				{
					ID: "hist-005", Date: "2026-02-04T10:00:00Z", Author: "Jorge Enrique Silva",
					Description: "Radicado ante Sec. de Deporte y Recreación. Número RAD-DEP-2026-089",
					PrevStatus:  domain.StatusNew, NewStatus: domain.StatusFiled,
					Evidence: []domain.Evidence{}, Progress: 15,
				},
			},
			CreatedAt: "2026-02-01T15:00:00Z",
			UpdatedAt: "2026-02-04T10:00:00Z",
		},
		{
			ID:      "req-003",
			VisitID: "vis-003",
			Requester: domain.Requester{
				ID: "sol-002", FullName: "Pedro Antonio Méndez", NationalID: "16789456",
				Phone: "3159876543", Email: "pedro.mendez@hotmail.com", Address: "Carrera 50 #13-10",
				Neighborhood: "Los Andes", District: "Comuna 19",
			},
			Agencies:    []string{"Secretaría de Movilidad"},
			Description: "Falta señalización vial en el cruce de la Carrera 50 con Calle 13. Después de la obra no se reinstalaron las señales de tránsito.",
			Notes:       "Ha habido 2 accidentes menores en la última semana por falta de señalización",
			Address:     "Carrera 50 #13-10",
			Latitude:    "3.42600000",
			Longitude:   "-76.61750000",
			Photos:      []string{"https://placehold.co/400x300?text=Sin+Señalizacion"},
			Status:      domain.StatusResolved,
			Handler:     "Ana Patricia Vargas",
			LiaisonID:   "enl-010",
			LiaisonName: "Oscar Iván Londoño",
			Progress:    100,
			Priority:    domain.PriorityUrgent,
			History: []domain.HistoryEntry{
				{
					ID: "hist-006", Date: "2026-02-01T15:30:00Z", Author: "Laura Sofía Martínez",
					Description: "Requerimiento urgente registrado en campo",
					PrevStatus:  domain.StatusNew, NewStatus: domain.StatusNew,
					Evidence: []domain.Evidence{}, Progress: 0,
				},
				{
					ID: "hist-007", Date: "2026-02-02T08:00:00Z", Author: "Ana Patricia Vargas",
					Description: "Se escaló como urgente a Sec. de Movilidad por riesgo de accidentalidad",
					PrevStatus:  domain.StatusNew, NewStatus: domain.StatusFiled,
					Evidence: []domain.Evidence{}, Progress: 20,
				},
				{
					ID: "hist-008", Date: "2026-02-03T14:00:00Z", Author: "Ana Patricia Vargas",
					Description: "Movilidad envió cuadrilla de señalización. Se instalaron 3 señales de pare y demarcación de paso peatonal.",
					PrevStatus:  domain.StatusFiled, NewStatus: domain.StatusInProcess,
					Evidence: []domain.Evidence{
						{ID: "ev-002", Kind: domain.EvidencePhoto, URL: "https://placehold.co/400x300?text=Señales+Instaladas", Description: "Señalización reinstalada", Date: "2026-02-03"},
					},
					Progress: 80,
				},
				{
					ID: "hist-009", Date: "2026-02-05T16:00:00Z", Author: "Ana Patricia Vargas",
					Description: "Señalización completa verificada en sitio. Caso resuelto satisfactoriamente.",
					PrevStatus:  domain.StatusInProcess, NewStatus: domain.StatusResolved,
					Evidence: []domain.Evidence{
						{ID: "ev-003", Kind: domain.EvidencePhoto, URL: "https://placehold.co/400x300?text=Verificacion+Final", Description: "Verificación final en sitio", Date: "2026-02-05"},
					},
					Progress: 100,
				},
			},
			CreatedAt: "2026-02-01T15:30:00Z",
			UpdatedAt: "2026-02-05T16:00:00Z",
		},
		{
			ID:      "req-004",
			VisitID: "vis-002",
			Requester: domain.Requester{
				ID: "sol-003", FullName: "Rosa Elena Caicedo", NationalID: "66123456",
				Phone: "3187654321", Email: "rosa.caicedo@gmail.com", Address: "Vereda La Paz - Sector Central",
				Neighborhood: "La Paz", District: "Corregimiento La Paz",
			},
			Agencies:    []string{"EMCALI", "Secretaría de Infraestructura"},
			Description: "El muro de contención al lado de la vía nueva presenta grietas. Además no hay servicio de agua potable en la zona desde hace 1 semana.",
			Notes:       "Situación de riesgo para 15 familias del sector",
			Address:     "Vereda La Paz km 3",
			Latitude:    "3.47536991",
			Longitude:   "-76.53267439",
			Photos:      []string{"https://placehold.co/400x300?text=Muro+Agrietado", "https://placehold.co/400x300?text=Sin+Agua"},
			Status:      domain.StatusAssigned,
			Handler:     "Roberto Carlos Peña",
			LiaisonID:   "enl-012",
			LiaisonName: "William Alberto Cortés",
			Progress:    30,
			Priority:    domain.PriorityHigh,
			History: []domain.HistoryEntry{
				{
					ID: "hist-010", Date: "2026-02-10T09:00:00Z", Author: "Ana Patricia Vargas",
					Description: "Requerimiento registrado durante visita en curso",
					PrevStatus:  domain.StatusNew, NewStatus: domain.StatusNew,
					Evidence: []domain.Evidence{}, Progress: 0,
				},
				{
					ID: "hist-011", Date: "2026-02-10T11:30:00Z", Author: "Diana Marcela Rojas",
					Description: "Se asignó al interventor Roberto Peña para seguimiento integral del caso",
					PrevStatus:  domain.StatusNew, NewStatus: domain.StatusAssigned,
					Evidence: []domain.Evidence{}, Progress: 30,
				},
			},
			CreatedAt: "2026-02-10T09:00:00Z",
			UpdatedAt: "2026-02-10T11:30:00Z",
		},
		{
			ID:      "req-005",
			VisitID: "vis-003",
			Requester: domain.Requester{
				ID: "sol-004", FullName: "Miguel Ángel Ospina", NationalID: "16234567",
				Phone: "3141112233", Email: "mospina@yahoo.com", Address: "Calle 14 #48-05",
				Neighborhood: "Los Andes", District: "Comuna 19",
			},
			Agencies:    []string{"Secretaría de Cultura", "Secretaría del Deporte y la Recreación"},
			Description: "Solicitar intervención conjunta para la recuperación del mural comunitario y la cancha del barrio que fueron afectados durante las obras.",
			Notes:       "El mural fue pintado por jóvenes del programa \"Cali Cultura\" hace 2 años",
			Address:     "Calle 14 #48-05",
			Latitude:    "3.42580000",
			Longitude:   "-76.61710000",
			Photos:      []string{"https://placehold.co/400x300?text=Mural+Dañado", "https://placehold.co/400x300?text=Cancha+Afectada"},
			Status:      domain.StatusNew,
			Progress:    0,
			Priority:    domain.PriorityMedium,
			History: []domain.HistoryEntry{
				{
					ID: "hist-012", Date: "2026-02-01T16:00:00Z", Author: "Jorge Enrique Silva",
					Description: "Registrado en campo. El solicitante pide intervención cultural y deportiva.",
					PrevStatus:  domain.StatusNew, NewStatus: domain.StatusNew,
					Evidence: []domain.Evidence{}, Progress: 0,
				},
			},
			CreatedAt: "2026-02-01T16:00:00Z",
			UpdatedAt: "2026-02-01T16:00:00Z",
		},
	}
}
