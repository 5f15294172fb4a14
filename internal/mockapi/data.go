package mockapi

import "visitas360/internal/domain"

func seedProjectUnits() []domain.ProjectUnit {
	return []domain.ProjectUnit{
		{
			UPID:             "INF-BPIN-2020760010690-0019",
			Name:             "Vía Rural",
			Detail:           "Mezcla Caliente",
			FacilityType:     "Vias",
			InterventionType: "Recarpeteo",
			Status:           "Terminado",
			Progress:         "100.0",
			BaseBudget:       "30159728.68",
			Address:          "Avenida 43 Con Calle 5",
			Geometry:         &domain.Geometry{Type: "Point", Coordinates: "-76.61724315,3.42564098"},
		},
		{
			UPID:             "INF-BPIN-2020760010690-0050",
			Name:             "Vía Rural",
			Detail:           "Mezcla Caliente",
			FacilityType:     "Vias",
			InterventionType: "Fresado",
			Status:           "Terminado",
			Progress:         "100.0",
			BaseBudget:       "89641415.68",
			Address:          "Via Guacas-Golondrinas - La Paz",
			Geometry:         &domain.Geometry{Type: "Point", Coordinates: "-76.53267439,3.47536991"},
		},
		{
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
		{
			UPID:             "INF-BPIN-2021760010234-0003",
			Name:             "Parque Recreativo",
			Detail:           "Adecuación integral",
			FacilityType:     "Parques",
			InterventionType: "Mejoramiento",
			Status:           "En Ejecución",
			Progress:         "62.5",
			BaseBudget:       "154200000.00",
			Address:          "Carrera 50 con Calle 13",
		},
		{
			UPID:             "INF-BPIN-2021760010234-0011",
			Name:             "Institución Educativa",
			Detail:           "Cubierta y baterías sanitarias",
			FacilityType:     "Educación",
			InterventionType: "Reforzamiento",
			Status:           "En Ejecución",
			Progress:         "38.0",
			BaseBudget:       "480700000.00",
			Address:          "Vereda La Paz km 3",
		},
	}
}

func seedReports() []domain.Report {
	return []domain.Report{
		{
			ReportID:     100,
			Name:         "Vía Rural",
			Detail:       "Mezcla Caliente",
			Neighborhood: "Los Andes",
			District:     "Comuna 19",
			Date:         "2026-02-01",
			CreatedAt:    "2026-02-01T18:00:00Z",
		},
	}
}
