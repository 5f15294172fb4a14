package refdata

import "visitas360/internal/domain"

// Entidades de la alcaldía de Santiago de Cali.
var agencies = []domain.Agency{
	{ID: "emcali", Name: "EMCALI", Acronym: "EMCALI", Color: "#2563eb"},
	{ID: "dagma", Name: "DAGMA", Acronym: "DAGMA", Color: "#16a34a"},
	{ID: "cultura", Name: "Secretaría de Cultura", Acronym: "CULT", Color: "#9333ea"},
	{ID: "deporte", Name: "Secretaría del Deporte y la Recreación", Acronym: "DEP", Color: "#ea580c"},
	{ID: "salud", Name: "Secretaría de Salud Pública", Acronym: "SALUD", Color: "#dc2626"},
	{ID: "movilidad", Name: "Secretaría de Movilidad", Acronym: "MOV", Color: "#0891b2"},
	{ID: "infraestructura", Name: "Secretaría de Infraestructura", Acronym: "INFRA", Color: "#ca8a04"},
	{ID: "vivienda", Name: "Secretaría de Vivienda Social", Acronym: "VIV", Color: "#65a30d"},
	{ID: "edu", Name: "Secretaría de Educación", Acronym: "EDU", Color: "#7c3aed"},
	{ID: "planeacion", Name: "Departamento de Planeación", Acronym: "PLAN", Color: "#be185d"},
	{ID: "gobierno", Name: "Secretaría de Gobierno", Acronym: "GOB", Color: "#475569"},
	{ID: "paz", Name: "Secretaría de Paz y Cultura Ciudadana", Acronym: "PAZ", Color: "#0d9488"},
	{ID: "bienestar", Name: "Secretaría de Bienestar Social", Acronym: "BIEN", Color: "#d946ef"},
	{ID: "tic", Name: "Secretaría de Desarrollo Económico y TIC", Acronym: "TIC", Color: "#6366f1"},
}

var collaborators = []domain.Collaborator{
	{ID: "col-001", Name: "María Fernanda López", Email: "mlopez@cali.gov.co", Phone: "3101234567", Role: "Coordinadora de Visitas", Agency: "Infraestructura"},
	{ID: "col-002", Name: "Carlos Andrés Muñoz", Email: "cmunoz@cali.gov.co", Phone: "3209876543", Role: "Inspector de Obra", Agency: "Infraestructura"},
	{ID: "col-003", Name: "Ana Patricia Vargas", Email: "avargas@cali.gov.co", Phone: "3157894561", Role: "Ingeniera Civil", Agency: "Infraestructura"},
	{ID: "col-004", Name: "Jorge Enrique Silva", Email: "jsilva@cali.gov.co", Phone: "3183456789", Role: "Gestor Social", Agency: "Bienestar Social"},
	{ID: "col-005", Name: "Diana Marcela Rojas", Email: "drojas@cali.gov.co", Phone: "3124567890", Role: "Arquitecta", Agency: "Planeación"},
	{ID: "col-006", Name: "Andrés Felipe García", Email: "agarcia@cali.gov.co", Phone: "3176543210", Role: "Técnico Ambiental", Agency: "DAGMA"},
	{ID: "col-007", Name: "Laura Sofía Martínez", Email: "lmartinez@cali.gov.co", Phone: "3141234567", Role: "Supervisora", Agency: "Infraestructura"},
	{ID: "col-008", Name: "Roberto Carlos Peña", Email: "rpena@cali.gov.co", Phone: "3198765432", Role: "Interventor", Agency: "Infraestructura"},
}

var liaisons = []domain.Liaison{
	{ID: "enl-001", Name: "Héctor Fabio Ramírez", Email: "hramirez@emcali.com.co", Phone: "3161234567", Role: "Ingeniero de Redes", AgencyID: "emcali", AgencyName: "EMCALI", Department: "Acueducto y Alcantarillado", Active: true},
	{ID: "enl-002", Name: "Patricia Elena Sánchez", Email: "psanchez@emcali.com.co", Phone: "3169876543", Role: "Coordinadora de Zona", AgencyID: "emcali", AgencyName: "EMCALI", Department: "Energía", Active: true},
	{ID: "enl-003", Name: "Julio César Arango", Email: "jarango@emcali.com.co", Phone: "3165551234", Role: "Técnico de Campo", AgencyID: "emcali", AgencyName: "EMCALI", Department: "Telecomunicaciones", Active: false},
	{ID: "enl-004", Name: "Claudia Patricia Henao", Email: "chenao@dagma.gov.co", Phone: "3171234567", Role: "Bióloga Ambiental", AgencyID: "dagma", AgencyName: "DAGMA", Department: "Arborización", Active: true},
	{ID: "enl-005", Name: "Fernando José Castillo", Email: "fcastillo@dagma.gov.co", Phone: "3179876543", Role: "Inspector Ambiental", AgencyID: "dagma", AgencyName: "DAGMA", Department: "Control Ambiental", Active: true},
	{ID: "enl-006", Name: "Valentina Restrepo Gómez", Email: "vrestrepo@cultura.gov.co", Phone: "3181234567", Role: "Gestora Cultural", AgencyID: "cultura", AgencyName: "Secretaría de Cultura", Department: "Patrimonio", Active: true},
	{ID: "enl-007", Name: "Andrés Camilo Mejía", Email: "amejia@deporte.gov.co", Phone: "3189876543", Role: "Coordinador Deportivo", AgencyID: "deporte", AgencyName: "Secretaría del Deporte y la Recreación", Department: "Infraestructura Deportiva", Active: true},
	{ID: "enl-008", Name: "Marcela Viviana Torres", Email: "mtorres@deporte.gov.co", Phone: "3185551234", Role: "Promotora Recreativa", AgencyID: "deporte", AgencyName: "Secretaría del Deporte y la Recreación", Department: "Recreación Comunitaria", Active: true},
	{ID: "enl-009", Name: "Gloria Esperanza Díaz", Email: "gdiaz@salud.gov.co", Phone: "3191234567", Role: "Epidemióloga", AgencyID: "salud", AgencyName: "Secretaría de Salud Pública", Department: "Salud Pública", Active: true},
	{ID: "enl-010", Name: "Oscar Iván Londoño", Email: "olondono@movilidad.gov.co", Phone: "3199876543", Role: "Ingeniero de Tránsito", AgencyID: "movilidad", AgencyName: "Secretaría de Movilidad", Department: "Señalización", Active: true},
	{ID: "enl-011", Name: "Sandra Milena Ocampo", Email: "socampo@movilidad.gov.co", Phone: "3195551234", Role: "Inspectora Vial", AgencyID: "movilidad", AgencyName: "Secretaría de Movilidad", Department: "Seguridad Vial", Active: true},
	{ID: "enl-012", Name: "William Alberto Cortés", Email: "wcortes@infra.gov.co", Phone: "3201234567", Role: "Ingeniero de Obras", AgencyID: "infraestructura", AgencyName: "Secretaría de Infraestructura", Department: "Obras Civiles", Active: true},
	{ID: "enl-013", Name: "Liliana María Duque", Email: "lduque@infra.gov.co", Phone: "3209876543", Role: "Arquitecta Urbanista", AgencyID: "infraestructura", AgencyName: "Secretaría de Infraestructura", Department: "Planeación de Obras", Active: true},
	{ID: "enl-014", Name: "Jairo Hernán Patiño", Email: "jpatino@vivienda.gov.co", Phone: "3211234567", Role: "Asesor de Vivienda", AgencyID: "vivienda", AgencyName: "Secretaría de Vivienda Social", Department: "Mejoramiento Integral", Active: true},
	{ID: "enl-015", Name: "Adriana Lucía Bermúdez", Email: "abermudez@edu.gov.co", Phone: "3219876543", Role: "Coordinadora Educativa", AgencyID: "edu", AgencyName: "Secretaría de Educación", Department: "Infraestructura Educativa", Active: true},
	{ID: "enl-016", Name: "Germán Eduardo Ríos", Email: "grios@planeacion.gov.co", Phone: "3221234567", Role: "Urbanista", AgencyID: "planeacion", AgencyName: "Departamento de Planeación", Department: "Ordenamiento Territorial", Active: true},
	{ID: "enl-017", Name: "Martha Cecilia Vélez", Email: "mvelez@gobierno.gov.co", Phone: "3229876543", Role: "Comisaria de Familia", AgencyID: "gobierno", AgencyName: "Secretaría de Gobierno", Department: "Convivencia", Active: true},
	{ID: "enl-018", Name: "Diego Alejandro Muñoz", Email: "dmunoz@paz.gov.co", Phone: "3231234567", Role: "Gestor de Paz", AgencyID: "paz", AgencyName: "Secretaría de Paz y Cultura Ciudadana", Department: "Mediación Comunitaria", Active: true},
	{ID: "enl-019", Name: "Carolina Andrea López", Email: "calopez@bienestar.gov.co", Phone: "3239876543", Role: "Trabajadora Social", AgencyID: "bienestar", AgencyName: "Secretaría de Bienestar Social", Department: "Atención a Población Vulnerable", Active: true},
	{ID: "enl-020", Name: "Sebastián Felipe Castro", Email: "scastro@tic.gov.co", Phone: "3241234567", Role: "Especialista TIC", AgencyID: "tic", AgencyName: "Secretaría de Desarrollo Económico y TIC", Department: "Transformación Digital", Active: true},
}
