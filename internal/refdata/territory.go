package refdata

// Territorial subdivision of Santiago de Cali used by registration forms.
// Source: official político-administrative division.

type TerritoryKind string

const (
	KindComuna        TerritoryKind = "comuna"
	KindCorregimiento TerritoryKind = "corregimiento"
)

type Territory struct {
	Name          string        `json:"nombre"`
	Kind          TerritoryKind `json:"tipo"`
	Neighborhoods []string      `json:"barrios_veredas"`
}

var territories = []Territory{
	{Name: "Comuna 1", Kind: KindComuna, Neighborhoods: []string{
		"Salomia", "El Calvario", "Fátima", "Bella Vista", "San Nicolás",
		"Las Delicias", "Altos de Normandía", "Santa Elena", "El Piloto",
	}},
	{Name: "Comuna 2", Kind: KindComuna, Neighborhoods: []string{
		"Obrero", "La Base", "San Cayetano", "Santa Rosa", "Mariano Ramos",
		"Belisario Caicedo", "Sucre", "Caldas", "Miraflores", "Pueblo Joven", "San Pascual",
	}},
	{Name: "Comuna 3", Kind: KindComuna, Neighborhoods: []string{
		"San Nicolás", "La Merced", "El Peñón", "Santa Rosa (C3)", "La Capilla",
		"Alameda", "San Antonio", "Av. Colombia", "Granada", "Tequendama", "Santa Elena (C3)",
	}},
	{Name: "Comuna 4", Kind: KindComuna, Neighborhoods: []string{
		"San Fernando Viejo", "San Fernando Nuevo", "Popular", "Bretaña", "Manzanares",
		"Alfonso López", "Jorge Isaacs", "Los Andes", "Colseguros", "San Pedro",
	}},
	{Name: "Comuna 5", Kind: KindComuna, Neighborhoods: []string{
		"Santa Rita Alta", "Santa Rita Baja", "San Carlos", "San Judás Tadeo Norte",
		"San Judás Tadeo Sur", "Champagnat", "Tejares", "Las Américas", "El Hoyo",
		"Guayaquil", "Sultana",
	}},
	{Name: "Comuna 19", Kind: KindComuna, Neighborhoods: []string{
		"Los Andes", "El Refugio", "San Fernando", "Tejares de San Fernando",
		"Nueva Tequendama", "Camino Real (C19)", "El Lido", "Cañaveralejo",
	}},
	{Name: "Corregimiento Pance", Kind: KindCorregimiento, Neighborhoods: []string{
		"Pance", "La Vorágine", "El Topacio", "El Pato", "Pico de Oro",
	}},
	{Name: "Corregimiento La Buitrera", Kind: KindCorregimiento, Neighborhoods: []string{
		"La Buitrera", "El Saladito (Rural)", "La Castellana",
	}},
	{Name: "Corregimiento La Elvira", Kind: KindCorregimiento, Neighborhoods: []string{
		"La Elvira", "El Chocho", "La Paz (Rural)", "San Pablo", "La Sirena",
	}},
	{Name: "Corregimiento Los Andes", Kind: KindCorregimiento, Neighborhoods: []string{
		"Los Andes Rural", "El Retiro Rural", "La Cima",
	}},
	{Name: "Corregimiento Golondrinas", Kind: KindCorregimiento, Neighborhoods: []string{
		"Golondrinas", "El Diamante Rural", "La Esperanza",
	}},
}

// Territories lists the comunas and corregimientos in official order.
func Territories() []Territory {
	out := make([]Territory, len(territories))
	copy(out, territories)
	return out
}

// Neighborhoods returns the barrios/veredas of one comuna or
// corregimiento by exact name.
func Neighborhoods(territory string) ([]string, bool) {
	for _, t := range territories {
		if t.Name == territory {
			out := make([]string, len(t.Neighborhoods))
			copy(out, t.Neighborhoods)
			return out, true
		}
	}
	return nil, false
}
