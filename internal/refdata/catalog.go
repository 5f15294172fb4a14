package refdata

import "visitas360/internal/domain"

// Catalog is the read-only reference data store: managing agencies,
// field collaborators and agency liaisons. Queried by exact key only.
type Catalog struct {
	agencies      []domain.Agency
	collaborators []domain.Collaborator
	liaisons      []domain.Liaison

	agencyByID       map[string]domain.Agency
	collaboratorByID map[string]domain.Collaborator
	liaisonByID      map[string]domain.Liaison
}

// NewCatalog returns the standard municipal catalog.
func NewCatalog() *Catalog {
	return newCatalog(agencies, collaborators, liaisons)
}

// NewCatalogWith builds a catalog from explicit data, for tests.
func NewCatalogWith(ag []domain.Agency, col []domain.Collaborator, li []domain.Liaison) *Catalog {
	return newCatalog(ag, col, li)
}

func newCatalog(ag []domain.Agency, col []domain.Collaborator, li []domain.Liaison) *Catalog {
	c := &Catalog{
		agencies:         ag,
		collaborators:    col,
		liaisons:         li,
		agencyByID:       make(map[string]domain.Agency, len(ag)),
		collaboratorByID: make(map[string]domain.Collaborator, len(col)),
		liaisonByID:      make(map[string]domain.Liaison, len(li)),
	}
	for _, a := range ag {
		c.agencyByID[a.ID] = a
	}
	for _, co := range col {
		c.collaboratorByID[co.ID] = co
	}
	for _, l := range li {
		c.liaisonByID[l.ID] = l
	}
	return c
}

func (c *Catalog) Agencies() []domain.Agency {
	out := make([]domain.Agency, len(c.agencies))
	copy(out, c.agencies)
	return out
}

func (c *Catalog) Agency(id string) (domain.Agency, bool) {
	a, ok := c.agencyByID[id]
	return a, ok
}

func (c *Catalog) Collaborators() []domain.Collaborator {
	out := make([]domain.Collaborator, len(c.collaborators))
	copy(out, c.collaborators)
	return out
}

func (c *Catalog) Collaborator(id string) (domain.Collaborator, bool) {
	co, ok := c.collaboratorByID[id]
	return co, ok
}

func (c *Catalog) Liaisons() []domain.Liaison {
	out := make([]domain.Liaison, len(c.liaisons))
	copy(out, c.liaisons)
	return out
}

func (c *Catalog) Liaison(id string) (domain.Liaison, bool) {
	l, ok := c.liaisonByID[id]
	return l, ok
}

// ActiveLiaisons returns the active liaisons for one agency, in catalog
// order. Inactive liaisons stay in the catalog (soft delete) but are not
// offered for assignment.
func (c *Catalog) ActiveLiaisons(agencyID string) []domain.Liaison {
	var out []domain.Liaison
	for _, l := range c.liaisons {
		if l.AgencyID == agencyID && l.Active {
			out = append(out, l)
		}
	}
	return out
}
