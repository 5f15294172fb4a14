package tracking

import "visitas360/internal/domain"

// Derived read-only views, recomputed from a snapshot on every read.

// UnassignedBucket labels requirements that name no managing agency in
// the per-agency grouping.
const UnassignedBucket = "Sin asignar"

// ActiveVisits returns visits that are scheduled or in progress, in
// working-set order (most recent first).
func (st State) ActiveVisits() []domain.Visit {
	var out []domain.Visit
	for _, v := range st.Visits {
		if v.Status == domain.VisitScheduled || v.Status == domain.VisitInProgress {
			out = append(out, v)
		}
	}
	return out
}

// ByStatus buckets requirements into the fixed kanban column set. A
// requirement carrying a status outside the domain lands in no bucket.
func (st State) ByStatus() map[domain.RequirementStatus][]domain.Requirement {
	grouped := make(map[domain.RequirementStatus][]domain.Requirement, len(domain.RequirementStatuses))
	for _, status := range domain.RequirementStatuses {
		grouped[status] = []domain.Requirement{}
	}
	for _, r := range st.Requirements {
		if _, ok := grouped[r.Status]; ok {
			grouped[r.Status] = append(grouped[r.Status], r)
		}
	}
	return grouped
}

// ByAgency buckets requirements by managing agency. A requirement naming
// N agencies appears in N buckets; one naming none appears only under
// the UnassignedBucket sentinel.
func (st State) ByAgency() map[string][]domain.Requirement {
	grouped := map[string][]domain.Requirement{}
	for _, r := range st.Requirements {
		agencies := r.Agencies
		if len(agencies) == 0 {
			agencies = []string{UnassignedBucket}
		}
		for _, a := range agencies {
			grouped[a] = append(grouped[a], r)
		}
	}
	return grouped
}

// StatusCounts returns the per-status requirement count for every kanban
// column.
func (st State) StatusCounts() map[domain.RequirementStatus]int {
	counts := make(map[domain.RequirementStatus]int, len(domain.RequirementStatuses))
	for status, reqs := range st.ByStatus() {
		counts[status] = len(reqs)
	}
	return counts
}

// RequirementsForVisit filters requirements by owning visit id.
func (st State) RequirementsForVisit(visitID string) []domain.Requirement {
	var out []domain.Requirement
	for _, r := range st.Requirements {
		if r.VisitID == visitID {
			out = append(out, r)
		}
	}
	return out
}
