package tracking

import (
	"testing"

	"visitas360/internal/domain"
)

func TestByStatusHasEveryColumn(t *testing.T) {
	s := newTestStore(t)
	v := scheduleTestVisit(t, s)
	r := s.AddRequirement(RequirementOptions{VisitID: v.ID, Description: "x"})

	grouped := s.State().ByStatus()
	if len(grouped) != len(domain.RequirementStatuses) {
		t.Fatalf("expected %d columns, got %d", len(domain.RequirementStatuses), len(grouped))
	}
	if len(grouped[domain.StatusNew]) != 1 {
		t.Fatalf("new requirement not in nuevo column: %+v", grouped[domain.StatusNew])
	}
	for _, status := range domain.RequirementStatuses {
		if status == domain.StatusNew {
			continue
		}
		if reqs, ok := grouped[status]; !ok || len(reqs) != 0 {
			t.Fatalf("column %s should exist and be empty", status)
		}
	}

	s.ChangeRequirementStatus(r.ID, domain.StatusResolved, "listo", "a", 100)
	grouped = s.State().ByStatus()
	if len(grouped[domain.StatusNew]) != 0 || len(grouped[domain.StatusResolved]) != 1 {
		t.Fatal("requirement did not move columns after status change")
	}
}

func TestByAgencyMultiMembershipAndSentinel(t *testing.T) {
	s := newTestStore(t)
	v := scheduleTestVisit(t, s)
	shared := s.AddRequirement(RequirementOptions{
		VisitID:     v.ID,
		Description: "alcantarillado y árboles",
		Agencies:    []string{"EMCALI", "DAGMA"},
	})
	orphan := s.AddRequirement(RequirementOptions{VisitID: v.ID, Description: "sin entidad"})

	grouped := s.State().ByAgency()
	for _, agency := range []string{"EMCALI", "DAGMA"} {
		found := false
		for _, r := range grouped[agency] {
			if r.ID == shared.ID {
				found = true
			}
		}
		if !found {
			t.Fatalf("requirement with two agencies missing from %s bucket", agency)
		}
	}
	unassigned := grouped[UnassignedBucket]
	if len(unassigned) != 1 || unassigned[0].ID != orphan.ID {
		t.Fatalf("agency-less requirement should be only under %q: %+v", UnassignedBucket, unassigned)
	}
	for agency, reqs := range grouped {
		if agency == UnassignedBucket {
			continue
		}
		for _, r := range reqs {
			if r.ID == orphan.ID {
				t.Fatalf("agency-less requirement leaked into %s", agency)
			}
		}
	}
}

func TestStatusCountsMatchesColumns(t *testing.T) {
	s := newTestStore(t)
	s.Load(SeedVisits(), SeedRequirements())
	st := s.State()
	counts := st.StatusCounts()
	grouped := st.ByStatus()
	for status, n := range counts {
		if n != len(grouped[status]) {
			t.Fatalf("count mismatch for %s: %d vs %d", status, n, len(grouped[status]))
		}
	}
}

func TestActiveVisitsExcludesTerminal(t *testing.T) {
	s := newTestStore(t)
	s.Load(SeedVisits(), nil)
	for _, v := range s.State().ActiveVisits() {
		if v.Status.Terminal() {
			t.Fatalf("terminal visit %s in active list", v.ID)
		}
	}
	if len(s.State().ActiveVisits()) != 2 {
		t.Fatalf("seed has two active visits, got %d", len(s.State().ActiveVisits()))
	}
}

func TestRequirementsForVisit(t *testing.T) {
	s := newTestStore(t)
	s.Load(SeedVisits(), SeedRequirements())
	reqs := s.State().RequirementsForVisit("vis-003")
	if len(reqs) != 4 {
		t.Fatalf("expected 4 requirements for vis-003, got %d", len(reqs))
	}
	for _, r := range reqs {
		if r.VisitID != "vis-003" {
			t.Fatalf("wrong visit id %s", r.VisitID)
		}
	}
}
