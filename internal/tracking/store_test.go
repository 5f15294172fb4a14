package tracking

import (
	"strings"
	"testing"
	"time"

	"visitas360/internal/domain"
	"visitas360/internal/refdata"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := New(refdata.NewCatalog())
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	tick := 0
	s.Now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}
	return s
}

func scheduleTestVisit(t *testing.T, s *Store) domain.Visit {
	t.Helper()
	unit := domain.ProjectUnit{UPID: "INF-TEST-0001", Name: "Vía Rural", Address: "Calle 1"}
	return s.ScheduleVisit(unit, "2026-03-10", "09:00", "12:00", []string{"col-001"}, "")
}

func TestScheduleVisitAssignsSequentialIDsAndPrepends(t *testing.T) {
	s := newTestStore(t)
	v1 := scheduleTestVisit(t, s)
	v2 := scheduleTestVisit(t, s)
	if v1.ID != "vis-001" || v2.ID != "vis-002" {
		t.Fatalf("expected vis-001, vis-002; got %s, %s", v1.ID, v2.ID)
	}
	st := s.State()
	if st.Visits[0].ID != v2.ID {
		t.Fatalf("expected newest visit first, got %s", st.Visits[0].ID)
	}
	if v1.Status != domain.VisitScheduled {
		t.Fatalf("new visit should start programada, got %s", v1.Status)
	}
	active := st.ActiveVisits()
	if len(active) != 2 || active[0].ID != v2.ID {
		t.Fatalf("active visits wrong: %+v", active)
	}
}

func TestScheduleVisitDropsUnknownCollaborators(t *testing.T) {
	s := newTestStore(t)
	unit := domain.ProjectUnit{UPID: "INF-TEST-0002"}
	v := s.ScheduleVisit(unit, "2026-03-10", "", "", []string{"col-001", "col-999", "col-003"}, "")
	if len(v.Collaborators) != 2 {
		t.Fatalf("expected 2 known collaborators, got %d", len(v.Collaborators))
	}
	for _, c := range v.Collaborators {
		if c.ID == "col-999" {
			t.Fatal("unknown collaborator id survived")
		}
	}
}

func TestSetVisitStatusUnknownIDIsNoOp(t *testing.T) {
	s := newTestStore(t)
	v := scheduleTestVisit(t, s)
	s.SetVisitStatus("vis-999", domain.VisitCancelled)
	got, _ := s.Visit(v.ID)
	if got.Status != domain.VisitScheduled {
		t.Fatalf("unrelated visit mutated: %s", got.Status)
	}
}

func TestAddRequirementSeedsHistory(t *testing.T) {
	s := newTestStore(t)
	v := scheduleTestVisit(t, s)
	r := s.AddRequirement(RequirementOptions{
		VisitID:     v.ID,
		Requester:   domain.Requester{FullName: "Juana Torres"},
		Agencies:    []string{"EMCALI"},
		Description: "Revisión de alcantarillado",
		Priority:    domain.PriorityHigh,
	})
	if r.ID != "req-001" {
		t.Fatalf("expected req-001, got %s", r.ID)
	}
	if r.Status != domain.StatusNew || r.Progress != 0 {
		t.Fatalf("new requirement should be nuevo/0%%, got %s/%d", r.Status, r.Progress)
	}
	if len(r.History) != 1 {
		t.Fatalf("expected one seeded history entry, got %d", len(r.History))
	}
	h := r.History[0]
	if h.Author != "Usuario actual" {
		t.Fatalf("default author missing, got %q", h.Author)
	}
	if h.PrevStatus != domain.StatusNew || h.NewStatus != domain.StatusNew {
		t.Fatalf("seed entry statuses wrong: %s -> %s", h.PrevStatus, h.NewStatus)
	}
	if !strings.HasPrefix(h.ID, "hist-") {
		t.Fatalf("history id prefix wrong: %s", h.ID)
	}
}

func TestChangeRequirementStatusKeepsHistoryConsistent(t *testing.T) {
	s := newTestStore(t)
	v := scheduleTestVisit(t, s)
	r := s.AddRequirement(RequirementOptions{VisitID: v.ID, Description: "x"})

	s.ChangeRequirementStatus(r.ID, domain.StatusFiled, "Radicado ante EMCALI", "María López", 15)
	s.ChangeRequirementStatus(r.ID, domain.StatusInManagement, "Visita técnica programada", "María López", 45)

	got, ok := s.Requirement(r.ID)
	if !ok {
		t.Fatal("requirement lost")
	}
	if got.Status != domain.StatusInManagement || got.Progress != 45 {
		t.Fatalf("current fields not overwritten: %s/%d", got.Status, got.Progress)
	}
	last := got.LastHistory()
	if last == nil {
		t.Fatal("no history")
	}
	if last.NewStatus != got.Status || last.Progress != got.Progress {
		t.Fatalf("latest entry must mirror current fields: %s/%d vs %s/%d",
			last.NewStatus, last.Progress, got.Status, got.Progress)
	}
	if last.PrevStatus != domain.StatusFiled {
		t.Fatalf("prev status should capture the state before the change, got %s", last.PrevStatus)
	}
	if len(got.History) != 3 {
		t.Fatalf("history must only grow, got %d entries", len(got.History))
	}
}

func TestCancelRequirementAppendsEntryAndKeepsProgress(t *testing.T) {
	s := newTestStore(t)
	v := scheduleTestVisit(t, s)
	r := s.AddRequirement(RequirementOptions{VisitID: v.ID, Description: "x"})
	s.ChangeRequirementStatus(r.ID, domain.StatusInProcess, "avance", "a", 60)

	s.CancelRequirement(r.ID, "Duplicado", "supervisora", "https://docs/acta.pdf", "Acta")
	got, _ := s.Requirement(r.ID)
	if got.Status != domain.StatusCancelled {
		t.Fatalf("expected cancelado, got %s", got.Status)
	}
	if got.Progress != 60 {
		t.Fatalf("cancel must not touch progress, got %d", got.Progress)
	}
	last := got.LastHistory()
	if last.NewStatus != domain.StatusCancelled || last.PrevStatus != domain.StatusInProcess {
		t.Fatalf("cancel history transition wrong: %s -> %s", last.PrevStatus, last.NewStatus)
	}
	if !strings.Contains(last.Description, "Duplicado") {
		t.Fatalf("reason missing from entry: %q", last.Description)
	}
	if len(last.Evidence) != 1 || last.Evidence[0].Kind != domain.EvidenceDocument {
		t.Fatalf("official document should attach as evidence: %+v", last.Evidence)
	}

	// A second cancel keeps the status and appends another entry.
	before := len(got.History)
	s.CancelRequirement(r.ID, "Otra razón", "supervisora", "", "")
	got, _ = s.Requirement(r.ID)
	if got.Status != domain.StatusCancelled {
		t.Fatalf("repeat cancel changed status: %s", got.Status)
	}
	if len(got.History) != before+1 {
		t.Fatalf("repeat cancel should append, got %d entries", len(got.History))
	}
	if last := got.LastHistory(); last.PrevStatus != domain.StatusCancelled {
		t.Fatalf("repeat cancel prev status should be cancelado, got %s", last.PrevStatus)
	}
}

func TestAssignmentPatches(t *testing.T) {
	s := newTestStore(t)
	v := scheduleTestVisit(t, s)
	r := s.AddRequirement(RequirementOptions{VisitID: v.ID, Description: "x"})

	s.AssignHandler(r.ID, "Carlos Muñoz")
	s.AssignLiaison(r.ID, "enl-001", "Héctor Ramírez")
	s.SetProposedResolutionDate(r.ID, "2026-04-01")
	s.RecordFilingReference(r.ID, "ORF-2026-001", "2026-03-05", "https://docs/peticion.pdf", "Petición")

	got, _ := s.Requirement(r.ID)
	if got.Handler != "Carlos Muñoz" || got.LiaisonID != "enl-001" || got.LiaisonName != "Héctor Ramírez" {
		t.Fatalf("assignments not applied: %+v", got)
	}
	if got.ResolutionDate != "2026-04-01" || got.FilingNumber != "ORF-2026-001" {
		t.Fatalf("dates/filing not applied: %+v", got)
	}
	if len(got.History) != 1 {
		t.Fatalf("field patches must not append history, got %d entries", len(got.History))
	}
}

func TestLoadContinuesIDSequences(t *testing.T) {
	s := newTestStore(t)
	s.Load(SeedVisits(), SeedRequirements())
	v := scheduleTestVisit(t, s)
	if v.ID != "vis-004" {
		t.Fatalf("visit sequence should continue after seed, got %s", v.ID)
	}
	r := s.AddRequirement(RequirementOptions{VisitID: v.ID, Description: "x"})
	if r.ID != "req-006" {
		t.Fatalf("requirement sequence should continue after seed, got %s", r.ID)
	}
}

func TestEarlierSnapshotsKeepTheirContents(t *testing.T) {
	s := newTestStore(t)
	v := scheduleTestVisit(t, s)
	r := s.AddRequirement(RequirementOptions{VisitID: v.ID, Description: "x"})
	before := s.State()

	s.SetVisitStatus(v.ID, domain.VisitCancelled)
	s.ChangeRequirementStatus(r.ID, domain.StatusFiled, "Radicado", "a", 15)
	s.CancelRequirement(r.ID, "Duplicado", "a", "", "")

	if got := before.Visits[0].Status; got != domain.VisitScheduled {
		t.Fatalf("captured snapshot mutated in place: visit status %s", got)
	}
	req := before.Requirements[0]
	if req.Status != domain.StatusNew || req.Progress != 0 {
		t.Fatalf("captured snapshot mutated in place: %s/%d", req.Status, req.Progress)
	}
	if len(req.History) != 1 {
		t.Fatalf("captured snapshot history grew to %d entries", len(req.History))
	}

	after := s.State()
	if after.Visits[0].Status != domain.VisitCancelled || after.Requirements[0].Status != domain.StatusCancelled {
		t.Fatalf("mutations lost: %+v", after)
	}
}

func TestSubscriberSnapshotsAreStable(t *testing.T) {
	s := newTestStore(t)
	v := scheduleTestVisit(t, s)

	var delivered []State
	unsub := s.Subscribe(func(st State) { delivered = append(delivered, st) })
	defer unsub()

	s.SetVisitStatus(v.ID, domain.VisitInProgress)
	s.SetVisitStatus(v.ID, domain.VisitCompleted)

	want := []domain.VisitStatus{domain.VisitScheduled, domain.VisitInProgress, domain.VisitCompleted}
	if len(delivered) != len(want) {
		t.Fatalf("expected %d deliveries, got %d", len(want), len(delivered))
	}
	for i, st := range delivered {
		if got := st.Visits[0].Status; got != want[i] {
			t.Fatalf("delivery %d altered after the fact: %s, want %s", i, got, want[i])
		}
	}
}

func TestSubscribeNotifiesAndUnsubscribes(t *testing.T) {
	s := newTestStore(t)
	var calls int
	unsub := s.Subscribe(func(State) { calls++ })
	if calls != 1 {
		t.Fatalf("subscribe should call immediately, got %d", calls)
	}
	scheduleTestVisit(t, s)
	if calls != 2 {
		t.Fatalf("mutation should notify, got %d", calls)
	}
	unsub()
	unsub() // idempotent
	scheduleTestVisit(t, s)
	if calls != 2 {
		t.Fatalf("unsubscribed observer still notified, got %d", calls)
	}
}

func TestErrorAndLoadingFlags(t *testing.T) {
	s := newTestStore(t)
	s.SetLoading(true)
	if !s.State().Loading {
		t.Fatal("loading flag not set")
	}
	s.SetError("fallo de red")
	st := s.State()
	if st.Err != "fallo de red" || st.Loading {
		t.Fatalf("error should clear loading: %+v", st)
	}
	s.ClearError()
	if s.State().Err != "" {
		t.Fatal("error not cleared")
	}
}
