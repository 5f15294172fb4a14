package tracking

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"visitas360/internal/domain"
	"visitas360/internal/refdata"
)

// State is one immutable snapshot of the tracking working set. Visits
// and requirements are ordered most-recent-first.
type State struct {
	Visits       []domain.Visit
	Requirements []domain.Requirement
	Loading      bool
	Err          string
}

// Store holds the working set of scheduled visits and citizen
// requirements for the session. Mutations are synchronous and atomic;
// each one reads the latest snapshot and publishes a new one. The store
// does not validate status-transition ordering, progress bounds, or
// duplicate ids; those are caller responsibilities.
type Store struct {
	mu      sync.Mutex
	state   State
	subs    map[int]func(State)
	nextSub int

	catalog  *refdata.Catalog
	visitSeq int
	reqSeq   int

	Now func() time.Time
}

// New creates an empty store backed by the given reference catalog.
func New(catalog *refdata.Catalog) *Store {
	return &Store{
		subs:    map[int]func(State){},
		catalog: catalog,
		Now:     time.Now,
	}
}

// Load replaces the working set, e.g. from a snapshot or seed. Id
// sequences continue after the highest loaded suffix.
func (s *Store) Load(visits []domain.Visit, reqs []domain.Requirement) {
	s.mu.Lock()
	s.state.Visits = append([]domain.Visit(nil), visits...)
	s.state.Requirements = append([]domain.Requirement(nil), reqs...)
	s.visitSeq = maxSeq("vis-", visitIDs(visits))
	s.reqSeq = maxSeq("req-", reqIDs(reqs))
	st := s.state
	fns := s.subscribers()
	s.mu.Unlock()
	notify(fns, st)
}

// Subscribe registers fn for snapshot changes and returns an idempotent
// unsubscribe handle.
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	cur := s.state
	s.mu.Unlock()
	fn(cur)
	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

// State returns the current snapshot.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Store) now() string {
	return s.Now().UTC().Format(time.RFC3339)
}

func (s *Store) subscribers() []func(State) {
	fns := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	return fns
}

func notify(fns []func(State), st State) {
	for _, fn := range fns {
		fn(st)
	}
}

// mutate runs fn under the lock against fresh copies of the collections
// and publishes the result. Snapshots handed out before the mutation
// keep their own backing arrays.
func (s *Store) mutate(fn func(st *State)) {
	s.mu.Lock()
	s.state.Visits = append([]domain.Visit(nil), s.state.Visits...)
	s.state.Requirements = append([]domain.Requirement(nil), s.state.Requirements...)
	fn(&s.state)
	st := s.state
	fns := s.subscribers()
	s.mu.Unlock()
	notify(fns, st)
}

/* ---- visits ---- */

// ScheduleVisit creates a visit with status programada and prepends it
// to the collection. Unknown collaborator ids are silently dropped.
func (s *Store) ScheduleVisit(unit domain.ProjectUnit, date, startTime, endTime string, collaboratorIDs []string, notes string) domain.Visit {
	now := s.now()
	var selected []domain.Collaborator
	for _, id := range collaboratorIDs {
		if c, ok := s.catalog.Collaborator(id); ok {
			selected = append(selected, c)
		}
	}
	v := domain.Visit{
		UPID:          unit.UPID,
		Unit:          unit,
		Date:          date,
		StartTime:     startTime,
		EndTime:       endTime,
		Status:        domain.VisitScheduled,
		Collaborators: selected,
		Notes:         notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	s.mutate(func(st *State) {
		s.visitSeq++
		v.ID = fmt.Sprintf("vis-%03d", s.visitSeq)
		st.Visits = append([]domain.Visit{v}, st.Visits...)
	})
	return v
}

// SetVisitStatus overwrites the visit status unconditionally. Unknown
// ids are ignored.
func (s *Store) SetVisitStatus(visitID string, status domain.VisitStatus) {
	now := s.now()
	s.mutate(func(st *State) {
		for i := range st.Visits {
			if st.Visits[i].ID == visitID {
				st.Visits[i].Status = status
				st.Visits[i].UpdatedAt = now
			}
		}
	})
}

// Visit looks a visit up by id.
func (s *Store) Visit(id string) (domain.Visit, bool) {
	st := s.State()
	for _, v := range st.Visits {
		if v.ID == id {
			return v, true
		}
	}
	return domain.Visit{}, false
}

/* ---- requirements ---- */

// RequirementOptions are the parameters for AddRequirement.
type RequirementOptions struct {
	VisitID     string
	Requester   domain.Requester
	Agencies    []string
	Description string
	Notes       string
	Address     string
	Latitude    string
	Longitude   string
	Photos      []string
	Priority    domain.Priority
	Author      string
}

// AddRequirement creates a requirement with status nuevo, 0% progress
// and a single seeded history entry, prepended to the collection.
func (s *Store) AddRequirement(opts RequirementOptions) domain.Requirement {
	now := s.now()
	author := opts.Author
	if author == "" {
		author = "Usuario actual"
	}
	r := domain.Requirement{
		VisitID:     opts.VisitID,
		Requester:   opts.Requester,
		Agencies:    append([]string(nil), opts.Agencies...),
		Description: opts.Description,
		Notes:       opts.Notes,
		Address:     opts.Address,
		Latitude:    opts.Latitude,
		Longitude:   opts.Longitude,
		Photos:      append([]string(nil), opts.Photos...),
		Status:      domain.StatusNew,
		Progress:    0,
		Priority:    opts.Priority,
		History: []domain.HistoryEntry{{
			ID:          historyID(),
			Date:        now,
			Author:      author,
			Description: "Requerimiento registrado en campo",
			PrevStatus:  domain.StatusNew,
			NewStatus:   domain.StatusNew,
			Evidence:    []domain.Evidence{},
			Progress:    0,
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.mutate(func(st *State) {
		s.reqSeq++
		r.ID = fmt.Sprintf("req-%03d", s.reqSeq)
		st.Requirements = append([]domain.Requirement{r}, st.Requirements...)
	})
	return r
}

// ChangeRequirementStatus appends a history entry capturing the prior
// and new status, then overwrites the requirement's current status,
// progress and updated_at to match it.
func (s *Store) ChangeRequirementStatus(reqID string, newStatus domain.RequirementStatus, description, author string, progress int) {
	now := s.now()
	s.mutate(func(st *State) {
		for i := range st.Requirements {
			r := &st.Requirements[i]
			if r.ID != reqID {
				continue
			}
			r.History = append(r.History, domain.HistoryEntry{
				ID:          historyID(),
				Date:        now,
				Author:      author,
				Description: description,
				PrevStatus:  r.Status,
				NewStatus:   newStatus,
				Evidence:    []domain.Evidence{},
				Progress:    progress,
			})
			r.Status = newStatus
			r.Progress = progress
			r.UpdatedAt = now
		}
	})
}

// AssignHandler sets the case handler from the managing agency.
func (s *Store) AssignHandler(reqID, handler string) {
	s.patch(reqID, func(r *domain.Requirement) {
		r.Handler = handler
	})
}

// AssignLiaison sets the agency liaison as a denormalized id+name pair.
func (s *Store) AssignLiaison(reqID, liaisonID, liaisonName string) {
	s.patch(reqID, func(r *domain.Requirement) {
		r.LiaisonID = liaisonID
		r.LiaisonName = liaisonName
	})
}

// SetProposedResolutionDate records the proposed solution date.
func (s *Store) SetProposedResolutionDate(reqID, date string) {
	s.patch(reqID, func(r *domain.Requirement) {
		r.ResolutionDate = date
	})
}

// RecordFilingReference stores the document-management filing number and
// optional petition document.
func (s *Store) RecordFilingReference(reqID, filingNumber, filedDate, docURL, docName string) {
	s.patch(reqID, func(r *domain.Requirement) {
		r.FilingNumber = filingNumber
		r.FiledDate = filedDate
		r.FilingDocURL = docURL
		r.FilingDocName = docName
	})
}

// CancelRequirement moves the requirement to cancelado and appends a
// history entry with the reason and the optional official document as
// evidence. Repeated calls keep appending entries; the status stays
// cancelado.
func (s *Store) CancelRequirement(reqID, reason, author, docURL, docName string) {
	now := s.now()
	s.mutate(func(st *State) {
		for i := range st.Requirements {
			r := &st.Requirements[i]
			if r.ID != reqID {
				continue
			}
			evidence := []domain.Evidence{}
			if docURL != "" {
				desc := docName
				if desc == "" {
					desc = "Doc. cancelación"
				}
				evidence = append(evidence, domain.Evidence{
					ID:          evidenceID(),
					Kind:        domain.EvidenceDocument,
					URL:         docURL,
					Description: desc,
					Date:        now,
				})
			}
			r.History = append(r.History, domain.HistoryEntry{
				ID:          historyID(),
				Date:        now,
				Author:      author,
				Description: "Requerimiento cancelado: " + reason,
				PrevStatus:  r.Status,
				NewStatus:   domain.StatusCancelled,
				Evidence:    evidence,
				Progress:    r.Progress,
			})
			r.Status = domain.StatusCancelled
			r.CancelReason = reason
			r.CancelDocURL = docURL
			r.CancelDocName = docName
			r.UpdatedAt = now
		}
	})
}

// Requirement looks a requirement up by id.
func (s *Store) Requirement(id string) (domain.Requirement, bool) {
	st := s.State()
	for _, r := range st.Requirements {
		if r.ID == id {
			return r, true
		}
	}
	return domain.Requirement{}, false
}

// ClearError resets the error field.
func (s *Store) ClearError() {
	s.mutate(func(st *State) {
		st.Err = ""
	})
}

// SetLoading flips the loading flag.
func (s *Store) SetLoading(loading bool) {
	s.mutate(func(st *State) {
		st.Loading = loading
	})
}

// SetError records a failed backend operation.
func (s *Store) SetError(msg string) {
	s.mutate(func(st *State) {
		st.Err = msg
		st.Loading = false
	})
}

// patch applies a targeted field overwrite and bumps updated_at.
// Unknown ids are ignored.
func (s *Store) patch(reqID string, fn func(*domain.Requirement)) {
	now := s.now()
	s.mutate(func(st *State) {
		for i := range st.Requirements {
			if st.Requirements[i].ID == reqID {
				fn(&st.Requirements[i])
				st.Requirements[i].UpdatedAt = now
			}
		}
	})
}

func historyID() string {
	return "hist-" + uuid.NewString()
}

func evidenceID() string {
	return "ev-" + uuid.NewString()
}

func visitIDs(vs []domain.Visit) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.ID
	}
	return out
}

func reqIDs(rs []domain.Requirement) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.ID
	}
	return out
}

func maxSeq(prefix string, ids []string) int {
	max := 0
	for _, id := range ids {
		var n int
		if _, err := fmt.Sscanf(id, prefix+"%d", &n); err == nil && n > max {
			max = n
		}
	}
	return max
}
