package session

import (
	"sync"

	"visitas360/internal/domain"
)

// State is the single mutable session record.
type State struct {
	Authenticated bool
	Profile       *domain.Profile
	Token         string
	Loading       bool
	Err           string
}

// Store owns the session state and notifies subscribers on every change.
// All mutations originate from sequential user-triggered flows; the mutex
// only guards the subscriber bookkeeping and snapshot copies.
type Store struct {
	mu      sync.Mutex
	state   State
	subs    map[int]func(State)
	nextSub int

	persist *FileStore
}

// New creates a session store. The initial state is loading until a login
// or restore settles it. persist may be nil for purely in-memory use.
func New(persist *FileStore) *Store {
	return &Store{
		state:   State{Loading: true},
		subs:    map[int]func(State){},
		persist: persist,
	}
}

// Subscribe registers fn for state changes and returns an idempotent
// unsubscribe. fn is called immediately with the current state.
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

// State returns a copy of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Store) publish(st State) {
	s.mu.Lock()
	s.state = st
	fns := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn(st)
	}
}

// SetLoading flips the loading flag and clears any stale error.
func (s *Store) SetLoading(loading bool) {
	st := s.State()
	st.Loading = loading
	st.Err = ""
	s.publish(st)
}

// Login publishes an authenticated state and writes through to the
// persisted records. Storage errors are ignored.
func (s *Store) Login(p domain.Profile) {
	s.publish(State{
		Authenticated: true,
		Profile:       &p,
		Token:         p.Token,
		Loading:       false,
	})
	if s.persist != nil {
		_ = s.persist.Save(p)
	}
}

// Logout publishes an unauthenticated state and clears both persisted
// records, unconditionally.
func (s *Store) Logout() {
	s.publish(State{})
	if s.persist != nil {
		_ = s.persist.Clear()
	}
}

// SetError records a failed operation without changing authentication.
func (s *Store) SetError(msg string) {
	st := s.State()
	st.Err = msg
	st.Loading = false
	s.publish(st)
}

// ClearError resets the error field.
func (s *Store) ClearError() {
	st := s.State()
	st.Err = ""
	s.publish(st)
}

// Restore rebuilds the session from the persisted records. It fails
// closed: both the profile and the token record must be present, else
// the state is left untouched and false is returned.
func (s *Store) Restore() bool {
	if s.persist == nil {
		return false
	}
	p, ok := s.persist.Load()
	if !ok {
		return false
	}
	s.publish(State{
		Authenticated: true,
		Profile:       &p,
		Token:         p.Token,
		Loading:       false,
	})
	return true
}
