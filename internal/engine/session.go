package engine

// LoadStatus is the state of the one-shot sheet load.
type LoadStatus int

const (
	StatusPending LoadStatus = iota
	StatusReady
	StatusFailed
)

func (s LoadStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Session is an immutable snapshot of everything the search screen shows.
// Transitions return a new snapshot and recompute the result, so the result
// can never drift from the donors and criteria it was derived from.
// The donor slice is shared between snapshots and must be treated as read-only.
type Session struct {
	status   LoadStatus
	err      error
	donors   []Donor
	criteria Criteria
	result   Result
}

// NewSession returns the start-up snapshot: pending, no criteria, no result.
func NewSession() Session {
	return Session{status: StatusPending}
}

func (s Session) Status() LoadStatus { return s.status }
func (s Session) Err() error { return s.err }
func (s Session) Donors() []Donor { return s.donors }
func (s Session) Criteria() Criteria { return s.criteria }
func (s Session) Result() Result { return s.result }
func (s Session) Matches() []Donor { return s.result.Matches }

// View tells the presentation layer which state to render.
func (s Session) View() ResultView {
	switch s.status {
	case StatusPending:
		return ViewLoading
	case StatusFailed:
		return ViewFailed
	default:
		return s.result.View()
	}
}

// Loaded moves to ready with the given donors and applies the current criteria.
func (s Session) Loaded(donors []Donor) Session {
	s.status = StatusReady
	s.err = nil
	s.donors = donors
	s.result = Filter(donors, s.criteria)
	return s
}

// Failed moves to the terminal failed state with an empty donor set.
func (s Session) Failed(err error) Session {
	s.status = StatusFailed
	s.err = err
	s.donors = nil
	s.result = Result{}
	return s
}

// Reloading goes back to pending for a user-requested retry. Criteria are kept.
func (s Session) Reloading() Session {
	s.status = StatusPending
	s.err = nil
	s.donors = nil
	s.result = Result{}
	return s
}

// WithCriteria replaces all criteria and recomputes the result.
func (s Session) WithCriteria(c Criteria) Session {
	s.criteria = c
	s.result = Filter(s.donors, c)
	return s
}

// WithBloodGroup changes only the blood group criterion.
func (s Session) WithBloodGroup(g BloodGroup) Session {
	c := s.criteria
	c.BloodGroup = g
	return s.WithCriteria(c)
}

// WithLocation changes only the location criterion.
func (s Session) WithLocation(location string) Session {
	c := s.criteria
	c.Location = location
	return s.WithCriteria(c)
}

// WithName changes only the donor name criterion.
func (s Session) WithName(name string) Session {
	c := s.criteria
	c.Name = name
	return s.WithCriteria(c)
}
