package models

// Session is the per-browser-session handle passed explicitly through request
// handling. Identity is nil until the session is identified.
type Session struct {
	ID       string
	Identity Identity
}

// Identified reports whether the session has left the unresolved state.
func (s *Session) Identified() bool {
	return s != nil && s.Identity != nil
}

// SessionView is the JSON shape of a session's state.
type SessionView struct {
	Identified bool   `json:"identified"`
	Role       Role   `json:"role,omitempty"`
	Buyer      *Buyer `json:"buyer,omitempty"`
	Admin      *Admin `json:"admin,omitempty"`
}

// View renders the session for clients.
func (s *Session) View() SessionView {
	if !s.Identified() {
		return SessionView{}
	}
	v := SessionView{Identified: true, Role: s.Identity.Role()}
	switch id := s.Identity.(type) {
	case Buyer:
		v.Buyer = &id
	case Admin:
		v.Admin = &id
	}
	return v
}
