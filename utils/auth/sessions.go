package auth

import (
	"sync"

	"github.com/google/uuid"

	"github.com/uniinone/uniinone-api/model"
)

// Display names assigned at login. Authentication here is a demo contract:
// any email and role combination succeeds and no credential is ever checked,
// so the identity is a role-derived placeholder plus the given email.
const (
	adminDisplayName   = "Admin User"
	studentDisplayName = "Student User"
)

// SessionManager holds every live session in memory. Sessions are lost on
// restart on purpose: the system it models kept its session in page memory,
// where a reload logged you out. Construct one per server (or per test);
// there is no package-level instance.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]model.User
}

// NewSessionManager creates an empty session registry.
func NewSessionManager() *SessionManager {
	return &SessionManager{
		sessions: make(map[string]model.User),
	}
}

// Login opens a session for the given email and role and returns the session
// id and the identity it carries. No validation of either argument happens
// here; the handler boundary decides what it accepts.
func (m *SessionManager) Login(email, role string) (string, model.User) {
	name := studentDisplayName
	if role == model.RoleAdmin {
		name = adminDisplayName
	}
	user := model.User{
		Name:  name,
		Email: email,
		Role:  role,
	}

	id := uuid.New().String()

	m.mu.Lock()
	m.sessions[id] = user
	m.mu.Unlock()

	return id, user
}

// AdminLogin is Login with the role forced to admin.
func (m *SessionManager) AdminLogin(email string) (string, model.User) {
	return m.Login(email, model.RoleAdmin)
}

// Logout drops the session. Unknown ids are a no-op.
func (m *SessionManager) Logout(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// Get returns the identity behind a session id, ok=false when the session
// does not exist (never opened, logged out, or the process restarted).
func (m *SessionManager) Get(id string) (model.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.sessions[id]
	return user, ok
}

// Count reports the number of live sessions.
func (m *SessionManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
