package session

import (
	"github.com/pkg/errors"

	"github.com/trezcool/ccdbms/core"
)

// Role tags the five kinds of users of the dashboard.
type Role string

const (
	RoleStudent   Role = "student"
	RoleFaculty   Role = "faculty"
	RoleAdmin     Role = "admin"
	RoleStaff     Role = "staff"
	RolePlacement Role = "placement"
)

var (
	// AllRoles is ordered as the login form lists them.
	AllRoles = []Role{RoleStudent, RoleFaculty, RoleAdmin, RoleStaff, RolePlacement}

	roleLabels = map[Role]string{
		RoleStudent:   "Student",
		RoleFaculty:   "Faculty",
		RoleAdmin:     "Admin (Registrar)",
		RoleStaff:     "Non-Teaching Staff",
		RolePlacement: "Placement Officer",
	}

	ErrUnknownRole = errors.New("unknown role")
)

// ParseRole returns the Role named by s (case-insensitive).
func ParseRole(s string) (Role, error) {
	r := Role(core.CleanString(s, true /* lower */))
	if _, ok := roleLabels[r]; !ok {
		return "", ErrUnknownRole
	}
	return r, nil
}

func (r Role) Label() string { return roleLabels[r] }

func (r Role) String() string { return string(r) }

// Identity is the logged-in user.
type Identity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}

// Credential is a fixed login for one role.
type Credential struct {
	Role     Role
	Username string
	Password string
	ID       string
	Name     string
	Label    string // quick login button
}

func (c Credential) Identity() Identity {
	return Identity{ID: c.ID, Name: c.Name, Role: c.Role}
}

// DemoCredentials is the hard-coded credential table, one entry per role.
var DemoCredentials = []Credential{
	{Role: RoleStudent, Username: "john.doe", Password: "student123", ID: "S101", Name: "John Doe", Label: "Student"},
	{Role: RoleFaculty, Username: "anil.kumar", Password: "faculty123", ID: "F101", Name: "Dr. Anil Kumar", Label: "Faculty"},
	{Role: RoleAdmin, Username: "admin", Password: "admin123", ID: "A101", Name: "Admin User", Label: "Admin"},
	{Role: RoleStaff, Username: "ramesh.das", Password: "staff123", ID: "ST101", Name: "Ramesh Das", Label: "Staff"},
	{Role: RolePlacement, Username: "placement", Password: "placement123", ID: "PL101", Name: "Placement Officer", Label: "Placement"},
}

// CredentialFor returns the demo credential of role.
func CredentialFor(role Role) (Credential, bool) {
	for _, c := range DemoCredentials {
		if c.Role == role {
			return c, true
		}
	}
	return Credential{}, false
}

// Manager holds at most one current Identity.
type Manager struct {
	creds   map[Role]Credential
	current *Identity
}

// NewManager returns a logged out Manager checking logins against creds.
func NewManager(creds []Credential) *Manager {
	m := &Manager{creds: make(map[Role]Credential, len(creds))}
	for _, c := range creds {
		m.creds[c.Role] = c
	}
	return m
}

// Restore returns a Manager already holding id, as carried by a session cookie.
func Restore(creds []Credential, id Identity) *Manager {
	m := NewManager(creds)
	m.current = &id
	return m
}

// Login succeeds only when username and password exactly match the credential of role.
// Unknown users and wrong passwords are not told apart.
func (m *Manager) Login(username, password string, role Role) bool {
	cred, ok := m.creds[role]
	if !ok {
		return false
	}
	if username != cred.Username || password != cred.Password {
		return false
	}
	id := cred.Identity()
	m.current = &id
	return true
}

// Logout clears the current identity.
func (m *Manager) Logout() {
	m.current = nil
}

func (m *Manager) Current() (Identity, bool) {
	if m.current == nil {
		return Identity{}, false
	}
	return *m.current, true
}
