package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManager_Login(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		role     Role
		want     bool
		wantID   Identity
	}{
		{name: "admin", username: "admin", password: "admin123", role: RoleAdmin, want: true,
			wantID: Identity{ID: "A101", Name: "Admin User", Role: RoleAdmin}},
		{name: "student", username: "john.doe", password: "student123", role: RoleStudent, want: true,
			wantID: Identity{ID: "S101", Name: "John Doe", Role: RoleStudent}},
		{name: "faculty", username: "anil.kumar", password: "faculty123", role: RoleFaculty, want: true,
			wantID: Identity{ID: "F101", Name: "Dr. Anil Kumar", Role: RoleFaculty}},
		{name: "staff", username: "ramesh.das", password: "staff123", role: RoleStaff, want: true,
			wantID: Identity{ID: "ST101", Name: "Ramesh Das", Role: RoleStaff}},
		{name: "placement", username: "placement", password: "placement123", role: RolePlacement, want: true,
			wantID: Identity{ID: "PL101", Name: "Placement Officer", Role: RolePlacement}},
		{name: "wrong password", username: "admin", password: "wrong", role: RoleAdmin},
		{name: "unknown user", username: "root", password: "admin123", role: RoleAdmin},
		{name: "right creds wrong role", username: "admin", password: "admin123", role: RoleStudent},
		{name: "empty role", username: "admin", password: "admin123", role: ""},
		{name: "case matters", username: "Admin", password: "admin123", role: RoleAdmin},
		{name: "no trimming", username: "admin ", password: "admin123", role: RoleAdmin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager(DemoCredentials)
			if got := m.Login(tt.username, tt.password, tt.role); got != tt.want {
				t.Errorf("Login() = %v, want %v", got, tt.want)
			}
			id, ok := m.Current()
			assert.Equal(t, tt.want, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestManager_FailedLoginKeepsIdentity(t *testing.T) {
	m := NewManager(DemoCredentials)
	assert.True(t, m.Login("admin", "admin123", RoleAdmin))
	assert.False(t, m.Login("admin", "nope", RoleAdmin))

	id, ok := m.Current()
	assert.True(t, ok)
	assert.Equal(t, "A101", id.ID)
}

func TestManager_Logout(t *testing.T) {
	tests := []struct {
		name  string
		setup func(m *Manager)
	}{
		{name: "logged out", setup: func(m *Manager) {}},
		{name: "logged in", setup: func(m *Manager) { m.Login("placement", "placement123", RolePlacement) }},
		{name: "twice", setup: func(m *Manager) { m.Login("admin", "admin123", RoleAdmin); m.Logout() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager(DemoCredentials)
			tt.setup(m)
			m.Logout()
			_, ok := m.Current()
			assert.False(t, ok)
		})
	}
}

func TestRestore(t *testing.T) {
	id := Identity{ID: "F101", Name: "Dr. Anil Kumar", Role: RoleFaculty}
	m := Restore(DemoCredentials, id)
	got, ok := m.Current()
	assert.True(t, ok)
	assert.Equal(t, id, got)
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		in      string
		want    Role
		wantErr error
	}{
		{in: "admin", want: RoleAdmin},
		{in: " Placement ", want: RolePlacement},
		{in: "", wantErr: ErrUnknownRole},
		{in: "teacher", wantErr: ErrUnknownRole},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRole(tt.in)
			if err != tt.wantErr {
				t.Fatalf("ParseRole() error = %v, wantErr %v", err, tt.wantErr)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
