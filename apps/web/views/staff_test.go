package views

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/ccdbms/core/college"
	"github.com/trezcool/ccdbms/core/session"
)

func TestStaffView(t *testing.T) {
	deps := newDeps()
	v := mustView(t, session.RoleStaff, deps)

	for _, view := range []string{"", "profile", "overview"} {
		page := v.Page(identity(session.RoleStaff), State{View: view})
		assert.Equal(t, "Welcome, Ramesh Das!", page.Heading)
		assert.Equal(t, "My Profile", page.Title)
		got := texts(page)
		assert.Contains(t, got, "Department|Accounts")
		assert.Contains(t, got, "Email Address|ramesh.das@college.edu")
		assert.Contains(t, got, "read-only profile")
	}

	deps.Store.UpdateStaff("ST101", college.StaffPatch{Designation: college.StringPtr("Senior Clerk")})
	assert.Contains(t, texts(v.Page(identity(session.RoleStaff), State{})), "Designation|Senior Clerk")
}
