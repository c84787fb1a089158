package views

import (
	"github.com/trezcool/ccdbms/apps/web/ui"
	"github.com/trezcool/ccdbms/core/college"
	"github.com/trezcool/ccdbms/core/session"
)

var staffMenu = []subView{
	{"profile", "My Profile"},
}

type staffView struct {
	*Deps
}

func (v *staffView) Page(id session.Identity, st State) *ui.Page {
	page := v.shell(id, "Staff Portal", staffMenu, resolve(staffMenu, st.View))

	staff, ok := v.Store.StaffMember(id.ID)
	if !ok {
		staff = college.Staff{ID: id.ID, Name: id.Name}
	}
	page.Heading = "Welcome, " + staff.Name + "!"
	page.Subheading = "View your profile information"
	page.Add(
		ui.StatCard("Department", staff.Department, ""),
		ui.StatCard("Designation", staff.Designation, ""),
		ui.StatCard("Joining Date", staff.JoiningDate, ""),
	)
	page.Add(ui.Card{
		Title: "Profile Information",
		Details: []ui.Detail{
			{Label: "Staff ID", Value: staff.ID},
			{Label: "Full Name", Value: staff.Name},
			{Label: "Department", Value: staff.Department},
			{Label: "Designation", Value: staff.Designation},
			{Label: "Email Address", Value: staff.Email},
			{Label: "Phone Number", Value: staff.Phone},
			{Label: "Joining Date", Value: staff.JoiningDate},
		},
		Note: "This is a read-only profile. Contact the administrator to update your information.",
	})
	return page
}

// Do always fails: the staff profile is read-only.
func (v *staffView) Do(session.Identity, string, Binder) (Result, error) {
	return Result{}, ErrUnknownAction
}
