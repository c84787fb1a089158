package views

import (
	"strings"

	"github.com/trezcool/ccdbms/apps/web/ui"
	"github.com/trezcool/ccdbms/core/college"
	"github.com/trezcool/ccdbms/core/session"
)

var adminMenu = []subView{
	{"overview", "Overview"},
	{"students", "Student Management"},
	{"faculty", "Faculty Management"},
	{"staff", "Staff Management"},
	{"reports", "Reports"},
	{"settings", "System Settings"},
}

var (
	academicReports = []string{
		"Student Performance Report",
		"Course Enrollment Report",
		"Attendance Summary Report",
	}
	administrativeReports = []string{
		"Faculty Workload Report",
		"Placement Statistics Report",
		"Department Wise Summary",
	}
	semesterOptions = []string{"Semester 1", "Semester 2"}
)

type (
	adminView struct {
		*Deps
	}

	// IDForm carries the target of delete and edit actions.
	IDForm struct {
		ID string `form:"id"`
	}

	ReportForm struct {
		Report string `form:"report"`
	}

	SettingsForm struct {
		InstitutionName string `form:"institutionName"`
		AcademicYear    string `form:"academicYear"`
		CurrentSemester string `form:"currentSemester"`
	}
)

func (v *adminView) Page(id session.Identity, st State) *ui.Page {
	active := resolve(adminMenu, st.View)
	page := v.shell(id, "Admin Portal", adminMenu, active)

	students, faculty, staff := v.Store.Students(), v.Store.Faculty(), v.Store.Staff()

	switch active {
	case "overview":
		page.Heading = "Admin Dashboard"
		page.Add(
			ui.StatCard("Total Students", ui.Itoa(len(students)), ""),
			ui.StatCard("Total Faculty", ui.Itoa(len(faculty)), ""),
			ui.StatCard("Total Staff", ui.Itoa(len(staff)), ""),
		)
		recent := students
		if len(recent) > 3 {
			recent = recent[:3]
		}
		studentTbl := &ui.Table{Columns: []string{"Name", "Roll No", "Program"}}
		for _, s := range recent {
			studentTbl.Rows = append(studentTbl.Rows, ui.Row{Cells: ui.Text(s.Name, s.RollNo, s.Program)})
		}
		facultyTbl := &ui.Table{Columns: []string{"Name", "Department", "Designation"}}
		for _, f := range faculty {
			facultyTbl.Rows = append(facultyTbl.Rows, ui.Row{Cells: ui.Text(f.Name, f.Department, f.Designation)})
		}
		page.Add(
			ui.Card{Title: "Recent Students", Table: studentTbl},
			ui.Card{Title: "Recent Faculty", Table: facultyTbl},
		)
	case "students":
		page.Heading = "Student Management"
		page.Actions = v.managementActions("students", "student", "Add Student")
		tbl := &ui.Table{Columns: []string{"ID", "Name", "Roll No", "Program", "Year", "Actions"}}
		for _, s := range students {
			tbl.Rows = append(tbl.Rows, ui.Row{
				Cells:   ui.Text(s.ID, s.Name, s.RollNo, s.Program, ui.Itoa(s.Year)),
				Actions: rowActions("students", "student", s.ID),
			})
		}
		page.Add(ui.Card{Table: tbl})
	case "faculty":
		page.Heading = "Faculty Management"
		page.Actions = v.managementActions("faculty", "faculty", "Add Faculty")
		tbl := &ui.Table{Columns: []string{"ID", "Name", "Department", "Designation", "Email", "Actions"}}
		for _, f := range faculty {
			tbl.Rows = append(tbl.Rows, ui.Row{
				Cells:   ui.Text(f.ID, f.Name, f.Department, f.Designation, f.Email),
				Actions: rowActions("faculty", "faculty", f.ID),
			})
		}
		page.Add(ui.Card{Table: tbl})
	case "staff":
		page.Heading = "Staff Management"
		page.Actions = v.managementActions("staff", "staff", "Add Staff")
		tbl := &ui.Table{Columns: []string{"ID", "Name", "Department", "Designation", "Joining Date", "Actions"}}
		for _, s := range staff {
			tbl.Rows = append(tbl.Rows, ui.Row{
				Cells:   ui.Text(s.ID, s.Name, s.Department, s.Designation, s.JoiningDate),
				Actions: rowActions("staff", "staff", s.ID),
			})
		}
		page.Add(ui.Card{Table: tbl})
	case "reports":
		page.Heading = "Reports"
		page.Add(
			ui.Card{Title: "Academic Reports", Buttons: reportButtons(academicReports)},
			ui.Card{Title: "Administrative Reports", Buttons: reportButtons(administrativeReports)},
		)
	case "settings":
		page.Heading = "System Settings"
		inst := v.Conf.Institution
		page.Add(ui.Card{Title: "General Settings", Form: &ui.Form{
			Action: ActionPath(session.RoleAdmin, "settings"),
			Fields: []ui.Field{
				{Label: "Institution Name", Name: "institutionName", Value: inst.Name},
				{Label: "Academic Year", Name: "academicYear", Value: inst.AcademicYear},
				{
					Label: "Current Semester", Name: "currentSemester", Type: "select",
					Options: ui.Select(inst.CurrentSemester, semesterOptions...),
				},
			},
			Submit: "Save Settings",
		}})
	}

	page.Modal = v.modal(st, active)
	return page
}

func (v *adminView) managementActions(view, entity, addLabel string) []ui.Button {
	return []ui.Button{
		{Label: "Export", Action: ActionPath(session.RoleAdmin, "export"), Fields: map[string]string{"view": view}},
		{Label: addLabel, Href: Href(State{View: view, Modal: "add-" + entity}), Tone: ui.TonePrimary},
	}
}

func rowActions(view, entity, id string) []ui.Button {
	return []ui.Button{
		{Label: "Edit", Href: Href(State{View: view, Modal: "edit-" + entity, ID: id})},
		{
			Label:  "Delete",
			Action: ActionPath(session.RoleAdmin, "delete-"+entity),
			Fields: map[string]string{"id": id},
			Tone:   ui.ToneDanger,
		},
	}
}

func reportButtons(reports []string) []ui.Button {
	btns := make([]ui.Button, 0, len(reports))
	for _, r := range reports {
		btns = append(btns, ui.Button{
			Label:  r,
			Action: ActionPath(session.RoleAdmin, "report"),
			Fields: map[string]string{"report": r},
		})
	}
	return btns
}

func isReport(name string) bool {
	for _, r := range append(academicReports[:len(academicReports):len(academicReports)], administrativeReports...) {
		if r == name {
			return true
		}
	}
	return false
}

func (v *adminView) modal(st State, active string) *ui.Modal {
	cancel := Href(State{View: active})
	verb, entity := splitModal(st.Modal)
	if verb == "" {
		return nil
	}

	m := &ui.Modal{
		Action:     ActionPath(session.RoleAdmin, st.Modal),
		CancelHref: cancel,
		Submit:     "Add",
	}
	var fields []ui.Field
	switch entity {
	case "student":
		var s college.Student
		if verb == "edit" {
			var ok bool
			if s, ok = v.Store.Student(st.ID); !ok {
				return nil
			}
		}
		fields = []ui.Field{
			{Label: "Name", Name: "name", Value: s.Name},
			{Label: "Email", Name: "email", Type: "email", Value: s.Email},
			{Label: "Roll Number", Name: "rollNo", Value: s.RollNo},
			{Label: "Program", Name: "program", Value: s.Program, Placeholder: "e.g., B.Tech CSE"},
			{Label: "Year", Name: "year", Type: "number", Value: intValue(s.Year), Placeholder: "1-4"},
			{Label: "Semester", Name: "semester", Type: "number", Value: intValue(s.Semester), Placeholder: "1-8"},
			{Label: "GPA", Name: "gpa", Type: "number", Step: "0.01", Value: floatValue(s.GPA)},
			{Label: "Attendance (%)", Name: "attendance", Type: "number", Value: intValue(s.Attendance)},
			{Label: "Phone", Name: "phone", Value: s.Phone},
			{Label: "Address", Name: "address", Value: s.Address},
		}
	case "faculty":
		var f college.Faculty
		if verb == "edit" {
			var ok bool
			if f, ok = v.Store.FacultyMember(st.ID); !ok {
				return nil
			}
		}
		fields = []ui.Field{
			{Label: "Name", Name: "name", Value: f.Name},
			{Label: "Email", Name: "email", Type: "email", Value: f.Email},
			{Label: "Department", Name: "department", Value: f.Department},
			{Label: "Designation", Name: "designation", Value: f.Designation},
			{Label: "Phone", Name: "phone", Value: f.Phone},
			{Label: "Joining Date", Name: "joiningDate", Type: "date", Value: f.JoiningDate},
		}
		if verb == "edit" {
			fields = append(fields, ui.Field{
				Label: "Courses", Name: "courses", Value: strings.Join(f.Courses, ", "), Placeholder: "e.g., CS301, CS302",
			})
		}
	case "staff":
		var s college.Staff
		if verb == "edit" {
			var ok bool
			if s, ok = v.Store.StaffMember(st.ID); !ok {
				return nil
			}
		}
		fields = []ui.Field{
			{Label: "Name", Name: "name", Value: s.Name},
			{Label: "Email", Name: "email", Type: "email", Value: s.Email},
			{Label: "Department", Name: "department", Value: s.Department},
			{Label: "Designation", Name: "designation", Value: s.Designation},
			{Label: "Phone", Name: "phone", Value: s.Phone},
			{Label: "Joining Date", Name: "joiningDate", Type: "date", Value: s.JoiningDate},
		}
	default:
		return nil
	}

	title := strings.ToUpper(entity[:1]) + entity[1:]
	if verb == "edit" {
		m.Title = "Edit " + title
		m.Submit = "Save"
		fields = append([]ui.Field{{Name: "id", Type: "hidden", Value: st.ID}}, fields...)
	} else {
		m.Title = "Add " + title
	}
	m.Fields = fields
	return m
}

// splitModal splits "add-student" into its verb and entity.
func splitModal(modal string) (verb, entity string) {
	parts := strings.SplitN(modal, "-", 2)
	if len(parts) != 2 || (parts[0] != "add" && parts[0] != "edit") {
		return "", ""
	}
	return parts[0], parts[1]
}

func intValue(i int) string {
	if i == 0 {
		return ""
	}
	return ui.Itoa(i)
}

func floatValue(f float64) string {
	if f == 0 {
		return ""
	}
	return formatFloat(f)
}

func (v *adminView) Do(_ session.Identity, action string, bind Binder) (Result, error) {
	now := nowFunc()
	switch action {
	case "add-student":
		var d college.StudentDraft
		if err := bindForm(bind, &d); err != nil {
			return Result{}, err
		}
		v.Store.AddStudent(d.Finalize(now))
		return success("students", "Student added successfully"), nil
	case "add-faculty":
		var d college.FacultyDraft
		if err := bindForm(bind, &d); err != nil {
			return Result{}, err
		}
		v.Store.AddFaculty(d.Finalize(now))
		return success("faculty", "Faculty added successfully"), nil
	case "add-staff":
		var d college.StaffDraft
		if err := bindForm(bind, &d); err != nil {
			return Result{}, err
		}
		v.Store.AddStaff(d.Finalize(now))
		return success("staff", "Staff added successfully"), nil

	case "edit-student":
		var form struct {
			IDForm
			college.StudentDraft
		}
		if err := bindForm(bind, &form); err != nil {
			return Result{}, err
		}
		if !v.Store.UpdateStudent(form.ID, form.StudentDraft.Patch()) {
			return failure("students", "Student "+form.ID+" not found"), nil
		}
		return success("students", "Student updated successfully"), nil
	case "edit-faculty":
		var form struct {
			IDForm
			college.FacultyDraft
		}
		if err := bindForm(bind, &form); err != nil {
			return Result{}, err
		}
		if !v.Store.UpdateFaculty(form.ID, form.FacultyDraft.Patch()) {
			return failure("faculty", "Faculty "+form.ID+" not found"), nil
		}
		return success("faculty", "Faculty updated successfully"), nil
	case "edit-staff":
		var form struct {
			IDForm
			college.StaffDraft
		}
		if err := bindForm(bind, &form); err != nil {
			return Result{}, err
		}
		if !v.Store.UpdateStaff(form.ID, form.StaffDraft.Patch()) {
			return failure("staff", "Staff "+form.ID+" not found"), nil
		}
		return success("staff", "Staff updated successfully"), nil

	case "delete-student", "delete-faculty", "delete-staff":
		var form IDForm
		if err := bindForm(bind, &form); err != nil {
			return Result{}, err
		}
		switch action {
		case "delete-student":
			v.Store.DeleteStudent(form.ID)
			return success("students", "Student deleted successfully"), nil
		case "delete-faculty":
			v.Store.DeleteFaculty(form.ID)
			return success("faculty", "Faculty deleted successfully"), nil
		default:
			v.Store.DeleteStaff(form.ID)
			return success("staff", "Staff deleted successfully"), nil
		}

	case "export":
		var form struct {
			View string `form:"view"`
		}
		if err := bindForm(bind, &form); err != nil {
			return Result{}, err
		}
		return success(resolve(adminMenu, form.View), "Data exported successfully"), nil
	case "report":
		var form ReportForm
		if err := bindForm(bind, &form); err != nil {
			return Result{}, err
		}
		if !isReport(form.Report) {
			return failure("reports", "Unknown report"), nil
		}
		return success("reports", form.Report+" generated successfully"), nil
	case "settings":
		var form SettingsForm
		if err := bindForm(bind, &form); err != nil {
			return Result{}, err
		}
		// not persisted
		return success("settings", "Settings saved successfully"), nil
	default:
		return Result{}, ErrUnknownAction
	}
}
