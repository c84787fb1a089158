package views

import (
	"github.com/trezcool/ccdbms/apps/web/ui"
	"github.com/trezcool/ccdbms/core/college"
	"github.com/trezcool/ccdbms/core/session"
)

var facultyMenu = []subView{
	{"overview", "Overview"},
	{"profile", "My Profile"},
	{"courses", "My Courses"},
	{"students", "Student List"},
	{"marks", "Enter Marks"},
}

type facultyView struct {
	*Deps
}

// MarksForm is posted by the "Enter Marks" modal.
type MarksForm struct {
	StudentID string `form:"studentId"`
	Marks     string `form:"marks"`
}

func (v *facultyView) Page(id session.Identity, st State) *ui.Page {
	active := resolve(facultyMenu, st.View)
	page := v.shell(id, "Faculty Portal", facultyMenu, active)

	faculty, ok := v.Store.FacultyMember(id.ID)
	if !ok {
		faculty = college.Faculty{ID: id.ID, Name: id.Name}
	}
	courses := college.FacultyCourses(faculty, v.Store.Courses())
	students := college.FacultyStudents(faculty, v.Store.Courses(), v.Store.Students())
	grades := v.Store.Grades()

	marksOf := func(s college.Student) string {
		if g, ok := college.FacultyGrade(faculty, s.ID, grades); ok {
			return ui.Itoa(g.Marks)
		}
		return "-"
	}

	switch active {
	case "overview":
		page.Heading = "Welcome, " + faculty.Name + "!"
		page.Subheading = faculty.Designation + " - " + faculty.Department
		page.Add(
			ui.StatCard("Total Courses", ui.Itoa(len(courses)), ""),
			ui.StatCard("Total Students", ui.Itoa(len(students)), ""),
			ui.StatCard("Department", faculty.Department, ""),
		)
		page.Add(ui.Card{Title: "My Courses", Table: courseTable(courses)})
	case "profile":
		page.Heading = "My Profile"
		page.Add(ui.Card{Details: []ui.Detail{
			{Label: "Faculty ID", Value: faculty.ID},
			{Label: "Name", Value: faculty.Name},
			{Label: "Department", Value: faculty.Department},
			{Label: "Designation", Value: faculty.Designation},
			{Label: "Email", Value: faculty.Email},
			{Label: "Phone", Value: faculty.Phone},
			{Label: "Joining Date", Value: faculty.JoiningDate},
		}})
	case "courses":
		page.Heading = "My Courses"
		page.Add(ui.Card{Table: courseTable(courses)})
	case "students":
		page.Heading = "Student List"
		tbl := &ui.Table{Columns: []string{"Student Name", "Roll No", "Program", "Semester", "Marks"}, Empty: "No students"}
		for _, s := range students {
			tbl.Rows = append(tbl.Rows, ui.Row{Cells: ui.Text(s.Name, s.RollNo, s.Program, ui.Itoa(s.Semester), marksOf(s))})
		}
		page.Add(ui.Card{Table: tbl})
	case "marks":
		page.Heading = "Enter Marks"
		tbl := &ui.Table{Columns: []string{"Student Name", "Roll No", "Current Marks", "Actions"}, Empty: "No students"}
		for _, s := range students {
			tbl.Rows = append(tbl.Rows, ui.Row{
				Cells: ui.Text(s.Name, s.RollNo, marksOf(s)),
				Actions: []ui.Button{{
					Label: "Enter Marks",
					Href:  Href(State{View: "marks", Modal: "marks", ID: s.ID}),
					Tone:  ui.TonePrimary,
				}},
			})
		}
		page.Add(ui.Card{Table: tbl})
	}

	if st.Modal == "marks" {
		if s, ok := v.Store.Student(st.ID); ok {
			page.Modal = v.marksModal(s, courses, active)
		}
	}
	return page
}

// marksModal is prefilled with the student's marks in the first course of the faculty.
func (v *facultyView) marksModal(s college.Student, courses []college.Course, active string) *ui.Modal {
	var course, marks string
	if len(courses) > 0 {
		course = courses[0].Name
		if g, ok := college.CourseGrade(s.ID, courses[0].ID, v.Store.Grades()); ok {
			marks = ui.Itoa(g.Marks)
		}
	}
	return &ui.Modal{
		Title:  "Enter Marks",
		Action: ActionPath(session.RoleFaculty, "marks"),
		Info: []ui.Detail{
			{Label: "Student", Value: s.Name + " (" + s.RollNo + ")"},
			{Label: "Course", Value: course},
		},
		Fields: []ui.Field{
			{Name: "studentId", Type: "hidden", Value: s.ID},
			{Label: "Marks (out of 100)", Name: "marks", Type: "number", Value: marks},
		},
		Submit:     "Submit",
		CancelHref: Href(State{View: active}),
	}
}

func (v *facultyView) Do(_ session.Identity, action string, bind Binder) (Result, error) {
	switch action {
	case "marks":
		var form MarksForm
		if err := bindForm(bind, &form); err != nil {
			return Result{}, err
		}
		// grades are static reference data: nothing is stored
		return success("marks", "Marks submitted successfully (demo)"), nil
	default:
		return Result{}, ErrUnknownAction
	}
}
