package views

import (
	"github.com/trezcool/ccdbms/apps/web/ui"
	"github.com/trezcool/ccdbms/core/college"
	"github.com/trezcool/ccdbms/core/session"
)

var studentMenu = []subView{
	{"overview", "Overview"},
	{"profile", "My Profile"},
	{"courses", "My Courses"},
	{"grades", "My Grades"},
	{"attendance", "Attendance"},
	{"placement", "Placement"},
}

type studentView struct {
	*Deps
}

func (v *studentView) Page(id session.Identity, st State) *ui.Page {
	active := resolve(studentMenu, st.View)
	page := v.shell(id, "Student Portal", studentMenu, active)

	student, ok := v.Store.Student(id.ID)
	if !ok {
		student = college.Student{ID: id.ID, Name: id.Name}
	}
	grades := college.StudentGrades(student.ID, v.Store.Grades())
	courses := college.SemesterCourses(student.Semester, v.Store.Courses())
	placement, placed := college.StudentPlacement(student.ID, v.Store.Placements())

	switch active {
	case "overview":
		page.Heading = "Welcome, " + student.Name + "!"
		page.Subheading = "Here's your academic overview"
		page.Add(
			ui.StatCard("Current GPA", formatFloat(student.GPA), ""),
			ui.StatCard("Attendance", percent(student.Attendance), ""),
			ui.StatCard("Current Semester", ui.Itoa(student.Semester), ""),
		)
		page.Add(ui.Card{Title: "Recent Grades", Table: gradeTable(grades, false)})
		if placed {
			page.Add(ui.Card{Title: "Placement Status", Details: []ui.Detail{
				{Label: "Status", Value: placement.Status},
				{Label: "Company", Value: placement.Company},
				{Label: "Role", Value: placement.Role},
				{Label: "Package", Value: placement.Package},
			}})
		}
	case "profile":
		page.Heading = "My Profile"
		page.Add(ui.Card{Details: []ui.Detail{
			{Label: "Student ID", Value: student.ID},
			{Label: "Roll Number", Value: student.RollNo},
			{Label: "Name", Value: student.Name},
			{Label: "Program", Value: student.Program},
			{Label: "Year", Value: ui.Itoa(student.Year)},
			{Label: "Semester", Value: ui.Itoa(student.Semester)},
			{Label: "Email", Value: student.Email},
			{Label: "Phone", Value: student.Phone},
			{Label: "Address", Value: student.Address},
		}})
	case "courses":
		page.Heading = "My Courses"
		page.Add(ui.Card{Table: courseTable(courses)})
	case "grades":
		page.Heading = "My Grades"
		page.Add(ui.Card{Table: gradeTable(grades, true)})
	case "attendance":
		page.Heading = "Attendance"
		eligibility := "Below minimum requirement"
		if student.ExamEligible() {
			eligibility = "Eligible for exams"
		}
		perCourse := make([]ui.Item, 0, len(courses))
		for _, c := range courses {
			// cosmetic, redrawn on every render
			perCourse = append(perCourse, ui.Item{Title: c.Name, Badge: percent(88 + randIntn(10)), Tone: ui.ToneSuccess})
		}
		page.Add(
			ui.StatCard("Overall Attendance", percent(student.Attendance), eligibility),
			ui.Card{Title: "Course-wise Attendance", Items: perCourse},
		)
	case "placement":
		page.Heading = "Placement Status"
		if !placed {
			page.Add(ui.Card{Note: "No placement records found"})
			break
		}
		page.Add(ui.Card{Title: placement.Company, Details: []ui.Detail{
			{Label: "Status", Value: placement.Status},
			{Label: "Role", Value: placement.Role},
			{Label: "Package", Value: placement.Package},
			{Label: "Offer Date", Value: placement.OfferDate},
		}})
	}
	return page
}

// Do always fails: students have no actions.
func (v *studentView) Do(session.Identity, string, Binder) (Result, error) {
	return Result{}, ErrUnknownAction
}

func gradeTable(grades []college.Grade, badge bool) *ui.Table {
	tbl := &ui.Table{Columns: []string{"Course", "Code", "Grade", "Marks"}, Empty: "No grades yet"}
	for _, g := range grades {
		grade := ui.Cell{Text: g.Grade}
		if badge {
			grade.Badge = ui.TonePrimary
		}
		tbl.Rows = append(tbl.Rows, ui.Row{Cells: []ui.Cell{
			{Text: g.CourseName}, {Text: g.CourseCode}, grade, {Text: ui.Itoa(g.Marks)},
		}})
	}
	return tbl
}
