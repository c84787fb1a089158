package views

import (
	"github.com/pkg/errors"

	"github.com/trezcool/ccdbms/apps/web/ui"
	"github.com/trezcool/ccdbms/core"
	"github.com/trezcool/ccdbms/core/college"
	"github.com/trezcool/ccdbms/core/session"
)

var placementMenu = []subView{
	{"overview", "Overview"},
	{"placements", "Placement Records"},
	{"statistics", "Statistics"},
}

type (
	placementView struct {
		*Deps
	}

	StatusForm struct {
		ID     string `form:"id" validate:"required"`
		Status string `form:"status" validate:"notblank"`
	}
)

func statusTone(status string) string {
	switch status {
	case college.StatusDeclined:
		return ui.ToneDanger
	case college.StatusOfferReceived:
		return ui.TonePrimary
	default:
		return ui.ToneSuccess
	}
}

func (v *placementView) Page(id session.Identity, st State) *ui.Page {
	active := resolve(placementMenu, st.View)
	page := v.shell(id, "Placement Portal", placementMenu, active)

	students, placements := v.Store.Students(), v.Store.Placements()
	stats := college.ComputePlacementStats(students, placements)

	switch active {
	case "overview":
		page.Heading = "Placement Dashboard"
		page.Subheading = "Manage student placement records and statistics"
		page.Add(
			ui.StatCard("Total Placements", ui.Itoa(stats.Placed), ""),
			ui.StatCard("Placement Rate", stats.Rate+"%", ""),
			ui.StatCard("Total Students", ui.Itoa(stats.TotalStudents), ""),
			ui.StatCard("Highest Package", stats.Highest, ""),
		)
		tbl := &ui.Table{Columns: []string{"Student", "Roll No", "Company", "Role", "Package", "Status"}, Empty: "No placements yet"}
		for _, p := range placements {
			tbl.Rows = append(tbl.Rows, ui.Row{Cells: append(
				ui.Text(p.StudentName, p.RollNo, p.Company, p.Role, p.Package),
				ui.Badge(p.Status, statusTone(p.Status)),
			)})
		}
		page.Add(ui.Card{Title: "Recent Placements", Table: tbl})
	case "placements":
		page.Heading = "Placement Records"
		page.Actions = []ui.Button{{
			Label: "Add Placement",
			Href:  Href(State{View: "placements", Modal: "add"}),
			Tone:  ui.TonePrimary,
		}}
		tbl := &ui.Table{
			Columns: []string{"ID", "Student Name", "Roll No", "Company", "Role", "Package", "Status", "Offer Date", "Actions"},
			Empty:   "No placements yet",
		}
		for _, p := range placements {
			cells := ui.Text(p.ID, p.StudentName, p.RollNo, p.Company, p.Role, p.Package)
			cells = append(cells, ui.Badge(p.Status, statusTone(p.Status)), ui.Cell{Text: p.OfferDate})
			tbl.Rows = append(tbl.Rows, ui.Row{
				Cells: cells,
				Actions: []ui.Button{
					{Label: "Update Status", Href: Href(State{View: "placements", Modal: "status", ID: p.ID})},
					{
						Label:   "Delete",
						Action:  ActionPath(session.RolePlacement, "delete"),
						Fields:  map[string]string{"id": p.ID},
						Tone:    ui.ToneDanger,
						Confirm: "Delete placement " + p.ID + "?",
					},
				},
			})
		}
		page.Add(ui.Card{Table: tbl})
	case "statistics":
		page.Heading = "Placement Statistics"
		companies := make([]ui.Item, 0, len(stats.Companies))
		for _, c := range stats.Companies {
			companies = append(companies, ui.Item{Title: c.Label, Badge: plural(c.Count, "student", "students"), Tone: ui.TonePrimary})
		}
		packages := make([]ui.Item, 0, len(stats.Packages)+2)
		for _, b := range stats.Packages {
			packages = append(packages, ui.Item{Title: b.Label, Badge: plural(b.Count, "student", "students"), Tone: ui.ToneSuccess})
		}
		packages = append(packages,
			ui.Item{Title: "Average Package", Badge: stats.Average, Tone: ui.TonePrimary},
			ui.Item{Title: "Highest Package", Badge: stats.Highest, Tone: ui.ToneWarning},
		)
		roles := make([]ui.Item, 0, len(stats.Roles))
		for _, r := range stats.Roles {
			roles = append(roles, ui.Item{Title: r.Label, Badge: ui.Itoa(r.Count), Tone: ui.ToneSuccess})
		}
		page.Add(
			ui.Card{Title: "Company-wise Placements", Items: companies},
			ui.Card{Title: "Package Distribution", Items: packages},
		)
		page.Add(
			ui.Card{Title: "Role Distribution", Items: roles},
			ui.Card{Title: "Placement Status", Details: []ui.Detail{
				{Label: "Placed Students", Value: ui.Itoa(stats.Placed)},
				{Label: "Total Students", Value: ui.Itoa(stats.TotalStudents)},
				{Label: "Placement Rate", Value: stats.Rate + "%"},
			}},
		)
	}

	page.Modal = v.modal(st, active, students)
	return page
}

func (v *placementView) modal(st State, active string, students []college.Student) *ui.Modal {
	cancel := Href(State{View: active})
	switch st.Modal {
	case "add":
		opts := make([]ui.Option, 0, len(students))
		for _, s := range students {
			opts = append(opts, ui.Option{Value: s.ID, Label: s.Name + " (" + s.RollNo + ")"})
		}
		return &ui.Modal{
			Title:  "Add Placement Record",
			Action: ActionPath(session.RolePlacement, "add"),
			Fields: []ui.Field{
				{Label: "Student", Name: "studentId", Type: "select", Placeholder: "Select Student", Options: opts},
				{Label: "Company Name", Name: "company", Placeholder: "e.g., TCS, Infosys, Wipro"},
				{Label: "Role", Name: "role", Placeholder: "e.g., Software Engineer"},
				{Label: "Package", Name: "package", Placeholder: "e.g., ₹7 LPA"},
				{Label: "Offer Date", Name: "offerDate", Type: "date"},
			},
			Submit:     "Add Placement",
			CancelHref: cancel,
		}
	case "status":
		p, ok := v.Store.Placement(st.ID)
		if !ok {
			return nil
		}
		return &ui.Modal{
			Title:  "Update Status",
			Action: ActionPath(session.RolePlacement, "status"),
			Info: []ui.Detail{
				{Label: "Student", Value: p.StudentName + " (" + p.RollNo + ")"},
				{Label: "Company", Value: p.Company},
			},
			Fields: []ui.Field{
				{Name: "id", Type: "hidden", Value: p.ID},
				{Label: "Status", Name: "status", Type: "select", Options: ui.Select(p.Status, college.PlacementStatuses...)},
			},
			Submit:     "Update",
			CancelHref: cancel,
		}
	default:
		return nil
	}
}

// validate reports whether form passes its presence checks.
func (v *placementView) validate(form interface{}) (bool, error) {
	err := v.Validate.Struct(form)
	if err == nil {
		return true, nil
	}
	if _, ok := core.AsValidationError(err, v.Translator).(*core.ValidationError); ok {
		return false, nil
	}
	return false, errors.Wrap(err, "validating form")
}

func (v *placementView) Do(_ session.Identity, action string, bind Binder) (Result, error) {
	switch action {
	case "add":
		var d college.PlacementDraft
		if err := bindForm(bind, &d); err != nil {
			return Result{}, err
		}
		ok, err := v.validate(d)
		if err != nil {
			return Result{}, err
		}
		student, found := v.Store.Student(d.StudentID)
		if !ok || !found {
			return failure("placements", "Please select a student"), nil
		}
		v.Store.AddPlacement(d.Finalize(student, nowFunc()))
		return success("placements", "Placement record added successfully"), nil
	case "status":
		var form StatusForm
		if err := bindForm(bind, &form); err != nil {
			return Result{}, err
		}
		ok, err := v.validate(form)
		if err != nil {
			return Result{}, err
		}
		if !ok || !isStatus(form.Status) {
			return failure("placements", "Please select a valid status"), nil
		}
		if !v.Store.UpdatePlacement(form.ID, college.StatusPatch(form.Status)) {
			return failure("placements", "Placement "+form.ID+" not found"), nil
		}
		return success("placements", "Placement status updated successfully"), nil
	case "delete":
		var form IDForm
		if err := bindForm(bind, &form); err != nil {
			return Result{}, err
		}
		v.Store.DeletePlacement(form.ID)
		return success("placements", "Placement record deleted successfully"), nil
	default:
		return Result{}, ErrUnknownAction
	}
}

func isStatus(s string) bool {
	for _, st := range college.PlacementStatuses {
		if st == s {
			return true
		}
	}
	return false
}
