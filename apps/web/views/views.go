// Package views builds the role dashboards and performs their actions.
package views

import (
	"math/rand"
	"net/url"
	"strconv"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/trezcool/ccdbms/apps/web/ui"
	"github.com/trezcool/ccdbms/core"
	"github.com/trezcool/ccdbms/core/college"
	"github.com/trezcool/ccdbms/core/session"
)

const DashboardPath = "/dashboard"

// mockable
var (
	nowFunc  = time.Now
	randIntn = rand.Intn
)

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrUnknownRole   = errors.New("no view for role")
)

type (
	// Deps are shared by every view.
	Deps struct {
		Store      *college.Service
		Conf       *core.Config
		Validate   *validator.Validate
		Translator ut.Translator
	}

	// State is the interaction state carried by the dashboard URL.
	State struct {
		View  string `query:"view"`
		Modal string `query:"modal"`
		ID    string `query:"id"`
	}

	// Binder fills dst from the submitted form.
	Binder func(dst interface{}) error

	// Result of an action: the sub-view to go back to and the notification to show there.
	Result struct {
		View  string
		Toast ui.Toast
	}

	View interface {
		// Page renders the dashboard of id in state st.
		Page(id session.Identity, st State) *ui.Page
		// Do performs action with the form read by bind.
		Do(id session.Identity, action string, bind Binder) (Result, error)
	}
)

// For returns the view of role.
func For(role session.Role, deps *Deps) (View, error) {
	switch role {
	case session.RoleStudent:
		return &studentView{deps}, nil
	case session.RoleFaculty:
		return &facultyView{deps}, nil
	case session.RoleAdmin:
		return &adminView{deps}, nil
	case session.RoleStaff:
		return &staffView{deps}, nil
	case session.RolePlacement:
		return &placementView{deps}, nil
	default:
		return nil, errors.Wrap(ErrUnknownRole, string(role))
	}
}

// Href returns the dashboard URL of the given state.
func Href(st State) string {
	q := make(url.Values)
	if st.View != "" {
		q.Set("view", st.View)
	}
	if st.Modal != "" {
		q.Set("modal", st.Modal)
	}
	if st.ID != "" {
		q.Set("id", st.ID)
	}
	if len(q) == 0 {
		return DashboardPath
	}
	return DashboardPath + "?" + q.Encode()
}

// ActionPath returns the URL actions of role are posted to.
func ActionPath(role session.Role, action string) string {
	return DashboardPath + "/" + string(role) + "/" + action
}

type subView struct {
	key   string
	label string
}

// resolve returns the requested sub-view, or the first one when it is unknown.
func resolve(menu []subView, requested string) string {
	for _, sv := range menu {
		if sv.key == requested {
			return requested
		}
	}
	return menu[0].key
}

func (d *Deps) shell(id session.Identity, portal string, menu []subView, active string) *ui.Page {
	page := &ui.Page{
		AppName:   d.Conf.AppName,
		Portal:    portal,
		UserName:  id.Name,
		RoleLabel: id.Role.Label(),
	}
	for _, sv := range menu {
		page.Menu = append(page.Menu, ui.MenuItem{
			Label:  sv.label,
			Href:   Href(State{View: sv.key}),
			Active: sv.key == active,
		})
		if sv.key == active {
			page.Title = sv.label
		}
	}
	return page
}

func success(view, msg string) Result {
	return Result{View: view, Toast: ui.Toast{Message: msg, Type: ui.ToastSuccess}}
}

func failure(view, msg string) Result {
	return Result{View: view, Toast: ui.Toast{Message: msg, Type: ui.ToastError}}
}

// bindForm binds the form into dst, wrapping binding failures.
func bindForm(bind Binder, dst interface{}) error {
	if err := bind(dst); err != nil {
		return errors.Wrap(err, "binding form")
	}
	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func percent(i int) string {
	return strconv.Itoa(i) + "%"
}

func plural(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return strconv.Itoa(n) + " " + many
}

// courseTable is the course table shared by the student and faculty views.
func courseTable(courses []college.Course) *ui.Table {
	tbl := &ui.Table{Columns: []string{"Course Code", "Course Name", "Credits", "Semester"}, Empty: "No courses"}
	for _, c := range courses {
		tbl.Rows = append(tbl.Rows, ui.Row{Cells: ui.Text(c.Code, c.Name, ui.Itoa(c.Credits), ui.Itoa(c.Semester))})
	}
	return tbl
}
