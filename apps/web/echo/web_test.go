package echoweb_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/trezcool/ccdbms/apps/web/echo"
	"github.com/trezcool/ccdbms/core/session"
)

func Test_webApp_anonymous(t *testing.T) {
	a := setup(t)

	tests := []httpTest{
		{name: "home", method: http.MethodGet, path: "/", wantCode: http.StatusFound, wantLocation: "/login"},
		{name: "dashboard", method: http.MethodGet, path: "/dashboard?view=students", wantCode: http.StatusSeeOther, wantLocation: "/login"},
		{name: "action", method: http.MethodPost, path: "/dashboard/admin/delete-student", form: form("id", "S101"), wantCode: http.StatusSeeOther, wantLocation: "/login"},
		{
			name: "login page", method: http.MethodGet, path: "/login", wantCode: http.StatusOK,
			wantBody: []string{"Select Role", "Placement Officer", "Demo credentials", `href="/login?demo=faculty"`},
		},
		{
			name: "demo prefill", method: http.MethodGet, path: "/login?demo=staff", wantCode: http.StatusOK,
			wantBody: []string{`value="ramesh.das"`, `value="staff123"`, `<option value="staff" selected>`},
		},
		{name: "unknown demo", method: http.MethodGet, path: "/login?demo=dean", wantCode: http.StatusOK, wantBody: []string{`name="username" value=""`}},
		{name: "healthz", method: http.MethodGet, path: "/healthz", wantCode: http.StatusOK, wantBody: []string{`"status":"ok"`, `"build":"test"`}},
		{name: "metrics", method: http.MethodGet, path: "/metrics", wantCode: http.StatusOK, wantBody: []string{"go_goroutines"}},
		{name: "not found", method: http.MethodGet, path: "/nope", wantCode: http.StatusNotFound, wantBody: []string{"<h1>404</h1>", "Not Found"}},
		{name: "trailing slash", method: http.MethodGet, path: "/login/", wantCode: http.StatusOK, wantBody: []string{"Select Role"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := a.do(t, tt.method, tt.path, tt.form, "")
			checkResponse(t, tt, rec)
		})
	}
}

func Test_webApp_login(t *testing.T) {
	a := setup(t)

	tests := []struct {
		httpTest
		wantSession bool
	}{
		{
			httpTest: httpTest{
				name: "admin", form: form("username", "admin", "password", "admin123", "role", "admin"),
				wantCode: http.StatusSeeOther, wantLocation: "/dashboard",
			},
			wantSession: true,
		},
		{
			httpTest: httpTest{
				name: "placement", form: form("username", "placement", "password", "placement123", "role", "placement"),
				wantCode: http.StatusSeeOther, wantLocation: "/dashboard",
			},
			wantSession: true,
		},
		{
			httpTest: httpTest{
				name: "missing password", form: form("username", "admin", "password", "", "role", "admin"),
				wantCode: http.StatusBadRequest, wantBody: []string{"Please fill all fields", `value="admin"`},
			},
		},
		{
			httpTest: httpTest{
				name: "blank role", form: form("username", "admin", "password", "admin123", "role", "  "),
				wantCode: http.StatusBadRequest, wantBody: []string{"Please fill all fields"},
			},
		},
		{
			httpTest: httpTest{
				name: "whitespace password", form: form("username", "admin", "password", "   ", "role", "admin"),
				wantCode: http.StatusUnauthorized, wantBody: []string{"Invalid credentials"},
			},
		},
		{
			httpTest: httpTest{
				name: "wrong password", form: form("username", "admin", "password", "wrong", "role", "admin"),
				wantCode: http.StatusUnauthorized, wantBody: []string{"Invalid credentials"},
			},
		},
		{
			httpTest: httpTest{
				name: "wrong role", form: form("username", "admin", "password", "admin123", "role", "student"),
				wantCode: http.StatusUnauthorized, wantBody: []string{"Invalid credentials"},
			},
		},
		{
			httpTest: httpTest{
				name: "unknown role", form: form("username", "admin", "password", "admin123", "role", "dean"),
				wantCode: http.StatusUnauthorized, wantBody: []string{"Invalid credentials"},
			},
		},
		{
			httpTest: httpTest{
				name: "untrimmed username", form: form("username", " admin", "password", "admin123", "role", "admin"),
				wantCode: http.StatusUnauthorized, wantBody: []string{"Invalid credentials"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := a.do(t, http.MethodPost, "/login", tt.form, "")
			checkResponse(t, tt.httpTest, rec)

			cookie := responseCookie(rec, SessionCookie)
			if !tt.wantSession {
				assert.Nil(t, cookie)
				return
			}
			require.NotNil(t, cookie)
			assert.True(t, cookie.HttpOnly)
			claims, err := ParseToken(cookie.Value, a.conf.SecretKey)
			require.NoError(t, err)
			assert.Equal(t, session.Role(tt.form.Get("role")), claims.Role)
		})
	}

	t.Run("metrics", func(t *testing.T) {
		rec := a.do(t, http.MethodGet, "/metrics", nil, "")
		assert.Contains(t, rec.Body.String(), `ccdbms_logins_total{outcome="success",role="admin"} 1`)
		assert.Contains(t, rec.Body.String(), `ccdbms_logins_total{outcome="failure",role="unknown"} 1`)
		assert.Contains(t, rec.Body.String(), `ccdbms_logins_total{outcome="incomplete",role="unknown"} 1`)
	})
}

func Test_webApp_sessionLifecycle(t *testing.T) {
	a := setup(t)

	rec := a.do(t, http.MethodPost, "/login", form("username", "john.doe", "password", "student123", "role", "student"), "")
	require.Equal(t, http.StatusSeeOther, rec.Code)
	cookie := responseCookie(rec, SessionCookie)
	require.NotNil(t, cookie)

	get := func(path string) *http.Response {
		req, rec := newRequest(http.MethodGet, path, nil, cookie)
		a.ServeHTTP(rec, req)
		return rec.Result()
	}

	res := get("/dashboard")
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res = get("/")
	assert.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "/dashboard", res.Header.Get("Location"))

	res = get("/login")
	assert.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "/dashboard", res.Header.Get("Location"))

	req, out := newRequest(http.MethodPost, "/logout", form(), cookie)
	a.ServeHTTP(out, req)
	assert.Equal(t, http.StatusSeeOther, out.Code)
	assert.Equal(t, "/login", out.Header().Get("Location"))
	cleared := responseCookie(out, SessionCookie)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
	assert.True(t, cleared.MaxAge < 0)

	// the browser drops the cookie
	req, out = newRequest(http.MethodGet, "/dashboard", nil)
	a.ServeHTTP(out, req)
	assert.Equal(t, http.StatusSeeOther, out.Code)
}

func Test_webApp_tamperedSession(t *testing.T) {
	a := setup(t)
	cookie := a.sessionCookie(t, session.RoleAdmin)

	tests := []struct {
		name  string
		value string
	}{
		{name: "tampered", value: cookie.Value + "x"},
		{name: "garbage", value: "not-a-token"},
		{name: "empty", value: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodGet, "/dashboard", nil, &http.Cookie{Name: SessionCookie, Value: tt.value})
			a.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, "/login", rec.Header().Get("Location"))
		})
	}
}

func Test_webApp_dashboards(t *testing.T) {
	a := setup(t)

	tests := []httpTest{
		{name: "student", role: session.RoleStudent, path: "/dashboard?view=profile", wantBody: []string{"Student Portal", "John Doe", "112001"}},
		{name: "faculty", role: session.RoleFaculty, path: "/dashboard?view=courses", wantBody: []string{"Faculty Portal", "Database Management Systems", "Operating Systems"}},
		{name: "admin", role: session.RoleAdmin, path: "/dashboard?view=staff", wantBody: []string{"Admin Portal", "Kavita Singh"}},
		{name: "staff", role: session.RoleStaff, path: "/dashboard", wantBody: []string{"Staff Portal", "Ramesh Das", "Accounts"}},
		{name: "placement", role: session.RolePlacement, path: "/dashboard?view=statistics", wantBody: []string{"Placement Portal", "75.0"}},
		{name: "unknown view", role: session.RoleAdmin, path: "/dashboard?view=payroll", wantBody: []string{"Admin Dashboard"}},
		{name: "modal", role: session.RoleAdmin, path: "/dashboard?view=students&modal=edit-student&id=S102", wantBody: []string{"Edit Student", `value="Amit Roy"`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.wantCode = http.StatusOK
			rec := a.do(t, http.MethodGet, tt.path, nil, tt.role)
			checkResponse(t, tt, rec)
		})
	}
}

func Test_webApp_actionGuards(t *testing.T) {
	a := setup(t)

	tests := []httpTest{
		{name: "other role", role: session.RoleStudent, path: "/dashboard/admin/add-student", wantCode: http.StatusForbidden, wantBody: []string{"permission denied"}},
		{name: "faculty as placement", role: session.RoleFaculty, path: "/dashboard/placement/add", wantCode: http.StatusForbidden},
		{name: "unknown role", role: session.RoleAdmin, path: "/dashboard/dean/add-student", wantCode: http.StatusNotFound},
		{name: "unknown action", role: session.RoleAdmin, path: "/dashboard/admin/rename-student", wantCode: http.StatusNotFound},
		{name: "read only role", role: session.RoleStaff, path: "/dashboard/staff/edit", wantCode: http.StatusNotFound},
		{name: "student", role: session.RoleStudent, path: "/dashboard/student/add-student", wantCode: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := a.do(t, http.MethodPost, tt.path, form("name", "Intruder"), tt.role)
			checkResponse(t, tt, rec)
		})
	}
	assert.Len(t, a.store.Students(), 4)
}

func Test_webApp_adminRoundTrip(t *testing.T) {
	a := setup(t)
	admin := session.RoleAdmin

	// add
	rec := a.do(t, http.MethodPost, "/dashboard/admin/add-student", form("name", "Neha Gupta", "rollNo", "112005", "program", "B.Tech IT"), admin)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard?view=students", rec.Header().Get("Location"))
	require.NotNil(t, responseCookie(rec, FlashCookie))

	page := a.follow(t, rec, admin)
	assert.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), "Student added successfully")
	assert.Contains(t, page.Body.String(), "Neha Gupta")
	flash := responseCookie(page, FlashCookie)
	require.NotNil(t, flash, "the flash is cleared once shown")
	assert.True(t, flash.MaxAge < 0)

	students := a.store.Students()
	require.Len(t, students, 5)
	added := students[4]
	assert.Equal(t, 1, added.Year)
	assert.Equal(t, 1, added.Semester)

	// edit
	rec = a.do(t, http.MethodPost, "/dashboard/admin/edit-student", form("id", added.ID, "gpa", "3.5", "name", ""), admin)
	assert.Contains(t, a.follow(t, rec, admin).Body.String(), "Student updated successfully")
	edited, ok := a.store.Student(added.ID)
	require.True(t, ok)
	assert.Equal(t, 3.5, edited.GPA)
	assert.Equal(t, "Neha Gupta", edited.Name)

	rec = a.do(t, http.MethodPost, "/dashboard/admin/edit-student", form("id", "S999", "gpa", "3.5"), admin)
	assert.Contains(t, a.follow(t, rec, admin).Body.String(), "Student S999 not found")

	// delete
	rec = a.do(t, http.MethodPost, "/dashboard/admin/delete-student", form("id", added.ID), admin)
	assert.Contains(t, a.follow(t, rec, admin).Body.String(), "Student deleted successfully")
	_, ok = a.store.Student(added.ID)
	assert.False(t, ok)
	assert.Len(t, a.store.Students(), 4)

	// faculty and staff
	rec = a.do(t, http.MethodPost, "/dashboard/admin/add-faculty", form("name", "Dr. Meera Iyer", "department", "Mathematics"), admin)
	assert.Equal(t, "/dashboard?view=faculty", rec.Header().Get("Location"))
	assert.Len(t, a.store.Faculty(), 3)

	rec = a.do(t, http.MethodPost, "/dashboard/admin/delete-staff", form("id", "ST102"), admin)
	assert.Equal(t, "/dashboard?view=staff", rec.Header().Get("Location"))
	assert.Len(t, a.store.Staff(), 1)

	t.Run("metrics", func(t *testing.T) {
		body := a.do(t, http.MethodGet, "/metrics", nil, "").Body.String()
		assert.Contains(t, body, `ccdbms_actions_total{action="add-student",outcome="success",role="admin"} 1`)
		assert.Contains(t, body, `ccdbms_actions_total{action="edit-student",outcome="error",role="admin"} 1`)
	})
}

func Test_webApp_notifications(t *testing.T) {
	a := setup(t)

	tests := []struct {
		name     string
		role     session.Role
		path     string
		form     map[string]string
		wantView string
		wantMsg  string
	}{
		{
			name: "placement without student", role: session.RolePlacement, path: "/dashboard/placement/add",
			form: map[string]string{"company": "Google", "role": "SDE"}, wantView: "/dashboard?view=placements", wantMsg: "Please select a student",
		},
		{
			name: "placement", role: session.RolePlacement, path: "/dashboard/placement/add",
			form: map[string]string{"studentId": "S103", "company": "Google", "role": "SDE", "package": "₹12 LPA"}, wantView: "/dashboard?view=placements", wantMsg: "Placement record added successfully",
		},
		{
			name: "marks", role: session.RoleFaculty, path: "/dashboard/faculty/marks",
			form: map[string]string{"studentId": "S101", "marks": "95"}, wantView: "/dashboard?view=marks", wantMsg: "Marks submitted successfully (demo)",
		},
		{
			name: "export", role: session.RoleAdmin, path: "/dashboard/admin/export",
			form: map[string]string{"view": "faculty"}, wantView: "/dashboard?view=faculty", wantMsg: "Data exported successfully",
		},
		{
			name: "settings", role: session.RoleAdmin, path: "/dashboard/admin/settings",
			form: map[string]string{"name": "XYZ College"}, wantView: "/dashboard?view=settings", wantMsg: "Settings saved successfully",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := form()
			for k, v := range tt.form {
				data.Set(k, v)
			}
			rec := a.do(t, http.MethodPost, tt.path, data, tt.role)
			require.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, tt.wantView, rec.Header().Get("Location"))
			assert.Contains(t, a.follow(t, rec, tt.role).Body.String(), tt.wantMsg)
		})
	}

	placements := a.store.Placements()
	require.Len(t, placements, 4)
	assert.Equal(t, "Google", placements[3].Company)
	assert.Equal(t, "SDE", placements[3].Role)
}
