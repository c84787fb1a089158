package echoweb_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	. "github.com/trezcool/ccdbms/apps/web/echo"
	"github.com/trezcool/ccdbms/core"
	"github.com/trezcool/ccdbms/core/college"
	"github.com/trezcool/ccdbms/core/session"
	"github.com/trezcool/ccdbms/tests"
)

type app struct {
	Server
	conf  *core.Config
	store *college.Service
}

func setup(t *testing.T) *app {
	t.Helper()
	conf := core.NewTestConfig()
	store := testutil.NewStore()
	translator := core.NewTranslator()

	srv := NewServer(ServerDeps{
		Conf:           conf,
		Logger:         testutil.NewLogger(conf),
		Store:          store,
		Validate:       core.NewValidator(translator),
		Translator:     translator,
		DisableReqLogs: true,
	})
	return &app{Server: srv, conf: conf, store: store}
}

type httpTest struct {
	name         string
	method       string
	path         string
	form         url.Values
	role         session.Role
	wantCode     int
	wantLocation string
	wantBody     []string
}

func newRequest(method, path string, form url.Values, cookies ...*http.Cookie) (*http.Request, *httptest.ResponseRecorder) {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req, httptest.NewRecorder()
}

// do serves one request, logged in as role unless role is empty.
func (a *app) do(t *testing.T, method, path string, form url.Values, role session.Role, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	if role != "" {
		cookies = append(cookies, a.sessionCookie(t, role))
	}
	req, rec := newRequest(method, path, form, cookies...)
	a.ServeHTTP(rec, req)
	return rec
}

func (a *app) sessionCookie(t *testing.T, role session.Role) *http.Cookie {
	t.Helper()
	token, err := GenerateToken(NewClaims(testutil.Identity(t, role), a.conf), a.conf.SecretKey)
	if err != nil {
		t.Fatalf("sessionCookie() failed: %v", err)
	}
	return &http.Cookie{Name: SessionCookie, Value: token}
}

// follow renders the dashboard page an action redirected to, carrying its flash.
func (a *app) follow(t *testing.T, rec *httptest.ResponseRecorder, role session.Role) *httptest.ResponseRecorder {
	t.Helper()
	var cookies []*http.Cookie
	if c := responseCookie(rec, FlashCookie); c != nil {
		cookies = append(cookies, c)
	}
	return a.do(t, http.MethodGet, rec.Header().Get(echo.HeaderLocation), nil, role, cookies...)
}

func responseCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func form(kv ...string) url.Values {
	v := make(url.Values)
	for i := 0; i+1 < len(kv); i += 2 {
		v.Set(kv[i], kv[i+1])
	}
	return v
}

func checkResponse(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	t.Helper()
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantLocation != "" {
		if got := rec.Header().Get(echo.HeaderLocation); got != tt.wantLocation {
			t.Errorf("failed! location = %q; wantLocation %q", got, tt.wantLocation)
		}
	}
	body := rec.Body.String()
	for _, want := range tt.wantBody {
		if !strings.Contains(body, want) {
			t.Errorf("failed! body does not contain %q", want)
		}
	}
}
