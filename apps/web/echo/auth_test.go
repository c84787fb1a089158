package echoweb

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/ccdbms/apps/web/ui"
	"github.com/trezcool/ccdbms/core"
	"github.com/trezcool/ccdbms/core/session"
)

func TestParseToken(t *testing.T) {
	conf := core.NewTestConfig()
	id := session.Identity{ID: "F101", Name: "Dr. Anil Kumar", Role: session.RoleFaculty}

	sign := func(t *testing.T, claims *Claims, secret string) string {
		token, err := GenerateToken(claims, secret)
		require.NoError(t, err)
		return token
	}
	expired := func() *Claims {
		defer func() { nowFunc = time.Now }()
		nowFunc = func() time.Time { return time.Now().Add(-2 * conf.Server.SessionLifetime) }
		return NewClaims(id, conf)
	}
	badRole := NewClaims(id, conf)
	badRole.Role = "dean"
	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, NewClaims(id, conf)).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr bool
	}{
		{name: "valid", token: sign(t, NewClaims(id, conf), conf.SecretKey)},
		{name: "other secret", token: sign(t, NewClaims(id, conf), "other"), wantErr: true},
		{name: "expired", token: sign(t, expired(), conf.SecretKey), wantErr: true},
		{name: "unknown role", token: sign(t, badRole, conf.SecretKey), wantErr: true},
		{name: "unsigned", token: noneToken, wantErr: true},
		{name: "garbage", token: "a.b.c", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := ParseToken(tt.token, conf.SecretKey)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, id, claims.Identity())
			assert.NotEmpty(t, claims.Id)
			assert.Equal(t, conf.AppName, claims.Issuer)
		})
	}
}

func TestNewClaims_uniqueIds(t *testing.T) {
	conf := core.NewTestConfig()
	id := session.Identity{ID: "A101", Name: "Admin User", Role: session.RoleAdmin}
	assert.NotEqual(t, NewClaims(id, conf).Id, NewClaims(id, conf).Id)
}

func TestFlash(t *testing.T) {
	conf := core.NewTestConfig()
	e := echo.New()

	// set
	rec := httptest.NewRecorder()
	ctx := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)
	require.NoError(t, setFlash(ctx, ui.Toast{Message: "Student added successfully", Type: ui.ToastSuccess}, conf))
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	// pop
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	ctx = e.NewContext(req, rec)
	toast := popFlash(ctx, conf)
	require.NotNil(t, toast)
	assert.Equal(t, ui.Toast{Message: "Student added successfully", Type: ui.ToastSuccess}, *toast)
	cleared := rec.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.True(t, cleared[0].MaxAge < 0)

	t.Run("empty toast", func(t *testing.T) {
		rec := httptest.NewRecorder()
		ctx := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)
		require.NoError(t, setFlash(ctx, ui.Toast{}, conf))
		assert.Empty(t, rec.Result().Cookies())
	})

	t.Run("corrupt", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: FlashCookie, Value: "%%%"})
		ctx := e.NewContext(req, httptest.NewRecorder())
		assert.Nil(t, popFlash(ctx, conf))
	})
}
