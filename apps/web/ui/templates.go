package ui

import (
	"embed"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/trezcool/ccdbms/core"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

const (
	LoginTemplate     = "login"
	DashboardTemplate = "dashboard"
	ErrorTemplate     = "error"
)

// Renderer renders the page templates. Each page is parsed once, together with the underscored partials.
type Renderer struct {
	strict    bool
	once      sync.Once
	templates map[string]*template.Template
	err       error
}

func NewRenderer(conf *core.Config) *Renderer {
	return &Renderer{strict: conf.Debug || conf.TestMode}
}

var funcs = template.FuncMap{
	"initials": initials,
}

func initials(name string) string {
	var b strings.Builder
	n := 0
	for _, w := range strings.Fields(name) {
		if strings.HasSuffix(w, ".") {
			continue // titles such as "Dr."
		}
		r, _ := utf8.DecodeRuneInString(w)
		b.WriteRune(unicode.ToUpper(r))
		if n++; n == 2 {
			break
		}
	}
	return b.String()
}

func (r *Renderer) parse() {
	r.templates = make(map[string]*template.Template)

	fps, err := fs.Glob(templateFS, "templates/*.gohtml")
	if err != nil {
		r.err = errors.Wrap(err, "listing templates")
		return
	}
	var partials, pages []string
	for _, fp := range fps {
		if strings.HasPrefix(path.Base(fp), "_") {
			partials = append(partials, fp)
		} else {
			pages = append(pages, fp)
		}
	}

	for _, fp := range pages {
		name := strings.TrimSuffix(path.Base(fp), path.Ext(fp))
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(templateFS, append(partials, fp)...)
		if err != nil {
			r.err = errors.Wrapf(err, "parsing template %s", name)
			return
		}
		if r.strict {
			tmpl = tmpl.Option("missingkey=error")
		}
		r.templates[name] = tmpl
	}
}

// Render executes the page template name with data.
func (r *Renderer) Render(w io.Writer, name string, data interface{}) error {
	r.once.Do(r.parse) // only parse once, during the first render
	if r.err != nil {
		return r.err
	}
	tmpl, ok := r.templates[name]
	if !ok {
		return errors.Errorf("unknown template %q", name)
	}
	if err := tmpl.ExecuteTemplate(w, "base", data); err != nil {
		return errors.Wrapf(err, "rendering %s", name)
	}
	return nil
}
