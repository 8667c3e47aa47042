package web

import (
	"embed"
	"html/template"
	"net/http"

	"rental-console/internal/domain"
	"rental-console/internal/logger"
)

//go:embed templates/*.html
var templatesFS embed.FS

var funcMap = template.FuncMap{
	"date": func(ts domain.Timestamp) string {
		if ts.IsZero() {
			return "-"
		}
		return ts.DateString()
	},
	"dateptr": func(ts *domain.Timestamp) string {
		if ts == nil || ts.IsZero() {
			return "-"
		}
		return ts.DateString()
	},
	"money": func(c domain.Cents) string {
		return c.String()
	},
	"moneyptr": func(c *domain.Cents) string {
		if c == nil {
			return "-"
		}
		return c.String()
	},
	"balanceLabel": balanceLabel,
	"add": func(a, b int) int {
		return a + b
	},
	"list": func(items ...string) []string {
		return items
	},
	"deref32": func(v *int32) int32 {
		if v == nil {
			return 0
		}
		return *v
	},
	"derefBool": func(v *bool) bool {
		return v != nil && *v
	},
}

func parseTemplates() *template.Template {
	return template.Must(template.New("console").Funcs(funcMap).ParseFS(templatesFS, "templates/*.html"))
}

// render writes a full page. Template failures after headers are sent can
// only be logged.
func (s *Server) render(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		logger.Error("Failed to render template", "template", name, "error", err)
	}
}

// errorPage is the data for the full-page failure view with a retry link.
type errorPage struct {
	Operator string
	Message  string
	RetryURL string
}

// renderError shows the full-page failure state. Pages never render a
// partial join; either every fetch succeeded or the operator sees this.
func (s *Server) renderError(w http.ResponseWriter, r *http.Request, err error) {
	logger.ErrorContext(r.Context(), "Page load failed", "path", r.URL.Path, "error", err)
	s.render(w, http.StatusBadGateway, "error.html", errorPage{
		Operator: operatorName(r),
		Message:  "Could not load this page from the rental service.",
		RetryURL: r.URL.RequestURI(),
	})
}
