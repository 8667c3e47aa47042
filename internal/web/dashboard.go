package web

import (
	"net/http"
	"time"

	"rental-console/internal/jobs"
	"rental-console/internal/service"
)

type dashboardPage struct {
	Operator string
	View     *service.DashboardView
	Alerts   jobs.Alerts
}

// handleDashboard renders the landing page. The stat cards come from a
// fresh all-or-nothing fetch; the alert strip reads the poller board and
// never blocks on the backend.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	view, err := s.svc.Dashboard.Load(r.Context(), time.Now())
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	s.render(w, http.StatusOK, "dashboard.html", dashboardPage{
		Operator: operatorName(r),
		View:     view,
		Alerts:   s.alerts.Snapshot(),
	})
}
