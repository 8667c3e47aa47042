package web

import (
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"rental-console/internal/domain"
)

type reportsPage struct {
	Operator     string
	StartDate    string
	EndDate      string
	Revenue      *domain.RevenueReport
	Payments     *domain.PaymentReport
	TopCustomers []domain.Customer
}

// handleReports renders the range reports. The figures here come from the
// backend's own aggregation endpoints and are the authoritative numbers,
// unlike the dashboard's sampled revenue card. Defaults to the last 30
// days when no range is given.
func (s *Server) handleReports(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	start := formDate(r, "start_date")
	end := formDate(r, "end_date")
	if start.IsZero() {
		start = domain.NewTimestamp(now.AddDate(0, 0, -30))
	}
	if end.IsZero() {
		end = domain.NewTimestamp(now)
	}

	var (
		revenue  *domain.RevenueReport
		payments *domain.PaymentReport
		top      []domain.Customer
	)

	g, gctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) {
		revenue, err = s.svc.Reports.Revenue(gctx, start, end)
		return err
	})
	g.Go(func() (err error) {
		payments, err = s.svc.Reports.Payments(gctx, start, end)
		return err
	})
	g.Go(func() (err error) {
		top, err = s.svc.Reports.TopCustomers(gctx, 5)
		return err
	})
	if err := g.Wait(); err != nil {
		s.renderError(w, r, err)
		return
	}

	s.render(w, http.StatusOK, "reports.html", reportsPage{
		Operator:     operatorName(r),
		StartDate:    start.DateString(),
		EndDate:      end.DateString(),
		Revenue:      revenue,
		Payments:     payments,
		TopCustomers: top,
	})
}
