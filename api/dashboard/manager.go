package dashboard

import (
	"net/http"

	"posadmin_server/handling"
	"posadmin_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type DashboardRoutesManager struct {
	logger           *gecho.Logger
	dashboardService *services.DashboardService
}

func NewDashboardRoutesManager(
	logger *gecho.Logger,
	dashboardService *services.DashboardService,
) *DashboardRoutesManager {
	return &DashboardRoutesManager{
		logger:           logger,
		dashboardService: dashboardService,
	}
}

func (drm *DashboardRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/dashboard/stats", drm.GetStats)
}

// GetStats handles GET /dashboard/stats
func (drm *DashboardRoutesManager) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := drm.dashboardService.GetStats(r.Context())
	if err != nil {
		handling.HandleError(err, "Failed to compute dashboard stats", drm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(stats),
		gecho.Send(),
	)
}
