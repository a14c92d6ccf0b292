package analytics

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aprovost/studiodesk/internal/analytics"
	"github.com/aprovost/studiodesk/internal/http/respond"
)

type Handler struct {
	svc *analytics.Service
}

func NewHandler(svc *analytics.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/dashboard", h.dashboard)
	r.Get("/revenue-trends", h.revenueTrends)
	r.Get("/session-types", h.sessionTypes)
	r.Get("/marketing-conversion", h.marketingConversion)
	r.Get("/staff-performance", h.staffPerformance)
}

type dashboardResponse struct {
	TotalClients       int   `json:"totalClients"`
	UpcomingSessions   int   `json:"upcomingSessions"`
	MonthlyRevenue     int64 `json:"monthlyRevenue"`
	OutstandingBalance int64 `json:"outstandingBalance"`
	TotalStaff         int   `json:"totalStaff"`
	ActiveProducts     int   `json:"activeProducts"`
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Dashboard(r.Context())
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	respond.JSON(w, http.StatusOK, dashboardResponse{
		TotalClients:       stats.TotalClients,
		UpcomingSessions:   stats.UpcomingSessions,
		MonthlyRevenue:     stats.MonthlyRevenueCents,
		OutstandingBalance: stats.OutstandingBalanceCents,
		TotalStaff:         stats.TotalStaff,
		ActiveProducts:     stats.ActiveProducts,
	})
}

type revenueTrendResponse struct {
	Month        string `json:"month"`
	Revenue      int64  `json:"revenue"`
	InvoiceCount int    `json:"invoiceCount"`
}

func (h *Handler) revenueTrends(w http.ResponseWriter, r *http.Request) {
	trends, err := h.svc.RevenueTrends(r.Context())
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := make([]revenueTrendResponse, len(trends))
	for i, t := range trends {
		resp[i] = revenueTrendResponse{
			Month:        t.Month,
			Revenue:      t.RevenueCents,
			InvoiceCount: t.InvoiceCount,
		}
	}

	respond.JSON(w, http.StatusOK, resp)
}

type sessionTypeResponse struct {
	SessionType  string  `json:"sessionType"`
	SessionCount int     `json:"sessionCount"`
	AvgFee       float64 `json:"avgFee"`
	TotalRevenue int64   `json:"totalRevenue"`
}

func (h *Handler) sessionTypes(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.SessionTypes(r.Context())
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := make([]sessionTypeResponse, len(stats))
	for i, st := range stats {
		resp[i] = sessionTypeResponse{
			SessionType:  st.Type,
			SessionCount: st.SessionCount,
			AvgFee:       st.AvgFeeCents,
			TotalRevenue: st.TotalRevenueCents,
		}
	}

	respond.JSON(w, http.StatusOK, resp)
}

type conversionResponse struct {
	Interests        string  `json:"interests"`
	TotalLeads       int     `json:"totalLeads"`
	ConvertedClients int     `json:"convertedClients"`
	ConversionRate   float64 `json:"conversionRate"`
}

func (h *Handler) marketingConversion(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.MarketingConversion(r.Context())
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := make([]conversionResponse, len(stats))
	for i, cs := range stats {
		resp[i] = conversionResponse{
			Interests:        cs.Interests,
			TotalLeads:       cs.TotalLeads,
			ConvertedClients: cs.ConvertedClients,
			ConversionRate:   cs.ConversionRate,
		}
	}

	respond.JSON(w, http.StatusOK, resp)
}

type staffPerformanceResponse struct {
	Email            string `json:"email"`
	Name             string `json:"name"`
	Role             string `json:"role"`
	ClientsManaged   int    `json:"clientsManaged"`
	SessionsAssigned int    `json:"sessionsAssigned"`
	RecentSessions   int    `json:"recentSessions"`
}

func (h *Handler) staffPerformance(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.StaffPerformance(r.Context())
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := make([]staffPerformanceResponse, len(stats))
	for i, sp := range stats {
		resp[i] = staffPerformanceResponse{
			Email:            sp.Email,
			Name:             sp.Name,
			Role:             sp.Role,
			ClientsManaged:   sp.ClientsManaged,
			SessionsAssigned: sp.SessionsAssigned,
			RecentSessions:   sp.RecentSessions,
		}
	}

	respond.JSON(w, http.StatusOK, resp)
}
