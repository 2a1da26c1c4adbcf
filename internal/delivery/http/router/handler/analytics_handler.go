package handler

import (
	"log/slog"
	"net/http"
	"time"

	"courier/internal/delivery/http/response"
	"courier/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AnalyticsHandler holds dependencies for the admin dashboard and reports.
type AnalyticsHandler struct {
	uc     usecase.AnalyticsUsecase
	logger *slog.Logger
}

// NewAnalyticsHandler is the constructor for AnalyticsHandler, injected by Fx.
func NewAnalyticsHandler(uc usecase.AnalyticsUsecase, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		uc:     uc,
		logger: logger,
	}
}

// Dashboard returns the aggregated parcel statistics.
func (h *AnalyticsHandler) Dashboard(c echo.Context) error {
	dateRange, err := parseDateRange(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	stats, err := h.uc.DashboardStats(c.Request().Context(), dateRange)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "")
}

// CSVReport streams the parcel ledger as a CSV download.
func (h *AnalyticsHandler) CSVReport(c echo.Context) error {
	dateRange, err := parseDateRange(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="parcel-report.csv"`)
	c.Response().WriteHeader(http.StatusOK)

	return errors.WithStack(h.uc.WriteCSVReport(c.Request().Context(), c.Response(), dateRange))
}

// PDFReport streams the parcel ledger as a PDF download.
func (h *AnalyticsHandler) PDFReport(c echo.Context) error {
	dateRange, err := parseDateRange(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	c.Response().Header().Set(echo.HeaderContentType, "application/pdf")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="parcel-report.pdf"`)
	c.Response().WriteHeader(http.StatusOK)

	return errors.WithStack(h.uc.WritePDFReport(c.Request().Context(), c.Response(), dateRange))
}

// parseDateRange reads the optional start/end query parameters. Both must be
// present together, as RFC 3339 dates or date-times.
func parseDateRange(c echo.Context) (usecase.DateRange, error) {
	startRaw := c.QueryParam("start")
	endRaw := c.QueryParam("end")

	if startRaw == "" && endRaw == "" {
		return usecase.DateRange{}, nil
	}
	if startRaw == "" || endRaw == "" {
		return usecase.DateRange{}, errors.New("start and end must be provided together")
	}

	start, err := parseDateOrDateTime(startRaw)
	if err != nil {
		return usecase.DateRange{}, errors.New("invalid start date")
	}
	end, err := parseDateOrDateTime(endRaw)
	if err != nil {
		return usecase.DateRange{}, errors.New("invalid end date")
	}
	if end.Before(start) {
		return usecase.DateRange{}, errors.New("end must not be before start")
	}

	return usecase.DateRange{Start: start, End: end}, nil
}

func parseDateOrDateTime(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}

	return time.Parse("2006-01-02", raw)
}
