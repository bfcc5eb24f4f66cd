package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-timesheet-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/handler/http/response"
)

type TimesheetHandler interface {
	Daily(w http.ResponseWriter, r *http.Request)
	ExportDaily(w http.ResponseWriter, r *http.Request)
	My(w http.ResponseWriter, r *http.Request)
	ExportMy(w http.ResponseWriter, r *http.Request)
	Columns(w http.ResponseWriter, r *http.Request)
}

type timesheetHandlerImpl struct {
	timesheetService attendance.TimesheetService
}

func NewTimesheetHandler(timesheetService attendance.TimesheetService) TimesheetHandler {
	return &timesheetHandlerImpl{
		timesheetService: timesheetService,
	}
}

func dailyFilterFromRequest(r *http.Request) attendance.DailyTimesheetFilter {
	q := r.URL.Query()
	return attendance.DailyTimesheetFilter{
		Date:      q.Get("date"),
		Search:    q.Get("search"),
		SortBy:    q.Get("sort_by"),
		SortOrder: q.Get("sort_order"),
	}
}

func myFilterFromRequest(r *http.Request) attendance.MyTimesheetFilter {
	q := r.URL.Query()
	return attendance.MyTimesheetFilter{
		Month:     q.Get("month"),
		SortBy:    q.Get("sort_by"),
		SortOrder: q.Get("sort_order"),
	}
}

// Daily implements TimesheetHandler.
func (h *timesheetHandlerImpl) Daily(w http.ResponseWriter, r *http.Request) {
	resp, err := h.timesheetService.GetDailyTimesheet(r.Context(), dailyFilterFromRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, resp, &response.Meta{TotalItems: int64(len(resp.Rows))})
}

// ExportDaily implements TimesheetHandler.
func (h *timesheetHandlerImpl) ExportDaily(w http.ResponseWriter, r *http.Request) {
	result, err := h.timesheetService.ExportDailyTimesheet(r.Context(), dailyFilterFromRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Debug("Serving timesheet export", "export_id", result.ExportID, "file", result.FileName)
	response.CSV(w, result.FileName, result.ExportID, result.Content)
}

// My implements TimesheetHandler.
func (h *timesheetHandlerImpl) My(w http.ResponseWriter, r *http.Request) {
	resp, err := h.timesheetService.GetMyTimesheet(r.Context(), myFilterFromRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, resp, &response.Meta{TotalItems: int64(len(resp.Rows))})
}

// ExportMy implements TimesheetHandler.
func (h *timesheetHandlerImpl) ExportMy(w http.ResponseWriter, r *http.Request) {
	result, err := h.timesheetService.ExportMyTimesheet(r.Context(), myFilterFromRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Debug("Serving timesheet export", "export_id", result.ExportID, "file", result.FileName)
	response.CSV(w, result.FileName, result.ExportID, result.Content)
}

// Columns implements TimesheetHandler.
func (h *timesheetHandlerImpl) Columns(w http.ResponseWriter, r *http.Request) {
	filter := attendance.ColumnsFilter{
		View:   r.URL.Query().Get("view"),
		Screen: r.URL.Query().Get("screen"),
	}

	columns, err := h.timesheetService.GetColumns(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, columns)
}
