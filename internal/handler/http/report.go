package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/workshift-app/workshift-go/internal/domain/attendance"
	"github.com/workshift-app/workshift-go/internal/handler/http/response"
	"github.com/xuri/excelize/v2"
)

type ReportHandler interface {
	ExportMonthlyReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewReportHandler(attendanceService attendance.AttendanceService) ReportHandler {
	return &reportHandlerImpl{
		attendanceService: attendanceService,
	}
}

var reportHeaders = []string{
	"Date", "Name", "Email", "Punch In", "Punch Out",
	"Break Start", "Break End", "Total Hours", "Break Duration", "Status",
}

// ExportMonthlyReport implements ReportHandler. Streams the month's records
// as an XLSX workbook.
func (h *reportHandlerImpl) ExportMonthlyReport(w http.ResponseWriter, r *http.Request) {
	var req attendance.MonthlyReportRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ExportMonthlyReport decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	records, err := h.attendanceService.MonthlyReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			slog.Error("Failed to close workbook", "error", err)
		}
	}()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	for i, header := range reportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			slog.Error("Failed to write header cell", "error", err)
			response.InternalServerError(w, "Failed to build report")
			return
		}
	}

	for rowIdx, record := range records {
		for colIdx, val := range reportRow(record) {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				slog.Error("Failed to write report cell", "error", err)
				response.InternalServerError(w, "Failed to build report")
				return
			}
		}
	}

	filename := fmt.Sprintf("attendance-report-%04d-%02d.xlsx", req.Year, req.Month)
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))

	if err := f.Write(w); err != nil {
		slog.Error("Failed to stream workbook", "error", err)
	}
}

func reportRow(record attendance.Attendance) []interface{} {
	return []interface{}{
		record.Date,
		record.UserName,
		record.UserEmail,
		formatStamp(record.PunchIn),
		formatStamp(record.PunchOut),
		formatStamp(record.BreakStart),
		formatStamp(record.BreakEnd),
		formatHours(record.TotalHours),
		formatHours(record.BreakDuration),
		record.Status,
	}
}

func formatStamp(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format("15:04:05")
}

func formatHours(h *float64) interface{} {
	if h == nil {
		return ""
	}
	return *h
}
