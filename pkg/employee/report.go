package employee

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	reportTitle    = "Employee Report"
	reportMargin   = 40.0
	reportRowH     = 18.0
	reportFontSize = 9.0
	cellPadding    = 2.0
	ellipsis       = "..."
)

type reportColumn struct {
	title string
	width float64
	value func(Employee, *message.Printer) string
}

var reportColumns = []reportColumn{
	{"Emp ID", 70, func(e Employee, _ *message.Printer) string { return e.EmployeeID }},
	{"Name", 120, func(e Employee, _ *message.Printer) string { return e.FirstName }},
	{"Email", 150, func(e Employee, _ *message.Printer) string { return e.Email }},
	{"Position", 90, func(e Employee, _ *message.Printer) string { return e.Position }},
	{"Department", 80, func(e Employee, _ *message.Printer) string { return e.Department }},
	{"Hire Date", 70, func(e Employee, _ *message.Printer) string {
		if e.HireDate.IsZero() {
			return ""
		}
		return e.HireDate.Format(time.DateOnly)
	}},
	{"Salary", 60, func(e Employee, p *message.Printer) string { return p.Sprintf("%.2f", e.Salary) }},
	{"S", 40, func(e Employee, _ *message.Printer) string { return e.Status.String() }},
}

// ReportWriter renders the employee list as a landscape A4 PDF table.
type ReportWriter struct {
	lang     language.Tag
	location *time.Location
}

// ReportOption configures a ReportWriter.
type ReportOption func(*ReportWriter)

// WithLanguage sets the locale used to group salary digits.
func WithLanguage(tag language.Tag) ReportOption {
	return func(r *ReportWriter) {
		r.lang = tag
	}
}

// WithLocation sets the time zone of the generation timestamp and filename.
func WithLocation(loc *time.Location) ReportOption {
	return func(r *ReportWriter) {
		if loc != nil {
			r.location = loc
		}
	}
}

// NewReportWriter creates a ReportWriter. Salaries are grouped the English way
// and timestamps use the local zone unless configured otherwise.
func NewReportWriter(opts ...ReportOption) *ReportWriter {
	r := &ReportWriter{
		lang:     language.English,
		location: time.Local,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Filename returns the download name for a report generated at t.
func (r *ReportWriter) Filename(t time.Time) string {
	return "employee_report_" + t.In(r.location).Format("20060102_1504") + ".pdf"
}

// Write renders employees to w. Rows that do not fit start a new page and
// cell text that does not fit its column is cut with an ellipsis.
func (r *ReportWriter) Write(w io.Writer, employees []Employee, generatedAt time.Time) error {
	pdf := fpdf.New("L", "pt", "A4", "")
	pdf.SetMargins(reportMargin, reportMargin, reportMargin)
	pdf.SetAutoPageBreak(false, reportMargin)
	pdf.SetTitle(reportTitle, true)
	pdf.SetCreationDate(generatedAt)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	printer := message.NewPrinter(r.lang)
	pageW, pageH := pdf.GetPageSize()
	contentW := pageW - 2*reportMargin

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(contentW, 24, reportTitle, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 16, "Generated: "+generatedAt.In(r.location).Format("2006-01-02 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(10)

	tableW := 0.0
	for _, col := range reportColumns {
		tableW += col.width
	}
	left := reportMargin + (contentW-tableW)/2

	y := pdf.GetY()
	pdf.SetFillColor(238, 238, 238)
	pdf.Rect(left-cellPadding, y, tableW+2*cellPadding, reportRowH, "F")
	pdf.SetFont("Helvetica", "B", reportFontSize)
	x := left
	for _, col := range reportColumns {
		cell(pdf, tr, x, y, col.width, col.title)
		x += col.width
	}
	y += reportRowH

	pdf.SetFont("Helvetica", "", reportFontSize)
	pdf.SetDrawColor(230, 230, 230)
	pdf.SetLineWidth(0.5)
	for _, emp := range employees {
		if y+reportRowH > pageH-reportMargin {
			pdf.AddPage()
			y = reportMargin
		}

		x = left
		for _, col := range reportColumns {
			cell(pdf, tr, x, y, col.width, col.value(emp, printer))
			x += col.width
		}
		pdf.Line(left-cellPadding, y+reportRowH-1, left+tableW+cellPadding, y+reportRowH-1)
		y += reportRowH
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("%w: %v", ErrReportGeneration, err)
	}
	return nil
}

// cell writes text at x, y. tr converts UTF-8 to the encoding of the core fonts.
func cell(pdf *fpdf.Fpdf, tr func(string) string, x, y, width float64, text string) {
	measure := func(s string) float64 { return pdf.GetStringWidth(tr(s)) }
	pdf.SetXY(x, y)
	pdf.CellFormat(width, reportRowH, tr(fit(text, width-2*cellPadding, measure)), "", 0, "L", false, 0, "")
}

// fit shortens text until it fits width, marking the cut with an ellipsis.
func fit(text string, width float64, measure func(string) float64) string {
	if measure(text) <= width {
		return text
	}
	runes := []rune(text)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := strings.TrimRight(string(runes), " ") + ellipsis
		if measure(candidate) <= width {
			return candidate
		}
	}
	return ""
}
