package employee_test

import (
	"bytes"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sagar00752/hrms/pkg/employee"
)

var pageObject = regexp.MustCompile(`/Type /Page[^s]`)

func TestReportWriter_Filename(t *testing.T) {
	t.Parallel()

	ist := time.FixedZone("IST", 5*3600+1800)
	at := time.Date(2025, 11, 25, 4, 0, 0, 0, time.UTC)

	assert.Equal(t, "employee_report_20251125_0400.pdf", employee.NewReportWriter(employee.WithLocation(time.UTC)).Filename(at))
	assert.Equal(t, "employee_report_20251125_0930.pdf", employee.NewReportWriter(employee.WithLocation(ist)).Filename(at))
}

func TestReportWriter_Write(t *testing.T) {
	t.Parallel()

	t.Run("empty list still renders header", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		require.NoError(t, employee.NewReportWriter().Write(&buf, nil, fixedNow))

		assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
		assert.Len(t, pageObject.FindAll(buf.Bytes(), -1), 1)
	})

	t.Run("long lists break pages", func(t *testing.T) {
		t.Parallel()
		employees := make([]employee.Employee, 80)
		for i := range employees {
			employees[i] = employee.Employee{
				EmployeeID: fmt.Sprintf("EMP_%03d", i),
				FirstName:  "Émilie with a rather long name that will not fit",
				Email:      fmt.Sprintf("employee%03d@example.com", i),
				Position:   "Engineer",
				Department: "R&D",
				HireDate:   fixedNow,
				Salary:     1234567.5,
				Status:     employee.Status(i % 2),
			}
		}

		var buf bytes.Buffer
		require.NoError(t, employee.NewReportWriter().Write(&buf, employees, fixedNow))
		assert.GreaterOrEqual(t, len(pageObject.FindAll(buf.Bytes(), -1)), 3)
	})
}
