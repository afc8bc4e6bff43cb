// Package employee manages the employee records of the HR API and renders
// them as a PDF report.
//
// Creating an employee enqueues a welcome_email job through a Notifier. The
// enqueue runs on its own goroutine and its outcome never reaches the
// client, so the create response is the same whether Redis is up or not.
//
// Routes mounts, all behind the auth middleware:
//
//	POST /employees       create, 422 on field errors, 409 on a taken email or id
//	POST /updatemployee   partial update by employeeid
//	POST /deleteemployee  delete by employeeid
//	GET  /report          employee_report_YYYYMMDD_HHmm.pdf
package employee
