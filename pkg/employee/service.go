package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/Sagar00752/hrms/pkg/async"
	"github.com/Sagar00752/hrms/pkg/logger"
	"github.com/Sagar00752/hrms/pkg/queue"
	"github.com/Sagar00752/hrms/pkg/sanitizer"
	"github.com/Sagar00752/hrms/pkg/validator"
)

var employeeIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Notifier hands background jobs to the worker. queue.Producer implements it.
type Notifier interface {
	EnqueueAsync(ctx context.Context, job queue.Job) *async.Future[bool]
}

// CreateInput is the body of a create request. HireDate is an ISO 8601 date
// and defaults to the current time.
type CreateInput struct {
	EmployeeID string  `json:"employeeid"`
	FirstName  string  `json:"firstname"`
	Email      string  `json:"email"`
	Position   string  `json:"position"`
	Department string  `json:"department"`
	HireDate   string  `json:"hireDate"`
	Salary     Amount  `json:"salary"`
	Status     *Status `json:"status"`
}

// UpdateInput selects an employee by EmployeeID and sets every non-nil field.
type UpdateInput struct {
	EmployeeID string  `json:"employeeid"`
	FirstName  *string `json:"firstname"`
	Email      *string `json:"email"`
	Position   *string `json:"position"`
	Department *string `json:"department"`
	HireDate   *string `json:"hireDate"`
	Salary     *Amount `json:"salary"`
	Status     *Status `json:"status"`
}

// DeleteInput selects the employee to delete.
type DeleteInput struct {
	EmployeeID string `json:"employeeid"`
}

// Service manages employee records and announces new hires to the worker.
type Service struct {
	storage  Storage
	notifier Notifier
	subject  string
	now      func() time.Time
	logger   *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets the logger for the service.
func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithWelcomeSubject sets the subject of welcome emails. When empty the
// worker applies its own default.
func WithWelcomeSubject(subject string) ServiceOption {
	return func(s *Service) {
		s.subject = subject
	}
}

// NewService creates a Service. A nil notifier disables welcome emails.
func NewService(storage Storage, notifier Notifier, opts ...ServiceOption) *Service {
	s := &Service{
		storage:  storage,
		notifier: notifier,
		now:      time.Now,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create validates in, stores the employee and enqueues a welcome email.
// The email is fire-and-forget: an enqueue failure is logged by the producer
// and never changes the result.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Employee, error) {
	in.Email = sanitizer.NormalizeEmail(in.Email)

	salary, _ := in.Salary.Float()
	rules := slices.Concat(
		[]validator.Rule{
			validator.Required("employeeid", in.EmployeeID).WithMessage("Employee ID is required"),
		},
		validator.When(in.EmployeeID != "",
			validator.Matches("employeeid", in.EmployeeID, employeeIDPattern, "").
				WithMessage("Employee ID may only contain letters, numbers, hyphens and underscores"),
		),
		firstNameRules(in.FirstName),
		emailRules(in.Email),
		[]validator.Rule{
			validator.Required("position", in.Position).WithMessage("Position is required"),
			validator.Required("department", in.Department).WithMessage("Department is required"),
		},
		validator.When(in.HireDate != "", hireDateRule(in.HireDate)),
		salaryRules(in.Salary, salary),
		validator.When(in.Status != nil, statusRule(in.Status)),
	)
	if err := validator.Apply(rules...); err != nil {
		return nil, err
	}

	hireDate := s.now().UTC()
	if in.HireDate != "" {
		hireDate, _ = validator.ParseDate(in.HireDate)
	}

	exists, err := s.storage.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("check employee email: %w", err)
	}
	if exists {
		return nil, ErrEmailTaken
	}

	emp := &Employee{
		EmployeeID: in.EmployeeID,
		FirstName:  in.FirstName,
		Email:      in.Email,
		Position:   in.Position,
		Department: in.Department,
		HireDate:   hireDate,
		Salary:     salary,
		Status:     StatusInactive,
	}
	if in.Status != nil {
		emp.Status = *in.Status
	}

	if err := s.storage.Create(ctx, emp); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "employee created",
		logger.Component("employee"),
		logger.EmployeeID(emp.EmployeeID))

	if s.notifier != nil {
		s.notifier.EnqueueAsync(ctx, queue.NewWelcomeEmail(emp.Email, s.subject, map[string]string{
			"firstname":  emp.FirstName,
			"employeeid": emp.EmployeeID,
		}))
	}

	return emp, nil
}

// Update applies the non-nil fields of in to the employee it names.
// An update without fields returns the stored record unchanged.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*Employee, error) {
	if strings.TrimSpace(in.EmployeeID) == "" {
		return nil, ErrEmployeeIDRequired
	}

	var changes Changes
	var rules []validator.Rule

	if in.FirstName != nil {
		rules = append(rules, firstNameRules(*in.FirstName)...)
		changes.FirstName = in.FirstName
	}
	if in.Email != nil {
		email := sanitizer.NormalizeEmail(*in.Email)
		rules = append(rules, emailRules(email)...)
		changes.Email = &email
	}
	if in.Position != nil {
		rules = append(rules, validator.Required("position", *in.Position).WithMessage("Position is required"))
		changes.Position = in.Position
	}
	if in.Department != nil {
		rules = append(rules, validator.Required("department", *in.Department).WithMessage("Department is required"))
		changes.Department = in.Department
	}
	if in.HireDate != nil {
		rules = append(rules, hireDateRule(*in.HireDate))
		if t, err := validator.ParseDate(*in.HireDate); err == nil {
			changes.HireDate = &t
		}
	}
	if in.Salary != nil {
		salary, _ := in.Salary.Float()
		rules = append(rules, salaryRules(*in.Salary, salary)...)
		changes.Salary = &salary
	}
	if in.Status != nil {
		rules = append(rules, statusRule(in.Status))
		changes.Status = in.Status
	}

	if err := validator.Apply(rules...); err != nil {
		return nil, err
	}

	emp, err := s.storage.Update(ctx, in.EmployeeID, changes)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "employee updated",
		logger.Component("employee"),
		logger.EmployeeID(emp.EmployeeID))

	return emp, nil
}

// Delete removes the employee named by in and returns the removed record.
func (s *Service) Delete(ctx context.Context, in DeleteInput) (*Employee, error) {
	if strings.TrimSpace(in.EmployeeID) == "" {
		return nil, ErrEmployeeIDRequired
	}

	emp, err := s.storage.Delete(ctx, in.EmployeeID)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "employee deleted",
		logger.Component("employee"),
		logger.EmployeeID(emp.EmployeeID))

	return emp, nil
}

// List returns every employee.
func (s *Service) List(ctx context.Context) ([]Employee, error) {
	return s.storage.List(ctx)
}

// Now returns the service clock's current time.
func (s *Service) Now() time.Time {
	return s.now()
}

func firstNameRules(name string) []validator.Rule {
	return []validator.Rule{
		validator.Required("firstname", name).WithMessage("Name is required"),
		validator.MinLen("firstname", name, 3).WithMessage("Name must be at least 3 characters long"),
	}
}

func emailRules(email string) []validator.Rule {
	if email == "" {
		return []validator.Rule{validator.Required("email", email).WithMessage("Email is required")}
	}
	return []validator.Rule{validator.ValidEmail("email", email).WithMessage("Invalid email format")}
}

func hireDateRule(value string) validator.Rule {
	return validator.ValidDate("hireDate", value).
		WithMessage("hireDate must be a valid ISO 8601 date (e.g. 2025-11-25)")
}

func salaryRules(raw Amount, salary float64) []validator.Rule {
	if strings.TrimSpace(string(raw)) == "" {
		return []validator.Rule{validator.Required("salary", "").WithMessage("Salary is required")}
	}
	number := validator.Number("salary", string(raw)).WithMessage("Salary must be a number")
	if !number.Check() {
		return []validator.Rule{number}
	}
	return []validator.Rule{validator.Min("salary", salary, 0).WithMessage("Salary must not be negative")}
}

func statusRule(status *Status) validator.Rule {
	return validator.OneOf("status", *status, []Status{StatusInactive, StatusActive}).
		WithMessage("Status must be 0 (inactive) or 1 (active)")
}

// IsConflict reports whether err is a uniqueness violation.
func IsConflict(err error) bool {
	return errors.Is(err, ErrEmailTaken) || errors.Is(err, ErrEmployeeIDTaken)
}
