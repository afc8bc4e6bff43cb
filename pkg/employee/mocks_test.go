package employee_test

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Sagar00752/hrms/pkg/async"
	"github.com/Sagar00752/hrms/pkg/employee"
	"github.com/Sagar00752/hrms/pkg/queue"
)

// MockStorage is a mock implementation of employee.Storage.
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Create(ctx context.Context, emp *employee.Employee) error {
	args := m.Called(ctx, emp)
	return args.Error(0)
}

func (m *MockStorage) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockStorage) Get(ctx context.Context, employeeID string) (*employee.Employee, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*employee.Employee), args.Error(1)
}

func (m *MockStorage) Update(ctx context.Context, employeeID string, changes employee.Changes) (*employee.Employee, error) {
	args := m.Called(ctx, employeeID, changes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*employee.Employee), args.Error(1)
}

func (m *MockStorage) Delete(ctx context.Context, employeeID string) (*employee.Employee, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*employee.Employee), args.Error(1)
}

func (m *MockStorage) List(ctx context.Context) ([]employee.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]employee.Employee), args.Error(1)
}

// spyNotifier records jobs instead of enqueueing them.
type spyNotifier struct {
	mu   sync.Mutex
	jobs []queue.Job
}

func (s *spyNotifier) EnqueueAsync(ctx context.Context, job queue.Job) *async.Future[bool] {
	s.mu.Lock()
	s.jobs = append(s.jobs, job)
	s.mu.Unlock()
	return async.Async(ctx, job, func(context.Context, queue.Job) (bool, error) { return true, nil })
}

func (s *spyNotifier) Jobs() []queue.Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]queue.Job(nil), s.jobs...)
}

// downStore rejects every append like an unreachable Redis.
type downStore struct{}

func (downStore) Append(context.Context, string, []byte) error {
	return queue.ErrStoreUnavailable
}

func (downStore) BlockingRemoveHead(context.Context, string, time.Duration) (string, []byte, error) {
	return "", nil, queue.ErrStoreUnavailable
}
