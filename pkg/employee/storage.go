package employee

import "context"

// Storage persists employee records keyed by their employeeid.
type Storage interface {
	Create(ctx context.Context, emp *Employee) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Get(ctx context.Context, employeeID string) (*Employee, error)
	Update(ctx context.Context, employeeID string, changes Changes) (*Employee, error)
	Delete(ctx context.Context, employeeID string) (*Employee, error)
	List(ctx context.Context) ([]Employee, error)
}
