package directory

import "context"

type StoreAPI interface {
	LoadEmployees(ctx context.Context) ([]Employee, error)
	SaveEmployees(ctx context.Context, employees []Employee) error
}
