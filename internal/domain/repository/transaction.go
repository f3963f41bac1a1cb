package repository

import "context"

// TransactionManager runs multi-row writes atomically, such as deleting a
// product together with its image rows.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise. Every
	// repository obtained from the factory shares the one transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to an open transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
	ProductRepo() ProductRepository
	ImageRepo() ImageRepository
}
