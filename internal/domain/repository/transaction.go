package repository

import "context"

// TransactionManager runs a unit of work atomically.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the running transaction.
// Alerting takes the device row lock through it, so every write of one fix
// is serialised with the sweeper.
type RepositoryFactory interface {
	NewDeviceRepository() DeviceRepository
	NewLocationRepository() LocationRepository
	NewAlertRepository() AlertRepository
}
