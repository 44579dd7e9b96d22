// internal/store/store.go
package store

// Stores bundles the in-memory tables the services run on. Everything
// lives in process memory and resets on restart.
type Stores struct {
	Users   *UserStore
	Cars    *CarStore
	Wheels  *WheelStore
	Follows *FollowStore
	Reports *ReportStore
}

// NewSeededStores builds the full store set from the bundled mock data.
func NewSeededStores() (*Stores, error) {
	users, err := NewUserStore(SeedUsers())
	if err != nil {
		return nil, err
	}

	return &Stores{
		Users:   users,
		Cars:    NewCarStore(SeedCars()),
		Wheels:  NewWheelStore(SeedWheels()),
		Follows: NewFollowStore(SeedFollowers()),
		Reports: NewReportStore(),
	}, nil
}
