package ports

import "time"

// Clock supplies wall-clock time to services
type Clock interface {
	Now() time.Time
}
