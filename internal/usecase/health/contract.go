package health

import "context"

// DBPinger checks search index connectivity.
type DBPinger interface {
	Ping(ctx context.Context) error
}
