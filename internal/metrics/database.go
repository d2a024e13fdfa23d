package metrics

import (
	"context"
	"database/sql"
	"time"
)

// UpdateDBStats publishes a snapshot of the connection pool state
func (m *Metrics) UpdateDBStats(stats sql.DBStats) {
	m.DBConnectionsOpen.Set(float64(stats.OpenConnections))
	m.DBConnectionsInUse.Set(float64(stats.InUse))
	m.DBConnectionsIdle.Set(float64(stats.Idle))
	m.DBConnectionsMax.Set(float64(stats.MaxOpenConnections))
}

// StartDBStatsSampler samples pool stats on the given interval until ctx is
// cancelled.
func (m *Metrics) StartDBStatsSampler(ctx context.Context, db *sql.DB, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.UpdateDBStats(db.Stats())
			}
		}
	}()
}
