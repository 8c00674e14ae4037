// Package connection manages the process-wide data-layer sessions: a
// read-write split relational database pool and a redis client, created
// from configuration and shut down together.
package connection

import (
	"context"
	"errors"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/aimarket/mcore/data/config"
)

// Connections struct to hold all database connections and clients
type Connections struct {
	DBM    *DBManager
	RC     *redis.Client
	closed bool
	mu     sync.Mutex
}

// New creates a new Connections
func New(conf *config.Config) (*Connections, error) {
	c := &Connections{}
	var err error

	if conf.Database != nil && conf.Database.Master != nil && conf.Database.Master.Source != "" {
		c.DBM, err = NewDBManager(conf.Database)
		if err != nil {
			return nil, err
		}
	}

	if conf.Redis != nil && conf.Redis.Addr != "" {
		c.RC, err = newRedisClient(conf.Redis)
		if err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Close closes all data connections
func (d *Connections) Close() (errs []error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil
	}

	if d.RC != nil {
		if err := d.RC.Close(); err != nil {
			errs = append(errs, errors.New("redis close error: "+err.Error()))
		}
		d.RC = nil
	}

	if d.DBM != nil {
		if err := d.DBM.Close(); err != nil {
			errs = append(errs, errors.New("database close error: "+err.Error()))
		}
		d.DBM = nil
	}

	d.closed = true
	return errs
}

// Ping verifies that the configured connections are reachable.
func (d *Connections) Ping(ctx context.Context) error {
	if d.DBM != nil {
		if err := d.DBM.Health(ctx); err != nil {
			return err
		}
	}
	if d.RC != nil {
		if err := d.RC.Ping(ctx).Err(); err != nil {
			return err
		}
	}
	return nil
}
