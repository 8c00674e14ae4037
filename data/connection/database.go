package connection

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"

	// database drivers
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/aimarket/mcore/data/config"
)

var (
	ErrNoAvailableSlaves = errors.New("no available slave databases")
	ErrInvalidStrategy   = errors.New("invalid load balance strategy")
	ErrUnknownDriver     = errors.New("unknown database driver")
)

// driverNames maps config driver names to database/sql driver names.
var driverNames = map[string]string{
	"postgres": "pgx",
	"pgx":      "pgx",
	"mysql":    "mysql",
	"sqlite3":  "sqlite3",
	"sqlite":   "sqlite3",
}

// DBManager manages database connections for read-write splitting
type DBManager struct {
	master   *sql.DB
	slaves   []*sql.DB
	strategy LoadBalancer
	mutex    sync.RWMutex
	maxRetry int
}

// LoadBalancer selects a slave connection for the next read.
type LoadBalancer interface {
	Next([]*sql.DB) (*sql.DB, error)
}

// RoundRobinBalancer Implement polling strategy
type RoundRobinBalancer struct {
	current *uint64
}

// NewRoundRobinBalancer Create new RoundRobinBalancer
func NewRoundRobinBalancer() *RoundRobinBalancer {
	var counter uint64
	return &RoundRobinBalancer{
		current: &counter,
	}
}

func (rb *RoundRobinBalancer) Next(slaves []*sql.DB) (*sql.DB, error) {
	if len(slaves) == 0 {
		return nil, ErrNoAvailableSlaves
	}

	next := atomic.AddUint64(rb.current, 1) % uint64(len(slaves))
	return slaves[next], nil
}

// RandomBalancer Implement random strategy
type RandomBalancer struct{}

func (rb *RandomBalancer) Next(slaves []*sql.DB) (*sql.DB, error) {
	if len(slaves) == 0 {
		return nil, ErrNoAvailableSlaves
	}

	idx := rand.Intn(len(slaves))
	return slaves[idx], nil
}

// WeightBalancer Implement weight strategy
type WeightBalancer struct {
	weights []int
	current *uint64
}

func NewWeightBalancer(slaves []*config.DBNode) *WeightBalancer {
	weights := make([]int, len(slaves))
	for i, slave := range slaves {
		weights[i] = slave.Weight
		if weights[i] <= 0 {
			weights[i] = 1 // default
		}
	}

	var counter uint64
	return &WeightBalancer{
		weights: weights,
		current: &counter,
	}
}

func (wb *WeightBalancer) Next(slaves []*sql.DB) (*sql.DB, error) {
	if len(slaves) == 0 {
		return nil, ErrNoAvailableSlaves
	}

	// The slave set can differ from the configured weights: health checks
	// prune unhealthy slaves, and a weight strategy without configured
	// slaves falls back to the master. Round-robin in that case.
	if len(wb.weights) != len(slaves) {
		next := atomic.AddUint64(wb.current, 1) % uint64(len(slaves))
		return slaves[next], nil
	}

	totalWeight := 0
	for _, w := range wb.weights {
		totalWeight += w
	}

	next := atomic.AddUint64(wb.current, 1) % uint64(totalWeight)

	var accumulator int
	for i, w := range wb.weights {
		accumulator += w
		if uint64(accumulator) > next {
			return slaves[i], nil
		}
	}

	// should not reach here, but just in case, return the first slave
	return slaves[0], nil
}

// NewDBManager creates a new database manager with read-write splitting
func NewDBManager(conf *config.Database) (*DBManager, error) {
	if conf.Master == nil {
		return nil, fmt.Errorf("master database configuration is required")
	}
	master, err := newDBClient(conf.Master)
	if err != nil {
		return nil, err
	}

	var slaves []*sql.DB
	for _, slaveCfg := range conf.Slaves {
		slave, err := newDBClient(slaveCfg)
		if err != nil {
			fmt.Printf("Failed to connect to slave DB: %v", err)
			continue
		}
		slaves = append(slaves, slave)
	}

	// if no slave database is available, use master
	if len(slaves) == 0 {
		slaves = append(slaves, master)
	}

	strategy, err := newBalancer(conf)
	if err != nil {
		return nil, err
	}

	return &DBManager{
		master:   master,
		slaves:   slaves,
		strategy: strategy,
		maxRetry: conf.MaxRetry,
	}, nil
}

func newBalancer(conf *config.Database) (LoadBalancer, error) {
	switch conf.Strategy {
	case "round_robin", "":
		return NewRoundRobinBalancer(), nil
	case "random":
		return &RandomBalancer{}, nil
	case "weight":
		return NewWeightBalancer(conf.Slaves), nil
	default:
		return nil, ErrInvalidStrategy
	}
}

func newDBClient(conf *config.DBNode) (*sql.DB, error) {
	name, ok := driverNames[conf.Driver]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDriver, conf.Driver)
	}

	db, err := sql.Open(name, conf.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", conf.Driver, err)
	}

	db.SetMaxIdleConns(conf.MaxIdleConn)
	db.SetMaxOpenConns(conf.MaxOpenConn)
	db.SetConnMaxLifetime(conf.ConnMaxLifeTime)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect using %s driver: %w", conf.Driver, err)
	}

	return db, nil
}

// Master returns the master database connection
func (dm *DBManager) Master() *sql.DB {
	return dm.master
}

// Slave returns a slave database connection based on the load balancing strategy
func (dm *DBManager) Slave() (*sql.DB, error) {
	dm.mutex.RLock()
	defer dm.mutex.RUnlock()

	var lastErr error
	for i := 0; i <= dm.maxRetry; i++ {
		slave, err := dm.strategy.Next(dm.slaves)
		if err != nil {
			lastErr = err
			continue
		}

		if err := slave.PingContext(context.Background()); err != nil {
			lastErr = err
			continue
		}

		return slave, nil
	}

	return nil, fmt.Errorf("all retry attempts failed: %v", lastErr)
}

// Close closes all database connections
func (dm *DBManager) Close() error {
	var errs []error

	if err := dm.master.Close(); err != nil {
		errs = append(errs, fmt.Errorf("error closing master connection: %v", err))
	}

	for i, slave := range dm.slaves {
		if slave != dm.master { // Avoid double closing the master connection
			if err := slave.Close(); err != nil {
				errs = append(errs, fmt.Errorf("error closing slave %d connection: %v", i, err))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors closing database connections: %v", errs)
	}
	return nil
}

// Health checks the health of all database connections
func (dm *DBManager) Health(ctx context.Context) error {
	if err := dm.master.PingContext(ctx); err != nil {
		return fmt.Errorf("master database health check failed: %v", err)
	}

	dm.mutex.Lock()
	defer dm.mutex.Unlock()

	// Check health of slave databases, and update the list of healthy slaves
	var healthySlaves []*sql.DB
	for _, slave := range dm.slaves {
		if err := slave.PingContext(ctx); err != nil {
			continue
		}
		healthySlaves = append(healthySlaves, slave)
	}

	dm.slaves = healthySlaves

	// if no slave database is available, use master
	if len(dm.slaves) == 0 {
		dm.slaves = append(dm.slaves, dm.master)
	}

	return nil
}
