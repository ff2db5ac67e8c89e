package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"isolux/internal/logger"

	_ "github.com/joho/godotenv/autoload"
	_ "github.com/mattn/go-sqlite3"
)

// Service represents a service that interacts with the ambient
// compute-history database. It carries no core pipeline semantics —
// internal/photometric never reads from or writes to it.
type Service interface {
	Health() map[string]string
	Close() error
	GetDB() *sql.DB
	RecordCompute(ctx context.Context, entry ComputeHistory) error
}

type service struct {
	db  *sql.DB
	url string
}

var dbInstance *service

// New opens (or returns the already-open) SQLite-backed history store
// at dbURL and applies any pending migrations.
func New(dbURL string) Service {
	if dbInstance != nil {
		return dbInstance
	}

	db, err := sql.Open("sqlite3", dbURL)
	if err != nil {
		logger.Default.Fatal(err)
	}

	dbInstance = &service{db: db, url: dbURL}

	if err := dbInstance.migrate(); err != nil {
		logger.Default.Fatalf("migration failed: %v", err)
	}

	return dbInstance
}

func (s *service) migrate() error {
	if _, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		return fmt.Errorf("create migrations table: %w", err)
	}

	migrations, err := filepath.Glob("internal/database/migrations/*.sql")
	if err != nil {
		return fmt.Errorf("find migrations: %w", err)
	}

	for _, m := range migrations {
		name := filepath.Base(m)
		var count int
		err := s.db.QueryRow("SELECT COUNT(*) FROM schema_migrations WHERE name = ?", name).Scan(&count)
		if err != nil {
			return fmt.Errorf("check migration %s: %w", name, err)
		}

		if count > 0 {
			continue
		}

		sqlContent, err := os.ReadFile(m)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(sqlContent)); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}

		var version int
		fmt.Sscanf(name, "%d_", &version)
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version, name) VALUES (?, ?)", version, name); err != nil {
			return fmt.Errorf("record migration %s: %w", name, err)
		}

		logger.Default.Infof("applied migration: %s", name)
	}

	return nil
}

// Health checks the health of the database connection by pinging it.
func (s *service) Health() map[string]string {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	stats := make(map[string]string)

	if err := s.db.PingContext(ctx); err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db down: %v", err)
		return stats
	}

	stats["status"] = "up"
	stats["message"] = "history store healthy"

	dbStats := s.db.Stats()
	stats["open_connections"] = strconv.Itoa(dbStats.OpenConnections)
	stats["in_use"] = strconv.Itoa(dbStats.InUse)
	stats["idle"] = strconv.Itoa(dbStats.Idle)

	return stats
}

// Close closes the database connection.
func (s *service) Close() error {
	logger.Default.Infof("disconnected from history store: %s", s.url)
	return s.db.Close()
}

func (s *service) GetDB() *sql.DB {
	return s.db
}

// RecordCompute appends one audit row for a served compute request.
// Failures to record are never surfaced to the caller of the compute
// endpoint — this is telemetry, not part of the result.
func (s *service) RecordCompute(ctx context.Context, entry ComputeHistory) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO compute_history
		(filename, units, illuminance_units, point_count, level_count, duration_ms, succeeded, error_message, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.Filename, entry.Units, entry.IlluminanceUnits, entry.PointCount, entry.LevelCount,
		entry.DurationMs, entry.Succeeded, entry.ErrorMessage, entry.CreatedAt)
	return err
}
