package database

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/lib/pq"

	"github.com/volodymyr-curly/university-sub001/config"
)

// PostgreSQLStore is the raw database/sql connection used for the DDL that
// GORM's migrator does not cover (the domain enum types) and for the health
// endpoint's low-level ping.
type PostgreSQLStore struct {
	db *sql.DB
}

// StartPostgreSQL opens a raw connection to PostgreSQL
func StartPostgreSQL() (*PostgreSQLStore, error) {
	getEnv, err := config.Get()
	if err != nil {
		return nil, err
	}

	connStr := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		getEnv.DB_HOST,
		getEnv.DB_USER_NAME,
		getEnv.DB_PASSWORD,
		getEnv.DB_NAME,
		getEnv.DB_PORT,
		getEnv.DB_SSL_MODE,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		log.Println("Unable to connect to PostgreSQL:", err)
		return nil, err
	}

	return &PostgreSQLStore{db: db}, nil
}

// Init creates the domain enum types. It must run before AutoMigrate so the
// enum-typed columns can be created against existing types.
func (s *PostgreSQLStore) Init() error {
	log.Println("Initializing PostgreSQL Database.", "Initializing Enums")
	return s.InitEnums()
}

// InitEnums creates every domain enum type, ignoring the ones that already
// exist.
func (s *PostgreSQLStore) InitEnums() error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'gender') THEN
				CREATE TYPE gender AS ENUM ('male', 'female');
			END IF;
			IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'degree') THEN
				CREATE TYPE degree AS ENUM ('bachelor', 'master', 'doctoral');
			END IF;
			IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'job_title') THEN
				CREATE TYPE job_title AS ENUM ('assistant', 'lecturer', 'senior_lecturer', 'docent', 'professor');
			END IF;
			IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'employment_type') THEN
				CREATE TYPE employment_type AS ENUM ('full_time', 'part_time', 'contract');
			END IF;
			IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'mark_value') THEN
				CREATE TYPE mark_value AS ENUM ('A', 'B', 'C', 'D', 'E', 'F');
			END IF;
		END
		$$;
	`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("failed to create enum types: %w", err)
	}
	return nil
}

// Close closes the database connection
func (s *PostgreSQLStore) Close() error {
	log.Println("Closing raw PostgreSQL connection...")
	return s.db.Close()
}

// HealthCheck verifies the database connection is alive
func (s *PostgreSQLStore) HealthCheck() error {
	return s.db.Ping()
}

// GetDB returns the underlying *sql.DB
func (s *PostgreSQLStore) GetDB() interface{} {
	return s.db
}
