package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
)

type DBConfig struct {
	URL    string
	Schema string
	Tag    string
}

func dbURLFromEnv() string {
	if value := strings.TrimSpace(os.Getenv("RENEWAL_ANALYTICS_DB_URL")); value != "" {
		return value
	}
	return strings.TrimSpace(os.Getenv("DATABASE_URL"))
}

func sanitizeSchema(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", errors.New("db schema is required")
	}
	valid := regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)
	if !valid.MatchString(value) {
		return "", fmt.Errorf("invalid schema name: %s", value)
	}
	return value, nil
}

// seedDatabase bootstraps the schema and stores the current report as
// the first archived run when the archive is empty.
func seedDatabase(report Report, cfg DBConfig) (string, error) {
	schema, err := sanitizeSchema(cfg.Schema)
	if err != nil {
		return "", err
	}

	db, err := sql.Open("pgx", cfg.URL)
	if err != nil {
		return "", err
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 12*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return "", err
	}
	if err := ensureSchema(ctx, db, schema); err != nil {
		return "", err
	}

	var count int
	if err := db.QueryRowContext(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM %s.analysis_runs`, schema)).Scan(&count); err != nil {
		return "", err
	}
	if count > 0 {
		fmt.Println("Archive data already present; skipping seed.")
		return "", nil
	}

	return storeReportTx(ctx, db, report, schema, cfg.Tag)
}

func storeReportInDB(report Report, cfg DBConfig) (string, error) {
	schema, err := sanitizeSchema(cfg.Schema)
	if err != nil {
		return "", err
	}

	db, err := sql.Open("pgx", cfg.URL)
	if err != nil {
		return "", err
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 12*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return "", err
	}
	if err := ensureSchema(ctx, db, schema); err != nil {
		return "", err
	}

	return storeReportTx(ctx, db, report, schema, cfg.Tag)
}

func storeReportTx(ctx context.Context, db *sql.DB, report Report, schema string, tag string) (string, error) {
	runID := uuid.New()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx, fmt.Sprintf(`
		INSERT INTO %s.analysis_runs (
			id, generated_at, comparison, spa_completion_rate, ste_completion_rate, run_tag
		) VALUES ($1,$2,$3,$4,$5,$6)`, schema),
		runID,
		report.GeneratedAt,
		report.Comparison,
		report.Para.CompletionRate,
		report.Teacher.CompletionRate,
		nullString(tag),
	)
	if err != nil {
		_ = tx.Rollback()
		return "", err
	}

	insertMetricSQL := fmt.Sprintf(`
		INSERT INTO %s.analysis_metrics (
			id, run_id, cohort, metric, value, delta
		) VALUES ($1,$2,$3,$4,$5,$6)`, schema)

	for _, result := range []CohortResult{report.Para, report.Teacher} {
		for metric, value := range result.Metrics {
			delta := ""
			if report.Comparison {
				delta = result.Diffs[metric]
			}
			_, err = tx.ExecContext(ctx, insertMetricSQL,
				uuid.New(),
				runID,
				result.Cohort,
				metric,
				value,
				nullString(delta),
			)
			if err != nil {
				_ = tx.Rollback()
				return "", err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return runID.String(), nil
}

func ensureSchema(ctx context.Context, db *sql.DB, schema string) error {
	if _, err := db.ExecContext(ctx, fmt.Sprintf(`CREATE SCHEMA IF NOT EXISTS %s`, schema)); err != nil {
		return err
	}

	_, err := db.ExecContext(ctx, fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s.analysis_runs (
			id uuid PRIMARY KEY,
			generated_at timestamptz NOT NULL,
			comparison boolean NOT NULL,
			spa_completion_rate numeric(5,1) NOT NULL,
			ste_completion_rate numeric(5,1) NOT NULL,
			run_tag text,
			created_at timestamptz NOT NULL DEFAULT now()
		)`, schema))
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s.analysis_metrics (
			id uuid PRIMARY KEY,
			run_id uuid NOT NULL REFERENCES %s.analysis_runs(id) ON DELETE CASCADE,
			cohort text NOT NULL,
			metric text NOT NULL,
			value integer NOT NULL,
			delta text,
			created_at timestamptz NOT NULL DEFAULT now()
		)`, schema, schema))
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s_analysis_metrics_run_idx ON %s.analysis_metrics (run_id)`, schema, schema))
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s_analysis_metrics_metric_idx ON %s.analysis_metrics (metric)`, schema, schema))
	return err
}

func nullString(value string) sql.NullString {
	if strings.TrimSpace(value) == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: value, Valid: true}
}
