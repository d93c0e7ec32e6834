package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	paraCSV := flag.String("para", "", "Path to current paraprofessional CSV")
	teacherCSV := flag.String("teacher", "", "Path to current teacher CSV")
	paraPriorCSV := flag.String("para-prior", "", "Path to prior paraprofessional CSV")
	teacherPriorCSV := flag.String("teacher-prior", "", "Path to prior teacher CSV")
	outputDir := flag.String("out", "", "Output directory for the report and charts")
	jsonOut := flag.String("json", "", "Optional JSON snapshot output path")
	dbEnabled := flag.Bool("db", false, "Archive run in Postgres (requires RENEWAL_ANALYTICS_DB_URL or DATABASE_URL)")
	initDB := flag.Bool("init-db", false, "Initialize database schema and seed data if empty")
	dbSchema := flag.String("db-schema", "", "Postgres schema for archive tables")
	dbTag := flag.String("db-tag", "", "Optional label for this run")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		exitWithError(err)
	}
	flagOverride(&cfg.ParaCSV, *paraCSV)
	flagOverride(&cfg.TeacherCSV, *teacherCSV)
	flagOverride(&cfg.ParaPriorCSV, *paraPriorCSV)
	flagOverride(&cfg.TeacherPriorCSV, *teacherPriorCSV)
	flagOverride(&cfg.OutputDir, *outputDir)
	flagOverride(&cfg.JSONPath, *jsonOut)
	flagOverride(&cfg.DBSchema, *dbSchema)
	flagOverride(&cfg.RunTag, *dbTag)

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		exitWithError(err)
	}

	thresholds := defaultThresholds

	paraMetrics, err := analyzeCohort(cfg.ParaCSV, CohortPara, thresholds)
	if err != nil {
		exitWithError(err)
	}
	teacherMetrics, err := analyzeCohort(cfg.TeacherCSV, CohortTeacher, thresholds)
	if err != nil {
		exitWithError(err)
	}

	comparison := fileExists(cfg.ParaPriorCSV) || fileExists(cfg.TeacherPriorCSV)
	paraPrior := zeroMetrics(paraMetricKeys)
	teacherPrior := zeroMetrics(teacherMetricKeys)
	if comparison {
		paraPrior, err = analyzeCohort(cfg.ParaPriorCSV, CohortPara, thresholds)
		if err != nil {
			exitWithError(err)
		}
		teacherPrior, err = analyzeCohort(cfg.TeacherPriorCSV, CohortTeacher, thresholds)
		if err != nil {
			exitWithError(err)
		}
	}

	report := Report{
		GeneratedAt: time.Now(),
		Comparison:  comparison,
		Para:        buildCohortResult(CohortPara, paraMetrics, paraPrior, paraRate, comparison),
		Teacher:     buildCohortResult(CohortTeacher, teacherMetrics, teacherPrior, teacherRate, comparison),
	}

	printReport(report)

	chartFiles, err := renderCharts(report, cfg.OutputDir)
	if err != nil {
		exitWithError(err)
	}
	dashboardPath, err := writeDashboard(report, chartFiles, cfg.OutputDir)
	if err != nil {
		exitWithError(err)
	}
	fmt.Printf("\nDashboard saved to %s\n", dashboardPath)
	for _, file := range chartFiles {
		fmt.Printf("Chart saved to %s\n", filepath.Join(cfg.OutputDir, file))
	}

	if cfg.JSONPath != "" {
		if err := writeJSON(report, cfg.JSONPath); err != nil {
			exitWithError(err)
		}
		fmt.Printf("JSON snapshot saved to %s\n", cfg.JSONPath)
	}

	if *dbEnabled || *initDB {
		dbURL := dbURLFromEnv()
		if dbURL == "" {
			exitWithError(fmt.Errorf("database URL missing; set RENEWAL_ANALYTICS_DB_URL or DATABASE_URL"))
		}
		dbCfg := DBConfig{URL: dbURL, Schema: cfg.DBSchema, Tag: cfg.RunTag}
		seeded := false
		if *initDB {
			runID, err := seedDatabase(report, dbCfg)
			if err != nil {
				exitWithError(err)
			}
			if runID != "" {
				seeded = true
				fmt.Printf("\nSeeded Postgres with initial run (run_id=%s)\n", runID)
			}
		}
		if *dbEnabled {
			if seeded {
				fmt.Println("Skipped duplicate insert; current run already used for seed.")
			} else {
				runID, err := storeReportInDB(report, dbCfg)
				if err != nil {
					exitWithError(err)
				}
				fmt.Printf("\nArchived run in Postgres (run_id=%s)\n", runID)
			}
		}
	}
}

// analyzeCohort loads and analyzes one dataset. A missing file is a
// warning, not an error: the cohort degrades to an all-zero snapshot
// so the rest of the run can proceed.
func analyzeCohort(path string, cohort Cohort, t Thresholds) (Metrics, error) {
	schema := paraSchema
	keys := paraMetricKeys
	if cohort == CohortTeacher {
		schema = teacherSchema
		keys = teacherMetricKeys
	}

	if !fileExists(path) {
		if path == "" {
			log.Printf("warning: no %s CSV configured; using zero metrics", cohort)
		} else {
			log.Printf("warning: %s CSV not found at %s; using zero metrics", cohort, path)
		}
		return zeroMetrics(keys), nil
	}

	rows, err := loadRows(path, schema)
	if err != nil {
		return nil, fmt.Errorf("%s dataset: %w", cohort, err)
	}
	log.Printf("loaded %d %s records from %s", len(rows), cohort, path)

	if cohort == CohortTeacher {
		return AnalyzeTeachers(rows, t), nil
	}
	return AnalyzeParaprofessionals(rows, t), nil
}

func flagOverride(target *string, value string) {
	if value != "" {
		*target = value
	}
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}
