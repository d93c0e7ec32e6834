package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries the externally supplied run settings. Values come
// from an optional YAML file, overridden by environment variables,
// overridden by flags.
type Config struct {
	ParaCSV         string `yaml:"para_csv"`
	TeacherCSV      string `yaml:"teacher_csv"`
	ParaPriorCSV    string `yaml:"para_prior_csv"`
	TeacherPriorCSV string `yaml:"teacher_prior_csv"`

	OutputDir string `yaml:"output_dir"`
	JSONPath  string `yaml:"json_path"`

	DBSchema string `yaml:"db_schema"`
	RunTag   string `yaml:"run_tag"`
}

func defaultConfig() Config {
	return Config{
		OutputDir: "renewal_reports",
		DBSchema:  "renewal_analytics",
	}
}

func LoadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	if path == "" {
		path = os.Getenv("RENEWAL_CONFIG_PATH")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("unable to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("unable to parse %s: %w", path, err)
		}
	}

	envOverride(&cfg.ParaCSV, "RENEWAL_PARA_CSV")
	envOverride(&cfg.TeacherCSV, "RENEWAL_TEACHER_CSV")
	envOverride(&cfg.ParaPriorCSV, "RENEWAL_PARA_PRIOR_CSV")
	envOverride(&cfg.TeacherPriorCSV, "RENEWAL_TEACHER_PRIOR_CSV")
	envOverride(&cfg.OutputDir, "RENEWAL_OUTPUT_DIR")
	envOverride(&cfg.JSONPath, "RENEWAL_JSON_PATH")
	envOverride(&cfg.DBSchema, "RENEWAL_DB_SCHEMA")
	envOverride(&cfg.RunTag, "RENEWAL_RUN_TAG")

	return cfg, nil
}

func envOverride(target *string, key string) {
	if value := os.Getenv(key); value != "" {
		*target = value
	}
}
