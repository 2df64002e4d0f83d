package corpus

import (
	"os"
	"path/filepath"
	"testing"
)

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	if cfg.MinTokens != 3 {
		t.Errorf("MinTokens = %d, want 3", cfg.MinTokens)
	}
	if cfg.CompletionMinTokens != 6 {
		t.Errorf("CompletionMinTokens = %d, want 6", cfg.CompletionMinTokens)
	}
	if cfg.PrintableThreshold != 0.95 {
		t.Errorf("PrintableThreshold = %v, want 0.95", cfg.PrintableThreshold)
	}
	if cfg.TrainPercent != 80 || cfg.ValidationPercent != 10 {
		t.Errorf("split = %d/%d, want 80/10", cfg.TrainPercent, cfg.ValidationPercent)
	}
	if cfg.Workers != 1 {
		t.Errorf("Workers = %d, want 1", cfg.Workers)
	}
	if len(cfg.HeadwordColumns) == 0 || len(cfg.DefinitionColumns) == 0 {
		t.Error("column synonym lists not populated")
	}
}

func TestApplyDefaults_ClampsOutOfRange(t *testing.T) {
	cfg := Config{TrainPercent: 150, PrintableThreshold: 2.0}
	cfg.ApplyDefaults()
	if cfg.TrainPercent != 80 {
		t.Errorf("TrainPercent = %d, want clamp to 80", cfg.TrainPercent)
	}
	if cfg.PrintableThreshold != 0.95 {
		t.Errorf("PrintableThreshold = %v, want clamp to 0.95", cfg.PrintableThreshold)
	}
}

func TestApplyDefaults_CompletionAtLeastMinTokens(t *testing.T) {
	cfg := Config{MinTokens: 8, CompletionMinTokens: 4}
	cfg.ApplyDefaults()
	if cfg.CompletionMinTokens != 8 {
		t.Errorf("CompletionMinTokens = %d, want raised to 8", cfg.CompletionMinTokens)
	}
}

func TestLoadConfig_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"minTokens": 5, "trainPercent": 70, "validationPercent": 15}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.MinTokens != 5 {
		t.Errorf("MinTokens = %d, want 5", cfg.MinTokens)
	}
	if cfg.TrainPercent != 70 || cfg.ValidationPercent != 15 {
		t.Errorf("split = %d/%d, want 70/15", cfg.TrainPercent, cfg.ValidationPercent)
	}
	if cfg.Workers != 1 {
		t.Error("defaults not applied on top of file values")
	}
}

func TestLoadConfig_ExplicitMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatal("LoadConfig() succeeded for a missing explicit path")
	}
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("CORPUS_MIN_TOKENS", "7")
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.MinTokens != 7 {
		t.Errorf("MinTokens = %d, want 7 from environment", cfg.MinTokens)
	}
}
