package config

import (
	"os"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Paths: PathsConfig{
					Input:  "data/input",
					Output: "data/output",
				},
			},
			wantErr: false,
		},
		{
			name: "missing input",
			config: Config{
				Paths: PathsConfig{
					Output: "data/output",
				},
			},
			wantErr: true,
		},
		{
			name: "missing output",
			config: Config{
				Paths: PathsConfig{
					Input: "data/input",
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{
		Paths: PathsConfig{Input: "in", Output: "out"},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Paths.Archived != "data/archived" {
		t.Errorf("Archived = %v", cfg.Paths.Archived)
	}
	if cfg.Document.Title != "Meeting Transcription" {
		t.Errorf("Title = %v", cfg.Document.Title)
	}
	if cfg.Document.Font != "Times New Roman" || cfg.Document.FontSize != 13 {
		t.Errorf("Font = %v size %v", cfg.Document.Font, cfg.Document.FontSize)
	}
	if cfg.Performance.MaxConcurrent != 2 {
		t.Errorf("MaxConcurrent = %v", cfg.Performance.MaxConcurrent)
	}
}

func TestLoad(t *testing.T) {
	// Create a temporary config file
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
paths:
  input: "data/input"
  output: "data/output"

document:
  title: "Weekly Sync"
  font: "Calibri"
  font_size: 11

logging:
  level: "debug"
  format: "text"

performance:
  max_concurrent: 4
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Paths.Input != "data/input" {
		t.Errorf("Input = %v, want %v", cfg.Paths.Input, "data/input")
	}
	if cfg.Document.Title != "Weekly Sync" {
		t.Errorf("Title = %v, want %v", cfg.Document.Title, "Weekly Sync")
	}
	if cfg.Performance.MaxConcurrent != 4 {
		t.Errorf("MaxConcurrent = %v, want 4", cfg.Performance.MaxConcurrent)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
