package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "empty config",
			config:  Config{},
			wantErr: false,
		},
		{
			name: "valid config",
			config: Config{
				Logging: LoggingConfig{Level: "DEBUG"},
				Fix: FixConfig{Replacements: []Replacement{
					{Old: "trapGPT", New: "ChatGPT"},
				}},
			},
			wantErr: false,
		},
		{
			name: "unknown log level",
			config: Config{
				Logging: LoggingConfig{Level: "verbose"},
			},
			wantErr: true,
		},
		{
			name: "empty replacement source",
			config: Config{
				Fix: FixConfig{Replacements: []Replacement{
					{Old: "", New: "ChatGPT"},
				}},
			},
			wantErr: true,
		},
		{
			name: "empty cleanup source",
			config: Config{
				Transcribe: TranscribeConfig{Cleanup: []Replacement{{Old: "", New: "x"}}},
			},
			wantErr: true,
		},
		{
			name: "negative whisper threads",
			config: Config{
				Whisper: WhisperConfig{Threads: -1},
			},
			wantErr: true,
		},
		{
			name: "negative settle delay",
			config: Config{
				Watch: WatchConfig{SettleDelay: -time.Second},
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

func TestDefault(t *testing.T) {
	t.Setenv("GEMINI_API_KEYS", "")

	cfg := Default()

	if cfg.Logging.Level != "info" {
		t.Errorf("Level = %v, want %v", cfg.Logging.Level, "info")
	}
	if cfg.Docx.Enabled {
		t.Error("Docx.Enabled should default to false")
	}
	if cfg.Docx.FontSize != 13 {
		t.Errorf("FontSize = %v, want %v", cfg.Docx.FontSize, 13)
	}
	if cfg.Watch.SettleDelay != 500*time.Millisecond {
		t.Errorf("SettleDelay = %v, want %v", cfg.Watch.SettleDelay, 500*time.Millisecond)
	}
	if len(cfg.Gemini.APIKeys) != 0 {
		t.Errorf("APIKeys = %v, want none", cfg.Gemini.APIKeys)
	}
	if cfg.Whisper.BinaryPath != "whisper-cli" || cfg.Whisper.Language != "auto" || cfg.Whisper.Threads != 8 {
		t.Errorf("Whisper = %+v", cfg.Whisper)
	}
	if cfg.FFmpeg.BinaryPath != "ffmpeg" {
		t.Errorf("FFmpeg.BinaryPath = %v, want %v", cfg.FFmpeg.BinaryPath, "ffmpeg")
	}
	if cfg.Transcribe.ArchiveDir != "completed" {
		t.Errorf("ArchiveDir = %v, want %v", cfg.Transcribe.ArchiveDir, "completed")
	}
	if len(cfg.Transcribe.Cleanup) != len(DefaultCleanup()) {
		t.Errorf("Cleanup = %+v, want the default table", cfg.Transcribe.Cleanup)
	}
}

func TestValidateTranscribe(t *testing.T) {
	tests := []struct {
		name      string
		modelPath string
		wantErr   bool
	}{
		{name: "model set", modelPath: "models/ggml-base.bin", wantErr: false},
		{name: "model missing", modelPath: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Whisper.ModelPath = tt.modelPath
			err := cfg.ValidateTranscribe()
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTranscribe() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadTranscribe(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
whisper:
  model_path: "models/ggml-large-v3.bin"
  language: "zh"
  threads: 4

transcribe:
  output_dir: "outputs"
  cleanup: []
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Whisper.ModelPath != "models/ggml-large-v3.bin" || cfg.Whisper.Language != "zh" || cfg.Whisper.Threads != 4 {
		t.Errorf("Whisper = %+v", cfg.Whisper)
	}
	if cfg.Transcribe.OutputDir != "outputs" {
		t.Errorf("OutputDir = %v, want %v", cfg.Transcribe.OutputDir, "outputs")
	}
	if len(cfg.Transcribe.Cleanup) != 0 {
		t.Errorf("Cleanup = %+v, want an explicit empty list to stay empty", cfg.Transcribe.Cleanup)
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("GEMINI_API_KEYS", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
logging:
  level: "debug"

docx:
  enabled: true
  font: "Arial"

watch:
  settle_delay: 2s

fix:
  replacements:
    - old: "trapGPT"
      new: "ChatGPT"
    - old: "mini journey"
      new: "Midjourney"

gemini:
  model: "gemini-2.5-pro"
  api_keys: ["k1", "k2"]
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %v, want %v", cfg.Logging.Level, "debug")
	}
	if !cfg.Docx.Enabled || cfg.Docx.Font != "Arial" || cfg.Docx.FontSize != 13 {
		t.Errorf("Docx = %+v", cfg.Docx)
	}
	if cfg.Watch.SettleDelay != 2*time.Second {
		t.Errorf("SettleDelay = %v, want %v", cfg.Watch.SettleDelay, 2*time.Second)
	}
	if len(cfg.Fix.Replacements) != 2 || cfg.Fix.Replacements[1].New != "Midjourney" {
		t.Errorf("Replacements = %+v", cfg.Fix.Replacements)
	}
	if cfg.Gemini.Model != "gemini-2.5-pro" || len(cfg.Gemini.APIKeys) != 2 {
		t.Errorf("Gemini = %+v", cfg.Gemini)
	}
}

func TestLoadKeysFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEYS", " a , ,b")

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("logging:\n  level: info\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(cfg.Gemini.APIKeys) != 2 || cfg.Gemini.APIKeys[0] != "a" || cfg.Gemini.APIKeys[1] != "b" {
		t.Errorf("APIKeys = %v, want [a b]", cfg.Gemini.APIKeys)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault("")
	if err != nil {
		t.Fatalf("LoadOrDefault() error = %v", err)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Level = %v, want %v", cfg.Logging.Level, "info")
	}
}
