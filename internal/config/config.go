package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Logging    LoggingConfig    `yaml:"logging"`
	Docx       DocxConfig       `yaml:"docx"`
	Watch      WatchConfig      `yaml:"watch"`
	Fix        FixConfig        `yaml:"fix"`
	Gemini     GeminiConfig     `yaml:"gemini"`
	Whisper    WhisperConfig    `yaml:"whisper"`
	FFmpeg     FFmpegConfig     `yaml:"ffmpeg"`
	Transcribe TranscribeConfig `yaml:"transcribe"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type DocxConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Font     string `yaml:"font"`
	FontSize uint64 `yaml:"font_size"`
}

type WatchConfig struct {
	SettleDelay time.Duration `yaml:"settle_delay"`
}

type FixConfig struct {
	Replacements []Replacement `yaml:"replacements"`
}

// Replacement is one literal find/replace pair. Pairs apply in file order.
type Replacement struct {
	Old string `yaml:"old"`
	New string `yaml:"new"`
}

type GeminiConfig struct {
	Model   string   `yaml:"model"`
	APIKeys []string `yaml:"api_keys"`
}

type WhisperConfig struct {
	ModelPath  string `yaml:"model_path"`
	BinaryPath string `yaml:"binary_path"`
	Language   string `yaml:"language"`
	Prompt     string `yaml:"prompt"`
	Threads    int    `yaml:"threads"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path"`
}

type TranscribeConfig struct {
	// OutputDir receives the .srt and .txt; empty means beside the media file.
	OutputDir string `yaml:"output_dir"`
	// ArchiveDir receives the media file once it is transcribed. Relative
	// paths resolve against the media file's directory.
	ArchiveDir string `yaml:"archive_dir"`
	// Cleanup is applied to every subtitle line whisper writes. Unset means
	// DefaultCleanup; an explicit empty list disables it.
	Cleanup []Replacement `yaml:"cleanup"`
}

// DefaultCleanup removes phrases whisper tends to hallucinate over silence.
func DefaultCleanup() []Replacement {
	return []Replacement{
		{Old: "Start using a trial version of", New: ""},
		{Old: "Unicorn", New: ""},
		{Old: "Amara.org", New: ""},
		{Old: "Subtitle by", New: ""},
	}
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	cfg := &Config{}
	// Validate only fills defaults on an empty config.
	_ = cfg.Validate()
	return cfg
}

// Load reads a YAML config file, applies GEMINI_API_KEYS and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// LoadOrDefault loads path when set, otherwise returns Default.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

func (c *Config) Validate() error {
	switch strings.ToLower(c.Logging.Level) {
	case "":
		c.Logging.Level = "info"
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}

	for i, r := range c.Fix.Replacements {
		if r.Old == "" {
			return fmt.Errorf("fix.replacements[%d].old is required", i)
		}
	}

	for i, r := range c.Transcribe.Cleanup {
		if r.Old == "" {
			return fmt.Errorf("transcribe.cleanup[%d].old is required", i)
		}
	}
	if c.Whisper.Threads < 0 {
		return fmt.Errorf("whisper.threads must not be negative")
	}

	if c.Watch.SettleDelay < 0 {
		return fmt.Errorf("watch.settle_delay must not be negative")
	}
	if c.Watch.SettleDelay == 0 {
		c.Watch.SettleDelay = 500 * time.Millisecond
	}
	if c.Docx.Font == "" {
		c.Docx.Font = "Times New Roman"
	}
	if c.Docx.FontSize == 0 {
		c.Docx.FontSize = 13
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if len(c.Gemini.APIKeys) == 0 {
		c.Gemini.APIKeys = keysFromEnv(os.Getenv("GEMINI_API_KEYS"))
	}
	if c.Whisper.BinaryPath == "" {
		c.Whisper.BinaryPath = "whisper-cli"
	}
	if c.Whisper.Language == "" {
		c.Whisper.Language = "auto"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 8
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.Transcribe.ArchiveDir == "" {
		c.Transcribe.ArchiveDir = "completed"
	}
	if c.Transcribe.Cleanup == nil {
		c.Transcribe.Cleanup = DefaultCleanup()
	}

	return nil
}

// ValidateTranscribe checks the settings only the transcribe command needs.
func (c *Config) ValidateTranscribe() error {
	if c.Whisper.ModelPath == "" {
		return fmt.Errorf("whisper.model_path is required")
	}
	return nil
}

func keysFromEnv(v string) []string {
	var keys []string
	for _, k := range strings.Split(v, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}
