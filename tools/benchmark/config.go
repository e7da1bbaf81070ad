package main

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// BenchmarkConfig is the state kept between runs: the target API, the load shape
// and a summary of the last run for comparison.
type BenchmarkConfig struct {
	BaseURL     string     `json:"base_url,omitempty"`
	Network     string     `json:"network,omitempty"`
	Donations   int        `json:"donations,omitempty"`
	Concurrency int        `json:"concurrency,omitempty"`
	Amount      float64    `json:"amount,omitempty"`
	LastRun     *RunRecord `json:"last_run,omitempty"`
}

// RunRecord summarizes a finished run
type RunRecord struct {
	CampaignID string    `json:"campaign_id"`
	FinishedAt time.Time `json:"finished_at"`
	Succeeded  int       `json:"succeeded"`
	Failed     int       `json:"failed"`
	Throughput float64   `json:"throughput"` // accepted donations per second
	P95        string    `json:"p95"`
	Consistent bool      `json:"consistent"`
}

// LoadConfig loads the saved state. A missing file yields an empty config.
func LoadConfig(path string) (*BenchmarkConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &BenchmarkConfig{}, nil
		}
		return nil, err
	}

	var cfg BenchmarkConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SaveConfig writes the state atomically so an interrupted run never leaves a truncated file
func SaveConfig(path string, cfg *BenchmarkConfig) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".benchmark-*.json")
	if err != nil {
		return err
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}

// Apply fills every setting of cfg that was not set explicitly on the command line
func (b *BenchmarkConfig) Apply(cfg *Config, explicit map[string]bool) {
	if !explicit["base-url"] && b.BaseURL != "" {
		cfg.BaseURL = b.BaseURL
	}
	if !explicit["network"] && b.Network != "" {
		cfg.Network = b.Network
	}
	if !explicit["donations"] && b.Donations > 0 {
		cfg.Donations = b.Donations
	}
	if !explicit["concurrency"] && b.Concurrency > 0 {
		cfg.Concurrency = b.Concurrency
	}
	if !explicit["amount"] && b.Amount > 0 {
		cfg.Amount = b.Amount
	}
}

// Record stores the settings of a finished run and its outcome as the last run
func (b *BenchmarkConfig) Record(cfg *Config, result *Result, finishedAt time.Time) {
	b.BaseURL = cfg.BaseURL
	b.Network = cfg.Network
	b.Donations = cfg.Donations
	b.Concurrency = cfg.Concurrency
	b.Amount = cfg.Amount

	var throughput float64
	if result.Duration > 0 {
		throughput = float64(result.Succeeded) / result.Duration.Seconds()
	}

	b.LastRun = &RunRecord{
		CampaignID: result.CampaignID,
		FinishedAt: finishedAt.UTC(),
		Succeeded:  result.Succeeded,
		Failed:     result.Failed,
		Throughput: throughput,
		P95:        formatDuration(percentile(result.Latencies, 95)),
		Consistent: result.Consistent(),
	}
}

// GetDefaultConfigPath returns the default state file path
func GetDefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".ff-donate-benchmark.json"
	}
	return filepath.Join(home, ".ff-donate-benchmark.json")
}
