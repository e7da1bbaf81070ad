package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/alitto/pond/v2"
)

const (
	defaultBaseURL = "http://localhost:8080"
	defaultNetwork = "testnet"
	amountEpsilon  = 1e-6
)

type Config struct {
	BaseURL        string
	Network        string
	Donations      int           // Number of donations to send
	Concurrency    int           // Number of concurrent workers
	Amount         float64       // Amount of every donation
	RequestTimeout time.Duration // Timeout for each HTTP request
	OutputFile     string        // Output markdown file path (optional)
	ConfigFile     string        // State file with saved settings and the last run
	Save           bool          // Save settings and the run summary to ConfigFile
	Debug          bool
}

// Result holds the outcome of a benchmark run
type Result struct {
	CampaignID     string
	Requested      int
	Succeeded      int
	Failed         int
	ExpectedRaised float64
	ObservedRaised float64
	ObservedCount  int
	StartTime      time.Time
	Duration       time.Duration
	Latencies      []time.Duration
	Errors         map[string]int
}

// Consistent reports whether the campaign total matches the successful donations
func (r *Result) Consistent() bool {
	return math.Abs(r.ExpectedRaised-r.ObservedRaised) < amountEpsilon && r.ObservedCount == r.Succeeded
}

type campaignResponse struct {
	ID        string  `json:"id"`
	Raised    float64 `json:"raised"`
	Donations []struct {
		ID string `json:"id"`
	} `json:"donations"`
}

func main() {
	cfg, state := parseFlags()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\n\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	fmt.Printf("Target API: %s (network: %s)\n", cfg.BaseURL, cfg.Network)
	fmt.Printf("Sending %d donations with %d workers...\n", cfg.Donations, cfg.Concurrency)

	client := &http.Client{Timeout: cfg.RequestTimeout}
	result, err := runBenchmark(ctx, client, cfg)
	if err != nil {
		fmt.Printf("Error running benchmark: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\n" + strings.Repeat("=", 80))
	fmt.Println("BENCHMARK RESULTS")
	fmt.Println(strings.Repeat("=", 80))
	printResult(result)

	if state.LastRun != nil {
		printComparison(state.LastRun, result)
	}

	if cfg.Save {
		state.Record(cfg, result, time.Now())
		if err := SaveConfig(cfg.ConfigFile, state); err != nil {
			fmt.Printf("\n⚠️  Warning: Failed to save config: %v\n", err)
		}
	}

	// Write to markdown file if specified
	if cfg.OutputFile != "" {
		if err := writeMarkdownReport(cfg.OutputFile, result); err != nil {
			fmt.Printf("\n⚠️  Warning: Failed to write markdown file: %v\n", err)
		} else {
			fmt.Printf("\n✓ Report written to: %s\n", cfg.OutputFile)
		}
	}

	if !result.Consistent() {
		os.Exit(2)
	}
}

func parseFlags() (*Config, *BenchmarkConfig) {
	cfg := &Config{}

	flag.StringVar(&cfg.BaseURL, "base-url", defaultBaseURL, "Base URL of the donate API")
	flag.StringVar(&cfg.Network, "network", defaultNetwork, "Network of the campaign and donations (mainnet or testnet)")
	flag.IntVar(&cfg.Donations, "donations", 500, "Number of donations to send (default: 500)")
	flag.IntVar(&cfg.Concurrency, "concurrency", 20, "Number of concurrent workers (default: 20)")
	flag.Float64Var(&cfg.Amount, "amount", 1.25, "Amount of every donation (default: 1.25)")
	flag.StringVar(&cfg.OutputFile, "output", "", "Output markdown file path (optional)")
	flag.BoolVar(&cfg.Debug, "debug", false, "Print every failed request")

	var requestTimeoutSeconds int
	flag.IntVar(&requestTimeoutSeconds, "request-timeout", 10, "Timeout for each request in seconds (default: 10)")

	flag.StringVar(&cfg.ConfigFile, "config", GetDefaultConfigPath(), "Path to the state file with saved settings and the last run")
	flag.BoolVar(&cfg.Save, "save", true, "Save settings and the run summary to the state file")

	flag.Parse()

	explicit := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		explicit[f.Name] = true
	})

	// Saved settings apply unless overridden on the command line
	state, err := LoadConfig(cfg.ConfigFile)
	if err != nil {
		fmt.Printf("Warning: failed to load config file: %v\n", err)
		state = &BenchmarkConfig{}
	}
	state.Apply(cfg, explicit)

	cfg.RequestTimeout = time.Duration(requestTimeoutSeconds) * time.Second

	if cfg.Donations <= 0 {
		cfg.Donations = 500
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 20
	}
	if cfg.Amount <= 0 {
		cfg.Amount = 1.25
	}

	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return cfg, state
}

// runBenchmark creates a campaign, donates to it concurrently and compares the raised total
// with the sum of the donations the API accepted.
func runBenchmark(ctx context.Context, client *http.Client, cfg *Config) (*Result, error) {
	creator := donorAddress(0)
	var campaign campaignResponse
	status, err := doJSON(ctx, client, http.MethodPost, cfg.BaseURL+"/api/campaigns", map[string]any{
		"title":              "Benchmark campaign",
		"description":        fmt.Sprintf("Load test started at %s", time.Now().UTC().Format(time.RFC3339)),
		"goal":               cfg.Amount * float64(cfg.Donations),
		"beneficiaryAddress": creator,
		"creatorAddress":     creator,
		"network":            cfg.Network,
	}, &campaign)
	if err != nil {
		return nil, fmt.Errorf("failed to create campaign: %w", err)
	}
	if status != http.StatusCreated {
		return nil, fmt.Errorf("failed to create campaign: unexpected status %d", status)
	}

	result := &Result{
		CampaignID: campaign.ID,
		Requested:  cfg.Donations,
		StartTime:  time.Now(),
		Latencies:  make([]time.Duration, 0, cfg.Donations),
		Errors:     make(map[string]int),
	}

	var mu sync.Mutex
	pool := pond.NewPool(cfg.Concurrency, pond.WithContext(ctx))
	for i := 0; i < cfg.Donations; i++ {
		pool.Submit(func() {
			start := time.Now()
			status, err := doJSON(ctx, client, http.MethodPost, cfg.BaseURL+"/api/donations", map[string]any{
				"campaignId":   campaign.ID,
				"donorAddress": donorAddress(i + 1),
				"amount":       cfg.Amount,
				"txHash":       fmt.Sprintf("0x%064x", i+1),
				"network":      cfg.Network,
			}, nil)
			latency := time.Since(start)

			mu.Lock()
			defer mu.Unlock()
			result.Latencies = append(result.Latencies, latency)
			switch {
			case err != nil:
				result.Failed++
				result.Errors[err.Error()]++
				if cfg.Debug {
					fmt.Printf("donation %d failed: %v\n", i, err)
				}
			case status != http.StatusCreated:
				result.Failed++
				result.Errors[fmt.Sprintf("status %d", status)]++
			default:
				result.Succeeded++
				result.ExpectedRaised += cfg.Amount
			}
		})
	}
	pool.StopAndWait()
	result.Duration = time.Since(result.StartTime)

	// Donations never submitted because the run was cancelled count as failed
	if skipped := result.Requested - result.Succeeded - result.Failed; skipped > 0 {
		result.Failed += skipped
		result.Errors["cancelled"] += skipped
	}

	var observed campaignResponse
	status, err = doJSON(context.WithoutCancel(ctx), client, http.MethodGet, cfg.BaseURL+"/api/campaigns/"+campaign.ID, nil, &observed)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch campaign: %w", err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch campaign: unexpected status %d", status)
	}
	result.ObservedRaised = observed.Raised
	result.ObservedCount = len(observed.Donations)

	return result, nil
}

// doJSON sends body as JSON and decodes a 2xx response into out when out is not nil
func doJSON(ctx context.Context, client *http.Client, method, url string, body any, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return 0, err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if out != nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("failed to decode response: %w", err)
		}
	} else {
		_, _ = io.Copy(io.Discard, resp.Body)
	}

	return resp.StatusCode, nil
}

// donorAddress derives a distinct wallet address for every worker request
func donorAddress(i int) string {
	return fmt.Sprintf("0x%040x", i)
}

func printResult(result *Result) {
	fmt.Println(strings.Repeat("-", 80))
	fmt.Printf("Campaign:        %s\n", result.CampaignID)
	fmt.Printf("Start Time:      %s\n", result.StartTime.Format("2006-01-02 15:04:05"))
	fmt.Printf("Duration:        %s\n", formatDuration(result.Duration))
	fmt.Printf("Throughput:      %s\n", formatRate(result.Succeeded, result.Duration))
	fmt.Println()

	fmt.Printf("Donations:\n")
	fmt.Printf("  Requested:     %d\n", result.Requested)
	fmt.Printf("  Succeeded:     %d (%s)\n", result.Succeeded, percentageString(result.Succeeded, result.Requested))
	if result.Failed > 0 {
		fmt.Printf("  Failed:        %d (%s)\n", result.Failed, percentageString(result.Failed, result.Requested))
		for reason, count := range result.Errors {
			fmt.Printf("    %s: %d\n", reason, count)
		}
	}
	fmt.Println()

	fmt.Printf("Latency:\n")
	fmt.Printf("  p50:           %s\n", formatDuration(percentile(result.Latencies, 50)))
	fmt.Printf("  p95:           %s\n", formatDuration(percentile(result.Latencies, 95)))
	fmt.Printf("  p99:           %s\n", formatDuration(percentile(result.Latencies, 99)))
	fmt.Println()

	consistencyFailures := 0
	if !result.Consistent() {
		consistencyFailures = 1
	}
	fmt.Printf("%s Consistency:\n", statusEmoji(1, consistencyFailures))
	fmt.Printf("  Expected raised: %.6f (%d donations)\n", result.ExpectedRaised, result.Succeeded)
	fmt.Printf("  Observed raised: %.6f (%d donations)\n", result.ObservedRaised, result.ObservedCount)
	fmt.Println(strings.Repeat("-", 80))
}

// printComparison prints the previous run next to the current one
func printComparison(previous *RunRecord, result *Result) {
	fmt.Printf("\nPrevious run (%s, campaign %s):\n", previous.FinishedAt.Format("2006-01-02 15:04:05"), previous.CampaignID)
	fmt.Printf("  Succeeded:     %d -> %d\n", previous.Succeeded, result.Succeeded)
	fmt.Printf("  Throughput:    %.2f/s -> %s\n", previous.Throughput, formatRate(result.Succeeded, result.Duration))
	fmt.Printf("  p95:           %s -> %s\n", previous.P95, formatDuration(percentile(result.Latencies, 95)))
	if !previous.Consistent {
		fmt.Printf("  ⚠️  previous run was inconsistent\n")
	}
}

// writeMarkdownReport writes a markdown report of the benchmark result
func writeMarkdownReport(filepath string, result *Result) error {
	file, err := os.Create(filepath)
	if err != nil {
		return err
	}
	defer func() {
		_ = file.Close()
	}()

	_, _ = fmt.Fprintf(file, "# Donation Benchmark Report\n\n")
	_, _ = fmt.Fprintf(file, "Generated: %s\n\n", time.Now().Format("2006-01-02 15:04:05"))

	_, _ = fmt.Fprintf(file, "## Run\n\n")
	_, _ = fmt.Fprintf(file, "| Property | Value |\n")
	_, _ = fmt.Fprintf(file, "|----------|-------|\n")
	_, _ = fmt.Fprintf(file, "| **Campaign** | `%s` |\n", result.CampaignID)
	_, _ = fmt.Fprintf(file, "| **Start Time** | %s |\n", result.StartTime.Format("2006-01-02 15:04:05"))
	_, _ = fmt.Fprintf(file, "| **Duration** | %s |\n", formatDuration(result.Duration))
	_, _ = fmt.Fprintf(file, "| **Throughput** | %s |\n", formatRate(result.Succeeded, result.Duration))
	_, _ = fmt.Fprintf(file, "\n")

	_, _ = fmt.Fprintf(file, "## Donations\n\n")
	_, _ = fmt.Fprintf(file, "| Metric | Count |\n")
	_, _ = fmt.Fprintf(file, "|--------|-------|\n")
	_, _ = fmt.Fprintf(file, "| **Requested** | %d |\n", result.Requested)
	_, _ = fmt.Fprintf(file, "| **Succeeded** | %d (%s) |\n", result.Succeeded, percentageString(result.Succeeded, result.Requested))
	if result.Failed > 0 {
		_, _ = fmt.Fprintf(file, "| **Failed** | %d (%s) |\n", result.Failed, percentageString(result.Failed, result.Requested))
	}
	_, _ = fmt.Fprintf(file, "| **p50** | %s |\n", formatDuration(percentile(result.Latencies, 50)))
	_, _ = fmt.Fprintf(file, "| **p95** | %s |\n", formatDuration(percentile(result.Latencies, 95)))
	_, _ = fmt.Fprintf(file, "| **p99** | %s |\n", formatDuration(percentile(result.Latencies, 99)))
	_, _ = fmt.Fprintf(file, "\n")

	_, _ = fmt.Fprintf(file, "## Consistency\n\n")
	if result.Consistent() {
		_, _ = fmt.Fprintf(file, "✅ Raised total matches the accepted donations: %.6f\n", result.ObservedRaised)
	} else {
		_, _ = fmt.Fprintf(file, "❌ Raised total %.6f (%d donations) does not match expected %.6f (%d donations)\n",
			result.ObservedRaised, result.ObservedCount, result.ExpectedRaised, result.Succeeded)
	}

	return nil
}
