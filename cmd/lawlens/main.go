// Command lawlens analyzes a directory of legal documents and writes one
// normalized JSON record per document.
//
// Supported inputs are HTML, PDF, DOCX, and plain text files. Each document
// runs through text extraction, remote model inference, and response
// normalization; when the inference endpoint is unreachable the record is
// built from document heuristics and flagged for review.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	lawlens "github.com/lawlens/lawlens"
	"github.com/lawlens/lawlens/analyze"
	"github.com/lawlens/lawlens/inference"
	"github.com/lawlens/lawlens/internal/config"
	"github.com/lawlens/lawlens/observer"
)

var supportedExts = map[string]bool{
	".html": true,
	".htm":  true,
	".pdf":  true,
	".docx": true,
	".doc":  true,
	".txt":  true,
}

func main() {
	configPath := flag.String("config", "", "path to TOML config (default lawlens.toml)")
	inDir := flag.String("in", "", "input directory (overrides config)")
	outDir := flag.String("out", "", "output directory (overrides config)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg := config.Load(*configPath)
	if *inDir != "" {
		cfg.Batch.InputDir = *inDir
	}
	if *outDir != "" {
		cfg.Batch.OutputDir = *outDir
	}
	if cfg.Inference.Endpoint == "" {
		logger.Warn("no inference endpoint configured, all records will be built from heuristics")
	}

	ctx := context.Background()

	var client analyze.Client = inference.NewClient(inference.Config{
		Endpoint:     cfg.Inference.Endpoint,
		Token:        cfg.Inference.Token,
		MaxNewTokens: cfg.Inference.MaxNewTokens,
		Temperature:  cfg.Inference.Temperature,
		TopP:         cfg.Inference.TopP,
		Logger:       logger,
	})

	var analyzer observer.DocumentAnalyzer
	if cfg.Observer.Enabled {
		inst, shutdown, err := observer.Init(ctx)
		if err != nil {
			logger.Error("observer init failed", "error", err)
			os.Exit(1)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := shutdown(shutdownCtx); err != nil {
				logger.Warn("observer shutdown", "error", err)
			}
		}()
		client = observer.WrapClient(client, cfg.Inference.Endpoint, inst)
		analyzer = observer.WrapAnalyzer(newAnalyzer(client, cfg, logger), inst)
	} else {
		analyzer = newAnalyzer(client, cfg, logger)
	}

	if err := run(ctx, analyzer, cfg.Batch.InputDir, cfg.Batch.OutputDir, logger); err != nil {
		logger.Error("batch run failed", "error", err)
		os.Exit(1)
	}
}

func newAnalyzer(client analyze.Client, cfg config.Config, logger *slog.Logger) *analyze.Analyzer {
	return analyze.NewAnalyzer(client,
		analyze.WithTimeout(time.Duration(cfg.Inference.TimeoutSecs)*time.Second),
		analyze.WithLogger(logger),
	)
}

func run(ctx context.Context, analyzer observer.DocumentAnalyzer, inDir, outDir string, logger *slog.Logger) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	entries, err := os.ReadDir(inDir)
	if err != nil {
		return fmt.Errorf("read input dir: %w", err)
	}

	var ok, degraded, fallback, failed, skipped int
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if !supportedExts[ext] {
			skipped++
			continue
		}

		content, err := os.ReadFile(filepath.Join(inDir, name))
		if err != nil {
			logger.Error("read file", "filename", name, "error", err)
			failed++
			continue
		}

		contentType := mime.TypeByExtension(ext)
		res, err := analyzer.Analyze(ctx, content, contentType, name)
		if err != nil {
			logger.Error("analyze", "filename", name, "error", err)
			failed++
			continue
		}

		if err := writeRecord(outDir, name, res); err != nil {
			logger.Error("write record", "filename", name, "error", err)
			failed++
			continue
		}

		switch res.Record.Status {
		case lawlens.StatusPendingAnalysis:
			degraded++
		case lawlens.StatusPendingReview:
			fallback++
		default:
			ok++
		}
	}

	fmt.Printf("analyzed %d documents: %d ok, %d degraded, %d fallback, %d failed, %d skipped\n",
		ok+degraded+fallback, ok, degraded, fallback, failed, skipped)
	return nil
}

func writeRecord(outDir, filename string, res analyze.Result) error {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	out := filepath.Join(outDir, base+".json")

	data, err := json.MarshalIndent(res.Record, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(out, append(data, '\n'), 0o644)
}
