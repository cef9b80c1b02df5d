package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/LBNL-ETA/opticalc/internal/convert"
	"github.com/LBNL-ETA/opticalc/internal/engineclient"
	"github.com/LBNL-ETA/opticalc/internal/product"
	"github.com/LBNL-ETA/opticalc/internal/standards"
	"github.com/LBNL-ETA/opticalc/internal/summary"
	"github.com/LBNL-ETA/opticalc/internal/summarystore"
	"github.com/LBNL-ETA/opticalc/internal/telemetry"
)

func main() {
	engineURL := flag.String("engine-url", envOr("OPTICALC_ENGINE_URL", "http://localhost:8080"), "Base URL of the spectral calculation engine")
	standardsPath := flag.String("standards", envOr("OPTICALC_STANDARDS", ""), "Standard definition file or directory (default: embedded NFRC 2003)")
	standardName := flag.String("standard-name", envOr("OPTICALC_STANDARD", "NFRC"), "Calculation standard to evaluate against")
	modeName := flag.String("mode", envOr("OPTICALC_WAVELENGTH_MODE", string(convert.SpecularOnly)), "Wavelength combination mode: SPECULAR_ONLY, DIFFUSE_AS_SPECULAR, COMBINE_SPECULAR_AND_DIFFUSE")
	nullToZero := flag.Bool("null-to-zero", false, "Coerce null/empty measurement sub-values to zero")
	dbPath := flag.String("db", envOr("OPTICALC_DB", ""), "Optional sqlite path for persisting summaries (also feeds emissivity/TIR resolution)")
	outDir := flag.String("out", ".", "Directory for summary JSON output")
	concurrency := flag.Int("concurrency", envInt("OPTICALC_CONCURRENCY", 4), "Products evaluated in parallel")
	verbose := flag.Bool("verbose", false, "Debug logging")
	otlpEndpoint := flag.String("otlp-endpoint", envOr("OTEL_EXPORTER_OTLP_ENDPOINT", ""), "OTLP trace endpoint (empty disables tracing)")
	flag.Parse()

	files := flag.Args()
	if len(files) == 0 {
		log.Fatal("usage: spectral-summary [flags] product.json [product.json ...]")
	}

	mode, err := convert.ParseWavelengthMode(*modeName)
	if err != nil {
		log.Fatal(err)
	}

	logger := newLogger(*verbose)
	defer logger.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	shutdownTracing, err := telemetry.Setup(ctx, "spectral-summary", *otlpEndpoint)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("trace shutdown failed", zap.Error(err))
		}
	}()

	std, err := loadStandard(*standardsPath, *standardName)
	if err != nil {
		log.Fatal(err)
	}

	var store *summarystore.Store
	if *dbPath != "" {
		store, err = summarystore.Open(*dbPath)
		if err != nil {
			log.Fatal(err)
		}
		defer store.Close()
	}

	opts := []summary.Option{
		summary.WithLogger(logger),
		summary.WithWavelengthMode(mode),
	}
	if *nullToZero {
		opts = append(opts, summary.WithNullToZero())
	}
	orch := summary.New(engineclient.New(*engineURL), opts...)

	logger.Info("evaluating products",
		zap.Int("count", len(files)),
		zap.String("standard", std.Name()),
		zap.String("engine_url", *engineURL))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(*concurrency)
	for _, file := range files {
		file := file
		g.Go(func() error {
			if err := evaluateOne(gctx, orch, std, store, logger, file, *outDir); err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error("evaluation failed", zap.Error(err), zap.String("pass", summary.PassNameFromError(err)))
		os.Exit(1)
	}
	logger.Info("all products evaluated", zap.Int("count", len(files)))
}

func evaluateOne(ctx context.Context, orch *summary.Orchestrator, std *standards.Definition, store *summarystore.Store, logger *zap.Logger, file, outDir string) error {
	blob, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	var p product.Product
	if err := json.Unmarshal(blob, &p); err != nil {
		return fmt.Errorf("decode product: %w", err)
	}
	if err := p.Validate(); err != nil {
		return err
	}

	key := productKey(&p, file)
	if store != nil {
		prior, err := store.ListByProduct(key)
		if err != nil {
			return err
		}
		if len(prior) > 0 {
			p.IntegratedSpectralAveragesSummaries = prior
		}
	}

	result, err := orch.Generate(ctx, &p, std)
	if err != nil {
		return err
	}

	if store != nil {
		if err := store.Save(key, result); err != nil {
			return err
		}
	}

	outPath := filepath.Join(outDir, summaryFileName(file))
	doc, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(outPath, doc, 0o644); err != nil {
		return err
	}

	logger.Info("summary generated",
		zap.String("product", file),
		zap.String("product_key", key),
		zap.String("standard", std.Name()),
		zap.String("output", outPath))
	return nil
}

// productKey picks a stable identity for persistence: the IGSDB token when
// present, then the declared data file name, then the input file name.
func productKey(p *product.Product, file string) string {
	if p.Token != "" {
		return p.Token
	}
	if p.DataFileName != "" {
		return p.DataFileName
	}
	return filepath.Base(file)
}

func summaryFileName(file string) string {
	base := filepath.Base(file)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".summary.json"
}

func loadStandard(path, name string) (*standards.Definition, error) {
	if path == "" {
		def := standards.NFRC2003()
		if !strings.EqualFold(name, def.Name()) {
			return nil, fmt.Errorf("embedded default only provides %s; pass -standards for %s", def.Name(), name)
		}
		return def, nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		defs, err := standards.LoadDir(path)
		if err != nil {
			return nil, err
		}
		return standards.FindByName(defs, name)
	}
	def, err := standards.Load(path)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(def.Name(), name) {
		return nil, fmt.Errorf("standard file %s defines %s, not %s", path, def.Name(), name)
	}
	return def, nil
}

func newLogger(verbose bool) *zap.Logger {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		log.Fatalf("initialize logger: %v", err)
	}
	return logger
}

func envOr(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func envInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
