// Package cli implements the cobra command surface of cvmatch.
//
// Commands talk to the core exclusively through the driving ports;
// wiring of the concrete services happens once in initServices.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/custodia-labs/cvmatch/internal/adapters/driven/ai/gemini"
	configfile "github.com/custodia-labs/cvmatch/internal/adapters/driven/config/file"
	"github.com/custodia-labs/cvmatch/internal/adapters/driven/extract"
	storagefile "github.com/custodia-labs/cvmatch/internal/adapters/driven/storage/file"
	"github.com/custodia-labs/cvmatch/internal/core/ports/driving"
	"github.com/custodia-labs/cvmatch/internal/core/services"
	"github.com/custodia-labs/cvmatch/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services consumed by the commands. Populated by initServices; tests
// inject their own implementations directly.
var (
	ingestService driving.IngestService
	resumeService driving.ResumeService
	jobService    driving.JobService
	matchService  driving.MatchService

	appConfig *configfile.Config
	log       *zap.Logger
)

var debugFlag bool

var rootCmd = &cobra.Command{
	Use:   "cvmatch",
	Short: "CV ingestion and job matching from the terminal",
	Long: `cvmatch ingests candidate documents (PDF, DOCX, plain text),
extracts a structured professional record, and ranks stored resumes
against job postings.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return initServices(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// initServices builds the service graph from configuration. It is a
// no-op when services are already present (tests inject their own).
func initServices(ctx context.Context) error {
	if resumeService != nil {
		return nil
	}

	cfg, err := configfile.Load("")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	appConfig = cfg

	log, err = logger.New(cfg.LogJSON, debugFlag)
	if err != nil {
		return fmt.Errorf("initialising logger: %w", err)
	}

	resumes := storagefile.NewResumeStore(cfg.DataDir)
	jobs := storagefile.NewJobStore(cfg.DataDir)

	resumeService = services.NewResumeService(resumes)
	jobService = services.NewJobService(jobs)
	matchService = services.NewMatchService(resumes)

	// AI extraction is optional: without a key, ingestion is unavailable
	// but every other command still works.
	if cfg.GeminiAPIKey != "" {
		extractor, err := gemini.NewExtractor(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, log)
		if err != nil {
			return fmt.Errorf("initialising extractor: %w", err)
		}
		ingestService = services.NewIngestService(extract.New(), extractor, resumes, log)
	}

	return nil
}
