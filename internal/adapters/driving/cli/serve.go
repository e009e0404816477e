package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/custodia-labs/cvmatch/internal/adapters/driving/httpapi"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Serves the upload, resumes, jobs, and match endpoints over HTTP.
Blocks until interrupted.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "port to listen on (defaults to config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if resumeService == nil || jobService == nil || matchService == nil {
		return errors.New("services not configured")
	}

	port := servePort
	if port == 0 && appConfig != nil {
		port = appConfig.HTTPPort
	}
	if port == 0 {
		return errors.New("no port configured")
	}

	server := httpapi.New(ingestService, resumeService, jobService, matchService, log)

	if log != nil {
		log.Info("http server starting", zap.Int("port", port))
	}
	cmd.Printf("Listening on :%d\n", port)

	if err := server.Listen(port); err != nil {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}
