package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/cvmatch/internal/adapters/driven/extract"
	"github.com/custodia-labs/cvmatch/internal/core/domain"
)

var ingestJSON bool

var ingestCmd = &cobra.Command{
	Use:   "ingest [file]",
	Short: "Ingest a candidate document",
	Long: `Extracts text from a candidate document (PDF, DOCX, or plain text),
runs AI extraction, and stores the resulting resume.`,
	Args: cobra.ExactArgs(1),
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().BoolVar(&ingestJSON, "json", false, "output the stored resume as JSON")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	if ingestService == nil {
		return errors.New("ingestion unavailable: set GEMINI_API_KEY or gemini_api_key in config.toml")
	}

	path := args[0]
	mimeType, err := mimeTypeFor(path)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	resume, err := ingestService.IngestDocument(cmd.Context(), content, mimeType)
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	if ingestJSON {
		return printJSON(cmd, resume)
	}

	cmd.Printf("Stored resume %s\n", resume.ResumeID)
	cmd.Printf("  Candidate:  %s\n", resume.JSONData.Name)
	cmd.Printf("  Confidence: %.2f\n", resume.OverallConfidence)
	cmd.Printf("  Status:     %s\n", resume.Status)
	if resume.Status == domain.StatusNeedsReview {
		cmd.Println("  Extraction confidence is low; review the record before use.")
	}
	return nil
}

// mimeTypeFor maps a file extension to a supported document MIME type.
func mimeTypeFor(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return extract.MIMEPDF, nil
	case ".docx":
		return extract.MIMEDocx, nil
	case ".txt", ".text", ".md":
		return extract.MIMEPlainText, nil
	default:
		return "", fmt.Errorf("%w: unrecognised extension on %s", domain.ErrUnsupportedType, path)
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
