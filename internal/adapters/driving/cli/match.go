package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var matchJSON bool

var matchCmd = &cobra.Command{
	Use:   "match [job-id]",
	Short: "Rank stored resumes against a job posting",
	Long: `Scores every stored resume against the job on required skills,
preferred skills, experience relevance, and seniority proximity.
Resumes with no overlap are omitted.`,
	Args: cobra.ExactArgs(1),
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().BoolVar(&matchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	if jobService == nil || matchService == nil {
		return errors.New("match service not configured")
	}

	job, err := jobService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("loading job: %w", err)
	}

	results, err := matchService.Match(cmd.Context(), job)
	if err != nil {
		return fmt.Errorf("matching failed: %w", err)
	}

	if matchJSON {
		return printJSON(cmd, results)
	}

	if len(results) == 0 {
		cmd.Println("No matching resumes found.")
		return nil
	}

	cmd.Printf("Matches for %s (%s):\n", job.Title, job.JobID)
	cmd.Println()
	for i := range results {
		r := &results[i]
		cmd.Printf("  [%d] %s (score %d)\n", i+1, r.ResumeID, r.Score)
		for _, reason := range r.Reasons {
			cmd.Printf("      - %s\n", reason)
		}
		cmd.Println()
	}
	return nil
}
