package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/cvmatch/internal/core/domain"
)

var jobListJSON bool

var jobCmd = &cobra.Command{
	Use:   "job",
	Short: "Manage job postings",
	Long:  `Create and list the job postings resumes are matched against.`,
}

var jobCreateCmd = &cobra.Command{
	Use:   "create [file]",
	Short: "Create a job posting from a JSON file",
	Long: `Validates a job posting payload and stores it. Pass "-" to read
the payload from standard input.`,
	Args: cobra.ExactArgs(1),
	RunE: runJobCreate,
}

var jobListCmd = &cobra.Command{
	Use:   "list",
	Short: "List job postings",
	Args:  cobra.NoArgs,
	RunE:  runJobList,
}

func init() {
	jobListCmd.Flags().BoolVar(&jobListJSON, "json", false, "output results as JSON")

	jobCmd.AddCommand(jobCreateCmd)
	jobCmd.AddCommand(jobListCmd)
	rootCmd.AddCommand(jobCmd)
}

func runJobCreate(cmd *cobra.Command, args []string) error {
	if jobService == nil {
		return errors.New("job service not configured")
	}

	var (
		data []byte
		err  error
	)
	if args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("reading job payload: %w", err)
	}

	var input domain.JobInput
	if err := json.Unmarshal(data, &input); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	job, err := jobService.Create(cmd.Context(), input)
	if err != nil {
		return fmt.Errorf("creating job: %w", err)
	}

	cmd.Printf("Created job %s (%s, %s)\n", job.JobID, job.Title, job.Seniority)
	return nil
}

func runJobList(cmd *cobra.Command, _ []string) error {
	if jobService == nil {
		return errors.New("job service not configured")
	}

	jobs, err := jobService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing jobs: %w", err)
	}

	if jobListJSON {
		return printJSON(cmd, jobs)
	}

	if len(jobs) == 0 {
		cmd.Println("No jobs found.")
		return nil
	}

	cmd.Println("Job postings:")
	cmd.Println()
	for i := range jobs {
		j := &jobs[i]
		cmd.Printf("  %s\n", j.JobID)
		cmd.Printf("      %s (%s, %s, %s)\n", j.Title, j.Seniority, j.Location, j.WorkMode)
		if len(j.MustHave) > 0 {
			cmd.Printf("      Must have: %s\n", joinCapped(j.MustHave, 8))
		}
		cmd.Println()
	}
	return nil
}
