package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/cvmatch/internal/core/domain"
)

var (
	resumeListLimit  int
	resumeListOffset int
	resumeListSearch string
	resumeListSkills string
	resumeListJSON   bool
)

var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Manage stored resumes",
	Long:  `List or delete resumes stored by previous ingestions.`,
}

var resumeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored resumes",
	Args:  cobra.NoArgs,
	RunE:  runResumeList,
}

var resumeDeleteCmd = &cobra.Command{
	Use:   "delete [resume-id]",
	Short: "Delete a resume",
	Args:  cobra.ExactArgs(1),
	RunE:  runResumeDelete,
}

func init() {
	resumeListCmd.Flags().IntVarP(&resumeListLimit, "limit", "n", 10, "maximum number of results")
	resumeListCmd.Flags().IntVar(&resumeListOffset, "offset", 0, "number of results to skip")
	resumeListCmd.Flags().StringVar(&resumeListSearch, "search", "", "match against name, email, or skills")
	resumeListCmd.Flags().StringVar(&resumeListSkills, "skills", "", "comma-separated skill filter")
	resumeListCmd.Flags().BoolVar(&resumeListJSON, "json", false, "output results as JSON")

	resumeCmd.AddCommand(resumeListCmd)
	resumeCmd.AddCommand(resumeDeleteCmd)
	rootCmd.AddCommand(resumeCmd)
}

func runResumeList(cmd *cobra.Command, _ []string) error {
	if resumeService == nil {
		return errors.New("resume service not configured")
	}

	page, err := resumeService.List(cmd.Context(), domain.ResumeQuery{
		Limit:  resumeListLimit,
		Offset: resumeListOffset,
		Search: resumeListSearch,
		Skills: resumeListSkills,
	})
	if err != nil {
		return fmt.Errorf("listing resumes: %w", err)
	}

	if resumeListJSON {
		return printJSON(cmd, page)
	}

	if len(page.Resumes) == 0 {
		cmd.Println("No resumes found.")
		return nil
	}

	cmd.Printf("Resumes (%d of %d):\n", len(page.Resumes), page.Total)
	cmd.Println()
	for i := range page.Resumes {
		r := &page.Resumes[i]
		cmd.Printf("  %s\n", r.ResumeID)
		cmd.Printf("      Name:       %s\n", r.JSONData.Name)
		cmd.Printf("      Confidence: %.2f (%s)\n", r.OverallConfidence, r.Status)
		if len(r.Professional.Skills) > 0 {
			cmd.Printf("      Skills:     %s\n", joinCapped(r.Professional.Skills, 8))
		}
		cmd.Println()
	}
	if page.HasMore {
		cmd.Printf("More results available; use --offset %d\n", resumeListOffset+resumeListLimit)
	}
	return nil
}

func runResumeDelete(cmd *cobra.Command, args []string) error {
	if resumeService == nil {
		return errors.New("resume service not configured")
	}

	deleted, err := resumeService.Delete(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("deleting resume: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: resume %s", domain.ErrNotFound, args[0])
	}

	cmd.Printf("Deleted resume: %s\n", args[0])
	return nil
}

// joinCapped joins up to max items, appending an ellipsis for the rest.
func joinCapped(items []string, max int) string {
	if len(items) <= max {
		return strings.Join(items, ", ")
	}
	return strings.Join(items[:max], ", ") + ", …"
}
