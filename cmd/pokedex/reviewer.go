// Reviewer commands manage review authors.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pokedex/pkg/types"
)

var (
	reviewerFirstName string
	reviewerLastName  string
)

var reviewerCmd = &cobra.Command{
	Use:   "reviewer",
	Short: "Manage reviewers",
}

var reviewerAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new reviewer",
	Long: `Add creates a new reviewer.

Example:
  pokedex reviewer add --first Misty --last Waterflower`,
	RunE: runReviewerAdd,
}

var reviewerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all reviewers",
	RunE:  runReviewerList,
}

var reviewerGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a reviewer and their reviews",
	Args:  cobra.ExactArgs(1),
	RunE:  runReviewerGet,
}

var reviewerDeleteCmd = &cobra.Command{
	Use:   "delete <id>...",
	Short: "Delete one or more reviewers and their reviews",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runReviewerDelete,
}

func init() {
	reviewerAddCmd.Flags().StringVar(&reviewerFirstName, "first", "", "first name (required)")
	reviewerAddCmd.Flags().StringVar(&reviewerLastName, "last", "", "last name (required)")
	_ = reviewerAddCmd.MarkFlagRequired("first")
	_ = reviewerAddCmd.MarkFlagRequired("last")

	reviewerCmd.AddCommand(reviewerAddCmd)
	reviewerCmd.AddCommand(reviewerListCmd)
	reviewerCmd.AddCommand(reviewerGetCmd)
	reviewerCmd.AddCommand(reviewerDeleteCmd)
}

func runReviewerAdd(cmd *cobra.Command, args []string) error {
	repo, err := catalog.Reviewers()
	if err != nil {
		return err
	}

	reviewer := &types.Reviewer{FirstName: reviewerFirstName, LastName: reviewerLastName}
	if err := repo.Create(reviewer); err != nil {
		return fmt.Errorf("create reviewer: %w", err)
	}

	if flagJSON {
		return printJSON(reviewer)
	}
	fmt.Printf("Created reviewer %d: %s %s\n", reviewer.ID, reviewer.FirstName, reviewer.LastName)
	return nil
}

func runReviewerList(cmd *cobra.Command, args []string) error {
	repo, err := catalog.Reviewers()
	if err != nil {
		return err
	}

	reviewers, err := repo.List()
	if err != nil {
		return fmt.Errorf("list reviewers: %w", err)
	}

	if flagJSON {
		return printJSON(reviewers)
	}
	if len(reviewers) == 0 {
		fmt.Println("No reviewers found.")
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFIRST\tLAST")
	for _, r := range reviewers {
		fmt.Fprintf(w, "%d\t%s\t%s\n", r.ID, r.FirstName, r.LastName)
	}
	w.Flush()
	fmt.Printf("Total: %d reviewer(s)\n", len(reviewers))
	return nil
}

func runReviewerGet(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	repo, err := catalog.Reviewers()
	if err != nil {
		return err
	}

	reviewer, err := repo.Get(id)
	if err != nil {
		return fmt.Errorf("get reviewer %d: %w", id, err)
	}
	reviews, err := repo.ReviewsOf(id)
	if err != nil {
		return fmt.Errorf("list reviews of reviewer %d: %w", id, err)
	}

	if flagJSON {
		return printJSON(struct {
			Reviewer *types.Reviewer `json:"reviewer"`
			Reviews  []types.Review  `json:"reviews"`
		}{reviewer, reviews})
	}
	fmt.Printf("Reviewer %d: %s %s\n", reviewer.ID, reviewer.FirstName, reviewer.LastName)
	for _, rv := range reviews {
		fmt.Printf("  %d  %s (rating %d)\n", rv.ID, rv.Title, rv.Rating)
	}
	return nil
}

func runReviewerDelete(cmd *cobra.Command, args []string) error {
	ids, err := parseIDs(args)
	if err != nil {
		return err
	}
	repo, err := catalog.Reviewers()
	if err != nil {
		return err
	}

	if len(ids) == 1 {
		if err := repo.Delete(ids[0]); err != nil {
			return fmt.Errorf("delete reviewer %d: %w", ids[0], err)
		}
	} else if err := repo.DeleteMany(ids); err != nil {
		return fmt.Errorf("delete reviewers: %w", err)
	}
	fmt.Printf("Deleted %d reviewer(s)\n", len(ids))
	return nil
}
