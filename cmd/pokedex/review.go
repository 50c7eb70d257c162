// Review commands manage pokemon reviews.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pokedex/pkg/types"
)

var (
	reviewTitle      string
	reviewText       string
	reviewRating     int
	reviewPokemonID  int64
	reviewReviewerID int64
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Manage reviews",
}

var reviewAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new review",
	Long: `Add creates a new review of an existing pokemon by an existing reviewer.

Example:
  pokedex review add --title "Shockingly good" --text "Would catch again." \
    --rating 5 --pokemon 1 --reviewer 2`,
	RunE: runReviewAdd,
}

var reviewListCmd = &cobra.Command{
	Use:   "list",
	Short: "List reviews",
	Long: `List fetches reviews. Use --pokemon to restrict to one pokemon.

Example:
  pokedex review list
  pokedex review list --pokemon 1`,
	RunE: runReviewList,
}

var reviewGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a review",
	Args:  cobra.ExactArgs(1),
	RunE:  runReviewGet,
}

var reviewDeleteCmd = &cobra.Command{
	Use:   "delete <id>...",
	Short: "Delete one or more reviews",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runReviewDelete,
}

var reviewListPokemonID int64

func init() {
	reviewAddCmd.Flags().StringVar(&reviewTitle, "title", "", "review title (required)")
	reviewAddCmd.Flags().StringVar(&reviewText, "text", "", "review body")
	reviewAddCmd.Flags().IntVar(&reviewRating, "rating", 0, "rating value")
	reviewAddCmd.Flags().Int64Var(&reviewPokemonID, "pokemon", 0, "pokemon id (required)")
	reviewAddCmd.Flags().Int64Var(&reviewReviewerID, "reviewer", 0, "reviewer id (required)")
	_ = reviewAddCmd.MarkFlagRequired("title")
	_ = reviewAddCmd.MarkFlagRequired("pokemon")
	_ = reviewAddCmd.MarkFlagRequired("reviewer")

	reviewListCmd.Flags().Int64Var(&reviewListPokemonID, "pokemon", 0, "restrict to one pokemon")

	reviewCmd.AddCommand(reviewAddCmd)
	reviewCmd.AddCommand(reviewListCmd)
	reviewCmd.AddCommand(reviewGetCmd)
	reviewCmd.AddCommand(reviewDeleteCmd)
}

func runReviewAdd(cmd *cobra.Command, args []string) error {
	repo, err := catalog.Reviews()
	if err != nil {
		return err
	}

	review := &types.Review{Title: reviewTitle, Text: reviewText, Rating: reviewRating}
	if err := repo.Create(review, reviewPokemonID, reviewReviewerID); err != nil {
		return fmt.Errorf("create review: %w", err)
	}

	if flagJSON {
		return printJSON(review)
	}
	fmt.Printf("Created review %d: %s\n", review.ID, review.Title)
	return nil
}

func runReviewList(cmd *cobra.Command, args []string) error {
	repo, err := catalog.Reviews()
	if err != nil {
		return err
	}

	var reviews []types.Review
	if reviewListPokemonID > 0 {
		reviews, err = repo.OfPokemon(reviewListPokemonID)
	} else {
		reviews, err = repo.List()
	}
	if err != nil {
		return fmt.Errorf("list reviews: %w", err)
	}

	if flagJSON {
		return printJSON(reviews)
	}
	if len(reviews) == 0 {
		fmt.Println("No reviews found.")
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tRATING\tPOKEMON\tREVIEWER")
	for _, rv := range reviews {
		title := rv.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\n", rv.ID, title, rv.Rating, rv.PokemonID, rv.ReviewerID)
	}
	w.Flush()
	fmt.Printf("Total: %d review(s)\n", len(reviews))
	return nil
}

func runReviewGet(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	repo, err := catalog.Reviews()
	if err != nil {
		return err
	}

	review, err := repo.Get(id)
	if err != nil {
		return fmt.Errorf("get review %d: %w", id, err)
	}

	if flagJSON {
		return printJSON(review)
	}
	fmt.Printf("Review %d: %s (rating %d)\n", review.ID, review.Title, review.Rating)
	fmt.Printf("  Pokemon %d, reviewer %d\n", review.PokemonID, review.ReviewerID)
	if review.Text != "" {
		fmt.Println("  " + review.Text)
	}
	return nil
}

func runReviewDelete(cmd *cobra.Command, args []string) error {
	ids, err := parseIDs(args)
	if err != nil {
		return err
	}
	repo, err := catalog.Reviews()
	if err != nil {
		return err
	}

	if len(ids) == 1 {
		if err := repo.Delete(ids[0]); err != nil {
			return fmt.Errorf("delete review %d: %w", ids[0], err)
		}
	} else if err := repo.DeleteMany(ids); err != nil {
		return fmt.Errorf("delete reviews: %w", err)
	}
	fmt.Printf("Deleted %d review(s)\n", len(ids))
	return nil
}
