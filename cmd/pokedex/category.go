// Category commands manage pokemon categories.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pokedex/pkg/types"
)

var categoryName string

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage categories",
}

var categoryAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new category",
	Long: `Add creates a new category with the specified name.

Example:
  pokedex category add --name Electric
  pokedex category add --name Water --json`,
	RunE: runCategoryAdd,
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all categories",
	RunE:  runCategoryList,
}

var categoryGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a category and its pokemon",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoryGet,
}

var categoryDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a category",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoryDelete,
}

func init() {
	categoryAddCmd.Flags().StringVar(&categoryName, "name", "", "name for the category (required)")
	_ = categoryAddCmd.MarkFlagRequired("name")

	categoryCmd.AddCommand(categoryAddCmd)
	categoryCmd.AddCommand(categoryListCmd)
	categoryCmd.AddCommand(categoryGetCmd)
	categoryCmd.AddCommand(categoryDeleteCmd)
}

func runCategoryAdd(cmd *cobra.Command, args []string) error {
	repo, err := catalog.Categories()
	if err != nil {
		return err
	}

	category := &types.Category{Name: categoryName}
	if err := repo.Create(category); err != nil {
		return fmt.Errorf("create category: %w", err)
	}

	if flagJSON {
		return printJSON(category)
	}
	fmt.Printf("Created category %d: %s\n", category.ID, category.Name)
	return nil
}

func runCategoryList(cmd *cobra.Command, args []string) error {
	repo, err := catalog.Categories()
	if err != nil {
		return err
	}

	categories, err := repo.List()
	if err != nil {
		return fmt.Errorf("list categories: %w", err)
	}

	if flagJSON {
		return printJSON(categories)
	}
	printCategoryTable(categories)
	return nil
}

func runCategoryGet(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	repo, err := catalog.Categories()
	if err != nil {
		return err
	}

	category, err := repo.Get(id)
	if err != nil {
		return fmt.Errorf("get category %d: %w", id, err)
	}
	pokemon, err := repo.PokemonByCategory(id)
	if err != nil {
		return fmt.Errorf("list pokemon of category %d: %w", id, err)
	}

	if flagJSON {
		return printJSON(struct {
			Category *types.Category `json:"category"`
			Pokemon  []types.Pokemon `json:"pokemon"`
		}{category, pokemon})
	}
	fmt.Printf("Category %d: %s\n", category.ID, category.Name)
	for _, p := range pokemon {
		fmt.Printf("  %d  %s\n", p.ID, p.Name)
	}
	return nil
}

func runCategoryDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	repo, err := catalog.Categories()
	if err != nil {
		return err
	}
	if err := repo.Delete(id); err != nil {
		return fmt.Errorf("delete category %d: %w", id, err)
	}
	fmt.Printf("Deleted category %d\n", id)
	return nil
}

func printCategoryTable(categories []types.Category) {
	if len(categories) == 0 {
		fmt.Println("No categories found.")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME")
	for _, c := range categories {
		fmt.Fprintf(w, "%d\t%s\n", c.ID, c.Name)
	}
	w.Flush()
	fmt.Printf("Total: %d categor(ies)\n", len(categories))
}
