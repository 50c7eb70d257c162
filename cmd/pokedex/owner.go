// Owner commands manage pokemon owners.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pokedex/pkg/types"
)

var (
	ownerFirstName string
	ownerLastName  string
	ownerCountryID int64
)

var ownerCmd = &cobra.Command{
	Use:   "owner",
	Short: "Manage owners",
}

var ownerAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new owner",
	Long: `Add creates a new owner residing in an existing country.

Example:
  pokedex owner add --first Ash --last Ketchum --country 1`,
	RunE: runOwnerAdd,
}

var ownerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all owners",
	RunE:  runOwnerList,
}

var ownerGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show an owner and their pokemon",
	Args:  cobra.ExactArgs(1),
	RunE:  runOwnerGet,
}

var ownerDeleteCmd = &cobra.Command{
	Use:   "delete <id>...",
	Short: "Delete one or more owners",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runOwnerDelete,
}

func init() {
	ownerAddCmd.Flags().StringVar(&ownerFirstName, "first", "", "first name (required)")
	ownerAddCmd.Flags().StringVar(&ownerLastName, "last", "", "last name (required)")
	ownerAddCmd.Flags().Int64Var(&ownerCountryID, "country", 0, "country id (required)")
	_ = ownerAddCmd.MarkFlagRequired("first")
	_ = ownerAddCmd.MarkFlagRequired("last")
	_ = ownerAddCmd.MarkFlagRequired("country")

	ownerCmd.AddCommand(ownerAddCmd)
	ownerCmd.AddCommand(ownerListCmd)
	ownerCmd.AddCommand(ownerGetCmd)
	ownerCmd.AddCommand(ownerDeleteCmd)
}

func runOwnerAdd(cmd *cobra.Command, args []string) error {
	repo, err := catalog.Owners()
	if err != nil {
		return err
	}

	owner := &types.Owner{FirstName: ownerFirstName, LastName: ownerLastName}
	if err := repo.Create(owner, ownerCountryID); err != nil {
		return fmt.Errorf("create owner: %w", err)
	}

	if flagJSON {
		return printJSON(owner)
	}
	fmt.Printf("Created owner %d: %s %s\n", owner.ID, owner.FirstName, owner.LastName)
	return nil
}

func runOwnerList(cmd *cobra.Command, args []string) error {
	repo, err := catalog.Owners()
	if err != nil {
		return err
	}

	owners, err := repo.List()
	if err != nil {
		return fmt.Errorf("list owners: %w", err)
	}

	if flagJSON {
		return printJSON(owners)
	}
	if len(owners) == 0 {
		fmt.Println("No owners found.")
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFIRST\tLAST\tCOUNTRY")
	for _, o := range owners {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", o.ID, o.FirstName, o.LastName, o.CountryID)
	}
	w.Flush()
	fmt.Printf("Total: %d owner(s)\n", len(owners))
	return nil
}

func runOwnerGet(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	repo, err := catalog.Owners()
	if err != nil {
		return err
	}

	owner, err := repo.Get(id)
	if err != nil {
		return fmt.Errorf("get owner %d: %w", id, err)
	}
	pokemon, err := repo.PokemonByOwner(id)
	if err != nil {
		return fmt.Errorf("list pokemon of owner %d: %w", id, err)
	}

	if flagJSON {
		return printJSON(struct {
			Owner   *types.Owner    `json:"owner"`
			Pokemon []types.Pokemon `json:"pokemon"`
		}{owner, pokemon})
	}
	fmt.Printf("Owner %d: %s %s (country %d)\n", owner.ID, owner.FirstName, owner.LastName, owner.CountryID)
	for _, p := range pokemon {
		fmt.Printf("  %d  %s\n", p.ID, p.Name)
	}
	return nil
}

func runOwnerDelete(cmd *cobra.Command, args []string) error {
	ids, err := parseIDs(args)
	if err != nil {
		return err
	}
	repo, err := catalog.Owners()
	if err != nil {
		return err
	}

	if len(ids) == 1 {
		if err := repo.Delete(ids[0]); err != nil {
			return fmt.Errorf("delete owner %d: %w", ids[0], err)
		}
	} else if err := repo.DeleteMany(ids); err != nil {
		return fmt.Errorf("delete owners: %w", err)
	}
	fmt.Printf("Deleted %d owner(s)\n", len(ids))
	return nil
}
