// Pokemon commands manage pokemon and their rating aggregate.
package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pokedex/pkg/types"
)

var (
	pokemonName       string
	pokemonBirthDate  string
	pokemonOwnerID    int64
	pokemonCategoryID int64
)

// birthDateFlagLayout is the date format accepted by --birth-date.
const birthDateFlagLayout = "2006-01-02"

var pokemonCmd = &cobra.Command{
	Use:   "pokemon",
	Short: "Manage pokemon",
}

var pokemonAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new pokemon",
	Long: `Add creates a new pokemon linked to an existing owner and category.

Pokemon names are unique ignoring case and surrounding whitespace.

Example:
  pokedex pokemon add --name Pikachu --birth-date 1996-02-27 --owner 1 --category 2`,
	RunE: runPokemonAdd,
}

var pokemonListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all pokemon",
	RunE:  runPokemonList,
}

var pokemonGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a pokemon, its owner, and its rating",
	Args:  cobra.ExactArgs(1),
	RunE:  runPokemonGet,
}

var pokemonRatingCmd = &cobra.Command{
	Use:   "rating <id>",
	Short: "Show the mean review rating of a pokemon",
	Args:  cobra.ExactArgs(1),
	RunE:  runPokemonRating,
}

var pokemonDeleteCmd = &cobra.Command{
	Use:   "delete <id>...",
	Short: "Delete one or more pokemon and their reviews",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPokemonDelete,
}

func init() {
	pokemonAddCmd.Flags().StringVar(&pokemonName, "name", "", "name for the pokemon (required)")
	pokemonAddCmd.Flags().StringVar(&pokemonBirthDate, "birth-date", "", "birth date, YYYY-MM-DD (required)")
	pokemonAddCmd.Flags().Int64Var(&pokemonOwnerID, "owner", 0, "owner id (required)")
	pokemonAddCmd.Flags().Int64Var(&pokemonCategoryID, "category", 0, "category id (required)")
	_ = pokemonAddCmd.MarkFlagRequired("name")
	_ = pokemonAddCmd.MarkFlagRequired("birth-date")
	_ = pokemonAddCmd.MarkFlagRequired("owner")
	_ = pokemonAddCmd.MarkFlagRequired("category")

	pokemonCmd.AddCommand(pokemonAddCmd)
	pokemonCmd.AddCommand(pokemonListCmd)
	pokemonCmd.AddCommand(pokemonGetCmd)
	pokemonCmd.AddCommand(pokemonRatingCmd)
	pokemonCmd.AddCommand(pokemonDeleteCmd)
}

func runPokemonAdd(cmd *cobra.Command, args []string) error {
	repo, err := catalog.Pokemon()
	if err != nil {
		return err
	}

	birthDate, err := time.Parse(birthDateFlagLayout, pokemonBirthDate)
	if err != nil {
		return fmt.Errorf("invalid birth date %q (want YYYY-MM-DD)", pokemonBirthDate)
	}

	pokemon := &types.Pokemon{Name: pokemonName, BirthDate: birthDate}
	if err := repo.Create(pokemon, pokemonOwnerID, pokemonCategoryID); err != nil {
		return fmt.Errorf("create pokemon: %w", err)
	}

	if flagJSON {
		return printJSON(pokemon)
	}
	fmt.Printf("Created pokemon %d: %s\n", pokemon.ID, pokemon.Name)
	return nil
}

func runPokemonList(cmd *cobra.Command, args []string) error {
	repo, err := catalog.Pokemon()
	if err != nil {
		return err
	}

	pokemon, err := repo.List()
	if err != nil {
		return fmt.Errorf("list pokemon: %w", err)
	}

	if flagJSON {
		return printJSON(pokemon)
	}
	if len(pokemon) == 0 {
		fmt.Println("No pokemon found.")
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tBORN")
	for _, p := range pokemon {
		fmt.Fprintf(w, "%d\t%s\t%s\n", p.ID, p.Name, p.BirthDate.Format(birthDateFlagLayout))
	}
	w.Flush()
	fmt.Printf("Total: %d pokemon\n", len(pokemon))
	return nil
}

func runPokemonGet(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	repo, err := catalog.Pokemon()
	if err != nil {
		return err
	}
	owners, err := catalog.Owners()
	if err != nil {
		return err
	}

	pokemon, err := repo.Get(id)
	if err != nil {
		return fmt.Errorf("get pokemon %d: %w", id, err)
	}
	rating, err := repo.Rating(id)
	if err != nil {
		return fmt.Errorf("rating of pokemon %d: %w", id, err)
	}
	owner, err := owners.OfPokemon(id)
	if err != nil && !errors.Is(err, types.ErrNotFound) {
		return fmt.Errorf("owner of pokemon %d: %w", id, err)
	}

	if flagJSON {
		return printJSON(struct {
			Pokemon *types.Pokemon `json:"pokemon"`
			Owner   *types.Owner   `json:"owner,omitempty"`
			Rating  float64        `json:"rating"`
		}{pokemon, owner, rating})
	}
	fmt.Printf("Pokemon %d: %s (born %s, rating %.1f)\n",
		pokemon.ID, pokemon.Name, pokemon.BirthDate.Format(birthDateFlagLayout), rating)
	if owner != nil {
		fmt.Printf("  Owner: %d %s %s\n", owner.ID, owner.FirstName, owner.LastName)
	}
	return nil
}

func runPokemonRating(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	repo, err := catalog.Pokemon()
	if err != nil {
		return err
	}

	rating, err := repo.Rating(id)
	if err != nil {
		return fmt.Errorf("rating of pokemon %d: %w", id, err)
	}

	if flagJSON {
		return printJSON(struct {
			PokemonID int64   `json:"pokemon_id"`
			Rating    float64 `json:"rating"`
		}{id, rating})
	}
	fmt.Printf("%.1f\n", rating)
	return nil
}

func runPokemonDelete(cmd *cobra.Command, args []string) error {
	ids, err := parseIDs(args)
	if err != nil {
		return err
	}
	repo, err := catalog.Pokemon()
	if err != nil {
		return err
	}

	if len(ids) == 1 {
		if err := repo.Delete(ids[0]); err != nil {
			return fmt.Errorf("delete pokemon %d: %w", ids[0], err)
		}
	} else if err := repo.DeleteMany(ids); err != nil {
		return fmt.Errorf("delete pokemon: %w", err)
	}
	fmt.Printf("Deleted %d pokemon\n", len(ids))
	return nil
}
