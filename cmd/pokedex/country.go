// Country commands manage owner countries.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pokedex/pkg/types"
)

var countryName string

var countryCmd = &cobra.Command{
	Use:   "country",
	Short: "Manage countries",
}

var countryAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new country",
	Long: `Add creates a new country with the specified name.

Example:
  pokedex country add --name Kanto`,
	RunE: runCountryAdd,
}

var countryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all countries",
	RunE:  runCountryList,
}

var countryGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a country and its owners",
	Args:  cobra.ExactArgs(1),
	RunE:  runCountryGet,
}

var countryDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a country",
	Args:  cobra.ExactArgs(1),
	RunE:  runCountryDelete,
}

func init() {
	countryAddCmd.Flags().StringVar(&countryName, "name", "", "name for the country (required)")
	_ = countryAddCmd.MarkFlagRequired("name")

	countryCmd.AddCommand(countryAddCmd)
	countryCmd.AddCommand(countryListCmd)
	countryCmd.AddCommand(countryGetCmd)
	countryCmd.AddCommand(countryDeleteCmd)
}

func runCountryAdd(cmd *cobra.Command, args []string) error {
	repo, err := catalog.Countries()
	if err != nil {
		return err
	}

	country := &types.Country{Name: countryName}
	if err := repo.Create(country); err != nil {
		return fmt.Errorf("create country: %w", err)
	}

	if flagJSON {
		return printJSON(country)
	}
	fmt.Printf("Created country %d: %s\n", country.ID, country.Name)
	return nil
}

func runCountryList(cmd *cobra.Command, args []string) error {
	repo, err := catalog.Countries()
	if err != nil {
		return err
	}

	countries, err := repo.List()
	if err != nil {
		return fmt.Errorf("list countries: %w", err)
	}

	if flagJSON {
		return printJSON(countries)
	}
	if len(countries) == 0 {
		fmt.Println("No countries found.")
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME")
	for _, c := range countries {
		fmt.Fprintf(w, "%d\t%s\n", c.ID, c.Name)
	}
	w.Flush()
	fmt.Printf("Total: %d countr(ies)\n", len(countries))
	return nil
}

func runCountryGet(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	repo, err := catalog.Countries()
	if err != nil {
		return err
	}

	country, err := repo.Get(id)
	if err != nil {
		return fmt.Errorf("get country %d: %w", id, err)
	}
	owners, err := repo.OwnersFromCountry(id)
	if err != nil {
		return fmt.Errorf("list owners of country %d: %w", id, err)
	}

	if flagJSON {
		return printJSON(struct {
			Country *types.Country `json:"country"`
			Owners  []types.Owner  `json:"owners"`
		}{country, owners})
	}
	fmt.Printf("Country %d: %s\n", country.ID, country.Name)
	for _, o := range owners {
		fmt.Printf("  %d  %s %s\n", o.ID, o.FirstName, o.LastName)
	}
	return nil
}

func runCountryDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	repo, err := catalog.Countries()
	if err != nil {
		return err
	}
	if err := repo.Delete(id); err != nil {
		return fmt.Errorf("delete country %d: %w", id, err)
	}
	fmt.Printf("Deleted country %d\n", id)
	return nil
}
