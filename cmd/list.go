package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zjrosen/recipebook/internal/domain"
	"github.com/zjrosen/recipebook/internal/log"
	"github.com/zjrosen/recipebook/internal/presentation"
	"github.com/zjrosen/recipebook/internal/repository"
)

type listOptions struct {
	vegan    bool
	nonVegan bool
	sort     string
	desc     bool
	json     bool
	table    bool
}

var listOpts listOptions

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print stored recipes",
	Long: `Print the recipes saved in the configured data file.

Examples:
  # Every recipe, in stored order
  recipebook list

  # Vegan recipes only, highest calories first
  recipebook list --vegan --sort calories --desc

  # Quickest recipes first, as a table
  recipebook list --sort time --table

  # Parse specific fields with jq
  recipebook list --json | jq '.[].title'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := loadRepository(cfg)
		if err != nil {
			return err
		}
		return runList(cmd.OutOrStdout(), repo, listOpts)
	},
}

func init() {
	listCmd.Flags().BoolVar(&listOpts.vegan, "vegan", false, "Only vegan recipes")
	listCmd.Flags().BoolVar(&listOpts.nonVegan, "non-vegan", false, "Only non-vegan recipes")
	listCmd.Flags().StringVarP(&listOpts.sort, "sort", "s", "", "Sort by calories or time")
	listCmd.Flags().BoolVar(&listOpts.desc, "desc", false, "Sort in descending order")
	listCmd.Flags().BoolVar(&listOpts.json, "json", false, "Output JSON")
	listCmd.Flags().BoolVar(&listOpts.table, "table", false, "Output a table")
	listCmd.MarkFlagsMutuallyExclusive("vegan", "non-vegan")
	listCmd.MarkFlagsMutuallyExclusive("json", "table")
	rootCmd.AddCommand(listCmd)
}

func runList(out io.Writer, repo *repository.Repository, opts listOptions) error {
	switch strings.ToLower(opts.sort) {
	case "", "calories", "time", "cooking-time", "cookingtime":
	default:
		return fmt.Errorf("unknown sort field %q (supported: calories, time)", opts.sort)
	}

	recipes := repo.SortedBy(opts.sort, opts.desc)
	empty := domain.NoRecipesMessage
	switch {
	case opts.vegan:
		recipes = filterRecipes(recipes, true)
		empty = domain.NoVeganRecipesMessage
	case opts.nonVegan:
		recipes = filterRecipes(recipes, false)
		empty = domain.NoNonVeganRecipesMessage
	}
	log.Debug(log.CatCLI, "Listing recipes", "count", len(recipes), "sort", opts.sort, "desc", opts.desc)

	formatter := presentation.NewFormatter(out)
	switch {
	case opts.json:
		return formatter.FormatRecipesJSON(recipes)
	case opts.table:
		return formatter.FormatRecipesTable(recipes, empty)
	default:
		return formatter.FormatRecipesText(recipes, empty)
	}
}

func filterRecipes(recipes []*domain.Recipe, vegan bool) []*domain.Recipe {
	result := make([]*domain.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if r.IsVegan == vegan {
			result = append(result, r)
		}
	}
	return result
}
