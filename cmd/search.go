package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/zjrosen/recipebook/internal/domain"
	"github.com/zjrosen/recipebook/internal/log"
	"github.com/zjrosen/recipebook/internal/presentation"
	"github.com/zjrosen/recipebook/internal/repository"
)

type searchOptions struct {
	title       string
	difficulty  string
	time        int
	maxCalories int
	ingredient  string
	json        bool
	table       bool

	// set by the RunE from cmd.Flags().Changed
	hasTitle       bool
	hasDifficulty  bool
	hasTime        bool
	hasMaxCalories bool
	hasIngredient  bool
}

var searchOpts searchOptions

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search stored recipes",
	Long: `Search the recipes saved in the configured data file.

Title, difficulty and ingredient searches match a case-insensitive substring;
an empty value matches everything.
--time matches the cooking time exactly; --max-calories matches recipes at or
below the given count.

Examples:
  recipebook search --title lasagna
  recipebook search --difficulty easy --table
  recipebook search --time 30
  recipebook search --max-calories 500 --json
  recipebook search --ingredient tomato`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		searchOpts.hasTitle = cmd.Flags().Changed("title")
		searchOpts.hasDifficulty = cmd.Flags().Changed("difficulty")
		searchOpts.hasTime = cmd.Flags().Changed("time")
		searchOpts.hasMaxCalories = cmd.Flags().Changed("max-calories")
		searchOpts.hasIngredient = cmd.Flags().Changed("ingredient")

		repo, err := loadRepository(cfg)
		if err != nil {
			return err
		}
		return runSearch(cmd.OutOrStdout(), repo, searchOpts)
	},
}

func init() {
	searchCmd.Flags().StringVar(&searchOpts.title, "title", "", "Title contains")
	searchCmd.Flags().StringVar(&searchOpts.difficulty, "difficulty", "", "Difficulty level contains")
	searchCmd.Flags().IntVar(&searchOpts.time, "time", 0, "Cooking time in minutes equals")
	searchCmd.Flags().IntVar(&searchOpts.maxCalories, "max-calories", 0, "Calories at or below")
	searchCmd.Flags().StringVar(&searchOpts.ingredient, "ingredient", "", "Ingredient name contains")
	searchCmd.Flags().BoolVar(&searchOpts.json, "json", false, "Output JSON")
	searchCmd.Flags().BoolVar(&searchOpts.table, "table", false, "Output a table")
	searchCmd.MarkFlagsOneRequired("title", "difficulty", "time", "max-calories", "ingredient")
	searchCmd.MarkFlagsMutuallyExclusive("title", "difficulty", "time", "max-calories", "ingredient")
	searchCmd.MarkFlagsMutuallyExclusive("json", "table")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(out io.Writer, repo *repository.Repository, opts searchOptions) error {
	if opts.hasIngredient {
		log.Debug(log.CatCLI, "Searching ingredients", "name", opts.ingredient)
		_, err := fmt.Fprintln(out, repo.SearchIngredientByName(opts.ingredient))
		return err
	}

	var (
		recipes []*domain.Recipe
		empty   = "No recipes found"
	)
	switch {
	case opts.hasTitle:
		recipes = repo.MatchTitle(opts.title)
	case opts.hasDifficulty:
		recipes = repo.MatchDifficultyLevel(opts.difficulty)
	case opts.hasTime:
		recipes = repo.MatchCookingTime(opts.time)
	case opts.hasMaxCalories:
		recipes = repo.MatchCalories(opts.maxCalories)
		empty = fmt.Sprintf("No recipes found with calories equal, or below %d", opts.maxCalories)
	default:
		return errors.New("one of --title, --difficulty, --time, --max-calories or --ingredient is required")
	}
	log.Debug(log.CatCLI, "Searched recipes", "matches", len(recipes))

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
