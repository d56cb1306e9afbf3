package presentation

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/zjrosen/recipebook/internal/domain"
)

// Formatter handles output formatting for the non-interactive commands
type Formatter struct {
	writer   io.Writer
	renderer *lipgloss.Renderer
}

// NewFormatter creates a new formatter. Styles are resolved against writer,
// so output to a pipe or buffer carries no escape codes.
func NewFormatter(writer io.Writer) *Formatter {
	return &Formatter{
		writer:   writer,
		renderer: lipgloss.NewRenderer(writer),
	}
}

// FormatRecipesJSON formats recipes as an indented JSON array
func (f *Formatter) FormatRecipesJSON(recipes []*domain.Recipe) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(FromDomainRecipes(recipes))
}

// FormatRecipesText writes the plain report, or emptyMessage when there are
// no recipes.
func (f *Formatter) FormatRecipesText(recipes []*domain.Recipe, emptyMessage string) error {
	if len(recipes) == 0 {
		_, err := fmt.Fprintln(f.writer, emptyMessage)
		return err
	}
	_, err := fmt.Fprintln(f.writer, domain.FormatRecipes(recipes))
	return err
}

// tableHeaders are the column titles of FormatRecipesTable.
var tableHeaders = []string{"ID", "Title", "Time (min)", "Difficulty", "Calories", "Vegan", "Creator", "Ingredients"}

// FormatRecipesTable formats recipes as a bordered table, one row per recipe,
// or emptyMessage when there are no recipes.
func (f *Formatter) FormatRecipesTable(recipes []*domain.Recipe, emptyMessage string) error {
	if len(recipes) == 0 {
		_, err := fmt.Fprintln(f.writer, emptyMessage)
		return err
	}

	rows := make([][]string, 0, len(recipes))
	for _, r := range recipes {
		rows = append(rows, []string{
			strconv.Itoa(r.ID),
			r.Title,
			strconv.Itoa(r.CookingTime),
			r.DifficultyLevel,
			strconv.Itoa(r.Calories),
			yesNo(r.IsVegan),
			r.Creator,
			strconv.Itoa(r.NumberOfIngredients()),
		})
	}

	headerStyle := f.renderer.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := f.renderer.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(f.renderer.NewStyle()).
		Headers(tableHeaders...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	_, err := fmt.Fprintln(f.writer, t.Render())
	return err
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
