// Package render prints catalog results for the command-line subcommands.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/depeter/movefit/internal/catalog"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF2625"))
	nameStyle   = lipgloss.NewStyle().Bold(true)
	idStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#9AA0A6")).Width(6)
	metaStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#9AA0A6")).PaddingLeft(8)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	badgeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFF2DB")).Background(lipgloss.Color("#FF2625")).Padding(0, 1)
)

// Resolution writes one page of a resolved search.
func Resolution(w io.Writer, res catalog.Resolution, page int) error {
	if res.Skipped {
		_, err := fmt.Fprintln(w, "Nothing to search for.")
		return err
	}

	var b strings.Builder
	if res.Matched {
		b.WriteString(headerStyle.Render("Body part: " + res.Category))
	} else {
		b.WriteString(headerStyle.Render(fmt.Sprintf("Exercises matching %q", res.Query)))
	}
	b.WriteString("\n")

	total := catalog.PageCount(len(res.Results))
	if page < 1 {
		page = 1
	}
	if total > 0 && page > total {
		page = total
	}
	if res.Err != nil {
		b.WriteString(errStyle.Render("Could not load exercises: "+res.Err.Error()))
		b.WriteString("\n")
	}
	switch {
	case len(res.Results) == 0:
		b.WriteString("No exercises found.\n")
	case catalog.Paginated(len(res.Results)):
		fmt.Fprintf(&b, "%d exercises, page %d of %d\n", len(res.Results), page, total)
	default:
		fmt.Fprintf(&b, "%d exercises\n", len(res.Results))
	}

	for _, ex := range catalog.Page(res.Results, page) {
		b.WriteString("\n")
		b.WriteString(idStyle.Render(ex.ID))
		b.WriteString(nameStyle.Render(ex.Name))
		b.WriteString("\n")
		b.WriteString(metaStyle.Render(strings.Join(nonEmpty(ex.BodyPart, ex.Target, ex.Equipment), " · ")))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// BodyParts writes the category list, wildcard first.
func BodyParts(w io.Writer, categories []string) {
	fmt.Fprintln(w, headerStyle.Render("Body parts"))
	for _, c := range categories {
		if catalog.IsWildcard(c) {
			fmt.Fprintln(w, badgeStyle.Render(c))
			continue
		}
		fmt.Fprintln(w, "  "+c)
	}
}

func nonEmpty(vals ...string) []string {
	out := vals[:0]
	for _, v := range vals {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
