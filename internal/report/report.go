// Package report renders hand evaluations and recommendations for
// terminal display.
package report

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/holdem-advisor/internal/advisor"
	"github.com/lox/holdem-advisor/poker"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	cardStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	classStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	actionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	ruleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

// Render formats a full advice report.
func Render(hole, board []poker.Card, eval advisor.Evaluation, rec advisor.Recommendation, sit advisor.Situation) string {
	var b strings.Builder

	rule := ruleStyle.Render(strings.Repeat("=", 60))
	thin := ruleStyle.Render(strings.Repeat("-", 60))

	fmt.Fprintln(&b, rule)

	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("Street"), strings.ToUpper(eval.StreetName))
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("Hole"), cardStyle.Render(poker.FormatCards(hole)))
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("Board"), cardStyle.Render(poker.FormatCards(board)))
	fmt.Fprintf(w, "%s\t%s | Stack: %.1f BB | Pot: %.1f BB | Players: %d\n",
		headerStyle.Render("Table"), strings.ToUpper(sit.Position), sit.StackBB, sit.PotBB, sit.Players)
	w.Flush()

	fmt.Fprintln(&b, thin)

	w = tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("Hand class"), classStyle.Render(eval.HandClass))
	fmt.Fprintf(w, "%s\t%d\n", headerStyle.Render("Score (0 best, 7461 worst)"), eval.Score)
	fmt.Fprintf(w, "%s\t%.3f\n", headerStyle.Render("Percentile (0 best, 1 worst)"), eval.Percentile)
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("Tier"), classStyle.Render(eval.TierName))
	w.Flush()

	fmt.Fprintln(&b, thin)

	w = tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("Recommendation"), labelStyle.Render(rec.Label))
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("Action"), actionStyle.Render(rec.Action))
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("Reasoning"), rec.Explanation)
	w.Flush()

	fmt.Fprintln(&b, rule)

	return b.String()
}
