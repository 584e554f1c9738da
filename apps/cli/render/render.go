package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/asatex/kyuyokeisan-api/libs/go/constants"
	"github.com/asatex/kyuyokeisan-api/libs/go/types/business"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

var (
	accent  = lipgloss.Color("#2563EB") // blue
	fg      = lipgloss.Color("#E8E6E3")
	dim     = lipgloss.Color("#6B7280")
	faint   = lipgloss.Color("#3F3F46")
	success = lipgloss.Color("#22C55E")
	danger  = lipgloss.Color("#EF4444")
	warning = lipgloss.Color("#F59E0B")
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(60)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	totalStyle    = lipgloss.NewStyle().Bold(true).Foreground(success)
	errorStyle    = lipgloss.NewStyle().Bold(true).Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Bold(true).Foreground(warning)
	separatorLine = faintStyle.Render(strings.Repeat("─", 56))
)

// RenderResult renders the employee/employer split for one salary and age.
func RenderResult(salary int64, age int, bracket business.PremiumBracket, result *business.PremiumResult) string {
	var b strings.Builder

	title := headerStyle.Render("Social Insurance Premiums")
	subtitle := dimStyle.Render(fmt.Sprintf("monthly salary %s yen, age %d", formatYen(salary), age))
	gradeLine := titleStyle.Render(fmt.Sprintf("grade %d  [%s, %s)", bracket.Grade, formatYen(bracket.MinAmount), formatYen(bracket.MaxAmount)))
	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + gradeLine))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "  %s %s %s\n",
		titleStyle.Render(padRight("", 24)),
		titleStyle.Render(padLeft("Employee", 14)),
		titleStyle.Render(padLeft("Employer", 14)),
	)
	b.WriteString("  " + separatorLine + "\n")

	rows := []struct {
		label              string
		employee, employer decimal.Decimal
	}{
		{"Health (without care)", result.EmployeeCost.HealthCostWithNoCare, result.EmployerCost.HealthCostWithNoCare},
		{"Nursing care", result.EmployeeCost.CareCost, result.EmployerCost.CareCost},
		{"Pension", result.EmployeeCost.Pension, result.EmployerCost.Pension},
	}
	for _, row := range rows {
		fmt.Fprintf(&b, "  %s %s %s\n",
			padRight(row.label, 24),
			padLeft(formatMoney(row.employee), 14),
			padLeft(formatMoney(row.employer), 14),
		)
	}

	b.WriteString("  " + separatorLine + "\n")
	fmt.Fprintf(&b, "  %s %s %s\n",
		titleStyle.Render(padRight("Total", 24)),
		totalStyle.Render(padLeft(formatMoney(result.EmployeeCost.Total()), 14)),
		totalStyle.Render(padLeft(formatMoney(result.EmployerCost.Total()), 14)),
	)

	if age < constants.CareInsuranceMinAge {
		b.WriteString("\n  " + dimStyle.Render(fmt.Sprintf("Nursing care applies from age %d.", constants.CareInsuranceMinAge)) + "\n")
	}
	b.WriteString("\n")
	return b.String()
}

// RenderBrackets renders the rate table, one line per grade.
func RenderBrackets(name, effectiveFrom string, brackets []business.PremiumBracket) string {
	var b strings.Builder

	b.WriteString("  " + headerStyle.Render(name))
	if effectiveFrom != "" {
		b.WriteString("  " + dimStyle.Render("effective "+effectiveFrom))
	}
	b.WriteString("\n\n")

	if len(brackets) == 0 {
		b.WriteString("  " + errorStyle.Render("No brackets.") + "\n")
		return b.String()
	}

	fmt.Fprintf(&b, "  %s %s %s %s %s %s\n",
		titleStyle.Render(padLeft("Grade", 5)),
		titleStyle.Render(padLeft("From", 12)),
		titleStyle.Render(padLeft("To", 12)),
		titleStyle.Render(padLeft("Health", 12)),
		titleStyle.Render(padLeft("Health+Care", 12)),
		titleStyle.Render(padLeft("Pension", 12)),
	)
	b.WriteString("  " + separatorLine + "\n")

	lines := lo.Map(brackets, func(br business.PremiumBracket, _ int) string {
		return fmt.Sprintf("  %s %s %s %s %s %s",
			padLeft(fmt.Sprintf("%d", br.Grade), 5),
			padLeft(formatYen(br.MinAmount), 12),
			dimStyle.Render(padLeft(formatYen(br.MaxAmount), 12)),
			padLeft(formatMoney(br.HealthNoCare), 12),
			padLeft(formatMoney(br.HealthCare), 12),
			padLeft(formatMoney(br.Pension), 12),
		)
	})
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n\n")
	b.WriteString("  " + dimStyle.Render(fmt.Sprintf("%d brackets", len(brackets))) + "\n")
	return b.String()
}

// RenderError renders a one-line error for terminal output.
func RenderError(err error) string {
	return errorStyle.Render("error: ") + err.Error() + "\n"
}

// RenderWarning renders a one-line warning for terminal output.
func RenderWarning(err error) string {
	return "  " + warnStyle.Render("warning: ") + err.Error() + "\n"
}

// formatYen groups thousands: 1234567 -> 1,234,567.
func formatYen(amount int64) string {
	return groupDigits(strconv.FormatInt(amount, 10))
}

func formatMoney(d decimal.Decimal) string {
	whole, frac, _ := strings.Cut(d.StringFixed(constants.MoneyScale), ".")
	return groupDigits(whole) + "." + frac
}

func groupDigits(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	var out strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(r)
	}
	return sign + out.String()
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
