package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"taxcast/internal/domain"
)

// View renders the current state of the application
func (m Model) View() string {
	if m.loading {
		return m.renderLoading()
	}

	if m.err != nil {
		return m.renderError()
	}

	var content string
	switch m.currentScene {
	case SceneHome:
		content = m.renderHome()
	case SceneEstimate:
		content = m.renderEstimate()
	case SceneWhatIf:
		content = m.whatIf.View()
	case SceneBrackets:
		content = m.renderBrackets()
	case SceneHelp:
		content = m.renderHelp()
	default:
		content = m.renderHome()
	}

	return m.renderApp(content)
}

// renderApp wraps scene content with the title and status bars
func (m Model) renderApp(content string) string {
	title := m.renderTitleBar()
	status := m.renderStatusBar()

	contentHeight := m.height - lipgloss.Height(title) - lipgloss.Height(status)
	body := lipgloss.NewStyle().
		Width(m.width).
		Height(max(0, contentHeight)).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, title, body, status)
}

func (m Model) renderTitleBar() string {
	title := TitleStyle.Render("TAXCAST - Federal Tax Estimator")
	scene := SubtitleStyle.Render(m.currentScene.String())

	gap := m.width - lipgloss.Width(title) - lipgloss.Width(scene)
	return title + strings.Repeat(" ", max(1, gap)) + scene
}

func (m Model) renderStatusBar() string {
	shortcuts := []string{
		formatShortcut("h", "home"),
		formatShortcut("e", "estimate"),
		formatShortcut("w", "what-if"),
		formatShortcut("b", "brackets"),
		formatShortcut("?", "help"),
		formatShortcut("q", "quit"),
	}

	left := StatusBarStyle.Render(strings.Join(shortcuts, "  "))

	right := ""
	if m.filing != nil {
		right = StatusBarStyle.Render(fmt.Sprintf("%s loaded", m.filingPath))
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	return left + strings.Repeat(" ", max(1, gap)) + right
}

func formatShortcut(keyName, action string) string {
	return StatusKeyStyle.Render(keyName) + StatusBarStyle.Render(" "+action)
}

func (m Model) renderLoading() string {
	message := m.loadingMessage
	if message == "" {
		message = "Loading..."
	}

	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		SubtitleStyle.Render(message))
}

func (m Model) renderError() string {
	content := ErrorStyle.Render("Error") + "\n\n" +
		m.err.Error() + "\n\n" +
		SubtitleStyle.Render("Press any key to continue")

	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		BorderStyle.Render(content))
}

func (m Model) renderHome() string {
	if m.filing == nil {
		return BorderStyle.Render("Welcome to taxcast!\n\nLoading filing...")
	}

	var content strings.Builder
	content.WriteString(TitleStyle.Render("Welcome to taxcast!"))
	content.WriteString("\n\n")
	content.WriteString(MetricLabelStyle.Render("Filing:   "))
	content.WriteString(m.filingPath)
	content.WriteString("\n")
	content.WriteString(MetricLabelStyle.Render("Tax year: "))
	content.WriteString(fmt.Sprintf("%d (%s)", m.filing.TaxYear, m.filing.FilingStatus))
	content.WriteString("\n")
	content.WriteString(MetricLabelStyle.Render("Entries:  "))
	content.WriteString(fmt.Sprintf("%d W-2, %d paystub", len(m.filing.W2s), len(m.filing.Paystubs)))
	content.WriteString("\n\n")

	if m.estimate != nil {
		content.WriteString(renderOutcome(m.estimate))
		content.WriteString("\n\n")
	}

	content.WriteString(SubtitleStyle.Render("Use the keyboard shortcuts below to navigate."))

	return BorderStyle.Render(content.String())
}

func (m Model) renderEstimate() string {
	if m.estimate == nil {
		return BorderStyle.Render("No estimate yet.\n\nThe estimate appears here once the filing loads.")
	}

	est := m.estimate
	var content strings.Builder

	content.WriteString(TitleStyle.Render(fmt.Sprintf("Federal Tax Estimate: %d (%s)", est.TaxYear, est.FilingStatus)))
	content.WriteString("\n\n")

	content.WriteString(MetricLabelStyle.Render("Total Wages:        "))
	content.WriteString(MetricValueStyle.Render(formatDollars(est.TotalWages)))
	content.WriteString("\n")
	content.WriteString(MetricLabelStyle.Render("Total Withheld:     "))
	content.WriteString(MetricValueStyle.Render(formatDollars(est.TotalWithheld)))
	content.WriteString("\n")
	content.WriteString(MetricLabelStyle.Render("Standard Deduction: "))
	content.WriteString(MetricValueStyle.Render(formatDollars(est.StandardDeduction)))
	content.WriteString("\n")
	content.WriteString(MetricLabelStyle.Render("Taxable Income:     "))
	content.WriteString(MetricValueStyle.Render(formatDollars(est.TaxableIncome)))
	content.WriteString("\n\n")

	if len(est.Brackets) > 0 {
		content.WriteString(TitleStyle.Render("Bracket Breakdown"))
		content.WriteString("\n")
		for _, b := range est.Brackets {
			rate := b.Rate.Mul(decimal.NewFromInt(100)).StringFixed(0) + "%"
			content.WriteString(fmt.Sprintf("  %-5s on %-10s = %s\n",
				rate, formatDollars(b.Income), formatDollars(b.Tax)))
		}
		content.WriteString("\n")
	}

	content.WriteString(MetricLabelStyle.Render("Tax Liability:      "))
	content.WriteString(MetricValueStyle.Render(formatDollars(est.TaxLiability)))
	content.WriteString("\n")

	if est.IsRefund {
		content.WriteString(MetricLabelStyle.Render("Estimated Refund:   "))
		content.WriteString(MetricPositiveStyle.Render(formatDollars(est.RefundAmount)))
	} else {
		content.WriteString(MetricLabelStyle.Render("Estimated Due:      "))
		content.WriteString(MetricNegativeStyle.Render(formatDollars(est.AmountDue)))
	}

	return BorderStyle.Render(content.String())
}

func (m Model) renderBrackets() string {
	var content strings.Builder

	content.WriteString(TitleStyle.Render("Bracket Ladder"))
	content.WriteString("\n\n")

	year := 0
	status := domain.FilingSingle
	if m.filing != nil {
		year = m.filing.TaxYear
		status = m.filing.FilingStatus
	} else if years := m.provider.Years(); len(years) > 0 {
		year = years[len(years)-1]
	}

	deduction, err := m.provider.Deduction(year, status)
	if err != nil {
		content.WriteString(ErrorStyle.Render(err.Error()))
		return BorderStyle.Render(content.String())
	}
	bands, err := m.provider.Brackets(year, status)
	if err != nil {
		content.WriteString(ErrorStyle.Render(err.Error()))
		return BorderStyle.Render(content.String())
	}

	content.WriteString(SubtitleStyle.Render(fmt.Sprintf("%d, filing as %s", year, status)))
	content.WriteString("\n\n")
	content.WriteString(MetricLabelStyle.Render("Standard Deduction: "))
	content.WriteString(MetricValueStyle.Render(formatDollars(deduction)))
	content.WriteString("\n\n")

	for _, band := range bands {
		rate := band.Rate.Mul(decimal.NewFromInt(100)).StringFixed(0) + "%"
		span := formatDollars(band.Lower) + " and up"
		if !band.Unbounded() {
			span = formatDollars(band.Lower) + " to " + formatDollars(*band.Upper)
		}
		content.WriteString(fmt.Sprintf("  %-5s %s\n", rate, span))
	}

	return BorderStyle.Render(content.String())
}

func (m Model) renderHelp() string {
	var content strings.Builder

	content.WriteString(TitleStyle.Render("Keyboard Shortcuts"))
	content.WriteString("\n\n")

	shortcuts := [][2]string{
		{"h", "Home screen with the filing summary"},
		{"e", "Full estimate with the bracket breakdown"},
		{"w", "What-if recalculation with edited figures"},
		{"b", "Bracket ladder for the filing's schedule"},
		{"?", "This help screen"},
		{"esc", "Back to the home screen"},
		{"q / ctrl+c", "Quit"},
	}

	for _, s := range shortcuts {
		content.WriteString(fmt.Sprintf("  %s  %s\n",
			StatusKeyStyle.Render(fmt.Sprintf("%-10s", s[0])), s[1]))
	}

	content.WriteString("\n")
	content.WriteString(SubtitleStyle.Render("On the what-if screen: Tab switches fields, Enter recalculates, Ctrl+F flips the filing status."))

	return BorderStyle.Render(content.String())
}

// renderOutcome renders the liability and refund-or-due lines of an estimate
func renderOutcome(est *domain.Estimate) string {
	var content strings.Builder

	content.WriteString(MetricLabelStyle.Render("Taxable Income: "))
	content.WriteString(MetricValueStyle.Render(formatDollars(est.TaxableIncome)))
	content.WriteString("\n")

	content.WriteString(MetricLabelStyle.Render("Tax Liability:  "))
	content.WriteString(MetricValueStyle.Render(formatDollars(est.TaxLiability)))
	content.WriteString("\n")

	if est.IsRefund {
		content.WriteString(MetricLabelStyle.Render("Refund:         "))
		content.WriteString(MetricPositiveStyle.Render(formatDollars(est.RefundAmount)))
	} else {
		content.WriteString(MetricLabelStyle.Render("Amount Due:     "))
		content.WriteString(MetricNegativeStyle.Render(formatDollars(est.AmountDue)))
	}

	return content.String()
}

// formatDollars renders a whole-dollar amount
func formatDollars(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-$" + d.Abs().StringFixed(0)
	}
	return "$" + d.StringFixed(0)
}
