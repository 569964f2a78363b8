package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"taxcast/internal/calculation"
	"taxcast/internal/domain"
)

// WhatIfModel is the interactive recalculation scene. The user edits the
// wage and withholding totals, optionally flips the filing status, and
// re-estimates without touching the filing file.
type WhatIfModel struct {
	wagesInput    textinput.Model
	withheldInput textinput.Model

	status domain.FilingStatus
	year   int

	focused  int // 0 = wages, 1 = withheld
	estimate *domain.Estimate
	err      error
}

// NewWhatIfModel creates a new what-if scene model
func NewWhatIfModel() WhatIfModel {
	wages := textinput.New()
	wages.Placeholder = "e.g., 60000"
	wages.CharLimit = 12
	wages.Width = 20
	wages.Focus()

	withheld := textinput.New()
	withheld.Placeholder = "e.g., 6000"
	withheld.CharLimit = 12
	withheld.Width = 20

	return WhatIfModel{
		wagesInput:    wages,
		withheldInput: withheld,
		status:        domain.FilingSingle,
	}
}

// SetFiling adopts the filing's year and status as the starting point
func (m *WhatIfModel) SetFiling(filing *domain.Filing) {
	m.status = filing.FilingStatus
	m.year = filing.TaxYear
}

// Seed fills the inputs from the filing's own estimate
func (m *WhatIfModel) Seed(est *domain.Estimate) {
	if est == nil {
		return
	}
	m.estimate = est
	m.wagesInput.SetValue(est.TotalWages.StringFixed(0))
	m.withheldInput.SetValue(est.TotalWithheld.StringFixed(0))
}

// SetResult stores a finished what-if estimate
func (m *WhatIfModel) SetResult(est *domain.Estimate, err error) {
	m.err = err
	if err == nil {
		m.estimate = est
	}
}

// FocusCmd starts cursor blinking when the scene is entered
func (m WhatIfModel) FocusCmd() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the what-if scene. Unmatched messages flow to
// the focused input so cursor blinking keeps working.
func (m WhatIfModel) Update(msg tea.Msg, estimator *calculation.Estimator) (WhatIfModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, key.NewBinding(key.WithKeys("tab", "shift+tab", "up", "down"))):
			m.toggleFocus()
			return m, textinput.Blink

		case key.Matches(keyMsg, key.NewBinding(key.WithKeys("enter"))):
			return m, m.recalculateCmd(estimator)

		case key.Matches(keyMsg, key.NewBinding(key.WithKeys("ctrl+f"))):
			if m.status == domain.FilingSingle {
				m.status = domain.FilingMarriedFilingJointly
			} else {
				m.status = domain.FilingSingle
			}
			return m, m.recalculateCmd(estimator)
		}
	}

	var cmd tea.Cmd
	if m.focused == 0 {
		m.wagesInput, cmd = m.wagesInput.Update(msg)
	} else {
		m.withheldInput, cmd = m.withheldInput.Update(msg)
	}
	return m, cmd
}

// toggleFocus moves focus between the two inputs
func (m *WhatIfModel) toggleFocus() {
	if m.focused == 0 {
		m.focused = 1
		m.wagesInput.Blur()
		m.withheldInput.Focus()
	} else {
		m.focused = 0
		m.withheldInput.Blur()
		m.wagesInput.Focus()
	}
}

// recalculateCmd builds a command that re-estimates from the edited figures
func (m WhatIfModel) recalculateCmd(estimator *calculation.Estimator) tea.Cmd {
	wages := strings.TrimSpace(m.wagesInput.Value())
	withheld := strings.TrimSpace(m.withheldInput.Value())
	year := m.year
	status := m.status

	return func() tea.Msg {
		wagesDec, err := decimal.NewFromString(wages)
		if err != nil {
			return WhatIfCompleteMsg{Err: fmt.Errorf("invalid wages %q", wages)}
		}

		withheldDec, err := decimal.NewFromString(withheld)
		if err != nil {
			return WhatIfCompleteMsg{Err: fmt.Errorf("invalid withholding %q", withheld)}
		}

		entry := domain.W2Entry{
			Employer: "what-if",
			Wages:    wagesDec,
			Withheld: withheldDec,
		}

		est, err := estimator.Compose(year, status, []domain.W2Entry{entry}, nil)
		return WhatIfCompleteMsg{Estimate: est, Err: err}
	}
}

// View renders the what-if scene
func (m WhatIfModel) View() string {
	var content strings.Builder

	content.WriteString(TitleStyle.Render("What-If Estimator"))
	content.WriteString("\n\n")

	content.WriteString(SubtitleStyle.Render(fmt.Sprintf("Tax year %d, filing as %s", m.year, m.status)))
	content.WriteString("\n\n")

	content.WriteString(MetricLabelStyle.Render("Total Wages:    "))
	content.WriteString(m.wagesInput.View())
	content.WriteString("\n")
	content.WriteString(MetricLabelStyle.Render("Total Withheld: "))
	content.WriteString(m.withheldInput.View())
	content.WriteString("\n\n")

	if m.err != nil {
		content.WriteString(ErrorStyle.Render(m.err.Error()))
		content.WriteString("\n\n")
	} else if m.estimate != nil {
		content.WriteString(renderOutcome(m.estimate))
		content.WriteString("\n\n")
	}

	content.WriteString(SubtitleStyle.Render("Tab to switch fields • Enter to recalculate • Ctrl+F to flip status • ESC to go back"))

	return BorderStyle.Render(content.String())
}
