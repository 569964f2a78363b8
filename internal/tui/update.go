package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case NavigateMsg:
		m.previousScene = m.currentScene
		m.currentScene = msg.Scene
		if msg.Scene == SceneWhatIf {
			return m, m.whatIf.FocusCmd()
		}
		return m, nil

	case ErrorMsg:
		m.loading = false
		m.err = msg.Err
		return m, nil

	case FilingLoadedMsg:
		m.filing = msg.Filing
		m.loading = true
		m.loadingMessage = "Calculating estimate..."
		m.whatIf.SetFiling(msg.Filing)
		return m, estimateFilingCmd(m.estimator, msg.Filing)

	case EstimateCompleteMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.estimate = msg.Estimate
		m.whatIf.Seed(msg.Estimate)
		return m, nil

	case WhatIfCompleteMsg:
		m.whatIf.SetResult(msg.Estimate, msg.Err)
		return m, nil
	}

	return m.updateCurrentScene(msg)
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key dismisses an error screen
	if m.err != nil {
		m.err = nil
		return m, nil
	}

	// The what-if scene owns the keyboard while its inputs are live
	if m.currentScene == SceneWhatIf {
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			return m.navigateTo(SceneHome)
		}
		return m.updateCurrentScene(msg)
	}

	// Global shortcuts
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "?":
		return m.navigateTo(SceneHelp)

	case "esc":
		if m.currentScene != SceneHome {
			return m.navigateTo(SceneHome)
		}

	case "h":
		return m.navigateTo(SceneHome)

	case "e":
		return m.navigateTo(SceneEstimate)

	case "w":
		return m.navigateTo(SceneWhatIf)

	case "b":
		return m.navigateTo(SceneBrackets)
	}

	return m.updateCurrentScene(msg)
}

// navigateTo emits a NavigateMsg for the target scene
func (m Model) navigateTo(scene Scene) (tea.Model, tea.Cmd) {
	if m.currentScene == scene {
		return m, nil
	}
	return m, func() tea.Msg {
		return NavigateMsg{Scene: scene}
	}
}

// updateCurrentScene delegates messages to the current scene's model
func (m Model) updateCurrentScene(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.currentScene {
	case SceneWhatIf:
		updated, cmd := m.whatIf.Update(msg, m.estimator)
		m.whatIf = updated
		return m, cmd
	}

	return m, nil
}
