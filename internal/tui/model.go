package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"taxcast/internal/calculation"
	"taxcast/internal/config"
	"taxcast/internal/domain"
	"taxcast/internal/schedule"
)

// Model represents the entire application state
type Model struct {
	// Navigation
	currentScene  Scene
	previousScene Scene

	// Terminal dimensions
	width  int
	height int

	// Filing data
	filingPath string
	filing     *domain.Filing

	// Estimation engine
	provider  *schedule.StaticProvider
	estimator *calculation.Estimator
	estimate  *domain.Estimate

	// Scene models
	whatIf WhatIfModel

	// Error state
	err error

	// Loading state
	loading        bool
	loadingMessage string
}

// NewModel creates a new application model
func NewModel(filingPath string) Model {
	provider := schedule.NewStaticProvider()

	return Model{
		currentScene:   SceneHome,
		filingPath:     filingPath,
		provider:       provider,
		estimator:      calculation.NewEstimator(provider),
		whatIf:         NewWhatIfModel(),
		width:          80,
		height:         24,
		loading:        true,
		loadingMessage: "Loading filing...",
	}
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return loadFilingCmd(m.filingPath)
}

// loadFilingCmd returns a command that parses the filing file
func loadFilingCmd(path string) tea.Cmd {
	return func() tea.Msg {
		parser := config.NewInputParser()
		filing, err := parser.LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}

		return FilingLoadedMsg{Filing: filing}
	}
}

// estimateFilingCmd returns a command that estimates the loaded filing
func estimateFilingCmd(estimator *calculation.Estimator, filing *domain.Filing) tea.Cmd {
	return func() tea.Msg {
		est, err := estimator.Estimate(filing)
		return EstimateCompleteMsg{Estimate: est, Err: err}
	}
}

// String returns a human-readable name for a scene
func (s Scene) String() string {
	switch s {
	case SceneHome:
		return "Home"
	case SceneEstimate:
		return "Estimate"
	case SceneWhatIf:
		return "What-If"
	case SceneBrackets:
		return "Brackets"
	case SceneHelp:
		return "Help"
	default:
		return "Unknown"
	}
}
