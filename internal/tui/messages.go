package tui

import (
	"taxcast/internal/domain"
)

// Scene represents different screens in the TUI
type Scene int

const (
	SceneHome Scene = iota
	SceneEstimate
	SceneWhatIf
	SceneBrackets
	SceneHelp
)

// NavigateMsg switches to a different scene
type NavigateMsg struct {
	Scene Scene
}

// ErrorMsg surfaces an error to the user
type ErrorMsg struct {
	Err error
}

// FilingLoadedMsg signals the filing file has been parsed
type FilingLoadedMsg struct {
	Filing *domain.Filing
}

// EstimateCompleteMsg signals the filing's estimate has finished
type EstimateCompleteMsg struct {
	Estimate *domain.Estimate
	Err      error
}

// WhatIfCompleteMsg signals a what-if recalculation has finished
type WhatIfCompleteMsg struct {
	Estimate *domain.Estimate
	Err      error
}
