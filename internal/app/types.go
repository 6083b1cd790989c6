package app

import "componentgate/internal/types"

const (
	DefaultMaxRounds = 10
	StateFileName    = "componentgate.state"
)

type ProcessRequest struct {
	ManifestPath string
	OutputDir    string
	// Package overrides the manifest's package when set.
	Package                  string
	MaxRounds                int
	AheadOfTimeSubcomponents bool
	StateFile                string
}

type ProcessResult struct {
	RunID      string
	Package    string
	Rounds     int
	Generated  []types.GeneratedArtifact
	Unresolved []string
	Errors     int
	Warnings   int
	IndexFile  string
	StateFile  string
}

type ValidateRequest struct {
	ManifestPath             string
	Package                  string
	MaxRounds                int
	AheadOfTimeSubcomponents bool
}

type ValidateResult struct {
	Package      string
	Declarations int
	Rounds       int
	Generated    []string
	Unresolved   []string
	Diagnostics  []types.Diagnostic
	Errors       int
	Warnings     int
}

type InspectRequest struct {
	StateFile string
}

type InspectResult struct {
	RunID       string
	CreatedAt   string
	Package     string
	Sources     []string
	Rounds      []types.RoundSummary
	Files       []string
	Unresolved  []string
	Diagnostics []types.Diagnostic
	Errors      int
	Warnings    int
}
