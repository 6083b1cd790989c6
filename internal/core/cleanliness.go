package core

import "componentgate/internal/types"

// ReportCache holds one round's validation results. Every map is keyed by
// declaration identity; creator reports are keyed by the creator's owner.
// A declaration deferred this round has no entry.
type ReportCache struct {
	RootCreatorReports         map[types.DeclarationID]types.ValidationReport
	SubcomponentCreatorReports map[types.DeclarationID]types.ValidationReport
	SubcomponentReports        map[types.DeclarationID]types.ValidationReport
}

func NewReportCache() ReportCache {
	return ReportCache{
		RootCreatorReports:         map[types.DeclarationID]types.ValidationReport{},
		SubcomponentCreatorReports: map[types.DeclarationID]types.ValidationReport{},
		SubcomponentReports:        map[types.DeclarationID]types.ValidationReport{},
	}
}

// Propagator decides whether a declaration may proceed to graph building.
//
// It trusts every subcomponent's own report instead of walking the
// reference graph: the component validator already folds a referenced
// subcomponent's failures into the referencing report, so looking one hop
// ahead is enough and reference cycles cannot loop.
type Propagator struct {
	cache ReportCache
}

func NewPropagator(cache ReportCache) Propagator {
	return Propagator{cache: cache}
}

// IsClean reports whether a root component's own report, its creator's
// report and the reports of every subcomponent it references are clean.
func (p Propagator) IsClean(report types.ComponentValidationReport) bool {
	own := report.Report
	if !own.IsClean() {
		return false
	}
	if creator, ok := p.cache.RootCreatorReports[own.Subject()]; ok && !creator.IsClean() {
		return false
	}
	for _, id := range report.ReferencedSubcomponents {
		if !p.IsSubcomponentClean(id) {
			return false
		}
	}
	return true
}

// IsSubcomponentClean reports false only when a recorded report for the
// subcomponent or its creator is dirty. Missing entries are not failures.
func (p Propagator) IsSubcomponentClean(id types.DeclarationID) bool {
	if creator, ok := p.cache.SubcomponentCreatorReports[id]; ok && !creator.IsClean() {
		return false
	}
	if report, ok := p.cache.SubcomponentReports[id]; ok && !report.IsClean() {
		return false
	}
	return true
}
