package core

import (
	"componentgate/internal/ports"
	"componentgate/internal/types"
)

// emitReport forwards the report's own diagnostics. Subreports belong to
// other declarations and are emitted when those are validated.
func emitReport(sink ports.DiagnosticSinkPort, report types.ValidationReport) {
	if sink == nil {
		return
	}
	for _, item := range report.Items() {
		sink.Report(item)
	}
}

// failureReport turns a collaborator failure other than deferral into a
// dirty report so that it never escapes the round.
func failureReport(subject types.DeclarationID, err error) types.ValidationReport {
	return types.NewReportBuilder(subject).Errorf("%s could not be validated: %v", subject, err).Build()
}

func reportError(sink ports.DiagnosticSinkPort, subject types.DeclarationID, format string, args ...any) {
	emitReport(sink, types.NewReportBuilder(subject).Errorf(format, args...).Build())
}

// Deferral is a declaration rejected for this round because it references
// types that are not resolvable yet.
type Deferral struct {
	Declaration types.Declaration
	Missing     []string
}
