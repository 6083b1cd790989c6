package types

import "fmt"

type Diagnostic struct {
	Severity Severity      `msgpack:"severity" yaml:"severity"`
	Message  string        `msgpack:"message" yaml:"message"`
	Subject  DeclarationID `msgpack:"subject" yaml:"subject"`
}

// ValidationReport is the outcome of validating exactly one declaration.
// It is immutable once built; use ReportBuilder to create one.
type ValidationReport struct {
	subject    DeclarationID
	items      []Diagnostic
	subreports []ValidationReport
}

func (r ValidationReport) Subject() DeclarationID {
	return r.subject
}

// Items returns the report's own diagnostics, without those of subreports.
func (r ValidationReport) Items() []Diagnostic {
	return append([]Diagnostic(nil), r.items...)
}

func (r ValidationReport) Subreports() []ValidationReport {
	return append([]ValidationReport(nil), r.subreports...)
}

// IsClean reports whether neither the report nor any subreport carries an
// error.
func (r ValidationReport) IsClean() bool {
	for _, item := range r.items {
		if item.Severity == SeverityError {
			return false
		}
	}
	for _, sub := range r.subreports {
		if !sub.IsClean() {
			return false
		}
	}
	return true
}

// ComponentValidationReport pairs a component or subcomponent report with
// the subcomponents the declaration references directly.
type ComponentValidationReport struct {
	Report                  ValidationReport
	ReferencedSubcomponents []DeclarationID
}

type ReportBuilder struct {
	subject    DeclarationID
	items      []Diagnostic
	subreports []ValidationReport
}

func NewReportBuilder(subject DeclarationID) *ReportBuilder {
	return &ReportBuilder{subject: subject}
}

func (b *ReportBuilder) Add(severity Severity, message string) *ReportBuilder {
	b.items = append(b.items, Diagnostic{Severity: severity, Message: message, Subject: b.subject})
	return b
}

func (b *ReportBuilder) Errorf(format string, args ...any) *ReportBuilder {
	return b.Add(SeverityError, fmt.Sprintf(format, args...))
}

func (b *ReportBuilder) Warnf(format string, args ...any) *ReportBuilder {
	return b.Add(SeverityWarning, fmt.Sprintf(format, args...))
}

func (b *ReportBuilder) AddSubreport(report ValidationReport) *ReportBuilder {
	b.subreports = append(b.subreports, report)
	return b
}

func (b *ReportBuilder) Build() ValidationReport {
	return ValidationReport{
		subject:    b.subject,
		items:      append([]Diagnostic(nil), b.items...),
		subreports: append([]ValidationReport(nil), b.subreports...),
	}
}

// CleanReport is a report without diagnostics for subject.
func CleanReport(subject DeclarationID) ValidationReport {
	return ValidationReport{subject: subject}
}
