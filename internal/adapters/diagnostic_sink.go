package adapters

import (
	"sync"

	"github.com/rs/zerolog"

	"componentgate/internal/ports"
	"componentgate/internal/types"
)

// LogDiagnosticSink logs every diagnostic and keeps them in arrival order.
// A diagnostic identical to one already reported is dropped; a declaration
// revalidated in a later round must not repeat its findings.
type LogDiagnosticSink struct {
	logger zerolog.Logger

	mu          sync.Mutex
	diagnostics []types.Diagnostic
	seen        map[types.Diagnostic]struct{}
}

func NewLogDiagnosticSink(logger zerolog.Logger) *LogDiagnosticSink {
	return &LogDiagnosticSink{
		logger: logger,
		seen:   map[types.Diagnostic]struct{}{},
	}
}

func (s *LogDiagnosticSink) Report(diagnostic types.Diagnostic) {
	s.mu.Lock()
	if _, dup := s.seen[diagnostic]; dup {
		s.mu.Unlock()
		return
	}
	s.seen[diagnostic] = struct{}{}
	s.diagnostics = append(s.diagnostics, diagnostic)
	s.mu.Unlock()

	var event *zerolog.Event
	switch diagnostic.Severity {
	case types.SeverityError:
		event = s.logger.Error()
	case types.SeverityWarning:
		event = s.logger.Warn()
	default:
		event = s.logger.Info()
	}
	event.Str("subject", string(diagnostic.Subject)).Msg(diagnostic.Message)
}

func (s *LogDiagnosticSink) Diagnostics() []types.Diagnostic {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]types.Diagnostic(nil), s.diagnostics...)
}

func (s *LogDiagnosticSink) Count(severity types.Severity) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, diagnostic := range s.diagnostics {
		if diagnostic.Severity == severity {
			count++
		}
	}
	return count
}

var _ ports.DiagnosticSinkPort = (*LogDiagnosticSink)(nil)
