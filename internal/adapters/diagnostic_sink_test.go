package adapters

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"componentgate/internal/types"
)

func TestLogDiagnosticSinkKeepsOrderAndCounts(t *testing.T) {
	var buf bytes.Buffer
	sink := NewLogDiagnosticSink(zerolog.New(&buf))

	sink.Report(types.Diagnostic{Severity: types.SeverityError, Message: "first", Subject: "A"})
	sink.Report(types.Diagnostic{Severity: types.SeverityWarning, Message: "second", Subject: "B"})
	sink.Report(types.Diagnostic{Severity: types.SeverityError, Message: "third", Subject: "C"})
	sink.Report(types.Diagnostic{Severity: types.SeverityError, Message: "first", Subject: "A"})

	got := sink.Diagnostics()
	require.Len(t, got, 3)
	assert.Equal(t, []string{"first", "second", "third"}, []string{got[0].Message, got[1].Message, got[2].Message})
	assert.Equal(t, 2, sink.Count(types.SeverityError))
	assert.Equal(t, 1, sink.Count(types.SeverityWarning))
	assert.Equal(t, 0, sink.Count(types.SeverityNote))
	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.Contains(t, buf.String(), `"subject":"B"`)
}
