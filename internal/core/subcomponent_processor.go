package core

import (
	"context"

	"github.com/rs/zerolog/log"

	"componentgate/internal/ports"
	"componentgate/internal/types"
)

type SubcomponentProcessor struct {
	Validator ports.ComponentValidatorPort
	Sink      ports.DiagnosticSinkPort
}

func NewSubcomponentProcessor(validator ports.ComponentValidatorPort, sink ports.DiagnosticSinkPort) SubcomponentProcessor {
	return SubcomponentProcessor{
		Validator: validator,
		Sink:      sink,
	}
}

// ValidateSubcomponents validates every subcomponent against the round's
// full set of subcomponents and subcomponent creators.
func (p SubcomponentProcessor) ValidateSubcomponents(ctx context.Context, subcomponents []types.Declaration, creators []types.Declaration) (map[types.DeclarationID]types.ValidationReport, []Deferral) {
	reports := map[types.DeclarationID]types.ValidationReport{}
	var rejected []Deferral
	for _, subcomponent := range subcomponents {
		if _, done := reports[subcomponent.ID()]; done {
			continue
		}
		result, err := p.Validator.Validate(subcomponent, subcomponents, creators)
		if err != nil {
			if types.IsUnresolved(err) {
				log.Ctx(ctx).Debug().Str("declaration", subcomponent.Name).Msg("subcomponent deferred")
				rejected = append(rejected, Deferral{Declaration: subcomponent, Missing: types.UnresolvedTypes(err)})
				continue
			}
			result = types.ComponentValidationReport{Report: failureReport(subcomponent.ID(), err)}
		}
		emitReport(p.Sink, result.Report)
		reports[subcomponent.ID()] = result.Report
	}
	return reports, rejected
}
