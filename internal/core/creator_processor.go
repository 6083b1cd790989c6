package core

import (
	"context"

	"github.com/rs/zerolog/log"

	"componentgate/internal/ports"
	"componentgate/internal/types"
)

type CreatorProcessor struct {
	Validator ports.CreatorValidatorPort
	Sink      ports.DiagnosticSinkPort
}

func NewCreatorProcessor(validator ports.CreatorValidatorPort, sink ports.DiagnosticSinkPort) CreatorProcessor {
	return CreatorProcessor{
		Validator: validator,
		Sink:      sink,
	}
}

// ValidateCreators validates every creator and keys the reports by owner.
// Creators whose types are not resolvable yet are returned as rejected and
// leave no entry.
//
// When an owner already has a report, a dirty report is never replaced by a
// clean one, and two clean reports for the same owner collapse into an error
// naming both creators.
func (p CreatorProcessor) ValidateCreators(ctx context.Context, creators []types.Declaration) (map[types.DeclarationID]types.ValidationReport, []Deferral) {
	reports := map[types.DeclarationID]types.ValidationReport{}
	creatorByOwner := map[types.DeclarationID]types.DeclarationID{}
	var rejected []Deferral
	for _, creator := range creators {
		report, err := p.Validator.Validate(creator)
		if err != nil {
			if types.IsUnresolved(err) {
				log.Ctx(ctx).Debug().Str("declaration", creator.Name).Msg("creator deferred")
				rejected = append(rejected, Deferral{Declaration: creator, Missing: types.UnresolvedTypes(err)})
				continue
			}
			report = failureReport(creator.ID(), err)
		}
		emitReport(p.Sink, report)

		owner := creator.OwnerID()
		previous, found := reports[owner]
		switch {
		case !found:
			reports[owner] = report
			creatorByOwner[owner] = creator.ID()
		case !previous.IsClean():
		case !report.IsClean():
			reports[owner] = report
			creatorByOwner[owner] = creator.ID()
		default:
			duplicate := types.NewReportBuilder(owner).
				Errorf("%s has more than one creator: %s, %s", owner, creatorByOwner[owner], creator.ID()).
				Build()
			emitReport(p.Sink, duplicate)
			reports[owner] = duplicate
		}
	}
	return reports, rejected
}
