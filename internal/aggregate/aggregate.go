package aggregate

import "github.com/exposcan/exposcan/internal/model"

// Scan reduces one pass's raw adapter outputs to an AggregatedScan.
// The result for the first email becomes the coordinator's running
// aggregate; later passes are folded in by scan.Merge.
func Scan(pass model.PassResult) model.AggregatedScan {
	exposedTypes := ExposedDataTypes(pass.Breaches)
	footprint := Footprint(pass.Presence, pass.Social, pass.WebResults, pass.Breaches)

	return model.AggregatedScan{
		Breaches:           pass.Breaches,
		TotalRiskScore:     Score(pass.Breaches, pass.Reputation, pass.Social, pass.WebResults, exposedTypes),
		RiskLevel:          Level(pass.Breaches, pass.Reputation, pass.Social),
		ExposedDataTypes:   exposedTypes,
		RecommendedActions: Actions(pass.Breaches, pass.Reputation),
		DigitalFootprint:   footprint,
		WebResults:         pass.WebResults,
		Stats:              Statistics(pass.Breaches, exposedTypes, footprint, pass.WebResults, len(pass.WebResults)),
		EmailsScanned:      []string{pass.Email},
	}
}
