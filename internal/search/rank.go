package search

import (
	"sort"

	"github.com/blackwell-systems/farescout/internal/route"
)

// RankedOption pairs an option with its legality and risk assessment.
// Hidden-city tickets violate most airline terms of service; split tickets
// carry missed-connection risk with no protection.
type RankedOption struct {
	Option         route.Option `json:"route"`
	LegalityScore  int          `json:"legality_score"`
	IsLegal        bool         `json:"is_legal"`
	Risks          string       `json:"risks"`
	Recommendation string       `json:"recommendation"`
}

type legality struct {
	score int
	legal bool
	risk  string
	rec   string
}

var legalityByType = map[string]legality{
	route.TypeDirect: {
		score: 10, legal: true, risk: "None",
		rec: "Safest option with full airline protection.",
	},
	route.TypeNearbyAirport: {
		score: 10, legal: true, risk: "Ground transportation needed",
		rec: "Legal and safe. Consider ground transportation time and cost.",
	},
	route.TypeMultiLegSplit: {
		score: 7, legal: true, risk: "No connection protection",
		rec: "Legal but risky. No protection if first flight delayed. Allow buffer time.",
	},
	route.TypeHiddenCity: {
		score: 3, legal: false, risk: "Violates airline ToS, bags checked through",
		rec: "NOT RECOMMENDED: Violates ToS, can lead to account suspension. Only carry-on bags.",
	},
}

// RankByLegality annotates options with legality data, sorted by price.
func RankByLegality(opts []route.Option) []RankedOption {
	ranked := make([]RankedOption, 0, len(opts))
	for _, o := range opts {
		l, ok := legalityByType[o.RouteType]
		if !ok {
			l = legality{score: 5, legal: true, risk: "Unknown", rec: "Review terms carefully."}
		}
		ranked = append(ranked, RankedOption{
			Option:         o,
			LegalityScore:  l.score,
			IsLegal:        l.legal,
			Risks:          l.risk,
			Recommendation: l.rec,
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Option.Price < ranked[j].Option.Price
	})
	return ranked
}
