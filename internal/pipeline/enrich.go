package pipeline

import (
	"hvrdb/internal/models"
)

// Enrich joins each chain's branches with the chain metadata whose company equals the
// chain name. Chains without metadata are logged and skipped, and branches without a
// usable latitude and longitude are dropped.
func (p *Pipeline) Enrich(branches models.ChainBranches, chains []models.Chain) []models.Store {
	byCompany := make(map[string]models.Chain, len(chains))
	for _, c := range chains {
		if _, seen := byCompany[c.Company]; !seen {
			byCompany[c.Company] = c
		}
	}

	stores := make([]models.Store, 0, branches.Len())
	for _, group := range branches {
		chain, ok := byCompany[group.Name]
		if !ok {
			p.log.Warn().Str("company", group.Name).Int("branches", len(group.Branches)).
				Msg("no general info for chain, skipping its branches")
			continue
		}

		dropped := 0
		for _, b := range group.Branches {
			if !p.usable(b) {
				dropped++
				continue
			}
			stores = append(stores, models.Enrich(group.Name, b, chain))
		}

		if dropped > 0 {
			p.log.Debug().Str("company", group.Name).Int("dropped", dropped).
				Msg("dropped branches without a usable location")
		}
	}

	return stores
}

func (p *Pipeline) usable(b models.Branch) bool {
	return models.IsUsableCoordinate(b.Latitude, p.floor) && models.IsUsableCoordinate(b.Longitude, p.floor)
}
