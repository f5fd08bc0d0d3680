package pipeline

import (
	"hvrdb/internal/models"
)

type coordinateKey struct {
	lat, lon string
}

type cluster struct {
	key    coordinateKey
	stores []models.Store
}

// CorrectDuplicates disperses every group of stores sharing the exact same latitude and
// longitude strings. Groups are emitted in the order their coordinates were first seen.
// When no coordinates repeat, the input is returned as is.
func (p *Pipeline) CorrectDuplicates(stores []models.Store) []models.Store {
	index := make(map[coordinateKey]int, len(stores))
	var clusters []cluster

	for _, s := range stores {
		key := coordinateKey{lat: s.Latitude, lon: s.Longitude}
		i, ok := index[key]
		if !ok {
			i = len(clusters)
			index[key] = i
			clusters = append(clusters, cluster{key: key})
		}
		clusters[i].stores = append(clusters[i].stores, s)
	}

	if len(clusters) == len(stores) {
		return stores
	}

	out := make([]models.Store, 0, len(stores))
	dispersed := 0
	for _, c := range clusters {
		if len(c.stores) == 1 {
			out = append(out, c.stores[0])
			continue
		}

		_, latOK := models.ParseCoordinate(c.key.lat)
		_, lonOK := models.ParseCoordinate(c.key.lon)
		if latOK && lonOK {
			dispersed += len(c.stores)
		} else {
			p.log.Warn().Str("latitude", c.key.lat).Str("longitude", c.key.lon).Int("stores", len(c.stores)).
				Msg("shared coordinates are not numeric, leaving cluster as is")
		}

		out = append(out, Disperse(c.stores)...)
	}

	p.log.Debug().Int("stores", len(stores)).Int("locations", len(clusters)).Int("dispersed", dispersed).
		Msg("corrected duplicate coordinates")

	return out
}
