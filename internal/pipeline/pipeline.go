package pipeline

import (
	"github.com/rs/zerolog"

	"hvrdb/internal/models"
)

// DefaultCapacity mirrors the per-layer record limit of the mapping API the batches are uploaded to.
const DefaultCapacity = 2000

// Options configures a Pipeline.
type Options struct {
	Capacity        int
	CoordinateFloor float64
}

// Pipeline turns loaded datasets into capacity-bounded, category-sorted batches.
type Pipeline struct {
	capacity int
	floor    float64
	log      zerolog.Logger
}

// New creates a pipeline. Zero options fall back to the defaults.
func New(opts Options, logger zerolog.Logger) *Pipeline {
	if opts.Capacity <= 0 {
		opts.Capacity = DefaultCapacity
	}
	if opts.CoordinateFloor <= 0 {
		opts.CoordinateFloor = models.DefaultCoordinateFloor
	}
	return &Pipeline{
		capacity: opts.Capacity,
		floor:    opts.CoordinateFloor,
		log:      logger,
	}
}

// Capacity returns the batch capacity in use.
func (p *Pipeline) Capacity() int {
	return p.capacity
}

// RunChainFamily enriches a chain-card dataset and splits it into two batches.
func (p *Pipeline) RunChainFamily(branches models.ChainBranches, chains []models.Chain) (first, second []models.Store) {
	stores := p.Enrich(branches, chains)
	stores = p.CorrectDuplicates(stores)
	SortByCategory(stores)
	first, second = Split(stores, p.capacity)

	p.log.Info().Int("branches", branches.Len()).Int("stores", len(stores)).
		Int("first", len(first)).Int("second", len(second)).Msg("chain family processed")

	return first, second
}

// RunListing processes a directly listed dataset. It yields a single batch unless the
// listing exceeds capacity, in which case it is sorted and split in two.
func (p *Pipeline) RunListing(branches []models.Branch) [][]models.Store {
	stores := make([]models.Store, len(branches))
	for i, b := range branches {
		stores[i] = models.NewStore(b)
	}
	stores = p.CorrectDuplicates(stores)

	if len(stores) <= p.capacity {
		p.log.Info().Int("stores", len(stores)).Msg("listing processed")
		return [][]models.Store{stores}
	}

	SortByCategory(stores)
	first, second := Split(stores, p.capacity)

	p.log.Info().Int("stores", len(stores)).Int("first", len(first)).Int("second", len(second)).
		Msg("listing processed and split")

	return [][]models.Store{first, second}
}
