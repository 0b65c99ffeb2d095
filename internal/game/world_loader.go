package game

import (
	"fmt"
	"math/rand"
	"time"

	"voxmesh/internal/config"
	"voxmesh/internal/logger"
	"voxmesh/internal/world"

	"go.uber.org/zap"
)

// streamPending caps chunks queued for background generation
const streamPending = 64

// LoadWorld fills store from cfg. Fixed fixtures are laid out as a grid of
// (2*Radius+1)^2 columns, Layers chunks high. The terrain fixture loads
// syncRadius columns around the origin immediately and returns a streamer
// for the rest; the caller owns it and must Close it.
func LoadWorld(store *world.ChunkStore, cfg config.WorldConfig, syncRadius int, log *zap.Logger) (*world.Streamer, error) {
	log = logger.Or(log).Named("world")
	start := time.Now()

	if cfg.Fixture == "terrain" {
		gen := world.NewGenerator(cfg.Seed)
		st := world.NewStreamer(store, gen, 0, streamPending)
		n := st.LoadSync(world.ChunkCoord{}, min(syncRadius, cfg.Radius))
		log.Info("terrain loaded",
			zap.Int64("seed", cfg.Seed),
			zap.Int("chunks", n),
			zap.Duration("took", time.Since(start)))
		return st, nil
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	next, err := fixture(cfg.Fixture, rng)
	if err != nil {
		return nil, err
	}
	n := 0
	for y := 0; y < cfg.Layers; y++ {
		for z := -cfg.Radius; z <= cfg.Radius; z++ {
			for x := -cfg.Radius; x <= cfg.Radius; x++ {
				store.InsertChunk(world.ChunkCoord{X: x, Y: y, Z: z}, next())
				n++
			}
		}
	}
	log.Info("fixture loaded",
		zap.String("fixture", cfg.Fixture),
		zap.Int("chunks", n),
		zap.Duration("took", time.Since(start)))
	return nil, nil
}

func fixture(name string, rng *rand.Rand) (func() *world.Chunk, error) {
	switch name {
	case "base":
		return world.BaseChunk, nil
	case "pool":
		return world.PoolChunk, nil
	case "random":
		return func() *world.Chunk { return world.RandomChunk(rng) }, nil
	}
	return nil, fmt.Errorf("unknown fixture %q", name)
}
