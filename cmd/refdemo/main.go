package main

import (
	"flag"
	"fmt"
	"os"

	"refkit/fn"
	"refkit/infra/config"
	"refkit/infra/logging"
	"refkit/infra/memory"
	"refkit/ptr"
)

func main() {
	path := flag.String("config", "", "path to a refkit TOML file")
	flag.Parse()

	cfg := config.Default()
	if *path != "" {
		var err error
		if cfg, err = config.Load(*path); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	lc := cfg.Logging()
	logging.ApplyEnv(&lc)
	logging.Configure(lc)

	log := logging.For("refdemo")

	// ---------------- Callables ----------------

	counter := 0
	byRef := fn.Thunk(func() int { counter++; return counter })
	for i := 0; i < 3; i++ {
		byRef.Call(fn.Unit{})
	}
	byRef.Clone().Call(fn.Unit{})
	log.Info().Int("counter", counter).Msg("closure copies share captured state")

	byVal := fn.Stateful(0, func(n *int, _ fn.Unit) int { *n++; return *n })
	for i := 0; i < 3; i++ {
		byVal.Call(fn.Unit{})
	}
	clone := byVal.Clone()
	log.Info().
		Int("copy", clone.Call(fn.Unit{})).
		Int("original", byVal.Call(fn.Unit{})).
		Msg("stateful copies own their state")

	shared := fn.Share(func(x int) int { return x * x })
	alias := shared.Clone()
	log.Info().
		Int("refs", shared.UseCount()).
		Bool("same", alias.Same(shared)).
		Int("result", alias.Call(7)).
		Msg("shared copies alias one implementation")
	_ = alias.Release()
	_ = shared.Release()

	// ---------------- Deferred reclamation ----------------

	reclaimer := memory.NewReclaimer(cfg.Reclaim.RingSize)
	reader := memory.NewReaderEpoch()

	finalized := 0
	value := ptr.New(new(int),
		ptr.WithRelease(func(*int) error { finalized++; return nil }),
		ptr.WithReclaimer[int](reclaimer),
	)
	reclaimer.Enter(reader)
	_ = value.Release()
	_ = reclaimer.Reclaim(reader)
	log.Info().Int("pending", reclaimer.Pending()).Int("finalized", finalized).Msg("reader active")

	reader.Exit()
	if err := reclaimer.Reclaim(reader); err != nil {
		log.Error().Err(err).Msg("reclaim failed")
		os.Exit(1)
	}
	log.Info().Int("pending", reclaimer.Pending()).Int("finalized", finalized).Msg("reader exited")
}
