package main

import (
	"flag"
	"log"

	lib "github.com/agrorede/facility-locator"
	"github.com/agrorede/facility-locator/config"
	"github.com/agrorede/facility-locator/genetic"
	"github.com/agrorede/facility-locator/geo"
	"github.com/agrorede/facility-locator/network"
)

func main() {
	roadsPath := flag.String("roads", "", "road network GeoJSON path (overrides config)")
	port := flag.Int("port", 0, "HTTP port (overrides config)")
	flag.Parse()

	lib.InitLogging()
	if err := config.LoadAppConfig(); err != nil {
		panic(err)
	}
	cfg := config.Config
	if *roadsPath != "" {
		cfg.Network.RoadsPath = *roadsPath
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}

	segments, err := geo.LoadRoadSegments(cfg.Network.RoadsPath)
	if err != nil {
		log.Fatalf("loading road network from %s: %v", cfg.Network.RoadsPath, err)
	}
	model := network.CostModel{
		PricePerKM:          cfg.Costs.PricePerKM,
		FixedConnectionCost: cfg.Costs.FixedConnectionCost,
		SurfaceMultipliers:  cfg.Costs.SurfaceMultipliers,
		DefaultMultiplier:   cfg.Costs.DefaultMultiplier,
	}
	base, err := network.Build(segments, model)
	if err != nil {
		// No nodes means no request can ever be served.
		log.Fatalf("building road graph: %v", err)
	}
	log.Printf("road graph ready: %d nodes, %d edges", base.NumVertices(), base.NumEdges())

	locator := lib.NewLocator(base, model, genetic.Params{
		Generations:    cfg.Search.Generations,
		PopulationSize: cfg.Search.PopulationSize,
		MutationRate:   cfg.Search.MutationRate,
		Workers:        cfg.Search.Workers,
	}, cfg.Search.Seed)

	srv := lib.NewServer(locator, cfg.Server.Port, nil)
	srv.Start()
	srv.HandleGracefulShutdown()
}
