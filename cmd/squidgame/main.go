package main

import (
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/dgraph-io/badger/v3"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/MrSolution07/SquidGame/pkg/domain"
	"github.com/MrSolution07/SquidGame/pkg/export"
	"github.com/MrSolution07/SquidGame/pkg/games"
	"github.com/MrSolution07/SquidGame/pkg/render"
	"github.com/MrSolution07/SquidGame/pkg/sim"
)

func main() {
	serve := flag.Bool("serve", false, "serve stored reports over http instead of running one game")
	players := flag.Int("players", 20, "number of players")
	seed := flag.Int64("seed", 0, "random seed, 0 draws a fresh one")
	maxRounds := flag.Int("rounds", 100, "maximum number of rounds")
	lightCycle := flag.Int("light-cycle", 1, "rounds per light phase")
	jsonOut := flag.String("out", "squid_game_stats.json", "json report file, empty to skip")
	csvOut := flag.String("csv", "", "csv round log file, empty to skip")
	verbose := flag.Bool("v", false, "print every round")
	flag.Parse()

	if *serve {
		runServer()
		return
	}

	runOnce(*players, *seed, *maxRounds, *lightCycle, *jsonOut, *csvOut, *verbose)
}

// runOnce plays a single game and writes its report to stdout and the
// requested files.
func runOnce(players int, seed int64, maxRounds, lightCycle int, jsonOut, csvOut string, verbose bool) {
	cfg := domain.DefaultConfig()
	cfg.Players = players
	cfg.Seed = seed
	cfg.MaxRounds = maxRounds
	cfg.LightCycle = lightCycle

	eng, err := sim.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid game config")
	}

	start := time.Now()
	out := eng.Run()
	report := domain.NewReport(eng.Config(), out.Result, out.Rounds, time.Since(start))

	render.NewConsole(os.Stdout, verbose).Render(report)

	if jsonOut != "" {
		if err := export.WriteJSON(jsonOut, report); err != nil {
			log.Fatal().Err(err).Msg("failed to export json report")
		}
		log.Info().Str("file", jsonOut).Msg("json report written")
	}

	if csvOut != "" {
		if err := export.WriteCSV(csvOut, report); err != nil {
			log.Fatal().Err(err).Msg("failed to export csv round log")
		}
		log.Info().Str("file", csvOut).Msg("csv round log written")
	}
}

// runServer keeps played games in badger and serves them over http.
func runServer() {
	cfg, err := games.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// open database
	opts := badger.DefaultOptions(cfg.DataDir).WithLoggingLevel(badger.ERROR)
	db, err := badger.Open(opts)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open db")
	}

	svc := games.NewService(db)
	svc.ListLimit = cfg.ListLimit

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Post("/games", svc.RunGameHttp)
	r.Get("/games", svc.ListReportsHttp)
	r.Get("/games/{id}", svc.GetReportHttp)

	// graceful shutdown
	defer func() {
		// database compact and stop
		log.Err(db.Flatten(4)).Msg("flatten on stop")
		log.Err(db.RunValueLogGC(0.5)).Msg("run value log gc")
		if err = db.Close(); err != nil {
			log.Err(err).Msg("failed to close badger db")
		}

		log.Info().Msg("squidgame stopped")
	}()

	log.Info().Str("addr", cfg.Addr).Msg("serving game reports")
	if err = http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Err(err).Msg("failed to close")
		return
	}
}
