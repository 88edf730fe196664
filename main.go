package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/carrotRakko/koyomi-bot/pkg/ephemeris"
	"github.com/carrotRakko/koyomi-bot/pkg/handlers"
	"github.com/carrotRakko/koyomi-bot/pkg/koyomi"
	"github.com/carrotRakko/koyomi-bot/pkg/metrics"
	"github.com/carrotRakko/koyomi-bot/pkg/suntimes"
)

type Config struct {
	Port   string `default:"8080"`
	Prefix string `default:"/"`
	Label  string `default:"dev-daily"`
}

func main() {
	_ = godotenv.Load()

	var env Config
	if err := envconfig.Process("", &env); err != nil {
		log.Fatal(err.Error())
	}

	table, err := koyomi.Load()
	if err != nil {
		log.Fatalf("Failed to load sekki table: %v", err)
	}

	r := mux.NewRouter().StrictSlash(true)
	r.Handle("/metrics", promhttp.Handler())

	s := r.PathPrefix(env.Prefix).Subrouter()
	handlers.Register(s, handlers.Env{
		Table: table,
		Sun:   ephemeris.Meeus{},
		Place: suntimes.Tokyo,
		Label: env.Label,
	})

	srv := &http.Server{
		Handler:      metrics.LatencyHandler(r),
		Addr:         "0.0.0.0:" + env.Port,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}
	log.Printf("Listening and serving on %s%s", srv.Addr, env.Prefix)
	log.Fatal(srv.ListenAndServe())
}
