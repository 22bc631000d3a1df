package main

import (
	"log"

	"github.com/joho/godotenv"

	"homebanking-sim/internal/config"
	httpserver "homebanking-sim/internal/http"
	"homebanking-sim/internal/ledger"
	"homebanking-sim/internal/seed"
	"homebanking-sim/internal/session"
)

func main() {
	_ = godotenv.Load(".env")
	cfg := config.Load()

	data, err := seed.Load()
	if err != nil {
		log.Fatalf("seed: %v", err)
	}

	l := ledger.New(cfg, data)
	sess := session.New(cfg, data.Users)

	r := httpserver.NewServer(cfg, l, sess)
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
