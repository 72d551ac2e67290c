package main

import (
	"log"
	"net/http"

	"prefsty/config"
	"prefsty/server"
	"prefsty/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err.Error())
	}

	s := server.NewServer(store.NewInMemoryGameStore(), cfg)

	log.Printf("Listening on %s...", cfg.Addr())
	log.Fatal(http.ListenAndServe(cfg.Addr(), s))
}
