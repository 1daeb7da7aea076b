// cmd/token/main.go
// Mints an API token for a dashboard client, signed with JWT_SECRET.
//
// Usage:
//
//	go run ./cmd/token -client dashboard -ttl 720h
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/padraicbc/f1analytics/config"
	mw "github.com/padraicbc/f1analytics/middleware"
)

func main() {
	client := flag.String("client", "", "client name (required)")
	ttl := flag.Duration("ttl", 30*24*time.Hour, "token lifetime")
	flag.Parse()

	if *client == "" {
		log.Fatal("-client is required")
	}

	cfg := config.Load()
	if !cfg.AuthEnabled() {
		log.Fatal("JWT_SECRET must be set to mint tokens")
	}

	tok, err := mw.NewToken(cfg.JWTKey(), *client, *ttl)
	if err != nil {
		log.Fatal("sign token:", err)
	}

	fmt.Println(tok)
}
