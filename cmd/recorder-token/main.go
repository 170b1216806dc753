// Command recorder-token mints a bearer token that attributes ledger writes
// to a named recorder. It signs with the same JWT_SECRET the server uses.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/mmynk/carnival/internal/auth"
	"github.com/mmynk/carnival/internal/config"
)

func main() {
	recorder := flag.String("recorder", "", "Name recorded on expenses and payments (mandatory)")
	participantID := flag.String("participant", "", "Participant ID the recorder acts as (optional)")
	ttl := flag.Duration("ttl", 30*24*time.Hour, "Token lifetime (optional, default: 720h)")

	flag.Parse()

	if *recorder == "" {
		fmt.Println("Usage: recorder-token -recorder <name> [-participant <id>] [-ttl <duration>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	manager, err := auth.NewJWTManager(cfg.JWTSecret, *ttl)
	if err != nil {
		log.Fatalf("JWT_SECRET is not set: %v", err)
	}

	token, err := manager.Generate(*recorder, *participantID)
	if err != nil {
		log.Fatalf("Failed to sign token: %v", err)
	}

	fmt.Println(token)
}
