// tokengen mints an HS256 access token for local development and smoke
// testing.  Production tokens come from the identity provider; this tool
// only works against environments sharing the same JWT_SECRET.
//
// Usage:
//
//	tokengen -sub casting-director -perms read:actors,write:actors
//	tokengen -sub executive-producer -all
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/iliyamo/casting-agency/internal/auth"
	"github.com/iliyamo/casting-agency/internal/utils"
)

func main() {
	sub := flag.String("sub", "dev", "token subject")
	perms := flag.String("perms", "", "comma-separated permission list")
	all := flag.Bool("all", false, "grant every permission")
	ttl := flag.Int("ttl", 60, "token lifetime in minutes")
	flag.Parse()

	_ = godotenv.Load()
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	var granted []auth.Permission
	if *all {
		granted = auth.All()
	} else {
		for _, s := range strings.Split(*perms, ",") {
			if s = strings.TrimSpace(s); s != "" {
				granted = append(granted, auth.Permission(s))
			}
		}
	}

	tok, err := utils.NewAccessToken(secret, *sub, granted, *ttl)
	if err != nil {
		log.Fatalf("mint failed: %v", err)
	}
	fmt.Println(tok.Token)
}
