// Command devtoken mints a development access token for the KeyFold CLI.
// It shares the server configuration, so the secret key and validity are
// set the same way as for the server binary (-s, -t, config file).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/keyfold/keyfold/internal/flagx"
	"github.com/keyfold/keyfold/internal/server/auth"
	"github.com/keyfold/keyfold/internal/server/config"
)

func main() {

	args := flagx.FilterArgs(os.Args[1:], []string{"-user"})

	fs := flag.NewFlagSet("devtoken", flag.ContinueOnError)
	userID := fs.String("user", "", "user id to mint the token for")
	if err := fs.Parse(args); err != nil {
		log.Fatalf("%v", err)
	}

	if *userID == "" {
		log.Fatal("user id is required (-user)")
	}

	cfg := config.LoadConfig()

	token, err := auth.GenerateToken(*userID, []byte(cfg.SecretKey), cfg.AccessTokenValidityDuration)
	if err != nil {
		log.Fatalf("%v", err)
	}

	fmt.Println(token)
}
