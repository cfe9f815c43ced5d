package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"

	"github.com/keyfold/keyfold/internal/client/client"
	"github.com/keyfold/keyfold/internal/client/config"
)

// accessTokenEnv names the environment variable checked at startup for a
// ready access token, so scripted runs can skip the token command.
const accessTokenEnv = "KEYFOLD_ACCESS_TOKEN"

type App struct {
	config       *config.Config
	api          client.Client
	identityPriv []byte
	identityPub  []byte
	accessToken  string
	reader       *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	apiClient, err := client.NewKeyFoldClientService(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}

	a := &App{config: c, api: apiClient, reader: bufio.NewReader(os.Stdin)}

	if token := os.Getenv(accessTokenEnv); token != "" {
		a.setToken(token)
	}

	return a, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.api.Close()
	a.Root(ctx)
}

func (a *App) isUnlocked() bool {
	return a.identityPriv != nil
}

func (a *App) setToken(token string) {
	a.accessToken = token
	a.api.SetAccessToken(token)
}

// Ping checks server availability.
func (a *App) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	defer cancel()

	if err := a.api.Ping(ctx); err != nil {
		log.Printf("error: %v", err)
		return err
	}

	fmt.Println("Server is up")
	return nil
}
