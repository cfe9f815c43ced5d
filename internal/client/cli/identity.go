package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/keyfold/keyfold/internal/common"
	"github.com/keyfold/keyfold/internal/cryptox"
)

// getSimpleText and getPassphrase are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassphrase = GetPassphrase

// Unlock opens the passphrase-sealed identity file named in the config
// and keeps the member's key pair in memory for the session. If the file
// does not exist yet, a fresh identity is generated and sealed to disk
// under the entered passphrase.
//
// The passphrase byte slice is securely wiped before returning.
func (a *App) Unlock(ctx context.Context) error {
	passphrase, err := getPassphrase(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(passphrase)

	blob, err := os.ReadFile(a.config.IdentityFile)
	if errors.Is(err, os.ErrNotExist) {
		return a.createIdentity(passphrase)
	}
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	priv, err := cryptox.OpenIdentity(passphrase, blob)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	pub, err := cryptox.PublicKey(priv)
	if err != nil {
		return err
	}

	a.identityPriv = priv
	a.identityPub = pub
	log.Printf("Identity unlocked, public key %x", pub)
	return nil
}

// createIdentity generates a fresh key pair and seals it to the
// configured identity file.
func (a *App) createIdentity(passphrase []byte) error {
	priv, pub, err := cryptox.GenerateKeyPair()
	if err != nil {
		return err
	}

	blob, err := cryptox.SealIdentity(passphrase, priv)
	if err != nil {
		return err
	}
	if err := os.WriteFile(a.config.IdentityFile, blob, 0o600); err != nil {
		log.Printf("error: %v", err)
		return err
	}

	a.identityPriv = priv
	a.identityPub = pub
	log.Printf("New identity sealed to %s, public key %x", a.config.IdentityFile, pub)
	return nil
}

// Token reads an access token from the prompt and attaches it to every
// following server call. Startup also honors the KEYFOLD_ACCESS_TOKEN
// environment variable.
func (a *App) Token(ctx context.Context) error {
	token, err := getSimpleText(a.reader, "Paste access token", os.Stdout)
	if err != nil {
		return err
	}
	if token == "" {
		fmt.Println("Token unchanged")
		return nil
	}

	a.setToken(token)
	fmt.Println("Token set")
	return nil
}
