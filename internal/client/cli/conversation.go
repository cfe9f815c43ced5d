package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/keyfold/keyfold/internal/client/keychain"
	"github.com/keyfold/keyfold/internal/client/models"
	"github.com/keyfold/keyfold/internal/common"
	"github.com/keyfold/keyfold/internal/cryptox"
)

// Create starts a new conversation with the caller as owner, sealing the
// title under a client-generated first epoch key.
func (a *App) Create(ctx context.Context) error {
	if !a.isUnlocked() {
		fmt.Println("Unlock the identity first ('unlock')")
		return nil
	}

	title, err := getSimpleText(a.reader, "Enter conversation title", os.Stdout)
	if err != nil {
		return err
	}

	seed, err := keychain.BuildSeed(a.identityPub, []byte(title))
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	defer common.WipeByteArray(seed.EpochPrivateKey)

	ctx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	defer cancel()

	conv, err := a.api.CreateConversation(ctx, seed)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	fmt.Printf("Conversation %s created at epoch %d\n", conv.ConversationID, conv.CurrentEpoch)
	return nil
}

// KeyChain fetches the caller's view of a conversation's key chain,
// recovers every reachable epoch key and prints the decrypted title.
func (a *App) KeyChain(ctx context.Context) error {
	if !a.isUnlocked() {
		fmt.Println("Unlock the identity first ('unlock')")
		return nil
	}

	conversationID, err := getSimpleText(a.reader, "Enter conversation id", os.Stdout)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	defer cancel()

	chain, keys, err := a.recoverChain(ctx, conversationID)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	fmt.Printf("Current epoch: %d (%s)\n", chain.CurrentEpoch, chain.CurrentEpochID)
	fmt.Printf("Recovered keys for %d epoch(s)\n", len(keys))

	title, err := a.currentTitle(chain, keys)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if title != nil {
		fmt.Printf("Title: %s\n", title)
	}
	return nil
}

// Members lists a conversation's active members and invite links.
func (a *App) Members(ctx context.Context) error {
	conversationID, err := getSimpleText(a.reader, "Enter conversation id", os.Stdout)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	defer cancel()

	members, err := a.api.ActiveMembers(ctx, conversationID)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	for _, m := range members {
		fmt.Printf("%s  %s/%s  visible from epoch %d  key %x\n",
			m.MemberID, m.Kind, m.Privilege, m.VisibleFromEpoch, m.PublicKey)
	}
	return nil
}

// Rotate advances a conversation to a fresh epoch, rewrapping the new
// key for every active member and resealing the title.
func (a *App) Rotate(ctx context.Context) error {
	if !a.isUnlocked() {
		fmt.Println("Unlock the identity first ('unlock')")
		return nil
	}

	conversationID, err := getSimpleText(a.reader, "Enter conversation id", os.Stdout)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	defer cancel()

	result, err := a.rotate(ctx, conversationID)
	if err != nil {
		if errors.Is(err, common.ErrStaleEpoch) {
			fmt.Println("Conversation moved on; run the command again")
		}
		log.Printf("error: %v", err)
		return err
	}

	fmt.Printf("Rotated to epoch %d (%s)\n", result.NewEpochNumber, result.NewEpochID)
	return nil
}

// rotate builds and submits one epoch advance for the conversation,
// wrapping the fresh key for the current active member set.
func (a *App) rotate(ctx context.Context, conversationID string) (*models.RotationResult, error) {
	chain, keys, err := a.recoverChain(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	currentKey, ok := keys[chain.CurrentEpoch]
	if !ok {
		return nil, fmt.Errorf("no key recovered for current epoch %d", chain.CurrentEpoch)
	}

	title, err := a.currentTitle(chain, keys)
	if err != nil {
		return nil, err
	}

	members, err := a.api.ActiveMembers(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	rotation, err := keychain.BuildRotation(chain.CurrentEpoch, currentKey, members, title)
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(rotation.NewEpochPrivateKey)

	return a.api.Rotate(ctx, conversationID, rotation)
}

// recoverChain fetches the caller's key chain for a conversation and
// recovers every epoch key reachable from it.
func (a *App) recoverChain(ctx context.Context, conversationID string) (*models.KeyChain, map[int64][]byte, error) {
	chain, err := a.api.KeyChain(ctx, conversationID, a.identityPub)
	if err != nil {
		return nil, nil, err
	}

	keys, err := keychain.Recover(chain, a.identityPriv)
	if err != nil {
		return nil, nil, err
	}
	return chain, keys, nil
}

// currentTitle decrypts the stored title with the epoch key it was
// sealed under. A conversation without a title yields nil.
func (a *App) currentTitle(chain *models.KeyChain, keys map[int64][]byte) ([]byte, error) {
	if len(chain.EncryptedTitle) == 0 {
		return nil, nil
	}
	key, ok := keys[chain.TitleEpochNumber]
	if !ok {
		return nil, fmt.Errorf("no key recovered for title epoch %d", chain.TitleEpochNumber)
	}
	return cryptox.DecryptTitle(key, chain.EncryptedTitle)
}
