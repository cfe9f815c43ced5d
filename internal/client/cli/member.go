package cli

import (
	"context"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/keyfold/keyfold/internal/client/keychain"
	"github.com/keyfold/keyfold/internal/client/models"
	"github.com/keyfold/keyfold/internal/common"
	"github.com/keyfold/keyfold/internal/cryptox"
)

// AddMember grants a user access to a conversation by wrapping the
// current epoch key under the user's public key. The visible-from epoch
// decides how much history the new member can reach; an empty answer
// grants the current epoch onwards only.
func (a *App) AddMember(ctx context.Context) error {
	if !a.isUnlocked() {
		fmt.Println("Unlock the identity first ('unlock')")
		return nil
	}

	conversationID, err := getSimpleText(a.reader, "Enter conversation id", os.Stdout)
	if err != nil {
		return err
	}
	userID, err := getSimpleText(a.reader, "Enter user id to add", os.Stdout)
	if err != nil {
		return err
	}
	memberPub, err := a.askPublicKey("Enter member public key (hex)")
	if err != nil {
		return err
	}
	privilege, err := a.askPrivilege("member")
	if err != nil {
		return err
	}
	visibleFrom, err := a.askVisibleFrom()
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
	if visibleFrom == 0 {
		visibleFrom = chain.CurrentEpoch
	}

	currentKey, ok := keys[chain.CurrentEpoch]
	if !ok {
		return fmt.Errorf("no key recovered for current epoch %d", chain.CurrentEpoch)
	}

	wrap, err := cryptox.WrapKey(memberPub, currentKey)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	result, err := a.api.AddMember(ctx, conversationID, &models.NewMember{
		UserID:           userID,
		PublicKey:        memberPub,
		Privilege:        privilege,
		VisibleFromEpoch: visibleFrom,
		CurrentEpochID:   chain.CurrentEpochID,
		WrappedKey:       wrap,
	})
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if result.Created {
		fmt.Printf("Member %s added\n", result.MemberID)
	} else {
		fmt.Printf("User already holds membership %s\n", result.MemberID)
	}
	return nil
}

// RemoveMember closes a membership. The remaining members get a fresh
// epoch in the same call so the removed key cannot follow the
// conversation forward.
func (a *App) RemoveMember(ctx context.Context) error {
	if !a.isUnlocked() {
		fmt.Println("Unlock the identity first ('unlock')")
		return nil
	}

	conversationID, err := getSimpleText(a.reader, "Enter conversation id", os.Stdout)
	if err != nil {
		return err
	}
	memberID, err := getSimpleText(a.reader, "Enter member id to remove", os.Stdout)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	defer cancel()

	rotation, err := a.rotationExcluding(ctx, conversationID, memberID)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	defer common.WipeByteArray(rotation.NewEpochPrivateKey)

	result, err := a.api.RemoveMember(ctx, conversationID, memberID, rotation)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if !result.Removed {
		fmt.Println("Membership already closed")
		return nil
	}
	if result.Rotation != nil {
		fmt.Printf("Member removed, conversation now at epoch %d\n", result.Rotation.NewEpochNumber)
	} else {
		fmt.Println("Member removed")
	}
	return nil
}

// rotationExcluding builds an epoch advance whose wrap set covers every
// active member except the one being cut off.
func (a *App) rotationExcluding(ctx context.Context, conversationID, memberID string) (*models.Rotation, error) {
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

	remaining := make([]*models.Member, 0, len(members))
	for _, m := range members {
		if m.MemberID != memberID {
			remaining = append(remaining, m)
		}
	}

	return keychain.BuildRotation(chain.CurrentEpoch, currentKey, remaining, title)
}

// askPublicKey prompts for a hex-encoded public key.
func (a *App) askPublicKey(prompt string) ([]byte, error) {
	s, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return nil, err
	}
	key, err := hex.DecodeString(s)
	if err != nil {
		log.Printf("error: %v", err)
		return nil, err
	}
	return key, nil
}

// askPrivilege prompts for a privilege, falling back to def on an empty
// answer.
func (a *App) askPrivilege(def string) (string, error) {
	s, err := getSimpleText(a.reader, "Enter privilege (owner/member/viewer)", os.Stdout)
	if err != nil {
		return "", err
	}
	if s == "" {
		return def, nil
	}
	return s, nil
}

// askVisibleFrom prompts for the visible-from epoch. An empty answer
// stands for "current epoch" and is reported as 0 for the caller to
// resolve once the chain is known.
func (a *App) askVisibleFrom() (int64, error) {
	s, err := getSimpleText(a.reader, "Enter visible-from epoch (empty = current)", os.Stdout)
	if err != nil {
		return 0, err
	}
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		log.Printf("error: %v", err)
		return 0, err
	}
	return v, nil
}
