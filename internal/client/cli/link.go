package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/keyfold/keyfold/internal/client/models"
	"github.com/keyfold/keyfold/internal/common"
	"github.com/keyfold/keyfold/internal/cryptox"
)

// AddLink creates an invite link for a conversation. The link gets its
// own key pair; the private half is printed once as the link secret and
// never stored anywhere.
func (a *App) AddLink(ctx context.Context) error {
	if !a.isUnlocked() {
		fmt.Println("Unlock the identity first ('unlock')")
		return nil
	}

	conversationID, err := getSimpleText(a.reader, "Enter conversation id", os.Stdout)
	if err != nil {
		return err
	}
	displayName, err := getSimpleText(a.reader, "Enter link display name", os.Stdout)
	if err != nil {
		return err
	}
	privilege, err := a.askPrivilege("viewer")
	if err != nil {
		return err
	}
	visibleFrom, err := a.askVisibleFrom()
	if err != nil {
		return err
	}

	linkPriv, linkPub, err := cryptox.GenerateKeyPair()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(linkPriv)

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

	wrap, err := cryptox.WrapKey(linkPub, currentKey)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	result, err := a.api.CreateLink(ctx, conversationID, &models.NewLink{
		DisplayName:      displayName,
		PublicKey:        linkPub,
		Privilege:        privilege,
		VisibleFromEpoch: visibleFrom,
		CurrentEpochID:   chain.CurrentEpochID,
		WrappedKey:       wrap,
	})
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if !result.Created {
		fmt.Printf("Link already exists (%s)\n", result.LinkID)
		return nil
	}
	fmt.Printf("Link %s created, membership %s\n", result.LinkID, result.MemberID)
	fmt.Printf("Link secret (share once, not recoverable): %x\n", linkPriv)
	return nil
}

// RevokeLink revokes an invite link and rotates the remaining members
// onto a fresh epoch. The link's membership id is needed to leave it out
// of the new wrap set; both ids are printed by addlink and members.
func (a *App) RevokeLink(ctx context.Context) error {
	if !a.isUnlocked() {
		fmt.Println("Unlock the identity first ('unlock')")
		return nil
	}

	conversationID, err := getSimpleText(a.reader, "Enter conversation id", os.Stdout)
	if err != nil {
		return err
	}
	linkID, err := getSimpleText(a.reader, "Enter link id to revoke", os.Stdout)
	if err != nil {
		return err
	}
	memberID, err := getSimpleText(a.reader, "Enter the link's member id", os.Stdout)
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

	result, err := a.api.RevokeLink(ctx, conversationID, linkID, rotation)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if !result.Revoked {
		fmt.Println("Link unknown or already revoked")
		return nil
	}
	if result.Rotation != nil {
		fmt.Printf("Link revoked, conversation now at epoch %d\n", result.Rotation.NewEpochNumber)
	} else {
		fmt.Println("Link revoked (held no membership)")
	}
	return nil
}

// LinkPrivilege changes the privilege on a link's membership. No key
// material is involved, so an unlocked identity is not required.
func (a *App) LinkPrivilege(ctx context.Context) error {
	conversationID, err := getSimpleText(a.reader, "Enter conversation id", os.Stdout)
	if err != nil {
		return err
	}
	linkID, err := getSimpleText(a.reader, "Enter link id", os.Stdout)
	if err != nil {
		return err
	}
	privilege, err := a.askPrivilege("viewer")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	defer cancel()

	result, err := a.api.ChangeLinkPrivilege(ctx, conversationID, linkID, privilege)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if !result.Changed {
		fmt.Println("Link unknown")
		return nil
	}
	if result.MemberID == "" {
		fmt.Println("Link holds no active membership")
		return nil
	}
	fmt.Printf("Privilege updated for membership %s\n", result.MemberID)
	return nil
}
