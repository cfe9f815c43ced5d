// Package keychain implements the client half of the epoch key protocol:
// recovering every reachable epoch key from a fetched key chain and
// preparing the material for conversation creation and rotation.
package keychain

import (
	"errors"
	"fmt"

	"github.com/keyfold/keyfold/internal/client/models"
	"github.com/keyfold/keyfold/internal/cryptox"
)

var (
	// ErrNoWraps means the key chain holds no wrap for this member, so
	// there is no entry point into the chain.
	ErrNoWraps = errors.New("key chain contains no wraps")

	// ErrMissingConfirmation means an epoch in the walk has no stored
	// confirmation hash to check the recovered key against.
	ErrMissingConfirmation = errors.New("missing confirmation hash")

	// ErrConfirmationMismatch means a recovered private key failed its
	// confirmation hash check.
	ErrConfirmationMismatch = errors.New("confirmation hash mismatch")
)

// Recover unwraps the newest wrap with the member's private key and walks
// the chain links backward, checking every recovered key against its
// confirmation hash. It returns a map from epoch number to epoch private
// key covering every epoch the member is entitled to.
func Recover(chain *models.KeyChain, memberPriv []byte) (map[int64][]byte, error) {
	if len(chain.Wraps) == 0 {
		return nil, ErrNoWraps
	}

	newest := chain.Wraps[0]
	for _, w := range chain.Wraps[1:] {
		if w.EpochNumber > newest.EpochNumber {
			newest = w
		}
	}

	confirmations := make(map[int64][]byte, len(chain.Confirmations))
	for _, c := range chain.Confirmations {
		confirmations[c.EpochNumber] = c.ConfirmationHash
	}

	links := make(map[int64][]byte, len(chain.ChainLinks))
	for _, l := range chain.ChainLinks {
		links[l.EpochNumber] = l.ChainLink
	}

	priv, err := cryptox.UnwrapKey(memberPriv, newest.WrappedKey)
	if err != nil {
		return nil, fmt.Errorf("epoch %d: unwrap: %w", newest.EpochNumber, err)
	}

	keys := map[int64][]byte{}

	epoch := newest.EpochNumber
	for {
		if err := confirm(epoch, priv, confirmations); err != nil {
			return nil, err
		}
		keys[epoch] = priv

		link, ok := links[epoch]
		if !ok {
			break
		}
		prev, err := cryptox.TraverseChainLink(priv, link)
		if err != nil {
			return nil, fmt.Errorf("epoch %d: traverse: %w", epoch, err)
		}
		priv = prev
		epoch--
	}

	return keys, nil
}

func confirm(epoch int64, priv []byte, confirmations map[int64][]byte) error {
	hash, ok := confirmations[epoch]
	if !ok {
		return fmt.Errorf("epoch %d: %w", epoch, ErrMissingConfirmation)
	}
	if !cryptox.VerifyConfirmationHash(priv, hash) {
		return fmt.Errorf("epoch %d: %w", epoch, ErrConfirmationMismatch)
	}
	return nil
}

// BuildRotation prepares the material to advance a conversation from
// currentEpoch: a fresh keypair, the backward chain link, a wrap of the
// new private key for every active member, and the title resealed under
// the new key.
func BuildRotation(currentEpoch int64, currentPriv []byte, members []*models.Member, title []byte) (*models.Rotation, error) {
	newPriv, newPub, err := cryptox.GenerateKeyPair()
	if err != nil {
		return nil, err
	}

	link, err := cryptox.DeriveChainLink(newPriv, currentPriv)
	if err != nil {
		return nil, err
	}

	wraps := make([]models.MemberWrap, 0, len(members))
	for _, m := range members {
		w, err := cryptox.WrapKey(m.PublicKey, newPriv)
		if err != nil {
			return nil, fmt.Errorf("wrap for %s: %w", m.MemberID, err)
		}
		wraps = append(wraps, models.MemberWrap{MemberPublicKey: m.PublicKey, WrappedKey: w})
	}

	sealed, err := cryptox.EncryptTitle(newPriv, title)
	if err != nil {
		return nil, err
	}

	return &models.Rotation{
		ExpectedEpoch:       currentEpoch,
		NewEpochPublicKey:   newPub,
		NewEpochPrivateKey:  newPriv,
		NewConfirmationHash: cryptox.MakeConfirmationHash(newPriv),
		NewChainLink:        link,
		MemberWraps:         wraps,
		NewEncryptedTitle:   sealed,
	}, nil
}

// BuildSeed prepares everything the server needs to create a conversation
// at epoch 1: the first epoch keypair, its confirmation hash, the title
// sealed under it, and the creator's wrap.
func BuildSeed(creatorPub, title []byte) (*models.ConversationSeed, error) {
	epochPriv, epochPub, err := cryptox.GenerateKeyPair()
	if err != nil {
		return nil, err
	}

	wrap, err := cryptox.WrapKey(creatorPub, epochPriv)
	if err != nil {
		return nil, err
	}

	sealed, err := cryptox.EncryptTitle(epochPriv, title)
	if err != nil {
		return nil, err
	}

	return &models.ConversationSeed{
		EncryptedTitle:    sealed,
		CreatorPublicKey:  creatorPub,
		EpochPublicKey:    epochPub,
		EpochPrivateKey:   epochPriv,
		ConfirmationHash:  cryptox.MakeConfirmationHash(epochPriv),
		CreatorWrappedKey: wrap,
	}, nil
}
