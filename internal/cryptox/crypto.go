// Package cryptox implements the key material primitives used by KeyFold
// clients: epoch keypair generation, wrapping epoch private keys for
// members, backward chain links between epochs, title encryption, and the
// passphrase-protected identity file.
//
// The server stores wraps, confirmation hashes and chain links as opaque
// bytes and never calls into this package.
package cryptox

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/curve25519"
	"golang.org/x/crypto/hkdf"

	"github.com/keyfold/keyfold/internal/common"
)

const (
	// KeySize is the length of X25519 public and private keys.
	KeySize = 32

	nonceSize        = chacha20poly1305.NonceSize
	tagSize          = chacha20poly1305.Overhead
	identitySaltSize = 16
)

var (
	// ErrWrongPassphrase is returned when an identity file cannot be
	// opened with the supplied passphrase.
	ErrWrongPassphrase = errors.New("wrong passphrase or corrupted identity")

	errMalformedWrap = errors.New("malformed wrapped key")
	errMalformedLink = errors.New("malformed chain link")
	errMalformedBlob = errors.New("malformed encrypted blob")
)

var (
	labelWrap       = []byte("keyfold/wrap")
	labelChain      = []byte("keyfold/chain")
	labelTitle      = []byte("keyfold/title")
	labelAttachment = []byte("keyfold/attachment")
)

// GenerateKeyPair returns a fresh X25519 key pair. The private key is
// clamped per RFC 7748. The same shape serves both long-term member
// identities and per-epoch conversation keys.
func GenerateKeyPair() (priv, pub []byte, err error) {
	priv = make([]byte, KeySize)
	if _, err = rand.Read(priv); err != nil {
		return nil, nil, err
	}
	priv[0] &= 248
	priv[31] &= 127
	priv[31] |= 64

	pub, err = PublicKey(priv)
	if err != nil {
		return nil, nil, err
	}
	return priv, pub, nil
}

// PublicKey derives the X25519 public key for priv.
func PublicKey(priv []byte) ([]byte, error) {
	return curve25519.X25519(priv, curve25519.Basepoint)
}

// WrapKey encrypts an epoch private key to the holder of recipientPub.
// The output layout is ephemeralPub || nonce || box; only the matching
// recipient private key can unwrap it.
func WrapKey(recipientPub, epochPriv []byte) ([]byte, error) {
	ephPriv, ephPub, err := GenerateKeyPair()
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(ephPriv)

	shared, err := curve25519.X25519(ephPriv, recipientPub)
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(shared)

	key, err := deriveKey(shared, labelWrap)
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}

	nonce := common.GenerateRandByteArray(nonceSize)
	out := make([]byte, 0, KeySize+nonceSize+len(epochPriv)+tagSize)
	out = append(out, ephPub...)
	out = append(out, nonce...)
	return aead.Seal(out, nonce, epochPriv, ephPub), nil
}

// UnwrapKey reverses WrapKey using the recipient's private key.
func UnwrapKey(recipientPriv, wrap []byte) ([]byte, error) {
	if len(wrap) < KeySize+nonceSize+tagSize {
		return nil, errMalformedWrap
	}
	ephPub := wrap[:KeySize]
	nonce := wrap[KeySize : KeySize+nonceSize]
	box := wrap[KeySize+nonceSize:]

	shared, err := curve25519.X25519(recipientPriv, ephPub)
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(shared)

	key, err := deriveKey(shared, labelWrap)
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	return aead.Open(nil, nonce, box, ephPub)
}

// MakeConfirmationHash returns the hash stored alongside an epoch so that
// a holder of the epoch private key can prove possession.
func MakeConfirmationHash(epochPriv []byte) []byte {
	h := sha256.Sum256(epochPriv)
	return h[:]
}

// VerifyConfirmationHash reports whether epochPriv matches hash.
func VerifyConfirmationHash(epochPriv, hash []byte) bool {
	got := sha256.Sum256(epochPriv)
	return hmac.Equal(got[:], hash)
}

// DeriveChainLink produces the value that, combined with currPriv, yields
// prevPriv. The link is recorded on the newer epoch so members can walk
// conversation history backward. Layout: nonce || box.
func DeriveChainLink(currPriv, prevPriv []byte) ([]byte, error) {
	key, err := deriveKey(currPriv, labelChain)
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}

	nonce := common.GenerateRandByteArray(nonceSize)
	out := make([]byte, 0, nonceSize+len(prevPriv)+tagSize)
	out = append(out, nonce...)
	return aead.Seal(out, nonce, prevPriv, nil), nil
}

// TraverseChainLink recovers the previous epoch's private key from the
// current epoch's private key and the link recorded on the current epoch.
func TraverseChainLink(currPriv, link []byte) ([]byte, error) {
	if len(link) < nonceSize+tagSize {
		return nil, errMalformedLink
	}
	nonce := link[:nonceSize]
	box := link[nonceSize:]

	key, err := deriveKey(currPriv, labelChain)
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	return aead.Open(nil, nonce, box, nil)
}

// EncryptTitle seals a conversation title under the given epoch private
// key. Layout: nonce || box.
func EncryptTitle(epochPriv, title []byte) ([]byte, error) {
	key, err := deriveKey(epochPriv, labelTitle)
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}

	nonce := common.GenerateRandByteArray(nonceSize)
	out := make([]byte, 0, nonceSize+len(title)+tagSize)
	out = append(out, nonce...)
	return aead.Seal(out, nonce, title, nil), nil
}

// DecryptTitle opens a title blob produced by EncryptTitle.
func DecryptTitle(epochPriv, blob []byte) ([]byte, error) {
	if len(blob) < nonceSize+tagSize {
		return nil, errMalformedBlob
	}
	nonce := blob[:nonceSize]
	box := blob[nonceSize:]

	key, err := deriveKey(epochPriv, labelTitle)
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	return aead.Open(nil, nonce, box, nil)
}

// EncryptAttachment seals attachment bytes under an epoch private key
// before upload to object storage. The label keeps attachment keys
// separate from title keys derived from the same epoch. Layout:
// nonce || box.
func EncryptAttachment(epochPriv, data []byte) ([]byte, error) {
	key, err := deriveKey(epochPriv, labelAttachment)
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}

	nonce := common.GenerateRandByteArray(nonceSize)
	out := make([]byte, 0, nonceSize+len(data)+tagSize)
	out = append(out, nonce...)
	return aead.Seal(out, nonce, data, nil), nil
}

// DecryptAttachment opens a blob produced by EncryptAttachment.
func DecryptAttachment(epochPriv, blob []byte) ([]byte, error) {
	if len(blob) < nonceSize+tagSize {
		return nil, errMalformedBlob
	}
	nonce := blob[:nonceSize]
	box := blob[nonceSize:]

	key, err := deriveKey(epochPriv, labelAttachment)
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	return aead.Open(nil, nonce, box, nil)
}

// DeriveIdentityKey stretches a passphrase into a symmetric key with
// argon2id.
func DeriveIdentityKey(passphrase, salt []byte) []byte {
	return argon2.IDKey(passphrase, salt, 1, 64*1024, 4, chacha20poly1305.KeySize)
}

// SealIdentity encrypts a member's long-term private key under a
// passphrase for storage on disk. Layout: salt || nonce || box.
func SealIdentity(passphrase, priv []byte) ([]byte, error) {
	salt := common.GenerateRandByteArray(identitySaltSize)

	key := DeriveIdentityKey(passphrase, salt)
	defer common.WipeByteArray(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}

	nonce := common.GenerateRandByteArray(nonceSize)
	out := make([]byte, 0, identitySaltSize+nonceSize+len(priv)+tagSize)
	out = append(out, salt...)
	out = append(out, nonce...)
	return aead.Seal(out, nonce, priv, salt), nil
}

// OpenIdentity decrypts an identity file produced by SealIdentity.
func OpenIdentity(passphrase, blob []byte) ([]byte, error) {
	if len(blob) < identitySaltSize+nonceSize+tagSize {
		return nil, errMalformedBlob
	}
	salt := blob[:identitySaltSize]
	nonce := blob[identitySaltSize : identitySaltSize+nonceSize]
	box := blob[identitySaltSize+nonceSize:]

	key := DeriveIdentityKey(passphrase, salt)
	defer common.WipeByteArray(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}

	pt, err := aead.Open(nil, nonce, box, salt)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}

func deriveKey(secret, label []byte) ([]byte, error) {
	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, secret, nil, label), key); err != nil {
		return nil, err
	}
	return key, nil
}
