package cryptox

import (
	"bytes"
	"errors"
	"testing"
)

func TestGenerateKeyPair(t *testing.T) {
	priv1, pub1, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	priv2, pub2, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(priv1) != KeySize || len(pub1) != KeySize {
		t.Errorf("expected %d-byte keys, got priv=%d pub=%d", KeySize, len(priv1), len(pub1))
	}
	if bytes.Equal(priv1, priv2) || bytes.Equal(pub1, pub2) {
		t.Errorf("expected two generated pairs to differ")
	}

	// clamping per RFC 7748
	if priv1[0]&7 != 0 {
		t.Errorf("low bits not cleared: %08b", priv1[0])
	}
	if priv1[31]&128 != 0 || priv1[31]&64 == 0 {
		t.Errorf("high byte not clamped: %08b", priv1[31])
	}
}

func TestPublicKey_MatchesGeneratedPair(t *testing.T) {
	priv, pub, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	derived, err := PublicKey(priv)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(derived, pub) {
		t.Errorf("derived public key does not match generated one")
	}
}

func TestWrapKey_RoundTrip(t *testing.T) {
	memberPriv, memberPub, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	epochPriv, _, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wrap, err := WrapKey(memberPub, epochPriv)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantLen := KeySize + nonceSize + len(epochPriv) + tagSize
	if len(wrap) != wantLen {
		t.Errorf("wrap length = %d, want %d", len(wrap), wantLen)
	}

	got, err := UnwrapKey(memberPriv, wrap)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got, epochPriv) {
		t.Errorf("unwrapped key does not match original")
	}
}

func TestUnwrapKey_WrongRecipient(t *testing.T) {
	_, memberPub, _ := GenerateKeyPair()
	otherPriv, _, _ := GenerateKeyPair()
	epochPriv, _, _ := GenerateKeyPair()

	wrap, err := WrapKey(memberPub, epochPriv)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := UnwrapKey(otherPriv, wrap); err == nil {
		t.Errorf("expected error for wrong recipient, got nil")
	}
}

func TestUnwrapKey_Tampered(t *testing.T) {
	memberPriv, memberPub, _ := GenerateKeyPair()
	epochPriv, _, _ := GenerateKeyPair()

	wrap, err := WrapKey(memberPub, epochPriv)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wrap[len(wrap)-1] ^= 0x01
	if _, err := UnwrapKey(memberPriv, wrap); err == nil {
		t.Errorf("expected error for tampered wrap, got nil")
	}

	if _, err := UnwrapKey(memberPriv, wrap[:KeySize]); err == nil {
		t.Errorf("expected error for truncated wrap, got nil")
	}
}

func TestConfirmationHash(t *testing.T) {
	epochPriv, _, _ := GenerateKeyPair()
	otherPriv, _, _ := GenerateKeyPair()

	hash := MakeConfirmationHash(epochPriv)
	if len(hash) != 32 {
		t.Errorf("hash length = %d, want 32", len(hash))
	}
	if !VerifyConfirmationHash(epochPriv, hash) {
		t.Errorf("expected hash to verify for matching key")
	}
	if VerifyConfirmationHash(otherPriv, hash) {
		t.Errorf("expected hash to fail for a different key")
	}
}

func TestChainLink_RoundTrip(t *testing.T) {
	prevPriv, _, _ := GenerateKeyPair()
	currPriv, _, _ := GenerateKeyPair()
	otherPriv, _, _ := GenerateKeyPair()

	link, err := DeriveChainLink(currPriv, prevPriv)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := TraverseChainLink(currPriv, link)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got, prevPriv) {
		t.Errorf("traversed key does not match previous epoch key")
	}

	if _, err := TraverseChainLink(otherPriv, link); err == nil {
		t.Errorf("expected error when traversing with the wrong key")
	}
}

func TestChainLink_WalkBackwards(t *testing.T) {
	// three epoch generations, each link recorded on the newer epoch
	priv1, _, _ := GenerateKeyPair()
	priv2, _, _ := GenerateKeyPair()
	priv3, _, _ := GenerateKeyPair()

	link2, err := DeriveChainLink(priv2, priv1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	link3, err := DeriveChainLink(priv3, priv2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got2, err := TraverseChainLink(priv3, link3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got1, err := TraverseChainLink(got2, link2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !bytes.Equal(got2, priv2) || !bytes.Equal(got1, priv1) {
		t.Errorf("backward walk did not recover earlier epoch keys")
	}
}

func TestTitle_RoundTrip(t *testing.T) {
	epochPriv, _, _ := GenerateKeyPair()
	otherPriv, _, _ := GenerateKeyPair()
	title := []byte("design sync")

	blob1, err := EncryptTitle(epochPriv, title)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	blob2, err := EncryptTitle(epochPriv, title)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bytes.Equal(blob1, blob2) {
		t.Errorf("expected fresh nonce per encryption, got identical blobs")
	}

	got, err := DecryptTitle(epochPriv, blob1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got, title) {
		t.Errorf("decrypted title = %q, want %q", got, title)
	}

	if _, err := DecryptTitle(otherPriv, blob1); err == nil {
		t.Errorf("expected error when decrypting with the wrong epoch key")
	}
}

func TestAttachment_RoundTrip(t *testing.T) {
	epochPriv, _, _ := GenerateKeyPair()
	data := []byte("binary attachment payload")

	blob, err := EncryptAttachment(epochPriv, data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := DecryptAttachment(epochPriv, blob)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("decrypted attachment does not match original")
	}

	// titles and attachments derive distinct keys from the same epoch
	titleBlob, err := EncryptTitle(epochPriv, data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := DecryptAttachment(epochPriv, titleBlob); err == nil {
		t.Errorf("expected attachment open to reject a title blob")
	}
}

func TestIdentity_RoundTrip(t *testing.T) {
	passphrase := []byte("correct horse battery staple")
	priv, _, _ := GenerateKeyPair()

	blob, err := SealIdentity(passphrase, priv)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := OpenIdentity(passphrase, blob)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got, priv) {
		t.Errorf("opened identity does not match original key")
	}

	_, err = OpenIdentity([]byte("wrong passphrase"), blob)
	if !errors.Is(err, ErrWrongPassphrase) {
		t.Errorf("expected ErrWrongPassphrase, got %v", err)
	}

	if _, err := OpenIdentity(passphrase, blob[:10]); err == nil {
		t.Errorf("expected error for truncated blob, got nil")
	}
}

func TestDeriveIdentityKey_Deterministic(t *testing.T) {
	passphrase := []byte("secret-passphrase")
	salt := []byte("fixed-salt-16byt")

	key1 := DeriveIdentityKey(passphrase, salt)
	key2 := DeriveIdentityKey(passphrase, salt)
	if !bytes.Equal(key1, key2) {
		t.Errorf("expected same result for same inputs, got different")
	}

	key3 := DeriveIdentityKey(passphrase, []byte("another-salt-16b"))
	if bytes.Equal(key1, key3) {
		t.Errorf("expected different results for different salts, got same")
	}
}
