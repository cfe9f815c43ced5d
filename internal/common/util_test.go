package common

import (
	"bytes"
	"testing"
)

func TestGenerateRandByteArray_Length(t *testing.T) {
	for _, n := range []int{0, 1, 32} {
		buf := GenerateRandByteArray(n)
		if buf == nil {
			t.Fatalf("expected non-nil slice for n=%d", n)
		}
		if len(buf) != n {
			t.Fatalf("expected length %d, got %d", n, len(buf))
		}
	}
}

func TestGenerateRandByteArray_EntropyHint(t *testing.T) {
	a := GenerateRandByteArray(32)
	b := GenerateRandByteArray(32)

	if bytes.Equal(a, b) {
		t.Logf("warning: two GenerateRandByteArray(32) results are identical; extremely unlikely")
	}
}

func TestWipeByteArray_ZerosKeyMaterial(t *testing.T) {
	key := GenerateRandByteArray(32)
	WipeByteArray(key)

	if !bytes.Equal(key, make([]byte, 32)) {
		t.Fatalf("expected all-zero buffer after wipe, got %x", key)
	}
}

func TestWipeByteArray_SharedBacking(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5, 6}
	WipeByteArray(buf[2:])

	want := []byte{1, 2, 0, 0, 0, 0}
	if !bytes.Equal(buf, want) {
		t.Fatalf("expected %v, got %v", want, buf)
	}
}

func TestWipeByteArray_NilAndEmpty(t *testing.T) {
	WipeByteArray(nil)
	WipeByteArray([]byte{})
}
