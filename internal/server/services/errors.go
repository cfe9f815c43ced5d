package services

import (
	"errors"
	"fmt"

	"github.com/keyfold/keyfold/internal/common"
)

// ErrRotationRequired is returned when a removal closes an active
// membership without supplying the rotation that cuts its key access.
var ErrRotationRequired = errors.New("rotation parameters required to remove an active member")

// StaleEpochError reports a lost rotation race: another caller advanced
// the conversation first. CurrentEpoch carries the value the caller must
// re-fetch against before retrying.
type StaleEpochError struct {
	CurrentEpoch int64
}

func (e *StaleEpochError) Error() string {
	return fmt.Sprintf("stale epoch: conversation is at epoch %d", e.CurrentEpoch)
}

// Is lets errors.Is match against common.ErrStaleEpoch.
func (e *StaleEpochError) Is(target error) bool {
	return target == common.ErrStaleEpoch
}

// WrapSetMismatchError reports a rotation whose supplied wrap set does not
// match the active membership, either in size or in the keys themselves.
type WrapSetMismatchError struct {
	Expected int
	Provided int
}

func (e *WrapSetMismatchError) Error() string {
	return fmt.Sprintf("wrap set mismatch: %d active members, %d wraps provided", e.Expected, e.Provided)
}

// Is lets errors.Is match against common.ErrWrapSetMismatch.
func (e *WrapSetMismatchError) Is(target error) bool {
	return target == common.ErrWrapSetMismatch
}
