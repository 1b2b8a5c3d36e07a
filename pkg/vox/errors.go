package vox

import (
	"errors"
	"fmt"
)

var (
	ErrLengthMismatch       = errors.New("vox: declared voxel count does not match records")
	ErrColorIndexOutOfRange = errors.New("vox: color index out of range")
	ErrPaletteSizeMismatch  = errors.New("vox: palette must have 256 entries")
	ErrUnknownChunkID       = errors.New("vox: unknown chunk id")
	ErrSizeOutOfRange       = errors.New("vox: grid size out of range")
)

func sizeOutOfRange(s Size) error {
	return fmt.Errorf("%w: %dx%dx%d exceeds %d", ErrSizeOutOfRange, s.X, s.Y, s.Z, MaxDimension)
}
