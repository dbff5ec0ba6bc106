package dump

import (
	"errors"
	"fmt"
)

var (
	// ErrBadMagic is returned when a blob does not start with "OCTD".
	ErrBadMagic = errors.New("dump: bad magic")

	// ErrUnsupportedVersion is returned for frames written by a newer format.
	ErrUnsupportedVersion = errors.New("dump: unsupported version")

	// ErrChecksumMismatch is returned when the payload does not match its CRC32C.
	ErrChecksumMismatch = errors.New("dump: checksum mismatch")

	// ErrTruncated is returned when a frame is shorter than its header claims.
	ErrTruncated = errors.New("dump: truncated frame")

	// ErrCorrupt is returned when header fields contradict each other or the
	// payload fails to decompress.
	ErrCorrupt = errors.New("dump: corrupt frame")
)

// KindError reports a frame of the wrong kind, e.g. ids where coordinates
// were expected.
type KindError struct {
	Want Kind
	Got  Kind
}

func (e *KindError) Error() string {
	return fmt.Sprintf("dump: expected %s frame, got %s", e.Want, e.Got)
}

func (e *KindError) Unwrap() error { return ErrCorrupt }
