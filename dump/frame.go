package dump

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/hupe1980/octree/internal/hash"
)

// Version is the frame format written by this package.
const Version uint8 = 1

// HeaderSize is the fixed size of a frame header in bytes.
const HeaderSize = 24

var magic = [4]byte{'O', 'C', 'T', 'D'}

// Kind identifies the content of a frame.
type Kind uint8

// Frame kinds.
const (
	KindNodeBounds  Kind = 1
	KindPointCoords Kind = 2
	KindPointIDs    Kind = 3
)

// String returns a string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindNodeBounds:
		return "node-bounds"
	case KindPointCoords:
		return "point-coords"
	case KindPointIDs:
		return "point-ids"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

func (k Kind) float() bool {
	return k == KindNodeBounds || k == KindPointCoords
}

// Header is the decoded fixed-size prefix of a frame.
type Header struct {
	Version     uint8
	Kind        Kind
	Compression Compression
	Count       uint32
	RawLen      uint32
	BodyLen     uint32
	Checksum    uint32
}

// EncodeFloats encodes a node-bounds or point-coords frame.
func EncodeFloats(kind Kind, values []float32, c Compression) ([]byte, error) {
	if !kind.float() {
		return nil, fmt.Errorf("dump: %s frames hold uint32 values", kind)
	}
	raw := make([]byte, 4*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint32(raw[4*i:], math.Float32bits(v))
	}
	return encode(kind, raw, len(values), c)
}

// EncodeUint32s encodes a point-ids frame.
func EncodeUint32s(kind Kind, values []uint32, c Compression) ([]byte, error) {
	if kind != KindPointIDs {
		return nil, fmt.Errorf("dump: %s frames hold float32 values", kind)
	}
	raw := make([]byte, 4*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint32(raw[4*i:], v)
	}
	return encode(kind, raw, len(values), c)
}

func encode(kind Kind, raw []byte, count int, c Compression) ([]byte, error) {
	if uint64(len(raw)) > math.MaxUint32 {
		return nil, fmt.Errorf("dump: %s payload of %d bytes exceeds frame limit", kind, len(raw))
	}

	body, used, err := compress(raw, c)
	if err != nil {
		return nil, err
	}

	frame := make([]byte, HeaderSize+len(body))
	copy(frame[0:4], magic[:])
	frame[4] = Version
	frame[5] = byte(kind)
	frame[6] = byte(used)
	binary.LittleEndian.PutUint32(frame[8:], uint32(count))
	binary.LittleEndian.PutUint32(frame[12:], uint32(len(raw)))
	binary.LittleEndian.PutUint32(frame[16:], uint32(len(body)))
	binary.LittleEndian.PutUint32(frame[20:], hash.CRC32C(body))
	copy(frame[HeaderSize:], body)
	return frame, nil
}

// ReadHeader parses and validates the header of frame without touching
// the payload.
func ReadHeader(frame []byte) (Header, error) {
	if len(frame) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes, header needs %d", ErrTruncated, len(frame), HeaderSize)
	}
	if [4]byte(frame[0:4]) != magic {
		return Header{}, ErrBadMagic
	}

	h := Header{
		Version:     frame[4],
		Kind:        Kind(frame[5]),
		Compression: Compression(frame[6]),
		Count:       binary.LittleEndian.Uint32(frame[8:]),
		RawLen:      binary.LittleEndian.Uint32(frame[12:]),
		BodyLen:     binary.LittleEndian.Uint32(frame[16:]),
		Checksum:    binary.LittleEndian.Uint32(frame[20:]),
	}
	if h.Version == 0 || h.Version > Version {
		return Header{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, h.Version)
	}
	if uint64(h.Count)*4 != uint64(h.RawLen) {
		return Header{}, fmt.Errorf("%w: %d elements in %d bytes", ErrCorrupt, h.Count, h.RawLen)
	}
	return h, nil
}

// decode validates frame and returns its header and uncompressed payload.
func decode(frame []byte) (Header, []byte, error) {
	h, err := ReadHeader(frame)
	if err != nil {
		return Header{}, nil, err
	}

	if uint64(len(frame)-HeaderSize) < uint64(h.BodyLen) {
		return Header{}, nil, fmt.Errorf("%w: body has %d of %d bytes", ErrTruncated, len(frame)-HeaderSize, h.BodyLen)
	}
	body := frame[HeaderSize : HeaderSize+int(h.BodyLen)]
	if !hash.VerifyCRC32C(body, h.Checksum) {
		return Header{}, nil, ErrChecksumMismatch
	}

	raw, err := decompress(body, h.Compression, int(h.RawLen))
	if err != nil {
		return Header{}, nil, err
	}
	return h, raw, nil
}

// DecodeFloats decodes a frame of the given float kind.
func DecodeFloats(frame []byte, want Kind) ([]float32, error) {
	h, raw, err := decode(frame)
	if err != nil {
		return nil, err
	}
	if h.Kind != want || !want.float() {
		return nil, &KindError{Want: want, Got: h.Kind}
	}
	values := make([]float32, h.Count)
	for i := range values {
		values[i] = math.Float32frombits(binary.LittleEndian.Uint32(raw[4*i:]))
	}
	return values, nil
}

// DecodeUint32s decodes a point-ids frame.
func DecodeUint32s(frame []byte) ([]uint32, error) {
	h, raw, err := decode(frame)
	if err != nil {
		return nil, err
	}
	if h.Kind != KindPointIDs {
		return nil, &KindError{Want: KindPointIDs, Got: h.Kind}
	}
	values := make([]uint32, h.Count)
	for i := range values {
		values[i] = binary.LittleEndian.Uint32(raw[4*i:])
	}
	return values, nil
}
