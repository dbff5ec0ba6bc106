// Package hash provides the CRC32-Castagnoli checksums used to protect dump
// frames and to tag blob uploads.
//
// For one-shot checksums:
//
//	sum := hash.CRC32C(payload)
//
// For streaming checksums:
//
//	h := hash.NewCRC32C()
//	h.Write(header)
//	h.Write(body)
//	sum := h.Sum32()
//
// Go's hash/crc32 uses the SSE4.2 and ARM CRC instructions when available.
package hash
