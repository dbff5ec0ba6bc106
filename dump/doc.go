// Package dump encodes octree diagnostics into compact binary frames and
// moves them through a blobstore.BlobStore.
//
// A dump named "scene-1" consists of three blobs:
//
//	scene-1/nodes.octd   six float32 per node (Octree.AllNodeAABBs)
//	scene-1/points.octd  three float32 per point (Octree.AllPoints)
//	scene-1/ids.octd     one uint32 per point (Octree.AllPointIDs)
//
// Every blob is a single frame:
//
//	magic   [4]byte "OCTD"
//	version uint8
//	kind    uint8   1 node bounds, 2 point coords, 3 point ids
//	codec   uint8   0 none, 1 lz4, 2 zstd
//	_       uint8
//	count   uint32  number of 4-byte elements
//	rawLen  uint32  uncompressed payload bytes
//	bodyLen uint32  stored payload bytes
//	crc     uint32  CRC32C of the stored payload
//	payload [bodyLen]byte
//
// All integers are little endian. A payload that compression shrinks by
// less than 10% is stored raw.
//
// Dumps carry no capacity or split policy and cannot rebuild a tree; they
// feed visualization tools.
package dump
