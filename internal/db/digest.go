package db

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"

	"github.com/ruinworks/ruingen/internal/blueprint"
)

// SnapshotDigest returns a stable content hash of a blueprint's structure:
// dimensions, wall cells, terrain defs and item stacks, in fixed (x, z)
// order. Identical payloads always produce identical digests, which is what
// store-level dedup relies on.
func SnapshotDigest(bp *blueprint.Blueprint) [blake2b.Size256]byte {
	h, err := blake2b.New256(nil)
	if err != nil {
		// Only possible with a bad key; New256(nil) never fails.
		panic(err)
	}

	var num [4]byte
	writeInt := func(v int) {
		binary.LittleEndian.PutUint32(num[:], uint32(v))
		h.Write(num[:])
	}
	writeStr := func(s string) {
		writeInt(len(s))
		h.Write([]byte(s))
	}

	writeInt(bp.Width())
	writeInt(bp.Height())

	for x := 0; x < bp.Width(); x++ {
		for z := 0; z < bp.Height(); z++ {
			if bp.CellAt(x, z) == blueprint.CellWall {
				writeInt(x)
				writeInt(z)
			}
		}
	}
	for x := 0; x < bp.Width(); x++ {
		for z := 0; z < bp.Height(); z++ {
			if t := bp.TerrainAt(x, z); t != nil {
				writeInt(x)
				writeInt(z)
				writeStr(t.DefName)
			}
			for _, it := range bp.ItemsAt(x, z) {
				writeInt(x)
				writeInt(z)
				writeStr(it.DefName)
				writeStr(it.StuffDef)
				writeInt(int(it.StackCount))
			}
		}
	}

	var out [blake2b.Size256]byte
	copy(out[:], h.Sum(nil))
	return out
}
