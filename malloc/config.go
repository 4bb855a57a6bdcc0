package malloc

import s "github.com/bnclabs/gosettings"

// Alignment served chunks are always aligned to 64-bit boundary,
// whatever alignment the caller requests, so that a freed chunk can
// hold the free-list link.
const Alignment = int64(8)

// Malloc configurable parameters and default settings.
//
// "blocksize" (int64, default: 64)
//		Fixed size of the blocks served by a Fixarena. Silently
//		widened to hold a pointer and to a multiple of the effective
//		alignment.
//
// "blockalign" (int64, default: Alignment)
//		Alignment requested for Fixarena blocks. Silently widened to
//		the least common multiple with pointer alignment.
//
// "slotsize" (int64, default: 64)
//		Fixed size of the slots served by a Handlepool. Silently
//		widened to hold a handle and to a multiple of Alignment.
//
// "capacity" (int64, default: 0)
//		Number of slots provisioned up front by a Handlepool.
func Defaultsettings() s.Settings {
	return s.Settings{
		"blocksize":  64,
		"blockalign": Alignment,
		"slotsize":   64,
		"capacity":   0,
	}
}
