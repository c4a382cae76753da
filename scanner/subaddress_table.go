package scanner

import (
	"sync"

	"github.com/rawblock/xmrwallet/curve"
	"github.com/rawblock/xmrwallet/keys"
)

// SubaddressTable maps a subaddress's spend public key back to its
// (major, minor) index, letting the scanner recognize outputs sent to any
// subaddress it has precomputed. Entries are populated lazily up to the
// furthest (major, minor) bound any caller has requested, and are cached
// across scans: read-mostly lookups take the read lock, and only
// Ensure's one-time fill of newly requested rows takes the write lock.
type SubaddressTable struct {
	mu sync.RWMutex

	kp keys.KeyPair

	entries   map[[32]byte]keys.SubaddressIndex
	maxMajor  uint32
	maxMinor  uint32
	populated bool
}

// NewSubaddressTable creates an empty table for kp. Call Ensure to
// populate it up to a lookahead bound before scanning.
func NewSubaddressTable(kp keys.KeyPair) *SubaddressTable {
	return &SubaddressTable{
		kp:      kp,
		entries: make(map[[32]byte]keys.SubaddressIndex),
	}
}

// Ensure grows the table, if necessary, so every (major, minor) index with
// major <= maxMajor and minor <= maxMinor has an entry. Subsequent calls
// with smaller or equal bounds are no-ops.
func (t *SubaddressTable) Ensure(maxMajor, maxMinor uint32) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.populated && maxMajor <= t.maxMajor && maxMinor <= t.maxMinor {
		return
	}

	oldMaxMajor, oldMaxMinor, wasPopulated := t.maxMajor, t.maxMinor, t.populated

	// Fill the union of the old and new bounds, so a call that raises one
	// bound while lowering the other leaves no uncovered indices behind.
	if wasPopulated {
		if oldMaxMajor > maxMajor {
			maxMajor = oldMaxMajor
		}
		if oldMaxMinor > maxMinor {
			maxMinor = oldMaxMinor
		}
	}

	for major := uint32(0); major <= maxMajor; major++ {
		minorStart := uint32(0)
		if wasPopulated && major <= oldMaxMajor {
			minorStart = oldMaxMinor + 1
		}
		for minor := minorStart; minor <= maxMinor; minor++ {
			idx := keys.SubaddressIndex{Major: major, Minor: minor}
			spendPub, _ := t.kp.DeriveSubaddress(idx)
			var key [32]byte
			copy(key[:], spendPub.Bytes())
			t.entries[key] = idx
		}
	}

	if maxMajor > t.maxMajor {
		t.maxMajor = maxMajor
	}
	if maxMinor > t.maxMinor {
		t.maxMinor = maxMinor
	}
	t.populated = true

	scnLog.Debugf("subaddress table populated through major=%d minor=%d", t.maxMajor, t.maxMinor)
}

// Lookup returns the subaddress index whose spend public key is spendPub,
// if one has been precomputed via Ensure.
func (t *SubaddressTable) Lookup(spendPub curve.Point) (keys.SubaddressIndex, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var key [32]byte
	copy(key[:], spendPub.Bytes())
	idx, ok := t.entries[key]
	return idx, ok
}
