// Package storage defines the persistence boundary the wallet core reads
// and writes through: saved outputs, transactions, and sync-height/
// block-hash bookkeeping. The core itself never opens a database — it is
// handed a Store and only ever calls through this interface, the same
// base-wallet-abstraction idiom the original daemon used so multiple
// concrete backends (local file, remote RPC, in-memory for tests) can
// sit behind one surface.
package storage

import (
	"github.com/rawblock/xmrwallet/curve"
	"github.com/rawblock/xmrwallet/keys"
)

// StoredOutput is a transaction output the scanner has recognized as
// belonging to the wallet, enough for the input selector and signer to
// later spend it and for a view of wallet balance to sum it.
type StoredOutput struct {
	GlobalIndex     uint64
	TxHash          [32]byte
	OutputIndex     uint64
	SubaddressIndex keys.SubaddressIndex
	OneTimePublic   curve.Point
	KeyImage        curve.Point
	Amount          uint64
	Mask            curve.Scalar
	BlockHeight     uint64
	Unlocked        bool

	// Spent is non-nil once mark_spent records the transaction that
	// consumed this output.
	Spent *SpentInfo
}

// SpentInfo records which transaction consumed an output, once known.
type SpentInfo struct {
	SpendingTxHash [32]byte
}

// OutputFilter narrows get_outputs. A zero-value filter matches every
// output; each non-zero-value field narrows the match further. Spent
// selects: nil means either, a pointer to true/false requires a match.
type OutputFilter struct {
	SubaddressIndex *keys.SubaddressIndex
	Spent           *bool
	UnlockedOnly    bool
}

// Matches reports whether out satisfies f.
func (f OutputFilter) Matches(out StoredOutput) bool {
	if f.SubaddressIndex != nil && out.SubaddressIndex != *f.SubaddressIndex {
		return false
	}
	if f.Spent != nil && (out.Spent != nil) != *f.Spent {
		return false
	}
	if f.UnlockedOnly && !out.Unlocked {
		return false
	}
	return true
}

// StoredTransaction is a transaction the wallet has built or observed,
// recorded for history and label display.
type StoredTransaction struct {
	TxHash      [32]byte
	TxBlob      []byte
	Fee         uint64
	BlockHeight uint64 // 0 when unconfirmed
	Timestamp   int64
	Label       string
}

// Store is the persistence surface the wallet core is built against. A
// wallet handle holds exactly one Store and is thread-confined: callers
// serialize their own writes, and Store implementations are not required
// to support concurrent mutation from multiple wallet handles over the
// same underlying data.
type Store interface {
	// SaveOutput records a newly recognized owned output. Saving an
	// output with a GlobalIndex already present overwrites the prior
	// record (used when a reorg re-delivers the same output at a
	// different block height).
	SaveOutput(out StoredOutput) error

	// GetOutputs returns every stored output matching filter, in no
	// particular order.
	GetOutputs(filter OutputFilter) ([]StoredOutput, error)

	// MarkSpent records that the output identified by keyImage was
	// consumed by spendingTxHash. Marking an output not present in the
	// store is not an error, and is a no-op: this core's sync order
	// always scans and saves an output before it can observe that
	// output's key image spent, so this case never arises in practice.
	MarkSpent(keyImage curve.Point, spendingTxHash [32]byte) error

	// SaveTransaction records a built or observed transaction.
	SaveTransaction(tx StoredTransaction) error

	// GetTransaction looks up a previously saved transaction by hash.
	GetTransaction(txHash [32]byte) (StoredTransaction, bool, error)

	// GetSyncHeight returns the height through which the wallet has
	// completed scanning.
	GetSyncHeight() (uint64, error)

	// SetSyncHeight records the height through which the wallet has
	// completed scanning.
	SetSyncHeight(height uint64) error

	// GetBlockHash returns the hash the wallet recorded for height, used
	// to detect reorgs by comparing against a freshly fetched block.
	GetBlockHash(height uint64) ([32]byte, bool, error)

	// SetBlockHash records the hash observed for height.
	SetBlockHash(height uint64, hash [32]byte) error

	// RollbackToHeight discards every stored block hash above height and
	// unmarks as unspent any output whose Spent.SpendingTxHash belongs to
	// a transaction above height, undoing everything a reorg handler
	// needs undone before resuming forward sync. It does not itself
	// lower the sync height; callers call SetSyncHeight separately once
	// they've picked the fork point.
	RollbackToHeight(height uint64) error
}
