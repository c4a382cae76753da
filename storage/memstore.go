package storage

import (
	"sync"

	"github.com/rawblock/xmrwallet/curve"
)

// MemStore is the reference in-memory Store implementation: enough for
// tests and a standalone CLI to run against without any external
// dependency; a real deployment backs Store with durable storage instead.
type MemStore struct {
	mu sync.Mutex

	outputsByGlobalIndex map[uint64]StoredOutput
	outputsByKeyImage    map[string]uint64 // key image bytes -> GlobalIndex

	transactions map[[32]byte]StoredTransaction

	syncHeight  uint64
	blockHashes map[uint64][32]byte
}

// NewMemStore returns an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{
		outputsByGlobalIndex: make(map[uint64]StoredOutput),
		outputsByKeyImage:    make(map[string]uint64),
		transactions:         make(map[[32]byte]StoredTransaction),
		blockHashes:          make(map[uint64][32]byte),
	}
}

func (m *MemStore) SaveOutput(out StoredOutput) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.outputsByGlobalIndex[out.GlobalIndex] = out
	m.outputsByKeyImage[string(out.KeyImage.Bytes())] = out.GlobalIndex
	return nil
}

func (m *MemStore) GetOutputs(filter OutputFilter) ([]StoredOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []StoredOutput
	for _, o := range m.outputsByGlobalIndex {
		if filter.Matches(o) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *MemStore) MarkSpent(keyImage curve.Point, spendingTxHash [32]byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx, ok := m.outputsByKeyImage[string(keyImage.Bytes())]
	if !ok {
		// Not yet known to this store: nothing to mark. A later
		// SaveOutput for the same key image would have no way to learn
		// about this spend, but that sequencing (spend observed before
		// the output it spends) does not occur in this core's sync
		// order, since outputs are always scanned before their
		// spending transaction's key image is checked.
		return nil
	}

	out := m.outputsByGlobalIndex[idx]
	out.Spent = &SpentInfo{SpendingTxHash: spendingTxHash}
	m.outputsByGlobalIndex[idx] = out
	return nil
}

func (m *MemStore) SaveTransaction(tx StoredTransaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.transactions[tx.TxHash] = tx
	return nil
}

func (m *MemStore) GetTransaction(txHash [32]byte) (StoredTransaction, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	tx, ok := m.transactions[txHash]
	return tx, ok, nil
}

func (m *MemStore) GetSyncHeight() (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.syncHeight, nil
}

func (m *MemStore) SetSyncHeight(height uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.syncHeight = height
	return nil
}

func (m *MemStore) GetBlockHash(height uint64) ([32]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	hash, ok := m.blockHashes[height]
	return hash, ok, nil
}

func (m *MemStore) SetBlockHash(height uint64, hash [32]byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.blockHashes[height] = hash
	return nil
}

func (m *MemStore) RollbackToHeight(height uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for h := range m.blockHashes {
		if h > height {
			delete(m.blockHashes, h)
		}
	}

	for idx, out := range m.outputsByGlobalIndex {
		if out.Spent == nil {
			continue
		}
		tx, ok := m.transactions[out.Spent.SpendingTxHash]
		if ok && tx.BlockHeight > height {
			out.Spent = nil
			m.outputsByGlobalIndex[idx] = out
		}
	}

	return nil
}
