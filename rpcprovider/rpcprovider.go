// Package rpcprovider declares the external daemon collaborator the
// wallet core depends on but never implements: block/height queries,
// output-distribution data for decoy selection, the outputs a ring
// references, transaction submission, and fee estimation. Embedding
// interfaces rather than a concrete client lets callers wire in an RPC
// client, a local regtest daemon, or a test double without the core
// caring which.
package rpcprovider

import "context"

// Block is the subset of a daemon's block record the core needs to track
// chain state while scanning.
type Block struct {
	Height    uint64
	Hash      [32]byte
	Timestamp uint64
	PrevHash  [32]byte
	Txs       [][]byte
}

// RemoteOutput describes one RingCT output as returned by the daemon's
// get_outputs call: enough to populate a ring member without the wallet
// ever having owned the output.
type RemoteOutput struct {
	PublicKey  [32]byte
	Commitment [32]byte
	Height     uint64
	Unlocked   bool
}

// FeeEstimate is the daemon's current fee guidance.
type FeeEstimate struct {
	FeePerByte       uint64
	QuantizationMask uint64
	PriorityFees     []uint64
}

// SubmitResult is the daemon's response to submitting a signed transaction.
type SubmitResult struct {
	Accepted bool
	Reason   string
}

// HeightProvider reports the daemon's current chain tip.
type HeightProvider interface {
	GetHeight(ctx context.Context) (uint64, error)
}

// BlockProvider fetches a contiguous range of blocks, inclusive of both
// endpoints, for the scanner to walk.
type BlockProvider interface {
	GetBlocks(ctx context.Context, fromHeight, toHeight uint64) ([]Block, error)
}

// OutputDistributionProvider supplies the cumulative RingCT output count
// per block the decoy selector needs to translate a sampled age into a
// global-index range.
type OutputDistributionProvider interface {
	GetOutputDistribution(ctx context.Context, startHeight uint64) (cumulative []uint64, err error)
}

// OutputProvider fetches ring-member output data by global index.
type OutputProvider interface {
	GetOutputs(ctx context.Context, globalIndices []uint64) ([]RemoteOutput, error)
}

// Submitter publishes a signed transaction blob.
type Submitter interface {
	SubmitTx(ctx context.Context, txBlob []byte) (SubmitResult, error)
}

// FeeEstimator supplies the daemon's current fee guidance.
type FeeEstimator interface {
	GetFeeEstimate(ctx context.Context) (FeeEstimate, error)
}

// DaemonClient is the full external daemon collaborator surface,
// composed from the narrower interfaces above so that a consumer needing
// only, say, decoy selection can depend on OutputDistributionProvider
// alone instead of the whole client.
type DaemonClient interface {
	HeightProvider
	BlockProvider
	OutputDistributionProvider
	OutputProvider
	Submitter
	FeeEstimator
}
