package main

import (
	"crypto/rand"

	"github.com/rawblock/xmrwallet/curve"
	"github.com/rawblock/xmrwallet/walleterrors"
)

// cryptoRandScalar is the production txbuilder.RandomScalarFunc: 64 bytes
// of crypto/rand reduced mod the group order, the same construction the
// reference wallet uses to avoid the modulo bias a 32-byte reduction
// would introduce.
func cryptoRandScalar() curve.Scalar {
	var buf [64]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic(walleterrors.New("cryptoRandScalar", walleterrors.Other, err))
	}
	s, err := curve.RandomScalar(buf[:])
	if err != nil {
		panic(walleterrors.New("cryptoRandScalar", walleterrors.Other, err))
	}
	return s
}
