package netbuf

import (
	"math/bits"
	"sync"
)

// Size-tiered storage pools for buffer reuse.
// Backing arrays are pooled in size classes: 64, 256, 1024, 4096, 16384, 65536 bytes.
var storagePools = [6]sync.Pool{
	{New: func() any { return make([]byte, 64) }},
	{New: func() any { return make([]byte, 256) }},
	{New: func() any { return make([]byte, 1024) }},
	{New: func() any { return make([]byte, 4096) }},
	{New: func() any { return make([]byte, 16384) }},
	{New: func() any { return make([]byte, 65536) }},
}

// storageSizes maps pool index to capacity.
var storageSizes = [6]int{64, 256, 1024, 4096, 16384, 65536}

// poolIndex returns the pool index for a given size hint.
func poolIndex(size int) int {
	for i, s := range storageSizes {
		if size <= s {
			return i
		}
	}
	return -1 // Too large for pooling
}

// GetBuffer gets a DataBuffer from the appropriate size-tiered pool,
// with a data length of zero and capacity at least sizeHint. Buffers
// larger than 64KB are allocated directly.
func GetBuffer(sizeHint int) *DataBuffer {
	if sizeHint <= 0 {
		sizeHint = 1
	}
	idx := poolIndex(sizeHint)
	b := &DataBuffer{owned: true}
	if idx < 0 {
		b.buf = make([]byte, sizeHint)
		return b
	}
	b.buf = storagePools[idx].Get().([]byte)
	return b
}

// PutBuffer returns a DataBuffer's storage to the appropriate size-tiered
// pool and leaves the buffer with no storage. Borrowed storage is never
// pooled, since the pool would hand the caller's memory to strangers.
// Storage larger than 64KB is left to the garbage collector.
func PutBuffer(b *DataBuffer) {
	if b == nil || !b.owned {
		return
	}
	buf := b.buf
	b.clear()
	idx := poolIndex(len(buf))
	if idx >= 0 && len(buf) == storageSizes[idx] {
		storagePools[idx].Put(buf)
	}
}

// GetVarintBuffer gets a VarintBuffer from the size-tiered pools.
func GetVarintBuffer(sizeHint int) *VarintBuffer {
	return &VarintBuffer{DataBuffer: *GetBuffer(sizeHint)}
}

// PutVarintBuffer returns a VarintBuffer's storage to the pools.
func PutVarintBuffer(b *VarintBuffer) {
	if b == nil {
		return
	}
	PutBuffer(&b.DataBuffer)
}

// OptimalBufferSize returns the pooled capacity that a buffer of the
// given data size would occupy. Sizes above the largest class round up
// to the next power of two.
func OptimalBufferSize(dataSize int) int {
	if dataSize <= 0 {
		return storageSizes[0]
	}
	if idx := poolIndex(dataSize); idx >= 0 {
		return storageSizes[idx]
	}
	return 1 << bits.Len(uint(dataSize-1))
}
