package minireduce

import (
	"encoding/binary"
	"hash/fnv"
)

// HashString hashes a string key using FNV-1a
func HashString(key string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(key))

	return h.Sum32()
}

// HashInt hashes an integer key using FNV-1a over its 8-byte little-endian form
func HashInt(key int) uint32 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(key))

	h := fnv.New32a()
	h.Write(buf[:])

	return h.Sum32()
}

// BucketFor maps a key hash onto one of numBuckets reducers
func BucketFor(hash uint32, numBuckets int) int {
	return int(hash % uint32(numBuckets))
}

// PartitionPairs routes every pair of every mapper output to bucket
// hash(key) mod numBuckets. Mapper outputs are visited in index order and pairs
// keep their emission order, so each bucket lists its pairs in input order.
// The result always has numBuckets entries; unused buckets are nil.
func PartitionPairs[K comparable, V any](outputs [][]Pair[K, V], numBuckets int, hash func(K) uint32) [][]Pair[K, V] {
	buckets := make([][]Pair[K, V], numBuckets)

	for _, out := range outputs {
		for _, kv := range out {
			b := BucketFor(hash(kv.Key), numBuckets)
			buckets[b] = append(buckets[b], kv)
		}
	}

	return buckets
}
