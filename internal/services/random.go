package services

import (
	"hash/fnv"
	"math/rand"
	"strconv"
)

// routeSalt separates route-generation streams from any other stream seeded
// from the same request id.
const routeSalt = "routegen"

const rerollSalt = "reroll"

// NewRouteRand returns the deterministic random source for alternative
// routeIndex of a request. The same (requestID, routeIndex) always yields
// the same stream; distinct indices diverge.
//
// A *rand.Rand is not safe for concurrent use; each alternative gets its own.
func NewRouteRand(requestID string, routeIndex int) *rand.Rand {
	return rand.New(rand.NewSource(seedFrom(requestID, strconv.Itoa(routeIndex), routeSalt)))
}

// NewRerollRand seeds the source used to pick a replacement stop. attempt is
// the route's count of applied rerolls, so every reroll draws from a fresh
// stream even when it lands back on a place seen before.
func NewRerollRand(routeID string, index int, currentPlaceID string, attempt int) *rand.Rand {
	return rand.New(rand.NewSource(seedFrom(routeID, strconv.Itoa(index), currentPlaceID, strconv.Itoa(attempt), rerollSalt)))
}

func seedFrom(parts ...string) int64 {
	h := fnv.New64a()
	for _, p := range parts {
		_, _ = h.Write([]byte(p))
		_, _ = h.Write([]byte{0})
	}
	return int64(mix64(h.Sum64()))
}

// mix64 is the SplitMix64 finalizer; it spreads FNV's weak low bits.
func mix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
