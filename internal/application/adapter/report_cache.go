package adapter

import (
	"context"

	"github.com/google/uuid"
)

// CacheGeneration is the cache generation of a school observed by a lookup.
type CacheGeneration int64

// NoCacheGeneration is returned when the generation could not be read. Pages stored with it are dropped.
const NoCacheGeneration CacheGeneration = -1

// ReportListCache caches encoded report list pages per school.
// Implementations never fail the caller: lookups that cannot be served report a miss.
type ReportListCache interface {
	// Get returns the cached page for the query key, if any, together with the generation it looked in.
	Get(ctx context.Context, schoolID uuid.UUID, queryKey string) ([]byte, CacheGeneration, bool)

	// Set stores a page under the generation returned by the Get that missed.
	// A page whose generation was invalidated in the meantime is never served.
	Set(ctx context.Context, schoolID uuid.UUID, queryKey string, generation CacheGeneration, page []byte)

	// Invalidate drops every cached page of the school.
	Invalidate(ctx context.Context, schoolID uuid.UUID) error
}
