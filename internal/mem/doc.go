// Package mem provides the allocators that back vector buffers.
//
// # Allocator Contract
//
// Every allocator hands out buffers whose length equals the requested size.
// Reallocate preserves the common prefix and, on failure, leaves the old
// buffer untouched and still owned by the caller. That last rule is what
// lets a vector survive a failed growth at its previous state.
//
// # Implementations
//
//   - Heap: 64-byte aligned Go heap slices (AVX-512 friendly). Free drops the reference.
//   - OffHeap: one anonymous mapping per buffer. Free unmaps immediately.
//   - Budget: wraps another allocator and charges a shared resource.Controller.
//   - Faulty: wraps another allocator and injects failures for tests.
package mem
