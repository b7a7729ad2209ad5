// Package bytevec provides a type-erased growable array over one contiguous,
// exclusively owned byte buffer.
//
// A Vector stores elements of a fixed byte size chosen at creation. It grows
// and shrinks under program control and reports allocation failure through a
// sticky Status plus an error return instead of aborting. It is a building
// block for typed containers, not a typed container itself.
//
// # Quick Start
//
//	v, _ := bytevec.New(4) // 4-byte elements
//	defer v.Close()
//
//	var elem [4]byte
//	binary.LittleEndian.PutUint32(elem[:], 42)
//	_ = v.PushBack(elem[:])
//
//	_ = v.InsertRange(0, twoElements) // opens a gap, tail slides up
//	v.EraseRange(0, 1)                // closes a gap, tail slides down
//
// # Growth Policy
//
// PushBack grows to the next power of two above the current capacity
// (at least the initial capacity, 8 by default), so n appends cost O(n).
// Resize and InsertRange round the required count up to a power of two.
// Reserve and ShrinkToFit allocate exactly what was asked.
//
// # Failure Model
//
// A failed growth leaves data, length and capacity exactly as they were,
// sets Status to StatusAllocationError and returns an error matching
// ErrAllocation. The status stays set until ClearStatus.
// Out-of-range InsertRange/EraseRange arguments are silent no-ops.
//
// # Allocators
//
//   - NewHeapAllocator: 64-byte aligned Go heap buffers (default)
//   - NewOffHeapAllocator: anonymous mappings released immediately on Free
//   - NewBudgetAllocator: any allocator under a shared byte limit
//
// # Thread Safety
//
// A Vector is not safe for concurrent use. Allocators are.
package bytevec
