package mem

import (
	"fmt"
	"sync"
)

// Fault defines specific failure behavior.
type Fault struct {
	FailAfterCalls int // Fail Allocate/Reallocate after this many successful calls. -1 to disable.
	FailAboveBytes int // Fail requests larger than this many bytes. -1 to disable.
	Err            error
}

// NoFault is a Fault that never triggers.
var NoFault = Fault{FailAfterCalls: -1, FailAboveBytes: -1}

// Faulty is an Allocator wrapper that can inject allocation failures.
type Faulty struct {
	Base Allocator

	mu       sync.Mutex
	fault    Fault
	calls    int
	failures int
}

// NewFaulty creates a new Faulty wrapping base (Heap if nil) with no fault armed.
func NewFaulty(base Allocator) *Faulty {
	if base == nil {
		base = NewHeap()
	}
	return &Faulty{Base: base, fault: NoFault}
}

// SetFault arms a fault and resets the call counter.
func (f *Faulty) SetFault(fault Fault) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fault = fault
	f.calls = 0
}

// FailAll makes every subsequent request fail.
func (f *Faulty) FailAll() {
	f.SetFault(Fault{FailAfterCalls: 0, FailAboveBytes: -1})
}

// Disarm stops injecting failures.
func (f *Faulty) Disarm() {
	f.SetFault(NoFault)
}

// Failures returns the number of injected failures so far.
func (f *Faulty) Failures() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.failures
}

func (f *Faulty) check(n int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	fail := (f.fault.FailAfterCalls >= 0 && f.calls >= f.fault.FailAfterCalls) ||
		(f.fault.FailAboveBytes >= 0 && n > f.fault.FailAboveBytes)
	if !fail {
		f.calls++
		return nil
	}

	f.failures++
	if f.fault.Err != nil {
		return f.fault.Err
	}
	return fmt.Errorf("%w: injected fault (%d bytes)", ErrOutOfMemory, n)
}

// Allocate implements Allocator.
func (f *Faulty) Allocate(n int) ([]byte, error) {
	if err := f.check(n); err != nil {
		return nil, err
	}
	return f.Base.Allocate(n)
}

// Reallocate implements Allocator. Shrinking requests are subject to faults too.
func (f *Faulty) Reallocate(buf []byte, n int) ([]byte, error) {
	if err := f.check(n); err != nil {
		return nil, err
	}
	return f.Base.Reallocate(buf, n)
}

// Free implements Allocator.
func (f *Faulty) Free(buf []byte) {
	f.Base.Free(buf)
}
