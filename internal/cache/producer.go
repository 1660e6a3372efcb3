package cache

import (
	"sync"
	"sync/atomic"
)

// producer pairs one privately-seeded sampler with one fill goroutine
// and one owned chunk.
//
// The owned chunk's full/drained state is the sole handshake between the
// fill goroutine and swap: both wait on the same cond under mu. At any
// instant at most one side can be waiting (the fill side waits only
// while the chunk is full, the swap side only while it is not), so
// Signal never loses a wakeup; stop broadcasts to cover both.
//
// Goroutine topology:
//   - 1 fixed: run (spawned by newProducer, joined by stop)
//
// Thread-safety: swap is single-caller by the cache's round-robin
// protocol; stop may race a swap and resolves it with ErrCacheClosed.
type producer[T any] struct {
	mu       sync.Mutex
	cond     *sync.Cond
	shutdown bool
	chunk    *chunk[T]
	sample   Sampler[T]
	wg       sync.WaitGroup

	// --- Operational stats (read by Stats without mu) ---

	seed   uint64        // child seed, immutable after construction
	fills  atomic.Uint64 // completed refills
	swaps  atomic.Uint64 // chunks handed to the consumer
	stalls atomic.Uint64 // swaps that found the refill unfinished
}

// newProducer binds the distribution to a fresh engine seeded with the
// child seed and immediately starts the fill goroutine, so the first
// chunk is being produced before the consumer asks for it.
func newProducer[T any](d Distribution[T], engine EngineFactory, seed uint64, chunkSize int) *producer[T] {
	p := &producer[T]{
		chunk:  newChunk[T](chunkSize),
		sample: d(engine(seed)),
		seed:   seed,
	}
	p.cond = sync.NewCond(&p.mu)
	p.wg.Add(1)
	go p.run()
	return p
}

// run is the perpetual fill loop.
//
// Algorithm:
//  1. Wait until the owned chunk is drained or shutdown is requested.
//  2. On shutdown, exit.
//  3. Refill the chunk (exactly cap samples, under mu), then signal.
//
// The refill happens with mu held: a concurrent swap must wait for a
// full chunk anyway, so releasing the lock mid-fill would buy nothing
// and would let the two sides observe a half-filled buffer. A shutdown
// requested mid-fill is observed after the fill completes.
func (p *producer[T]) run() {
	defer p.wg.Done()
	for {
		p.mu.Lock()
		for !p.shutdown && !p.chunk.empty() {
			p.cond.Wait()
		}
		if p.shutdown {
			p.mu.Unlock()
			return
		}
		p.chunk.refill(p.sample)
		p.fills.Add(1)
		p.mu.Unlock()
		p.cond.Signal()
	}
}

// swap blocks until the owned chunk is full, then exchanges it for the
// caller's drained chunk and wakes the fill goroutine.
//
// Returns ErrCacheClosed, with no exchange, if the producer has been
// stopped. A correctly sequenced cache never sees this; it surfaces only
// when a caller races Next against Close.
func (p *producer[T]) swap(drained *chunk[T]) (*chunk[T], error) {
	p.mu.Lock()
	if !p.shutdown && !p.chunk.full() {
		// The consumer got here before the refill finished.
		p.stalls.Add(1)
	}
	for !p.shutdown && !p.chunk.full() {
		p.cond.Wait()
	}
	if p.shutdown {
		p.mu.Unlock()
		return nil, ErrCacheClosed
	}
	full := p.chunk
	p.chunk = drained
	p.mu.Unlock()
	p.swaps.Add(1)
	p.cond.Signal()
	return full, nil
}

// stop requests shutdown, wakes whichever side is waiting, and joins the
// fill goroutine. Safe while a fill or a swap is in flight.
func (p *producer[T]) stop() {
	p.mu.Lock()
	p.shutdown = true
	p.mu.Unlock()
	p.cond.Broadcast()
	p.wg.Wait()
}
