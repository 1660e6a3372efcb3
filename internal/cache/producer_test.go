package cache

import (
	"errors"
	"testing"
	"time"
)

// rawDist exposes the engine stream unchanged (test distribution).
func rawDist() Distribution[uint64] {
	return func(engine Engine) Sampler[uint64] {
		return engine.Uint64
	}
}

// drainChunk pops every value from a full chunk.
func drainChunk(t *testing.T, c *chunk[uint64]) []uint64 {
	t.Helper()
	var out []uint64
	for !c.empty() {
		out = append(out, c.pop())
	}
	return out
}

// TestProducerStreamIsDeterministic verifies two producers with the
// same child seed hand over identical chunks.
func TestProducerStreamIsDeterministic(t *testing.T) {
	const seed, size = 1234, 32

	a := newProducer(rawDist(), PCG, seed, size)
	defer a.stop()
	b := newProducer(rawDist(), PCG, seed, size)
	defer b.stop()

	chunkA, err := a.swap(newChunk[uint64](size))
	if err != nil {
		t.Fatalf("swap a: %v", err)
	}
	chunkB, err := b.swap(newChunk[uint64](size))
	if err != nil {
		t.Fatalf("swap b: %v", err)
	}

	valuesA := drainChunk(t, chunkA)
	valuesB := drainChunk(t, chunkB)
	for i := range valuesA {
		if valuesA[i] != valuesB[i] {
			t.Fatalf("value %d: %d != %d (same seed must give same stream)", i, valuesA[i], valuesB[i])
		}
	}
}

// TestProducerRefillsHandedChunk verifies the producer keeps generating
// into the chunk it received at the previous swap: consecutive swaps
// yield consecutive segments of one stream.
func TestProducerRefillsHandedChunk(t *testing.T) {
	const seed, size = 99, 8

	p := newProducer(rawDist(), PCG, seed, size)
	defer p.stop()

	first, err := p.swap(newChunk[uint64](size))
	if err != nil {
		t.Fatalf("first swap: %v", err)
	}
	got := drainChunk(t, first)

	second, err := p.swap(first)
	if err != nil {
		t.Fatalf("second swap: %v", err)
	}
	got = append(got, drainChunk(t, second)...)

	// Reference stream from a directly-seeded engine.
	ref := PCG(seed)
	for i, v := range got {
		if want := ref.Uint64(); v != want {
			t.Fatalf("draw %d: got %d, want %d", i, v, want)
		}
	}
}

// TestProducerStopWhileIdle verifies stop joins a producer whose fill
// goroutine is parked on a full chunk (the common shutdown path).
func TestProducerStopWhileIdle(t *testing.T) {
	p := newProducer(rawDist(), PCG, 7, 16)

	// Let the initial fill complete so the goroutine is waiting.
	if _, err := p.swap(newChunk[uint64](16)); err != nil {
		t.Fatalf("swap: %v", err)
	}

	done := make(chan struct{})
	go func() {
		p.stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("stop did not join the fill goroutine")
	}
}

// TestSwapAfterStopReturnsError verifies the post-shutdown access error
// is surfaced rather than hanging or silently succeeding.
func TestSwapAfterStopReturnsError(t *testing.T) {
	p := newProducer(rawDist(), PCG, 7, 16)
	p.stop()

	_, err := p.swap(newChunk[uint64](16))
	if !errors.Is(err, ErrCacheClosed) {
		t.Fatalf("swap after stop: got %v, want ErrCacheClosed", err)
	}
}

// TestStopUnblocksInflightSwap verifies a swap waiting on a slow fill
// resolves (with an error or a full chunk) once stop is called, instead
// of waiting forever.
func TestStopUnblocksInflightSwap(t *testing.T) {
	// A sampler slow enough that the fill is still running when the
	// swap arrives.
	slow := Distribution[uint64](func(engine Engine) Sampler[uint64] {
		return func() uint64 {
			time.Sleep(time.Millisecond)
			return engine.Uint64()
		}
	})

	p := newProducer(slow, PCG, 7, 256)

	swapDone := make(chan error, 1)
	go func() {
		_, err := p.swap(newChunk[uint64](256))
		swapDone <- err
	}()

	time.Sleep(10 * time.Millisecond) // let the swap start waiting
	stopDone := make(chan struct{})
	go func() {
		p.stop()
		close(stopDone)
	}()

	select {
	case err := <-swapDone:
		// Either outcome is legal depending on who won the race; the
		// requirement is that neither side hangs.
		if err != nil && !errors.Is(err, ErrCacheClosed) {
			t.Fatalf("unexpected swap error: %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("swap did not resolve after stop")
	}

	select {
	case <-stopDone:
	case <-time.After(10 * time.Second):
		t.Fatal("stop did not return")
	}
}

// TestProducerStallCounter verifies a swap that beats the refill is
// counted as a stall.
func TestProducerStallCounter(t *testing.T) {
	slow := Distribution[uint64](func(engine Engine) Sampler[uint64] {
		return func() uint64 {
			time.Sleep(time.Millisecond)
			return engine.Uint64()
		}
	})

	p := newProducer(slow, PCG, 7, 64)
	defer p.stop()

	if _, err := p.swap(newChunk[uint64](64)); err != nil {
		t.Fatalf("swap: %v", err)
	}

	if got := p.stalls.Load(); got != 1 {
		t.Errorf("stalls: got %d, want 1 (swap arrived mid-fill)", got)
	}
	if got := p.swaps.Load(); got != 1 {
		t.Errorf("swaps: got %d, want 1", got)
	}
}
