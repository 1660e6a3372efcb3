// Package dist provides ready-made distributions for rngcache, backed
// by gonum's distuv where the math is non-trivial.
//
// Every constructor returns an rngcache.Distribution: a binder that is
// invoked once per producer with that producer's private engine, so the
// underlying distuv struct (and any state it keeps) is never shared
// between goroutines.
//
// Usage:
//
//	cache, err := rngcache.New(dist.Normal(0, 1), rngcache.WithSeed(42))
package dist

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/e7canasta/rngcache"
)

// Normal returns a Gaussian distribution with mean mu and standard
// deviation sigma.
func Normal(mu, sigma float64) rngcache.Distribution[float64] {
	return func(engine rngcache.Engine) rngcache.Sampler[float64] {
		d := distuv.Normal{Mu: mu, Sigma: sigma, Src: engine}
		return d.Rand
	}
}

// Uniform returns a continuous uniform distribution on [min, max).
func Uniform(min, max float64) rngcache.Distribution[float64] {
	return func(engine rngcache.Engine) rngcache.Sampler[float64] {
		d := distuv.Uniform{Min: min, Max: max, Src: engine}
		return d.Rand
	}
}

// Exponential returns an exponential distribution with the given rate
// (mean 1/rate).
func Exponential(rate float64) rngcache.Distribution[float64] {
	return func(engine rngcache.Engine) rngcache.Sampler[float64] {
		d := distuv.Exponential{Rate: rate, Src: engine}
		return d.Rand
	}
}

// Poisson returns a Poisson distribution with the given mean. Samples
// are non-negative integers represented as float64, as distuv yields
// them.
func Poisson(lambda float64) rngcache.Distribution[float64] {
	return func(engine rngcache.Engine) rngcache.Sampler[float64] {
		d := distuv.Poisson{Lambda: lambda, Src: engine}
		return d.Rand
	}
}

// Bernoulli returns a Bernoulli distribution: 1 with probability p,
// else 0.
func Bernoulli(p float64) rngcache.Distribution[float64] {
	return func(engine rngcache.Engine) rngcache.Sampler[float64] {
		d := distuv.Bernoulli{P: p, Src: engine}
		return d.Rand
	}
}

// Raw exposes the engine's uint64 stream unchanged. Useful for
// consumers that do their own mapping and for verifying determinism
// against a directly-seeded engine.
func Raw() rngcache.Distribution[uint64] {
	return func(engine rngcache.Engine) rngcache.Sampler[uint64] {
		return engine.Uint64
	}
}

// UintN returns uniformly distributed integers in [0, n), using
// math/rand/v2's unbiased bounded draw rather than a plain modulo.
func UintN(n uint64) rngcache.Distribution[uint64] {
	return func(engine rngcache.Engine) rngcache.Sampler[uint64] {
		r := rand.New(engine)
		return func() uint64 { return r.Uint64N(n) }
	}
}
