package rating

// UniformSource yields a uniform draw in [0, 1). Injected so the
// simulation driver's outcome resampling is reproducible from a
// caller-seeded generator.
type UniformSource interface {
	Float64() float64
}

// GaussianSource yields a draw from Normal(0, 1). Priors are perturbed
// by scaling this draw by their own sigma.
type GaussianSource interface {
	NormFloat64() float64
}

// RNG bundles both sources the core ever needs. A caller typically
// backs both methods with the same math/rand.Rand.
type RNG interface {
	UniformSource
	GaussianSource
}
