// Package quasi implements probabilistic error cancellation (PEC): sampling
// from quasi-probability decompositions of ideal operations over noisy,
// implementable ones, and aggregating executions into an unbiased estimate
// of the noiseless expectation value.
//
// 🚀 What is PEC?
//
//	A noisy device cannot run an ideal gate G, but it can run a family of
//	noisy operations {B_j}. If G = Σ eta_j·B_j for real eta_j summing to 1,
//	then drawing B_j with probability |eta_j|/γ (γ = Σ|eta_j|) and
//	rescaling each measurement by γ·sign(eta_j) yields a random variable
//	whose expectation is the ideal, noiseless value. The price is variance:
//	γ grows with noise, and the sample cost grows with γ².
//
// ✨ Pipeline (strictly forward, no cycles):
//   - basis    — DepolarizingBasis builds implementable operations
//   - solve    — RepresentDepolarizing (closed form) / Represent (numeric)
//   - sample   — Representation.Sample, SampleCircuit (explicit *rand.Rand)
//   - estimate — Estimate executes and reduces; Run wires it all together
//
// ⚙️ Usage:
//
//	import "github.com/quasarlab/quasiq/quasi"
//
//	g := circuit.NewGate("H", []int{0})
//	rep, _ := quasi.RepresentDepolarizing(g, 0.01)
//	ideal, _ := circuit.New(g)
//	res, err := quasi.Run(ctx, ideal, []*quasi.Representation{rep}, exec,
//	    quasi.WithNumSamples(2000), quasi.WithSeed(7))
//	// res.Value() ± res.StdErr()
//
// Correctness contract: E[γ·sign·measured] over the sampling distribution
// equals the true noiseless expectation value — the unbiasedness property
// every test in this package ultimately defends.
//
// Failure semantics: infeasible bases, degenerate distributions, invalid
// parameters, and executor failures are all surfaced to the caller via
// sentinel errors; no failed sample is ever silently dropped (that would
// bias the estimator). Retry policy belongs to the executor, not here.
package quasi
