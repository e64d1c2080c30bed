// Package quasiq is a small, deterministic engine for quantum error
// mitigation by probabilistic error cancellation (PEC) — from transfer
// matrices to quasi-probability sampling and unbiased estimation.
//
// 🚀 What is quasiq?
//
//	A library-level computational core that brings together:
//		• channel — super-operator (Pauli-transfer) matrices, kernels,
//		  factorizations, and least-squares solves
//		• circuit — opaque operation handles composed by concatenation,
//		  with an adapter-friendly narrow interface
//		• quasi   — basis building, representation solving (closed-form
//		  and numeric), Monte Carlo circuit sampling, and aggregation
//
// ✨ Why choose quasiq?
//
//   - Deterministic by construction — explicit random sources, fixed loop
//     orders, no global state
//   - Rock-solid failure semantics — sentinel errors, no silently dropped
//     samples, unbiasedness preserved under concurrency
//   - Pure computational surface — the executor is a caller-supplied
//     function; no backend SDK is baked in
//   - Extensible — any type implementing circuit.Operation flows through
//     sampling and execution untouched
//
// Data flows strictly forward:
//
//	basis → representation → samples → executed results → estimate
//
// Dive into quasi/doc.go for the algorithm, channel/doc.go for the linear
// algebra, and the example tests for end-to-end usage.
package quasiq
