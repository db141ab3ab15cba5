// Package graphaug provides stochastic graph-masking augmentations for
// self-supervised representation learning: corrupted views of a graph in
// which node features or edges have been removed, so a model can be trained
// to reconstruct what is missing.
//
// 🚀 What is graphaug?
//
//	A small, deterministic-by-seed library that brings together:
//		• Edge-index primitives: 2×E edge lists, stable source sort, degree,
//		  undirected symmetrization, CSR adjacency
//		• Random walks: uniform walks over CSR offset/target arrays
//		• Node-feature masking: per-row Bernoulli zeroing of a gonum matrix
//		• Edge masking: independent Bernoulli edge removal
//		• Path masking: correlated edge removal along random walks
//
// ✨ Why choose graphaug?
//
//   - Reproducible – every stochastic routine accepts WithSeed / WithRand
//   - Rock-solid guarantees – sentinel errors, validation before sampling
//   - Flat arrays under the hood – CSR adjacency, no per-node allocation
//   - Plays well with gonum – mat.Dense features, graph/simple interop
//
// Everything is organized under two subpackages:
//
//	edgeindex/ — EdgeIndex, CSR adjacency, random walks, gonum conversions
//	mask/      — Features, Edges, Path transforms + reusable masker adapters
//
// Quick ASCII example:
//
//	    0──▶1
//	    ▲   │
//	    └─2◀┘
//
//	a directed 3-cycle; Path masking with p=1 and walk length 1 removes
//	every edge, leaving the reconstruction target equal to the full cycle.
//
// Dive into the package docs of edgeindex and mask for contracts, error
// taxonomies, and worked examples.
//
//	go get github.com/katalvlaran/graphaug
package graphaug
