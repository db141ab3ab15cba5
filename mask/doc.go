// Package mask implements stochastic graph-masking augmentations: corrupted
// views of a graph used as training signal for masked graph autoencoders
// and contrastive pretraining, where a model must reconstruct what was
// removed.
//
// What
//
//   - Features(x, q): a copy of the N×D feature matrix in which each row is
//     independently zeroed with probability q (whole rows, never individual
//     dimensions).
//   - Edges(ei, p): independent Bernoulli removal of edges; returns an
//     EdgeSplit partitioning the columns into Remaining and Masked.
//   - Path(ei, p): correlated removal; round(p·N) start nodes (or
//     Bernoulli-sampled edge sources) each launch walksPerNode uniform
//     random walks of up to walkLength steps over a CSR adjacency, and
//     every traversed edge is routed to the Masked set.
//   - NodeMasker / EdgeMasker / PathMasker: adapters that store their
//     configuration once and apply it per call; the edge adapters can
//     symmetrize the Remaining set for undirected consumption.
//
// Why
//
//   - Independent edge dropout removes uncorrelated edges; path masking
//     removes connected stretches of the graph, a strictly harder
//     reconstruction target.
//   - All transforms are pure: inputs are never mutated, every call builds
//     its own ephemeral state, and nothing is shared between calls.
//
// Determinism
//
//	Every transform accepts WithSeed / WithRand. Trial order is fixed (rows
//	ascending, columns ascending, starts in selection order), so a fixed
//	seed reproduces outcomes exactly. Without an RNG option a time-seeded
//	source is created per call.
//
// Complexity (N = nodes, E = edges, W = walks per node, L = walk length)
//
//   - Features: O(N·D) for the copy, O(N) trials.
//   - Edges:    O(E).
//   - Path:     O(E log E) sort + O(N + E) CSR + O(S·W·L) walking, where S
//     is the number of selected starts.
//
// Errors
//
//   - ErrInvalidProbability  if p or q lies outside [0,1].
//   - ErrUnknownStartMode    if a start mode is neither StartNode nor StartEdge.
//   - ErrOptionViolation     if an option value is meaningless (nil RNG,
//     negative walk length, ...).
//   - ErrNilFeatures / ErrNilEdgeIndex for missing inputs.
//
// Validation always precedes sampling: a failed call has no observable
// effect.
package mask
