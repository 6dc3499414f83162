// Package analysis summarizes escape grids.
//
//   - [Summarize]: masked/escaped counts and the unmasked value range
//   - [Histogram]: number of cells per escape iteration
//   - [BudgetProfile]: sweep of the iteration budget, recording how many
//     cells stay masked at each value
//
// # Budget sweeps
//
// The masked fraction falls as the budget grows and flattens once the
// budget resolves the boundary at the chosen resolution:
//
//	profile, _ := analysis.BudgetProfile(ctx, p, analysis.Budgets(1, 80, 40))
package analysis
