// Package leveling implements deterministic, capacity-constrained resource
// leveling for a single project. Tasks are ordered by propagated importance,
// assigned greedily day by day against a run-scoped usage ledger, and the
// final state is aggregated into utilization and delay analytics.
package leveling
