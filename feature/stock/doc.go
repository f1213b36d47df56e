// Package stock implements the nightly inventory update feature.
//
// Every item in the shop's ledger carries a name, a sell countdown and a
// quality score. Once per simulated night the ledger is updated: each item's
// quality moves according to a per-name rule, then its countdown moves
// according to a second per-name rule. The quality rule always sees the
// countdown as it was before the night's update.
//
// # Rule Resolution
//
// Two fixed tables map item names to rules, one for quality and one for the
// sell countdown. Lookups never fail: names absent from a table fall back to
// the default rule (ordinary decay, ordinary countdown). The tables are
// package-level values built once and never mutated.
//
// # Rule Kinds
//
// Quality rules are tagged variants interpreted by a single evaluator:
//
//   - Standard: flat nightly rate, steeper once the sell date has passed
//     (covers ordinary stock, Aged Brie and conjured items via different rates)
//   - Legendary: quality never changes and may sit above the usual cap
//   - BackstagePass: +1, +2 or +3 depending on how close the event is,
//     then zero once it has passed
//
// After every non-legendary rule the quality is clamped into [0,50];
// legendary items only honor the floor.
//
// # Components
//
//   - ApplyOneDayUpdate: the one-night orchestrator over a ledger slice.
//   - Service: wraps the orchestrator with structured logging and summaries.
//   - SampleStock: the demo ledger used by the simulate command.
package stock
