// Package builder implements the name-based reaction network facade over
// core: species are referred to by string name instead of integer index,
// reactants and products are multisets (repeated names increment
// multiplicity), and a single Network accumulates reactions before Run
// materializes and drives a core.Gillespie engine.
//
// Species auto-register in first-seen order across AddReaction calls, so the
// resulting name-to-index mapping is a pure function of call order — not
// sorted, not hashed. Run replays every stored reaction as one rate.LMA via
// core.Gillespie.AddReaction, in the order the reactions were added, then
// remaps the engine's index-keyed trajectory back to the caller's names.
package builder
