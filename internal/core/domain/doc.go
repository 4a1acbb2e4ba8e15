// Package domain holds the hexagram engine's types and pure rules.
//
// A cast is six LineDraws, bottom first. ClassifyToss maps three coins to
// a Line; the Lines give a HexagramCode and a ChangingSet; Flip applies
// the set to get the changed code. Figure and Trigram are codes resolved
// against the reference tables, and a CastingResult bundles the lot.
// ParseNotation and FormatNotation convert a code and its ChangingSet to
// and from the six-symbol manual notation (+ - B A).
//
// The package imports only the standard library so every other layer can
// depend on it.
package domain
