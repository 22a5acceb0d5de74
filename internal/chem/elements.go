// Package chem holds the static element data shared with the external
// bonding engine: per-element valence limits, display symbols, and van der
// Waals radii. The table is passed explicitly into the components that need
// it so tests can run scenarios with alternative element sets side by side.
package chem

import "fmt"

// RootParticleID is the particle the engine always spawns first. Its element
// is fixed by the engine and is the only atom type observable from the bond
// log alone.
const RootParticleID = 0

// RootAtomicNumber is the root particle's element (hydrogen).
const RootAtomicNumber = 1

// Element describes one entry of the engine's chemistry database.
type Element struct {
	// Symbol is the display symbol used in reports (e.g. "C").
	Symbol string

	// Valence is the maximum number of bonds an atom of this element may
	// participate in.
	Valence int

	// VdWRadius is the van der Waals radius in Angstroms. The renderer
	// multiplies it by the base atom radius to get on-screen size.
	VdWRadius float64
}

// Table maps atomic number to element data.
type Table map[int]Element

// DefaultTable returns the element set the engine ships with.
func DefaultTable() Table {
	return Table{
		1:  {Symbol: "H", Valence: 1, VdWRadius: 1.2},
		6:  {Symbol: "C", Valence: 4, VdWRadius: 1.7},
		7:  {Symbol: "N", Valence: 3, VdWRadius: 1.55},
		8:  {Symbol: "O", Valence: 2, VdWRadius: 1.52},
		15: {Symbol: "P", Valence: 5, VdWRadius: 1.8},
		16: {Symbol: "S", Valence: 2, VdWRadius: 1.8},
	}
}

// Valence returns the bond limit for an atomic number.
// ok is false for elements outside the table.
func (t Table) Valence(atomicNumber int) (valence int, ok bool) {
	e, ok := t[atomicNumber]
	return e.Valence, ok
}

// Symbol returns the display symbol for an atomic number, or "?" if the
// element is not in the table.
func (t Table) Symbol(atomicNumber int) string {
	if e, ok := t[atomicNumber]; ok {
		return e.Symbol
	}
	return "?"
}

// Lookup returns the element for an atomic number or an error naming the
// missing entry.
func (t Table) Lookup(atomicNumber int) (Element, error) {
	e, ok := t[atomicNumber]
	if !ok {
		return Element{}, fmt.Errorf("chem: unknown atomic number %d", atomicNumber)
	}
	return e, nil
}
