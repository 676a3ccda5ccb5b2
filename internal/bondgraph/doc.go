// Package bondgraph models physical systems as bond graphs and derives their
// governing equations with the algebra package.
//
// A [Model] owns one [algebra.Arena]. Every [Bond] allocates its effort,
// flow, displacement and momentum symbols (plus the rates of the latter two)
// exactly once, and every element allocates its parameter the first time the
// model is derived:
//
//   - Se, Sf: effort and flow sources
//   - R, C, I: dissipative, capacitive and inertial one-ports
//   - TF, GY: transformer and gyrator two-ports with a two-label modulus
//   - 0, 1: common-effort and common-flow junctions
//
// # Example
//
//	m := bondgraph.NewModel("rc")
//	m.AddElement(bondgraph.KindEffortSource, "src")
//	m.AddElement(bondgraph.KindOneJunction, "j")
//	m.AddElement(bondgraph.KindResistor, "r")
//	m.Connect("src", "j", "")
//	m.Connect("j", "r", "")
//	eqs, err := m.Derive()
package bondgraph
