// Package rii parses RefractiveIndex.INFO material records.
//
// 🚀 Record shape:
//
//	An RII record is a YAML document whose DATA list holds one or two
//	datasets. The first dataset defines the refractive index, either a
//	"formula N" entry (coefficients plus a wavelength_range, both
//	whitespace-separated strings in micrometers) or a "tabulated n"/
//	"tabulated nk" block of sample lines. A second dataset, when
//	present, is a "tabulated k" extinction table.
//
// ✨ The package reduces a record to a neutral catalog.Record, so every
// downstream representation (formula glass, interpolated medium) comes
// from the same factory as vendor catalog data. Wavelengths are
// micrometers in the record and nanometers past the boundary.
//
// ⚙️ Usage:
//
//	m, err := rii.Medium(yamlBytes, rii.NameFromPath(url))
//	n, err := m.CalcRindex(10600)
package rii
