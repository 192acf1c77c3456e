// Package catalog turns vendor catalog records into optical media.
//
// 🚀 The factory pattern:
//
//	Catalog files (vendor sheets, RefractiveIndex.INFO records, user
//	glass lists) reduce to one neutral Record shape: a formula tag with
//	coefficients, or tabulated samples, or an (nd, Vd) specification, or
//	a constant index. Medium inspects the record and constructs the
//	matching representation, so callers never dispatch on formula
//	families themselves.
//
// ✨ Also here:
//   - ModelGlass: a mutable medium defined only by its six-digit glass
//     code, backed by a Buchdahl fit and refittable in place with Update
//   - unit normalization: records declare wavelength domains in
//     micrometers or nanometers; everything past the Record boundary is
//     nanometers
//
// ⚙️ Usage:
//
//	m, err := catalog.Medium(catalog.Record{
//	    Name: "N-BK7", Catalog: "Schott",
//	    Formula: "sellmeier",
//	    Coefs:   coefs,
//	    DomainMin: 0.3, DomainMax: 2.5, // µm by default
//	})
package catalog
