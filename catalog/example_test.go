package catalog_test

import (
	"fmt"

	"github.com/katlumen/opticalglass/catalog"
)

// ExampleMedium builds media for a lens prescription that mixes a catalog
// glass with a model glass.
func ExampleMedium() {
	records := []catalog.Record{
		{
			Name: "N-BK7", Catalog: "Schott",
			Formula: "sellmeier",
			Coefs: []float64{1.03961212, 0.231792344, 1.01046945,
				0.00600069867, 0.0200179144, 103.560653},
			DomainMin: 0.3, DomainMax: 2.5,
		},
		{Name: "", Nd: 1.62004, Vd: 36.37},
	}

	for _, rec := range records {
		m, err := catalog.Medium(rec)
		if err != nil {
			fmt.Println(err)
			continue
		}
		nd, _ := m.Rindex("d")
		fmt.Printf("%s nd=%.4f\n", m.Name(), nd)
	}
	// Output:
	// N-BK7 nd=1.5168
	// 620.364 nd=1.6200
}
