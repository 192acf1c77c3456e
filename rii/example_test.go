package rii_test

import (
	"fmt"

	"github.com/katlumen/opticalglass/rii"
)

// ExampleMedium parses a downloaded database record and queries it.
func ExampleMedium() {
	record := []byte(`DATA:
  - type: tabulated n
    data: |
        0.40 1.53024
        0.4861327 1.52238
        0.5875618 1.51680
        0.6562725 1.51432
        0.70 1.51314
`)

	name, cat := rii.NameFromPath("database/data/glass/schott/N-BK7.yml")
	m, err := rii.Medium(record, name, cat)
	if err != nil {
		fmt.Println(err)
		return
	}

	nd, _ := m.Rindex("d")
	fmt.Printf("%s (%s) nd=%.5f\n", m.Name(), m.CatalogName(), nd)
	// Output: N-BK7 (rii-schott) nd=1.51680
}
