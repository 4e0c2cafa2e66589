package main

import (
	"sort"

	"github.com/f3rmion/blsconv/bls12381"
	"github.com/f3rmion/blsconv/group"
)

// backends maps -backend values to constructors. Build-tagged files add
// entries from init.
var backends = map[string]func() group.Pairing{
	"gnark": func() group.Pairing { return &bls12381.BLS12381{} },
}

func backendNames() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
