//go:build blst

package main

import (
	"github.com/f3rmion/blsconv/blstgroup"
	"github.com/f3rmion/blsconv/group"
)

func init() {
	backends["blst"] = func() group.Pairing { return &blstgroup.BLST{} }
}
