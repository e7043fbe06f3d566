// SPDX-License-Identifier: MIT
//
// File: model.go
// Role: Persisted record types and graph variants.

package store

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/collabgraph/core"
)

// Variant names one of the two dataset flavours a graph can be built from.
type Variant string

const (
	// VariantFull is the complete dataset.
	VariantFull Variant = "full"

	// VariantReduced is the smaller dataset used for quick runs.
	VariantReduced Variant = "reduced"
)

// ParseVariant validates s.
func ParseVariant(s string) (Variant, error) {
	switch v := Variant(s); v {
	case VariantFull, VariantReduced:
		return v, nil
	default:
		return "", fmt.Errorf("store: unknown variant %q", s)
	}
}

// Manifest describes one saved graph. It is written last in the save
// transaction and read first on load.
type Manifest struct {
	Variant    string `json:"variant" boltholdIndex:"Variant"`
	SnapshotID string `json:"snapshotId"`
	Phase      string `json:"phase"`
	Nodes      int    `json:"nodes"`
	Edges      int    `json:"edges"`
	CreatedAt  int64  `json:"createdAt"`
}

// NodeRecord stores one author with its publications and conferences.
type NodeRecord struct {
	Variant string    `json:"variant" boltholdIndex:"Variant"`
	ID      int64     `json:"id"`
	Node    core.Node `json:"node"`
}

// EdgeRecord stores one weighted edge.
type EdgeRecord struct {
	Variant string  `json:"variant" boltholdIndex:"Variant"`
	From    int64   `json:"from"`
	To      int64   `json:"to"`
	Weight  float64 `json:"weight"`
}

func manifestKey(v Variant) string { return string(v) }

func nodeKey(v Variant, id core.AuthorID) string {
	return string(v) + "/" + strconv.FormatInt(int64(id), 10)
}

func edgeKey(v Variant, e core.Edge) string {
	return string(v) + "/" + strconv.FormatInt(int64(e.From), 10) + "-" + strconv.FormatInt(int64(e.To), 10)
}
