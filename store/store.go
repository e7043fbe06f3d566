// SPDX-License-Identifier: MIT
//
// File: store.go
// Role: bolthold-backed persistence of finalized graphs, one slot per variant.
// Concurrency:
//   - bbolt serializes writers; Save and Load each run in one transaction.

package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/timshannon/bolthold"
	"go.etcd.io/bbolt"

	"github.com/katalvlaran/collabgraph/core"
)

var (
	// ErrNotFound indicates no graph is saved for the variant.
	ErrNotFound = errors.New("store: graph not found")

	// ErrCorrupt indicates saved records disagree with their manifest or
	// violate graph invariants.
	ErrCorrupt = errors.New("store: saved graph is corrupt")
)

// Store persists graphs in a single bbolt file.
type Store struct {
	db     *bolthold.Store
	logger logrus.FieldLogger
}

// Open opens or creates the store at path. The parent directory is created
// if needed.
func Open(path string, logger logrus.FieldLogger) (*Store, error) {
	if logger == nil {
		discard := logrus.New()
		discard.Out = io.Discard
		logger = discard
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := bolthold.Open(path, 0o644, &bolthold.Options{
		Encoder: json.Marshal,
		Decoder: json.Unmarshal,
		Options: &bbolt.Options{
			Timeout:      5 * time.Second,
			NoGrowSync:   bbolt.DefaultOptions.NoGrowSync,
			FreelistType: bbolt.DefaultOptions.FreelistType,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}

	return &Store{db: db, logger: logger.WithField("module", "store")}, nil
}

// Close releases the underlying file.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save replaces whatever is stored for v with g. Old records are removed and
// the new ones written in the same transaction, so a failed save leaves the
// previous graph intact.
//
// Errors: core.ErrPrematureWeight if g is still building.
func (s *Store) Save(v Variant, g *core.Graph) (Manifest, error) {
	if !g.Finalized() {
		return Manifest{}, core.ErrPrematureWeight
	}
	snap := g.Snapshot()
	m := Manifest{
		Variant:    string(v),
		SnapshotID: uuid.NewString(),
		Phase:      snap.Phase.String(),
		Nodes:      len(snap.Nodes),
		Edges:      len(snap.Edges),
		CreatedAt:  time.Now().Unix(),
	}
	q := bolthold.Where("Variant").Eq(string(v))

	err := s.db.Bolt().Update(func(tx *bbolt.Tx) error {
		if err := s.db.TxDeleteMatching(tx, &NodeRecord{}, q); err != nil {
			return err
		}
		if err := s.db.TxDeleteMatching(tx, &EdgeRecord{}, q); err != nil {
			return err
		}
		for _, n := range snap.Nodes {
			rec := NodeRecord{Variant: string(v), ID: int64(n.Author.ID), Node: n}
			if err := s.db.TxUpsert(tx, nodeKey(v, n.Author.ID), &rec); err != nil {
				return err
			}
		}
		for _, e := range snap.Edges {
			rec := EdgeRecord{Variant: string(v), From: int64(e.From), To: int64(e.To), Weight: e.Weight}
			if err := s.db.TxUpsert(tx, edgeKey(v, e), &rec); err != nil {
				return err
			}
		}

		return s.db.TxUpsert(tx, manifestKey(v), &m)
	})
	if err != nil {
		return Manifest{}, fmt.Errorf("store: save %s: %w", v, err)
	}
	s.logger.WithFields(logrus.Fields{
		"variant":  v,
		"snapshot": m.SnapshotID,
		"nodes":    m.Nodes,
		"edges":    m.Edges,
	}).Info("graph saved")

	return m, nil
}

// Manifest returns the manifest saved for v, or ErrNotFound.
func (s *Store) Manifest(v Variant) (Manifest, error) {
	var m Manifest
	if err := s.db.Get(manifestKey(v), &m); err != nil {
		if errors.Is(err, bolthold.ErrNotFound) {
			return Manifest{}, fmt.Errorf("%w: %s", ErrNotFound, v)
		}
		return Manifest{}, fmt.Errorf("store: manifest %s: %w", v, err)
	}

	return m, nil
}

// Load reads the graph saved for v.
//
// Errors:
//   - ErrNotFound if nothing was saved for v.
//   - ErrCorrupt if the record counts disagree with the manifest or the
//     records do not form a valid finalized graph.
func (s *Store) Load(v Variant) (*core.Graph, error) {
	var (
		m     Manifest
		nodes []NodeRecord
		edges []EdgeRecord
	)
	q := bolthold.Where("Variant").Eq(string(v))

	err := s.db.Bolt().View(func(tx *bbolt.Tx) error {
		if err := s.db.TxGet(tx, manifestKey(v), &m); err != nil {
			return err
		}
		if err := s.db.TxFind(tx, &nodes, q); err != nil {
			return err
		}
		return s.db.TxFind(tx, &edges, q)
	})
	if err != nil {
		if errors.Is(err, bolthold.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, v)
		}
		return nil, fmt.Errorf("store: load %s: %w", v, err)
	}

	if len(nodes) != m.Nodes || len(edges) != m.Edges {
		return nil, fmt.Errorf("%w: %s: manifest lists %d nodes/%d edges, found %d/%d",
			ErrCorrupt, v, m.Nodes, m.Edges, len(nodes), len(edges))
	}

	snap := core.Snapshot{
		Phase: core.PhaseFinalized,
		Nodes: make([]core.Node, 0, len(nodes)),
		Edges: make([]core.Edge, 0, len(edges)),
	}
	for _, n := range nodes {
		if core.AuthorID(n.ID) != n.Node.Author.ID {
			return nil, fmt.Errorf("%w: %s: node record %d holds author %d", ErrCorrupt, v, n.ID, n.Node.Author.ID)
		}
		snap.Nodes = append(snap.Nodes, n.Node)
	}
	for _, e := range edges {
		snap.Edges = append(snap.Edges, core.Edge{
			From:     core.AuthorID(e.From),
			To:       core.AuthorID(e.To),
			Weight:   e.Weight,
			Weighted: true,
		})
	}
	g, err := core.FromSnapshot(snap)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, v, err)
	}
	s.logger.WithFields(logrus.Fields{"variant": v, "snapshot": m.SnapshotID}).Debug("graph loaded")

	return g, nil
}

// Delete removes everything saved for v.
//
// Errors: ErrNotFound if nothing was saved for v.
func (s *Store) Delete(v Variant) error {
	q := bolthold.Where("Variant").Eq(string(v))

	err := s.db.Bolt().Update(func(tx *bbolt.Tx) error {
		var m Manifest
		if err := s.db.TxGet(tx, manifestKey(v), &m); err != nil {
			return err
		}
		if err := s.db.TxDeleteMatching(tx, &NodeRecord{}, q); err != nil {
			return err
		}
		if err := s.db.TxDeleteMatching(tx, &EdgeRecord{}, q); err != nil {
			return err
		}

		return s.db.TxDelete(tx, manifestKey(v), &Manifest{})
	})
	switch {
	case errors.Is(err, bolthold.ErrNotFound):
		return fmt.Errorf("%w: %s", ErrNotFound, v)
	case err != nil:
		return fmt.Errorf("store: delete %s: %w", v, err)
	}
	s.logger.WithField("variant", v).Info("graph deleted")

	return nil
}
