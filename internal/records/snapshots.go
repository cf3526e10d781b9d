package records

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// SnapshotStore keeps the legacy per-vertical lead exports: one JSON array
// per vertical, named after the storage key the old landing pages wrote
// ("<vertical>_blueprint_leads"). Appends are read-modify-write with an
// atomic tmp+rename; a corrupt file degrades to an empty collection instead
// of failing the submission.
type SnapshotStore struct {
	dir string
}

func NewSnapshotStore(dir string) *SnapshotStore {
	return &SnapshotStore{dir: dir}
}

func (s *SnapshotStore) path(vertical string) string {
	return filepath.Join(s.dir, vertical+"_blueprint_leads.json")
}

// Load returns the snapshots recorded for a vertical. A missing file is an
// empty collection; a file that fails to parse is logged and treated the
// same way.
func (s *SnapshotStore) Load(vertical string) ([]LeadSnapshot, error) {
	blob, err := os.ReadFile(s.path(vertical))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []LeadSnapshot{}, nil
		}
		return nil, err
	}
	var snaps []LeadSnapshot
	if err := json.Unmarshal(blob, &snaps); err != nil {
		log.Printf("snapshot store: corrupt %s, starting empty: %v", s.path(vertical), err)
		return []LeadSnapshot{}, nil
	}
	return snaps, nil
}

// Append adds one snapshot to the vertical's collection.
func (s *SnapshotStore) Append(vertical string, snap LeadSnapshot) error {
	snaps, err := s.Load(vertical)
	if err != nil {
		return fmt.Errorf("load snapshots: %w", err)
	}
	snaps = append(snaps, snap)

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	blob, err := json.MarshalIndent(snaps, "", "  ")
	if err != nil {
		return err
	}
	path := s.path(vertical)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, blob, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
