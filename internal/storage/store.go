package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/san-kum/algoviz/internal/export"
)

// Store keeps recorded runs on disk, one directory per run holding its
// metadata, full JSON trace and a CSV table of its steps.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID          string    `json:"id"`
	Algorithm   string    `json:"algorithm"`
	Kind        string    `json:"kind"`
	Timestamp   time.Time `json:"timestamp"`
	Seed        int64     `json:"seed"`
	Steps       int       `json:"steps"`
	Completed   bool      `json:"completed"`
	Comparisons int       `json:"comparisons"`
	Swaps       int       `json:"swaps"`
	TotalWeight int       `json:"total_weight,omitempty"`
}

func (s *Store) Save(tr *export.Trace, seed int64) (string, error) {
	runDir := filepath.Join(s.baseDir, tr.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        tr.ID,
		Algorithm: tr.Algorithm,
		Kind:      tr.Kind,
		Timestamp: tr.Created,
		Seed:      seed,
		Steps:     len(tr.Steps),
	}
	if final, ok := tr.Final(); ok {
		meta.Completed = final.Terminal
		meta.Comparisons = final.Stats.Comparisons
		meta.Swaps = final.Stats.Swaps
		if final.Graph != nil {
			meta.TotalWeight = final.Graph.TotalWeight
		}
	}

	if err := writeFile(filepath.Join(runDir, "metadata.json"), func(f *os.File) error {
		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		return enc.Encode(meta)
	}); err != nil {
		return "", err
	}
	if err := writeFile(filepath.Join(runDir, "trace.json"), func(f *os.File) error {
		return export.WriteJSON(f, tr)
	}); err != nil {
		return "", err
	}
	if err := writeFile(filepath.Join(runDir, "steps.csv"), func(f *os.File) error {
		return export.WriteCSV(f, tr.Steps)
	}); err != nil {
		return "", err
	}
	return tr.ID, nil
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// List returns the metadata of every stored run, oldest first. Directories
// without readable metadata are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	slices.SortFunc(runs, func(a, b RunMetadata) int { return a.Timestamp.Compare(b.Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) LoadTrace(runID string) (*export.Trace, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "trace.json"))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return export.ReadJSON(f)
}
