package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/san-kum/bondsim/internal/bondgraph"
)

const (
	metadataFile  = "metadata.json"
	equationsFile = "equations.csv"
)

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
	ID        string    `json:"id"`
	Model     string    `json:"model"`
	Timestamp time.Time `json:"timestamp"`
	Elements  int       `json:"elements"`
	Bonds     int       `json:"bonds"`
	Equations int       `json:"equations"`
	SolvedFor string    `json:"solved_for,omitempty"`
}

// Record is one stored equation.
type Record struct {
	Element string
	Left    string
	Right   string
	Markup  string
}

// Save writes a derivation run and returns its id. solvedFor is empty for a
// plain derivation.
func (s *Store) Save(m *bondgraph.Model, solvedFor string, derived []bondgraph.Derived) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("%s_%d", m.Name, now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Model:     m.Name,
		Timestamp: now,
		Elements:  len(m.Elements()),
		Bonds:     len(m.Bonds()),
		Equations: len(derived),
		SolvedFor: solvedFor,
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, equationsFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write([]string{"element", "left", "right", "markup"}); err != nil {
		return "", err
	}
	for _, d := range derived {
		row := []string{
			d.Element,
			d.Equation.Left.String(),
			d.Equation.Right.String(),
			d.Equation.Markup(),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return runID, nil
}

// List returns every readable run, oldest first.
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

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadEquations(runID string) ([]Record, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, equationsFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = 4

	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return []Record{}, nil
	}

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, Record{Element: row[0], Left: row[1], Right: row[2], Markup: row[3]})
	}
	return records, nil
}
