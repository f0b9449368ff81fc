// Package storage persists benchmark outputs: raw wavefield snapshots,
// the per-point diagnostic listing and a JSON metadata record per run.
package storage

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/san-kum/isowave/internal/field"
)

// Snapshot file names inside a run directory.
const (
	SnapshotFile  = "wavefield_snapshot.bin"
	ReferenceFile = "wavefield_snapshot_cpu.bin"
	DiffFile      = "error_diff.txt"
	MetadataFile  = "metadata.json"
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

// Path resolves a file name inside the store directory.
func (s *Store) Path(name string) string {
	return filepath.Join(s.baseDir, name)
}

// RunMetadata is the JSON record written next to the snapshots.
type RunMetadata struct {
	Timestamp    time.Time `json:"timestamp"`
	Rows         int       `json:"rows"`
	Cols         int       `json:"cols"`
	Iterations   int       `json:"iterations"`
	Tolerance    float64   `json:"tolerance"`
	Workers      int       `json:"workers"`
	ParallelMs   int64     `json:"parallel_ms"`
	SerialMs     int64     `json:"serial_ms"`
	ErrorNorm    float64   `json:"error_norm"`
	PointsBeyond int       `json:"points_beyond_tolerance"`
	Passed       bool      `json:"passed"`
}

// SaveGrid dumps a grid as rows*cols little-endian float32 values in
// row-major order, no header or padding. The byte layout matches the
// in-memory grid exactly on every supported target.
func (s *Store) SaveGrid(name string, g *field.Grid) error {
	f, err := os.Create(s.Path(name))
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := binary.Write(w, binary.LittleEndian, g.Data); err != nil {
		return err
	}
	return w.Flush()
}

// LoadGrid reads a raw snapshot back into a grid with the given shape.
func LoadGrid(path string, nRows, nCols int) (*field.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	want := int64(nRows) * int64(nCols) * 4
	if info.Size() != want {
		return nil, fmt.Errorf("storage: %s holds %d bytes, want %d for %dx%d grid",
			path, info.Size(), want, nRows, nCols)
	}

	g := field.NewGrid(nRows, nCols)
	if err := binary.Read(bufio.NewReader(f), binary.LittleEndian, g.Data); err != nil {
		return nil, err
	}
	return g, nil
}

// SaveMetadata writes the run record as indented JSON.
func (s *Store) SaveMetadata(meta *RunMetadata) error {
	f, err := os.Create(s.Path(MetadataFile))
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

// LoadMetadata reads a run record back.
func (s *Store) LoadMetadata() (*RunMetadata, error) {
	data, err := os.ReadFile(s.Path(MetadataFile))
	if err != nil {
		return nil, err
	}
	meta := &RunMetadata{}
	if err := json.Unmarshal(data, meta); err != nil {
		return nil, err
	}
	return meta, nil
}

// CreateDiffLog opens the per-point diagnostic file for writing.
func (s *Store) CreateDiffLog() (*os.File, error) {
	return os.Create(s.Path(DiffFile))
}
