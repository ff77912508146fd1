package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/san-kum/ardusim/internal/frames"
	"github.com/san-kum/ardusim/internal/script"
)

const (
	metadataFile = "metadata.json"
	framesFile   = "frames.json"
	summaryFile  = "frames.csv"
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
	ID        string             `json:"id"`
	Script    string             `json:"script"`
	Timestamp time.Time          `json:"timestamp"`
	Frames    int                `json:"frames"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Save writes a run as metadata.json, frames.json and a frames.csv summary
// with one column per variable.
func (s *Store) Save(result *script.Result) (string, error) {
	name := result.Script
	if name == "" {
		name = "run"
	}
	runID := fmt.Sprintf("%s_%s", name, uuid.NewString()[:8])
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Script:    result.Script,
		Timestamp: time.Now(),
		Frames:    len(result.Frames),
		Metrics:   result.Metrics,
	}
	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}
	if err := writeJSON(filepath.Join(runDir, framesFile), result.Frames); err != nil {
		return "", err
	}
	if err := writeSummary(filepath.Join(runDir, summaryFile), result.Frames); err != nil {
		return "", err
	}

	return runID, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeSummary(path string, history []frames.ArduinoFrame) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)

	names := VariableNames(history)
	header := []string{"frame", "block_id", "block_name", "function", "iteration", "delay", "tx_led", "builtin_led", "explanation"}
	header = append(header, names...)
	if err := w.Write(header); err != nil {
		return err
	}

	for _, fr := range history {
		row := []string{
			strconv.Itoa(fr.FrameNumber),
			fr.BlockID,
			fr.BlockName,
			string(fr.TimeLine.Function),
			strconv.Itoa(fr.TimeLine.Iteration),
			strconv.Itoa(fr.Delay),
			strconv.FormatBool(fr.TxLedOn),
			strconv.FormatBool(fr.BuiltInLedOn),
			fr.Explanation,
		}
		for _, name := range names {
			v, ok := fr.Variables[name]
			if !ok {
				row = append(row, "")
				continue
			}
			row = append(row, frames.FormatValue(v.Value, v.Type))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// VariableNames returns every variable name seen across the frames, sorted.
func VariableNames(history []frames.ArduinoFrame) []string {
	seen := make(map[string]struct{})
	for _, f := range history {
		for name := range f.Variables {
			seen[name] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

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
	data, err := s.read(runID, metadataFile)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}

	return &meta, nil
}

func (s *Store) LoadFrames(runID string) ([]frames.ArduinoFrame, error) {
	data, err := s.read(runID, framesFile)
	if err != nil {
		return nil, err
	}

	var history []frames.ArduinoFrame
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	return history, nil
}

func (s *Store) read(runID, name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	return data, err
}
