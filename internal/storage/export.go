package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/ardusim/internal/frames"
)

type ExportData struct {
	Run    RunMetadata           `json:"run"`
	Frames []frames.ArduinoFrame `json:"frames"`
}

// Export writes a stored run and all of its frames as one JSON document.
func (s *Store) Export(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	history, err := s.LoadFrames(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ExportData{Run: *meta, Frames: history})
}
