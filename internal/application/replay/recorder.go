package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/younwookim/retroshell/internal/application/input"
)

// Recorder collects input events for replay
type Recorder struct {
	data      Data
	recording bool
}

// NewRecorder creates a recorder. seed and home are stored so a replay can
// rebuild the same shell.
func NewRecorder(seed int64, home string) *Recorder {
	return &Recorder{
		data: Data{
			Version:   Version,
			Seed:      seed,
			Home:      home,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]Frame, 0, 3600), // ~1 minute at 60fps
		},
		recording: true,
	}
}

// RecordFrame appends one frame
func (r *Recorder) RecordFrame(dt float64, events []input.Event) {
	if !r.recording {
		return
	}
	r.data.Frames = append(r.data.Frames, Frame{
		F:      len(r.data.Frames),
		DT:     dt,
		Events: slices.Clone(events),
	})
}

// Write encodes the recording as indented JSON
func (r *Recorder) Write(w io.Writer) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return nil
}

// Save writes the recording to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()
	return r.Write(file)
}

func (r *Recorder) Stop()             { r.recording = false }
func (r *Recorder) IsRecording() bool { return r.recording }
func (r *Recorder) FrameCount() int   { return len(r.data.Frames) }
func (r *Recorder) Data() Data        { return r.data }

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
