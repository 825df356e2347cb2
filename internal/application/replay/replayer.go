package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/younwookim/retroshell/internal/application/input"
)

// Replayer feeds recorded frames back in order
type Replayer struct {
	data  Data
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data Data) *Replayer {
	return &Replayer{data: data}
}

// Decode reads a recording from r
func Decode(r io.Reader) (*Data, error) {
	var data Data
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	return &data, nil
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*Data, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()
	return Decode(file)
}

// Next returns the next frame's delta time and events.
// ok is false once every frame has been played.
func (r *Replayer) Next() (dt float64, events []input.Event, ok bool) {
	if r.frame >= len(r.data.Frames) {
		return 0, nil, false
	}
	f := r.data.Frames[r.frame]
	r.frame++
	return f.DT, f.Events, true
}

func (r *Replayer) CurrentFrame() int { return r.frame }
func (r *Replayer) TotalFrames() int  { return len(r.data.Frames) }
func (r *Replayer) Seed() int64       { return r.data.Seed }
func (r *Replayer) Home() string      { return r.data.Home }
func (r *Replayer) Reset()            { r.frame = 0 }

// Idle creates a recording of frames with no input, stepping at dt
func Idle(frames int, dt float64) Data {
	data := Data{Version: Version, Frames: make([]Frame, frames)}
	for i := range data.Frames {
		data.Frames[i] = Frame{F: i, DT: dt}
	}
	return data
}
