// Package replay records the input events of a session and plays them back
// frame by frame.
package replay

import (
	"github.com/younwookim/retroshell/internal/application/input"
)

// Version is written into every recording
const Version = "2.0"

// Frame holds the events delivered in a single frame
type Frame struct {
	F      int           `json:"f"`                // Frame number
	DT     float64       `json:"dt"`               // Delta time in seconds
	Events []input.Event `json:"events,omitempty"` // Events in delivery order
}

// Data contains all data needed to replay a session
type Data struct {
	Version   string  `json:"version"`
	Seed      int64   `json:"seed"`
	Home      string  `json:"home"`
	StartTime string  `json:"startTime"`
	Frames    []Frame `json:"frames"`
}
