// Package render provides Renderer implementations for the simulator:
// a headless renderer, a logrus-backed renderer and a JSON-lines frame writer.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/gargshiv/bikeshare/sim"
)

// Headless draws nothing and reports the window closed immediately.
type Headless struct{}

func (Headless) RenderFrame(sim.Frame) {}

func (Headless) WindowClosed() bool { return true }

// Log writes a one-line summary of every frame at debug level.
type Log struct {
	Logger *logrus.Logger // defaults to the standard logger
}

func (l Log) RenderFrame(f sim.Frame) {
	logger := l.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	bikes := 0
	for _, st := range f.Stations {
		bikes += st.Bikes
	}
	logger.WithFields(logrus.Fields{
		"docked":    bikes,
		"in_flight": len(f.InFlight),
	}).Debugf("frame %s", f.Time.Format(sim.TimeLayout))
}

func (Log) WindowClosed() bool { return true }

// JSONLines writes each frame as one JSON object per line.
// The first write error is kept and returned by Err; later frames are skipped.
type JSONLines struct {
	enc    *json.Encoder
	frames int
	err    error
}

// NewJSONLines creates a JSONLines renderer writing to w.
func NewJSONLines(w io.Writer) *JSONLines {
	return &JSONLines{enc: json.NewEncoder(w)}
}

func (j *JSONLines) RenderFrame(f sim.Frame) {
	if j.err != nil {
		return
	}
	if err := j.enc.Encode(f); err != nil {
		j.err = fmt.Errorf("writing frame %d: %w", j.frames, err)
		return
	}
	j.frames++
}

func (j *JSONLines) WindowClosed() bool { return true }

// Frames returns the number of frames written.
func (j *JSONLines) Frames() int {
	return j.frames
}

// Err returns the first write error, if any.
func (j *JSONLines) Err() error {
	return j.err
}

// Multi fans every frame out to several renderers. The window counts as
// closed once every renderer reports it closed.
type Multi []sim.Renderer

func (m Multi) RenderFrame(f sim.Frame) {
	for _, r := range m {
		r.RenderFrame(f)
	}
}

func (m Multi) WindowClosed() bool {
	closed := true
	for _, r := range m {
		if !r.WindowClosed() {
			closed = false
		}
	}
	return closed
}
