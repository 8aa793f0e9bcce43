package record

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/elf-bizniz/event"
	"github.com/lixenwraith/elf-bizniz/session"
)

// FormatVersion is bumped on any incompatible change to Header or Frame
const FormatVersion = 1

var (
	ErrNoHeader = errors.New("recording has no header")
	ErrVersion  = errors.New("unsupported recording version")
)

// Header opens a recording; static walls are stored once here, never per frame
type Header struct {
	Version    int              `msgpack:"version"`
	Level      string           `msgpack:"level"`
	Background string           `msgpack:"background"`
	Walls      []session.Sprite `msgpack:"walls"`
}

// Frame is one recorded step
type Frame struct {
	Snapshot session.Snapshot  `msgpack:"snapshot"`
	Events   []event.EventType `msgpack:"events,omitempty"`
}

// Writer streams a msgpack recording
type Writer struct {
	enc    *msgpack.Encoder
	buf    *bufio.Writer
	closer io.Closer
	header bool
	closed bool
	frames int
}

// NewWriter records to w
func NewWriter(w io.Writer) *Writer {
	buf := bufio.NewWriter(w)
	return &Writer{enc: msgpack.NewEncoder(buf), buf: buf}
}

// Create records to a new file at path
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create recording: %w", err)
	}
	w := NewWriter(f)
	w.closer = f
	return w, nil
}

// WriteHeader writes the level header, taking walls from snap
func (w *Writer) WriteHeader(levelName string, snap session.Snapshot) error {
	h := Header{
		Version:    FormatVersion,
		Level:      levelName,
		Background: snap.Background,
		Walls:      snap.Walls,
	}
	if err := w.enc.Encode(&h); err != nil {
		return fmt.Errorf("encode header: %w", err)
	}
	w.header = true
	return nil
}

// WriteFrame appends one step, walls are dropped from the snapshot
func (w *Writer) WriteFrame(snap session.Snapshot, events []event.GameEvent) error {
	if !w.header {
		return ErrNoHeader
	}
	snap.Walls = nil
	snap.Background = ""
	f := Frame{Snapshot: snap}
	for _, ev := range events {
		f.Events = append(f.Events, ev.Type)
	}
	if err := w.enc.Encode(&f); err != nil {
		return fmt.Errorf("encode frame %d: %w", snap.Frame, err)
	}
	w.frames++
	return nil
}

// Frames returns the number of frames written
func (w *Writer) Frames() int {
	return w.frames
}

// Close flushes buffered output and closes the file if Create opened it
// Calls after the first are no-ops
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	err := w.buf.Flush()
	if w.closer != nil {
		if cerr := w.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// Reader decodes a recording written by Writer
type Reader struct {
	dec    *msgpack.Decoder
	Header Header
}

// NewReader decodes and checks the header
func NewReader(r io.Reader) (*Reader, error) {
	rd := &Reader{dec: msgpack.NewDecoder(bufio.NewReader(r))}
	if err := rd.dec.Decode(&rd.Header); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoHeader
		}
		return nil, fmt.Errorf("decode header: %w", err)
	}
	if rd.Header.Version != FormatVersion {
		return nil, fmt.Errorf("%w: %d", ErrVersion, rd.Header.Version)
	}
	return rd, nil
}

// Next returns the next frame, io.EOF at the end of the recording
func (r *Reader) Next() (Frame, error) {
	var f Frame
	if err := r.dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return f, io.EOF
		}
		return f, fmt.Errorf("decode frame: %w", err)
	}
	return f, nil
}

// ReadAll decodes every remaining frame
func (r *Reader) ReadAll() ([]Frame, error) {
	var frames []Frame
	for {
		f, err := r.Next()
		if errors.Is(err, io.EOF) {
			return frames, nil
		}
		if err != nil {
			return frames, err
		}
		frames = append(frames, f)
	}
}
