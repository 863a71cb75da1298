// Package wav streams interleaved 32-bit float samples into a RIFF/WAVE file.
package wav

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
)

const (
	sampleSize      = 4
	formatIEEEFloat = 3
	headerSize      = 0x2C

	// maxDataSize keeps the RIFF chunk size (data + header - 8) within uint32.
	maxDataSize = math.MaxUint32 - (headerSize - 8)
)

var (
	// ErrClosed is returned when writing to a closed Writer.
	ErrClosed = errors.New("wav: writer closed")
	// ErrTooLarge is returned when a write would exceed the 4 GiB RIFF limit.
	ErrTooLarge = errors.New("wav: data exceeds RIFF size limit")
)

// A Writer streams float32 samples after a placeholder header and patches
// the header sizes on Close.
type Writer struct {
	ws          io.WriteSeeker
	closer      io.Closer
	bw          *bufio.Writer
	sampleRate  int
	channels    int
	sampleCount int64
	maxData     int64
	closed      bool
}

// NewWriter writes a header for the given format to ws and returns a Writer
// positioned at the sample data. Close must be called to finalise the
// header; it does not close ws.
func NewWriter(ws io.WriteSeeker, sampleRate, channels int) (*Writer, error) {
	if err := validate(sampleRate, channels); err != nil {
		return nil, err
	}
	return newWriter(ws, nil, sampleRate, channels)
}

// NewFile creates a wave file at path. Close finalises and closes the file.
func NewFile(path string, sampleRate, channels int) (*Writer, error) {
	if err := validate(sampleRate, channels); err != nil {
		return nil, err
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w, err := newWriter(f, f, sampleRate, channels)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return w, nil
}

func newWriter(ws io.WriteSeeker, c io.Closer, sampleRate, channels int) (*Writer, error) {
	w := &Writer{
		ws:         ws,
		closer:     c,
		bw:         bufio.NewWriter(ws),
		sampleRate: sampleRate,
		channels:   channels,
		maxData:    maxDataSize,
	}

	hdr := w.header()
	if _, err := w.bw.Write(hdr[:]); err != nil {
		return nil, err
	}
	return w, nil
}

func validate(sampleRate, channels int) error {
	if sampleRate <= 0 || int64(sampleRate) > math.MaxUint32 {
		return fmt.Errorf("wav: invalid sample rate: %d", sampleRate)
	}
	if channels <= 0 || channels > math.MaxUint16 {
		return fmt.Errorf("wav: invalid channel count: %d", channels)
	}
	return nil
}

// SampleCount returns the number of samples (not frames) written so far.
func (w *Writer) SampleCount() int64 {
	return w.sampleCount
}

// Write appends interleaved samples. len(p) must be a whole number of frames.
// A write that would push the data chunk past the RIFF limit is rejected
// whole and leaves the file valid.
func (w *Writer) Write(p []float32) (int, error) {
	if w.closed {
		return 0, ErrClosed
	}
	if len(p)%w.channels != 0 {
		return 0, fmt.Errorf("wav: %d samples is not a whole number of %d-channel frames", len(p), w.channels)
	}
	if (w.sampleCount+int64(len(p)))*sampleSize > w.maxData {
		return 0, fmt.Errorf("%w: %d samples written, %d more requested", ErrTooLarge, w.sampleCount, len(p))
	}

	var buf [sampleSize]byte
	for i, v := range p {
		binary.LittleEndian.PutUint32(buf[:], math.Float32bits(v))
		if _, err := w.bw.Write(buf[:]); err != nil {
			w.sampleCount += int64(i)
			return i, err
		}
	}
	w.sampleCount += int64(len(p))

	return len(p), nil
}

func (w *Writer) header() [headerSize]byte {
	dataSize := sampleSize * w.sampleCount
	frameSize := sampleSize * w.channels
	h := [headerSize]byte{
		'R', 'I', 'F', 'F',
		0, 0, 0, 0, //        length of rest of file
		'W', 'A', 'V', 'E',
		'f', 'm', 't', ' ',
		16, 0, 0, 0, //       size of fmt chunk
		formatIEEEFloat, 0,
		0, 0, //              channel count
		0, 0, 0, 0, //        sample rate
		0, 0, 0, 0, //        bytes per second
		0, 0, //              bytes per sample frame
		sampleSize * 8, 0, // bits per sample
		'd', 'a', 't', 'a',
		0, 0, 0, 0, //        size of sample data
	}

	binary.LittleEndian.PutUint32(h[0x04:], uint32(headerSize-8+dataSize))
	binary.LittleEndian.PutUint16(h[0x16:], uint16(w.channels))
	binary.LittleEndian.PutUint32(h[0x18:], uint32(w.sampleRate))
	binary.LittleEndian.PutUint32(h[0x1C:], uint32(w.sampleRate)*uint32(frameSize))
	binary.LittleEndian.PutUint16(h[0x20:], uint16(frameSize))
	binary.LittleEndian.PutUint32(h[0x28:], uint32(dataSize))
	return h
}

// Close flushes buffered samples, rewrites the header with the final sizes
// and closes the file when the Writer owns it.
func (w *Writer) Close() error {
	if w.closed {
		return ErrClosed
	}
	w.closed = true

	err := w.finish()
	if w.closer != nil {
		if cerr := w.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

func (w *Writer) finish() error {
	if err := w.bw.Flush(); err != nil {
		return err
	}

	end, err := w.ws.Seek(0, io.SeekCurrent)
	if err != nil {
		return err
	}
	start := end - headerSize - sampleSize*w.sampleCount

	if _, err := w.ws.Seek(start, io.SeekStart); err != nil {
		return err
	}
	hdr := w.header()
	if _, err := w.ws.Write(hdr[:]); err != nil {
		return err
	}
	_, err = w.ws.Seek(end, io.SeekStart)
	return err
}
