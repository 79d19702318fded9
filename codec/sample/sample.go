// Package sample frames raw input samples for streaming over byte streams.
//
// A frame is one kind byte followed by 1, 2 or 3 big-endian IEEE 754
// float64s:
//
//	KindValue:        x
//	KindPair:         x y
//	KindWeightedPair: x y w
package sample

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/valyala/bytebufferpool"

	"github.com/talostrading/streamstats/statserrors"
)

type Kind uint8

const (
	KindValue Kind = iota + 1
	KindPair
	KindWeightedPair
)

func (k Kind) String() string {
	switch k {
	case KindValue:
		return "value"
	case KindPair:
		return "pair"
	case KindWeightedPair:
		return "weighted_pair"
	default:
		return "kind_unknown"
	}
}

// Floats returns the number of float64s following the kind byte, or 0 for an
// unknown kind.
func (k Kind) Floats() int {
	switch k {
	case KindValue:
		return 1
	case KindPair:
		return 2
	case KindWeightedPair:
		return 3
	default:
		return 0
	}
}

const (
	KindLen      = 1 // bytes
	FloatLen     = 8 // bytes
	MaxFrameLen  = KindLen + 3*FloatLen
	flushAtBytes = 4096
)

// Sample is one decoded frame. W is 1 for anything but KindWeightedPair and Y
// is 0 for KindValue.
type Sample struct {
	Kind Kind
	X    float64
	Y    float64
	W    float64
}

func Value(x float64) Sample {
	return Sample{Kind: KindValue, X: x, W: 1}
}

func Pair(x, y float64) Sample {
	return Sample{Kind: KindPair, X: x, Y: y, W: 1}
}

func WeightedPair(x, y, w float64) Sample {
	return Sample{Kind: KindWeightedPair, X: x, Y: y, W: w}
}

// AppendFrame appends the encoding of s to dst.
func AppendFrame(dst []byte, s Sample) ([]byte, error) {
	n := s.Kind.Floats()
	if n == 0 {
		return dst, fmt.Errorf("%w: %d", statserrors.ErrUnknownKind, s.Kind)
	}

	fs := [3]float64{s.X, s.Y, s.W}
	dst = append(dst, byte(s.Kind))
	for _, f := range fs[:n] {
		dst = binary.BigEndian.AppendUint64(dst, math.Float64bits(f))
	}
	return dst, nil
}

// Encoder batches frames in a pooled buffer and writes them to the underlying
// writer once enough bytes are pending, on Flush, or on Close.
type Encoder struct {
	w   io.Writer
	buf *bytebufferpool.ByteBuffer
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		w:   w,
		buf: bytebufferpool.Get(),
	}
}

func (e *Encoder) Encode(s Sample) (err error) {
	e.buf.B, err = AppendFrame(e.buf.B, s)
	if err != nil {
		return err
	}
	if e.buf.Len() >= flushAtBytes {
		return e.Flush()
	}
	return nil
}

// Buffered returns the number of encoded bytes not yet written.
func (e *Encoder) Buffered() int {
	return e.buf.Len()
}

func (e *Encoder) Flush() error {
	if e.buf.Len() == 0 {
		return nil
	}
	_, err := e.w.Write(e.buf.B)
	e.buf.Reset()
	return err
}

// Close flushes pending frames and returns the buffer to the pool. The
// Encoder must not be used afterwards.
func (e *Encoder) Close() error {
	err := e.Flush()
	bytebufferpool.Put(e.buf)
	e.buf = nil
	return err
}

type Decoder struct {
	r   io.Reader
	buf [MaxFrameLen]byte
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// Next decodes the next frame. It returns io.EOF only at a frame boundary; a
// stream ending mid-frame yields statserrors.ErrTruncatedFrame.
func (d *Decoder) Next() (Sample, error) {
	if _, err := io.ReadFull(d.r, d.buf[:KindLen]); err != nil {
		return Sample{}, err
	}

	kind := Kind(d.buf[0])
	n := kind.Floats()
	if n == 0 {
		return Sample{}, fmt.Errorf("%w: %d", statserrors.ErrUnknownKind, d.buf[0])
	}

	payload := d.buf[KindLen : KindLen+n*FloatLen]
	if _, err := io.ReadFull(d.r, payload); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return Sample{}, fmt.Errorf("%w: %s frame", statserrors.ErrTruncatedFrame, kind)
		}
		return Sample{}, err
	}

	var fs [3]float64
	fs[2] = 1
	for i := 0; i < n; i++ {
		fs[i] = math.Float64frombits(binary.BigEndian.Uint64(payload[i*FloatLen:]))
	}
	return Sample{Kind: kind, X: fs[0], Y: fs[1], W: fs[2]}, nil
}
