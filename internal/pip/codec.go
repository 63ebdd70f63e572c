package pip

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// ErrTruncated is returned when an encoded configuration ends early.
var ErrTruncated = errors.New("encoded configuration truncated")

// ErrOutOfRange is returned when a field does not fit its int32 slot.
var ErrOutOfRange = errors.New("value out of int32 range")

// MarshalBinary encodes the configuration as a flat little-endian record:
// back, resume, pause and forward asset paths (int32 length + UTF-8 bytes),
// player id (int32), needsBack, needsForward, needsPlayControl, playing
// (one byte each), play time (float32), aspect width and height (int32).
// The field order is a compatibility contract.
func (c *Configuration) MarshalBinary() ([]byte, error) {
	size := 4*4 + len(c.assets.Back) + len(c.assets.Resume) +
		len(c.assets.Pause) + len(c.assets.Forward) + 4 + 4 + 4 + 4 + 4
	buf := make([]byte, 0, size)

	for name, v := range map[string]int{
		"player id":     c.playerID,
		"aspect width":  c.aspectWidth,
		"aspect height": c.aspectHeight,
	} {
		if v < math.MinInt32 || v > math.MaxInt32 {
			return nil, fmt.Errorf("%w: %s %d", ErrOutOfRange, name, v)
		}
	}

	for _, s := range []string{c.assets.Back, c.assets.Resume, c.assets.Pause, c.assets.Forward} {
		if len(s) > math.MaxInt32 {
			return nil, fmt.Errorf("asset path too long: %d bytes", len(s))
		}
		buf = binary.LittleEndian.AppendUint32(buf, uint32(len(s))) //nolint:gosec // bounded above
		buf = append(buf, s...)
	}
	buf = binary.LittleEndian.AppendUint32(buf, uint32(int32(c.playerID))) //nolint:gosec // bounded above
	buf = append(buf,
		boolByte(c.needsBack),
		boolByte(c.needsForward),
		boolByte(c.needsPlayControl),
		boolByte(c.playing),
	)
	buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(c.playTime))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(int32(c.aspectWidth)))  //nolint:gosec // bounded above
	buf = binary.LittleEndian.AppendUint32(buf, uint32(int32(c.aspectHeight))) //nolint:gosec // bounded above
	return buf, nil
}

// UnmarshalBinary decodes a record written by MarshalBinary. The control
// flags are taken as stored, not derived from the paths.
func (c *Configuration) UnmarshalBinary(data []byte) error {
	r := reader{data: data}

	var out Configuration
	out.assets.Back = r.str()
	out.assets.Resume = r.str()
	out.assets.Pause = r.str()
	out.assets.Forward = r.str()
	out.playerID = int(r.int32())
	out.needsBack = r.byte() != 0
	out.needsForward = r.byte() != 0
	out.needsPlayControl = r.byte() != 0
	out.playing = r.byte() != 0
	out.playTime = math.Float32frombits(r.uint32())
	out.aspectWidth = int(r.int32())
	out.aspectHeight = int(r.int32())

	if r.err != nil {
		return r.err
	}
	if out.aspectWidth <= 0 || out.aspectHeight <= 0 {
		return fmt.Errorf("decode configuration: %w", ErrInvalidAspectRatio)
	}
	*c = out
	return nil
}

// DecodeConfiguration is a convenience wrapper around UnmarshalBinary.
func DecodeConfiguration(data []byte) (*Configuration, error) {
	c := &Configuration{}
	if err := c.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return c, nil
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

// reader consumes the record; the first failure sticks in err.
type reader struct {
	data []byte
	off  int
	err  error
}

func (r *reader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if n < 0 || len(r.data)-r.off < n {
		r.err = fmt.Errorf("%w at offset %d", ErrTruncated, r.off)
		return nil
	}
	b := r.data[r.off : r.off+n]
	r.off += n
	return b
}

func (r *reader) uint32() uint32 {
	b := r.take(4)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func (r *reader) int32() int32 {
	return int32(r.uint32()) //nolint:gosec // reinterpret wire bits
}

func (r *reader) byte() byte {
	b := r.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (r *reader) str() string {
	n := r.int32()
	if r.err != nil {
		return ""
	}
	return string(r.take(int(n)))
}
