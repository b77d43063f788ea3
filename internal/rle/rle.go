// Package rle run-length encodes the per-block header sidecar stream
// blockpack writes next to the bit-packed payload: one byte per block
// (a zero-block flag, or a biased exponent), a sequence that is highly
// repetitive across a real image's blocks and compresses well with a
// generic byte-oriented run-length coder.
package rle

import (
	"bytes"

	"github.com/octu0/runlength"
	"github.com/pkg/errors"
)

// Encode run-length encodes a header byte sequence.
func Encode(header []byte) ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, len(header)/4+8))
	if err := runlength.NewEncoder(buf).Encode(header); err != nil {
		return nil, errors.WithStack(err)
	}
	return buf.Bytes(), nil
}

// Decode inverts Encode.
func Decode(data []byte) ([]byte, error) {
	out, err := runlength.NewDecoder().Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return out, nil
}
