package main

import (
	"bytes"
	"encoding/binary"
	"os"

	"github.com/pkg/errors"

	cubecodec "github.com/octu0/cubecodec"
)

// writeOutput serializes the packed stream as a small binary
// container: a fixed header describing the image and codec
// parameters, the RLE-coded sidecar exponent stream, and the raw
// bit-packed payload words, each length-prefixed the way
// imagecompress-10's encode.go frames its own multi-section output.
func writeOutput(
	path string,
	plane *grayPlane,
	dim cubecodec.BlockDim,
	kind cubecodec.ScalarKind,
	maxbits uint,
	numBlocks int,
	encodedHeader []byte,
	words []uint64,
) error {
	buf := bytes.NewBuffer(make([]byte, 0, 32+len(encodedHeader)+len(words)*8))

	if err := binary.Write(buf, binary.BigEndian, uint32(plane.width)); err != nil {
		return errors.WithStack(err)
	}
	if err := binary.Write(buf, binary.BigEndian, uint32(plane.height)); err != nil {
		return errors.WithStack(err)
	}
	if err := binary.Write(buf, binary.BigEndian, uint8(dim)); err != nil {
		return errors.WithStack(err)
	}
	if err := binary.Write(buf, binary.BigEndian, uint8(kind)); err != nil {
		return errors.WithStack(err)
	}
	if err := binary.Write(buf, binary.BigEndian, uint32(maxbits)); err != nil {
		return errors.WithStack(err)
	}
	if err := binary.Write(buf, binary.BigEndian, uint32(numBlocks)); err != nil {
		return errors.WithStack(err)
	}

	if err := binary.Write(buf, binary.BigEndian, uint32(len(encodedHeader))); err != nil {
		return errors.WithStack(err)
	}
	if _, err := buf.Write(encodedHeader); err != nil {
		return errors.WithStack(err)
	}

	if err := binary.Write(buf, binary.BigEndian, uint32(len(words))); err != nil {
		return errors.WithStack(err)
	}
	if err := binary.Write(buf, binary.BigEndian, words); err != nil {
		return errors.WithStack(err)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.WithStack(err)
	}
	defer f.Close()
	if _, err := f.Write(buf.Bytes()); err != nil {
		return errors.WithStack(err)
	}
	return nil
}
