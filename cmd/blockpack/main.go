// Command blockpack is the array host (C10): it reads a PNG, splits
// its grayscale plane into blocks, fixed-rate encodes every block into
// a shared bit-packed buffer with a bounded goroutine pool, and reports
// the achieved bits/pixel — the "collaborator" spec.md leaves outside
// the core's scope.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/pkg/errors"

	cubecodec "github.com/octu0/cubecodec"
	"github.com/octu0/cubecodec/internal/rle"
)

func main() {
	inPath := flag.String("in", "", "input PNG path")
	outPath := flag.String("out", "out.bin", "output bitstream path")
	bitsPerBlock := flag.Uint("bits-per-block", 64, "bit budget per block (maxbits)")
	kindName := flag.String("kind", "float32", "scalar kind: float32, float64, int32, int64")
	dimN := flag.Uint("dim", 2, "block dimensionality, 1-4")
	workers := flag.Int("workers", runtime.GOMAXPROCS(0), "number of parallel encoder workers")
	flag.Parse()

	if *inPath == "" {
		fmt.Fprintln(os.Stderr, "blockpack: -in is required")
		os.Exit(1)
	}

	if err := run(*inPath, *outPath, uint(*bitsPerBlock), *kindName, uint(*dimN), *workers); err != nil {
		fmt.Fprintf(os.Stderr, "blockpack: %+v\n", err)
		os.Exit(1)
	}
}

func parseKind(name string) (cubecodec.ScalarKind, error) {
	switch name {
	case "float32":
		return cubecodec.KindFloat32, nil
	case "float64":
		return cubecodec.KindFloat64, nil
	case "int32":
		return cubecodec.KindInt32, nil
	case "int64":
		return cubecodec.KindInt64, nil
	default:
		return 0, errors.Errorf("unknown -kind %q", name)
	}
}

func parseDim(n uint) (cubecodec.BlockDim, error) {
	switch n {
	case 1:
		return cubecodec.Dim1, nil
	case 2:
		return cubecodec.Dim2, nil
	case 3:
		return cubecodec.Dim3, nil
	case 4:
		return cubecodec.Dim4, nil
	default:
		return 0, errors.Errorf("-dim must be 1-4, got %d", n)
	}
}

type job struct {
	idx   int
	tileX int
	tileY int
}

func run(inPath, outPath string, maxbits uint, kindName string, dimN uint, workers int) error {
	kind, err := parseKind(kindName)
	if err != nil {
		return err
	}
	dim, err := parseDim(dimN)
	if err != nil {
		return err
	}
	if workers < 1 {
		workers = 1
	}

	plane, err := loadGrayPlane(inPath)
	if err != nil {
		return err
	}

	tilesX, tilesY := tileGrid(plane, dim)
	numBlocks := tilesX * tilesY
	if numBlocks == 0 {
		return errors.New("blockpack: input image has no pixels")
	}

	words := make([]uint64, cubecodec.WordsNeeded(numBlocks, maxbits))
	header := make([]byte, numBlocks)

	jobs := make(chan job, numBlocks)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				raw := extractBlock(plane, dim, j.tileX, j.tileY)
				block, biasedExp, hasHeader := toBlockAndHeader(kind, raw)
				if hasHeader {
					header[j.idx] = byte(biasedExp)
				}
				cubecodec.EncodeBlock(kind, dim, block, maxbits, uint64(j.idx), words)
			}
		}()
	}
	idx := 0
	for ty := 0; ty < tilesY; ty++ {
		for tx := 0; tx < tilesX; tx++ {
			jobs <- job{idx: idx, tileX: tx, tileY: ty}
			idx++
		}
	}
	close(jobs)
	wg.Wait()

	encodedHeader, err := rle.Encode(header)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := writeOutput(outPath, plane, dim, kind, maxbits, numBlocks, encodedHeader, words); err != nil {
		return err
	}

	payloadBits := uint64(numBlocks) * uint64(maxbits)
	sidecarBits := uint64(len(encodedHeader)) * 8
	pixels := plane.width * plane.height
	bpp := float64(payloadBits+sidecarBits) / float64(pixels)
	fmt.Printf(
		"%s: %dx%d, %d blocks, %d bits/block, sidecar %d bytes (raw %d), %.3f bits/pixel\n",
		inPath, plane.width, plane.height, numBlocks, maxbits, len(encodedHeader), numBlocks, bpp,
	)
	return nil
}

// tileGrid returns the number of block tiles along each axis for the
// image's grayscale plane. A Dim1 block is a run of 4 pixels along one
// scanline; every other dimensionality tiles the plane into 4x4
// squares (and, for Dim3/Dim4, extrudes each square synthetically —
// see extractBlock).
func tileGrid(p *grayPlane, dim cubecodec.BlockDim) (tilesX, tilesY int) {
	tilesX = (p.width + 3) / 4
	if dim == cubecodec.Dim1 {
		return tilesX, p.height
	}
	tilesY = (p.height + 3) / 4
	return tilesX, tilesY
}

// extractBlock reads one block's worth of samples starting at tile
// (tileX, tileY). For Dim1 it is 4 consecutive pixels on scanline
// tileY. For Dim2 it is a 4x4 tile. Dim3 and Dim4 have no natural
// source in a 2-D PNG, so the 4x4 tile is extruded along the extra
// synthetic axes by repetition — enough to exercise the codec's higher
// dimensionalities against real pixel data without inventing a fake
// volumetric format.
func extractBlock(p *grayPlane, dim cubecodec.BlockDim, tileX, tileY int) []float64 {
	if dim == cubecodec.Dim1 {
		out := make([]float64, 4)
		for i := 0; i < 4; i++ {
			out[i] = p.at(tileX*4+i, tileY)
		}
		return out
	}
	tile := make([]float64, 16)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			tile[y*4+x] = p.at(tileX*4+x, tileY*4+y)
		}
	}
	n := dim.BlockSize()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = tile[i%16]
	}
	return out
}

// toBlockAndHeader converts a plane of [0,255] samples into the block
// representation a given scalar kind needs, additionally returning the
// biased exponent header for the float kinds (hasHeader is false for
// an all-zero block or for the integer kinds, which write no header).
func toBlockAndHeader(kind cubecodec.ScalarKind, raw []float64) (block any, biasedExp int, hasHeader bool) {
	switch kind {
	case cubecodec.KindFloat32:
		f32 := make([]float32, len(raw))
		for i, v := range raw {
			sample := v / 255.0
			if !cubecodec.IsFinite(sample) {
				sample = 0
			}
			f32[i] = float32(sample)
		}
		biasedExp, hasHeader = cubecodec.Float32BlockHeader(f32)
		return f32, biasedExp, hasHeader
	case cubecodec.KindFloat64:
		f64 := make([]float64, len(raw))
		for i, v := range raw {
			sample := v / 255.0
			if !cubecodec.IsFinite(sample) {
				sample = 0
			}
			f64[i] = sample
		}
		biasedExp, hasHeader = cubecodec.Float64BlockHeader(f64)
		return f64, biasedExp, hasHeader
	case cubecodec.KindInt32:
		i32 := make([]int32, len(raw))
		for i, v := range raw {
			i32[i] = int32(v)
		}
		return i32, 0, false
	case cubecodec.KindInt64:
		i64 := make([]int64, len(raw))
		for i, v := range raw {
			i64[i] = int64(v)
		}
		return i64, 0, false
	default:
		panic(fmt.Sprintf("blockpack: unknown scalar kind %v", kind))
	}
}
