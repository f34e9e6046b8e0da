package geomfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/philipparndt/goshade/pkg/geometry"
	"github.com/pkg/errors"
)

// Parse reads a geometry file and returns its Description
func Parse(filename string) (*Description, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	desc, err := Read(file)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			perr.File = filename
		}
		return nil, err
	}

	desc.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	return desc, nil
}

// parser section, in file order
const (
	sectionHeader = iota
	sectionCounts
	sectionVertices
	sectionFaces
	sectionDone
)

// Read parses a geometry description. The format is line oriented:
//
//	<scale> <alpha> <beta> <gamma>
//	<vertices> <faces> <edges>
//	<x> <y> <z>                      one line per vertex
//	<ignored> <i1> <i2> ... <ik>     one line per face, 1-based indices
//
// Blank lines are skipped. Any deviation is reported as a *ParseError.
func Read(reader io.Reader) (*Description, error) {
	scanner := bufio.NewScanner(reader)
	desc := NewDescription("")

	section := sectionHeader
	var vertexCount, faceCount int
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch section {
		case sectionHeader:
			if len(fields) != 4 {
				return nil, &ParseError{Line: lineNo, Msg: fmt.Sprintf("header needs scale and three angles, got %d values", len(fields))}
			}
			values, err := parseFloats(fields)
			if err != nil {
				return nil, &ParseError{Line: lineNo, Msg: "malformed header", Err: err}
			}
			desc.Scale = values[0]
			desc.Alpha, desc.Beta, desc.Gamma = values[1], values[2], values[3]
			section = sectionCounts

		case sectionCounts:
			if len(fields) != 3 {
				return nil, &ParseError{Line: lineNo, Msg: fmt.Sprintf("counts line needs 3 values, got %d", len(fields))}
			}
			counts, err := parseInts(fields)
			if err != nil {
				return nil, &ParseError{Line: lineNo, Msg: "malformed counts", Err: err}
			}
			for _, c := range counts {
				if c < 0 {
					return nil, &ParseError{Line: lineNo, Msg: "counts must not be negative"}
				}
			}
			vertexCount, faceCount, desc.EdgeCount = counts[0], counts[1], counts[2]
			section = nextSection(sectionCounts, vertexCount, faceCount)

		case sectionVertices:
			if len(fields) != 3 {
				return nil, &ParseError{Line: lineNo, Msg: fmt.Sprintf("vertex needs 3 coordinates, got %d", len(fields))}
			}
			coords, err := parseFloats(fields)
			if err != nil {
				return nil, &ParseError{Line: lineNo, Msg: fmt.Sprintf("malformed vertex %d", desc.VertexCount()+1), Err: err}
			}
			desc.AddVertex(geometry.NewVector3(coords[0], coords[1], coords[2]))
			if desc.VertexCount() == vertexCount {
				section = nextSection(sectionVertices, vertexCount, faceCount)
			}

		case sectionFaces:
			indices, err := parseFace(fields[1:], vertexCount)
			if err != nil {
				return nil, &ParseError{Line: lineNo, Msg: fmt.Sprintf("malformed face %d", desc.FaceCount()+1), Err: err}
			}
			desc.AddFace(indices)
			if desc.FaceCount() == faceCount {
				section = sectionDone
			}

		case sectionDone:
			return nil, &ParseError{Line: lineNo, Msg: fmt.Sprintf("unexpected data after %d faces", faceCount)}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading geometry: %w", err)
	}

	switch section {
	case sectionHeader, sectionCounts:
		return nil, &ParseError{Msg: "missing header"}
	case sectionVertices:
		return nil, &ParseError{Msg: fmt.Sprintf("expected %d vertices, got %d", vertexCount, desc.VertexCount())}
	case sectionFaces:
		return nil, &ParseError{Msg: fmt.Sprintf("expected %d faces, got %d", faceCount, desc.FaceCount())}
	}

	return desc, nil
}

// nextSection skips sections whose announced count is zero
func nextSection(current, vertexCount, faceCount int) int {
	if current == sectionCounts && vertexCount > 0 {
		return sectionVertices
	}
	if faceCount > 0 {
		return sectionFaces
	}
	return sectionDone
}

// parseFace converts 1-based index tokens to zero-based indices
func parseFace(tokens []string, vertexCount int) ([]int, error) {
	if len(tokens) < 3 {
		return nil, errors.Errorf("face needs at least 3 vertex indices, got %d", len(tokens))
	}
	indices, err := parseInts(tokens)
	if err != nil {
		return nil, err
	}
	for i, n := range indices {
		if n < 1 || n > vertexCount {
			return nil, errors.Errorf("vertex index %d out of range 1..%d", n, vertexCount)
		}
		indices[i] = n - 1
	}
	return indices, nil
}

func parseFloats(tokens []string) ([]float64, error) {
	values := make([]float64, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "value %d", i+1)
		}
		values[i] = v
	}
	return values, nil
}

func parseInts(tokens []string) ([]int, error) {
	values := make([]int, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, errors.Wrapf(err, "value %d", i+1)
		}
		values[i] = v
	}
	return values, nil
}
