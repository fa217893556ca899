package obj

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	rendertech "github.com/MartinNikolovMarinov/rendering-technique"
	"github.com/MartinNikolovMarinov/rendering-technique/surface"
)

const spaceDelims = " "

// LoadFile reads path in full and parses its `v` and `f` directives. Only
// Version3_0 is accepted. alloc supplies the buffer used to slurp the file;
// it is not retained after parsing.
func LoadFile(path string, version Version, alloc surface.Allocator) (*WavefrontObj, error) {
	if version != Version3_0 {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedVersion, version)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFailedToStatFile, path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFailedToStatFile, path, err)
	}

	buf, err := alloc.Alloc(int(info.Size()))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: allocation failed: %v", ErrFailedToReadFile, path, err)
	}
	defer alloc.Free(buf)

	if _, err := io.ReadFull(f, buf); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFailedToReadFile, path, err)
	}

	obj := &WavefrontObj{}
	lines := strings.Split(string(buf), "\n")
	for lineNo, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "v "):
			v, err := parseVertexLine(line)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidFileFormat, lineNo+1, err)
			}
			obj.Vertices = append(obj.Vertices, v)

		case strings.HasPrefix(line, "f "):
			face, err := parseFaceLine(line)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidFileFormat, lineNo+1, err)
			}
			obj.Faces = append(obj.Faces, face)
		}
	}

	rendertech.Logger().Debug("obj: parsed file",
		"path", path, "vertices", obj.VerticesCount(), "faces", obj.FacesCount())

	return obj, nil
}

func parseVertexLine(line string) (Vertex, error) {
	rest := skipToken(line, spaceDelims) // discard "v"

	var coords [3]float32
	for i := range coords {
		tok, next := nextToken(rest, spaceDelims)
		if tok == "" {
			return Vertex{}, fmt.Errorf("expected 3 or 4 numbers, ran out after %d", i)
		}
		f, err := strconv.ParseFloat(tok, 32)
		if err != nil {
			return Vertex{}, fmt.Errorf("bad vertex component %q: %w", tok, err)
		}
		coords[i] = float32(f)
		rest = next
	}

	v := Vertex{X: coords[0], Y: coords[1], Z: coords[2]}

	if tok, _ := nextToken(rest, spaceDelims); tok != "" {
		f, err := strconv.ParseFloat(tok, 32)
		if err != nil {
			return Vertex{}, fmt.Errorf("bad vertex w component %q: %w", tok, err)
		}
		v.W = float32(f)
	}

	return v, nil
}

func parseFaceLine(line string) (Face, error) {
	rest := skipToken(line, spaceDelims) // discard "f"

	if n := countTokens(rest, spaceDelims); n != 3 {
		return Face{}, fmt.Errorf("face must have exactly 3 corners, got %d", n)
	}

	var face Face
	for corner := 0; corner < 3; corner++ {
		tok, next := nextToken(rest, spaceDelims)
		rest = next

		fields := strings.SplitN(tok, "/", 3)
		slots := [3]*int32{&face.V[corner], &face.VT[corner], &face.VN[corner]}
		for dim := range slots {
			*slots[dim] = -1
		}

		for dim, field := range fields {
			if field == "" {
				continue
			}
			idx, err := strconv.ParseInt(field, 10, 32)
			if err != nil {
				return Face{}, fmt.Errorf("bad corner index %q: %w", field, err)
			}
			*slots[dim] = int32(idx)
			face.Mask |= 1 << maskBit(dim, corner)
		}
	}

	return face, nil
}
