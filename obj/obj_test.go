package obj

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/MartinNikolovMarinov/rendering-technique/surface"
)

func writeTestFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

func TestLoadFileVertices(t *testing.T) {
	o, err := LoadFile(filepath.Join("testdata", "vertices1_valid.obj"), Version3_0, surface.GoAllocator{})
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if o.VerticesCount() != 8 {
		t.Fatalf("VerticesCount() = %d, want 8", o.VerticesCount())
	}

	cases := []struct {
		index   int
		x, y, z float32
		checkW  bool
		w       float32
	}{
		{0, -1, -1, -1, false, 0},
		{1, 1, -1, -1, false, 0},
		{2, 1, -1, 1.25, false, 0},
		{3, -1.5, -1, 99.0001, false, 0},
		{4, -1, -1, -1, true, 1.0},
		{5, 1, -1, -1, true, 0.5},
		{6, 1, -1, 1.25, true, 2.345},
		{7, -1.5, -1, 99.0001, true, 0.0001},
	}

	for _, tc := range cases {
		v := o.Vertices[tc.index]
		if v.X != tc.x || v.Y != tc.y || v.Z != tc.z {
			t.Errorf("vertex %d = (%v,%v,%v), want (%v,%v,%v)", tc.index, v.X, v.Y, v.Z, tc.x, tc.y, tc.z)
		}
		if tc.checkW && v.W != tc.w {
			t.Errorf("vertex %d W = %v, want %v", tc.index, v.W, tc.w)
		}
	}
}

func TestLoadFileFaces(t *testing.T) {
	o, err := LoadFile(filepath.Join("testdata", "faces1_valid.obj"), Version3_0, surface.GoAllocator{})
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if o.FacesCount() != 11 {
		t.Fatalf("FacesCount() = %d, want 11", o.FacesCount())
	}

	type triple = [3]int32
	unset := triple{-1, -1, -1}

	cases := []struct {
		index     int
		v, vt, vn triple
	}{
		{0, triple{1, 2, 3}, unset, unset},
		{1, triple{1, 2, 3}, triple{1, 2, 3}, unset},
		{2, triple{1, 2, 3}, unset, triple{1, 2, 3}},
		{3, triple{1, 2, 3}, triple{1, 2, 3}, triple{1, 2, 3}},
		{4, triple{1, 2, 3}, triple{1, -1, -1}, triple{4, 2, 3}},
		{5, triple{1, 2, 3}, triple{-1, 2, 3}, triple{-1, -1, 3}},
		{6, triple{1000000, 2000000, 3000000}, unset, unset},
		{7, triple{-9, -2, -3}, unset, unset},
		{8, triple{-9, -2, -3}, triple{-9, -2, -3}, unset},
		{9, triple{1, 2, 3}, triple{1, -1, 3}, unset},
		{10, triple{1, 2, 3}, triple{-1, 2, -1}, triple{1, -1, -1}},
	}

	for _, tc := range cases {
		f := o.Faces[tc.index]
		if f.V != tc.v {
			t.Errorf("face %d V = %v, want %v", tc.index, f.V, tc.v)
		}
		if f.VT != tc.vt {
			t.Errorf("face %d VT = %v, want %v", tc.index, f.VT, tc.vt)
		}
		if f.VN != tc.vn {
			t.Errorf("face %d VN = %v, want %v", tc.index, f.VN, tc.vn)
		}
	}
}

func TestParseFaceLineSetMask(t *testing.T) {
	face, err := parseFaceLine("f 1/2/3 4//6 7/8/")
	if err != nil {
		t.Fatalf("parseFaceLine() error = %v", err)
	}

	if !face.HasV(0) || !face.HasVT(0) || !face.HasVN(0) {
		t.Error("corner 0 should have all three fields set")
	}
	if !face.HasV(1) || face.HasVT(1) || !face.HasVN(1) {
		t.Error("corner 1 should be missing vt only")
	}
	if !face.HasV(2) || !face.HasVT(2) || face.HasVN(2) {
		t.Error("corner 2 should be missing vn only")
	}

	want := Face{V: [3]int32{1, 4, 7}, VT: [3]int32{2, -1, 8}, VN: [3]int32{3, 6, -1}}
	if face.V != want.V || face.VT != want.VT || face.VN != want.VN {
		t.Errorf("face indices = %+v, want %+v", face, want)
	}
}

func TestParseVertexLineTooFewComponents(t *testing.T) {
	_, err := LoadFileFromString(t, "v 1 2\n")
	if !errors.Is(err, ErrInvalidFileFormat) {
		t.Fatalf("LoadFile() error = %v, want ErrInvalidFileFormat for a vertex line with only 2 components", err)
	}
}

func TestParseFaceLineWrongArity(t *testing.T) {
	if _, err := parseFaceLine("f 1 2 3 4"); err == nil {
		t.Fatal("expected error for a face with 4 corners")
	}
	if _, err := parseFaceLine("f 1 2"); err == nil {
		t.Fatal("expected error for a face with 2 corners")
	}
}

func TestLoadFileRejectsUnsupportedVersion(t *testing.T) {
	_, err := LoadFile(filepath.Join("testdata", "vertices1_valid.obj"), VersionUnknown, surface.GoAllocator{})
	if err == nil {
		t.Fatal("expected ErrUnsupportedVersion")
	}
}

// LoadFileFromString writes content to a temp file and loads it, as a
// convenience for single-line negative test cases.
func LoadFileFromString(t *testing.T, content string) (*WavefrontObj, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "case.obj")
	if err := writeTestFile(path, content); err != nil {
		t.Fatalf("writeTestFile() error = %v", err)
	}
	return LoadFile(path, Version3_0, surface.GoAllocator{})
}
