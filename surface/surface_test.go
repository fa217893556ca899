package surface

import "testing"

func TestNewSurface(t *testing.T) {
	s, err := New(4, 3, BGRA8888, TopLeft, GoAllocator{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if s.Width() != 4 || s.Height() != 3 {
		t.Fatalf("dimensions = %dx%d, want 4x3", s.Width(), s.Height())
	}
	if s.Pitch() != 4*4 {
		t.Fatalf("Pitch() = %d, want %d", s.Pitch(), 16)
	}
	if s.Size() != s.Height()*s.Pitch() {
		t.Fatalf("Size() = %d, want %d", s.Size(), s.Height()*s.Pitch())
	}
	if !s.IsOwner() {
		t.Fatal("IsOwner() = false, want true for an allocator-backed surface")
	}
}

func TestNewSurfaceRejectsZeroSize(t *testing.T) {
	if _, err := New(0, 3, BGRA8888, TopLeft, GoAllocator{}); err == nil {
		t.Fatal("New() with zero width should fail")
	}
	if _, err := New(4, 0, BGRA8888, TopLeft, GoAllocator{}); err == nil {
		t.Fatal("New() with zero height should fail")
	}
}

func TestNewSurfaceRejectsInvalidFormat(t *testing.T) {
	if _, err := New(4, 4, Unknown, TopLeft, GoAllocator{}); err == nil {
		t.Fatal("New() with Unknown format should fail")
	}
}

func TestNewViewNonOwning(t *testing.T) {
	data := make([]byte, 4*4*3)
	s, err := NewView(4, 4, 12, BGR888, BottomLeft, data)
	if err != nil {
		t.Fatalf("NewView() error = %v", err)
	}
	if s.IsOwner() {
		t.Fatal("IsOwner() = true, want false for a view")
	}
	s.Free() // must be a no-op, not panic
	if s.Data() == nil {
		t.Fatal("Free() on a non-owning surface must not clear its data")
	}
}

func TestNewViewRejectsShortPitch(t *testing.T) {
	data := make([]byte, 4*4*4)
	if _, err := NewView(4, 4, 8, BGRA8888, TopLeft, data); err == nil {
		t.Fatal("NewView() with pitch smaller than width*bpp should fail")
	}
}

func TestNewViewRejectsShortData(t *testing.T) {
	data := make([]byte, 2)
	if _, err := NewView(4, 4, 16, BGRA8888, TopLeft, data); err == nil {
		t.Fatal("NewView() with insufficient data should fail")
	}
}

func TestFreeOwningSurfaceClearsData(t *testing.T) {
	s, err := New(2, 2, BGR888, TopLeft, GoAllocator{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	s.Free()
	if s.Data() != nil {
		t.Fatal("Free() on an owning surface should clear its data")
	}
}

func TestSurfaceImplementsImageImage(t *testing.T) {
	s, err := New(2, 2, BGRA8888, TopLeft, GoAllocator{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	copy(s.Data(), []byte{10, 20, 30, 255})
	c := s.At(0, 0)
	r, g, b, a := c.RGBA()
	if uint8(r>>8) != 30 || uint8(g>>8) != 20 || uint8(b>>8) != 10 || uint8(a>>8) != 255 {
		t.Fatalf("At(0,0) = %v, want R=30 G=20 B=10 A=255", c)
	}
}

func TestOriginBitsRoundTrip(t *testing.T) {
	for _, o := range []Origin{BottomLeft, BottomRight, TopLeft, TopRight} {
		bits, err := o.Bits()
		if err != nil {
			t.Fatalf("Bits() for %v: %v", o, err)
		}
		if got := OriginFromBits(bits); got != o {
			t.Errorf("OriginFromBits(%#b) = %v, want %v", bits, got, o)
		}
	}
}

func TestPixelFormatForTrueColor(t *testing.T) {
	cases := []struct {
		bpp, alpha int
		want       PixelFormat
	}{
		{3, 0, BGR888},
		{4, 8, BGRA8888},
		{4, 0, BGRX8888},
		{2, 1, BGRA5551},
		{2, 0, BGR555},
		{1, 0, Unknown},
		{4, 1, Unknown},
	}
	for _, tc := range cases {
		if got := PixelFormatForTrueColor(tc.bpp, tc.alpha); got != tc.want {
			t.Errorf("PixelFormatForTrueColor(%d, %d) = %v, want %v", tc.bpp, tc.alpha, got, tc.want)
		}
	}
}
