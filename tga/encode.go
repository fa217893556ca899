package tga

import (
	"fmt"
	"os"

	"github.com/MartinNikolovMarinov/rendering-technique/surface"
)

// WriteSurface encodes s as a TGA file at path in the given fileType.
// imageType is the on-disk TGA image type; only 2 (uncompressed true-color)
// is currently supported.
func WriteSurface(path string, s *surface.Surface, imageType uint8, fileType FileType) error {
	if s.Size() == 0 {
		return fmt.Errorf("%w: zero-size surface", ErrInvalidArgument)
	}
	if fileType != Original && fileType != New {
		return fmt.Errorf("%w: unknown file type %d", ErrInvalidArgument, fileType)
	}
	if imageType != 2 {
		return fmt.Errorf("%w: image type %d", ErrUnsupportedImageType, imageType)
	}

	descriptor, err := descriptorByte(s.Format().AlphaBits(), s.Origin())
	if err != nil {
		return err
	}

	header := Header{
		IDLength:     0,
		ColorMapType: 0,
		ImageType:    imageType,
		PixelDepth:   uint8(s.Bpp() * 8),
		Width:        uint16(s.Width()),
		Height:       uint16(s.Height()),
		Descriptor:   descriptor,
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrFailedToOpenFile, path, err)
	}
	defer f.Close()

	if err := writeAll(f, header.Encode()); err != nil {
		return err
	}
	if err := writeAll(f, pixelBytes(s)); err != nil {
		return err
	}

	if fileType == New {
		footer := Footer{ExtensionAreaOffset: 0, DeveloperDirOffset: 0}
		if err := writeAll(f, footer.Encode()); err != nil {
			return err
		}
	}

	return nil
}

// pixelBytes returns the height*pitch bytes of a surface's pixel data,
// unchanged, in the order the encoder writes them.
func pixelBytes(s *surface.Surface) []byte {
	return s.Data()[:s.Size()]
}

func writeAll(f *os.File, b []byte) error {
	n, err := f.Write(b)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToWriteFile, err)
	}
	if n != len(b) {
		return fmt.Errorf("%w: short write (%d of %d bytes)", ErrFailedToWriteFile, n, len(b))
	}
	return nil
}
