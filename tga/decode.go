package tga

import (
	"fmt"
	"io"
	"os"

	rendertech "github.com/MartinNikolovMarinov/rendering-technique"
	"github.com/MartinNikolovMarinov/rendering-technique/surface"
)

// LoadFile reads path in full and parses it into a TGAImage. alloc supplies
// the backing buffer for the file contents; the returned TGAImage owns it
// and must be released with Free.
func LoadFile(path string, alloc surface.Allocator) (*TGAImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFailedToOpenFile, path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFailedToStatFile, path, err)
	}

	size := info.Size()
	if size < 0 || size > 1<<32 {
		return nil, fmt.Errorf("%w: %s: implausible file size %d", ErrInvalidFileFormat, path, size)
	}

	buf, err := alloc.Alloc(int(size))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: allocation failed: %v", ErrFailedToReadFile, path, err)
	}

	if _, err := io.ReadFull(f, buf); err != nil {
		alloc.Free(buf)
		return nil, fmt.Errorf("%w: %s: %v", ErrFailedToReadFile, path, err)
	}

	img, err := parseBuffer(buf)
	if err != nil {
		alloc.Free(buf)
		return nil, err
	}
	img.alloc = alloc
	return img, nil
}

// parseBuffer implements the decoder's footer-detection, header, and
// region-offset algorithm over an already fully-read byte buffer.
func parseBuffer(buf []byte) (*TGAImage, error) {
	img := &TGAImage{
		Data:                buf,
		HeaderOffset:        0,
		ImageIDOffset:       -1,
		ColorMapDataOffset:  -1,
		ImageDataOffset:     -1,
		DeveloperAreaOffset: -1,
		ExtensionAreaOffset: -1,
		FooterOffset:        -1,
	}

	// Footer detection: probe first, fall back silently to v1 on ErrOldFormat.
	if footer, ferr := ParseFooter(buf); ferr == nil {
		img.Footer = &footer
		img.FooterOffset = len(buf) - FooterSize
		img.ExtensionAreaOffset = int(footer.ExtensionAreaOffset)
		img.DeveloperAreaOffset = int(footer.DeveloperDirOffset)
	} else if ferr != ErrOldFormat {
		return nil, ferr
	}

	if len(buf) < HeaderSize {
		return nil, fmt.Errorf("%w: file shorter than header (%d bytes)", ErrInvalidFileFormat, len(buf))
	}
	header, err := ParseHeader(buf)
	if err != nil {
		return nil, err
	}
	img.Header = header

	offset := HeaderSize

	if header.IDLength > 0 {
		img.ImageIDOffset = offset
		offset += int(header.IDLength)
	}

	if cmSize := header.ColorMapDataSize(); cmSize > 0 {
		img.ColorMapDataOffset = offset
		offset += cmSize
	}

	img.ImageDataOffset = offset

	if img.ImageDataOffset <= 0 || len(buf) == 0 {
		return nil, fmt.Errorf("%w: invalid image-data offset %d", ErrInvalidFileFormat, img.ImageDataOffset)
	}

	if img.IsNew() {
		reparsed, err := ParseFooter(buf)
		if err != nil {
			return nil, fmt.Errorf("%w: footer re-check failed: %v", ErrInvalidFileFormat, err)
		}
		if reparsed != *img.Footer {
			return nil, fmt.Errorf("%w: footer offsets mismatch on re-read", ErrInvalidFileFormat)
		}
	}

	rendertech.Logger().Debug("tga: parsed file",
		"imageType", img.Header.ImageType,
		"width", img.Header.Width,
		"height", img.Header.Height,
		"isNew", img.IsNew())

	return img, nil
}

// NewSurfaceFromImage materializes a Surface from a decoded TGAImage,
// selecting a pixel format from the header's byte-depth and alpha-bit count
// and copying the image-data region verbatim.
func NewSurfaceFromImage(img *TGAImage, alloc surface.Allocator) (*surface.Surface, error) {
	h := img.Header

	if h.ImageType != 2 {
		return nil, fmt.Errorf("%w: image type %d", ErrUnsupportedImageType, h.ImageType)
	}

	bpp := int(h.PixelDepth+7) / 8
	width, height := int(h.Width), int(h.Height)
	pitch := bpp * width
	size := pitch * height
	if size == 0 {
		return nil, fmt.Errorf("%w: zero-size image (%dx%d)", ErrFailedToCreateSurface, width, height)
	}

	format := surface.PixelFormatForTrueColor(bpp, h.AlphaBits())
	if format == surface.Unknown {
		return nil, fmt.Errorf("%w: no pixel format for bpp=%d alphaBits=%d", ErrFailedToCreateSurface, bpp, h.AlphaBits())
	}

	if img.ImageDataOffset < 0 || img.ImageDataOffset+size > len(img.Data) {
		return nil, fmt.Errorf("%w: image data region out of range", ErrInvalidFileFormat)
	}

	s, err := surface.New(width, height, format, h.Origin(), alloc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToCreateSurface, err)
	}
	copy(s.Data(), img.Data[img.ImageDataOffset:img.ImageDataOffset+size])
	return s, nil
}
