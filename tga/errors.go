package tga

import "errors"

// Error kinds returned by this package. Callers should compare with
// errors.Is; wrapped errors carry additional context via fmt.Errorf("%w").
var (
	// ErrFailedToOpenFile is returned when LoadFile cannot open the input
	// file, or when WriteSurface cannot create or open the output file.
	ErrFailedToOpenFile = errors.New("tga: failed to open file")

	// ErrFailedToStatFile is returned when the input file cannot be stat'd.
	ErrFailedToStatFile = errors.New("tga: failed to stat file")

	// ErrFailedToReadFile is returned when the input file cannot be read in full.
	ErrFailedToReadFile = errors.New("tga: failed to read file")

	// ErrFailedToWriteFile is returned when a write does not complete in full.
	ErrFailedToWriteFile = errors.New("tga: failed to write file")

	// ErrInvalidFileFormat is returned when the buffer is too short, or the
	// header or footer fails to parse or validate.
	ErrInvalidFileFormat = errors.New("tga: invalid file format")

	// ErrOldFormat signals that footer probing found no v2 footer. It is
	// used internally during decode and never escapes LoadFile.
	ErrOldFormat = errors.New("tga: old (v1) format")

	// ErrUnsupportedImageType is returned when the image type is anything
	// other than 2 (uncompressed true-color), by either the encoder or decoder.
	ErrUnsupportedImageType = errors.New("tga: unsupported image type")

	// ErrInvalidArgument is returned for caller errors: a zero-size surface,
	// an unknown file type, or an origin with no TGA descriptor encoding.
	ErrInvalidArgument = errors.New("tga: invalid argument")

	// ErrApplicationBug is returned when internal state reaches a branch
	// that should be unreachable given the preceding validation.
	ErrApplicationBug = errors.New("tga: application bug")

	// ErrFailedToCreateSurface wraps a surface-construction failure that
	// occurs after a TGAImage has already been successfully decoded.
	ErrFailedToCreateSurface = errors.New("tga: failed to create surface")
)
