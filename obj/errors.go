package obj

import "errors"

var (
	// ErrUnsupportedVersion is returned when a Version other than Version3_0
	// is requested.
	ErrUnsupportedVersion = errors.New("obj: unsupported version")

	// ErrFailedToStatFile is returned when the input file cannot be stat'd.
	ErrFailedToStatFile = errors.New("obj: failed to stat file")

	// ErrFailedToReadFile is returned when the input file cannot be read in full.
	ErrFailedToReadFile = errors.New("obj: failed to read file")

	// ErrInvalidFileFormat is returned for an unparseable number, a face
	// with an arity other than three corners, or a malformed corner token.
	ErrInvalidFileFormat = errors.New("obj: invalid file format")
)
