package tga

import (
	"bytes"
	"encoding/binary"
)

// FooterSize is the fixed size in bytes of a v2 TGA footer.
const FooterSize = 26

// signature is the full 18-byte New-format trailer, including the
// terminating NUL. All 18 bytes are significant: a file whose 18th byte is
// not zero is not a valid v2 footer even if the preceding 17 ASCII bytes match.
var signature = [18]byte{
	'T', 'R', 'U', 'E', 'V', 'I', 'S', 'I', 'O', 'N', '-', 'X', 'F', 'I', 'L', 'E', '.', 0,
}

// Footer is the optional 26-byte trailer that marks a New (v2) TGA file.
type Footer struct {
	ExtensionAreaOffset uint32
	DeveloperDirOffset  uint32
}

// hasSignature reports whether the last 18 bytes of b match the New-format
// signature exactly, byte for byte including the trailing NUL.
func hasSignature(b []byte) bool {
	if len(b) < 18 {
		return false
	}
	return bytes.Equal(b[len(b)-18:], signature[:])
}

// ParseFooter reads the last FooterSize bytes of b as a Footer. It returns
// ErrOldFormat if b is too short or the signature does not match; callers
// treat that as "no footer present", not a fatal error.
func ParseFooter(b []byte) (Footer, error) {
	if len(b) < FooterSize {
		return Footer{}, ErrOldFormat
	}
	tail := b[len(b)-FooterSize:]
	if !hasSignature(tail[8:]) {
		return Footer{}, ErrOldFormat
	}
	return Footer{
		ExtensionAreaOffset: binary.LittleEndian.Uint32(tail[0:4]),
		DeveloperDirOffset:  binary.LittleEndian.Uint32(tail[4:8]),
	}, nil
}

// Encode writes f into a 26-byte slice in on-disk layout, including the
// trailing signature field.
func (f Footer) Encode() []byte {
	b := make([]byte, FooterSize)
	binary.LittleEndian.PutUint32(b[0:4], f.ExtensionAreaOffset)
	binary.LittleEndian.PutUint32(b[4:8], f.DeveloperDirOffset)
	copy(b[8:], signature[:])
	return b
}
