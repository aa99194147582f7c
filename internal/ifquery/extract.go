package ifquery

import (
	"fmt"

	"firestige.xyz/ifreport/internal/core"
)

// FieldKind identifies one extractable region of a raw query buffer.
type FieldKind int

const (
	KindFlags FieldKind = iota
	KindIPv4Addr
	KindIPv4Netmask
	KindHardwareAddr
)

// byteRange is a [start, end) slice of the raw query buffer.
type byteRange struct {
	start, end int
}

// Extraction offsets are fixed by the kernel request layout: a 16-byte
// name field followed by the selector-dependent union. They are constants
// of the query contract, never auto-detected.
var fieldRanges = map[FieldKind]byteRange{
	KindFlags:        {16, 18},
	KindIPv4Addr:     {20, 24},
	KindIPv4Netmask:  {20, 24},
	KindHardwareAddr: {18, 24},
}

// Extract slices one logical field out of a raw query buffer. A buffer
// shorter than the field's range cannot have come from a matching
// selector and is reported as ErrMalformedBuffer.
func Extract(buf []byte, kind FieldKind) ([]byte, error) {
	r, ok := fieldRanges[kind]
	if !ok {
		return nil, fmt.Errorf("%w: unknown field kind %d", core.ErrMalformedBuffer, kind)
	}
	if len(buf) < r.end {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", core.ErrMalformedBuffer, r.end, len(buf))
	}
	return buf[r.start:r.end], nil
}
