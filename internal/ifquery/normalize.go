package ifquery

import (
	"encoding/binary"
	"fmt"
	"strings"

	"firestige.xyz/ifreport/internal/core"
)

// FlagSet reports whether mask is set within a 2-byte flags word. The
// word is interpreted in host byte order, matching what the kernel wrote.
func FlagSet(word []byte, mask uint16) (bool, error) {
	if len(word) != 2 {
		return false, fmt.Errorf("%w: flags word must be 2 bytes, got %d", core.ErrMalformedBuffer, len(word))
	}
	return binary.NativeEndian.Uint16(word)&mask != 0, nil
}

// NormalizeStatus renders a 2-byte flags slice as "up" or "down" from the
// FlagUp bit alone. No other flag influences the result.
func NormalizeStatus(raw []byte) (string, error) {
	up, err := FlagSet(raw, FlagUp)
	if err != nil {
		return "", err
	}
	if up {
		return "up", nil
	}
	return "down", nil
}

// NormalizeIPv4 renders a 4-byte address slice as dotted decimal.
func NormalizeIPv4(raw []byte) (string, error) {
	if len(raw) != 4 {
		return "", fmt.Errorf("%w: IPv4 address must be 4 bytes, got %d", core.ErrMalformedBuffer, len(raw))
	}
	return fmt.Sprintf("%d.%d.%d.%d", raw[0], raw[1], raw[2], raw[3]), nil
}

// NormalizeHardwareAddr renders a 6-byte hardware address as lowercase
// hex octets joined with ".". The dot joiner is a compatibility contract
// with existing consumers of the report; do not change it to ":".
func NormalizeHardwareAddr(raw []byte) (string, error) {
	if len(raw) != 6 {
		return "", fmt.Errorf("%w: hardware address must be 6 bytes, got %d", core.ErrMalformedBuffer, len(raw))
	}
	octets := make([]string, len(raw))
	for i, b := range raw {
		octets[i] = fmt.Sprintf("%02x", b)
	}
	return strings.Join(octets, "."), nil
}
