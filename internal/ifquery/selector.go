// Package ifquery issues kernel interface queries and decodes the raw
// fixed-layout buffers they return.
package ifquery

// Selector identifies which category of interface state an ioctl query
// requests. Values are the POSIX SIOCGIF* request codes.
type Selector uintptr

const (
	SelectorConf    Selector = 0x8912 // SIOCGIFCONF
	SelectorFlags   Selector = 0x8913 // SIOCGIFFLAGS
	SelectorAddr    Selector = 0x8915 // SIOCGIFADDR
	SelectorNetmask Selector = 0x891b // SIOCGIFNETMASK
	SelectorHWAddr  Selector = 0x8927 // SIOCGIFHWADDR
)

// Bits within the 16-bit interface flags word. Only FlagUp is consumed by
// the report fields; the rest are named for completeness.
const (
	FlagUp           uint16 = 0x0001
	FlagBroadcast    uint16 = 0x0002
	FlagLoopback     uint16 = 0x0008
	FlagPointToPoint uint16 = 0x0010
	FlagNoARP        uint16 = 0x0040
	FlagPromisc      uint16 = 0x0100
	FlagAllMulti     uint16 = 0x0200
	FlagMulticast    uint16 = 0x8000
)
