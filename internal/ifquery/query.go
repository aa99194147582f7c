package ifquery

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"

	"firestige.xyz/ifreport/internal/core"
)

const (
	// BufferSize is the fixed size of the raw request/response buffer
	// exchanged with the kernel. Extraction offsets assume this layout.
	BufferSize = 256

	// nameFieldSize is the width of the interface name field at the
	// start of the buffer. Longer names are silently truncated.
	nameFieldSize = 16
)

// Querier issues a kernel query for one category of interface state and
// returns the raw response buffer.
type Querier interface {
	Query(ifname string, sel Selector) ([]byte, error)
}

// IoctlQuerier queries interface state through the SIOCGIF* ioctl family.
// Each call opens its own datagram socket and closes it before returning,
// so the zero value is safe for concurrent use.
type IoctlQuerier struct{}

func NewQuerier() *IoctlQuerier {
	return &IoctlQuerier{}
}

// Query packs ifname into the name field of a fresh buffer, issues the
// ioctl identified by sel, and returns the kernel-filled buffer. The
// socket exists only as an ioctl handle; no data is ever sent on it.
func (q *IoctlQuerier) Query(ifname string, sel Selector) ([]byte, error) {
	if ifname == "" {
		return nil, fmt.Errorf("%w: empty interface name", core.ErrQueryFailed)
	}

	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_DGRAM, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: open query socket: %v", core.ErrQueryFailed, err)
	}
	defer unix.Close(fd)

	buf := make([]byte, BufferSize)
	// Keep at least one trailing NUL in the name field.
	copy(buf[:nameFieldSize-1], ifname)

	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), uintptr(sel),
		uintptr(unsafe.Pointer(&buf[0])))
	if errno != 0 {
		return nil, queryError(ifname, errno)
	}
	return buf, nil
}

// queryError maps kernel errno values onto the sentinel error taxonomy.
// Anything unrecognized surfaces as ErrQueryFailed carrying the errno.
func queryError(ifname string, errno unix.Errno) error {
	switch errno {
	case unix.ENODEV, unix.ENXIO:
		return fmt.Errorf("%w: %s", core.ErrInterfaceNotFound, ifname)
	case unix.EPERM, unix.EACCES:
		return fmt.Errorf("%w: %s", core.ErrPermissionDenied, ifname)
	default:
		return fmt.Errorf("%w: %s: errno %d (%v)", core.ErrQueryFailed, ifname, int(errno), errno)
	}
}
