// Package netaddr provides a small value type for IPv4 and IPv6 endpoints.
// A NetworkAddress pairs an IP address with an optional port number; a port
// of zero means no port was assigned. The type is comparable, orderable and
// hashable, so it works as a map key and sorts deterministically.
package netaddr

import (
	"fmt"
	"net"
	"net/netip"
	"strconv"

	"github.com/spaolacci/murmur3"
)

// AddressType identifies the family of a NetworkAddress.
type AddressType int

const (
	Unknown AddressType = iota
	IPv4
	IPv6
)

// String returns the family name.
func (t AddressType) String() string {
	switch t {
	case IPv4:
		return "IPv4"
	case IPv6:
		return "IPv6"
	default:
		return "Unknown"
	}
}

// NetworkAddress holds an IP address and port number. The zero value is
// the empty address with no family. IPv4-mapped IPv6 addresses are
// normalized to plain IPv4 on assignment, and IPv6 zone identifiers are
// stripped so comparisons depend only on address bytes and port.
type NetworkAddress struct {
	addr netip.Addr
	port uint16
}

// Parse builds a NetworkAddress from an address literal and a port.
// The literal may be IPv4 dotted quad or any textual IPv6 form.
func Parse(address string, port uint16) (NetworkAddress, error) {
	addr, err := netip.ParseAddr(address)
	if err != nil {
		return NetworkAddress{}, fmt.Errorf("netaddr: parse %q: %w", address, err)
	}
	return FromAddrPort(netip.AddrPortFrom(addr, port)), nil
}

// MustParse is Parse for static literals; it panics on error.
func MustParse(address string, port uint16) NetworkAddress {
	a, err := Parse(address, port)
	if err != nil {
		panic(err)
	}
	return a
}

// FromAddrPort builds a NetworkAddress from a netip.AddrPort.
func FromAddrPort(ap netip.AddrPort) NetworkAddress {
	addr := ap.Addr()
	if addr.Is4In6() {
		addr = addr.Unmap()
	}
	return NetworkAddress{addr: addr.WithZone(""), port: ap.Port()}
}

// FromNetAddr builds a NetworkAddress from a net.Addr as returned by the
// standard dialers and listeners. Address types without an IP and port,
// such as Unix sockets, are rejected.
func FromNetAddr(na net.Addr) (NetworkAddress, error) {
	var ip net.IP
	var port int
	switch a := na.(type) {
	case *net.TCPAddr:
		ip, port = a.IP, a.Port
	case *net.UDPAddr:
		ip, port = a.IP, a.Port
	case *net.IPAddr:
		ip = a.IP
	default:
		return NetworkAddress{}, fmt.Errorf("netaddr: unsupported address type %T", na)
	}
	addr, ok := netip.AddrFromSlice(ip)
	if !ok {
		return NetworkAddress{}, fmt.Errorf("netaddr: invalid IP in %v", na)
	}
	return FromAddrPort(netip.AddrPortFrom(addr, uint16(port))), nil
}

// Address returns the textual form of the IP address alone, without port
// or brackets. The empty address renders as an empty string.
func (a NetworkAddress) Address() string {
	if !a.addr.IsValid() {
		return ""
	}
	return a.addr.String()
}

// Addr returns the underlying netip.Addr.
func (a NetworkAddress) Addr() netip.Addr {
	return a.addr
}

// Port returns the port number; zero means no port is assigned.
func (a NetworkAddress) Port() uint16 {
	return a.port
}

// AssignPort returns a copy of the address with the given port.
func (a NetworkAddress) AssignPort(port uint16) NetworkAddress {
	a.port = port
	return a
}

// Type returns the address family.
func (a NetworkAddress) Type() AddressType {
	switch {
	case a.addr.Is4():
		return IPv4
	case a.addr.Is6():
		return IPv6
	default:
		return Unknown
	}
}

// Empty reports whether no address is assigned.
func (a NetworkAddress) Empty() bool {
	return !a.addr.IsValid()
}

// Clear returns the empty address.
func (a NetworkAddress) Clear() NetworkAddress {
	return NetworkAddress{}
}

// Equal reports whether both addresses have the same family, the same
// address bytes and the same port. Two empty addresses are equal.
func (a NetworkAddress) Equal(other NetworkAddress) bool {
	if a.Type() != other.Type() {
		return false
	}
	if a.Empty() {
		return true
	}
	return a.addr == other.addr && a.port == other.port
}

// Compare orders addresses by family, then address bytes, then port.
// It returns -1, 0 or 1 in the manner of bytes.Compare. Empty addresses
// sort before all others.
func (a NetworkAddress) Compare(other NetworkAddress) int {
	at, bt := a.Type(), other.Type()
	switch {
	case at < bt:
		return -1
	case at > bt:
		return 1
	case at == Unknown:
		return 0
	}
	if c := a.addr.Compare(other.addr); c != 0 {
		return c
	}
	switch {
	case a.port < other.port:
		return -1
	case a.port > other.port:
		return 1
	}
	return 0
}

// Less reports whether a orders before other.
func (a NetworkAddress) Less(other NetworkAddress) bool {
	return a.Compare(other) < 0
}

// Hash returns a 64-bit hash over the family, address bytes and port,
// suitable for sharded maps and consistent placement.
func (a NetworkAddress) Hash() uint64 {
	var buf [19]byte
	buf[0] = byte(a.Type())
	n := 1
	if a.addr.IsValid() {
		n += copy(buf[1:], a.addr.AsSlice())
	}
	buf[n] = byte(a.port >> 8)
	buf[n+1] = byte(a.port)
	return murmur3.Sum64(buf[:n+2])
}

// String renders the endpoint. IPv6 addresses are bracketed, and a ":port"
// suffix appears only when a port is assigned. The empty address renders
// as an empty string.
func (a NetworkAddress) String() string {
	if a.Empty() {
		return ""
	}
	s := a.addr.String()
	if a.Type() == IPv6 {
		s = "[" + s + "]"
	}
	if a.port > 0 {
		s += ":" + strconv.Itoa(int(a.port))
	}
	return s
}
