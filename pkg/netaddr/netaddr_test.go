package netaddr

import (
	"net"
	"net/netip"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	a, err := Parse("192.168.1.1", 5004)
	require.NoError(t, err)
	require.Equal(t, IPv4, a.Type())
	require.Equal(t, "192.168.1.1", a.Address())
	require.Equal(t, uint16(5004), a.Port())
	require.False(t, a.Empty())

	b, err := Parse("fe80::1", 0)
	require.NoError(t, err)
	require.Equal(t, IPv6, b.Type())
	require.Equal(t, "fe80::1", b.Address())
	require.Equal(t, uint16(0), b.Port())
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse("not an address", 80)
	require.Error(t, err)
	_, err = Parse("", 80)
	require.Error(t, err)
}

func TestMappedAddressNormalized(t *testing.T) {
	a, err := Parse("::ffff:10.0.0.1", 80)
	require.NoError(t, err)
	require.Equal(t, IPv4, a.Type())
	require.Equal(t, "10.0.0.1", a.Address())

	b := MustParse("10.0.0.1", 80)
	require.True(t, a.Equal(b))
}

func TestZoneIgnored(t *testing.T) {
	a := FromAddrPort(netip.AddrPortFrom(netip.MustParseAddr("fe80::1%eth0"), 9))
	b := MustParse("fe80::1", 9)
	require.True(t, a.Equal(b))
	require.Equal(t, "[fe80::1]:9", a.String())
}

func TestFromNetAddr(t *testing.T) {
	a, err := FromNetAddr(&net.TCPAddr{IP: net.ParseIP("10.1.2.3"), Port: 8080})
	require.NoError(t, err)
	require.Equal(t, "10.1.2.3:8080", a.String())

	b, err := FromNetAddr(&net.UDPAddr{IP: net.ParseIP("2001:db8::1"), Port: 53})
	require.NoError(t, err)
	require.Equal(t, IPv6, b.Type())
	require.Equal(t, uint16(53), b.Port())

	c, err := FromNetAddr(&net.IPAddr{IP: net.ParseIP("127.0.0.1")})
	require.NoError(t, err)
	require.Equal(t, uint16(0), c.Port())

	_, err = FromNetAddr(&net.UnixAddr{Name: "/tmp/sock", Net: "unix"})
	require.Error(t, err)
}

func TestEqual(t *testing.T) {
	a := MustParse("192.168.1.1", 5004)

	// Same address, different port: not equal.
	require.False(t, a.Equal(MustParse("192.168.1.1", 5005)))
	// Same port, different address: not equal.
	require.False(t, a.Equal(MustParse("192.168.1.2", 5004)))
	// Both match.
	require.True(t, a.Equal(MustParse("192.168.1.1", 5004)))
	// Family mismatch.
	require.False(t, a.Equal(MustParse("::1", 5004)))

	var empty1, empty2 NetworkAddress
	require.True(t, empty1.Equal(empty2))
	require.False(t, empty1.Equal(a))
}

func TestOrdering(t *testing.T) {
	addrs := []NetworkAddress{
		MustParse("2001:db8::1", 80),
		MustParse("10.0.0.2", 80),
		MustParse("10.0.0.1", 443),
		MustParse("10.0.0.1", 80),
		{},
		MustParse("::1", 0),
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i].Less(addrs[j]) })

	require.True(t, addrs[0].Empty())
	require.Equal(t, "10.0.0.1:80", addrs[1].String())
	require.Equal(t, "10.0.0.1:443", addrs[2].String())
	require.Equal(t, "10.0.0.2:80", addrs[3].String())
	require.Equal(t, "[::1]", addrs[4].String())
	require.Equal(t, "[2001:db8::1]:80", addrs[5].String())
}

func TestCompareReflexive(t *testing.T) {
	a := MustParse("10.0.0.1", 80)
	b := MustParse("10.0.0.1", 81)
	require.Equal(t, 0, a.Compare(a))
	require.Equal(t, -1, a.Compare(b))
	require.Equal(t, 1, b.Compare(a))
}

func TestString(t *testing.T) {
	require.Equal(t, "192.168.1.1:5004", MustParse("192.168.1.1", 5004).String())
	require.Equal(t, "192.168.1.1", MustParse("192.168.1.1", 0).String())
	require.Equal(t, "[2001:db8::1]:443", MustParse("2001:db8::1", 443).String())
	require.Equal(t, "[2001:db8::1]", MustParse("2001:db8::1", 0).String())
	require.Equal(t, "", NetworkAddress{}.String())
}

func TestAssignPortAndClear(t *testing.T) {
	a := MustParse("10.0.0.1", 0)
	b := a.AssignPort(9000)
	require.Equal(t, uint16(0), a.Port())
	require.Equal(t, uint16(9000), b.Port())
	require.True(t, a.Addr() == b.Addr())

	c := b.Clear()
	require.True(t, c.Empty())
	require.Equal(t, Unknown, c.Type())
}

func TestHash(t *testing.T) {
	a := MustParse("192.168.1.1", 5004)
	require.Equal(t, a.Hash(), MustParse("192.168.1.1", 5004).Hash())

	// Port and address both contribute.
	require.NotEqual(t, a.Hash(), MustParse("192.168.1.1", 5005).Hash())
	require.NotEqual(t, a.Hash(), MustParse("192.168.1.2", 5004).Hash())

	// A mapped IPv4 address hashes like its plain form.
	m, err := Parse("::ffff:192.168.1.1", 5004)
	require.NoError(t, err)
	require.Equal(t, a.Hash(), m.Hash())
}

func TestMapKey(t *testing.T) {
	m := map[NetworkAddress]int{
		MustParse("10.0.0.1", 80): 1,
		MustParse("10.0.0.1", 81): 2,
	}
	require.Equal(t, 1, m[MustParse("10.0.0.1", 80)])
	require.Equal(t, 2, m[MustParse("10.0.0.1", 81)])
}

func TestAddressTypeString(t *testing.T) {
	require.Equal(t, "IPv4", IPv4.String())
	require.Equal(t, "IPv6", IPv6.String())
	require.Equal(t, "Unknown", Unknown.String())
	require.Equal(t, "Unknown", AddressType(42).String())
}
