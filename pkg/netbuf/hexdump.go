package netbuf

import (
	"fmt"
	"strings"
)

// String renders the unread portion of the buffer as a hex dump, sixteen
// octets per line with an offset column and an ASCII gutter. Octets
// outside the printable range show as '.'. An empty buffer renders as an
// empty string.
func (b *DataBuffer) String() string {
	if b.dataLen == 0 {
		return ""
	}

	var sb strings.Builder
	var ascii strings.Builder
	counter := 0
	for _, octet := range b.Unread() {
		if counter%16 == 0 {
			fmt.Fprintf(&sb, "%08X:", counter)
		}
		fmt.Fprintf(&sb, " %02X", octet)
		if octet >= 0x20 && octet <= 0x7e {
			ascii.WriteByte(octet)
		} else {
			ascii.WriteByte('.')
		}
		counter++
		if counter%16 == 0 {
			sb.WriteString(" :" + ascii.String() + ":\n")
			ascii.Reset()
		}
	}
	if rem := counter % 16; rem != 0 {
		sb.WriteString(strings.Repeat(" ", (16-rem)*3))
		for ascii.Len() < 16 {
			ascii.WriteByte(' ')
		}
		sb.WriteString(" :" + ascii.String() + ":\n")
	}
	return sb.String()
}
