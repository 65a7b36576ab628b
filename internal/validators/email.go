package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid checks that the part after @ actually resolves, either
// via MX records or a plain A/AAAA lookup for domains that receive mail on
// the apex. Registration uses this on top of gin's format binding to turn
// away addresses at domains that cannot receive anything.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}
	host := email[at+1:]

	if mx, err := net.LookupMX(host); err == nil && len(mx) > 0 {
		return true
	}
	ips, err := net.LookupIP(host)
	return err == nil && len(ips) > 0
}
