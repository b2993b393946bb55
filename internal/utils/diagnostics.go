package utils

import (
	"net"
	"strings"
)

// GetLocalIPs returns all non-loopback IPv4 addresses with smart filtering.
// Link-local (169.254.x.x) addresses are dropped when a routable one exists,
// so the startup banner shows addresses other machines can actually reach.
func GetLocalIPs() []string {
	var allIPs []string
	var hasRoutableIP bool

	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return allIPs
	}
	for _, addr := range addrs {
		if ipnet, ok := addr.(*net.IPNet); ok && !ipnet.IP.IsLoopback() {
			if ipnet.IP.To4() != nil {
				ip := ipnet.IP.String()
				allIPs = append(allIPs, ip)
				if !strings.HasPrefix(ip, "169.254") {
					hasRoutableIP = true
				}
			}
		}
	}

	var finalIPs []string
	for _, ip := range allIPs {
		if hasRoutableIP && strings.HasPrefix(ip, "169.254") {
			continue
		}
		finalIPs = append(finalIPs, ip)
	}

	return finalIPs
}
