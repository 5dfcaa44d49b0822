package remote

import (
	"log"
	"net"
	"strconv"
)

// OutgoingIP finds the local address other machines on the LAN can use
// to reach the remote panel.
func OutgoingIP() string {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		return localIPFallback()
	}
	defer conn.Close()

	return conn.LocalAddr().(*net.UDPAddr).IP.String()
}

// localIPFallback is used on networks without internet access.
func localIPFallback() string {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		log.Printf("[REMOTE] Listing interfaces: %v", err)
		return "127.0.0.1"
	}
	for _, address := range addrs {
		if ipnet, ok := address.(*net.IPNet); ok && !ipnet.IP.IsLoopback() && ipnet.IP.To4() != nil {
			return ipnet.IP.String()
		}
	}
	log.Println("[REMOTE] No suitable local IP found, falling back to loopback")
	return "127.0.0.1"
}

// PanelURL formats the WebSocket URL of a panel served on host:port.
func PanelURL(host string, port int) string {
	return "ws://" + net.JoinHostPort(host, strconv.Itoa(port)) + PanelPath
}
