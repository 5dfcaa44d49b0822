package remote

import (
	"fmt"
	"os"

	"github.com/hashicorp/mdns"
)

const serviceType = "_localpaint._tcp"

// Advertise publishes the remote panel on the local network. The TXT
// record carries the session ID and the endpoint path.
func Advertise(port int, session string) (*mdns.Server, error) {
	host, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("could not get hostname: %w", err)
	}

	service, err := mdns.NewMDNSService(host, serviceType, "", "", port, nil, txtRecord(session))
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS service: %w", err)
	}

	server, err := mdns.NewServer(&mdns.Config{Zone: service})
	if err != nil {
		return nil, fmt.Errorf("failed to start mDNS server: %w", err)
	}
	return server, nil
}

func txtRecord(session string) []string {
	return []string{"LocalPaint", "session=" + session, "path=" + PanelPath}
}
