package hue

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ErrNoBridge is returned when network discovery finds no bridge.
var ErrNoBridge = errors.New("no bridge found on the network")

// Locate resolves a bridge address. When explicit is non-empty it is
// parsed and used as-is; otherwise discover is invoked and the last
// candidate wins.
func Locate(ctx context.Context, explicit string, discover DiscoverFunc) (net.IP, error) {
	if explicit != "" {
		ip := net.ParseIP(explicit)
		if ip == nil {
			return nil, fmt.Errorf("invalid bridge address %q", explicit)
		}
		return ip, nil
	}

	addrs, err := discover(ctx)
	if err != nil {
		return nil, err
	}
	if len(addrs) == 0 {
		return nil, ErrNoBridge
	}

	last := addrs[len(addrs)-1]
	ip := net.ParseIP(last)
	if ip == nil {
		return nil, fmt.Errorf("discovery returned invalid address %q", last)
	}
	return ip, nil
}
