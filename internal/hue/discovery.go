package hue

import (
	"context"
	"fmt"
	"time"

	"github.com/amimof/huego"
	"github.com/grandcat/zeroconf"
)

const (
	mdnsService = "_hue._tcp"
	mdnsDomain  = "local."
	mdnsTimeout = 5 * time.Second
)

// DiscoverFunc returns candidate bridge addresses found on the network,
// in source order.
type DiscoverFunc func(ctx context.Context) ([]string, error)

// Discover finds Hue bridges on the local network. It queries the NUPnP
// portal first and falls back to an mDNS browse when the portal returns
// no candidates.
func Discover(ctx context.Context) ([]string, error) {
	bridges, err := huego.DiscoverAllContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("discovering bridges: %w", err)
	}
	addrs := make([]string, 0, len(bridges))
	for _, b := range bridges {
		addrs = append(addrs, b.Host)
	}
	if len(addrs) > 0 {
		return addrs, nil
	}
	return discoverMDNS(ctx)
}

// discoverMDNS browses for the bridge's mDNS service and collects IPv4
// addresses until the browse times out.
func discoverMDNS(ctx context.Context) ([]string, error) {
	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return nil, fmt.Errorf("creating mdns resolver: %w", err)
	}

	browseCtx, cancel := context.WithTimeout(ctx, mdnsTimeout)
	defer cancel()

	entries := make(chan *zeroconf.ServiceEntry, 10)
	if err := resolver.Browse(browseCtx, mdnsService, mdnsDomain, entries); err != nil {
		return nil, fmt.Errorf("browsing for bridges: %w", err)
	}

	var addrs []string
	for entry := range entries {
		for _, ip := range entry.AddrIPv4 {
			addrs = append(addrs, ip.String())
		}
	}
	return addrs, nil
}
