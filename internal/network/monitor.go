// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

// Package network reports host connectivity from the interface table.
package network

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	psnet "github.com/shirou/gopsutil/v4/net"

	"github.com/tomtom215/travelcompanion/internal/models"
)

// Connection types.
const (
	TypeWiFi     = "wifi"
	TypeEthernet = "ethernet"
	TypeCellular = "cellular"
	TypeUnknown  = "unknown"
)

// defaultEffectiveType is reported when link quality cannot be measured.
const defaultEffectiveType = "4g"

// Interface name prefixes by connection type, checked in order.
var typePrefixes = []struct {
	kind     string
	prefixes []string
}{
	{TypeWiFi, []string{"wlan", "wlp", "wlx", "wifi", "wl", "ath", "ra"}},
	{TypeCellular, []string{"wwan", "wwp", "rmnet", "ccmni", "ppp", "usb"}},
	{TypeEthernet, []string{"eth", "enp", "eno", "ens", "enx", "en", "em"}},
}

// Lister returns the host interface table.
type Lister func(ctx context.Context) (psnet.InterfaceStatList, error)

// Monitor inspects network interfaces.
type Monitor struct {
	list Lister
}

// NewMonitor reads interfaces through gopsutil.
func NewMonitor() *Monitor {
	return &Monitor{list: psnet.InterfacesWithContext}
}

// NewMonitorWithLister uses list instead of the host table.
func NewMonitorWithLister(list Lister) *Monitor {
	return &Monitor{list: list}
}

// Info reports whether any non-loopback interface is up with an address,
// and the type of the first such interface with a known type. Bridges and
// virtual links only count as unknown when nothing else is up.
func (m *Monitor) Info(ctx context.Context) (models.NetworkInfo, error) {
	ifaces, err := m.list(ctx)
	if err != nil {
		return models.NetworkInfo{Type: TypeUnknown, EffectiveType: defaultEffectiveType},
			fmt.Errorf("list interfaces: %w", err)
	}

	info := models.NetworkInfo{Type: TypeUnknown, EffectiveType: defaultEffectiveType}
	for _, iface := range ifaces {
		if !usable(iface) {
			continue
		}
		info.Online = true
		if kind := ClassifyInterface(iface.Name); kind != TypeUnknown {
			info.Type = kind
			break
		}
	}
	return info, nil
}

func usable(iface psnet.InterfaceStat) bool {
	if !slices.Contains(iface.Flags, "up") || slices.Contains(iface.Flags, "loopback") {
		return false
	}
	return len(iface.Addrs) > 0
}

// ClassifyInterface guesses the connection type from an interface name.
func ClassifyInterface(name string) string {
	name = strings.ToLower(name)
	for _, tp := range typePrefixes {
		for _, p := range tp.prefixes {
			if strings.HasPrefix(name, p) {
				return tp.kind
			}
		}
	}
	return TypeUnknown
}

// Quality describes the connection for display.
func Quality(info models.NetworkInfo) string {
	if !info.Online {
		return "Offline"
	}
	switch info.EffectiveType {
	case "slow-2g":
		return "Very Slow"
	case "2g":
		return "Slow"
	case "3g":
		return "Moderate"
	case "4g":
		return "Fast"
	default:
		return "Unknown"
	}
}

// Poll calls onChange with the first reading and then whenever the
// reading changes, until ctx is cancelled. Lookup errors are passed to
// onError and the previous reading is kept.
func (m *Monitor) Poll(ctx context.Context, interval time.Duration, onChange func(models.NetworkInfo), onError func(error)) {
	var last *models.NetworkInfo
	check := func() {
		info, err := m.Info(ctx)
		if err != nil {
			if onError != nil {
				onError(err)
			}
			return
		}
		if last == nil || *last != info {
			last = &info
			onChange(info)
		}
	}

	check()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			check()
		}
	}
}
