// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

package network

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	psnet "github.com/shirou/gopsutil/v4/net"

	"github.com/tomtom215/travelcompanion/internal/models"
)

func iface(name string, flags []string, addrs ...string) psnet.InterfaceStat {
	st := psnet.InterfaceStat{Name: name, Flags: flags}
	for _, a := range addrs {
		st.Addrs = append(st.Addrs, psnet.InterfaceAddr{Addr: a})
	}
	return st
}

func staticLister(list psnet.InterfaceStatList) Lister {
	return func(context.Context) (psnet.InterfaceStatList, error) { return list, nil }
}

func TestMonitor_Info(t *testing.T) {
	t.Parallel()

	lo := iface("lo", []string{"up", "loopback"}, "127.0.0.1/8")
	tests := []struct {
		name       string
		ifaces     psnet.InterfaceStatList
		wantOnline bool
		wantType   string
	}{
		{"loopback only", psnet.InterfaceStatList{lo}, false, TypeUnknown},
		{"wifi up", psnet.InterfaceStatList{lo, iface("wlp3s0", []string{"up", "broadcast"}, "192.168.1.20/24")}, true, TypeWiFi},
		{"ethernet down", psnet.InterfaceStatList{lo, iface("eth0", []string{"broadcast"}, "10.0.0.2/8")}, false, TypeUnknown},
		{"up without address", psnet.InterfaceStatList{iface("enp0s31f6", []string{"up"})}, false, TypeUnknown},
		{"first usable wins", psnet.InterfaceStatList{
			iface("eth0", []string{"up"}, "10.0.0.2/8"),
			iface("wlan0", []string{"up"}, "192.168.1.2/24"),
		}, true, TypeEthernet},
		{"cellular", psnet.InterfaceStatList{iface("wwan0", []string{"up", "pointtopoint"}, "100.64.0.3/32")}, true, TypeCellular},
		{"docker bridge", psnet.InterfaceStatList{iface("docker0", []string{"up"}, "172.17.0.1/16")}, true, TypeUnknown},
		{"known type preferred over bridge", psnet.InterfaceStatList{
			iface("docker0", []string{"up"}, "172.17.0.1/16"),
			iface("veth12ab", []string{"up"}, "fe80::1/64"),
			iface("wlan0", []string{"up"}, "192.168.1.2/24"),
		}, true, TypeWiFi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := NewMonitorWithLister(staticLister(tt.ifaces)).Info(context.Background())
			if err != nil {
				t.Fatal(err)
			}
			if info.Online != tt.wantOnline || info.Type != tt.wantType {
				t.Errorf("Info() = %+v, want online=%v type=%s", info, tt.wantOnline, tt.wantType)
			}
			if info.EffectiveType != "4g" {
				t.Errorf("EffectiveType = %q, want 4g fallback", info.EffectiveType)
			}
		})
	}
}

func TestMonitor_InfoError(t *testing.T) {
	t.Parallel()

	boom := errors.New("no netlink")
	m := NewMonitorWithLister(func(context.Context) (psnet.InterfaceStatList, error) { return nil, boom })
	info, err := m.Info(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
	if info.Online || info.Type != TypeUnknown {
		t.Errorf("unexpected info %+v", info)
	}
}

func TestQuality(t *testing.T) {
	t.Parallel()

	tests := []struct {
		info models.NetworkInfo
		want string
	}{
		{models.NetworkInfo{Online: false, EffectiveType: "4g"}, "Offline"},
		{models.NetworkInfo{Online: true, EffectiveType: "slow-2g"}, "Very Slow"},
		{models.NetworkInfo{Online: true, EffectiveType: "2g"}, "Slow"},
		{models.NetworkInfo{Online: true, EffectiveType: "3g"}, "Moderate"},
		{models.NetworkInfo{Online: true, EffectiveType: "4g"}, "Fast"},
		{models.NetworkInfo{Online: true}, "Unknown"},
	}
	for _, tt := range tests {
		if got := Quality(tt.info); got != tt.want {
			t.Errorf("Quality(%+v) = %q, want %q", tt.info, got, tt.want)
		}
	}
}

func TestMonitor_PollReportsChanges(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	online := true
	m := NewMonitorWithLister(func(context.Context) (psnet.InterfaceStatList, error) {
		mu.Lock()
		defer mu.Unlock()
		if online {
			return psnet.InterfaceStatList{iface("wlan0", []string{"up"}, "192.168.1.2/24")}, nil
		}
		return psnet.InterfaceStatList{}, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	changes := make(chan models.NetworkInfo, 10)
	done := make(chan struct{})
	go func() {
		defer close(done)
		m.Poll(ctx, 2*time.Millisecond, func(info models.NetworkInfo) { changes <- info }, nil)
	}()

	if first := <-changes; !first.Online {
		t.Fatalf("first reading = %+v, want online", first)
	}
	mu.Lock()
	online = false
	mu.Unlock()

	select {
	case next := <-changes:
		if next.Online {
			t.Errorf("second reading = %+v, want offline", next)
		}
	case <-time.After(time.Second):
		t.Fatal("no change reported")
	}

	cancel()
	<-done
	if n := len(changes); n != 0 {
		t.Errorf("%d duplicate readings reported", n)
	}
}
