// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

package geolocation

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/adrianmo/go-nmea"
	"github.com/tarm/serial"

	"github.com/tomtom215/travelcompanion/internal/logging"
)

const (
	knotsToMs = 0.514444

	// hdopToMeters approximates horizontal accuracy as HDOP times a typical
	// user equivalent range error.
	hdopToMeters = 5.0
)

// NMEASource reads NMEA 0183 sentences from a GPS receiver or a recorded
// log. RMC sentences carry position, speed and course; GGA sentences carry
// fix quality and HDOP, and are used for position only when the stream has
// no RMC.
type NMEASource struct {
	name string
	open func() (io.ReadCloser, error)

	// pace is the pause after each fix; used to replay logs in real time.
	pace time.Duration

	// holdAtEOF keeps the session alive on the last fix when the input ends.
	holdAtEOF bool
}

// NewSerialSource reads from a serial device such as /dev/ttyUSB0.
func NewSerialSource(device string, baud int) *NMEASource {
	return &NMEASource{
		name: "nmea",
		open: func() (io.ReadCloser, error) {
			return serial.OpenPort(&serial.Config{Name: device, Baud: baud})
		},
	}
}

// NewReplaySource replays a recorded NMEA log, pausing pace between fixes.
func NewReplaySource(path string, pace time.Duration) *NMEASource {
	return &NMEASource{
		name:      "nmea",
		open:      func() (io.ReadCloser, error) { return os.Open(path) },
		pace:      pace,
		holdAtEOF: true,
	}
}

// NewReaderSource reads sentences from r. Useful for tests and pipes.
func NewReaderSource(r io.Reader, pace time.Duration) *NMEASource {
	return &NMEASource{
		name:      "nmea",
		open:      func() (io.ReadCloser, error) { return io.NopCloser(r), nil },
		pace:      pace,
		holdAtEOF: true,
	}
}

func (s *NMEASource) Name() string { return s.name }

// Watch opens the input and emits one fix per usable sentence.
func (s *NMEASource) Watch(ctx context.Context, _ Options, fixes chan<- Position) error {
	rc, err := s.open()
	if err != nil {
		if pe := Classify(err); pe.Kind == KindPermissionDenied {
			return pe
		}
		return unavailable(fmt.Errorf("open nmea input: %w", err))
	}

	var closeOnce sync.Once
	closeInput := func() { closeOnce.Do(func() { _ = rc.Close() }) }
	defer closeInput()

	// Closing the input unblocks a pending read.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			closeInput()
		case <-done:
		}
	}()

	logger := logging.WithComponent("nmea")
	dec := &nmeaDecoder{}
	scanner := bufio.NewScanner(rc)
	for scanner.Scan() {
		p, ok, err := dec.Decode(scanner.Text())
		if err != nil {
			logger.Debug().Err(err).Msg("Skipping NMEA sentence")
			continue
		}
		if !ok {
			continue
		}
		p.Timestamp = time.Now()
		if !send(ctx, fixes, p) {
			return nil
		}
		if s.pace > 0 {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(s.pace):
			}
		}
	}

	if ctx.Err() != nil {
		return nil
	}
	if err := scanner.Err(); err != nil {
		return unavailable(fmt.Errorf("read nmea input: %w", err))
	}
	if s.holdAtEOF {
		<-ctx.Done()
		return nil
	}
	return unavailable(io.ErrUnexpectedEOF)
}

// nmeaDecoder keeps the state carried between sentences.
type nmeaDecoder struct {
	hdop   float64
	sawRMC bool
}

// Decode parses one line. ok is false for sentences that do not produce a
// fix (other types, invalid fixes, blank lines).
func (d *nmeaDecoder) Decode(line string) (p Position, ok bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" || (line[0] != '$' && line[0] != '!') {
		return Position{}, false, nil
	}

	sentence, err := nmea.Parse(line)
	if err != nil {
		return Position{}, false, err
	}

	switch m := sentence.(type) {
	case nmea.RMC:
		if m.Validity != nmea.ValidRMC {
			return Position{}, false, nil
		}
		d.sawRMC = true
		speed := m.Speed * knotsToMs
		course := m.Course
		return Position{
			Latitude:  m.Latitude,
			Longitude: m.Longitude,
			Accuracy:  d.accuracy(),
			Speed:     &speed,
			Heading:   &course,
		}, true, nil

	case nmea.GGA:
		if m.FixQuality == nmea.Invalid {
			return Position{}, false, nil
		}
		d.hdop = m.HDOP
		if d.sawRMC {
			return Position{}, false, nil
		}
		return Position{
			Latitude:  m.Latitude,
			Longitude: m.Longitude,
			Accuracy:  d.accuracy(),
		}, true, nil
	}
	return Position{}, false, nil
}

func (d *nmeaDecoder) accuracy() float64 {
	if d.hdop <= 0 {
		return 0
	}
	return d.hdop * hdopToMeters
}
