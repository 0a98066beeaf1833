package main

// AudioDevice is the sink the playback driver feeds with sealed
// packets. Implementations own their queue; "busy" means previously
// submitted audio is still rendering or waiting to render.
type AudioDevice interface {
	// Enqueue schedules pkt to play after everything already queued.
	Enqueue(pkt []byte)
	// PlayNow discards anything still pending and starts pkt
	// immediately.
	PlayNow(pkt []byte)
	// IsBusy reports whether submitted audio is still rendering.
	IsBusy() bool
	Close() error
}

// primePackets is how many packets are stacked up in the device
// before the driver trusts the queue to stay ahead of real time.
const primePackets = 3

// PlaybackDriver runs the two-phase submission protocol against an
// AudioDevice. While priming, every packet is queued unconditionally
// and the first one starts playback. In steady state a busy device
// gets a gapless Enqueue; a quiet device means the queue ran dry, so
// the driver restarts playback with the fresh packet. The restart is
// deliberately quiet in the logs: a brief dropout under load is an
// accepted degradation, not an error.
type PlaybackDriver struct {
	dev       AudioDevice
	submitted int
	steady    bool
}

func CreatePlaybackDriver(dev AudioDevice) *PlaybackDriver {
	return &PlaybackDriver{dev: dev}
}

// Submit hands one sealed packet to the device.
func (d *PlaybackDriver) Submit(pkt []byte) {
	if !d.steady {
		if d.submitted == 0 {
			d.dev.PlayNow(pkt)
		} else {
			d.dev.Enqueue(pkt)
		}
		d.submitted++
		if d.submitted >= primePackets {
			d.steady = true
		}
		return
	}
	if d.dev.IsBusy() {
		d.dev.Enqueue(pkt)
	} else {
		logger.Debug("audio queue ran dry, restarting playback")
		d.dev.PlayNow(pkt)
	}
}
