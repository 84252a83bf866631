package config

import (
	"vocalwork/src/internal/recording"
	"vocalwork/src/pkg/log"
)

// NewRecordingManager assembles the capture stack for a headless deployment:
// a loopback input device, a fixed-cadence frame clock and no display
// surface. Deployments with real capture hardware swap in their own
// InputDevice/Renderer implementations here.
func NewRecordingManager(logger log.Log) *recording.Manager {
	return recording.NewManager(
		recording.LoopbackDevice{},
		recording.FrameClock{},
		recording.NopRenderer{},
		logger,
	)
}
