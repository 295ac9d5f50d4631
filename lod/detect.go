package lod

import (
	"regexp"
	"strings"
)

// DeviceInfo describes the host. A zero MemoryGB means unknown.
type DeviceInfo struct {
	UserAgent string
	HasGPU    bool
	Renderer  string
	MemoryGB  float64
}

var mobileAgent = regexp.MustCompile(`(?i)Android|webOS|iPhone|iPad|iPod|BlackBerry|IEMobile|Opera Mini`)

// DetectPreset picks a starting preset. A nil info (headless host) gets
// desktop.
func DetectPreset(info *DeviceInfo) PresetName {
	if info == nil {
		return Desktop
	}
	if mobileAgent.MatchString(info.UserAgent) {
		return Mobile
	}
	if !info.HasGPU {
		return Performance
	}

	renderer := strings.ToLower(info.Renderer)
	if renderer != "" {
		switch {
		case containsAny(renderer, "rtx", "radeon rx 7", "radeon rx 6"):
			return Ultra
		case containsAny(renderer, "gtx 10", "gtx 16", "rtx 20", "radeon rx 5"):
			return Quality
		case containsAny(renderer, "intel", "hd graphics", "uhd graphics"):
			return Performance
		}
	}

	if info.MemoryGB > 0 {
		switch {
		case info.MemoryGB >= 8:
			return Quality
		case info.MemoryGB >= 4:
			return Desktop
		case info.MemoryGB >= 2:
			return Performance
		default:
			return Mobile
		}
	}

	return Desktop
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
