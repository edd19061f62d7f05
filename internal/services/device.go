package services

import "strings"

// DeviceInfo describes the client a session was opened from.
type DeviceInfo struct {
	DeviceName string `json:"device_name"`
	DeviceType string `json:"device_type"`
	Browser    string `json:"browser"`
	IPAddress  string `json:"ip_address"`
}

// DeviceInfoFromRequest classifies a User-Agent into a coarse device type
// and browser family. Simple substring matching is deliberate; this feeds
// session listings, not analytics.
func DeviceInfoFromRequest(userAgent, clientIP string) *DeviceInfo {
	ua := strings.ToLower(userAgent)

	deviceType := "unknown"
	switch {
	case strings.Contains(ua, "mobile"):
		deviceType = "mobile"
	case strings.Contains(ua, "tablet"):
		deviceType = "tablet"
	case strings.Contains(ua, "windows"), strings.Contains(ua, "macintosh"), strings.Contains(ua, "linux"):
		deviceType = "desktop"
	}

	browser := "unknown"
	switch {
	case strings.Contains(ua, "chrome"):
		browser = "Chrome"
	case strings.Contains(ua, "firefox"):
		browser = "Firefox"
	case strings.Contains(ua, "safari"):
		browser = "Safari"
	case strings.Contains(ua, "edge"):
		browser = "Edge"
	case strings.Contains(ua, "opera"), strings.Contains(ua, "opr"):
		browser = "Opera"
	}

	return &DeviceInfo{
		DeviceName: deviceType + " - " + browser,
		DeviceType: deviceType,
		Browser:    browser,
		IPAddress:  clientIP,
	}
}
