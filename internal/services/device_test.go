package services

import "testing"

func TestDeviceInfoFromRequest(t *testing.T) {
	tests := []struct {
		name       string
		userAgent  string
		deviceType string
		browser    string
	}{
		{
			name:       "windows chrome",
			userAgent:  "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 Chrome/120.0.0.0 Safari/537.36",
			deviceType: "desktop",
			browser:    "Chrome",
		},
		{
			name:       "mac safari",
			userAgent:  "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 Version/17.0 Safari/605.1.15",
			deviceType: "desktop",
			browser:    "Safari",
		},
		{
			name:       "android firefox",
			userAgent:  "Mozilla/5.0 (Android 14; Mobile; rv:120.0) Gecko/120.0 Firefox/120.0",
			deviceType: "mobile",
			browser:    "Firefox",
		},
		{
			name:       "iphone safari",
			userAgent:  "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 Mobile/15E148 Safari/604.1",
			deviceType: "mobile",
			browser:    "Safari",
		},
		{
			name:       "tablet",
			userAgent:  "Mozilla/5.0 (Linux; Android 13; Tablet) Gecko/113.0 Firefox/113.0",
			deviceType: "tablet",
			browser:    "Firefox",
		},
		{
			name:       "linux desktop",
			userAgent:  "Mozilla/5.0 (X11; Linux x86_64; rv:120.0) Gecko/20100101 Firefox/120.0",
			deviceType: "desktop",
			browser:    "Firefox",
		},
		{
			name:       "empty user agent",
			userAgent:  "",
			deviceType: "unknown",
			browser:    "unknown",
		},
		{
			name:       "scripted client",
			userAgent:  "curl/8.4.0",
			deviceType: "unknown",
			browser:    "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := DeviceInfoFromRequest(tt.userAgent, "192.0.2.1")
			if info.DeviceType != tt.deviceType {
				t.Errorf("DeviceType = %q, expected %q", info.DeviceType, tt.deviceType)
			}
			if info.Browser != tt.browser {
				t.Errorf("Browser = %q, expected %q", info.Browser, tt.browser)
			}
			if info.IPAddress != "192.0.2.1" {
				t.Errorf("IPAddress = %q", info.IPAddress)
			}
			want := tt.deviceType + " - " + tt.browser
			if info.DeviceName != want {
				t.Errorf("DeviceName = %q, expected %q", info.DeviceName, want)
			}
		})
	}
}
