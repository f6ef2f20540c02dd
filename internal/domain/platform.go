package domain

import (
	"regexp"
	"strings"
)

// Platform represents the source platform detected from a URL
type Platform string

const (
	PlatformYouTube   Platform = "YouTube"
	PlatformTikTok    Platform = "TikTok"
	PlatformInstagram Platform = "Instagram"
	PlatformX         Platform = "X" // X/Twitter
	PlatformGeneric   Platform = "Generic"
	PlatformUnknown   Platform = ""
)

// platformSignature pairs a platform name with the pattern that claims it
type platformSignature struct {
	name    Platform
	pattern *regexp.Regexp
}

// platformSignatures is evaluated in order, first match wins. The last
// entry claims any http(s) URL, so detection only comes back empty for
// input that is blank or not an http(s) URL at all.
var platformSignatures = []platformSignature{
	{PlatformYouTube, regexp.MustCompile(`(?i)(youtube\.com|youtu\.be)`)},
	{PlatformTikTok, regexp.MustCompile(`(?i)tiktok\.com`)},
	{PlatformInstagram, regexp.MustCompile(`(?i)instagram\.com`)},
	{PlatformX, regexp.MustCompile(`(?i)(twitter\.com|x\.com)`)},
	{PlatformGeneric, regexp.MustCompile(`(?i)^https?://`)},
}

// DetectPlatform detects the platform from a URL. Detection is
// informational only and never gates submission.
func DetectPlatform(url string) Platform {
	url = strings.TrimSpace(url)
	if url == "" {
		return PlatformUnknown
	}
	for _, sig := range platformSignatures {
		if sig.pattern.MatchString(url) {
			return sig.name
		}
	}
	return PlatformUnknown
}

// Platforms returns the names in detection order
func Platforms() []Platform {
	names := make([]Platform, 0, len(platformSignatures))
	for _, sig := range platformSignatures {
		names = append(names, sig.name)
	}
	return names
}
