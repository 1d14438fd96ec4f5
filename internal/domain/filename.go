package domain

import (
	"path"
	"strings"
)

const (
	SessionTypeRace              = "Race"
	SessionTypePractice          = "Practice"
	SessionTypeShortQualifying   = "Short Qualifying"
	SessionTypeOneShotQualifying = "One Shot Qualifying"
	SessionTypeTimeTrial         = "Time Trial"
)

// timestampSegments is the number of trailing underscore segments that encode
// the recording timestamp (YYYY_MM_DD_HH_mm_ss).
const timestampSegments = 6

// FilenameMeta is the structured metadata encoded in a session's stored name.
type FilenameMeta struct {
	SessionType string
	Track       string
	Date        string
}

// ParseFilename extracts session type, track and recording date from a stored
// session name. It never fails: unrecognized prefixes fall through to the
// single-token session type branch and a missing track becomes "Unknown".
func ParseFilename(name string) FilenameMeta {
	segments := strings.Split(baseName(name), "_")

	var prefix []string
	meta := FilenameMeta{Track: "Unknown"}
	if len(segments) > timestampSegments {
		prefix = segments[:len(segments)-timestampSegments]
		meta.Date = joinTimestamp(segments[len(segments)-timestampSegments:])
	} else {
		prefix = segments
	}

	switch {
	case len(prefix) >= 2 && prefix[0] == "One" && prefix[1] == "Shot":
		meta.SessionType = SessionTypeOneShotQualifying
		meta.Track = prefixSegment(prefix, 3)
	case len(prefix) >= 1 && prefix[0] == "Short":
		meta.SessionType = SessionTypeShortQualifying
		meta.Track = prefixSegment(prefix, 2)
	case len(prefix) >= 2 && prefix[0] == "Time" && prefix[1] == "Trial":
		meta.SessionType = SessionTypeTimeTrial
		meta.Track = prefixSegment(prefix, 2)
	default:
		meta.SessionType = prefixSegment(prefix, 0)
		meta.Track = prefixSegment(prefix, 1)
	}

	return meta
}

// Slug derives the normalized session identifier from a stored name:
// directory components and extension stripped, lower-cased, "_" replaced
// with "-". Deterministic and dependency free, safe to use as a cache key
// or URL path segment.
func Slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(baseName(name)), "_", "-")
}

func baseName(name string) string {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	return strings.TrimSuffix(base, path.Ext(base))
}

func prefixSegment(prefix []string, i int) string {
	if i >= len(prefix) || prefix[i] == "" {
		return "Unknown"
	}
	return prefix[i]
}

// joinTimestamp turns the six trailing segments into ISO-8601 local time,
// eg. ["2026","01","26","22","14","52"] -> "2026-01-26T22:14:52".
func joinTimestamp(segments []string) string {
	return strings.Join(segments[:3], "-") + "T" + strings.Join(segments[3:], ":")
}
