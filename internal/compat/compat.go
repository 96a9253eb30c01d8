// Package compat warns about generated constructs that the host's React
// version ignores.
package compat

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// propTypesDroppedMajor is the first React major that ignores propTypes and
// defaultProps on function components.
const propTypesDroppedMajor = 19

// probeMajors bounds the search for an admitted version at or above
// propTypesDroppedMajor.
const probeMajors = 6

// Check returns the warnings that apply when a component of the given style
// is generated for a host declaring reactRange. An empty range yields no
// warnings; a range that is not a semver constraint (e.g. "latest",
// "workspace:*") yields an error.
func Check(reactRange string, functional bool) ([]string, error) {
	reactRange = strings.TrimSpace(reactRange)
	if reactRange == "" {
		return nil, nil
	}

	c, err := semver.NewConstraint(reactRange)
	if err != nil {
		return nil, fmt.Errorf("parsing react range %q: %w", reactRange, err)
	}

	if !admitsMajorAtLeast(c, reactRange, propTypesDroppedMajor) {
		return nil, nil
	}

	warnings := []string{
		fmt.Sprintf("react %s may resolve to React %d+, which ignores propTypes", reactRange, propTypesDroppedMajor),
	}

	if functional {
		warnings = append(warnings, fmt.Sprintf(
			"react %s may resolve to React %d+, which ignores defaultProps on function components",
			reactRange, propTypesDroppedMajor,
		))
	}

	return warnings, nil
}

// admitsMajorAtLeast reports whether c accepts some version with major >= min.
// Versions named in the range itself are probed first, then a grid of
// minor/patch combinations per major.
func admitsMajorAtLeast(c *semver.Constraints, raw string, minMajor uint64) bool {
	for _, v := range mentionedVersions(raw) {
		if v.Major() >= minMajor && c.Check(v) {
			return true
		}
	}

	for major := minMajor; major < minMajor+probeMajors; major++ {
		for minor := uint64(0); minor <= 30; minor++ {
			for _, patch := range []uint64{0, 99} {
				if c.Check(semver.New(major, minor, patch, "", "")) {
					return true
				}
			}
		}
	}

	return false
}

// mentionedVersions extracts the versions spelled out in a range string.
func mentionedVersions(raw string) []*semver.Version {
	var versions []*semver.Version

	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ' ' || r == '|' || r == ','
	})

	for _, f := range fields {
		f = strings.TrimLeft(f, "^~=<>!v")
		if v, err := semver.NewVersion(f); err == nil {
			versions = append(versions, v)
		}
	}

	return versions
}
