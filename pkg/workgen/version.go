package workgen

import (
	"fmt"

	"golang.org/x/mod/semver"
)

const CatalogVersion = "v1.0.0"

// IsCompatibleVersion checks if a stored catalog version is compatible with
// the version this binary writes.
// Compatibility rules:
// - Major version must match exactly.
// - Minor and patch versions can differ.
func IsCompatibleVersion(storedVersion, currentVersion string) (bool, error) {
	if !semver.IsValid(storedVersion) {
		return false, fmt.Errorf("invalid stored version: %s", storedVersion)
	}
	if !semver.IsValid(currentVersion) {
		return false, fmt.Errorf("invalid current version: %s", currentVersion)
	}

	return semver.Major(storedVersion) == semver.Major(currentVersion), nil
}

// GetCompatibilityError returns a user-friendly message for incompatible versions.
func GetCompatibilityError(storedVersion, currentVersion string) string {
	return fmt.Sprintf(
		"Catalog version %s is incompatible with tool version %s. Required version: %s.x.x",
		storedVersion, currentVersion, semver.Major(currentVersion),
	)
}
