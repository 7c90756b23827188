package ocr

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Revision is a VNRecognizeTextRequest algorithm revision.
type Revision int

const (
	Revision1 Revision = iota + 1
	Revision2
	Revision3
)

func (r Revision) String() string {
	return fmt.Sprintf("VNRecognizeTextRequest Revision %d", int(r))
}

// Newest first; the first satisfied constraint wins.
var revisionConstraints = []struct {
	constraint *semver.Constraints
	revision   Revision
}{
	{mustConstraint(">= 13"), Revision3},
	{mustConstraint(">= 11"), Revision2},
}

func mustConstraint(c string) *semver.Constraints {
	constraints, err := semver.NewConstraint(c)
	if err != nil {
		panic(fmt.Sprintf("ocr: invalid constraint %q: %v", c, err))
	}
	return constraints
}

// SelectRevision returns the highest revision supported by the given macOS
// version. A nil version selects Revision1.
func SelectRevision(osVersion *semver.Version) Revision {
	if osVersion == nil {
		return Revision1
	}

	for _, rc := range revisionConstraints {
		if rc.constraint.Check(osVersion) {
			return rc.revision
		}
	}

	return Revision1
}

// ParseOSVersion parses a product version such as "14.2.1" or "13.0".
func ParseOSVersion(s string) (*semver.Version, error) {
	v, err := semver.NewVersion(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("parse os version %q: %w", s, err)
	}
	return v, nil
}
