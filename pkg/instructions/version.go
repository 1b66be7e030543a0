package instructions

import (
	"strings"

	"golang.org/x/mod/semver"

	"github.com/arthur-debert/lollywiz/pkg/errors"
	"github.com/arthur-debert/lollywiz/pkg/textscan"
)

// CheckVersion finds the version declaration in lines, verifies that the
// engine can read that format and returns lines without the declaration.
// A missing, empty or malformed declaration, or one newer than
// engineVersion, is a version error.
func CheckVersion(lines []string, engineVersion string) ([]string, error) {
	out, _, err := checkVersion(lines, engineVersion)
	return out, err
}

func checkVersion(lines []string, engineVersion string) ([]string, string, error) {
	idx := textscan.FindLinePrefix(lines, VersionVariable)
	if idx == -1 {
		return nil, "", errors.Newf(errors.ErrVersion, "required variable '%s' not found", VersionVariable)
	}

	a, err := textscan.ParseAssignment(lines[idx])
	if err != nil || a.Value == "" {
		return nil, "", errors.Newf(errors.ErrVersion, "%s does not have a value", VersionVariable).
			WithDetail("line", lines[idx])
	}

	declared, ok := canonical(a.Value)
	if !ok {
		return nil, "", errors.Newf(errors.ErrVersion,
			"%s '%s' is not a semantic version (major.minor.patch)", VersionVariable, a.Value)
	}
	engine, ok := canonical(engineVersion)
	if !ok {
		return nil, "", errors.Newf(errors.ErrVersion, "engine version '%s' is not a semantic version", engineVersion)
	}
	if semver.Compare(engine, declared) < 0 {
		return nil, "", errors.Newf(errors.ErrVersion,
			"template requires format version %s, newer than the supported %s", a.Value, engineVersion).
			WithDetail("declared", a.Value).
			WithDetail("engine", engineVersion)
	}

	return textscan.RemoveRange(lines, idx, idx), a.Value, nil
}

// canonical returns v in the "vMAJOR.MINOR.PATCH[-PRE]" form semver
// compares, rejecting the shorthand forms the package would otherwise accept
func canonical(v string) (string, bool) {
	sv := "v" + v
	if !semver.IsValid(sv) {
		return "", false
	}
	if semver.Canonical(sv) != strings.SplitN(sv, "+", 2)[0] {
		return "", false
	}
	return sv, true
}
