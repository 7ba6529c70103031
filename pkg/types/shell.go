package types

import (
	"fmt"
	"strings"
)

// Target selects which category of startup file is managed
type Target string

const (
	// TargetProfile selects login shell files (.profile, .bash_profile, .zprofile)
	TargetProfile Target = "profile"
	// TargetRC selects interactive shell files (.bashrc, .zshrc)
	TargetRC Target = "rc"
)

// String returns the string representation of the target
func (t Target) String() string {
	return string(t)
}

// ParseTarget validates a target name. Empty means profile.
func ParseTarget(s string) (Target, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "profile":
		return TargetProfile, nil
	case "rc":
		return TargetRC, nil
	default:
		return "", fmt.Errorf("unknown target %q (valid: profile, rc)", s)
	}
}

// State is the desired state of a path entry in a startup file
type State string

const (
	// StatePresent ensures the snippet is in the file
	StatePresent State = "present"
	// StateAbsent ensures the snippet is not in the file
	StateAbsent State = "absent"
)

// String returns the string representation of the state
func (s State) String() string {
	return string(s)
}

// ParseState validates a state name. Empty means present.
func ParseState(s string) (State, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "present":
		return StatePresent, nil
	case "absent":
		return StateAbsent, nil
	default:
		return "", fmt.Errorf("unknown state %q (valid: present, absent)", s)
	}
}
