package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tartampluch/go-donor/internal/config"
)

// BloodGroup is an ABO/Rh token as written in the donor sheet.
// The zero value, BloodGroupAny, means "no blood group constraint".
type BloodGroup string

const (
	BloodGroupAny BloodGroup = ""
	APositive     BloodGroup = "A+"
	ANegative     BloodGroup = "A-"
	BPositive     BloodGroup = "B+"
	BNegative     BloodGroup = "B-"
	ABPositive    BloodGroup = "AB+"
	ABNegative    BloodGroup = "AB-"
	OPositive     BloodGroup = "O+"
	ONegative     BloodGroup = "O-"
)

// BloodGroups lists the selectable groups in display order.
var BloodGroups = []BloodGroup{
	APositive, ANegative,
	BPositive, BNegative,
	ABPositive, ABNegative,
	OPositive, ONegative,
}

// ErrUnknownBloodGroup is returned by ParseBloodGroup for tokens outside BloodGroups.
var ErrUnknownBloodGroup = errors.New(config.ErrUnknownBloodGroup)

// ParseBloodGroup accepts one of the eight tokens, ignoring case and
// surrounding spaces. An empty string yields BloodGroupAny.
func ParseBloodGroup(s string) (BloodGroup, error) {
	token := strings.ToUpper(strings.TrimSpace(s))
	if token == "" {
		return BloodGroupAny, nil
	}
	for _, g := range BloodGroups {
		if string(g) == token {
			return g, nil
		}
	}
	return BloodGroupAny, fmt.Errorf("%w: %q", ErrUnknownBloodGroup, s)
}

// IsSet reports whether the group constrains a search.
func (g BloodGroup) IsSet() bool {
	return g != BloodGroupAny
}

func (g BloodGroup) String() string {
	return string(g)
}
