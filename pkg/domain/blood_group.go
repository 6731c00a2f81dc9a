package domain

import (
	"slices"

	dErrors "bloodnet/pkg/domain-errors"
)

// BloodGroup is one of the eight ABO/Rh codes.
type BloodGroup string

const (
	BloodGroupAPos  BloodGroup = "A+"
	BloodGroupANeg  BloodGroup = "A-"
	BloodGroupBPos  BloodGroup = "B+"
	BloodGroupBNeg  BloodGroup = "B-"
	BloodGroupOPos  BloodGroup = "O+"
	BloodGroupONeg  BloodGroup = "O-"
	BloodGroupABPos BloodGroup = "AB+"
	BloodGroupABNeg BloodGroup = "AB-"
)

var bloodGroups = []BloodGroup{
	BloodGroupAPos, BloodGroupANeg,
	BloodGroupBPos, BloodGroupBNeg,
	BloodGroupOPos, BloodGroupONeg,
	BloodGroupABPos, BloodGroupABNeg,
}

// BloodGroups returns the enumerated groups in declared order.
func BloodGroups() []BloodGroup {
	return slices.Clone(bloodGroups)
}

// ParseBloodGroup constructs a BloodGroup from external input.
//
// Errors: returns CodeInvalidInput when the value is empty or not one of the
// eight codes.
func ParseBloodGroup(s string) (BloodGroup, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "blood group cannot be empty")
	}
	g := BloodGroup(s)
	if !g.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "unknown blood group")
	}
	return g, nil
}

func (g BloodGroup) IsValid() bool {
	return slices.Contains(bloodGroups, g)
}

func (g BloodGroup) String() string {
	return string(g)
}
