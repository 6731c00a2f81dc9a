package domain

import (
	"slices"

	dErrors "bloodnet/pkg/domain-errors"
)

// District is one of the fixed administrative regions used to scope a search.
// Invariant: the value must be one of the names returned by Districts.
//
// Usage: construct via ParseDistrict at trust boundaries. The filter engine
// compares raw strings and does not require parsed values.
type District string

// districts is the declared order; listings and empty searches preserve it.
var districts = []District{
	"Ariyalur", "Chengalpattu", "Chennai", "Coimbatore", "Cuddalore", "Dharmapuri",
	"Dindigul", "Erode", "Kallakurichi", "Kanchipuram", "Karur", "Krishnagiri",
	"Madurai", "Mayiladuthurai", "Nagapattinam", "Namakkal", "Nilgiris", "Perambalur",
	"Pudukkottai", "Ramanathapuram", "Ranipet", "Salem", "Sivaganga", "Tenkasi",
	"Thanjavur", "Theni", "Thoothukudi", "Tiruchirappalli", "Tirunelveli", "Tirupattur",
	"Tiruppur", "Tiruvallur", "Tiruvannamalai", "Tiruvarur", "Vellore", "Viluppuram",
	"Virudhunagar", "Kanyakumari",
}

var validDistricts = func() map[District]bool {
	m := make(map[District]bool, len(districts))
	for _, d := range districts {
		m[d] = true
	}
	return m
}()

// Districts returns the enumerated districts in declared order.
// The returned slice is a copy.
func Districts() []District {
	return slices.Clone(districts)
}

// ParseDistrict constructs a District from external input.
//
// Errors: returns CodeInvalidInput when the value is empty or not enumerated.
// Matching is exact and case-sensitive.
func ParseDistrict(s string) (District, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "district cannot be empty")
	}
	d := District(s)
	if !d.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "unknown district")
	}
	return d, nil
}

func (d District) IsValid() bool {
	return validDistricts[d]
}

func (d District) String() string {
	return string(d)
}
