package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Category is a member's age bracket.
type Category int

const (
	CategoryChild Category = iota
	CategoryYouth
	CategoryAdult
)

// Role is an employee's position at the club.
type Role int

const (
	RoleCoach Role = iota
	RoleAdministrative
	RoleMaintenance
)

// FacilityType is the kind of physical resource a facility is.
type FacilityType int

const (
	FacilityCourt FacilityType = iota
	FacilityPool
	FacilityGym
	FacilityMultiPurpose
)

var (
	categoryLabels = labelSet{"Child", "Youth", "Adult"}
	roleLabels     = labelSet{"Coach", "Administrative", "Maintenance"}
	facilityLabels = labelSet{"Court/Pitch", "Pool", "Gym", "Multi-purpose Room"}
)

// CategoryLabels returns the labels in index order (used for prompts).
func CategoryLabels() []string { return categoryLabels.clone() }

// RoleLabels returns the labels in index order (used for prompts).
func RoleLabels() []string { return roleLabels.clone() }

// FacilityTypeLabels returns the labels in index order (used for prompts).
func FacilityTypeLabels() []string { return facilityLabels.clone() }

func (c Category) String() string     { return categoryLabels.label(int(c)) }
func (r Role) String() string         { return roleLabels.label(int(r)) }
func (f FacilityType) String() string { return facilityLabels.label(int(f)) }

// ParseCategory accepts either the displayed index or the label (case-insensitive).
func ParseCategory(s string) (Category, error) {
	i, err := categoryLabels.parse("category", s, true)
	return Category(i), err
}

// ParseRole accepts either the displayed index or the label (case-insensitive).
func ParseRole(s string) (Role, error) {
	i, err := roleLabels.parse("role", s, true)
	return Role(i), err
}

// ParseFacilityType accepts either the displayed index or the label (case-insensitive).
func ParseFacilityType(s string) (FacilityType, error) {
	i, err := facilityLabels.parse("facility type", s, true)
	return FacilityType(i), err
}

// CategoryFromLabel is the strict form used for persisted documents: labels only.
func CategoryFromLabel(s string) (Category, error) {
	i, err := categoryLabels.parse("category", s, false)
	return Category(i), err
}

// RoleFromLabel is the strict form used for persisted documents: labels only.
func RoleFromLabel(s string) (Role, error) {
	i, err := roleLabels.parse("role", s, false)
	return Role(i), err
}

// FacilityTypeFromLabel is the strict form used for persisted documents: labels only.
func FacilityTypeFromLabel(s string) (FacilityType, error) {
	i, err := facilityLabels.parse("facility type", s, false)
	return FacilityType(i), err
}

type labelSet []string

func (l labelSet) label(i int) string {
	if i < 0 || i >= len(l) {
		return fmt.Sprintf("Unknown(%d)", i)
	}
	return l[i]
}

func (l labelSet) clone() []string {
	out := make([]string, len(l))
	copy(out, l)
	return out
}

func (l labelSet) parse(what, s string, allowIndex bool) (int, error) {
	in := strings.TrimSpace(s)
	if allowIndex {
		if n, err := strconv.Atoi(in); err == nil {
			if n < 0 || n >= len(l) {
				return 0, &OpError{
					Op:   "domain.parse_enum",
					Kind: KindInvalidInput,
					Err:  fmt.Errorf("%s %d not in [0,%d): %w", what, n, len(l), ErrInvalidInput),
				}
			}
			return n, nil
		}
	}
	for i, lbl := range l {
		if strings.EqualFold(lbl, in) {
			return i, nil
		}
	}
	return 0, &OpError{
		Op:   "domain.parse_enum",
		Kind: KindInvalidInput,
		Err:  fmt.Errorf("unknown %s %q: %w", what, s, ErrInvalidInput),
	}
}
