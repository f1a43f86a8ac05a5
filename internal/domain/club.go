package domain

// Club is the root aggregate. It owns every collection and is the only unit
// of save/load. Entities are appended, never edited or removed.
type Club struct {
	members    []Member
	employees  []Employee
	activities []*Activity
	facilities []Facility
}

// Snapshot is the flat, persistable view of a Club. Facilities carry
// ActivityID; Activity pointers are ignored by RestoreClub.
type Snapshot struct {
	Members    []Member
	Employees  []Employee
	Activities []*Activity
	Facilities []Facility
}

// DanglingRef names a facility whose activity could not be re-linked.
type DanglingRef struct {
	Facility   string
	ActivityID string
}

func NewClub() *Club {
	return &Club{}
}

// RestoreClub builds a Club from a snapshot and re-links facilities to
// activities by ID. Activities missing an ID get a fresh one.
func RestoreClub(s Snapshot) (*Club, []DanglingRef) {
	c := &Club{
		members:    append([]Member(nil), s.Members...),
		employees:  append([]Employee(nil), s.Employees...),
		activities: make([]*Activity, 0, len(s.Activities)),
		facilities: make([]Facility, 0, len(s.Facilities)),
	}
	for _, a := range s.Activities {
		if a == nil {
			continue
		}
		if a.ID == "" {
			a.ID = NewActivityID()
		}
		c.activities = append(c.activities, a)
	}

	var dangling []DanglingRef
	for _, f := range s.Facilities {
		f.Activity = nil
		if f.ActivityID != "" {
			if a, ok := c.ActivityByID(f.ActivityID); ok {
				f.Activity = a
			} else {
				dangling = append(dangling, DanglingRef{Facility: f.Name, ActivityID: f.ActivityID})
			}
		}
		c.facilities = append(c.facilities, f)
	}
	return c, dangling
}

// Snapshot returns copies of the collection slices. Activities are shared.
func (c *Club) Snapshot() Snapshot {
	return Snapshot{
		Members:    c.Members(),
		Employees:  c.Employees(),
		Activities: c.Activities(),
		Facilities: c.Facilities(),
	}
}

func (c *Club) AddMember(m Member) {
	c.members = append(c.members, m)
}

func (c *Club) AddEmployee(e Employee) {
	c.employees = append(c.employees, e)
}

// AddActivity stores a and returns the owned pointer.
func (c *Club) AddActivity(a Activity) *Activity {
	if a.ID == "" {
		a.ID = NewActivityID()
	}
	p := &a
	c.activities = append(c.activities, p)
	return p
}

// AddFacility links the new facility to the activity at activityIndex.
// An out-of-range index leaves the facilities untouched.
func (c *Club) AddFacility(name string, typ FacilityType, activityIndex int) (Facility, error) {
	if activityIndex < 0 || activityIndex >= len(c.activities) {
		return Facility{}, outOfRange("club.add_facility", "activity", activityIndex, len(c.activities))
	}
	a := c.activities[activityIndex]
	f := Facility{
		Name:       name,
		Type:       typ,
		ActivityID: a.ID,
		Activity:   a,
	}
	c.facilities = append(c.facilities, f)
	return f, nil
}

// Enroll appends the member at memberIndex to the activity at activityIndex.
func (c *Club) Enroll(memberIndex, activityIndex int) error {
	if memberIndex < 0 || memberIndex >= len(c.members) {
		return outOfRange("club.enroll", "member", memberIndex, len(c.members))
	}
	if activityIndex < 0 || activityIndex >= len(c.activities) {
		return outOfRange("club.enroll", "activity", activityIndex, len(c.activities))
	}
	c.activities[activityIndex].Enroll(c.members[memberIndex])
	return nil
}

func (c *Club) ActivityByID(id string) (*Activity, bool) {
	for _, a := range c.activities {
		if a.ID == id {
			return a, true
		}
	}
	return nil, false
}

func (c *Club) Members() []Member {
	return append([]Member(nil), c.members...)
}

func (c *Club) Employees() []Employee {
	return append([]Employee(nil), c.employees...)
}

// Activities returns the owned pointers; callers share them with the Club.
func (c *Club) Activities() []*Activity {
	return append([]*Activity(nil), c.activities...)
}

func (c *Club) Facilities() []Facility {
	return append([]Facility(nil), c.facilities...)
}

// MonthlyIncome is the sum of every member's fee.
func (c *Club) MonthlyIncome() float64 {
	return TotalPay(c.members)
}

// Payroll is the sum of every employee's salary.
func (c *Club) Payroll() float64 {
	return TotalPay(c.employees)
}
