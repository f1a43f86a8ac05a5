package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Activity is a scheduled offering members can enroll in.
// ID is the stable key facilities use to reference it.
type Activity struct {
	ID       string
	Name     string
	Days     string
	Schedule string
	Enrolled []Member
}

// NewActivityID returns a fresh random activity key.
func NewActivityID() string {
	return uuid.NewString()
}

// Enroll appends m; enrolling the same member twice is allowed.
func (a *Activity) Enroll(m Member) {
	a.Enrolled = append(a.Enrolled, m)
}

func (a *Activity) EnrolledCount() int {
	return len(a.Enrolled)
}

func (a *Activity) String() string {
	return fmt.Sprintf("%s - %s - %s - Inscriptos: %d", a.Name, a.Days, a.Schedule, len(a.Enrolled))
}

// Facility is a physical resource optionally tied to one activity.
// Activity is a shared reference owned by the Club; ActivityID survives
// even when the reference cannot be resolved after a load.
type Facility struct {
	Name       string
	Type       FacilityType
	ActivityID string
	Activity   *Activity
}

// ActivityName returns the assigned activity's name, or "" when none is linked.
func (f Facility) ActivityName() string {
	if f.Activity == nil {
		return ""
	}
	return f.Activity.Name
}

func (f Facility) String() string {
	return fmt.Sprintf("%s - %s - Actividad: %s", f.Name, f.Type, f.ActivityName())
}
