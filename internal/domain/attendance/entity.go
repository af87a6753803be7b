package attendance

import "time"

type Status string

const (
	StatusPresent Status = "PRESENT"
	StatusAbsent  Status = "ABSENT"
)

type LeaveType string

const (
	LeaveNone         LeaveType = "NONE"
	LeaveUnauthorized LeaveType = "KHONG_PHEP"
	LeaveAuthorized   LeaveType = "CO_PHEP"
	LeaveSick         LeaveType = "OM"
	LeaveAnnual       LeaveType = "PHEP_NAM"
	LeaveMaternity    LeaveType = "THAI_SAN"
)

// Attendance is one day of one employee's timesheet. Date stays a plain
// YYYY-MM-DD string: monthly views select records by YYYY-MM prefix and the
// zero-padded format sorts chronologically.
type Attendance struct {
	ID         string
	EmployeeID string
	Date       string
	Status     Status
	LeaveType  LeaveType
	CheckIn    *string
	CheckOut   *string
	Note       *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
