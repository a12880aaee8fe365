package domain

import "time"

// CalculateGraduationYear returns the calendar year in which a program finishes.
func CalculateGraduationYear(enrollmentYear, durationYears int) int {
	return enrollmentYear + durationYears
}

// IsGraduatedAt reports whether a student has graduated as of asOf.
// Only the calendar year is compared; graduation month is not modelled.
func IsGraduatedAt(enrollmentYear, durationYears int, asOf time.Time) bool {
	return asOf.Year() >= CalculateGraduationYear(enrollmentYear, durationYears)
}

// RoleStatus is the outcome of resolving enrollment data against a date.
type RoleStatus struct {
	Role           Role       `json:"role"`
	Status         UserStatus `json:"status"`
	GraduationYear int        `json:"graduation_year"`
}

// ResolveRoleAndStatus derives role and status from enrollment data.
// It only ever yields STUDENT/ENROLLED or ALUMNI/GRADUATED.
func ResolveRoleAndStatus(enrollmentYear, durationYears int, asOf time.Time) RoleStatus {
	graduationYear := CalculateGraduationYear(enrollmentYear, durationYears)
	if IsGraduatedAt(enrollmentYear, durationYears, asOf) {
		return RoleStatus{Role: RoleAlumni, Status: StatusGraduated, GraduationYear: graduationYear}
	}
	return RoleStatus{Role: RoleStudent, Status: StatusEnrolled, GraduationYear: graduationYear}
}
