package models

type UserRole string
type ApplicationStatus string
type EmploymentType string
type InternshipType string
type ExperienceLevel string

const (
	UserRoleCandidate UserRole = "candidate"
	UserRoleRecruiter UserRole = "recruiter"
	UserRoleAdmin     UserRole = "admin"

	ApplicationStatusApplied     ApplicationStatus = "applied"
	ApplicationStatusViewed      ApplicationStatus = "viewed"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
	ApplicationStatusWithdrawn   ApplicationStatus = "withdrawn"

	EmploymentTypeFullTime EmploymentType = "full_time"
	EmploymentTypePartTime EmploymentType = "part_time"
	EmploymentTypeContract EmploymentType = "contract"
	EmploymentTypeRemote   EmploymentType = "remote"
	EmploymentTypeHybrid   EmploymentType = "hybrid"

	InternshipTypeFullTime InternshipType = "full_time"
	InternshipTypePartTime InternshipType = "part_time"
	InternshipTypeRemote   InternshipType = "remote"
	InternshipTypeHybrid   InternshipType = "hybrid"

	ExperienceLevelFresher   ExperienceLevel = "fresher"
	ExperienceLevelOneYear   ExperienceLevel = "1_year"
	ExperienceLevelTwoYears  ExperienceLevel = "2_years"
	ExperienceLevelThree     ExperienceLevel = "3_years"
	ExperienceLevelFourPlus  ExperienceLevel = "4_plus"
)

// ValidApplicationStatus reports whether s is one of the fixed enum values.
func ValidApplicationStatus(s ApplicationStatus) bool {
	switch s {
	case ApplicationStatusApplied, ApplicationStatusViewed, ApplicationStatusShortlisted,
		ApplicationStatusRejected, ApplicationStatusWithdrawn:
		return true
	}
	return false
}
