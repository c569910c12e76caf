package validator

import (
	"log"

	"github.com/go-playground/validator/v10"

	"tconnect_backend/internal/models"
)

// registerCustomRules installs the enum rules used by the DTO tags.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a startup defect.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-application-status", validateApplicationStatus)
	mustRegister("is-employment-type", validateEmploymentType)
	mustRegister("is-internship-type", validateInternshipType)
	mustRegister("is-experience-level", validateExperienceLevel)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // empty values are left to 'required'
	}
	switch models.UserRole(value) {
	case models.UserRoleCandidate, models.UserRoleRecruiter, models.UserRoleAdmin:
		return true
	default:
		return false
	}
}

func validateApplicationStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ValidApplicationStatus(models.ApplicationStatus(value))
}

func validateEmploymentType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.EmploymentType(value) {
	case models.EmploymentTypeFullTime, models.EmploymentTypePartTime, models.EmploymentTypeContract,
		models.EmploymentTypeRemote, models.EmploymentTypeHybrid:
		return true
	default:
		return false
	}
}

func validateInternshipType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.InternshipType(value) {
	case models.InternshipTypeFullTime, models.InternshipTypePartTime,
		models.InternshipTypeRemote, models.InternshipTypeHybrid:
		return true
	default:
		return false
	}
}

func validateExperienceLevel(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.ExperienceLevel(value) {
	case models.ExperienceLevelFresher, models.ExperienceLevelOneYear, models.ExperienceLevelTwoYears,
		models.ExperienceLevelThree, models.ExperienceLevelFourPlus:
		return true
	default:
		return false
	}
}
