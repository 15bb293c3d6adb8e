package middleware

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/studyconnect/backend/internal/app/models"
)

func validContentType(fl validator.FieldLevel) bool {
	switch models.ContentType(fl.Field().String()) {
	case models.ContentTypeLectureNotes, models.ContentTypeAssignment,
		models.ContentTypePastPaper, models.ContentTypeSummary,
		models.ContentTypeLabReport:
		return true
	}
	return false
}

func validTutorMode(fl validator.FieldLevel) bool {
	switch models.TutorMode(fl.Field().String()) {
	case models.TutorModeOnline, models.TutorModeInPerson, models.TutorModeHybrid:
		return true
	}
	return false
}

// RegisterValidators attaches the domain enum validators to the binding
// engine. Must run before any request is bound.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("contenttype", validContentType); err != nil {
		return err
	}
	return v.RegisterValidation("tutormode", validTutorMode)
}
