package validators

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-learn-tracker/models"
)

// LearningValidator validates topic and session form input.
//
// The clock is injectable so the target-date rule can be tested against a
// fixed instant; production code passes time.Now.
type LearningValidator struct {
	now func() time.Time
}

func NewLearningValidator() Validator {
	return &LearningValidator{now: time.Now}
}

func (v *LearningValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.AddTopicInput:
		return v.validateAddTopicInput(ctx, value, fields...)
	case *models.AddTopicInput:
		return v.validateAddTopicInput(ctx, *value, fields...)

	case models.UpdateTopicInput:
		return v.validateUpdateTopicInput(ctx, value, fields...)
	case *models.UpdateTopicInput:
		return v.validateUpdateTopicInput(ctx, *value, fields...)

	case models.LogSessionInput:
		return v.validateLogSessionInput(ctx, value, fields...)
	case *models.LogSessionInput:
		return v.validateLogSessionInput(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func isValidCategory(category models.Category) bool {
	for _, c := range models.Categories() {
		if category == c {
			return true
		}
	}
	return false
}

func isValidPriority(priority models.Priority) bool {
	switch priority {
	case models.PriorityLow, models.PriorityMedium, models.PriorityHigh:
		return true
	}
	return false
}

func (v *LearningValidator) validateAddTopicInput(_ context.Context, input models.AddTopicInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldCategory, FieldPriority, FieldTargetDate, FieldGoalHours}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(input.Name) == "" {
				return ErrEmptyName
			}
		case FieldCategory:
			if !isValidCategory(input.Category) {
				return ErrInvalidCategory
			}
		case FieldPriority:
			// optional; defaults to Medium at creation
			if input.Priority != "" && !isValidPriority(input.Priority) {
				return ErrInvalidPriority
			}
		case FieldTargetDate:
			if input.TargetDate != nil && input.TargetDate.Before(v.now()) {
				return ErrTargetDateInPast
			}
		case FieldGoalHours:
			if input.GoalHours <= 0 {
				return ErrInvalidGoalHours
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *LearningValidator) validateUpdateTopicInput(_ context.Context, input models.UpdateTopicInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTopicID, FieldName, FieldCategory, FieldPriority, FieldGoalHours}
	}

	for _, f := range fields {
		switch f {
		case FieldTopicID:
			if input.TopicID == "" {
				return ErrEmptyTopicID
			}
		case FieldName:
			if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
				return ErrEmptyName
			}
		case FieldCategory:
			if input.Category != nil && !isValidCategory(*input.Category) {
				return ErrInvalidCategory
			}
		case FieldPriority:
			if input.Priority != nil && !isValidPriority(*input.Priority) {
				return ErrInvalidPriority
			}
		case FieldGoalHours:
			if input.GoalHours != nil && *input.GoalHours <= 0 {
				return ErrInvalidGoalHours
			}
		default:
			return ErrUnknownField
		}
	}

	if input.Name == nil && input.Category == nil && input.Priority == nil &&
		input.TargetDate == nil && input.GoalHours == nil {
		return ErrNoFieldsToUpdate
	}

	return nil
}

func (v *LearningValidator) validateLogSessionInput(_ context.Context, input models.LogSessionInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTopicID, FieldDuration, FieldDate}
	}

	for _, f := range fields {
		switch f {
		case FieldTopicID:
			if input.TopicID == "" {
				return ErrEmptyTopicID
			}
		case FieldDuration:
			if input.Duration < 1 {
				return ErrInvalidDuration
			}
		case FieldDate:
			if input.Date != "" {
				if _, err := time.Parse(time.DateOnly, input.Date); err != nil {
					return ErrInvalidDate
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
