package validators

// Field names accepted by the validators for field-scoped validation.
const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirm_password"
	FieldPhone           = "phone"
	FieldAge             = "age"
	FieldGender          = "gender"

	FieldCategory   = "category"
	FieldPriority   = "priority"
	FieldTargetDate = "target_date"
	FieldGoalHours  = "goal_hours"

	FieldTopicID  = "topic_id"
	FieldDuration = "duration"
	FieldDate     = "date"
)
