package dto

type CreateProgramRequest struct {
	ProgramName        string  `json:"program_name" validate:"required,min=3,max=150"`
	ProgramDescription string  `json:"program_description" validate:"required"`
	ProgramSchedule    *string `json:"program_schedule" validate:"omitempty,max=200"`
}

type UpdateProgramRequest struct {
	ProgramName        *string `json:"program_name" validate:"omitempty,min=3,max=150"`
	ProgramDescription *string `json:"program_description" validate:"omitempty"`
	ProgramSchedule    *string `json:"program_schedule" validate:"omitempty,max=200"`
	ProgramIsActive    *bool   `json:"program_is_active"`
}
