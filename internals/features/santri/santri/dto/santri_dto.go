package dto

type CreateSantriRequest struct {
	SantriWaliUserID string  `json:"santri_wali_user_id" validate:"required,uuid"`
	SantriName       string  `json:"santri_name" validate:"required,min=2,max=100"`
	SantriNIS        *string `json:"santri_nis" validate:"omitempty,max=30"`
	SantriClass      *string `json:"santri_class" validate:"omitempty,max=50"`
	SantriGender     *string `json:"santri_gender" validate:"omitempty,oneof=male female"`
	SantriBirthDate  *string `json:"santri_birth_date" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateSantriRequest struct {
	SantriWaliUserID *string `json:"santri_wali_user_id" validate:"omitempty,uuid"`
	SantriName       *string `json:"santri_name" validate:"omitempty,min=2,max=100"`
	SantriNIS        *string `json:"santri_nis" validate:"omitempty,max=30"`
	SantriClass      *string `json:"santri_class" validate:"omitempty,max=50"`
	SantriGender     *string `json:"santri_gender" validate:"omitempty,oneof=male female"`
	SantriBirthDate  *string `json:"santri_birth_date" validate:"omitempty,datetime=2006-01-02"`
	SantriIsActive   *bool   `json:"santri_is_active"`
}
