package dto

type CreateAnnouncementRequest struct {
	AnnouncementTitle       string `json:"announcement_title" validate:"required,min=3,max=200"`
	AnnouncementContent     string `json:"announcement_content" validate:"required"`
	AnnouncementIsPublished bool   `json:"announcement_is_published"`
}

type UpdateAnnouncementRequest struct {
	AnnouncementTitle       *string `json:"announcement_title" validate:"omitempty,min=3,max=200"`
	AnnouncementContent     *string `json:"announcement_content" validate:"omitempty"`
	AnnouncementIsPublished *bool   `json:"announcement_is_published"`
}
