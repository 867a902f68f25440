package dto

type CreateTestimonialRequest struct {
	TestimonialAuthorName string  `json:"testimonial_author_name" validate:"required,min=2,max=100"`
	TestimonialAuthorRole *string `json:"testimonial_author_role" validate:"omitempty,max=50"`
	TestimonialMessage    string  `json:"testimonial_message" validate:"required,min=10"`
}

type SetPublishRequest struct {
	TestimonialIsPublished *bool `json:"testimonial_is_published" validate:"required"`
}
