package user

// User represents a user record in the directory.
type User struct {
	// ID is the authored numeric identifier, unique within a dataset.
	ID int64 `json:"id" validate:"gt=0"`
	// Name is the display name.
	Name string `json:"name" validate:"required"`
	// About is a free-text description.
	About string `json:"about"`
	// Image is a root-relative URL pointing into the image directory.
	Image string `json:"image" validate:"required,startswith=/"`
	// RegistrationNumber is an opaque identifier compared by exact equality.
	RegistrationNumber string `json:"registrationNumber" validate:"required"`
}
