package models

// UserProfile is keyed by the identity provider's subject id (the
// caller falls back to the email address when no id is supplied).
// Profiles are upserted on sign-in and profile edits, never deleted.
type UserProfile struct {
	ID       string  `json:"id" gorm:"primaryKey"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone"`
	PhotoURL *string `json:"photo_url"`
	Location *string `json:"location"`
	Pincode  *string `json:"pincode"`
}

func (UserProfile) TableName() string {
	return "users"
}
