package models

// UpsertUserRequest is the JSON body of POST /add-user.
type UpsertUserRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	PhotoURL string `json:"photo_url"`
	Location string `json:"location"`
	Pincode  string `json:"pincode"`
}

// ToUser applies the defaulting rules: the email stands in for a
// missing id, the name defaults to empty and the remaining optional
// fields are stored as NULL when not supplied.
func (r *UpsertUserRequest) ToUser() *UserProfile {
	id := r.ID
	if id == "" {
		id = r.Email
	}

	return &UserProfile{
		ID:       id,
		Name:     r.Name,
		Email:    r.Email,
		Phone:    nullableString(r.Phone),
		PhotoURL: nullableString(r.PhotoURL),
		Location: nullableString(r.Location),
		Pincode:  nullableString(r.Pincode),
	}
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
