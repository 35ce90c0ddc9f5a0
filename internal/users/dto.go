package users

import "time"

// UserResponse is the outward-facing representation of an account.
type UserResponse struct {
	Email      string    `json:"email"`
	FullName   string    `json:"fullName"`
	PictureURL string    `json:"pictureUrl,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toResponse(u User) UserResponse {
	return UserResponse{
		Email:      u.Email,
		FullName:   u.FullName,
		PictureURL: u.PictureURL,
		CreatedAt:  u.CreatedAt,
	}
}
