package entity

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

type User struct {
	ID          string   `json:"id"`
	Email       string   `json:"email"`
	Password    string   `json:"password"` // stored and shown in plaintext by design
	DisplayName string   `json:"displayName"`
	Bio         string   `json:"bio"`
	ProfilePic  string   `json:"profilePic"`
	Role        UserRole `json:"role"`
	CreatedAt   int64    `json:"createdAt"`
	Following   []string `json:"following"` // user ids
	Followers   []string `json:"followers"` // user ids
}

// IsFollowing reports whether the user already follows targetID.
func (u *User) IsFollowing(targetID string) bool {
	for _, id := range u.Following {
		if id == targetID {
			return true
		}
	}
	return false
}
