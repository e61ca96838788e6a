package account

import "time"

// Phone is the structured phone number required at registration.
type Phone struct {
	Country string `json:"country"`
	DDD     string `json:"ddd"`
	Number  string `json:"number"`
}

// Avatar references an uploaded profile image.
type Avatar struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// User is the identity record returned by the remote auth service.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PlatformRole string    `json:"platformRole"`
	Status       string    `json:"status"`
	EmailStatus  string    `json:"emailStatus"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	Phone        Phone     `json:"phone"`
	Avatar       []Avatar  `json:"avatar,omitempty"`
	Street       string    `json:"street,omitempty"`
	Complement   string    `json:"complement,omitempty"`
	District     string    `json:"district,omitempty"`
	City         string    `json:"city,omitempty"`
	State        string    `json:"state,omitempty"`
}

// Session is the persisted authentication state. IsAuthenticated is
// derived from the token and kept in the serialized form so a reload
// can answer "am I signed in" without parsing the token.
type Session struct {
	User            *User  `json:"user"`
	Token           string `json:"token"`
	IsAuthenticated bool   `json:"isAuthenticated"`
}

// ActorName returns the display name used in activity records, or the
// anonymous sentinel when no user is signed in.
func (s Session) ActorName() string {
	if s.User != nil && s.User.Name != "" {
		return s.User.Name
	}
	return "unknown user"
}
