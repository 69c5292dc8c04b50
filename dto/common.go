package dto

// ActorResponse describes who a booking belongs to, whether a registered
// user or a plain guest.
type ActorResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}
