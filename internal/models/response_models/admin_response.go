package response_models

// AdminUserResponse is what the dashboard sees; the password hash never
// leaves the service layer.
type AdminUserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}
