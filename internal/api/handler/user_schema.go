package handler

// updateProfileRequest carries a partial profile update. Empty fields keep
// their stored value.
type updateProfileRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"    validate:"omitempty,email"`
	Mobile   string `json:"mobile"`
	Address  string `json:"address"`
	Password string `json:"password" validate:"omitempty,min=6"`
}

type updateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin customer manager qa"`
}

type messageResponse struct {
	Message string `json:"message"`
}
