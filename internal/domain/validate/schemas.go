package validate

// LoginInput is the credential payload checked before hitting the
// remote auth endpoint.
type LoginInput struct {
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=100"`
}

// PhoneInput is the structured phone number used at registration.
type PhoneInput struct {
	Country string `json:"country" validate:"required,country_code"`
	DDD     string `json:"ddd"     validate:"required,numeric,min=2,max=3"`
	Number  string `json:"number"  validate:"required,numeric,min=8,max=9"`
}

// RegisterInput is the registration payload.
type RegisterInput struct {
	Name           string     `json:"name"           validate:"required,min=2,max=100,person_name"`
	Email          string     `json:"email"          validate:"required,email,max=255"`
	Password       string     `json:"password"       validate:"required,min=6,max=100,password_strength"`
	VerifyPassword string     `json:"verifyPassword" validate:"required,eqfield=Password"`
	Phone          PhoneInput `json:"phone"`
}

// ProductInput carries the user-editable product fields.
type ProductInput struct {
	Title       string `json:"title"       validate:"required,min=3,max=100"`
	Description string `json:"description" validate:"required,min=10,max=1000"`
	Status      bool   `json:"status"`
	IDThumbnail string `json:"idThumbnail" validate:"omitempty"`
}

// UpdateProfileInput carries editable account fields.
type UpdateProfileInput struct {
	Name       string     `json:"name"  validate:"required,min=2,max=100,person_name"`
	Email      string     `json:"email" validate:"required,email,max=255"`
	Phone      PhoneInput `json:"phone"`
	Street     string     `json:"street"     validate:"omitempty,max=200"`
	Complement string     `json:"complement" validate:"omitempty,max=100"`
	District   string     `json:"district"   validate:"omitempty,max=100"`
	City       string     `json:"city"       validate:"omitempty,max=100"`
	State      string     `json:"state"      validate:"omitempty,max=50"`
}

// ChangePasswordInput carries a password rotation request.
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword"     validate:"required,min=6,max=100,password_strength,nefield=CurrentPassword"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=NewPassword"`
}

// SearchInput constrains catalog search parameters.
type SearchInput struct {
	Query    string `json:"query"    form:"query"    validate:"required,max=100"`
	Category string `json:"category" form:"category" validate:"omitempty"`
	Status   string `json:"status"   form:"status"   validate:"omitempty,oneof=all active inactive"`
}

// BulkDeleteInput identifies the products of a bulk removal.
type BulkDeleteInput struct {
	IDs []string `json:"ids" validate:"required,min=1,max=50,dive,uuid"`
}

// BulkStatusInput flips the active flag on a set of products.
type BulkStatusInput struct {
	IDs    []string `json:"ids"    validate:"required,min=1,max=50,dive,uuid"`
	Status bool     `json:"status"`
}
