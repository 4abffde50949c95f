package dto

type RegisterRequestDTO struct {
	FirstName string `json:"first_name" validate:"required,min=1,max=50"`
	LastName  string `json:"last_name" validate:"required,min=1,max=50"`
	PIN       string `json:"pin" validate:"required,len=4"`
}

type RegisterResponseDTO struct {
	UserID  int    `json:"user_id" example:"12345"`
	Message string `json:"message"`
}

type LoginRequestDTO struct {
	UserID int    `json:"user_id" example:"12345"`
	PIN    string `json:"pin" validate:"required,len=4"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}
