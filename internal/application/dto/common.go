package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PrecondicionResponse cuerpo de error 428 del punto de equilibrio. El campo
// action le dice al cliente que abra el flujo de generación, no un toast.
type PrecondicionResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
	Action  string `json:"action"`
}
