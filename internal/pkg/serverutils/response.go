package serverutils

type Response[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    T      `json:"data,omitempty"`
}

// ErrResponse is the flat failure envelope the dashboard consumes: the
// error field is always a plain message string, with the status code and
// the retryable hint as siblings.
type ErrResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	Code      int    `json:"code,omitempty"`
	Retryable bool   `json:"retryable,omitempty"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Success: true,
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(code int, message string) ErrResponse {
	return ErrResponse{
		Success: false,
		Error:   message,
		Code:    code,
	}
}

func RetryableErrorResponse(code int, message string) ErrResponse {
	return ErrResponse{
		Success:   false,
		Error:     message,
		Code:      code,
		Retryable: true,
	}
}
