package serverutils

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func ErrorResponse(err string, message string) ErrorBody {
	return ErrorBody{Error: err, Message: message}
}
