package handler

// apiResponse is the success envelope every endpoint renders.
type apiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// errorResponse is the envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

func success(message string, data any) apiResponse {
	return apiResponse{Success: true, Message: message, Data: data}
}

func fail(message string, errs ...string) errorResponse {
	return errorResponse{Success: false, Message: message, Errors: errs}
}
