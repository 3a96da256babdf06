package view

type Response[T any] struct {
	Data    T           `json:"data"`
	Error   *ErrorBody  `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
	Request interface{} `json:"request,omitempty"`
}

type ErrorBody struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the swagger shape of a failed call.
type ErrorResponse struct {
	Error   ErrorBody `json:"error"`
	Message string    `json:"message"`
}

// CreateResponse wraps data or an error in the common envelope. req is echoed back on failures.
func CreateResponse[T any](data T, err error, req interface{}, message string) Response[T] {
	resp := Response[T]{
		Data:    data,
		Message: message,
	}
	if err != nil {
		resp.Error = &ErrorBody{Message: err.Error()}
		resp.Request = req
	}
	return resp
}

// CreateErrorResponse is CreateResponse with a machine readable error code.
func CreateErrorResponse(code string, err error, req interface{}, message string) Response[any] {
	resp := CreateResponse[any](nil, err, req, message)
	if resp.Error != nil {
		resp.Error.Code = code
	}
	return resp
}
