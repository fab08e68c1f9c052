package dto

// Response is the uniform API envelope. Count is only present on listing
// endpoints, Data is absent on bare acknowledgements and errors.
type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Count   *int        `json:"count,omitempty"`
}

// Success builds a success envelope.
func Success(message string, data interface{}) Response {
	return Response{Status: "success", Message: message, Data: data}
}

// SuccessWithCount builds a success envelope for listings.
func SuccessWithCount(message string, data interface{}, count int) Response {
	return Response{Status: "success", Message: message, Data: data, Count: &count}
}

// Error builds an error envelope.
func Error(message string) Response {
	return Response{Status: "error", Message: message}
}
