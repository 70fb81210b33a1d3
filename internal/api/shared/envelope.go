package shared

// ResponseType classifies an envelope as a success or an error.
type ResponseType string

const (
	// ResponseSuccess marks a request that completed as intended.
	ResponseSuccess ResponseType = "success"
	// ResponseError marks a request that failed. Error envelopes never carry data.
	ResponseError ResponseType = "error"
)

// ResponseMessage is the body of every API response.
// Data is omitted from the JSON output when nil.
type ResponseMessage[T any] struct {
	Type    ResponseType `json:"type"`
	Message string       `json:"message"`
	Data    *T           `json:"data,omitempty"`
}

// NewResponse builds an envelope. The payload is dropped for error envelopes.
func NewResponse[T any](responseType ResponseType, message string, data *T) ResponseMessage[T] {
	if responseType == ResponseError {
		data = nil
	}
	return ResponseMessage[T]{
		Type:    responseType,
		Message: message,
		Data:    data,
	}
}

// Success builds a success envelope carrying data.
func Success[T any](message string, data T) ResponseMessage[T] {
	return NewResponse(ResponseSuccess, message, &data)
}

// SuccessMessage builds a success envelope without data.
func SuccessMessage(message string) ResponseMessage[struct{}] {
	return NewResponse[struct{}](ResponseSuccess, message, nil)
}

// Failure builds an error envelope.
func Failure(message string) ResponseMessage[struct{}] {
	return NewResponse[struct{}](ResponseError, message, nil)
}
