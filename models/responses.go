package models

// Greeting is the body returned by the root endpoint.
type Greeting struct {
	Message string `json:"message"`
}

// SquareArea is the body returned by the square endpoint. Field names keep
// the capitalised keys existing clients already parse.
type SquareArea struct {
	Shape string `json:"Shape"`
	Area  int64  `json:"Area"`
}

// EchoArgs holds the optional query arguments of the echo endpoint.
// A nil field means the argument was not supplied and is encoded as null.
type EchoArgs struct {
	Arg1 *string `json:"arg1"`
	Arg2 *string `json:"arg2"`
}

// RegisterResponse is returned after a successful registration.
type RegisterResponse struct {
	Message  string `json:"message"`
	Username string `json:"username"`
}

// SensitiveResponse is returned by the protected endpoint once the request
// passed the authentication gate.
type SensitiveResponse struct {
	Message  string `json:"message"`
	Username string `json:"username"`
}

// ErrorResponse is the JSON body of every failed request.
//
// Field names the offending input for validation failures and is omitted
// otherwise.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}
