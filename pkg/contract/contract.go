// Package contract holds the wire types shared by the user API server and
// its typed client. Both sides encode and decode exactly these shapes.
package contract

// Version is advertised by the server on /health and sent by the client
// in HeaderVersion. Bump it on any incompatible change to the types below.
const Version = "v1"

const HeaderVersion = "X-Contract-Version"

type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type CreateUserInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UpdateUserInput is a partial update: nil fields are left unchanged.
type UpdateUserInput struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

type DeleteResult struct {
	Success bool `json:"success"`
}

type FieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorBody is returned with every non-2xx response.
type ErrorBody struct {
	Error  string       `json:"error"`
	Issues []FieldIssue `json:"issues,omitempty"`
}

// String is a helper for building UpdateUserInput literals.
func String(s string) *string { return &s }
