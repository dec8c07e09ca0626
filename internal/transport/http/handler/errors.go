package handler

const (
	errNoteNotFound       = "Note not found"
	errUserExists         = "User already exists"
	errInvalidCredentials = "Invalid credentials"
	errAllFieldsRequired  = "All fields are required"
	errEmailPassRequired  = "Email and password required"
)
