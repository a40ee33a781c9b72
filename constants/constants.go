package constants

// Success messages
const (
	MsgUserCreated = "User created successfully"
	MsgUserUpdated = "User information updated successfully"
	MsgUserDeleted = "User account deleted successfully"

	MsgItemAdded   = "Item added successfully"
	MsgItemUpdated = "item updated successfully"
	MsgItemDeleted = "item deleted successfully"

	MsgSubmissionAdded   = "Submission added successfully"
	MsgSubmissionUpdated = "Submission updated successfully"
	MsgSubmissionDeleted = "Submission deleted successfully"
)

// Error messages
const (
	ErrUsernameExists     = "Username already exists"
	ErrInvalidCredentials = "Invalid credentials"
	ErrUserNotFound       = "User not found"
	ErrItemNotFound       = "Item not found"
	ErrSubmissionNotFound = "Submission not found"
	ErrAuthHeaderMissing  = "Authorization header missing"
	ErrInvalidToken       = "Invalid token"
	ErrInvalidInput       = "Invalid input"
	ErrUnexpected         = "Unexpected error"

	ErrItemUpdateForbidden       = "Unauthorized to update this item"
	ErrItemDeleteForbidden       = "Unauthorized to delete this item"
	ErrSubmissionUpdateForbidden = "Unauthorized to update this submission"
	ErrSubmissionDeleteForbidden = "Unauthorized to delete this submission"
)
