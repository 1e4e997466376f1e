package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// Authentication
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
	ErrEmailTaken         ErrCode = "EMAIL_TAKEN"
	ErrSessionInvalidated ErrCode = "SESSION_INVALIDATED"
	ErrTokenRequired      ErrCode = "TOKEN_REQUIRED"
	ErrTokenInvalid       ErrCode = "TOKEN_INVALID"

	// Authorization
	ErrForbidden     ErrCode = "FORBIDDEN"
	ErrNotOnboarded  ErrCode = "ONBOARDING_REQUIRED"
	ErrNotChatMember ErrCode = "NOT_CHAT_MEMBER"

	// Validation
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidID      ErrCode = "INVALID_ID"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// Resources
	ErrNotFound ErrCode = "NOT_FOUND"
	ErrConflict ErrCode = "CONFLICT"

	// Schedule ingestion
	ErrNoUniversity    ErrCode = "NO_UNIVERSITY"
	ErrUnsupportedFile ErrCode = "UNSUPPORTED_FILE_TYPE"
	ErrFileRequired    ErrCode = "FILE_REQUIRED"
	ErrFileTooLarge    ErrCode = "FILE_TOO_LARGE"
	ErrScheduleEmpty   ErrCode = "SCHEDULE_EMPTY"
	ErrOCRUnavailable  ErrCode = "OCR_UNAVAILABLE"

	// Rate limiting
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// Server
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
// Schedule ingestion failures carry actionable next steps because the mobile
// client surfaces these messages verbatim.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrInvalidCredentials:
		return "Email or password is incorrect."
	case ErrEmailTaken:
		return "An account already exists for this email address."
	case ErrSessionInvalidated:
		return "Your session has ended. Please sign in again."
	case ErrTokenRequired:
		return "An authentication token is required."
	case ErrTokenInvalid:
		return "The authentication token is invalid or expired."

	case ErrForbidden:
		return "You do not have permission to access this resource."
	case ErrNotOnboarded:
		return "Finish setting up your schedule before using this feature."
	case ErrNotChatMember:
		return "You are not a member of this chat."

	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidID:
		return "Invalid ID format."
	case ErrInvalidPayload:
		return "Invalid request payload."

	case ErrNotFound:
		return "Resource not found."
	case ErrConflict:
		return "Resource already exists."

	case ErrNoUniversity:
		return "We couldn't match your email to a supported university."
	case ErrUnsupportedFile:
		return "That file type isn't supported. Upload a .ics or .csv export, or enter your classes manually."
	case ErrFileRequired:
		return "A file upload is required."
	case ErrFileTooLarge:
		return "The file exceeds the size limit."
	case ErrScheduleEmpty:
		return "We couldn't find any classes in that upload. Try a different file or enter your classes manually."
	case ErrOCRUnavailable:
		return "Photo import isn't available right now. Upload a schedule file or enter your classes manually."

	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."

	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}
