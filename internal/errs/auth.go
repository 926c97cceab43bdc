package errs

// AuthKind classifies identity-provider failures into the fixed set the
// client surfaces distinct messages for. Unrecognized provider codes map
// to AuthKindUnspecified.
type AuthKind int

const (
	AuthKindUnspecified AuthKind = iota
	AuthKindInvalidEmail
	AuthKindUserNotFound
	AuthKindWrongPassword
	AuthKindUserDisabled
	AuthKindTooManyRequests
	AuthKindNetwork
	AuthKindEmailInUse
	AuthKindWeakPassword
)

type AuthError struct {
	ErrorMessage
	Kind AuthKind
	Err  error
}

func (e *AuthError) Unwrap() error { return e.Err }

// Human-readable messages per kind, matching what the app shows the user.
var authMessages = map[AuthKind]string{
	AuthKindUnspecified:     "Sign-in failed. Please try again.",
	AuthKindInvalidEmail:    "Invalid email address.",
	AuthKindUserNotFound:    "User not found.",
	AuthKindWrongPassword:   "Incorrect email or password.",
	AuthKindUserDisabled:    "This account has been disabled.",
	AuthKindTooManyRequests: "Too many attempts. Try again later.",
	AuthKindNetwork:         "Connection error. Check your internet.",
	AuthKindEmailInUse:      "This email is already in use.",
	AuthKindWeakPassword:    "Password should be at least 6 characters.",
}

func NewAuthError(kind AuthKind, err error) *AuthError {
	msg, ok := authMessages[kind]
	if !ok {
		msg = authMessages[AuthKindUnspecified]
	}
	return &AuthError{
		ErrorMessage: ErrorMessage{Message: msg},
		Kind:         kind,
		Err:          err,
	}
}
