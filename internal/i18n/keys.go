// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Authentication
	KeyAuthRequired           = "auth.required"
	KeyAuthInvalidToken       = "auth.invalid_token"
	KeyAuthTokenExpired       = "auth.token_expired"
	KeyAuthInvalidCredentials = "auth.invalid_credentials"
	KeyAuthEmailExists        = "auth.email_exists"
	KeyAuthLoginSuccess       = "auth.login_success"
	KeyAuthLogoutSuccess      = "auth.logout_success"
	KeyAuthRegisterSuccess    = "auth.register_success"

	// Users
	KeyUserNotFound       = "user.not_found"
	KeyUserProfileUpdated = "user.profile_updated"

	// Offers
	KeyOfferCreated  = "offer.created"
	KeyOfferUpdated  = "offer.updated"
	KeyOfferDeleted  = "offer.deleted"
	KeyOfferNotFound = "offer.not_found"

	// Wheels
	KeyWheelCreated  = "wheel.created"
	KeyWheelUpdated  = "wheel.updated"
	KeyWheelDeleted  = "wheel.deleted"
	KeyWheelNotFound = "wheel.not_found"

	// Follow
	KeyFollowAdded   = "follow.added"
	KeyFollowRemoved = "follow.removed"

	// Reports
	KeyReportSubmitted     = "report.submitted"
	KeyReportInvalidReason = "report.invalid_reason"

	// Lookup
	KeyLookupNotFound = "lookup.not_found"

	// Validation / generic
	KeyValidationRequired = "validation.required"
	KeyValidationInvalid  = "validation.invalid"
	KeyForbidden          = "forbidden"
)
