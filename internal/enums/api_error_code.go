package enums

import "maps"

// ApiErrorCode is the error code returned to API clients.
type ApiErrorCode string

const (
	ApiErrorValidation             ApiErrorCode = "VALIDATION_ERROR"
	ApiErrorResourceNotFound       ApiErrorCode = "RESOURCE_NOT_FOUND_ERROR"
	ApiErrorInvalidCredentials     ApiErrorCode = "INVALID_CREDENTIALS_ERROR"
	ApiErrorSMTP                   ApiErrorCode = "SMTP_ERROR"
	ApiErrorUnauthorized           ApiErrorCode = "UNAUTHORIZED_ERROR"
	ApiErrorForbidden              ApiErrorCode = "FORBIDDEN_ERROR"
	ApiErrorUnknownRoute           ApiErrorCode = "UNKNOWN_ROUTE_ERROR"
	ApiErrorRateLimit              ApiErrorCode = "TOO_MANY_REQUESTS_ERROR"
	ApiErrorDependency             ApiErrorCode = "DEPENDENCY_ERROR"
	ApiErrorServer                 ApiErrorCode = "SERVER_ERROR"
	ApiErrorIncorrectOldPassword   ApiErrorCode = "INCORRECT_OLD_PASSWORD_ERROR"
	ApiErrorPayloadTooLarge        ApiErrorCode = "PAYLOAD_TOO_LARGE_ERROR"
	ApiErrorEmailNotVerified       ApiErrorCode = "EMAIL_NOT_VERIFIED_ERROR"
	ApiErrorBadRequest             ApiErrorCode = "BAD_REQUEST_ERROR"
	ApiErrorWebhooksDisabled       ApiErrorCode = "WEBHOOKS_DISABLED"
	ApiErrorInvalidMFAAttemptToken ApiErrorCode = "INVALID_MFA_ATTEMPT_TOKEN_ERROR"
	ApiErrorInvalidMFACode         ApiErrorCode = "INVALID_MFA_CODE_ERROR"
	ApiErrorInvalidMFABackupCode   ApiErrorCode = "INVALID_MFA_BACKUP_CODE_ERROR"
)

var apiErrorCodeDescriptions = map[ApiErrorCode]string{
	ApiErrorValidation:             "Validation failed due to incorrect input.",
	ApiErrorResourceNotFound:       "The requested resource was not found.",
	ApiErrorInvalidCredentials:     "Invalid username or password.",
	ApiErrorSMTP:                   "SMTP server error occurred while sending email.",
	ApiErrorUnauthorized:           "User authentication required.",
	ApiErrorForbidden:              "You do not have permission to access this resource.",
	ApiErrorUnknownRoute:           "The requested route does not exist.",
	ApiErrorRateLimit:              "Too many requests. Please try again later.",
	ApiErrorDependency:             "A dependent service encountered an error.",
	ApiErrorServer:                 "An internal server error occurred.",
	ApiErrorIncorrectOldPassword:   "The old password provided is incorrect.",
	ApiErrorPayloadTooLarge:        "The request payload exceeds the allowed limit.",
	ApiErrorEmailNotVerified:       "Your email has not been verified yet.",
	ApiErrorBadRequest:             "Invalid request parameters.",
	ApiErrorWebhooksDisabled:       "Webhooks are currently disabled.",
	ApiErrorInvalidMFAAttemptToken: "Invalid MFA attempt token provided.",
	ApiErrorInvalidMFACode:         "Invalid MFA verification code entered.",
	ApiErrorInvalidMFABackupCode:   "Invalid MFA backup code provided.",
}

func ApiErrorCodeValues() []ApiErrorCode {
	return []ApiErrorCode{
		ApiErrorValidation, ApiErrorResourceNotFound, ApiErrorInvalidCredentials,
		ApiErrorSMTP, ApiErrorUnauthorized, ApiErrorForbidden, ApiErrorUnknownRoute,
		ApiErrorRateLimit, ApiErrorDependency, ApiErrorServer, ApiErrorIncorrectOldPassword,
		ApiErrorPayloadTooLarge, ApiErrorEmailNotVerified, ApiErrorBadRequest,
		ApiErrorWebhooksDisabled, ApiErrorInvalidMFAAttemptToken, ApiErrorInvalidMFACode,
		ApiErrorInvalidMFABackupCode,
	}
}

func ApiErrorCodeDescriptions() map[ApiErrorCode]string {
	return maps.Clone(apiErrorCodeDescriptions)
}

func ParseApiErrorCode(raw string) (ApiErrorCode, error) {
	return parse("api error code", raw, ApiErrorCodeValues())
}

func (c ApiErrorCode) Description() string {
	if d, ok := apiErrorCodeDescriptions[c]; ok {
		return d
	}
	return "Unknown error."
}

func (c ApiErrorCode) Valid() bool {
	_, ok := apiErrorCodeDescriptions[c]
	return ok
}
