package constants

const (
	// ContextKeyUserID is the key used for the authenticated user in both the
	// session and the gin context.
	ContextKeyUserID = "user_id"

	// ContextKeyRequestID holds the per-request correlation id.
	ContextKeyRequestID = "request_id"

	// ContextKeyRecordID holds the parsed :id of record routes.
	ContextKeyRecordID = "record_id"

	// SessionCookieName is the name of the session cookie.
	SessionCookieName = "kiroku_session"

	// MinPasswordLength is the minimum accepted password length at signup.
	MinPasswordLength = 8

	// DateLayout is the wire format of calendar dates (YYYY-MM-DD).
	DateLayout = "2006-01-02"

	// ChartLabelLayout renders a local timestamp as "<month>/<day> <HH:MM>".
	ChartLabelLayout = "1/2 15:04"

	// HeaderRequestID is the header carrying the request id.
	HeaderRequestID = "X-Request-ID"
)
