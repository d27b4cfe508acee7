package apierror

// Error type URIs following the urn:wellbeing:error:* pattern.
// These are used as the "type" field in RFC 9457 Problem Details.
const (
	// TypeValidation indicates request validation failed (400)
	TypeValidation = "urn:wellbeing:error:validation"

	// TypeBadRequest indicates a malformed or invalid request (400)
	TypeBadRequest = "urn:wellbeing:error:bad_request"

	// TypeNotFound indicates the requested resource was not found (404)
	TypeNotFound = "urn:wellbeing:error:not_found"

	// TypeInternal indicates an unexpected server error (500)
	TypeInternal = "urn:wellbeing:error:internal"

	// TypeStoreUnavailable indicates the log store could not be reached (503)
	TypeStoreUnavailable = "urn:wellbeing:error:store_unavailable"
)

// Titles for each error type - human-readable summaries
const (
	TitleValidation       = "Validation Error"
	TitleBadRequest       = "Bad Request"
	TitleNotFound         = "Resource Not Found"
	TitleInternal         = "Internal Server Error"
	TitleStoreUnavailable = "Store Unavailable"
)
