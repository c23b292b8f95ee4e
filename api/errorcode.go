package api

import "github.com/wanderly/discovery-api/store"

var (
	errorMessageMap = map[int64]string{
		999: "internal server error",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: "this account has been registered or has been taken",
		1101: "profile not found",

		1200: "unknown POI",
		1201: "invalid geohash",
		1202: store.ErrInvalidRating.Error(),
		1203: "unknown interaction type",

		1300: "query recommendations error",
		1301: "query trending error",
	}

	errorInternalServer = errorJSON(999)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorAccountTaken    = errorJSON(1100)
	errorProfileNotFound = errorJSON(1101)

	errorUnknownPOI             = errorJSON(1200)
	errorInvalidGeohash         = errorJSON(1201)
	errorInvalidRating          = errorJSON(1202)
	errorInvalidInteractionType = errorJSON(1203)

	errorRecommendation = errorJSON(1300)
	errorTrending       = errorJSON(1301)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
