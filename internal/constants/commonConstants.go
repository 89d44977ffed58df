package constants

type (
	RequestSource string
	APIStatus     string
	CachePrefix   string
)

const (
	RequestSourceAPI       RequestSource = "API"
	RequestSourceWebClient RequestSource = "WEB_CLIENT"

	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"

	CachePrefixSession    CachePrefix = "PATH_SESSION_"
	CachePrefixExportUsed CachePrefix = "EXPORT_TOKEN_"
)

// MetersPerDegree is the approximate ground distance of one degree of
// latitude (and of longitude at the equator). Grid spacing is converted
// with this flat factor rather than a projected CRS; survey areas are
// small enough that the error stays sub-percent.
const MetersPerDegree = 111000.0
