package constants

const (
	ErrMsgSessionNotFound  = "Session not found or expired"
	ErrMsgInvalidBody      = "Invalid request body"
	ErrMsgInvalidSettings  = "Invalid pattern settings"
	ErrMsgInvalidBoundary  = "Boundary must be a closed ring of at least 4 points"
	ErrMsgInvalidCenter    = "Centerline must contain at least 2 points"
	ErrMsgWaypointNotFound = "Waypoint not found"
	ErrMsgInvalidToken     = "Invalid or expired export token"
)
