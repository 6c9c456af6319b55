package constants

// Centralized constants for env keys, routes, JSON keys and log fields.
const (
	// Environment variable keys
	EnvSessionSecret = "SESSION_SECRET"
	EnvConfigPath    = "GRIDSTRIKE_CONFIG"
	EnvDBPath        = "GRIDSTRIKE_DB"
	EnvAddress       = "GRIDSTRIKE_ADDR"

	// Session / Cookie names
	CookieSessionName = "gs_session"
)

// Routes used by the backend router
const (
	RouteAPIPrefix   = "/api"
	RouteLogin       = "/login"
	RouteLeaderboard = "/leaderboard"
	RoutePlayerStats = "/player-stats"
	RouteMatches     = "/matches"
	RouteMatchJoin   = "/matches/:matchID/join"
	RouteMatchByID   = "/matches/:matchID"
	RouteMatchUnits  = "/matches/:matchID/units"
	RouteMatchReady  = "/matches/:matchID/ready"
	RouteMatchStart  = "/matches/:matchID/start"
	RouteMatchShot   = "/matches/:matchID/shot"
	RouteMatchEnd    = "/matches/:matchID/end-turn"
	RouteMatchEvents = "/matches/:matchID/events"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
	JSONKeyEvents  = "events"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest      = "Invalid request"
	ErrMatchNotFound       = "Match not found"
	ErrNameRequired        = "player_name is required"
	ErrAuthRequired        = "Authentication required"
	ErrInvalidSession      = "Invalid session"
	ErrFailedCreateMatch   = "Failed to create match"
	ErrFailedFetchStats    = "Failed to fetch stats"
	ErrFailedFetchLeaders  = "Failed to fetch leaderboard"
	ErrFailedCreateSession = "Failed to create session"
)

// Logging field names
const (
	LogFieldMatchID  = "match_id"
	LogFieldPlayerID = "player_id"
	LogFieldAddr     = "addr"
	LogFieldReason   = "reason"
)
