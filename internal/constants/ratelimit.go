package constants

const (
	// Rate limits (requests per minute)
	GlobalAuthLimit = 30  // team-login and OAuth callback
	PublicFeedLimit = 120 // public requisition feed
)
