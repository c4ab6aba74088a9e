package constant

const (
	// BearerAuthScheme is the authorization scheme (prefix of value
	// in the `Authorization` header)
	BearerAuthScheme = "Bearer"

	// LocalsUserKey is the fiber#Locals key under which the authenticated
	// user is stored once the auth middleware has run.
	LocalsUserKey = "pulseboard:user"

	// TokenIssuer is stamped into the `iss` claim of every issued token.
	TokenIssuer = "pulseboard"
)
