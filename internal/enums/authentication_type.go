package enums

import "maps"

// AuthenticationType is the mechanism used to authenticate API callers.
type AuthenticationType string

const (
	AuthSanctum AuthenticationType = "sanctum" // opaque tokens
	AuthJWT     AuthenticationType = "jwt"
	AuthAPIKey  AuthenticationType = "api_key"
)

var authenticationTypeDescriptions = map[AuthenticationType]string{
	AuthSanctum: "Sanctum authentication (token-based)",
	AuthJWT:     "JWT authentication (stateless authentication)",
	AuthAPIKey:  "API Key authentication (static keys)",
}

func AuthenticationTypeValues() []AuthenticationType {
	return []AuthenticationType{AuthSanctum, AuthJWT, AuthAPIKey}
}

func AuthenticationTypeDescriptions() map[AuthenticationType]string {
	return maps.Clone(authenticationTypeDescriptions)
}

func ParseAuthenticationType(raw string) (AuthenticationType, error) {
	return parse("authentication type", raw, AuthenticationTypeValues())
}

func (a AuthenticationType) Description() string {
	if d, ok := authenticationTypeDescriptions[a]; ok {
		return d
	}
	return "Unknown authentication type"
}

func (a AuthenticationType) Valid() bool {
	_, ok := authenticationTypeDescriptions[a]
	return ok
}
