// Package jwt signs and verifies the HS256 access tokens handed out by the
// login endpoint.
//
// Signing and verification are done by golang-jwt. Claims types embed
// StandardClaims, which carries exp/nbf/iat as Unix seconds; Parse rejects
// expired and not-yet-valid tokens and anything not signed with HS256.
//
//	svc, err := jwt.NewFromConfig(jwt.Config{Secret: secret, TTL: time.Hour})
//	token, err := svc.Generate(claims)
//	err = svc.Parse(token, &claims)
//
// BearerToken reads the token from the Authorization header and the context
// helpers carry the token and its verified claims through a request.
package jwt
