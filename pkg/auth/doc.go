// Package auth registers API users and guards routes with bearer tokens.
//
// Login issues an HS256 token carrying userId and role and stores it on the
// user document together with its expiry. That stored copy acts as a
// whitelist: Middleware accepts a token only while it equals the stored one
// and the stored expiry lies in the future, so a new login or a logout revokes
// the previous token before it expires.
//
// Rejections are answered with 401 and one of these messages:
//
//	No token provided
//	Invalid or expired token
//	User not found
//	Token not recognized (please login again)
//	Token expired (please login again)
package auth
