package domain

import (
	"github.com/golang-jwt/jwt"

	"github.com/x-xyz/hbarmarket/base/ctx"
)

// SessionClaims is the jwt body. Subject holds the lower case account address
// and Issuer the project id of the instance that signed it.
type SessionClaims struct {
	jwt.StandardClaims
	ChainId ChainId `json:"chainId"`
}

type AuthUsecase interface {
	// Nonce returns the message address has to sign to get a token.
	Nonce(c ctx.Ctx, address Address) (string, error)
	// SignIn consumes the pending nonce of address, verifies signature over its
	// message and issues a token. A nonce can be used once.
	SignIn(c ctx.Ctx, address Address, signature string) (string, error)
	SignToken(c ctx.Ctx, address Address) (string, error)
	// ParseToken returns the address a valid token was issued to.
	ParseToken(c ctx.Ctx, token string) (address string, err error)
}
