package usecase

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"golang.org/x/xerrors"

	"github.com/x-xyz/hbarmarket/base/ctx"
	"github.com/x-xyz/hbarmarket/base/ethereum"
	"github.com/x-xyz/hbarmarket/base/log"
	"github.com/x-xyz/hbarmarket/domain"
	"github.com/x-xyz/hbarmarket/service/cache"
)

const defaultTokenTtl = 24 * time.Hour

var errWrongAudience = errors.New("token issued for another instance")

type AuthUseCaseCfg struct {
	JwtSecret string
	// Issuer is written into every token, the project id of the instance.
	Issuer  string
	ChainId domain.ChainId
	// TokenTtl defaults to 24h.
	TokenTtl time.Duration
	// Operator is the only address allowed to sign in.
	Operator domain.Address
	// SigningMsgTemplate has one %s which is replaced by the nonce.
	SigningMsgTemplate string
	Nonces             cache.Service
}

type impl struct {
	jwtSecret []byte
	issuer    string
	chainId   domain.ChainId
	tokenTtl  time.Duration
	operator  domain.Address
	template  string
	nonces    cache.Service
	now       func() time.Time
}

func New(cfg *AuthUseCaseCfg) domain.AuthUsecase {
	im := &impl{
		jwtSecret: []byte(cfg.JwtSecret),
		issuer:    cfg.Issuer,
		chainId:   cfg.ChainId,
		tokenTtl:  cfg.TokenTtl,
		operator:  cfg.Operator,
		template:  cfg.SigningMsgTemplate,
		nonces:    cfg.Nonces,
		now:       time.Now,
	}
	if im.tokenTtl <= 0 {
		im.tokenTtl = defaultTokenTtl
	}
	return im
}

func (im *impl) Nonce(ctx ctx.Ctx, address domain.Address) (string, error) {
	if !im.operator.Equals(address) {
		return "", domain.ErrUnauthorized
	}
	nonce := uuid.NewString()
	if err := im.nonces.Set(ctx, address.ToLowerStr(), nonce); err != nil {
		ctx.WithField("err", err).Error("nonces.Set failed")
		return "", err
	}
	return fmt.Sprintf(im.template, nonce), nil
}

func (im *impl) SignIn(ctx ctx.Ctx, address domain.Address, signature string) (string, error) {
	if !im.operator.Equals(address) {
		return "", domain.ErrUnauthorized
	}

	var nonce string
	if err := im.nonces.Take(ctx, address.ToLowerStr(), &nonce); err == cache.ErrNotFound {
		return "", domain.ErrInvalidSignature
	} else if err != nil {
		ctx.WithField("err", err).Error("nonces.Take failed")
		return "", err
	}

	msg := fmt.Sprintf(im.template, nonce)
	if ok, err := ethereum.ValidateMsgSignature([]byte(msg), signature, address.ToLowerStr()); err != nil || !ok {
		ctx.WithFields(log.Fields{"err": err, "address": address}).Warn("invalid sign in signature")
		return "", domain.ErrInvalidSignature
	}

	return im.SignToken(ctx, address)
}

func (im *impl) SignToken(c ctx.Ctx, address domain.Address) (string, error) {
	if len(im.jwtSecret) == 0 {
		return "", xerrors.Errorf("jwt secret: %w", domain.ErrMissingConfig)
	}
	now := im.now()
	claims := domain.SessionClaims{
		StandardClaims: jwt.StandardClaims{
			Subject:   address.ToLowerStr(),
			Issuer:    im.issuer,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(im.tokenTtl).Unix(),
		},
		ChainId: im.chainId,
	}

	ss, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(im.jwtSecret)
	if err != nil {
		c.WithField("err", err).Error("token.SignedString failed")
		return "", err
	}
	return ss, nil
}

// ParseToken accepts HS256 tokens of this issuer and chain only.
// Without a secret every token is refused.
func (im *impl) ParseToken(c ctx.Ctx, str string) (string, error) {
	if len(im.jwtSecret) == 0 {
		c.Error("jwt secret not configured, refusing token")
		return "", xerrors.Errorf("jwt secret: %w", domain.ErrMissingConfig)
	}
	claims := &domain.SessionClaims{}
	token, err := jwt.ParseWithClaims(str, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return im.jwtSecret, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid || claims.Subject == "" {
		return "", domain.ErrInvalidSignature
	}
	if claims.Issuer != im.issuer || claims.ChainId != im.chainId {
		return "", errWrongAudience
	}
	return claims.Subject, nil
}
