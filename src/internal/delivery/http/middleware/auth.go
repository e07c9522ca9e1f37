package middleware

import (
	"fmt"
	"strings"

	httpError "moving-service/src/pkg/http-error"
	"moving-service/src/pkg/token"
	"moving-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
)

const userContextKey = "auth.user"

// VerifyBearer validates the Authorization header and stores the token
// metadata on the request context.
func VerifyBearer(cfg *viper.Viper) fiber.Handler {
	secret := []byte(cfg.GetString("jwt.secret"))

	return func(ctx *fiber.Ctx) error {
		header := ctx.Get(fiber.HeaderAuthorization)
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found || raw == "" {
			errObj := httpError.NewUnauthorized()
			errObj.Message = "missing bearer token"
			return utils.ResponseError(errObj, ctx)
		}

		claim := new(token.Claim)
		parsed, err := jwt.ParseWithClaims(raw, claim, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return secret, nil
		})
		if err != nil || !parsed.Valid || claim.Metadata.UserID == "" {
			errObj := httpError.NewUnauthorized()
			errObj.Message = "invalid bearer token"
			return utils.ResponseError(errObj, ctx)
		}

		ctx.Locals(userContextKey, claim.Metadata)
		return ctx.Next()
	}
}

// GetUser returns the authenticated user's metadata. VerifyBearer must have
// run on the route.
func GetUser(ctx *fiber.Ctx) token.Metadata {
	if meta, ok := ctx.Locals(userContextKey).(token.Metadata); ok {
		return meta
	}
	return token.Metadata{}
}
