package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/formastudio/forma-api/internal/infra/authn"
	"github.com/formastudio/forma-api/internal/modules/model"
	"github.com/formastudio/forma-api/internal/modules/repo"
	"github.com/formastudio/forma-api/internal/modules/serializer"
)

const (
	ContextIdentity = "identity"
	ContextRole     = "role"
)

// UserAuth authenticates requests with a bearer access token issued by the
// hosted auth provider, resolves the account's role from user_roles, and
// stores both on the context. Accounts without a role row are regular users.
func UserAuth(verifier authn.Verifier, users repo.UserRepo, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		ctx, span := otel.Tracer("middleware").Start(ctx, "user_auth")

		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			span.SetAttributes(attribute.Bool("authenticated", false))
			span.End()
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Unauthorized"))
			return
		}
		token := strings.TrimPrefix(auth, "Bearer ")

		identity, err := verifier.VerifyToken(ctx, token)
		if err != nil {
			span.SetAttributes(attribute.Bool("authenticated", false))
			span.End()
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Unauthorized"))
			return
		}

		role, err := users.GetRole(ctx, identity.ID)
		if err != nil {
			// A failed role lookup must not grant elevated access.
			log.Warn("role lookup failed, defaulting to user",
				zap.Error(err), zap.String("user_id", identity.ID.String()))
			role = model.RoleUser
		}

		span.SetAttributes(
			attribute.Bool("authenticated", true),
			attribute.String("user_id", identity.ID.String()),
			attribute.String("role", role),
		)
		span.End()

		c.Set(ContextIdentity, identity)
		c.Set(ContextRole, role)
		c.Next()
	}
}

// RequireAdmin bounces authenticated non-admin accounts; they never see a
// partial admin surface.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := c.Get(ContextRole)
		if !ok || role != model.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, serializer.ForbiddenErr("admin role required"))
			return
		}
		c.Next()
	}
}

// IdentityFrom returns the authenticated identity set by UserAuth.
func IdentityFrom(c *gin.Context) (*authn.Identity, bool) {
	v, ok := c.Get(ContextIdentity)
	if !ok {
		return nil, false
	}
	identity, ok := v.(*authn.Identity)
	return identity, ok
}
