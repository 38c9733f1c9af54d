package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/domain/model/tenant"
	"tracking/internal/pkg/errs"
)

// actorContextKey is the echo context key under which the authenticated
// actor is stored.
const actorContextKey = "actor"

// AuthMiddleware resolves the opaque access token from the Authorization
// header into a tenant actor. Both "Token <key>" and "Bearer <key>" schemes
// are accepted.
type AuthMiddleware struct {
	uowFactory commands.AccountUoWFactory
}

// NewAuthMiddleware creates the token authentication middleware.
func NewAuthMiddleware(uowFactory commands.AccountUoWFactory) AuthMiddleware {
	return AuthMiddleware{uowFactory: uowFactory}
}

// Authenticate rejects unauthenticated requests with 401 and requests from
// blocked users with 403. On success the actor is stored in the request
// context for the handlers.
func (m AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := tokenFromHeader(c.Request().Header.Get(echo.HeaderAuthorization))
		if token == "" {
			return c.JSON(http.StatusUnauthorized,
				detailResponse{Detail: "Authentication credentials were not provided."})
		}

		ctx := c.Request().Context()
		uow := m.uowFactory.Create()

		user, err := uow.UserRepository().GetByToken(ctx, token)
		if err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				return c.JSON(http.StatusUnauthorized, detailResponse{Detail: "Invalid token."})
			}
			return respondError(c, err)
		}

		var company *tenant.Company
		if user.CompanyID() != nil {
			company, err = uow.CompanyRepository().Get(ctx, *user.CompanyID())
			if err != nil {
				return respondError(c, err)
			}
		}

		actor, err := user.ActorFor(company)
		if err != nil {
			return respondError(c, err)
		}
		if err = actor.Authorize(); err != nil {
			return respondError(c, err)
		}

		c.Set(actorContextKey, actor)
		return next(c)
	}
}

// actorFrom returns the actor stored by Authenticate. Handlers behind the
// middleware may assume it is present.
func actorFrom(c echo.Context) tenant.Actor {
	return c.Get(actorContextKey).(tenant.Actor)
}

func tokenFromHeader(header string) string {
	for _, scheme := range []string{"Token ", "Bearer "} {
		if strings.HasPrefix(header, scheme) {
			return strings.TrimSpace(strings.TrimPrefix(header, scheme))
		}
	}
	return ""
}
