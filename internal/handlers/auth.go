package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"projectmatch-service/internal/models"
)

const userLocalsKey = "user"

// TokenResolver resolves an API token to the owning user. Satisfied by
// repository.UserRepository.
type TokenResolver interface {
	GetUserByToken(token string) (*models.User, error)
}

// RequireUser resolves the Authorization bearer token to a user and stores
// it in the request locals. Unknown or missing tokens get a 401 with no
// detail about which part failed.
func RequireUser(users TokenResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": true, "message": "authentication required",
			})
		}

		user, err := users.GetUserByToken(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": true, "message": "authentication required",
			})
		}

		c.Locals(userLocalsKey, user)
		return c.Next()
	}
}

// CurrentUser returns the authenticated user stored by RequireUser.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(userLocalsKey).(*models.User)
	return user
}
