package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"projectmatch-service/internal/models"
)

type fakeTokenResolver struct {
	users map[string]*models.User
}

func (f *fakeTokenResolver) GetUserByToken(token string) (*models.User, error) {
	user, ok := f.users[token]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func newAuthApp(resolver TokenResolver) *fiber.App {
	app := fiber.New()
	app.Use(RequireUser(resolver))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		return c.JSON(CurrentUser(c))
	})
	return app
}

func TestRequireUser_MissingTokenIsUnauthorized(t *testing.T) {
	app := newAuthApp(&fakeTokenResolver{})

	resp, err := app.Test(httptest.NewRequest("GET", "/whoami", nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireUser_UnknownTokenIsUnauthorized(t *testing.T) {
	app := newAuthApp(&fakeTokenResolver{users: map[string]*models.User{}})

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer nope")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireUser_KnownTokenPassesUserAlong(t *testing.T) {
	user := &models.User{ID: uuid.New(), Email: "a@example.com"}
	app := newAuthApp(&fakeTokenResolver{users: map[string]*models.User{"secret": user}})

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer secret")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
