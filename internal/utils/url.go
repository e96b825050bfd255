package utils

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"foodies-backend/domain"
)

// BaseURL resolves the absolute base for image links: an explicitly
// configured PUBLIC_URL wins, then forwarded proto/host headers, then the
// request host, then localhost.
func BaseURL(c *fiber.Ctx) string {
	if envURL := strings.TrimSpace(GetConfig("PUBLIC_URL")); envURL != "" {
		return strings.TrimRight(envURL, "/")
	}

	proto := c.Get("X-Forwarded-Proto")
	if proto == "" {
		proto = c.Protocol()
	}
	proto = strings.Split(proto, ",")[0]

	host := c.Get("X-Forwarded-Host")
	if host == "" {
		host = c.Hostname()
	}
	if host == "" {
		host = "localhost"
	}
	return proto + "://" + host
}

// AbsolutizePath rewrites a public-directory path ("/recipes/x.jpg") into an
// absolute URL. Values that are already absolute or empty pass through.
func AbsolutizePath(base, path string) string {
	if strings.HasPrefix(path, "/") {
		return base + path
	}
	return path
}

func AbsolutizeAvatar(base string, avatar *string) *string {
	if avatar == nil || !strings.HasPrefix(*avatar, "/") {
		return avatar
	}
	abs := base + *avatar
	return &abs
}

// AbsolutizeRecipe rewrites the thumb and the owner's avatar of a recipe
// response in place.
func AbsolutizeRecipe(base string, recipe *domain.RecipeResponse) {
	if recipe == nil {
		return
	}
	recipe.Thumb = AbsolutizePath(base, recipe.Thumb)
	if recipe.Owner != nil {
		recipe.Owner.Avatar = AbsolutizeAvatar(base, recipe.Owner.Avatar)
	}
}

func AbsolutizeRecipes(base string, recipes []domain.RecipeResponse) {
	for i := range recipes {
		AbsolutizeRecipe(base, &recipes[i])
	}
}
