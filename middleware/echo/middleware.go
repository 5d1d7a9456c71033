package echomw

import (
	"net/http"

	"github.com/labstack/echo/v4"
	gostyle "github.com/reoring/gostyle"
	"github.com/reoring/gostyle/middleware"
)

// Styles attaches a fresh Registry to every request context.
func Styles(opts ...gostyle.RegistryOption) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, _ := middleware.WithRequestRegistry(c.Request().Context(), opts...)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// Resolve resolves ds with the request registry.
func Resolve(c echo.Context, ds ...gostyle.Descriptor) string {
	return gostyle.ResolveContext(c.Request().Context(), ds...)
}

// StyleTag returns the request CSS as a <style> element.
func StyleTag(c echo.Context) string {
	return middleware.StyleTag(c.Request().Context())
}

// ResolveJSON decodes the request body as a descriptor document and writes
// the resolved class string, or 400 with Issues.
func ResolveJSON(opt gostyle.DecodeOpt) echo.HandlerFunc {
	return func(c echo.Context) error {
		d, err := gostyle.DecodeDescriptors(c.Request().Context(), gostyle.JSONReader(c.Request().Body), opt)
		if err != nil {
			if iss, ok := gostyle.AsIssues(err); ok {
				return c.JSON(http.StatusBadRequest, middleware.ErrorPayload(iss))
			}
			return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]any{"class": Resolve(c, d), "css": StyleTag(c)})
	}
}
