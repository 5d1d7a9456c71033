package ginmw

import (
	"net/http"

	"github.com/gin-gonic/gin"
	gostyle "github.com/reoring/gostyle"
	"github.com/reoring/gostyle/middleware"
)

// Styles attaches a fresh Registry to every request context.
func Styles(opts ...gostyle.RegistryOption) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, _ := middleware.WithRequestRegistry(c.Request.Context(), opts...)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// Resolve resolves ds with the request registry.
func Resolve(c *gin.Context, ds ...gostyle.Descriptor) string {
	return gostyle.ResolveContext(c.Request.Context(), ds...)
}

// StyleTag returns the request CSS as a <style> element.
func StyleTag(c *gin.Context) string {
	return middleware.StyleTag(c.Request.Context())
}

// ResolveJSON decodes the request body as a descriptor document and writes
// the resolved class string, or aborts with 400 and Issues.
func ResolveJSON(opt gostyle.DecodeOpt) gin.HandlerFunc {
	return func(c *gin.Context) {
		d, err := gostyle.DecodeDescriptors(c.Request.Context(), gostyle.JSONReader(c.Request.Body), opt)
		if err != nil {
			if iss, ok := gostyle.AsIssues(err); ok {
				c.AbortWithStatusJSON(http.StatusBadRequest, middleware.ErrorPayload(iss))
				return
			}
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"class": Resolve(c, d), "css": StyleTag(c)})
	}
}
