package httpserver

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"

	"phonestore/internal/i18n"
)

const localeCtxKey = "locale"

func localeMiddleware(t *i18n.Translator) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(localeCtxKey, t.Resolve(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

func localeFrom(c *gin.Context) language.Tag {
	if v, ok := c.Get(localeCtxKey); ok {
		if tag, ok := v.(language.Tag); ok {
			return tag
		}
	}
	return language.Vietnamese
}
