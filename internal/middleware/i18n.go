package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/reviewlens/review-sentiment-api/pkg/i18n"
)

const localeKey = "locale"

// I18n negotiates the response locale from Accept-Language against the
// bundle's loaded locales. A nil bundle uses the built-in messages.
func I18n(messages *i18n.Bundle) gin.HandlerFunc {
	if messages == nil {
		messages = i18n.NewDefaultBundle()
	}
	return func(c *gin.Context) {
		locale := messages.Negotiate(c.GetHeader("Accept-Language"))
		c.Set(localeKey, locale)
		c.Header("Content-Language", string(locale))
		c.Next()
	}
}

// GetLocale locale chosen by I18n, pt when the middleware did not run
func GetLocale(c *gin.Context) i18n.Locale {
	if locale, ok := c.Value(localeKey).(i18n.Locale); ok {
		return locale
	}
	return i18n.LocalePt
}
