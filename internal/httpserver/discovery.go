package httpserver

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ncecere/judgment-tools/internal/app"
	"github.com/ncecere/judgment-tools/internal/sitemap"
)

func registerDiscoveryRoutes(app *fiber.App, container *app.Container) {
	baseURL := container.Config.Site.BaseURL

	app.Get("/sitemap.xml", func(c *fiber.Ctx) error {
		var buf bytes.Buffer
		entries := sitemap.Build(baseURL, container.Tools, time.Now())
		if err := sitemap.Encode(&buf, entries); err != nil {
			return fmt.Errorf("encode sitemap: %w", err)
		}
		c.Set(fiber.HeaderContentType, "application/xml; charset=utf-8")
		return c.Send(buf.Bytes())
	})

	app.Get("/robots.txt", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.SendString(fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", baseURL))
	})
}
