package site

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ncecere/judgment-tools/internal/app"
	"github.com/ncecere/judgment-tools/internal/httpserver/httputil"
)

const layoutMain = "views/layouts/main"

type handler struct {
	container *app.Container
	pages     map[string]toolPage
}

// Register wires up the content pages and the tool forms. Every tool in the
// registry must have a page.
func Register(router fiber.Router, container *app.Container) error {
	h := &handler{container: container, pages: toolPages(container)}
	for _, tool := range container.Tools.All() {
		if _, ok := h.pages[tool.Slug]; !ok {
			return fmt.Errorf("tool %q has no page", tool.Slug)
		}
	}

	router.Get("/", h.static("views/home", "", ""))
	router.Get("/about", h.static("views/about", "About", "What Judgment Tools are, what they do, and what they do not do."))
	router.Get("/contact", h.static("views/contact", "Contact", "Contact the maker of Judgment Tools."))
	router.Get("/tools", h.toolsIndex)
	router.Get("/tools/:slug", h.toolForm)
	router.Post("/tools/:slug", httputil.LimitSubmissions(container, httputil.LimitConfig{
		Next:         isReset,
		LimitReached: h.limitReached,
	}), h.toolSubmit)
	return nil
}

// NotFound renders the 404 page.
func NotFound(container *app.Container) fiber.Handler {
	h := &handler{container: container}
	return h.notFound
}

func (h *handler) static(view, title, description string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Render(view, h.page(c, title, description), layoutMain)
	}
}

func (h *handler) toolsIndex(c *fiber.Ctx) error {
	data := h.page(c, "All tools", "Pick one and run it. Deterministic inputs, fixed rules, consistent outputs.")
	data.ShowSidebar = true
	return c.Render("views/tools/index", data, layoutMain)
}

func (h *handler) toolForm(c *fiber.Ctx) error {
	return h.renderTool(c, fiber.StatusOK, func(page toolPage, data *pageData) { page.blank(data) })
}

func (h *handler) toolSubmit(c *fiber.Ctx) error {
	return h.renderTool(c, fiber.StatusOK, func(page toolPage, data *pageData) { page.submit(c, data) })
}

// limitReached re-renders the posted form, unevaluated, with a notice.
func (h *handler) limitReached(c *fiber.Ctx) error {
	return h.renderTool(c, fiber.StatusTooManyRequests, func(page toolPage, data *pageData) {
		page.restore(c, data)
		data.Notice = "Too many submissions. Try again in a minute."
	})
}

func (h *handler) renderTool(c *fiber.Ctx, status int, fill func(toolPage, *pageData)) error {
	tool, ok := h.container.Tools.Lookup(c.Params("slug"))
	if !ok {
		return h.notFound(c)
	}
	page, ok := h.pages[tool.Slug]
	if !ok {
		return h.notFound(c)
	}
	data := h.page(c, tool.Name, tool.OneLiner)
	data.CanonicalURL = canonicalURL(h.container.Config.Site.BaseURL, tool.Path())
	data.ShowSidebar = true
	data.ActiveSlug = tool.Slug
	data.Tool = tool
	fill(page, &data)
	return c.Status(status).Render("views/tools/"+tool.Slug, data, layoutMain)
}

func (h *handler) notFound(c *fiber.Ctx) error {
	data := h.page(c, "Not found", "")
	return c.Status(fiber.StatusNotFound).Render("views/not_found", data, layoutMain)
}

func (h *handler) page(c *fiber.Ctx, title, description string) pageData {
	site := h.container.Config.Site
	if description == "" {
		description = site.Description
	}
	fullTitle := site.Name
	if title != "" {
		fullTitle = title + " | " + site.Name
	}
	tools := h.container.Tools.All()
	data := pageData{
		Title:        fullTitle,
		Description:  description,
		CanonicalURL: canonicalURL(site.BaseURL, c.Path()),
		SiteName:     site.Name,
		ContactEmail: site.ContactEmail,
		Tools:        tools,
	}
	if len(tools) > 0 {
		data.FirstTool = &tools[0]
	}
	return data
}

func canonicalURL(baseURL, path string) string {
	base := strings.TrimRight(baseURL, "/")
	if path == "" || path == "/" {
		return base
	}
	return base + path
}
