package http

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	appmarketdata "watchdeck/internal/application/service/marketdata"
	appwatchlists "watchdeck/internal/application/service/watchlists"
	watchlist "watchdeck/internal/domain/entity/watchlist"
	domaininterfaces "watchdeck/internal/domain/interfaces"
)

//go:embed web/templates/*.html
var templateFS embed.FS

const (
	loginRoute     = "/"
	dashboardRoute = "/dashboard"

	// Symbol search queries shorter than this never reach the upstream.
	minSearchQueryLen = 2
)

var errMissingSymbols = errors.New("Symbols parameter is required")

type Handler struct {
	router     *gin.Engine
	sessions   *SessionStore
	api        domaininterfaces.BrokerageAPI
	watchlists *appwatchlists.Service
	marketdata *appmarketdata.Service
	log        *logrus.Entry
}

func NewHandler(
	sessions *SessionStore,
	api domaininterfaces.BrokerageAPI,
	watchlists *appwatchlists.Service,
	marketdata *appmarketdata.Service,
	logger *logrus.Logger,
) *Handler {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))
	router.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "web/templates/*.html")))

	h := &Handler{
		router:     router,
		sessions:   sessions,
		api:        api,
		watchlists: watchlists,
		marketdata: marketdata,
		log:        logger.WithField("component", "http_handler"),
	}
	h.registerRoutes()
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) registerRoutes() {
	h.router.GET(loginRoute, h.loginPage)
	h.router.POST("/login", h.login)
	h.router.POST("/logout", h.logout)

	h.router.GET(dashboardRoute, h.dashboard)
	h.router.POST("/watchlists", h.createWatchlist)
	h.router.POST("/watchlists/delete", h.deleteWatchlistByForm)

	h.router.GET("/watchlist/:name", h.watchlistPage)
	h.router.POST("/watchlist/:name/update", h.updateWatchlist)
	h.router.POST("/watchlist/:name/delete", h.deleteWatchlist)

	api := h.router.Group("/api")
	{
		api.GET("/market-data", h.marketDataBatch)
		api.GET("/symbols/search", h.searchSymbols)
	}
}

// Page handlers

func (h *Handler) loginPage(c *gin.Context) {
	if h.sessions.IsAuthenticated(c) {
		c.Redirect(http.StatusFound, dashboardRoute)
		return
	}
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// login validates the submitted form for presence, then authenticates
// upstream with the configured service credentials and stores the
// resulting session in the cookie.
func (h *Handler) login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	if username == "" || password == "" {
		c.HTML(http.StatusBadRequest, "login.html", gin.H{
			"Error":    "Username and password are required",
			"Username": username,
		})
		return
	}

	sess, err := h.api.CreateSession(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("login failed")
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{
			"Error":    err.Error(),
			"Username": username,
		})
		return
	}

	if err := h.sessions.Create(c, sess); err != nil {
		h.log.WithError(err).Error("failed to store session")
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{
			"Error":    "An unexpected error occurred. Please try again.",
			"Username": username,
		})
		return
	}
	c.Redirect(http.StatusSeeOther, dashboardRoute)
}

func (h *Handler) logout(c *gin.Context) {
	h.sessions.Destroy(c)
	c.Redirect(http.StatusSeeOther, loginRoute)
}

func (h *Handler) dashboard(c *gin.Context) {
	sess := h.sessions.Get(c)
	if sess == nil {
		c.Redirect(http.StatusFound, loginRoute)
		return
	}

	data := gin.H{
		"Session":      sess,
		"Notification": c.Query("notification"),
		"Name":         c.Query("name"),
	}

	lists, err := h.watchlists.List(c.Request.Context(), sess.Token)
	if err != nil {
		h.log.WithError(err).Error("failed to fetch watchlists")
		data["Error"] = err.Error()
	}
	data["Watchlists"] = lists

	c.HTML(http.StatusOK, "dashboard.html", data)
}

func (h *Handler) watchlistPage(c *gin.Context) {
	name := c.Param("name")

	sess := h.sessions.Get(c)
	if sess == nil {
		c.Redirect(http.StatusFound, loginRoute)
		return
	}

	detail, quotes, err := h.watchlists.DetailWithQuotes(c.Request.Context(), sess.Token, name)
	if err != nil {
		h.log.WithField("watchlist", name).WithError(err).Error("failed to fetch watchlist")
		c.HTML(http.StatusNotFound, "error.html", gin.H{
			"Message": "Watchlist not found or could not be loaded",
		})
		return
	}

	c.HTML(http.StatusOK, "watchlist.html", gin.H{
		"Session":     sess,
		"Name":        name,
		"DisplayName": detail.Name,
		"GroupName":   detail.GroupName,
		"Entries":     detail.Entries,
		"Quotes":      quotes,
	})
}

// Form action handlers. Mutations resolve to an explicit actionResult and
// the redirect happens unconditionally once the upstream call has been
// attempted, success or not.

type actionResult struct {
	ok       bool
	err      error
	redirect string
}

func (h *Handler) finishAction(c *gin.Context, action string, res actionResult) {
	if !res.ok {
		h.log.WithField("action", action).WithError(res.err).Error("watchlist action failed")
	}
	c.Redirect(http.StatusFound, res.redirect)
}

func notificationURL(notification, name string) string {
	return fmt.Sprintf("%s?notification=%s&name=%s", dashboardRoute, notification, url.QueryEscape(name))
}

func (h *Handler) createWatchlist(c *gin.Context) {
	sess := h.sessions.Get(c)
	if sess == nil {
		c.Redirect(http.StatusFound, loginRoute)
		return
	}

	name := c.PostForm("name")
	if name == "" {
		name = c.PostForm("watchlist-name")
	}
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Watchlist name is required"})
		return
	}

	symbols, ok := parseSymbolsForm(c.PostForm("symbols"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid symbols format"})
		return
	}

	res := actionResult{ok: true, redirect: notificationURL("watchlist-created", name)}
	if _, err := h.watchlists.Create(c.Request.Context(), sess.Token, name, symbols, ""); err != nil {
		res.ok = false
		res.err = err
	}
	h.finishAction(c, "create", res)
}

func (h *Handler) updateWatchlist(c *gin.Context) {
	watchlistName := c.Param("name")

	sess := h.sessions.Get(c)
	if sess == nil {
		c.Redirect(http.StatusFound, loginRoute)
		return
	}

	newName := c.PostForm("name")
	if newName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Watchlist name is required"})
		return
	}

	// Absent symbols leave the upstream entries untouched.
	var symbols []string
	if raw := c.PostForm("symbols"); raw != "" {
		parsed, ok := parseSymbolsForm(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid symbols format"})
			return
		}
		symbols = parsed
	}

	res := actionResult{ok: true, redirect: notificationURL("watchlist-updated", newName)}
	if _, err := h.watchlists.Update(c.Request.Context(), sess.Token, watchlistName, newName, symbols); err != nil {
		res.ok = false
		res.err = err
	}
	h.finishAction(c, "update", res)
}

func (h *Handler) deleteWatchlist(c *gin.Context) {
	h.handleDelete(c, c.Param("name"))
}

func (h *Handler) deleteWatchlistByForm(c *gin.Context) {
	name := c.PostForm("watchlistName")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Watchlist name is required"})
		return
	}
	h.handleDelete(c, name)
}

func (h *Handler) handleDelete(c *gin.Context, name string) {
	sess := h.sessions.Get(c)
	if sess == nil {
		c.Redirect(http.StatusFound, loginRoute)
		return
	}

	res := actionResult{ok: true, redirect: notificationURL("watchlist-deleted", name)}
	if err := h.watchlists.Delete(c.Request.Context(), sess.Token, name); err != nil {
		res.ok = false
		res.err = err
	}
	h.finishAction(c, "delete", res)
}

// JSON API handlers

func (h *Handler) marketDataBatch(c *gin.Context) {
	raw := c.Query("symbols")
	if raw == "" {
		writeError(c, http.StatusBadRequest, errMissingSymbols)
		return
	}
	symbols := strings.Split(raw, ",")

	sess := h.sessions.Get(c)
	if sess == nil {
		writeError(c, http.StatusUnauthorized, errors.New("Unauthorized"))
		return
	}

	quotes, err := h.marketdata.Quotes(c.Request.Context(), sess.Token, symbols)
	if err != nil {
		h.log.WithError(err).Error("failed to fetch market data")
		writeError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"marketData": quotes})
}

func (h *Handler) searchSymbols(c *gin.Context) {
	query := c.Query("query")
	if len(query) < minSearchQueryLen {
		c.JSON(http.StatusOK, gin.H{"results": []any{}})
		return
	}

	sess := h.sessions.Get(c)
	if sess == nil {
		writeError(c, http.StatusUnauthorized, errors.New("Unauthorized"))
		return
	}

	results, err := h.marketdata.Search(c.Request.Context(), sess.Token, query)
	if err != nil {
		h.log.WithError(err).Error("failed to search symbols")
		writeError(c, http.StatusInternalServerError, err)
		return
	}
	if results == nil {
		results = []watchlist.SymbolMatch{}
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

// Helpers

// parseSymbolsForm decodes the symbols form field, a JSON-encoded string
// array. An empty field is a valid empty list.
func parseSymbolsForm(raw string) ([]string, bool) {
	if raw == "" {
		return []string{}, true
	}
	var symbols []string
	if err := json.Unmarshal([]byte(raw), &symbols); err != nil {
		return nil, false
	}
	return symbols, true
}

func writeError(c *gin.Context, status int, err error) {
	if err == nil {
		status = http.StatusInternalServerError
		err = errors.New("unknown error")
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
