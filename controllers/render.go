package controllers

import (
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Kariqs/vkusnyashka/middlewares"
	"github.com/Kariqs/vkusnyashka/services"
	"github.com/gin-gonic/gin"
	"github.com/juju/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

// Renderer writes a page. HTML renders the named template; JSON writes data.
type Renderer interface {
	Render(ctx *gin.Context, status int, page string, data gin.H)
}

type HTMLRenderer struct{}

func (HTMLRenderer) Render(ctx *gin.Context, status int, page string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["viewer"] = middlewares.ViewerFrom(ctx)
	ctx.HTML(status, page, data)
}

type JSONRenderer struct{}

func (JSONRenderer) Render(ctx *gin.Context, status int, _ string, data gin.H) {
	ctx.JSON(status, data)
}

// NewRenderer picks the renderer for RENDER_MODE.
func NewRenderer(mode string) (Renderer, error) {
	switch mode {
	case "html":
		return HTMLRenderer{}, nil
	case "json":
		return JSONRenderer{}, nil
	}
	return nil, errors.NotValidf("render mode %q", mode)
}

func wantsJSON(ctx *gin.Context) bool {
	return strings.Contains(ctx.GetHeader("Accept"), "application/json")
}

// fail maps a service error onto a response. Validation errors re-present page
// with data and the field errors; an empty page falls back to the error page.
func (c *Controller) fail(ctx *gin.Context, err error, page string, data gin.H) {
	var fields services.FieldErrors
	switch {
	case errors.Is(err, errors.Unauthorized):
		if wantsJSON(ctx) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}
		ctx.Redirect(http.StatusFound, middlewares.LoginURL(ctx.Request.URL.RequestURI()))
	case errors.Is(err, errors.NotFound):
		c.Render.Render(ctx, http.StatusNotFound, "error.html", gin.H{"status": http.StatusNotFound, "message": "Page not found"})
	case errors.Is(err, errors.Forbidden):
		c.Render.Render(ctx, http.StatusForbidden, "error.html", gin.H{"status": http.StatusForbidden, "message": "You do not have permission to do that"})
	case errors.As(err, &fields) && page != "":
		if data == nil {
			data = gin.H{}
		}
		data["errors"] = fields
		c.Render.Render(ctx, http.StatusBadRequest, page, data)
	case errors.Is(err, errors.NotValid), errors.Is(err, errors.NotSupported):
		c.Render.Render(ctx, http.StatusBadRequest, "error.html", gin.H{"status": http.StatusBadRequest, "message": err.Error()})
	default:
		log.WithError(err).WithField("path", ctx.Request.URL.Path).Error("Request failed")
		c.Render.Render(ctx, http.StatusInternalServerError, "error.html", gin.H{"status": http.StatusInternalServerError, "message": msgInternalServerError})
	}
}

// NotFound renders the 404 page for unknown routes.
func (c *Controller) NotFound(ctx *gin.Context) {
	c.fail(ctx, errors.NotFoundf("page %s", ctx.Request.URL.Path), "", nil)
}

func idParam(ctx *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil {
		return 0, errors.NotFoundf("%s %q", name, ctx.Param(name))
	}
	return uint(id), nil
}

// safeRedirect returns target when it is a path on this site.
func safeRedirect(ctx *gin.Context, target string) (string, bool) {
	if target == "" {
		return "", false
	}
	u, err := url.Parse(target)
	if err != nil {
		return "", false
	}
	if u.Host != "" && u.Host != ctx.Request.Host {
		return "", false
	}
	if !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") {
		return "", false
	}
	return u.RequestURI(), true
}

// TemplateFuncs are the helpers available to HTML templates.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"date": formatDate,
		"stars": func(rating float64) string {
			return strconv.FormatFloat(rating, 'f', 1, 64)
		},
	}
}

func formatDate(v any) string {
	switch t := v.(type) {
	case time.Time:
		return t.Format("02.01.2006")
	case datatypes.Date:
		return time.Time(t).Format("02.01.2006")
	}
	return ""
}
