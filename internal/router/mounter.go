// Package router mounts the catalog modules under the versioned API prefix.
package router

import (
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/joefazee/directory-admin/internal/deps"
)

const APIPrefix = "/api/v1"

// Module registers one catalog module's routes.
type Module func(*gin.RouterGroup, *deps.Container)

type Mounter struct {
	container *deps.Container
}

func NewMounter(container *deps.Container) *Mounter {
	return &Mounter{container: container}
}

// Public mounts under APIPrefix. The dashboard's own session layer sits in
// front, so there is no authenticated variant.
func (m *Mounter) Public(engine *gin.Engine) *RouteGroup {
	return &RouteGroup{engine: engine, group: engine.Group(APIPrefix), container: m.container}
}

type RouteGroup struct {
	engine    *gin.Engine
	group     *gin.RouterGroup
	container *deps.Container
}

func (rg *RouteGroup) Mount(modules ...Module) *RouteGroup {
	for _, mount := range modules {
		mount(rg.group, rg.container)
	}
	return rg
}

func (rg *RouteGroup) Group(path string) *RouteGroup {
	return &RouteGroup{engine: rg.engine, group: rg.group.Group(path), container: rg.container}
}

// Use attaches middleware to every route mounted after the call.
func (rg *RouteGroup) Use(middleware ...gin.HandlerFunc) *RouteGroup {
	rg.group.Use(middleware...)
	return rg
}

// Handle mounts a single handler outside any module.
func (rg *RouteGroup) Handle(method, path string, handler gin.HandlerFunc) *RouteGroup {
	rg.group.Handle(method, path, handler)
	return rg
}

// Routes lists "METHOD path" for everything mounted below the group, sorted
// by path.
func (rg *RouteGroup) Routes() []string {
	prefix := rg.group.BasePath()
	var out []string
	for _, r := range rg.engine.Routes() {
		if strings.HasPrefix(r.Path, prefix) {
			out = append(out, r.Method+" "+r.Path)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		pi, pj := out[i][strings.IndexByte(out[i], ' ')+1:], out[j][strings.IndexByte(out[j], ' ')+1:]
		if pi != pj {
			return pi < pj
		}
		return out[i] < out[j]
	})
	return out
}
