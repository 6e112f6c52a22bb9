package handler

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/waleedthermon/Doctracking/internal/repository"
	"github.com/waleedthermon/Doctracking/internal/service"
	"github.com/waleedthermon/Doctracking/internal/testutil"
)

// newTestEnv wires repositories, services and handlers over temp workbooks and
// registers the same API routes the server does.
func newTestEnv(t *testing.T) (*gin.Engine, *repository.Repositories) {
	t.Helper()

	repos, _ := testutil.SetupRepos(t)
	services := service.NewServices(repos)
	handlers := NewHandlers(services)

	r := testutil.SetupRouter()
	v1 := r.Group("/api/v1")
	{
		v1.GET("/team", handlers.Roster.List)
		v1.GET("/team/:name", handlers.Roster.Get)
		v1.GET("/drawings", handlers.Drawing.List)
		v1.POST("/drawings", handlers.Drawing.Create)
		v1.GET("/users/:name/drawings", handlers.Drawing.ListAssigned)
		v1.GET("/users/:name/notifications", handlers.Drawing.Notifications)
		v1.GET("/users/:name/drawings/export", handlers.Drawing.Export)
		v1.GET("/documents", handlers.Document.List)
		v1.POST("/documents/import", handlers.Document.Import)
		v1.GET("/documents/template", handlers.Document.Template)
		v1.GET("/dashboard/charts", handlers.Dashboard.Charts)
	}
	return r, repos
}
