package router

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/admissions-crm-api/internal/handler"
	"github.com/noah-isme/admissions-crm-api/internal/middleware"
	"github.com/noah-isme/admissions-crm-api/internal/models"
	"github.com/noah-isme/admissions-crm-api/internal/service"
	"github.com/noah-isme/admissions-crm-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/admissions-crm-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/admissions-crm-api/pkg/middleware/requestid"
)

// Options carries everything the HTTP surface needs.
type Options struct {
	APIPrefix      string
	AllowedOrigins []string
	EnableDocs     bool

	Logger  *zap.Logger
	Metrics *service.MetricsService
	Tokens  middleware.TokenValidator
	Roles   middleware.RoleResolver

	Students *handler.StudentHandler
	Tasks    *handler.TaskHandler
	Notes    *handler.NoteHandler
	Activity *handler.ActivityHandler
	Users    *handler.UserHandler
	Config   *handler.ConfigurationHandler
	Health   *handler.MetricsHandler
}

// New builds the gin engine with the shared middleware chain and every route.
func New(opts Options) *gin.Engine {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(log))
	r.Use(corsmiddleware.New(opts.AllowedOrigins))
	r.Use(middleware.Metrics(opts.Metrics))

	r.GET("/health", opts.Health.Health)
	r.GET("/ready", opts.Health.Ready)
	r.GET("/metrics", opts.Health.Prometheus)
	if opts.EnableDocs {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	prefix := "/" + strings.Trim(opts.APIPrefix, "/")
	if prefix == "/" {
		prefix = ""
	}
	api := r.Group(prefix)
	api.Use(middleware.Auth(opts.Tokens))

	students := api.Group("/students")
	students.GET("/search", opts.Students.Search)
	students.GET("/stats", opts.Students.Stats)
	students.GET("/export", middleware.Audit(log, models.AuditStudentsExport), opts.Students.Export)
	students.GET("/:id", opts.Students.Get)

	tasks := api.Group("/tasks")
	tasks.GET("", opts.Tasks.List)
	tasks.POST("", middleware.Audit(log, models.AuditTaskCreate), opts.Tasks.Create)
	tasks.PATCH("/:id", middleware.Audit(log, models.AuditTaskUpdateStatus), opts.Tasks.UpdateStatus)

	notes := api.Group("/notes")
	notes.GET("", opts.Notes.List)
	notes.POST("", middleware.Audit(log, models.AuditNoteCreate), opts.Notes.Create)
	notes.PATCH("/:id", middleware.Audit(log, models.AuditNoteUpdate), opts.Notes.Update)
	notes.DELETE("/:id", middleware.Audit(log, models.AuditNoteDelete), opts.Notes.Delete)

	communications := api.Group("/communications")
	communications.GET("", opts.Activity.ListCommunications)
	communications.POST("", middleware.Audit(log, models.AuditCommunicationCreate), opts.Activity.CreateCommunication)

	interactions := api.Group("/interactions")
	interactions.GET("", opts.Activity.ListInteractions)
	interactions.POST("", middleware.Audit(log, models.AuditInteractionCreate), opts.Activity.CreateInteraction)

	users := api.Group("/users")
	users.POST("", middleware.Audit(log, models.AuditUserRegister), opts.Users.Register)
	users.GET("/me", opts.Users.Me)
	users.GET("", opts.Users.List)

	config := api.Group("/config")
	config.GET("", opts.Config.Get)
	config.PUT("", middleware.RequireRoles(opts.Roles, models.RoleAdmin), middleware.Audit(log, models.AuditConfigUpdate), opts.Config.Update)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "code": "NOT_FOUND", "message": "route not found"})
	})

	return r
}
