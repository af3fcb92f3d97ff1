package handlers

import (
	"hospital_records/internal/logger"
	"hospital_records/internal/service"

	_ "hospital_records/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Options tunes the HTTP surface.
type Options struct {
	// AuthRequired guards record endpoints behind a bearer token from /auth/login.
	AuthRequired bool
	// AllowedOrigins lists CORS origins; "*" allows any, empty disables CORS.
	AllowedOrigins []string
}

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	opts     Options
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, opts Options) *Handler {
	return &Handler{services: services, log: log, opts: opts}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogger)
	if cfg, ok := corsConfig(h.opts.AllowedOrigins); ok {
		router.Use(cors.New(cfg))
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", h.health)

	// Live summary feed; carries counts only.
	router.GET("/ws", h.wsConnect)

	h.registerAuthRoutes(router)
	h.registerRecordRoutes(router)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", h.login)
	}
}

func (h *Handler) registerRecordRoutes(r *gin.Engine) {
	var guards []gin.HandlerFunc
	if h.opts.AuthRequired {
		guards = append(guards, h.userIdMiddleware)
	}
	api := r.Group("", guards...)
	{
		h.registerDoctorRoutes(api)
		h.registerPatientRoutes(api)
		api.GET("/summary", h.getSummary)
	}
}

func (h *Handler) registerDoctorRoutes(api *gin.RouterGroup) {
	doctors := api.Group("/doctors")
	{
		doctors.POST("/", h.createDoctor)
		doctors.GET("/", h.listDoctors)
		doctors.GET("/:id", h.getDoctor)
		doctors.PUT("/:id", h.updateDoctor)
		doctors.DELETE("/:id", h.deleteDoctor)
	}
}

func (h *Handler) registerPatientRoutes(api *gin.RouterGroup) {
	patients := api.Group("/patients")
	{
		patients.POST("/", h.createPatient)
		patients.GET("/", h.listPatients)
		patients.GET("/:id", h.getPatient)
		patients.PUT("/:id", h.updatePatient)
		patients.DELETE("/:id", h.deletePatient)
	}
}

func corsConfig(origins []string) (cors.Config, bool) {
	if len(origins) == 0 {
		return cors.Config{}, false
	}
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization", requestIDHeader},
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg, true
		}
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg, true
}
