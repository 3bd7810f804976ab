package routes

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rivnefurniture-lab/kurevin-art/config"
	adminapi "github.com/rivnefurniture-lab/kurevin-art/internal/api/admin"
	authapi "github.com/rivnefurniture-lab/kurevin-art/internal/api/auth"
	siteapi "github.com/rivnefurniture-lab/kurevin-art/internal/api/site"
	"github.com/rivnefurniture-lab/kurevin-art/internal/api/view"
	"github.com/rivnefurniture-lab/kurevin-art/internal/app/http/middleware"
	"github.com/rivnefurniture-lab/kurevin-art/internal/infra/imagestore"
	"github.com/rivnefurniture-lab/kurevin-art/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const sessionName = "kurevin_session"

// Setup builds the engine: middleware, templates, static files and routes.
// Handlers read the database through database.DB.
func Setup(cfg *config.Config) (*gin.Engine, error) {
	images, err := imagestore.New(cfg.UploadDir)
	if err != nil {
		return nil, err
	}
	renderer, err := web.NewRenderer()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.HTMLRender = renderer
	r.MaxMultipartMemory = 8 << 20

	r.Use(middleware.RequestLogger(), middleware.Metrics())
	r.Use(gin.CustomRecovery(func(c *gin.Context, rec any) {
		view.ServerError(c, fmt.Errorf("panic: %v", rec))
	}))

	if cfg.CORSOrigin != "" {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     []string{cfg.CORSOrigin},
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		Secure:   cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(sessionName, store))
	r.Use(middleware.LoadVisitor())
	r.Use(view.SiteInfo(view.Contact{
		Email:    cfg.ContactEmail,
		Phone:    cfg.ContactPhone,
		Telegram: cfg.ContactTelegram,
	}))

	r.StaticFS("/static/css", web.Static())
	r.Static(view.ImagePrefix, images.Dir)

	RegisterRoutes(r, cfg, images)
	r.NoRoute(view.NotFound)
	return r, nil
}

func RegisterRoutes(r *gin.Engine, cfg *config.Config, images *imagestore.Store) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	public := r.Group("/")
	public.Use(middleware.LimitBody(cfg.MaxUploadBytes()), middleware.SanitizeFormInput())

	public.GET("/", siteapi.Home)
	public.GET("/gallery", siteapi.Gallery)
	public.GET("/painting/:id", siteapi.Painting)
	public.GET("/about", siteapi.About)
	public.GET("/contact", siteapi.ContactPage)
	public.POST("/contact", siteapi.SubmitContact)
	public.GET("/set-lang/:code", siteapi.SetLang)

	r.GET("/studio/login", authapi.LoginPage)
	r.POST("/studio/login", middleware.SanitizeFormInput("password"), authapi.Login)
	r.GET("/studio/logout", authapi.Logout)

	studio := r.Group("/studio")
	studio.Use(middleware.AuthRequired())
	studio.Use(middleware.LimitBody(cfg.MaxUploadBytes()), middleware.SanitizeFormInput())

	studio.GET("", adminapi.Dashboard)
	studio.GET("/paintings", adminapi.ListPaintings)
	studio.GET("/paintings/add", adminapi.NewPainting)
	studio.POST("/paintings/add", adminapi.CreatePainting(images))
	studio.GET("/paintings/edit/:id", adminapi.EditPainting)
	studio.POST("/paintings/edit/:id", adminapi.UpdatePainting(images))
	studio.POST("/paintings/delete/:id", adminapi.DeletePainting)

	studio.GET("/messages", adminapi.ListMessages)
	studio.POST("/messages/mark-read/:id", adminapi.MarkMessageRead)
	studio.POST("/messages/delete/:id", adminapi.DeleteMessage)
}
