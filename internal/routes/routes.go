package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/cafe-api/internal/config"
	"github.com/BruksfildServices01/cafe-api/internal/handlers"
	"github.com/BruksfildServices01/cafe-api/internal/middleware"
	ucCafe "github.com/BruksfildServices01/cafe-api/internal/usecase/cafe"
)

// NewRouter builds the engine with the global middleware stack and every
// cafe route.
func NewRouter(cfg *config.Config, svc *ucCafe.Service, log *zap.Logger) *gin.Engine {
	r := gin.New()

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.AccessLog(log),
		middleware.CORSMiddleware(cfg.AllowedOrigins),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	RegisterRoutes(r, svc, log)
	return r
}

func RegisterRoutes(r *gin.Engine, svc *ucCafe.Service, log *zap.Logger) {
	cafeHandler := handlers.NewCafeHandler(svc, log)

	// ------------------------------
	// READ
	// ------------------------------
	r.GET("/random", cafeHandler.Random)
	r.GET("/all", cafeHandler.All)
	r.GET("/search", cafeHandler.Search)

	// ------------------------------
	// CREATE
	// ------------------------------
	r.POST("/add", cafeHandler.Add)
	r.POST("/add/excel", cafeHandler.Import)

	// ------------------------------
	// UPDATE
	// ------------------------------
	r.PUT("/update/:cafe_id", cafeHandler.Update)
	r.PATCH("/update-price/:cafe_id", cafeHandler.UpdatePrice)

	// ------------------------------
	// DELETE
	// ------------------------------
	r.DELETE("/report-closed/:cafe_id", cafeHandler.ReportClosed)
}
