package httpapi

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
	"github.com/rs/cors"

	"github.com/arclab-robotics/gridsearch/pkg/httpapi/controllers"
	"github.com/arclab-robotics/gridsearch/pkg/httpapi/routerhelper"
)

// NewRouter builds the complete HTTP handler: the route table wired to
// svc through a PlanningController, a WebSocket diagnostics stream, and
// the usual middleware chain (recover, real-ip, request logging, CORS,
// and optionally per-IP rate limiting).
func NewRouter(log *zap.Logger, svc controllers.PlanningService, useRateLimit bool) http.Handler {
	router := httprouter.New()

	ctrl := controllers.NewPlanningController(svc, log)

	v1 := routerhelper.NewRouteGroup(router, "/v1")
	v1.POST("/plan", ctrl.Plan)
	v1.POST("/plan/batch", ctrl.PlanBatch)
	sessions := v1.Group("/sessions")
	sessions.POST("", ctrl.CreateSession)
	sessions.POST("/:id/robot-loc", ctrl.UpdateRobotLoc)
	sessions.POST("/:id/map-change", ctrl.ApplyMapChange)
	sessions.GET("/:id/stream", streamHandler(svc, log))

	router.GET("/healthz", controllers.Healthz)
	router.GET("/swagger/*any", swaggerHandle)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	})

	mwChain := []alice.Constructor{
		corsHandler.Handler,
		recoverPanic(log),
		RealIP,
		Heartbeat("/healthz"),
		Logger(log),
		Labels,
		EnforceJSONHandler,
	}
	if useRateLimit {
		mwChain = append(mwChain, Limit(10, 20))
	}

	return alice.New(mwChain...).Then(router)
}

func swaggerHandle(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	httpSwagger.WrapHandler(w, r)
}
