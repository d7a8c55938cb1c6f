package routes

import (
	"net/http"

	"github.com/Shahriar-Utchas/TrackNFresh-server/controllers"
	"github.com/Shahriar-Utchas/TrackNFresh-server/middlewares"
	"github.com/Shahriar-Utchas/TrackNFresh-server/services"
	"github.com/Shahriar-Utchas/TrackNFresh-server/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func SetupRouter(db *mongo.Database) *gin.Engine {
	hub := services.NewRealtimeHub()
	bus := services.NewEventBus(hub)
	foodSvc := services.NewFoodService(db.Collection("FoodItems"), bus)
	userSvc := services.NewUserService(db.Collection("Users"))

	authCtl := controllers.NewAuthController(userSvc)
	foodCtl := controllers.NewFoodController(foodSvc)
	notifyCtl := controllers.NewNotificationController(foodSvc)
	rtCtl := controllers.NewRealtimeController(hub)

	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Welcome to TrackNFresh API!")
	})

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
	}

	// Open food routes
	food := r.Group("/food")
	{
		food.GET("/all", foodCtl.All)
		food.GET("/nearest-expiring", foodCtl.NearestExpiring)
		food.GET("/expired", foodCtl.Expired)
		food.GET("/:id", foodCtl.GetByID)
	}

	// Mutating food routes require a verified identity
	guarded := r.Group("/food")
	guarded.Use(middlewares.AuthMiddleware(utils.VerifyJWT))
	{
		guarded.POST("/add", foodCtl.Add)
		guarded.GET("/my-items", foodCtl.MyItems)
		guarded.PUT("/update/:id", foodCtl.Update)
		guarded.PUT("/update/note/:id", foodCtl.AddNote)
		guarded.DELETE("/:id/note", foodCtl.RemoveNote)
		guarded.DELETE("/delete/:id", foodCtl.Delete)
		guarded.POST("/notify-expiring", notifyCtl.NotifyExpiring)
		guarded.GET("/live", rtCtl.LiveWS)
	}

	return r
}
