package routes

import (
	"github.com/Om-Rawte/AIMenuAssistant/configs"
	"github.com/Om-Rawte/AIMenuAssistant/controllers"
	"github.com/Om-Rawte/AIMenuAssistant/middlewares"
	"github.com/Om-Rawte/AIMenuAssistant/repository"
	"github.com/Om-Rawte/AIMenuAssistant/services"
	"github.com/Om-Rawte/AIMenuAssistant/ws"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	confirmRepo := repository.NewConfirmationRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	tableRepo := repository.NewTableRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)

	// Services
	notifier := services.NewTableNotifier()
	orderSvc := services.NewOrderService(db, orderRepo, notifier)
	groupSvc := services.NewGroupCartService(confirmRepo, menuRepo, orderSvc, notifier)
	aiSvc := services.NewAIService(cfg)
	menuSvc := services.NewMenuService(menuRepo, aiSvc)
	sessionSvc := services.NewSessionService(cfg, tableRepo, reservationRepo, groupSvc)
	feedbackSvc := services.NewFeedbackService(feedbackRepo)

	// Controllers
	sessionCtrl := controllers.NewSessionController(sessionSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	groupCtrl := controllers.NewGroupCartController(groupSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	assistantCtrl := controllers.NewAssistantController(aiSvc, menuSvc)
	feedbackCtrl := controllers.NewFeedbackController(feedbackSvc)

	// Realtime feed
	hub := ws.NewTableHub(notifier, cfg.JWTSecret)
	go hub.Run()
	r.GET("/ws/tables/:id", hub.HandleWebSocket)

	// Public
	r.POST("/session/enter", sessionCtrl.Enter)
	r.GET("/menu", menuCtrl.List)

	// Kitchen display (behind the venue network in scope)
	r.PATCH("/orders/:id/items/:itemId/status", orderCtrl.UpdateItemStatus)

	// Table session
	s := r.Group("/", middlewares.SessionMiddleware(cfg.JWTSecret))
	{
		s.POST("/group/items", groupCtrl.AddItem)
		s.POST("/group/ready", groupCtrl.Ready)
		s.GET("/group/status", groupCtrl.Status)
		s.POST("/group/leave", groupCtrl.Leave)

		s.GET("/orders/:id/status", orderCtrl.Status)

		s.POST("/assistant/chat", assistantCtrl.Chat)
		s.GET("/assistant/recommendations", assistantCtrl.Recommendations)

		s.POST("/feedback", feedbackCtrl.Submit)
	}
}
