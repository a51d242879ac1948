package routes

import (
	"pactle_quotations/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotations = "/quotations"
	PathAuth       = "/auth"
)

func addQuotationRoutes(rg *gin.RouterGroup, quotationHandler *handlers.QuotationHandler, commentHandler *handlers.CommentHandler) {
	quotations := rg.Group(PathQuotations)
	{
		quotations.GET("", quotationHandler.GetQuotations)
		quotations.GET("/:id", quotationHandler.GetQuotation)
		quotations.GET("/:id/actions", quotationHandler.GetQuotationActions)
		quotations.PATCH("/:id", quotationHandler.UpdateQuotation)

		quotations.POST("/:id/comments", commentHandler.AddComment)
		quotations.POST("/:id/comments/:comment_id/replies", commentHandler.AddReply)

		quotations.GET("/:id/draft", commentHandler.GetDraft)
		quotations.PUT("/:id/draft", commentHandler.SaveDraft)
	}
}

func addAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/signup", authHandler.SignUp)
		auth.POST("/signin", authHandler.SignIn)
		auth.POST("/signout", authHandler.SignOut)
		auth.POST("/forgot-password", authHandler.ForgotPassword)
		auth.POST("/switch-role", authHandler.SwitchRole)
		auth.GET("/me", authHandler.Me)
	}
}
