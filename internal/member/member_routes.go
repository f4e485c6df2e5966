package member

import (
	"github.com/clubhaus-app/clubhaus/internal/access"
	mw "github.com/clubhaus-app/clubhaus/internal/middleware"
	"github.com/clubhaus-app/clubhaus/pkg/rmiddleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterMemberRoutes sets up all member-related routes
func RegisterMemberRoutes(router *gin.RouterGroup, db *gorm.DB, gate *access.Gate, jwtSecret string) {
	memberRepo := NewMemberRepository(db)
	memberController := NewMemberController(memberRepo)

	members := router.Group("/members")
	members.Use(mw.AuthMiddleware(jwtSecret))
	members.Use(rmiddleware.ModuleMiddleware(gate, access.ModuleMembers))
	{
		members.GET("", memberController.GetAllMembers)
		members.GET("/:member_id", memberController.GetMemberByID)
		members.POST("", memberController.CreateMember)
		members.PUT("/:member_id", memberController.UpdateMember)
		members.DELETE("/:member_id", memberController.DeleteMember)
	}
}
