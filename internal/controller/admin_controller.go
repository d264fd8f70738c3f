package controller

import (
	"net/http"

	"adaptive_learning_backend/internal/service"
	"adaptive_learning_backend/internal/util"
	"adaptive_learning_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AdminController struct {
	AdminService *service.AdminService
}

func NewAdminController(adminService *service.AdminService) *AdminController {
	return &AdminController{AdminService: adminService}
}

// AdminDashboard 管理员页面：全量学生与内容清单
func (c *AdminController) AdminDashboard(ctx *gin.Context) {
	overview, err := c.AdminService.Overview()
	if err != nil {
		logger.Log.Error("admin overview failed", zap.Error(err))
		ctx.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	ctx.HTML(http.StatusOK, "admin.html", gin.H{
		"Students": overview.Students,
		"Content":  overview.Content,
	})
}

func (c *AdminController) ListStudents(ctx *gin.Context) {
	overview, err := c.AdminService.Overview()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, overview.Students)
}

func (c *AdminController) ListContent(ctx *gin.Context) {
	overview, err := c.AdminService.Overview()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, overview.Content)
}
