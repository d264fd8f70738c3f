package controller

import (
	"errors"
	"net/http"
	"strconv"

	"adaptive_learning_backend/internal/service"
	"adaptive_learning_backend/internal/util"
	"adaptive_learning_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DashboardController struct {
	DashboardService *service.DashboardService
}

func NewDashboardController(dashboardService *service.DashboardService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService}
}

func (c *DashboardController) Index(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "index.html", nil)
}

// StudentDashboard 渲染学生面板。未知学生返回 404 文本，不产生任何写入。
func (c *DashboardController) StudentDashboard(ctx *gin.Context) {
	studentID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.String(http.StatusNotFound, "Student not found")
		return
	}

	dashboard, err := c.DashboardService.ForStudent(ctx.Request.Context(), uint(studentID))
	if err != nil {
		if errors.Is(err, util.ErrStudentNotFound) {
			ctx.String(http.StatusNotFound, "Student not found")
			return
		}
		logger.Log.Error("dashboard composition failed", zap.Error(err))
		ctx.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	ctx.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Student":   dashboard.Student,
		"Dashboard": dashboard,
	})
}
