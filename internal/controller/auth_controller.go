package controller

import (
	"errors"
	"fmt"
	"net/http"

	"adaptive_learning_backend/internal/middleware"
	"adaptive_learning_backend/internal/service"
	"adaptive_learning_backend/internal/util"
	"adaptive_learning_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

func (c *AuthController) ShowLogin(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "login.html", nil)
}

// Login 表单登录。未知用户名建号后视为已认证；密码不匹配返回 403 文本。
// 成功时设置会话 cookie 并 302 到学生面板或管理员视图。
func (c *AuthController) Login(ctx *gin.Context) {
	username := ctx.PostForm("username")
	password := ctx.PostForm("password")

	result, err := c.AuthService.Login(username, password)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrMissingCredentials):
			ctx.String(http.StatusBadRequest, "Missing username or password")
		case errors.Is(err, util.ErrIncorrectPassword):
			ctx.String(http.StatusForbidden, "Incorrect password")
		default:
			logger.Log.Error("login failed", zap.Error(err))
			ctx.String(http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	if result.Token != "" {
		ctx.SetCookie(middleware.AuthTokenCookie, result.Token, 0, "/", "", false, true)
	}

	if result.AdminView {
		ctx.Redirect(http.StatusFound, "/admin")
		return
	}
	ctx.Redirect(http.StatusFound, fmt.Sprintf("/dashboard/%d", result.Student.ID))
}

// GetProfile 返回令牌对应的学生
func (c *AuthController) GetProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	student, err := c.AuthService.GetStudent(claims.StudentID)
	if err != nil {
		if errors.Is(err, util.ErrStudentNotFound) {
			util.Error(ctx, http.StatusNotFound, "Student not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, student)
}
