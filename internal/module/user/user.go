package user

import (
	"strings"

	"tyjk-club-backend/internal/global/activitylog"
	"tyjk-club-backend/internal/global/database"
	"tyjk-club-backend/internal/global/jwt"
	"tyjk-club-backend/internal/global/response"
	"tyjk-club-backend/internal/model"
	"tyjk-club-backend/tools"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// SignUpReq 定义注册请求的结构体，email 和 password 必填，其余进入用户档案
type SignUpReq struct {
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required"`
	Name         string `json:"name"`
	StudentID    string `json:"student_id"`
	Major        string `json:"major"`
	Grade        string `json:"grade"`
	Phone        string `json:"phone"`
	Birthday     string `json:"birthday"`
	QQ           string `json:"qq"`
	Bio          string `json:"bio"`
	AvatarURL    string `json:"avatar_url"`
	Introduction string `json:"introduction"`
}

// SignInReq 定义登录请求的结构体
type SignInReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SignUp 处理用户注册请求
// 用户与档案在同一事务中创建，档案写入失败时整体回滚
func (u *ModuleUser) SignUp(c *gin.Context) {
	var req SignUpReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("绑定注册请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	// 验证密码强度
	if err := validatePasswordStrength(req.Password); err != nil {
		log.Warn("密码强度验证失败", "error", err, "email", req.Email)
		response.Fail(c, response.ErrInvalidRequest.WithTips(err.Error()))
		return
	}

	ctx, cancel := database.Context(c.Request.Context())
	defer cancel()
	db := u.db.WithContext(ctx)

	// 检查邮箱是否已注册
	var existing model.User
	err := db.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		log.Warn("邮箱已注册", "email", req.Email)
		response.Fail(c, response.ErrAlreadyExists.WithTips("该邮箱已注册"))
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error("数据库查询失败", "error", err, "email", req.Email)
		response.Fail(c, response.FromDBError(err))
		return
	}

	name := req.Name
	if name == "" {
		name = req.Email
	}
	user := model.User{
		Email:    req.Email,
		Password: tools.PasswordEncrypt(req.Password),
		Name:     name,
		Role:     model.RoleUser,
	}

	// 用户与档案原子创建
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		profile := model.UserProfile{
			UserID:       user.ID,
			Name:         name,
			StudentID:    req.StudentID,
			Major:        req.Major,
			Grade:        req.Grade,
			Phone:        req.Phone,
			Birthday:     req.Birthday,
			QQ:           req.QQ,
			Bio:          req.Bio,
			AvatarURL:    req.AvatarURL,
			Introduction: req.Introduction,
		}
		return tx.Create(&profile).Error
	})
	if err != nil {
		log.Error("创建用户失败", "error", err, "email", req.Email)
		response.Fail(c, response.FromDBError(err))
		return
	}

	log.Info("用户注册成功", "user_id", user.ID, "email", user.Email)
	u.activityLog.Record("用户", "用户注册成功", activitylog.LevelSuccess, map[string]any{
		"user_id": user.ID,
		"email":   user.Email,
	})

	response.Success(c, gin.H{
		"token": jwt.CreateToken(jwt.Payload{
			UserID: user.ID,
			Email:  user.Email,
			Role:   user.Role,
		}),
		"user": user,
	})
}

// SignIn 处理用户登录请求
// 用户不存在与密码错误返回同一个错误，避免账号枚举
func (u *ModuleUser) SignIn(c *gin.Context) {
	var req SignInReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("绑定登录请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	ctx, cancel := database.Context(c.Request.Context())
	defer cancel()

	var user model.User
	err := u.db.WithContext(ctx).Where("email = ?", req.Email).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		log.Warn("登录凭证校验失败", "email", req.Email)
		response.Fail(c, response.ErrInvalidCredentials)
		return
	case err != nil:
		log.Error("数据库查询失败", "error", err, "email", req.Email)
		response.Fail(c, response.FromDBError(err))
		return
	}

	if !tools.PasswordCompare(req.Password, user.Password) {
		log.Warn("登录凭证校验失败", "email", req.Email)
		response.Fail(c, response.ErrInvalidCredentials)
		return
	}

	log.Info("用户登录成功", "user_id", user.ID, "email", user.Email)

	response.Success(c, gin.H{
		"token": jwt.CreateToken(jwt.Payload{
			UserID: user.ID,
			Email:  user.Email,
			Role:   user.Role,
		}),
		"user": user,
	})
}

// Me 返回当前用户及其档案，档案不存在时为 null
func (u *ModuleUser) Me(c *gin.Context) {
	payload, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	ctx, cancel := database.Context(c.Request.Context())
	defer cancel()
	db := u.db.WithContext(ctx)

	var user model.User
	if err := db.First(&user, payload.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("用户不存在"))
			return
		}
		log.Error("查询用户失败", "error", err, "user_id", payload.UserID)
		response.Fail(c, response.FromDBError(err))
		return
	}

	// 档案允许缺失，LEFT JOIN 语义
	var profile *model.UserProfile
	var p model.UserProfile
	err := db.Where("user_id = ?", user.ID).First(&p).Error
	switch {
	case err == nil:
		profile = &p
	case !errors.Is(err, gorm.ErrRecordNotFound):
		log.Error("查询用户档案失败", "error", err, "user_id", user.ID)
		response.Fail(c, response.FromDBError(err))
		return
	}

	response.Success(c, gin.H{
		"user":    user,
		"profile": profile,
	})
}

// validatePasswordStrength 验证密码强度
func validatePasswordStrength(password string) error {
	if len(password) < 8 {
		return errors.New("密码长度必须至少8字符")
	}

	hasLetter := false
	hasDigit := false
	for _, char := range password {
		switch {
		case strings.ContainsRune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ", char):
			hasLetter = true
		case strings.ContainsRune("0123456789", char):
			hasDigit = true
		}
	}

	if !hasLetter {
		return errors.New("密码必须包含至少一个字母")
	}
	if !hasDigit {
		return errors.New("密码必须包含至少一个数字")
	}
	return nil
}
