package user

import (
	"testing"

	"tyjk-club-backend/internal/global/activitylog"
	"tyjk-club-backend/internal/global/jwt"
	"tyjk-club-backend/internal/global/logger"
	"tyjk-club-backend/internal/global/response"
	"tyjk-club-backend/internal/model"
	"tyjk-club-backend/test"
	"tyjk-club-backend/tools"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestModule(t *testing.T) *ModuleUser {
	gin.SetMode(gin.TestMode)
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	// 内存库绑定单个连接，避免连接池拿到不同的空库
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.UserProfile{}))
	return &ModuleUser{
		db:          db,
		activityLog: activitylog.New(100, nil),
	}
}

func init() {
	log = logger.New("User")
}

func TestSignUp(t *testing.T) {
	u := newTestModule(t)

	resp := test.DoRequest(t, u.SignUp, test.Request{Body: SignUpReq{
		Email:     "alice@example.com",
		Password:  "Passw0rd123",
		Name:      "Alice",
		StudentID: "20230001",
		Major:     "计算机科学",
	}})
	test.NoError(t, resp)

	var data struct {
		Token string     `json:"token"`
		User  model.User `json:"user"`
	}
	test.DecodeData(t, resp, &data)
	require.NotEmpty(t, data.Token)
	require.Equal(t, "alice@example.com", data.User.Email)
	require.Equal(t, model.RoleUser, data.User.Role)

	// 令牌可解析且指向新用户
	claims, valid := jwt.ParseToken(data.Token)
	require.True(t, valid)
	require.Equal(t, data.User.ID, claims.UserID)

	// 档案与用户在同一事务中创建
	var profile model.UserProfile
	require.NoError(t, u.db.Where("user_id = ?", data.User.ID).First(&profile).Error)
	require.Equal(t, "20230001", profile.StudentID)
	require.Equal(t, "计算机科学", profile.Major)

	// 密码以哈希存储
	var stored model.User
	require.NoError(t, u.db.First(&stored, data.User.ID).Error)
	require.NotEqual(t, "Passw0rd123", stored.Password)
	require.True(t, tools.PasswordCompare("Passw0rd123", stored.Password))
}

func TestSignUpNameDefaultsToEmail(t *testing.T) {
	u := newTestModule(t)

	resp := test.DoRequest(t, u.SignUp, test.Request{Body: SignUpReq{
		Email:    "bob@example.com",
		Password: "Passw0rd123",
	}})
	test.NoError(t, resp)

	var data struct {
		User model.User `json:"user"`
	}
	test.DecodeData(t, resp, &data)
	require.Equal(t, "bob@example.com", data.User.Name)
}

func TestSignUpDuplicateEmail(t *testing.T) {
	u := newTestModule(t)

	req := SignUpReq{Email: "alice@example.com", Password: "Passw0rd123"}
	test.NoError(t, test.DoRequest(t, u.SignUp, test.Request{Body: req}))

	resp := test.DoRequest(t, u.SignUp, test.Request{Body: req})
	require.Equal(t, response.ErrAlreadyExists.Code, resp.Code)

	// 重复注册不会多写一行
	var count int64
	require.NoError(t, u.db.Model(&model.User{}).Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestSignUpRollsBackOnProfileFailure(t *testing.T) {
	u := newTestModule(t)

	// 预置与下一个用户 ID 冲突的档案行，使事务内的档案写入失败
	require.NoError(t, u.db.Create(&model.UserProfile{UserID: 1, Name: "占位"}).Error)

	resp := test.DoRequest(t, u.SignUp, test.Request{Body: SignUpReq{
		Email:    "alice@example.com",
		Password: "Passw0rd123",
	}})
	require.Equal(t, response.ErrDatabase.Code, resp.Code)

	// 用户行随事务一并回滚
	var count int64
	require.NoError(t, u.db.Model(&model.User{}).Count(&count).Error)
	require.Equal(t, int64(0), count)
}

func TestSignUpWeakPassword(t *testing.T) {
	u := newTestModule(t)

	for _, password := range []string{"short1", "abcdefgh", "12345678"} {
		resp := test.DoRequest(t, u.SignUp, test.Request{Body: SignUpReq{
			Email:    "alice@example.com",
			Password: password,
		}})
		require.Equal(t, response.ErrInvalidRequest.Code, resp.Code, "password=%s", password)
	}

	var count int64
	require.NoError(t, u.db.Model(&model.User{}).Count(&count).Error)
	require.Equal(t, int64(0), count)
}

func TestSignUpInvalidEmail(t *testing.T) {
	u := newTestModule(t)

	resp := test.DoRequest(t, u.SignUp, test.Request{Body: SignUpReq{
		Email:    "not-an-email",
		Password: "Passw0rd123",
	}})
	require.Equal(t, response.ErrInvalidRequest.Code, resp.Code)
}

func TestSignIn(t *testing.T) {
	u := newTestModule(t)
	test.NoError(t, test.DoRequest(t, u.SignUp, test.Request{Body: SignUpReq{
		Email:    "alice@example.com",
		Password: "Passw0rd123",
	}}))

	resp := test.DoRequest(t, u.SignIn, test.Request{Body: SignInReq{
		Email:    "alice@example.com",
		Password: "Passw0rd123",
	}})
	test.NoError(t, resp)

	var data struct {
		Token string `json:"token"`
	}
	test.DecodeData(t, resp, &data)
	require.NotEmpty(t, data.Token)
}

func TestSignInWrongCredentials(t *testing.T) {
	u := newTestModule(t)
	test.NoError(t, test.DoRequest(t, u.SignUp, test.Request{Body: SignUpReq{
		Email:    "alice@example.com",
		Password: "Passw0rd123",
	}}))

	// 密码错误与邮箱不存在返回完全相同的错误，避免账号枚举
	wrongPassword := test.DoRequest(t, u.SignIn, test.Request{Body: SignInReq{
		Email:    "alice@example.com",
		Password: "Wrong0000000",
	}})
	unknownEmail := test.DoRequest(t, u.SignIn, test.Request{Body: SignInReq{
		Email:    "nobody@example.com",
		Password: "Passw0rd123",
	}})

	test.ErrorEqual(t, response.ErrInvalidCredentials, wrongPassword)
	test.ErrorEqual(t, response.ErrInvalidCredentials, unknownEmail)
	require.Equal(t, wrongPassword.Code, unknownEmail.Code)
	require.Equal(t, wrongPassword.Msg, unknownEmail.Msg)
}

func TestMe(t *testing.T) {
	u := newTestModule(t)
	signUp := test.DoRequest(t, u.SignUp, test.Request{Body: SignUpReq{
		Email:     "alice@example.com",
		Password:  "Passw0rd123",
		Name:      "Alice",
		StudentID: "20230001",
	}})
	test.NoError(t, signUp)

	var created struct {
		User model.User `json:"user"`
	}
	test.DecodeData(t, signUp, &created)

	resp := test.DoRequest(t, u.Me, test.Request{
		Method: "GET",
		Payload: &jwt.Payload{
			UserID: created.User.ID,
			Email:  created.User.Email,
			Role:   created.User.Role,
		},
	})
	test.NoError(t, resp)

	var data struct {
		User    model.User         `json:"user"`
		Profile *model.UserProfile `json:"profile"`
	}
	test.DecodeData(t, resp, &data)
	require.Equal(t, "alice@example.com", data.User.Email)
	require.NotNil(t, data.Profile)
	require.Equal(t, "20230001", data.Profile.StudentID)
}

func TestMeProfileMissing(t *testing.T) {
	u := newTestModule(t)

	// 直接写用户不带档案，profile 返回 null
	user := model.User{Email: "raw@example.com", Password: "x", Name: "raw", Role: model.RoleUser}
	require.NoError(t, u.db.Create(&user).Error)

	resp := test.DoRequest(t, u.Me, test.Request{
		Method:  "GET",
		Payload: &jwt.Payload{UserID: user.ID, Email: user.Email, Role: user.Role},
	})
	test.NoError(t, resp)

	var data struct {
		Profile *model.UserProfile `json:"profile"`
	}
	test.DecodeData(t, resp, &data)
	require.Nil(t, data.Profile)
}

func TestValidatePasswordStrength(t *testing.T) {
	require.NoError(t, validatePasswordStrength("Passw0rd"))
	require.Error(t, validatePasswordStrength("Pa0"))
	require.Error(t, validatePasswordStrength("password"))
	require.Error(t, validatePasswordStrength("12345678"))
}
