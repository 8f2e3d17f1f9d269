package project

import (
	"net/url"
	"testing"

	"tyjk-club-backend/internal/global/activitylog"
	"tyjk-club-backend/internal/global/jwt"
	"tyjk-club-backend/internal/global/logger"
	"tyjk-club-backend/internal/global/response"
	"tyjk-club-backend/internal/model"
	"tyjk-club-backend/test"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestModule(t *testing.T) *ModuleProject {
	gin.SetMode(gin.TestMode)
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	// 内存库绑定单个连接，避免连接池拿到不同的空库
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.Project{}))
	return &ModuleProject{
		db:          db,
		activityLog: activitylog.New(100, nil),
	}
}

func init() {
	log = logger.New("Project")
}

func create(t *testing.T, p *ModuleProject, userID uint, name string) {
	resp := test.DoRequest(t, p.Create, test.Request{
		Payload: &jwt.Payload{UserID: userID, Email: "owner@example.com", Role: model.RoleUser},
		Body: CreateReq{
			Name:     name,
			Category: "Web",
		},
	})
	test.NoError(t, resp)
}

func TestCreate(t *testing.T) {
	p := newTestModule(t)

	resp := test.DoRequest(t, p.Create, test.Request{
		Payload: &jwt.Payload{UserID: 7, Email: "owner@example.com", Role: model.RoleUser},
		Body: CreateReq{
			Name:        "社团官网",
			Description: "社团对外展示站点",
			Category:    "Web",
			ImageURL:    "/uploads/projects/cover.png",
			DocURL:      "/uploads/projects/doc.pdf",
		},
	})
	test.NoError(t, resp)

	var project model.Project
	require.NoError(t, p.db.First(&project).Error)
	require.Equal(t, "社团官网", project.Name)
	// 所有者取自令牌而非请求体
	require.Equal(t, uint(7), project.OwnerID)
}

func TestCreateMissingFields(t *testing.T) {
	p := newTestModule(t)

	resp := test.DoRequest(t, p.Create, test.Request{
		Payload: &jwt.Payload{UserID: 1, Role: model.RoleUser},
		Body:    map[string]any{"description": "没有名称和分类"},
	})
	require.Equal(t, response.ErrInvalidRequest.Code, resp.Code)

	var count int64
	require.NoError(t, p.db.Model(&model.Project{}).Count(&count).Error)
	require.Equal(t, int64(0), count)
}

func TestListFilterByOwner(t *testing.T) {
	p := newTestModule(t)
	create(t, p, 1, "项目A")
	create(t, p, 1, "项目B")
	create(t, p, 2, "项目C")

	resp := test.DoRequest(t, p.List, test.Request{
		Method: "GET",
		Query:  url.Values{"user_id": {"1"}},
	})
	test.NoError(t, resp)

	var projects []model.Project
	test.DecodeData(t, resp, &projects)
	require.Len(t, projects, 2)
	for _, project := range projects {
		require.Equal(t, uint(1), project.OwnerID)
	}

	// 不带筛选返回全部
	all := test.DoRequest(t, p.List, test.Request{Method: "GET"})
	test.NoError(t, all)
	test.DecodeData(t, all, &projects)
	require.Len(t, projects, 3)
}
