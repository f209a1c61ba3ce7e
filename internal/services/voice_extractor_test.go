package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aitrip/internal/models/request_models"
	"aitrip/internal/services"
	"aitrip/pkg/utils"
)

func TestVoiceExtractor_FullSentence(t *testing.T) {
	ext := services.NewVoiceExtractor().Extract("我想去北京，玩5天，预算10000元，喜欢历史文化，2个人")

	require.NotNil(t, ext.Destination)
	assert.Equal(t, "北京", *ext.Destination)
	require.NotNil(t, ext.Days)
	assert.Equal(t, 5, *ext.Days)
	require.NotNil(t, ext.Budget)
	assert.Equal(t, 10000.0, *ext.Budget)
	require.NotNil(t, ext.Travelers)
	assert.Equal(t, 2, *ext.Travelers)
	assert.Contains(t, ext.Preferences, "历史文化")

	draft := request_models.GeneratePlanRequest{StartDate: "2025-05-01"}
	req := services.ApplyVoiceExtraction(draft, ext, time.Now())

	assert.Equal(t, "北京", req.Destination)
	assert.Equal(t, "2025-05-05", req.EndDate)
	start, _ := utils.ParseDate(req.StartDate)
	end, _ := utils.ParseDate(req.EndDate)
	assert.Equal(t, 5, utils.CalculateDays(start, end))
}

func TestVoiceExtractor_Variants(t *testing.T) {
	e := services.NewVoiceExtractor()

	ext := e.Extract("要去三亚度假三天，预算1.5万，两个人，想拍照摄影和户外运动")
	require.NotNil(t, ext.Destination)
	assert.Equal(t, "三亚", *ext.Destination)
	require.NotNil(t, ext.Days)
	assert.Equal(t, 3, *ext.Days)
	require.NotNil(t, ext.Budget)
	assert.Equal(t, 15000.0, *ext.Budget)
	require.NotNil(t, ext.Travelers)
	assert.Equal(t, 2, *ext.Travelers)
	assert.Equal(t, []string{"户外运动", "摄影"}, ext.Preferences)

	ext = e.Extract("前往Tokyo，７天，３位，８０００块")
	require.NotNil(t, ext.Destination)
	assert.Equal(t, "Tokyo", *ext.Destination)
	assert.Equal(t, 7, *ext.Days)
	assert.Equal(t, 3, *ext.Travelers)
	assert.Equal(t, 8000.0, *ext.Budget)

	ext = e.Extract("我想去上海，玩3天，预算3000人民币，2个人")
	require.NotNil(t, ext.Budget)
	assert.Equal(t, 3000.0, *ext.Budget)
	require.NotNil(t, ext.Travelers)
	assert.Equal(t, 2, *ext.Travelers)

	ext = e.Extract("带500人民币去杭州")
	require.NotNil(t, ext.Budget)
	assert.Equal(t, 500.0, *ext.Budget)
	assert.Nil(t, ext.Travelers)
}

func TestVoiceExtractor_NothingFound(t *testing.T) {
	ext := services.NewVoiceExtractor().Extract("你好")

	assert.Nil(t, ext.Destination)
	assert.Nil(t, ext.Days)
	assert.Nil(t, ext.Budget)
	assert.Nil(t, ext.Travelers)
	assert.Empty(t, ext.Preferences)
}

func TestApplyVoiceExtraction_NeverClears(t *testing.T) {
	draft := request_models.GeneratePlanRequest{
		Destination: "上海",
		StartDate:   "2025-05-01",
		EndDate:     "2025-05-03",
		Budget:      ptr(3000.0),
		Travelers:   ptr(2),
		Preferences: []string{"美食"},
	}
	ext := services.NewVoiceExtractor().Extract("喜欢购物和美食")

	req := services.ApplyVoiceExtraction(draft, ext, time.Now())

	assert.Equal(t, "上海", req.Destination)
	assert.Equal(t, "2025-05-03", req.EndDate)
	assert.Equal(t, 3000.0, *req.Budget)
	assert.Equal(t, 2, *req.Travelers)
	assert.Equal(t, []string{"美食", "购物"}, req.Preferences)
	assert.Equal(t, []string{"美食"}, draft.Preferences)
}

func TestApplyVoiceExtraction_DaysWithoutStartUsesToday(t *testing.T) {
	now := time.Date(2025, 5, 1, 20, 0, 0, 0, time.UTC) // 2025-05-02 04:00 in Shanghai
	ext := services.NewVoiceExtractor().Extract("玩4天")

	req := services.ApplyVoiceExtraction(request_models.GeneratePlanRequest{}, ext, now)

	assert.Equal(t, "2025-05-02", req.StartDate)
	assert.Equal(t, "2025-05-05", req.EndDate)
}
