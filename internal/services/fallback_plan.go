package services

import (
	"fmt"
	"math"

	"aitrip/internal/models/request_models"
	"aitrip/internal/models/response_models"
	"aitrip/pkg/utils"
)

type budgetShare struct {
	category string
	ratio    float64
}

// The first share absorbs the rounding remainder.
var fallbackBudgetShares = []budgetShare{
	{"住宿", 0.35},
	{"餐饮", 0.30},
	{"大交通", 0.14},
	{"当地交通", 0.06},
	{"门票", 0.10},
	{"购物娱乐", 0.05},
}

var conditionalTips = []struct {
	preference string
	tip        string
}{
	{"美食", "🍴 推荐预留更多餐饮预算，品尝各类美食"},
	{"购物", "🛍️ 建议预留更多购物预算，购买心仪商品"},
	{"亲子活动", "👨‍👩‍👧 带孩子出行记得准备零食、玩具和常用药品"},
}

// BuildFallbackPlan synthesizes a complete plan from the request alone.
// The output depends only on the request, so equal requests give identical plans.
func BuildFallbackPlan(req request_models.TripPlanRequest) *response_models.TripPlanResponse {
	days := utils.CalculateDays(req.StartDate, req.EndDate)
	if days < 1 {
		days = 1
	}

	itinerary := make([]response_models.DayPlan, 0, days)
	for i := 0; i < days; i++ {
		itinerary = append(itinerary, response_models.DayPlan{
			Day:        i + 1,
			Date:       utils.FormatDate(req.StartDate.AddDate(0, 0, i)),
			Activities: fallbackActivities(req.Destination),
		})
	}

	return &response_models.TripPlanResponse{
		Itinerary:       itinerary,
		BudgetBreakdown: fallbackBudget(req, days),
		Tips:            fallbackTips(req),
		Recommendations: []string{},
	}
}

func fallbackActivities(destination string) []response_models.Activity {
	return []response_models.Activity{
		{
			Time:          "08:00",
			Title:         "酒店早餐",
			Location:      "酒店餐厅",
			Description:   "享用酒店提供的自助早餐，补充能量开始新的一天",
			EstimatedCost: 0,
			Duration:      "1小时",
		},
		{
			Time:          "09:30",
			Title:         destination + "热门景点游览",
			Location:      destination + "市区",
			Description:   "游览当地最著名的景点，拍照留念，了解历史文化。建议提前在官网或旅游平台预约门票，避免现场排队。",
			EstimatedCost: 120,
			Duration:      "3-4小时",
		},
		{
			Time:          "13:00",
			Title:         "品尝当地特色美食",
			Location:      "景区附近推荐餐厅",
			Description:   fmt.Sprintf("享用%s特色菜品，推荐尝试当地最有名的美食。建议选择口碑好的餐厅，人均约80-100元。", destination),
			EstimatedCost: 100,
			Duration:      "1.5小时",
		},
		{
			Time:          "15:00",
			Title:         "次要景点或购物",
			Location:      destination + "商业区",
			Description:   "游览其他景点或前往当地特色商业街购物，选购纪念品和特产。",
			EstimatedCost: 80,
			Duration:      "2-3小时",
		},
		{
			Time:          "18:30",
			Title:         "晚餐时光",
			Location:      "当地特色餐厅",
			Description:   "品尝当地晚餐美食，可以选择夜市小吃或特色餐厅，体验当地饮食文化。",
			EstimatedCost: 120,
			Duration:      "1.5小时",
		},
		{
			Time:          "20:30",
			Title:         "夜游或返回酒店",
			Location:      destination + "夜景区域",
			Description:   "如果有夜景可以欣赏夜景，或者返回酒店休息，为第二天行程养精蓄锐。",
			EstimatedCost: 50,
			Duration:      "1-2小时",
		},
	}
}

func fallbackBudget(req request_models.TripPlanRequest, days int) []response_models.BudgetItem {
	budget := math.Max(req.Budget, 0)
	amounts := make([]float64, len(fallbackBudgetShares))
	var allocated float64
	for i, share := range fallbackBudgetShares {
		amounts[i] = roundCents(budget * share.ratio)
		allocated += amounts[i]
	}
	amounts[0] = roundCents(amounts[0] + budget - allocated)

	nights := days - 1
	if nights < 1 {
		nights = 1
	}
	travelers := req.Travelers
	if travelers < 1 {
		travelers = 1
	}

	descriptions := []string{
		fmt.Sprintf("中档酒店或快捷酒店，%d晚，每晚约%.0f元，含早餐", nights, amounts[0]/float64(nights)),
		fmt.Sprintf("午餐和晚餐，%d天×2餐，人均80-120元。推荐品尝当地特色美食。", days),
		fmt.Sprintf("往返%s的高铁或飞机票，%d人", req.Destination, travelers),
		"地铁、公交、偶尔打车的费用，建议办理当地交通卡",
		"主要景点门票，建议提前在网上购买，通常有优惠",
		"购买特产、纪念品和其他娱乐消费",
	}

	items := make([]response_models.BudgetItem, len(fallbackBudgetShares))
	for i, share := range fallbackBudgetShares {
		items[i] = response_models.BudgetItem{
			Category:    share.category,
			Amount:      amounts[i],
			Description: descriptions[i],
		}
	}
	return items
}

func fallbackTips(req request_models.TripPlanRequest) []string {
	tips := []string{
		fmt.Sprintf("🎫 提前在官网或旅游平台预约%s热门景点门票，避免排队", req.Destination),
		"🚇 下载高德地图或百度地图，使用地铁出行最方便快捷",
		"🍜 必尝当地特色美食，可以提前在大众点评上查找口碑餐厅",
		"🎁 购买特产建议去大型超市，价格更实惠且质量有保证",
		"🌤️ 出行前查看天气预报，准备合适的衣物和雨具",
		"💰 准备部分现金，部分小店可能不支持移动支付",
		"📱 保持手机电量充足，随时可以导航和查询信息",
		"🏥 了解附近医院位置，准备常用药品",
	}
	for _, c := range conditionalTips {
		if req.HasPreference(c.preference) {
			tips = append(tips, c.tip)
		}
	}
	return tips
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
