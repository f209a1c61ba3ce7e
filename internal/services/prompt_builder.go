package services

import (
	"fmt"
	"strconv"
	"strings"

	"aitrip/internal/models/request_models"
	"aitrip/pkg/utils"
)

const noPreferenceText = "无特殊偏好"

const planSystemInstruction = "你是一个专业的旅行规划助手，擅长根据用户需求制定详细的旅行计划。" +
	"你的回答应该包含每日行程、预算分配、实用建议等信息。" +
	"请严格按照 JSON 格式返回结果，不要添加任何额外的文字说明，不要使用 markdown 代码块。" +
	"JSON 必须是有效的，不能有尾随逗号或格式错误，所有字符串都必须使用双引号。"

const planExampleJSON = `{
  "itinerary": [
    {
      "day": 1,
      "date": "2024-01-01",
      "activities": [
        {
          "time": "09:00",
          "title": "游览故宫博物院",
          "location": "北京市东城区景山前街4号",
          "description": "参观世界最大的古代宫殿建筑群，游览太和殿、乾清宫等主要宫殿。建议从午门进入，按中轴线游览。",
          "estimatedCost": 60,
          "duration": "3-4小时"
        },
        {
          "time": "12:30",
          "title": "全聚德烤鸭午餐",
          "location": "和平门店，北京市西城区前门西大街14号",
          "description": "品尝正宗北京烤鸭，推荐套餐含烤鸭、鸭汤、配菜，人均约150元",
          "estimatedCost": 150,
          "duration": "1.5小时"
        }
      ]
    }
  ],
  "budgetBreakdown": [
    {"category": "住宿", "amount": 2000, "description": "4星级酒店，靠近地铁，含早餐，每晚约500元×4晚"},
    {"category": "餐饮", "amount": 1500, "description": "早餐酒店含，午餐人均80元，晚餐人均100元，5天×2人"},
    {"category": "大交通", "amount": 1200, "description": "往返高铁/飞机票，2人"},
    {"category": "当地交通", "amount": 300, "description": "地铁卡、公交、偶尔打车"},
    {"category": "门票", "amount": 800, "description": "主要景点门票，2人"},
    {"category": "购物", "amount": 500, "description": "特产、纪念品"}
  ],
  "tips": [
    "提前在官网预约故宫门票，避免排队",
    "下载高德地图，使用地铁出行最方便",
    "必吃：北京烤鸭、炸酱面、豆汁、驴打滚"
  ]
}`

// BuildTripPrompt renders the system and user instructions for one trip request.
// It is a pure function of the request.
func BuildTripPrompt(req request_models.TripPlanRequest) utils.ChatPrompt {
	return utils.ChatPrompt{
		System: planSystemInstruction,
		User:   buildUserPrompt(req),
	}
}

func buildUserPrompt(req request_models.TripPlanRequest) string {
	days := utils.CalculateDays(req.StartDate, req.EndDate)
	travelers := req.Travelers
	if travelers < 1 {
		travelers = 1
	}
	dailyBudget := req.Budget / float64(days) / float64(travelers)

	preferences := noPreferenceText
	if len(req.Preferences) > 0 {
		preferences = strings.Join(req.Preferences, "、")
	}

	var prompt strings.Builder

	prompt.WriteString("请为以下旅行需求制定**详细且实用**的旅行计划：\n\n")
	prompt.WriteString(fmt.Sprintf("**目的地**: %s\n", req.Destination))
	prompt.WriteString(fmt.Sprintf("**出行日期**: %s 至 %s (共 %d 天)\n",
		utils.FormatDate(req.StartDate), utils.FormatDate(req.EndDate), days))
	prompt.WriteString(fmt.Sprintf("**出行人数**: %d 人\n", travelers))
	prompt.WriteString(fmt.Sprintf("**总预算**: ¥%s (人均每日约 ¥%.0f)\n",
		strconv.FormatFloat(req.Budget, 'f', -1, 64), dailyBudget))
	prompt.WriteString(fmt.Sprintf("**旅行偏好**: %s\n", preferences))
	if desc := strings.TrimSpace(req.Description); desc != "" {
		prompt.WriteString(fmt.Sprintf("**用户需求**: %s\n", desc))
	}

	prompt.WriteString("\n请作为专业旅行规划师，提供以下**完整详细**的内容：\n\n")
	prompt.WriteString("### 1. 每日详细行程安排\n")
	prompt.WriteString(fmt.Sprintf("- 必须正好包含 %d 天，day 从 1 开始连续编号，date 从 %s 开始逐日递增\n",
		days, utils.FormatDate(req.StartDate)))
	prompt.WriteString("- 每个活动包含：具体时间、景点/餐厅名称、详细地址、活动描述、预估费用、游玩时长\n")
	prompt.WriteString("- 推荐具体的交通方式、餐厅名称和特色菜品、住宿区域和酒店类型\n")
	prompt.WriteString("- 考虑实际游玩节奏，避免行程过于紧凑\n\n")
	prompt.WriteString("### 2. 完整预算分配明细\n")
	prompt.WriteString("- 住宿、餐饮、交通（往返大交通与当地交通）、门票、购物、其他（保险、应急费用等）\n")
	prompt.WriteString("- 各项金额之和应与总预算大致相符\n\n")
	prompt.WriteString("### 3. 实用旅行建议\n")
	prompt.WriteString("- 最佳游玩路线和交通攻略、必吃美食、必买特产、天气穿衣建议、注意事项和安全提示、省钱小技巧\n\n")

	prompt.WriteString("请严格按照以下 JSON 格式返回（只返回JSON，不要markdown代码块标记）:\n")
	prompt.WriteString(planExampleJSON)
	prompt.WriteString("\n\n重要提示：\n")
	prompt.WriteString("1. 必须返回有效的 JSON 格式\n")
	prompt.WriteString("2. 不要有任何尾随逗号\n")
	prompt.WriteString("3. 不要在 JSON 外添加任何解释文字\n")
	prompt.WriteString("4. 确保所有字符串都用双引号\n")
	prompt.WriteString("5. 确保所有数组和对象都正确闭合\n")

	return prompt.String()
}
