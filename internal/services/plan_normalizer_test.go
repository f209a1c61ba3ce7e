package services_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aitrip/internal/services"
	"aitrip/pkg/utils"
)

const validPlanJSON = `{
  "itinerary": [
    {"day": 1, "date": "2025-01-01", "activities": [
      {"time": "09:00", "title": "宽窄巷子", "location": "青羊区", "description": "逛老街", "estimatedCost": 0, "duration": "2小时"}
    ]}
  ],
  "budgetBreakdown": [{"category": "住宿", "amount": 800, "description": "两晚"}],
  "tips": ["带伞"]
}`

func TestNormalizePlan_PlainJSON(t *testing.T) {
	plan, err := services.NormalizePlan(validPlanJSON)
	require.NoError(t, err)

	require.Len(t, plan.Itinerary, 1)
	assert.Equal(t, 1, plan.Itinerary[0].Day)
	assert.Equal(t, "宽窄巷子", plan.Itinerary[0].Activities[0].Title)
	assert.Equal(t, 800.0, plan.BudgetBreakdown[0].Amount)
	assert.Equal(t, []string{"带伞"}, plan.Tips)
	assert.NotNil(t, plan.Recommendations)
	assert.Empty(t, plan.Recommendations)
}

func TestNormalizePlan_FencedBlockWithProse(t *testing.T) {
	raw := "好的，这是您的计划：\n```JSON\n" + validPlanJSON + "\n```\n祝旅途愉快！{不是json}"

	plan, err := services.NormalizePlan(raw)
	require.NoError(t, err)
	assert.Len(t, plan.Itinerary, 1)
}

func TestNormalizePlan_BraceSpanWithoutFence(t *testing.T) {
	raw := "以下是计划 " + validPlanJSON + " 希望对你有帮助"

	plan, err := services.NormalizePlan(raw)
	require.NoError(t, err)
	assert.Len(t, plan.Itinerary, 1)
}

func TestNormalizePlan_RepairsTrailingCommasAndNewlines(t *testing.T) {
	raw := "{\"itinerary\": [{\"day\": 1, \"date\": \"2025-01-01\", \"activities\": [" +
		"{\"time\": \"09:00\", \"title\": \"第一行\n第二行\", \"estimatedCost\": 10,},\r\n" +
		"],},], \"tips\": [\"a\", \"b\",],}"

	plan, err := services.NormalizePlan(raw)
	require.NoError(t, err)
	require.Len(t, plan.Itinerary, 1)
	assert.Equal(t, "第一行 第二行", plan.Itinerary[0].Activities[0].Title)
	assert.Equal(t, []string{"a", "b"}, plan.Tips)
}

func TestNormalizePlan_MissingItinerary(t *testing.T) {
	for name, raw := range map[string]string{
		"absent":    `{"tips": ["x"]}`,
		"null":      `{"itinerary": null}`,
		"not array": `{"itinerary": {"day": 1}}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := services.NormalizePlan(raw)
			require.ErrorIs(t, err, utils.ErrParseFailed)

			var parseErr *utils.ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, "missing itinerary", parseErr.Reason)
		})
	}
}

func TestNormalizePlan_GarbageKeepsRawPreview(t *testing.T) {
	raw := strings.Repeat("无法生成", 200)

	_, err := services.NormalizePlan(raw)
	require.ErrorIs(t, err, utils.ErrParseFailed)

	var parseErr *utils.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 500, len([]rune(parseErr.Raw)))
	assert.Error(t, parseErr.Cause)
}

func TestNormalizePlan_LenientNumbersAndDefaults(t *testing.T) {
	raw := `{"itinerary": [{"day": "1", "date": "2025-01-01", "activities": [
		{"time": "09:00", "title": "熊猫基地", "estimatedCost": "约55元"},
		{"time": "12:00", "title": "退款", "estimatedCost": -20}
	]}]}`

	plan, err := services.NormalizePlan(raw)
	require.NoError(t, err)

	acts := plan.Itinerary[0].Activities
	assert.Equal(t, 55.0, acts[0].EstimatedCost)
	assert.Equal(t, 0.0, acts[1].EstimatedCost)
	assert.NotNil(t, plan.BudgetBreakdown)
	assert.Empty(t, plan.BudgetBreakdown)
	assert.NotNil(t, plan.Tips)
	assert.Empty(t, plan.Tips)
}

func TestNormalizePlan_LenientScalarsAndLists(t *testing.T) {
	raw := `{"itinerary": [{"day": 1, "date": "2025-01-01", "activities": [
		{"time": 9, "title": "宽窄巷子", "duration": 2, "estimatedCost": 0}
	]}], "tips": "带伞", "recommendations": ""}`

	plan, err := services.NormalizePlan(raw)
	require.NoError(t, err)

	act := plan.Itinerary[0].Activities[0]
	assert.Equal(t, "9", act.Time)
	assert.Equal(t, "宽窄巷子", act.Title)
	assert.Equal(t, "2", act.Duration)
	assert.Equal(t, []string{"带伞"}, plan.Tips)
	assert.Empty(t, plan.Recommendations)
}

func TestNormalizePlan_RejectsObjectWhereTextExpected(t *testing.T) {
	raw := `{"itinerary": [{"day": 1, "activities": [{"time": {"h": 9}}]}]}`

	_, err := services.NormalizePlan(raw)
	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrParseFailed)
}

func TestNormalizePlan_RoundTrip(t *testing.T) {
	want := services.BuildFallbackPlan(chengduRequest(t))
	want.Recommendations = []string{"带上厚外套"}

	encoded, err := json.Marshal(want)
	require.NoError(t, err)

	got, err := services.NormalizePlan(string(encoded))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
