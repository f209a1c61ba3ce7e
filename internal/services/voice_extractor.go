package services

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/width"

	"aitrip/internal/models/request_models"
	"aitrip/internal/models/response_models"
	"aitrip/pkg/utils"
)

// PreferenceTags is the closed set of preference tags offered to users.
var PreferenceTags = []string{"美食", "购物", "自然风光", "历史文化", "户外运动", "休闲放松", "摄影", "亲子活动"}

// SlotFiller turns a transcript into advisory trip fields.
type SlotFiller interface {
	Extract(transcript string) response_models.VoiceExtraction
}

const chineseDigits = "一二两三四五六七八九十"

var (
	destinationPattern = regexp.MustCompile(
		`(?:我想去|想去|要去|去往|前往|去)\s*([\p{Han}A-Za-z]{1,20}?)(?:[,.!?;:，。！？；：、\s]|玩|旅游|旅行|游玩|看看|逛逛|度假|待|呆|$)`)
	dayPattern          = regexp.MustCompile(`(\d+)\s*(?:天|日游)`)
	dayChinesePattern   = regexp.MustCompile(`([` + chineseDigits + `]+)\s*(?:天|日游)`)
	budgetUnitPattern   = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(万)?\s*(?:元|块|人民币)`)
	budgetPrefixPattern = regexp.MustCompile(`预算\D{0,4}?(\d+(?:\.\d+)?)\s*(万)?`)
	// 人 followed by 民 is the 人民币 currency unit, not a head count.
	travelerPattern     = regexp.MustCompile(`(\d+)\s*(?:个人|位|人(?:[^民]|$))`)
	travelerCNPattern   = regexp.MustCompile(`([` + chineseDigits + `]+)\s*(?:个人|位|人(?:[^民]|$))`)
)

var chineseDigitValues = map[rune]int{
	'一': 1, '二': 2, '两': 2, '三': 3, '四': 4, '五': 5,
	'六': 6, '七': 7, '八': 8, '九': 9,
}

type RegexVoiceExtractor struct{}

func NewVoiceExtractor() SlotFiller {
	return &RegexVoiceExtractor{}
}

func (e *RegexVoiceExtractor) Extract(transcript string) response_models.VoiceExtraction {
	text := width.Fold.String(transcript)

	out := response_models.VoiceExtraction{Preferences: []string{}}

	if m := destinationPattern.FindStringSubmatch(text); m != nil {
		dest := strings.TrimSpace(m[1])
		if dest != "" {
			out.Destination = &dest
		}
	}

	if n, ok := firstCount(text, dayPattern, dayChinesePattern); ok && n <= MaxTripDays {
		out.Days = &n
	}

	if budget, ok := extractBudget(text); ok {
		out.Budget = &budget
	}

	if n, ok := firstCount(text, travelerPattern, travelerCNPattern); ok {
		out.Travelers = &n
	}

	for _, tag := range PreferenceTags {
		if strings.Contains(text, tag) {
			out.Preferences = append(out.Preferences, tag)
		}
	}
	return out
}

// firstCount reads a positive count using the digit pattern first, then the Chinese numeral one.
func firstCount(text string, digits, chinese *regexp.Regexp) (int, bool) {
	if m := digits.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			return n, true
		}
	}
	if m := chinese.FindStringSubmatch(text); m != nil {
		if n := parseChineseNumber(m[1]); n > 0 {
			return n, true
		}
	}
	return 0, false
}

func extractBudget(text string) (float64, bool) {
	for _, p := range []*regexp.Regexp{budgetUnitPattern, budgetPrefixPattern} {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		if m[2] == "万" {
			v *= 10000
		}
		return v, true
	}
	return 0, false
}

// parseChineseNumber handles 1..99 written as 五, 十二, 二十, 三十五. Anything else is 0.
func parseChineseNumber(s string) int {
	runes := []rune(s)
	switch len(runes) {
	case 1:
		if runes[0] == '十' {
			return 10
		}
		return chineseDigitValues[runes[0]]
	case 2:
		if runes[0] == '十' {
			return 10 + chineseDigitValues[runes[1]]
		}
		if runes[1] == '十' {
			return chineseDigitValues[runes[0]] * 10
		}
	case 3:
		if runes[1] == '十' {
			tens, ones := chineseDigitValues[runes[0]], chineseDigitValues[runes[2]]
			if tens > 0 && ones > 0 {
				return tens*10 + ones
			}
		}
	}
	return 0
}

// ApplyVoiceExtraction merges an extraction into a draft request. Extracted fields
// overwrite the draft, missing ones leave it untouched, and preferences are unioned.
// A day count anchors on the draft start date, or today when there is none.
func ApplyVoiceExtraction(draft request_models.GeneratePlanRequest, ext response_models.VoiceExtraction, now time.Time) request_models.GeneratePlanRequest {
	out := draft
	out.Preferences = append([]string(nil), draft.Preferences...)

	if ext.Destination != nil {
		out.Destination = *ext.Destination
	}
	if ext.Days != nil && *ext.Days > 0 {
		start, err := utils.ParseDate(out.StartDate)
		if err != nil {
			start = utils.TodayCN(now)
			out.StartDate = utils.FormatDate(start)
		}
		out.EndDate = utils.FormatDate(start.AddDate(0, 0, *ext.Days-1))
	}
	if ext.Budget != nil {
		budget := *ext.Budget
		out.Budget = &budget
	}
	if ext.Travelers != nil {
		travelers := *ext.Travelers
		out.Travelers = &travelers
	}
	for _, tag := range ext.Preferences {
		if !containsString(out.Preferences, tag) {
			out.Preferences = append(out.Preferences, tag)
		}
	}
	return out
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
