package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"aitrip/internal/models/response_models"
	"aitrip/pkg/utils"
)

const rawPreviewLength = 500

var (
	fencedJSONPattern    = regexp.MustCompile("(?is)```json\\s*(.*?)\\s*```")
	braceSpanPattern     = regexp.MustCompile(`(?s)\{.*\}`)
	trailingCommaPattern = regexp.MustCompile(`,(\s*[}\]])`)
	leadingNumberPattern = regexp.MustCompile(`-?\d+(?:\.\d+)?`)
)

// flexNumber accepts a JSON number or a string holding one ("60", "约60元").
type flexNumber float64

func (n *flexNumber) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*n = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		m := leadingNumberPattern.FindString(s)
		if m == "" {
			*n = 0
			return nil
		}
		v, err := strconv.ParseFloat(m, 64)
		if err != nil {
			return err
		}
		*n = flexNumber(v)
		return nil
	}
	v, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return fmt.Errorf("not a number: %s", b)
	}
	*n = flexNumber(v)
	return nil
}

// flexString accepts a JSON string or any scalar, so "time": 9 reads as "9".
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || string(b) == "null":
		*s = ""
	case b[0] == '"':
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*s = flexString(str)
	case b[0] == '{' || b[0] == '[':
		return fmt.Errorf("not a scalar: %.40s", b)
	default:
		*s = flexString(b)
	}
	return nil
}

// flexStrings keeps the string entries of an array and skips anything else.
// A lone string becomes a one-element list.
type flexStrings []string

func (s *flexStrings) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*s = []string{}
		if strings.TrimSpace(str) != "" {
			*s = []string{str}
		}
		return nil
	}

	var items []any
	if err := json.Unmarshal(b, &items); err != nil {
		return err
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if str, ok := item.(string); ok && strings.TrimSpace(str) != "" {
			out = append(out, str)
		}
	}
	*s = out
	return nil
}

type rawActivity struct {
	Time          flexString `json:"time"`
	Title         flexString `json:"title"`
	Location      flexString `json:"location"`
	Description   flexString `json:"description"`
	EstimatedCost flexNumber `json:"estimatedCost"`
	Duration      flexString `json:"duration"`
}

type rawDay struct {
	Day        flexNumber    `json:"day"`
	Date       flexString    `json:"date"`
	Activities []rawActivity `json:"activities"`
}

type rawBudgetItem struct {
	Category    flexString `json:"category"`
	Amount      flexNumber `json:"amount"`
	Description flexString `json:"description"`
}

type rawPlan struct {
	Itinerary       json.RawMessage `json:"itinerary"`
	BudgetBreakdown []rawBudgetItem `json:"budgetBreakdown"`
	Tips            flexStrings     `json:"tips"`
	Recommendations flexStrings     `json:"recommendations"`
}

// PlanValidation is either a valid plan or the reason the payload was rejected.
type PlanValidation struct {
	Plan   *response_models.TripPlanResponse
	Reason string
}

func (v PlanValidation) Valid() bool { return v.Plan != nil }

// NormalizePlan extracts, repairs, parses and validates a plan from free-form model output.
// It never invents content; any failure is a *utils.ParseError.
func NormalizePlan(raw string) (*response_models.TripPlanResponse, error) {
	candidate := repairJSON(extractJSON(raw))

	var parsed rawPlan
	if err := json.Unmarshal([]byte(candidate), &parsed); err != nil {
		return nil, &utils.ParseError{Reason: "invalid json", Raw: preview(raw), Cause: err}
	}

	result, err := validatePlan(parsed)
	if err != nil {
		return nil, &utils.ParseError{Reason: "invalid itinerary", Raw: preview(raw), Cause: err}
	}
	if !result.Valid() {
		return nil, &utils.ParseError{Reason: result.Reason, Raw: preview(raw)}
	}
	return result.Plan, nil
}

// extractJSON prefers a ```json fence, then the widest {...} span, then the text itself.
func extractJSON(raw string) string {
	if m := fencedJSONPattern.FindStringSubmatch(raw); m != nil {
		return m[1]
	}
	if span := braceSpanPattern.FindString(raw); span != "" {
		return span
	}
	return raw
}

func repairJSON(s string) string {
	s = trailingCommaPattern.ReplaceAllString(s, "$1")
	s = strings.NewReplacer("\n", " ", "\r", " ").Replace(s)
	return strings.TrimSpace(s)
}

func validatePlan(parsed rawPlan) (PlanValidation, error) {
	itinerary := bytes.TrimSpace(parsed.Itinerary)
	if len(itinerary) == 0 || itinerary[0] != '[' {
		return PlanValidation{Reason: "missing itinerary"}, nil
	}

	var days []rawDay
	if err := json.Unmarshal(itinerary, &days); err != nil {
		return PlanValidation{}, err
	}

	plan := &response_models.TripPlanResponse{
		Itinerary:       make([]response_models.DayPlan, 0, len(days)),
		BudgetBreakdown: make([]response_models.BudgetItem, 0, len(parsed.BudgetBreakdown)),
		Tips:            []string{},
		Recommendations: []string{},
	}

	for _, d := range days {
		day := response_models.DayPlan{
			Day:        int(d.Day),
			Date:       strings.TrimSpace(string(d.Date)),
			Activities: make([]response_models.Activity, 0, len(d.Activities)),
		}
		for _, a := range d.Activities {
			day.Activities = append(day.Activities, response_models.Activity{
				Time:          string(a.Time),
				Title:         string(a.Title),
				Location:      string(a.Location),
				Description:   string(a.Description),
				EstimatedCost: nonNegative(float64(a.EstimatedCost)),
				Duration:      string(a.Duration),
			})
		}
		plan.Itinerary = append(plan.Itinerary, day)
	}

	for _, item := range parsed.BudgetBreakdown {
		plan.BudgetBreakdown = append(plan.BudgetBreakdown, response_models.BudgetItem{
			Category:    string(item.Category),
			Amount:      nonNegative(float64(item.Amount)),
			Description: string(item.Description),
		})
	}
	if parsed.Tips != nil {
		plan.Tips = parsed.Tips
	}
	if parsed.Recommendations != nil {
		plan.Recommendations = parsed.Recommendations
	}

	return PlanValidation{Plan: plan}, nil
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func preview(raw string) string {
	runes := []rune(raw)
	if len(runes) > rawPreviewLength {
		return string(runes[:rawPreviewLength])
	}
	return raw
}
