package main

import (
	"encoding/json"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"aitrip/internal/config"
	"aitrip/internal/models/request_models"
	"aitrip/internal/models/response_models"
	"aitrip/internal/services"
	"aitrip/pkg/logger"
	"aitrip/pkg/utils"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate a trip plan and print it as JSON",
	Example: `  aitrip plan --destination 成都 --start 2025-01-01 --end 2025-01-03 --budget 3000 --travelers 2 --preferences 美食
  aitrip plan --destination 杭州 --start 2025-04-01 --end 2025-04-02 --offline`,
	RunE: runPlan,
}

var voiceCmd = &cobra.Command{
	Use:   "voice <transcript>",
	Short: "Extract trip fields from a spoken request",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runVoice,
}

func init() {
	f := planCmd.Flags()
	f.String("destination", "", "Destination city")
	f.String("start", "", "Start date (YYYY-MM-DD)")
	f.String("end", "", "End date (YYYY-MM-DD)")
	f.Float64("budget", services.DefaultTripBudget, "Total budget in CNY")
	f.Int("travelers", services.DefaultTripTravelers, "Number of travelers")
	f.StringSlice("preferences", nil, "Preference tags, comma separated")
	f.String("description", "", "Free-text requirements")
	f.Bool("offline", false, "Skip the model and print the fallback plan")
	_ = planCmd.MarkFlagRequired("destination")

	voiceCmd.Flags().String("start", "", "Draft start date the day count anchors on (YYYY-MM-DD)")
}

func runPlan(cmd *cobra.Command, args []string) error {
	f := cmd.Flags()
	in := request_models.GeneratePlanRequest{}
	in.Destination, _ = f.GetString("destination")
	in.StartDate, _ = f.GetString("start")
	in.EndDate, _ = f.GetString("end")
	in.Preferences, _ = f.GetStringSlice("preferences")
	in.Description, _ = f.GetString("description")
	if f.Changed("budget") {
		budget, _ := f.GetFloat64("budget")
		in.Budget = &budget
	}
	if f.Changed("travelers") {
		travelers, _ := f.GetInt("travelers")
		in.Travelers = &travelers
	}

	req, err := services.BuildTripPlanRequest(in, services.DefaultTripBudget)
	if err != nil {
		return err
	}

	var plan *response_models.TripPlanResponse
	if offline, _ := f.GetBool("offline"); offline {
		plan = services.BuildFallbackPlan(req)
	} else {
		llmCfg, err := config.LoadLLM()
		if err != nil {
			return err
		}
		log, err := logger.New(os.Getenv("LOG_LEVEL"))
		if err != nil {
			return err
		}
		defer log.Sync()

		generator, err := utils.NewTextGenerator(llmCfg)
		if err != nil {
			return err
		}
		plan, err = services.NewTripPlanService(generator, log).GeneratePlan(cmd.Context(), req)
		if err != nil {
			return err
		}
	}
	return printJSON(plan)
}

func runVoice(cmd *cobra.Command, args []string) error {
	draft := request_models.GeneratePlanRequest{}
	draft.StartDate, _ = cmd.Flags().GetString("start")

	extraction := services.NewVoiceExtractor().Extract(strings.Join(args, " "))
	return printJSON(response_models.ParseVoiceResponse{
		Extraction: extraction,
		Request:    services.ApplyVoiceExtraction(draft, extraction, time.Now()),
	})
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
