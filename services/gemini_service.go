package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gloverronan/HealthOS/models"
)

var (
	ErrMissingAIKey  = errors.New("AI key is missing")
	ErrEmptyAIReply  = errors.New("empty response from AI")
	ErrBadAIReply    = errors.New("AI response was not in the expected format")
	ErrNoSuggestions = errors.New("no suggestions returned")
)

// GeminiService is the text-completion adapter. It knows nothing about
// our domain beyond building prompts: callers parse what comes back.
type GeminiService struct {
	client  *http.Client
	baseURL string
	model   string
}

func NewGeminiService() *GeminiService {
	return &GeminiService{
		client:  &http.Client{Timeout: 15 * time.Second},
		baseURL: "https://generativelanguage.googleapis.com",
		model:   "gemini-2.5-flash-preview-09-2025",
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// GenerateContent sends one prompt and returns the raw response text.
func (g *GeminiService) GenerateContent(apiKey, prompt string) (string, error) {
	if apiKey == "" {
		return "", ErrMissingAIKey
	}

	reqBody := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	}
	b, _ := json.Marshal(reqBody)

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", g.baseURL, g.model, apiKey)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ai request error: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read ai response error: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		bodyPreview := string(respBytes)
		if len(bodyPreview) > 200 {
			bodyPreview = bodyPreview[:200] + "..."
		}
		return "", fmt.Errorf("ai api error (%d): %s", resp.StatusCode, bodyPreview)
	}

	var out geminiResponse
	if err := json.Unmarshal(respBytes, &out); err != nil {
		return "", fmt.Errorf("decode ai response error: %w", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyAIReply
	}
	text := out.Candidates[0].Content.Parts[0].Text
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyAIReply
	}
	return text, nil
}

// StripFences removes markdown code-fence wrapping the model adds around
// JSON despite being told not to.
func StripFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// MacroEntry is the parsed shape of an AI-assisted food entry.
type MacroEntry struct {
	Name string  `json:"name"`
	Cals float64 `json:"cals"`
	Prot float64 `json:"prot"`
	Carb float64 `json:"carb"`
	Fat  float64 `json:"fat"`
}

func ParseMacroEntry(text string) (*MacroEntry, error) {
	var entry MacroEntry
	if err := json.Unmarshal([]byte(StripFences(text)), &entry); err != nil {
		return nil, ErrBadAIReply
	}
	if entry.Name == "" {
		return nil, ErrBadAIReply
	}
	return &entry, nil
}

type SuggestionMacros struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// MealSuggestion is one AI-proposed meal with its recipe.
type MealSuggestion struct {
	Meal         string           `json:"meal"`
	Description  string           `json:"description"`
	Ingredients  string           `json:"ingredients"`
	Instructions string           `json:"instructions"`
	Macros       SuggestionMacros `json:"macros"`
}

func ParseMealSuggestions(text string) ([]MealSuggestion, error) {
	var suggestions []MealSuggestion
	if err := json.Unmarshal([]byte(StripFences(text)), &suggestions); err != nil {
		return nil, ErrBadAIReply
	}
	if len(suggestions) == 0 {
		return nil, ErrNoSuggestions
	}
	return suggestions, nil
}

// MacroPlan is the AI-generated starting goal set from onboarding.
type MacroPlan struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

func ParseMacroPlan(text string) (*MacroPlan, error) {
	var plan MacroPlan
	if err := json.Unmarshal([]byte(StripFences(text)), &plan); err != nil {
		return nil, ErrBadAIReply
	}
	if plan.Calories <= 0 {
		return nil, ErrBadAIReply
	}
	return &plan, nil
}

// MacroEntryPrompt asks for a single food's macros as bare JSON.
func MacroEntryPrompt(food string) string {
	return fmt.Sprintf(`Return ONLY valid JSON (no markdown): {"name":"string","cals":number,"prot":number,"carb":number,"fat":number}. Food: %s`, food)
}

// TimeOfDay buckets an hour into the meal the user is most likely
// planning next.
func TimeOfDay(hour int) string {
	switch {
	case hour < 11:
		return "breakfast"
	case hour < 15:
		return "lunch"
	case hour < 20:
		return "dinner"
	default:
		return "snack"
	}
}

// MealSuggestionPrompt embeds today's intake, remaining macros, activity
// and optional keywords into the suggestion request.
func MealSuggestionPrompt(totals Macros, goals models.DailyGoal, gym []models.GymLog, cardio []models.CardioLog, recentFoods []string, keywords string, now time.Time) string {
	timeOfDay := TimeOfDay(now.Hour())

	remaining := SuggestionMacros{
		Calories: goals.Calories - totals.Cals,
		Protein:  goals.Protein - totals.Prot,
		Carbs:    goals.Carbs - totals.Carb,
		Fat:      goals.Fat - totals.Fat,
	}

	recent := strings.Join(recentFoods, ", ")
	if recent == "" {
		recent = "none yet"
	}

	gymSummary := "No gym"
	if len(gym) > 0 {
		names := make([]string, len(gym))
		for i, g := range gym {
			names[i] = g.WorkoutName
		}
		gymSummary = strings.Join(names, ", ")
	}
	cardioSummary := "No cardio"
	if len(cardio) > 0 {
		parts := make([]string, len(cardio))
		for i, c := range cardio {
			parts[i] = fmt.Sprintf("%s (%dcal)", c.Type, c.Calories)
		}
		cardioSummary = strings.Join(parts, ", ")
	}

	if keywords == "" {
		keywords = "None provided"
	}

	var sb strings.Builder
	sb.WriteString("You are a nutrition coach helping someone plan their next meal.\n\n")
	sb.WriteString("CONTEXT:\n")
	fmt.Fprintf(&sb, "- Time: %s (%s)\n", now.Format("15:04:05"), timeOfDay)
	fmt.Fprintf(&sb, "- Consumed today: %.0f cal, %.0fg protein, %.0fg carbs, %.0fg fat\n", totals.Cals, totals.Prot, totals.Carb, totals.Fat)
	fmt.Fprintf(&sb, "- Remaining macros: %.0f cal, %.0fg protein, %.0fg carbs, %.0fg fat\n", remaining.Calories, remaining.Protein, remaining.Carbs, remaining.Fat)
	fmt.Fprintf(&sb, "- Today's activity: %s, %s\n", gymSummary, cardioSummary)
	fmt.Fprintf(&sb, "- Recent foods today: %s\n", recent)
	fmt.Fprintf(&sb, "- User Preferences/Keywords: %s\n\n", keywords)
	sb.WriteString("REQUIREMENTS:\n")
	sb.WriteString("1. Suggest 3 DISTINCT realistic meal/recipe options\n")
	sb.WriteString("2. Use common ingredients likely in a typical pantry/fridge\n")
	fmt.Fprintf(&sb, "3. Appropriate for %s\n", timeOfDay)
	sb.WriteString("4. Fits within remaining macros (especially protein if they worked out)\n")
	sb.WriteString("5. Provide variety from what they've eaten\n")
	sb.WriteString("6. Keep it simple and practical\n")
	sb.WriteString("7. IMPORTANT: If keywords are provided, prioritize meals that include them.\n\n")
	sb.WriteString("RESPONSE FORMAT:\n")
	sb.WriteString("Return ONLY a valid JSON array of objects (no markdown formatting). Each object must have:\n")
	sb.WriteString(`- "meal": string (Meal Name)` + "\n")
	sb.WriteString(`- "description": string (One sentence description)` + "\n")
	sb.WriteString(`- "ingredients": string (List of ingredients)` + "\n")
	sb.WriteString(`- "instructions": string (Brief cooking instructions)` + "\n")
	sb.WriteString(`- "macros": object { "calories": number, "protein": number, "carbs": number, "fat": number }` + "\n")
	return sb.String()
}

// MacroPlanPrompt turns an onboarding profile into a goal-generation
// request.
func MacroPlanPrompt(user models.User) string {
	var sb strings.Builder
	sb.WriteString("Act as an expert nutritionist. Calculate daily macronutrient goals for this person:\n")
	fmt.Fprintf(&sb, "- Gender: %s\n", user.Gender)
	fmt.Fprintf(&sb, "- Age: %d\n", user.Age)
	fmt.Fprintf(&sb, "- Weight: %.0fkg\n", user.WeightKg)
	fmt.Fprintf(&sb, "- Height: %.0fcm\n", user.HeightCm)
	fmt.Fprintf(&sb, "- Activity Level: %s\n", user.ActivityLevel)
	fmt.Fprintf(&sb, "- Goal: %s\n\n", user.FitnessGoal)
	sb.WriteString(`Return ONLY a JSON object with these exact keys (numbers only): {"calories": 0, "protein": 0, "carbs": 0, "fat": 0}`)
	return sb.String()
}

// InsightPrompt asks for a two-sentence plain-text day summary; no JSON
// comes back from this one.
func InsightPrompt(goals models.DailyGoal, totals Macros, gym []models.GymLog, cardio []models.CardioLog, now time.Time) string {
	gymNames := make([]string, len(gym))
	for i, g := range gym {
		gymNames[i] = g.WorkoutName
	}
	cardioParts := make([]string, len(cardio))
	for i, c := range cardio {
		cardioParts[i] = fmt.Sprintf("%s (%d cal)", c.Type, c.Calories)
	}

	var sb strings.Builder
	sb.WriteString("You are a fitness coach. Analyze this day's data and give a 2-sentence summary/encouragement.\n")
	fmt.Fprintf(&sb, "Time: %s\n\n", now.Format("15:04:05"))
	fmt.Fprintf(&sb, "Goals: %.0f cal, %.0fg protein, %.0fg carbs, %.0fg fat\n", goals.Calories, goals.Protein, goals.Carbs, goals.Fat)
	fmt.Fprintf(&sb, "Consumed: %.0f cal, %.0fg protein, %.0fg carbs, %.0fg fat\n\n", totals.Cals, totals.Prot, totals.Carb, totals.Fat)
	fmt.Fprintf(&sb, "Workouts: %s\n", strings.Join(gymNames, ", "))
	fmt.Fprintf(&sb, "Cardio: %s\n\n", strings.Join(cardioParts, ", "))
	sb.WriteString("Keep it brief, motivating, and specific to the data. No markdown.")
	return sb.String()
}
