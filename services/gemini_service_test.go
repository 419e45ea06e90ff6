package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gloverronan/HealthOS/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGemini(handler http.HandlerFunc) (*GeminiService, *httptest.Server) {
	srv := httptest.NewServer(handler)
	g := NewGeminiService()
	g.baseURL = srv.URL
	return g, srv
}

func geminiReply(text string) string {
	b, _ := json.Marshal(map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]any{{"text": text}}}},
		},
	})
	return string(b)
}

func TestGenerateContent(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		g, srv := newTestGemini(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Contains(t, r.URL.Path, "gemini-2.5-flash-preview-09-2025")
			assert.Equal(t, "test-key", r.URL.Query().Get("key"))
			w.Write([]byte(geminiReply("hello")))
		})
		defer srv.Close()

		out, err := g.GenerateContent("test-key", "say hello")
		require.NoError(t, err)
		assert.Equal(t, "hello", out)
	})

	t.Run("missing key rejected before any call", func(t *testing.T) {
		called := false
		g, srv := newTestGemini(func(w http.ResponseWriter, r *http.Request) { called = true })
		defer srv.Close()

		_, err := g.GenerateContent("", "prompt")
		assert.ErrorIs(t, err, ErrMissingAIKey)
		assert.False(t, called)
	})

	t.Run("non-200 surfaces status and body preview", func(t *testing.T) {
		g, srv := newTestGemini(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":"quota exceeded"}`))
		})
		defer srv.Close()

		_, err := g.GenerateContent("k", "prompt")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "429")
		assert.Contains(t, err.Error(), "quota exceeded")
	})

	t.Run("empty candidates", func(t *testing.T) {
		g, srv := newTestGemini(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"candidates":[]}`))
		})
		defer srv.Close()

		_, err := g.GenerateContent("k", "prompt")
		assert.ErrorIs(t, err, ErrEmptyAIReply)
	})

	t.Run("whitespace-only text", func(t *testing.T) {
		g, srv := newTestGemini(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(geminiReply("   \n ")))
		})
		defer srv.Close()

		_, err := g.GenerateContent("k", "prompt")
		assert.ErrorIs(t, err, ErrEmptyAIReply)
	})
}

func TestStripFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, StripFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripFences(`{"a":1}`))
}

func TestParseMacroEntry(t *testing.T) {
	raw := `{"name":"Chicken Rice","cals":650,"prot":45,"carb":70,"fat":15}`

	entry, err := ParseMacroEntry(raw)
	require.NoError(t, err)
	assert.Equal(t, "Chicken Rice", entry.Name)
	assert.Equal(t, 650.0, entry.Cals)

	// fenced and unfenced parse identically
	fenced, err := ParseMacroEntry("```json\n" + raw + "\n```")
	require.NoError(t, err)
	assert.Equal(t, entry, fenced)

	_, err = ParseMacroEntry("I am not JSON")
	assert.ErrorIs(t, err, ErrBadAIReply)

	_, err = ParseMacroEntry(`{"cals":650}`)
	assert.ErrorIs(t, err, ErrBadAIReply)
}

func TestParseMealSuggestions(t *testing.T) {
	raw := `[{"meal":"Greek Bowl","description":"d","ingredients":"i","instructions":"x",
		"macros":{"calories":550,"protein":40,"carbs":50,"fat":18}}]`

	out, err := ParseMealSuggestions(raw)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Greek Bowl", out[0].Meal)
	assert.Equal(t, 40.0, out[0].Macros.Protein)

	_, err = ParseMealSuggestions(`{"meal":"not an array"}`)
	assert.ErrorIs(t, err, ErrBadAIReply)

	_, err = ParseMealSuggestions(`[]`)
	assert.ErrorIs(t, err, ErrNoSuggestions)
}

func TestParseMacroPlan(t *testing.T) {
	plan, err := ParseMacroPlan("```json\n{\"calories\":2600,\"protein\":190,\"carbs\":280,\"fat\":85}\n```")
	require.NoError(t, err)
	assert.Equal(t, 2600.0, plan.Calories)

	_, err = ParseMacroPlan(`{"calories":0}`)
	assert.ErrorIs(t, err, ErrBadAIReply)
}

func TestTimeOfDay(t *testing.T) {
	assert.Equal(t, "breakfast", TimeOfDay(7))
	assert.Equal(t, "breakfast", TimeOfDay(10))
	assert.Equal(t, "lunch", TimeOfDay(11))
	assert.Equal(t, "lunch", TimeOfDay(14))
	assert.Equal(t, "dinner", TimeOfDay(15))
	assert.Equal(t, "dinner", TimeOfDay(19))
	assert.Equal(t, "snack", TimeOfDay(20))
	assert.Equal(t, "snack", TimeOfDay(2))
}

func TestMealSuggestionPrompt(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 30, 0, 0, time.Local)
	goals := models.DailyGoal{Calories: 2350, Protein: 180, Carbs: 250, Fat: 80}
	totals := Macros{Cals: 850, Prot: 60, Carb: 90, Fat: 30}

	prompt := MealSuggestionPrompt(totals, goals, nil, nil, []string{"Oats", "Eggs"}, "chicken", now)

	assert.Contains(t, prompt, "lunch")
	assert.Contains(t, prompt, "1500 cal")   // 2350-850 remaining
	assert.Contains(t, prompt, "120g protein")
	assert.Contains(t, prompt, "Oats, Eggs")
	assert.Contains(t, prompt, "chicken")
	assert.Contains(t, prompt, "No gym")

	empty := MealSuggestionPrompt(totals, goals, nil, nil, nil, "", now)
	assert.Contains(t, empty, "none yet")
	assert.Contains(t, empty, "None provided")
	assert.False(t, strings.Contains(empty, "chicken"))
}
