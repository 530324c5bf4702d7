package prompt_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/adopt-lab/harbinger/pkg/service/prompt"
)

func TestEstimateTokens(t *testing.T) {
	gt.Number(t, prompt.EstimateTokens("")).Equal(0)
	gt.Number(t, prompt.EstimateTokens("a")).Equal(1)
	gt.Number(t, prompt.EstimateTokens("abcd")).Equal(1)
	gt.Number(t, prompt.EstimateTokens("abcde")).Equal(2)
	gt.Number(t, prompt.EstimateTokens(strings.Repeat("x", 4000))).Equal(1000)
}

func TestTruncateToBudget(t *testing.T) {
	t.Run("compliant text is unchanged", func(t *testing.T) {
		text := "short prompt"
		gt.Value(t, prompt.TruncateToBudget(text, 100)).Equal(text)
	})

	t.Run("oversized text is cut and marked", func(t *testing.T) {
		text := strings.Repeat("x", 1000)
		got := prompt.TruncateToBudget(text, 100)
		gt.Bool(t, strings.HasSuffix(got, prompt.TruncationMarker)).True()
		gt.Number(t, len(got)).Equal(400)
	})

	t.Run("result never exceeds the budget", func(t *testing.T) {
		for _, size := range []int{0, 1, 50, 399, 400, 401, 4096} {
			text := strings.Repeat("y", size)
			for _, budget := range []int{1, 4, 10, 100} {
				got := prompt.TruncateToBudget(text, budget)
				if prompt.EstimateTokens(got) > budget {
					t.Errorf("size=%d budget=%d: estimate %d exceeds budget",
						size, budget, prompt.EstimateTokens(got))
				}
			}
		}
	})

	t.Run("truncation is idempotent", func(t *testing.T) {
		text := strings.Repeat("z", 2000)
		once := prompt.TruncateToBudget(text, 100)
		twice := prompt.TruncateToBudget(once, 100)
		gt.Value(t, twice).Equal(once)
	})

	t.Run("non-positive budget yields empty string", func(t *testing.T) {
		gt.Value(t, prompt.TruncateToBudget("anything", 0)).Equal("")
		gt.Value(t, prompt.TruncateToBudget("anything", -1)).Equal("")
	})
}

func TestBuilder(t *testing.T) {
	b := prompt.NewBuilder("Analyze the risk below.")
	b.Section("Risk").
		Field("Trigger", "progress_stall").
		Field("Severity", "high").
		List("Active risks", []string{"adoption lag", "budget overrun"}).
		List("Delayed milestones", nil).
		Text("Respond in JSON.")

	rendered := b.Render(1000)
	gt.Bool(t, strings.Contains(rendered, "Analyze the risk below.")).True()
	gt.Bool(t, strings.Contains(rendered, "## Risk")).True()
	gt.Bool(t, strings.Contains(rendered, "**Trigger:** progress_stall")).True()
	gt.Bool(t, strings.Contains(rendered, "- adoption lag")).True()
	gt.Bool(t, strings.Contains(rendered, "Delayed milestones")).False()

	tight := b.Render(10)
	gt.Number(t, prompt.EstimateTokens(tight)).LessOrEqual(10)
	gt.Bool(t, strings.HasSuffix(tight, prompt.TruncationMarker)).True()
}
