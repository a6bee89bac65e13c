package repository

import (
	"context"
	"fmt"
	"time"

	"tpfx-journal/config"
	"tpfx-journal/internal/model"
	"tpfx-journal/pkg/logger"

	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// Fixed user-facing strings for every failure mode on the AI boundary. The
// analysis never propagates an error past this layer; callers display the
// returned text verbatim.
const (
	msgMissingAPIKey = "API Key is missing. Please configure your environment variables."
	msgNoTrades      = "No trades found for this period to analyze."
	msgEmptyResponse = "Could not generate analysis."
	msgServiceError  = "An error occurred while connecting to the AI service."
)

// AIRepository analyzes a month of journal entries and returns free-form
// markdown text. It never fails: every failure mode degrades to a fixed
// fallback string.
type AIRepository interface {
	AnalyzeMonth(ctx context.Context, trades []model.Trade, monthLabel string) string
}

// geminiAIRepository is an implementation of AIRepository backed by the
// Google Gemini API.
type geminiAIRepository struct {
	cfg            *config.Config
	logger         *logger.Logger
	requestLimiter *rate.Limiter
	genAiClient    *genai.Client
}

// NewGeminiAIRepository creates a new instance of geminiAIRepository. A
// missing API key is not an error here; the repository degrades to the fixed
// "key missing" message instead.
func NewGeminiAIRepository(cfg *config.Config, log *logger.Logger) (AIRepository, error) {
	r := &geminiAIRepository{
		cfg:    cfg,
		logger: log,
	}
	if cfg.Gemini.APIKey == "" {
		return r, nil
	}

	maxPerMinute := cfg.Gemini.MaxRequestPerMinute
	if maxPerMinute <= 0 {
		maxPerMinute = 10
	}
	secondsPerRequest := time.Minute / time.Duration(maxPerMinute)
	r.requestLimiter = rate.NewLimiter(rate.Every(secondsPerRequest), 1)

	genAiClient, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: cfg.Gemini.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	r.genAiClient = genAiClient

	return r, nil
}

func (r *geminiAIRepository) AnalyzeMonth(ctx context.Context, trades []model.Trade, monthLabel string) string {
	if r.genAiClient == nil {
		return msgMissingAPIKey
	}

	if len(trades) == 0 {
		return msgNoTrades
	}

	prompt := r.promptAnalyzeMonth(trades, monthLabel)

	if r.cfg.Gemini.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.Gemini.Timeout)
		defer cancel()
	}

	if err := r.requestLimiter.Wait(ctx); err != nil {
		r.logger.ErrorContext(ctx, "failed to wait for gemini request limit", logger.ErrorField(err))
		return msgServiceError
	}

	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}
	resp, err := r.genAiClient.Models.GenerateContent(ctx, r.cfg.Gemini.BaseModel, contents, nil)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to send request to gemini", logger.ErrorField(err))
		return msgServiceError
	}

	text := resp.Text()
	if text == "" {
		r.logger.WarnContext(ctx, "gemini returned no content", logger.StringField("month", monthLabel))
		return msgEmptyResponse
	}

	return text
}
