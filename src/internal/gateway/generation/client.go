package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"vocalwork/src/pkg/log"
	"vocalwork/src/pkg/metrics"
)

const (
	offerLetterFallback = "Could not generate offer letter at this time. Please try again."

	scriptCacheTTL = time.Hour
	callTimeout    = 10 * time.Second
)

var scriptFallback = Script{
	Instruction: "Read the following text clearly.",
	Script:      "This is a placeholder script because the AI generation failed.",
}

// Script is a generated voice-over task: delivery notes plus the text to
// read. The json tags match the shape the model is asked to produce.
type Script struct {
	Instruction string `json:"description"`
	Script      string `json:"script"`
}

// TextGenerator is the narrow surface this gateway needs from the model SDK.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string, jsonOutput bool) (string, error)
}

// Client produces offer letters and recording scripts. Every failure mode
// (transport, timeout, malformed output, nil generator) degrades to a fixed
// fallback; callers never see an error.
type Client struct {
	Generator TextGenerator
	Redis     redis.UniversalClient
	Log       log.Log
}

func NewClient(generator TextGenerator, redisClient redis.UniversalClient, logger log.Log) *Client {
	return &Client{
		Generator: generator,
		Redis:     redisClient,
		Log:       logger,
	}
}

func (c *Client) GenerateOfferLetter(ctx context.Context, candidateName, jobRole string) string {
	prompt := fmt.Sprintf(`Write a professional, encouraging offer letter for a candidate named %s for the position of %s at "VocalWork Agency".
The tone should be professional but modern.
Include placeholders for start date and salary, but keep it brief (under 200 words).
Format it in Markdown.`, candidateName, jobRole)

	text, err := c.generate(ctx, prompt, false)
	if err != nil || text == "" {
		c.Log.Warn("generation", "offer letter generation failed, using fallback", "GenerateOfferLetter", fmt.Sprint(err))
		metrics.GenerationFallbacks.WithLabelValues("offer_letter").Inc()
		return offerLetterFallback
	}
	return text
}

func (c *Client) GenerateScript(ctx context.Context, topic string) Script {
	if cached, ok := c.cachedScript(ctx, topic); ok {
		return cached
	}

	prompt := fmt.Sprintf(`Create a voice-over task based on this topic: "%s".
Return a JSON object with two fields:
1. "description": A brief instruction for the voice actor (tone, speed).
2. "script": The actual text they need to read (approx 30-50 words).
Ensure the output is valid JSON.`, topic)

	text, err := c.generate(ctx, prompt, true)
	if err != nil {
		c.Log.Warn("generation", "script generation failed, using fallback", "GenerateScript", fmt.Sprint(err))
		metrics.GenerationFallbacks.WithLabelValues("script").Inc()
		return scriptFallback
	}

	var script Script
	if err := json.Unmarshal([]byte(text), &script); err != nil || script.Script == "" {
		c.Log.Warn("generation", "script generation returned unusable JSON, using fallback", "GenerateScript", text)
		metrics.GenerationFallbacks.WithLabelValues("script").Inc()
		return scriptFallback
	}

	c.cacheScript(ctx, topic, script)
	return script
}

func (c *Client) generate(ctx context.Context, prompt string, jsonOutput bool) (string, error) {
	if c.Generator == nil {
		return "", fmt.Errorf("generator not configured")
	}
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()
	return c.Generator.GenerateText(ctx, prompt, jsonOutput)
}

func (c *Client) cachedScript(ctx context.Context, topic string) (Script, bool) {
	if c.Redis == nil {
		return Script{}, false
	}
	data, err := c.Redis.Get(ctx, scriptCacheKey(topic)).Result()
	if err != nil || data == "" {
		return Script{}, false
	}
	var script Script
	if err := json.Unmarshal([]byte(data), &script); err != nil {
		return Script{}, false
	}
	return script, true
}

func (c *Client) cacheScript(ctx context.Context, topic string, script Script) {
	if c.Redis == nil {
		return
	}
	data, err := json.Marshal(script)
	if err != nil {
		return
	}
	if err := c.Redis.Set(ctx, scriptCacheKey(topic), data, scriptCacheTTL).Err(); err != nil {
		c.Log.Warn("generation", "failed to cache generated script", "cacheScript", err.Error())
	}
}

func scriptCacheKey(topic string) string {
	return "GENERATION:SCRIPT:" + topic
}
