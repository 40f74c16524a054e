package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strings"

	"emretopal/cv-analiz/internal/models"
)

// Fallback list shown when the model registry cannot be reached.
var defaultModels = []string{"llama3:8b", "deepseek-coder:6.7b-instruct-q4_K_M"}

type AnalyzerService interface {
	AnalyzeFile(ctx context.Context, filePath, modelID string) (models.RawResult, error)
	AvailableModels(ctx context.Context) []string
}

type analyzerService struct {
	parser         DocumentParserService
	ollama         OllamaService
	gemini         GeminiService
	promptBuilder  *PromptBuilder
	maxPromptChars int
}

func NewAnalyzerService(
	parser DocumentParserService,
	ollama OllamaService,
	gemini GeminiService,
	maxPromptChars int,
) AnalyzerService {
	return &analyzerService{
		parser:         parser,
		ollama:         ollama,
		gemini:         gemini,
		promptBuilder:  NewPromptBuilder(),
		maxPromptChars: maxPromptChars,
	}
}

// AnalyzeFile runs the analysis pipeline for one document: extract text,
// prompt the model, pull the JSON out of the reply. An unparsable reply
// becomes an error payload; a parsable reply that misses the expected
// shape keeps its data and gets the hidden diagnostic fields attached.
func (a *analyzerService) AnalyzeFile(ctx context.Context, filePath, modelID string) (models.RawResult, error) {
	text, err := a.parser.ExtractText(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to extract document text: %w", err)
	}

	text = CleanText(text)
	if len(text) > a.maxPromptChars {
		log.Printf("⚠️  CV text too long (%d chars), truncating\n", len(text))
		text = text[:a.maxPromptChars]
	}

	prompt := a.promptBuilder.BuildAnalysisPrompt(text)

	reply, err := a.generate(ctx, modelID, prompt)
	if err != nil {
		return nil, fmt.Errorf("model request failed: %w", err)
	}

	raw, perr := ExtractJSON(reply)
	if perr != nil {
		log.Printf("❌ Failed to extract JSON from model reply: %v\n", perr)
		return models.RawResult{
			"error":        fmt.Sprintf("Model yanıtından JSON çıkarılamadı: %v", perr),
			"raw_response": clip(reply, 500),
		}, nil
	}

	if verr := validateResultPayload(raw); verr != nil {
		log.Printf("⚠️  Model reply failed schema validation: %v\n", verr)
		raw["_hata_bilgisi"] = verr.Error()
		raw["_ham_yanit"] = clip(reply, 500)
	}

	return raw, nil
}

// AvailableModels lists the installed Ollama models, falling back to the
// fixed defaults when the registry is unreachable.
func (a *analyzerService) AvailableModels(ctx context.Context) []string {
	names, err := a.ollama.ListModels(ctx)
	if err != nil || len(names) == 0 {
		return defaultModels
	}
	return names
}

// generate routes the prompt to a provider by model identifier: gemini
// models to the Gemini client, everything else to Ollama.
func (a *analyzerService) generate(ctx context.Context, modelID, prompt string) (string, error) {
	if strings.HasPrefix(strings.ToLower(modelID), "gemini") {
		if a.gemini == nil {
			return "", fmt.Errorf("gemini model requested but no API key configured")
		}
		return a.gemini.GenerateText(ctx, modelID, prompt)
	}
	return a.ollama.Generate(ctx, modelID, prompt)
}

var (
	trailingCommaPattern = regexp.MustCompile(`,\s*([}\]])`)
	nullValuePattern     = regexp.MustCompile(`:\s*(null|undefined)`)
)

// ExtractJSON pulls a JSON object out of a model reply. Code fences are
// stripped, the outermost brace pair is sliced out, and a repair pass
// fixes the usual LLM quirks before giving up.
func ExtractJSON(text string) (models.RawResult, error) {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return nil, fmt.Errorf("no JSON structure found in reply")
	}
	content := text[start : end+1]

	var raw models.RawResult
	if err := json.Unmarshal([]byte(content), &raw); err == nil {
		return raw, nil
	}

	fixed := strings.ReplaceAll(content, "'", `"`)
	fixed = trailingCommaPattern.ReplaceAllString(fixed, "$1")
	fixed = nullValuePattern.ReplaceAllString(fixed, `: ""`)
	fixed = strings.NewReplacer("\r", " ", "\n", " ", "\t", " ").Replace(fixed)

	if err := json.Unmarshal([]byte(fixed), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse reply as JSON: %w", err)
	}
	return raw, nil
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
