// Package gemini implements term extraction and definition generation
// using the Google Gemini API.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/pwalczak/gloss"
	"google.golang.org/genai"
)

// Extraction runs on the cheaper model; definitions need the larger one.
const (
	ExtractModel = "gemini-2.5-flash-lite"
	DefineModel  = "gemini-3-flash-preview"
)

// maxContextChars bounds the document context included in the
// definition prompt.
const maxContextChars = 2000

// Ensure Service implements both model-facing interfaces.
var (
	_ gloss.TermExtractor = (*Service)(nil)
	_ gloss.Definer       = (*Service)(nil)
)

// Service implements gloss.TermExtractor and gloss.Definer against the
// Gemini API. Calls are sequential; the optional limiter throttles them
// and the optional timeout bounds each round-trip.
type Service struct {
	client  *genai.Client
	level   gloss.ExpertiseLevel
	limiter gloss.Limiter
	timeout time.Duration
}

// NewService creates a Service targeting the given audience level.
func NewService(client *genai.Client, level gloss.ExpertiseLevel) *Service {
	return &Service{client: client, level: level}
}

// WithLimiter sets a rate limiter applied before every model call.
func (s *Service) WithLimiter(l gloss.Limiter) *Service {
	s.limiter = l
	return s
}

// WithTimeout bounds each model round-trip. Zero means the transport
// default.
func (s *Service) WithTimeout(d time.Duration) *Service {
	s.timeout = d
	return s
}

// ExtractTerms asks the model for up to gloss.MaxTerms notable terms in
// content. The model is instructed to self-limit; the result is capped
// locally as well since the service is untrusted.
func (s *Service) ExtractTerms(ctx context.Context, content string) ([]string, error) {
	text, err := s.generate(ctx, ExtractModel, BuildExtractPrompt(content, s.level), 500)
	if err != nil {
		return nil, err
	}

	terms, err := gloss.FindJSONArray(text)
	if err != nil {
		return nil, err
	}

	if len(terms) > gloss.MaxTerms {
		terms = terms[:gloss.MaxTerms]
	}
	for i, term := range terms {
		terms[i] = strings.ToLower(term)
	}
	return terms, nil
}

// DefineTerms asks the model to define the extracted terms using their
// source chunk as context, and attaches known documentation links.
func (s *Service) DefineTerms(ctx context.Context, terms []string, docContext string) (map[string]gloss.Entry, error) {
	if len(terms) == 0 {
		return map[string]gloss.Entry{}, nil
	}

	text, err := s.generate(ctx, DefineModel, BuildDefinePrompt(terms, docContext, s.level), 2000)
	if err != nil {
		return nil, err
	}

	entries, err := gloss.FindJSONEntries(text)
	if err != nil {
		return nil, err
	}

	for term, entry := range entries {
		if entry.DocLink == "" {
			entry.DocLink = gloss.FindDocLink(term)
			entries[term] = entry
		}
	}
	return entries, nil
}

// generate performs one blocking model round-trip and returns the reply
// text.
func (s *Service) generate(ctx context.Context, model, prompt string, maxTokens int32) (string, error) {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return "", err
		}
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	result, err := s.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(maxTokens),
	)
	if err != nil {
		return "", gloss.Errorf(gloss.EUNAVAILABLE, "gemini call failed: %s", err)
	}
	if result == nil {
		return "", gloss.Errorf(gloss.EINTERNAL, "gemini returned nil result")
	}

	return strings.TrimSpace(result.Text()), nil
}

// BuildConfig returns the GenerateContentConfig for glossary calls.
func BuildConfig(maxTokens int32) *genai.GenerateContentConfig {
	temp := float32(0.3)
	return &genai.GenerateContentConfig{
		Temperature:     &temp,
		MaxOutputTokens: maxTokens,
	}
}

// BuildExtractPrompt builds the term-extraction prompt for one chunk.
func BuildExtractPrompt(content string, level gloss.ExpertiseLevel) string {
	audience := level.Description()
	var sb strings.Builder
	fmt.Fprintf(&sb, "You are analyzing technical documentation for a %s.\n\n", audience)
	sb.WriteString("Extract technical terms, acronyms, and concepts that this audience might not fully understand or would benefit from clarification.\n\n")
	sb.WriteString("Document content:\n")
	sb.WriteString(content)
	sb.WriteString("\n\nInstructions:\n")
	sb.WriteString("1. Identify technical terms, acronyms, jargon, and complex concepts\n")
	fmt.Fprintf(&sb, "2. Focus on terms a %s might find challenging\n", audience)
	sb.WriteString("3. Include terms that are used in specific contexts in this document\n")
	sb.WriteString("4. Return ONLY a JSON array of terms (no explanations yet)\n")
	fmt.Fprintf(&sb, "5. Limit to the %d most important/complex terms if there are many\n", gloss.MaxTerms)
	sb.WriteString("6. Order by importance/complexity for the target audience\n\n")
	sb.WriteString(`Return format: ["term1", "term2", "term3", ...]`)
	return sb.String()
}

// BuildDefinePrompt builds the definition-generation prompt for a batch
// of terms.
func BuildDefinePrompt(terms []string, docContext string, level gloss.ExpertiseLevel) string {
	audience := level.Description()
	if len(docContext) > maxContextChars {
		docContext = docContext[:maxContextChars] + "..."
	}
	termsJSON, _ := json.Marshal(terms)

	var sb strings.Builder
	fmt.Fprintf(&sb, "You are creating a glossary for a %s.\n\n", audience)
	sb.WriteString("Document context (for reference):\n")
	sb.WriteString(docContext)
	sb.WriteString("\n\nGenerate clear, concise definitions for these technical terms:\n")
	sb.Write(termsJSON)
	sb.WriteString("\n\nFor each term:\n")
	sb.WriteString("1. Provide a clear definition (2-3 sentences max)\n")
	sb.WriteString("2. If the term has a specific meaning in the document context, mention it\n")
	fmt.Fprintf(&sb, "3. Keep explanations appropriate for a %s\n\n", audience)
	sb.WriteString("Return a JSON object with this structure:\n")
	sb.WriteString(`{"term": {"definition": "Clear explanation of the term", "context_note": "Optional: How it's specifically used in this document (if applicable)"}}`)
	return sb.String()
}
