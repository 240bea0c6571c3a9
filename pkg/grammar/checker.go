package grammar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Candidate is one finding returned by the grammar source. Offset and Length
// are character positions into the checked text, exactly as reported
// upstream.
type Candidate struct {
	Message      string
	Context      string
	Offset       int
	Length       int
	Replacements []string
	Category     string
	Type         string
}

// Checker sends text to a LanguageTool-compatible HTTP API and returns the
// findings as typed candidates.
type Checker interface {
	Check(ctx context.Context, text string) ([]Candidate, error)
}

type LanguageToolChecker struct {
	BaseURL  string
	Language string
	Client   *http.Client
}

var _ Checker = &LanguageToolChecker{}

func NewLanguageToolChecker(baseURL, language string, timeout time.Duration) *LanguageToolChecker {
	return &LanguageToolChecker{
		BaseURL:  baseURL,
		Language: language,
		Client: &http.Client{
			Timeout: timeout,
		},
	}
}

// --- Response structs (internal to this package) ---

type ltResponse struct {
	Matches []ltMatch `json:"matches"`
}

type ltMatch struct {
	Message      string          `json:"message"`
	Offset       int             `json:"offset"`
	Length       int             `json:"length"`
	Context      ltContext       `json:"context"`
	Replacements []ltReplacement `json:"replacements"`
	Rule         ltRule          `json:"rule"`
}

type ltContext struct {
	Text string `json:"text"`
}

type ltReplacement struct {
	Value string `json:"value"`
}

type ltRule struct {
	IssueType string     `json:"issueType"`
	Category  ltCategory `json:"category"`
}

type ltCategory struct {
	Name string `json:"name"`
}

func (c *LanguageToolChecker) Check(ctx context.Context, text string) ([]Candidate, error) {
	form := url.Values{}
	form.Set("text", text)
	form.Set("language", c.Language)

	req, err := http.NewRequestWithContext(ctx, "POST", c.BaseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("languagetool request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("languagetool error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	var ltResp ltResponse
	if err := json.Unmarshal(bodyBytes, &ltResp); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	candidates := make([]Candidate, 0, len(ltResp.Matches))
	for _, match := range ltResp.Matches {
		replacements := make([]string, 0, len(match.Replacements))
		for _, r := range match.Replacements {
			replacements = append(replacements, r.Value)
		}
		candidates = append(candidates, Candidate{
			Message:      match.Message,
			Context:      match.Context.Text,
			Offset:       match.Offset,
			Length:       match.Length,
			Replacements: replacements,
			Category:     match.Rule.Category.Name,
			Type:         match.Rule.IssueType,
		})
	}

	return candidates, nil
}
