package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"kora-backend/internal/config"
	apperrors "kora-backend/internal/errors"
	"kora-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// assistantFallbackMessage is returned whenever the completion provider is
// unreachable or unconfigured. The chat endpoint never surfaces upstream
// failures as errors.
const assistantFallbackMessage = "Sorry, the assistant is unavailable right now. Please try again later."

const assistantSystemPrompt = "You are a helpful assistant for a sports team coach. " +
	"Answer questions about the coach's roster, trainings and attendance using the context provided. " +
	"Keep answers short and practical. If the context does not contain the answer, say so."

// AssistantService proxies coach questions to an OpenAI-compatible chat
// completion API, enriched with a summary of the team's current state.
type AssistantService struct {
	playerRepo   repository.PlayerRepositoryInterface
	trainingRepo repository.TrainingRepositoryInterface
	teamRepo     repository.TeamRepositoryInterface
	httpClient   *http.Client
	apiURL       string
	apiKey       string
	model        string
	validator    *validator.Validate
}

// NewAssistantService creates a new assistant service
func NewAssistantService(playerRepo repository.PlayerRepositoryInterface, trainingRepo repository.TrainingRepositoryInterface, teamRepo repository.TeamRepositoryInterface, cfg *config.Config, validator *validator.Validate) *AssistantService {
	timeout := time.Duration(cfg.AssistantTimeout) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &AssistantService{
		playerRepo:   playerRepo,
		trainingRepo: trainingRepo,
		teamRepo:     teamRepo,
		httpClient:   &http.Client{Timeout: timeout},
		apiURL:       cfg.AssistantAPIURL,
		apiKey:       cfg.AssistantAPIKey,
		model:        cfg.AssistantModel,
		validator:    validator,
	}
}

// ChatRequest is one coach question. Context carries whatever extra text the
// client wants prepended, usually the prior turns of the conversation.
type ChatRequest struct {
	Message string `json:"message" validate:"required,max=4000"`
	Context string `json:"context,omitempty" validate:"max=8000"`
}

// ChatResponse is the assistant's reply. Degraded is set when the fallback
// message was substituted for a real completion.
type ChatResponse struct {
	Reply    string `json:"reply"`
	Degraded bool   `json:"degraded,omitempty"`
}

// completionRequest mirrors the OpenAI chat completion request shape
type completionRequest struct {
	Model    string              `json:"model"`
	Messages []completionMessage `json:"messages"`
}

type completionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionResponse struct {
	Choices []struct {
		Message completionMessage `json:"message"`
	} `json:"choices"`
}

// Chat answers a coach question in the context of one team. Provider
// failures degrade to a canned apology instead of an error so the chat UI
// stays usable.
func (s *AssistantService) Chat(coachID, teamID uuid.UUID, req *ChatRequest) (*ChatResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	team, err := s.teamRepo.GetForCoach(teamID, coachID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to verify team: %w", err)
	}

	if s.apiURL == "" || s.apiKey == "" {
		return &ChatResponse{Reply: assistantFallbackMessage, Degraded: true}, nil
	}

	teamContext, err := s.buildTeamContext(team.ID, team.Name)
	if err != nil {
		// A context-building failure should not take the chat down
		teamContext = fmt.Sprintf("Team: %s", team.Name)
	}

	messages := []completionMessage{
		{Role: "system", Content: assistantSystemPrompt},
		{Role: "system", Content: teamContext},
	}
	if req.Context != "" {
		messages = append(messages, completionMessage{Role: "system", Content: "Conversation so far:\n" + req.Context})
	}
	messages = append(messages, completionMessage{Role: "user", Content: req.Message})

	reply, err := s.complete(messages)
	if err != nil {
		return &ChatResponse{Reply: assistantFallbackMessage, Degraded: true}, nil
	}

	return &ChatResponse{Reply: reply}, nil
}

// buildTeamContext summarizes the roster and the upcoming schedule for the
// system prompt. Kept compact to limit prompt size.
func (s *AssistantService) buildTeamContext(teamID uuid.UUID, teamName string) (string, error) {
	players, err := s.playerRepo.ListByTeam(teamID, false)
	if err != nil {
		return "", fmt.Errorf("failed to load roster: %w", err)
	}

	now := time.Now()
	upcoming, err := s.trainingRepo.ListBetween(teamID, now, now.AddDate(0, 1, 0))
	if err != nil {
		return "", fmt.Errorf("failed to load trainings: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Team: %s\n", teamName)
	fmt.Fprintf(&b, "Roster (%d active players):\n", len(players))
	for _, p := range players {
		fmt.Fprintf(&b, "- #%d %s %s, position %s, status %s\n", p.JerseyNumber, p.FirstName, p.LastName, p.Position, p.Status)
	}
	fmt.Fprintf(&b, "Trainings in the next month (%d):\n", len(upcoming))
	for _, t := range upcoming {
		fmt.Fprintf(&b, "- %s, %s at %s\n", t.StartsAt.Format("Mon 2006-01-02 15:04"), t.Type, t.Location)
	}
	return b.String(), nil
}

func (s *AssistantService) complete(messages []completionMessage) (string, error) {
	body, err := json.Marshal(completionRequest{Model: s.model, Messages: messages})
	if err != nil {
		return "", fmt.Errorf("failed to marshal completion request: %w", err)
	}

	httpReq, err := http.NewRequest(http.MethodPost, s.apiURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create completion request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+s.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("completion request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	var completion completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", fmt.Errorf("failed to decode completion response: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("completion response contained no choices")
	}

	return completion.Choices[0].Message.Content, nil
}
