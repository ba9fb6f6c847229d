package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"google.golang.org/genai"
)

// maxRounds bounds the function calls an expert can chain before answering.
const maxRounds = 16

// Expert is a chat with a model specialized in one domain. Other models ask
// it questions through its Declaration.
type Expert struct {
	Name        string                       `json:"name"`
	Description string                       `json:"description"`
	ModelName   string                       `json:"model_name"`
	Config      *genai.GenerateContentConfig `json:"config"`
	Library     Library                      `json:"-"` // answers the function calls of the model, if any.
	Log         zerolog.Logger               `json:"-"`
	chat        *genai.Chat
}

// Start creates the chat of the expert.
func (e *Expert) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, e.ModelName, e.Config, nil)
	if err != nil {
		return fmt.Errorf("starting expert %s: %w", e.Name, err)
	}
	e.chat = chat
	return nil
}

// Ask sends parts to the expert and returns its text answer. The function
// calls the model makes on the way are answered by the Library.
func (e *Expert) Ask(ctx context.Context, parts ...*genai.Part) (string, error) {
	if e.chat == nil {
		return "", fmt.Errorf("expert %s is not started", e.Name)
	}
	for range maxRounds {
		resp, err := e.chat.Send(ctx, parts...)
		if err != nil {
			return "", err
		}
		if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
			return "", fmt.Errorf("no response from expert %s", e.Name)
		}
		calls := resp.FunctionCalls()
		if len(calls) == 0 {
			return resp.Text(), nil
		}
		if e.Library == nil {
			return "", fmt.Errorf("expert %s doesn't know how to make function calls", e.Name)
		}
		parts = make([]*genai.Part, 0, len(calls))
		for _, call := range calls {
			e.Log.Debug().Str("expert", e.Name).Str("function", call.Name).Interface("args", call.Args).Msg("function call")
			parts = append(parts, &genai.Part{FunctionResponse: e.Library(ctx, call)})
		}
	}
	return "", fmt.Errorf("expert %s made more than %d rounds of function calls", e.Name, maxRounds)
}

// Declaration returns the function declaration to ask this expert a question.
func (e *Expert) Declaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        e.Name,
		Description: e.Description,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"question": {Type: genai.TypeString, Description: "The question for the expert, in plain English."},
			},
			Required: []string{"question"},
		},
		Response: &genai.Schema{Type: genai.TypeString, Description: "The answer of the expert."},
	}
}

// Call asks the question argument to the expert.
func (e *Expert) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	question, err := stringArg(args, "question", true)
	if err != nil {
		return failure(id, e.Name, err)
	}
	answer, err := e.Ask(ctx, genai.NewPartFromText(question))
	if err != nil {
		return failure(id, e.Name, fmt.Errorf("asking %s: %w", e.Name, err))
	}
	e.Log.Debug().Str("expert", e.Name).Str("question", question).Int("answer", len(answer)).Msg("expert answered")
	return success(id, e.Name, strings.TrimSpace(answer))
}
