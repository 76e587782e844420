package calendar

// AssistantResponse is what the scheduling assistant shows the end user.
type AssistantResponse struct {
	Message          string
	SuggestedActions []string
}

// AssistantCallback processes one user prompt. The host application owns
// the actual language handling; the engine only routes.
type AssistantCallback func(prompt string) (AssistantResponse, error)

// Assistant is the optional chat integration point. It has no built-in
// language understanding: without a configured Callback it answers with a
// fixed configuration-error message.
type Assistant struct {
	Callback AssistantCallback
}

const assistantNotConfiguredMessage = "🚫 Erro de Configuração\n\n" +
	"Nenhum callback de IA foi configurado para este calendário.\n\n" +
	"Para desenvolvedores: configure Assistant.Callback para processar os " +
	"prompts e retornar respostas customizadas."

const assistantFailureMessage = "🚫 Desculpe, houve um erro ao processar " +
	"sua solicitação. Pode tentar novamente?"

// Respond handles one prompt. Callback errors degrade to a deterministic
// apology with a logged warning; they never propagate to the caller.
func (a *Assistant) Respond(prompt string) AssistantResponse {
	if a == nil || a.Callback == nil {
		return AssistantResponse{Message: assistantNotConfiguredMessage}
	}

	resp, err := a.Callback(prompt)
	if err != nil {
		logger.WithError(err).Warn("assistant callback failed")
		return AssistantResponse{Message: assistantFailureMessage}
	}
	if resp.Message == "" {
		logger.Warn("assistant callback returned empty response")
		return AssistantResponse{Message: assistantFailureMessage}
	}
	return resp
}
