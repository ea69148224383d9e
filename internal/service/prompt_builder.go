package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"mindful-ai/internal/domain"
)

// PromptBuilder arma el prompt de consejeria que se envia al LLM.
type PromptBuilder struct{}

// BuildChatPrompt renderiza el template fijo sustituyendo datos personales,
// historial serializado, reporte de personalidad y mensaje actual.
func (PromptBuilder) BuildChatPrompt(
	personalInfo string,
	history domain.ChatHistory,
	inference domain.CategoryProfile,
	message string,
) string {
	historyJSON, err := json.Marshal(history)
	if err != nil {
		historyJSON = []byte("[]")
	}
	inferenceJSON, err := json.Marshal(inference)
	if err != nil {
		inferenceJSON = []byte("{}")
	}

	var sb strings.Builder

	sb.WriteString("CONTEXT: You are an AI-based Mental Health Chatbot. ")
	sb.WriteString("You will be provided a personality report containing personality traits like Conscientiousness, Openness to Experience, Agreeableness, Emotional Stability, Extraversion. ")
	sb.WriteString(fmt.Sprintf("A user with personal information %s will be chatting with you to know more about their personality, and may ask related questions. Politely answer them. ", personalInfo))
	sb.WriteString(fmt.Sprintf("Here is the history of chat %s, now the customer is saying %s. ", historyJSON, message))
	sb.WriteString("Please respond to the customer in a polite manner. In case there is no history of chat, just respond to the customer's current message.\n")

	sb.WriteString(fmt.Sprintf("Personality Report: %s\n", inferenceJSON))

	sb.WriteString("TASK: Based on the personality report, answer the user's questions politely and explain their personality briefly if asked. ")
	sb.WriteString("You can also ask the user questions if you need more information about their personality.\n")

	sb.WriteString("ANSWER: Respond in a few lines and be polite. If you don't know the answer, you can say \"I don't know.\" ")
	sb.WriteString(fmt.Sprintf("If you want to stop the chat, end your reply with the marker %s on its own.\n", StopMarker))

	sb.WriteString("SUB_TASKS: Help the user learn more about their personality, answer their questions, address their doubts as a friend, and provide information about their mental well-being. ")
	sb.WriteString("Offer support and guidance for improving mental health.\n")

	sb.WriteString("RESPONSE CONSTRAINT: DO NOT OUTPUT HISTORY OF CHAT, JUST OUTPUT RESPONSE TO THE CUSTOMER IN CONCISE WAY, PREFERABLY BULLET POINTS. ")
	sb.WriteString(fmt.Sprintf("Never write the word \"stop\" unless you are terminating the chat with %s.\n", StopMarker))

	return sb.String()
}
