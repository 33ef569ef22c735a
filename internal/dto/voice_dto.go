package dto

type ConversationTokenRequest struct {
	AgentId string `json:"agent_id"`
}

type ConversationTokenResponse struct {
	Token   string `json:"token"`
	AgentId string `json:"agent_id"`
}

type TextToSpeechRequest struct {
	VoiceId string `json:"voice_id"`
	Text    string `json:"text" validate:"required"`
}

type SpeechToTextResponse struct {
	Text string `json:"text"`
}
