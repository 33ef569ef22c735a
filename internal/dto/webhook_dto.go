package dto

// ConvaiWebhookRequest is the post-call callback body from the voice API.
type ConvaiWebhookRequest struct {
	Type string            `json:"type"`
	Data ConvaiWebhookData `json:"data"`
}

type ConvaiWebhookData struct {
	AgentId        string `json:"agent_id"`
	ConversationId string `json:"conversation_id"`
	FullAudio      string `json:"full_audio"` // base64 mp3
}
