package controller

import (
	"ai-training-be/internal/dto"
	"ai-training-be/internal/pkg/serverutils"
	"ai-training-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IVoiceController interface {
	RegisterRoutes(r fiber.Router)
	ConversationToken(ctx *fiber.Ctx) error
	TextToSpeech(ctx *fiber.Ctx) error
	SpeechToText(ctx *fiber.Ctx) error
}

type voiceController struct {
	voiceService service.IVoiceService
	auth         *serverutils.AuthMiddleware
}

func NewVoiceController(voiceService service.IVoiceService, auth *serverutils.AuthMiddleware) IVoiceController {
	return &voiceController{
		voiceService: voiceService,
		auth:         auth,
	}
}

func (c *voiceController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/voice/v1")
	h.Use(c.auth.Handle)
	h.Get("token", c.ConversationToken)
	h.Post("tts", c.TextToSpeech)
	h.Post("stt", c.SpeechToText)
}

func (c *voiceController) ConversationToken(ctx *fiber.Ctx) error {
	agentId := ctx.Query("agent_id")

	res, err := c.voiceService.ConversationToken(ctx.Context(), agentId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success issue conversation token", res))
}

func (c *voiceController) TextToSpeech(ctx *fiber.Ctx) error {
	var req dto.TextToSpeechRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	audio, err := c.voiceService.TextToSpeech(ctx.Context(), &req)
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, "audio/mpeg")
	return ctx.Send(audio)
}

func (c *voiceController) SpeechToText(ctx *fiber.Ctx) error {
	contentType := ctx.Get(fiber.HeaderContentType, "audio/mpeg")

	res, err := c.voiceService.SpeechToText(ctx.Context(), ctx.Body(), contentType)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success transcribe audio", res))
}
