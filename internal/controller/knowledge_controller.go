package controller

import (
	"ai-training-be/internal/dto"
	"ai-training-be/internal/pkg/serverutils"
	"ai-training-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IKnowledgeController interface {
	RegisterRoutes(r fiber.Router)
}

type knowledgeController struct {
	knowledgeService service.IKnowledgeService
	auth             *serverutils.AuthMiddleware
}

func NewKnowledgeController(knowledgeService service.IKnowledgeService, auth *serverutils.AuthMiddleware) IKnowledgeController {
	return &knowledgeController{
		knowledgeService: knowledgeService,
		auth:             auth,
	}
}

func (c *knowledgeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/knowledge/v1")
	h.Use(c.auth.Handle)

	h.Get("documents", c.ListDocuments)
	h.Get("documents/:id", c.ShowDocument)
	h.Get("topics", c.ListTopics)
	h.Get("topics/:id/questions", c.ListQuestions)
	h.Post("search", c.Search)

	manage := h.Group("", c.auth.RequireRole("manager", "admin"))
	manage.Post("documents", c.CreateDocument)
	manage.Put("documents/:id", c.UpdateDocument)
	manage.Delete("documents/:id", c.DeleteDocument)
	manage.Post("topics", c.CreateTopic)
	manage.Delete("topics/:id", c.DeleteTopic)
}

func (c *knowledgeController) CreateDocument(ctx *fiber.Ctx) error {
	companyId, err := serverutils.CompanyID(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateDocumentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.knowledgeService.CreateDocument(ctx.Context(), companyId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create document", res))
}

func (c *knowledgeController) ShowDocument(ctx *fiber.Ctx) error {
	companyId, err := serverutils.CompanyID(ctx)
	if err != nil {
		return err
	}

	idParam := ctx.Params("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		return serverutils.NewBadRequest("Invalid document id")
	}

	res, err := c.knowledgeService.ShowDocument(ctx.Context(), companyId, id)
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.NewNotFound("Document not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show document", res))
}

func (c *knowledgeController) ListDocuments(ctx *fiber.Ctx) error {
	companyId, err := serverutils.CompanyID(ctx)
	if err != nil {
		return err
	}

	res, err := c.knowledgeService.ListDocuments(ctx.Context(), companyId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list documents", res))
}

func (c *knowledgeController) UpdateDocument(ctx *fiber.Ctx) error {
	companyId, err := serverutils.CompanyID(ctx)
	if err != nil {
		return err
	}

	idParam := ctx.Params("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		return serverutils.NewBadRequest("Invalid document id")
	}

	var req dto.UpdateDocumentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.knowledgeService.UpdateDocument(ctx.Context(), companyId, &req)
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.NewNotFound("Document not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update document", res))
}

func (c *knowledgeController) DeleteDocument(ctx *fiber.Ctx) error {
	companyId, err := serverutils.CompanyID(ctx)
	if err != nil {
		return err
	}

	idParam := ctx.Params("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		return serverutils.NewBadRequest("Invalid document id")
	}

	if err := c.knowledgeService.DeleteDocument(ctx.Context(), companyId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Document deleted", nil))
}

func (c *knowledgeController) CreateTopic(ctx *fiber.Ctx) error {
	companyId, err := serverutils.CompanyID(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateTopicRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.knowledgeService.CreateTopic(ctx.Context(), companyId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create topic", res))
}

func (c *knowledgeController) ListTopics(ctx *fiber.Ctx) error {
	companyId, err := serverutils.CompanyID(ctx)
	if err != nil {
		return err
	}

	res, err := c.knowledgeService.ListTopics(ctx.Context(), companyId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list topics", res))
}

func (c *knowledgeController) DeleteTopic(ctx *fiber.Ctx) error {
	companyId, err := serverutils.CompanyID(ctx)
	if err != nil {
		return err
	}

	idParam := ctx.Params("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		return serverutils.NewBadRequest("Invalid topic id")
	}

	if err := c.knowledgeService.DeleteTopic(ctx.Context(), companyId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Topic deleted", nil))
}

func (c *knowledgeController) ListQuestions(ctx *fiber.Ctx) error {
	idParam := ctx.Params("id")
	topicId, err := uuid.Parse(idParam)
	if err != nil {
		return serverutils.NewBadRequest("Invalid topic id")
	}

	res, err := c.knowledgeService.ListQuestions(ctx.Context(), topicId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list questions", res))
}

func (c *knowledgeController) Search(ctx *fiber.Ctx) error {
	companyId, err := serverutils.CompanyID(ctx)
	if err != nil {
		return err
	}

	var req dto.SearchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.knowledgeService.Search(ctx.Context(), companyId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success search knowledge", res))
}
