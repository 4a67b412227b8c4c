package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"contact-manager-api/internal/application/ports"
	domain "contact-manager-api/internal/domain/contact"
	contactDB "contact-manager-api/internal/infrastructure/db/postgres/contact"
	"contact-manager-api/internal/infrastructure/jwt"
	"contact-manager-api/internal/interface/api/rest/dto/contact"
	"contact-manager-api/internal/interface/api/rest/middleware"
	"contact-manager-api/internal/interface/api/rest/validator"
)

type ContactController struct {
	contactService ports.ContactService
	logger         *zap.Logger
}

func NewContactController(
	r *gin.Engine,
	contactService ports.ContactService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *ContactController {
	cc := &ContactController{
		contactService: contactService,
		logger:         logger,
	}

	authed := middleware.AuthMiddleware(jwtService)
	r.GET(RouteContacts, authed, cc.GetContactsHandler)
	r.POST(RouteContacts, authed, cc.CreateContactHandler)
	r.GET(RouteContact, authed, cc.GetContactHandler)
	r.PUT(RouteContact, authed, cc.UpdateContactHandler)
	r.DELETE(RouteContact, authed, cc.DeleteContactHandler)

	return cc
}

func (cc *ContactController) GetContactsHandler(c *gin.Context) {
	owner, ok := authUserUUID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	page, err := validator.ValidatePage(c.Query("page"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	perPage, err := validator.ValidatePerPage(c.Query("per_page"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sort, err := validator.ValidateSort(c.Query("sort"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contacts, total, err := cc.contactService.FindContacts(c.Request.Context(), owner, domain.ListQuery{
		Search:  c.Query("search"),
		Sort:    sort,
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get contacts"},
		)
		cc.logger.Error("FindContacts() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, contact.ResponseData{
		Data:    contact.ToResponseContacts(contacts),
		Total:   total,
		Page:    page,
		PerPage: perPage,
	})
}

func (cc *ContactController) GetContactHandler(c *gin.Context) {
	owner, ok := authUserUUID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	ok, contactUUID := validator.IsUUID(c.Param("contact_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "contact_id must be a valid UUID"},
		)
		return
	}

	ct, err := cc.contactService.FindContactByUUID(c.Request.Context(), owner, contactUUID)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get the contact"},
		)
		cc.logger.Error("FindContactByUUID() error", zap.Error(err))
		return
	}
	if ct == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "contact not found"},
		)
		return
	}

	c.JSON(http.StatusOK, contact.ToResponseContact(*ct))
}

func (cc *ContactController) CreateContactHandler(c *gin.Context) {
	owner, ok := authUserUUID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	var req contact.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateContact(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	ct, err := cc.contactService.CreateContact(c.Request.Context(), owner, contact.ToDomainContact(req), req.HasCoordinates())
	if err != nil {
		cc.respondContactError(c, err, "CreateContact")
		return
	}

	c.JSON(http.StatusCreated, contact.ToResponseContact(*ct))
}

func (cc *ContactController) UpdateContactHandler(c *gin.Context) {
	owner, ok := authUserUUID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	ok, contactUUID := validator.IsUUID(c.Param("contact_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "contact_id must be a valid UUID"},
		)
		return
	}

	var req contact.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateContactUpdate(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	ct, err := cc.contactService.UpdateContact(c.Request.Context(), owner, contactUUID, contact.ToDomainUpdate(req))
	if err != nil {
		cc.respondContactError(c, err, "UpdateContact")
		return
	}
	if ct == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "contact not found"},
		)
		return
	}

	c.JSON(http.StatusOK, contact.ToResponseContact(*ct))
}

func (cc *ContactController) DeleteContactHandler(c *gin.Context) {
	owner, ok := authUserUUID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	ok, contactUUID := validator.IsUUID(c.Param("contact_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "contact_id must be a valid UUID"},
		)
		return
	}

	if err := cc.contactService.DeleteContact(c.Request.Context(), owner, contactUUID); err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to delete the contact"},
		)
		cc.logger.Error("DeleteContact() error", zap.Error(err))
		return
	}

	c.Status(http.StatusNoContent)
}

// respondContactError maps pipeline errors onto HTTP statuses: field
// validation → 422, unresolvable address → 422, duplicate cpf at the
// storage level → 409.
func (cc *ContactController) respondContactError(c *gin.Context, err error, op string) {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "invalid contact",
			"details": map[string]string{vErr.Field: vErr.Message},
		})
		return
	}
	if errors.Is(err, domain.ErrUnresolvableAddress) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	if errors.Is(err, contactDB.ErrCPFAlreadyExists) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	c.JSON(
		http.StatusInternalServerError,
		gin.H{"error": "failed to process the contact"},
	)
	cc.logger.Error(op+"() error", zap.Error(err))
}
