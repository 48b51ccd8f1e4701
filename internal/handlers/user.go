package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/handylink/handylink-backend/internal/domain/fault"
	"github.com/handylink/handylink-backend/internal/requestdata"
	"github.com/handylink/handylink-backend/internal/services"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// actorID reads the identity attached by the auth middleware.
func actorID(c *gin.Context) (uuid.UUID, error) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		return uuid.Nil, fault.New(fault.CodeUnauthenticated, "http", "authentication required")
	}
	return rd.UserID, nil
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		RespondBadRequest(c, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

func (uh *UserHandler) GetProfile(c *gin.Context) {
	userID, aErr := actorID(c)
	if aErr != nil {
		RespondError(c, aErr)
		return
	}

	profile, err := uh.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, profile)
}

func (uh *UserHandler) UpdateProfile(c *gin.Context) {
	var req struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "invalid request body")
		return
	}

	user, err := uh.userService.UpdateName(c.Request.Context(), req.FirstName, req.LastName)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, user)
}

func (uh *UserHandler) AddPhoneNumber(c *gin.Context) {
	var req struct {
		Number    string `json:"phone_number"`
		IsPrimary bool   `json:"is_primary"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "invalid request body")
		return
	}

	phone, err := uh.userService.AddPhone(c.Request.Context(), req.Number, req.IsPrimary)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondCreated(c, phone)
}

func (uh *UserHandler) UpdatePhoneNumber(c *gin.Context) {
	phoneID, ok := pathUUID(c, "phoneId")
	if !ok {
		return
	}
	var req struct {
		Number    string `json:"phone_number"`
		IsPrimary bool   `json:"is_primary"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "invalid request body")
		return
	}

	phone, err := uh.userService.UpdatePhone(c.Request.Context(), phoneID, req.Number, req.IsPrimary)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, phone)
}

func (uh *UserHandler) DeletePhoneNumber(c *gin.Context) {
	phoneID, ok := pathUUID(c, "phoneId")
	if !ok {
		return
	}
	if err := uh.userService.DeletePhone(c.Request.Context(), phoneID); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}

func (uh *UserHandler) SetProfileImage(c *gin.Context) {
	var req struct {
		URL string `json:"profile_img_url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "invalid request body")
		return
	}

	image, err := uh.userService.SetProfileImage(c.Request.Context(), req.URL)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, image)
}

func (uh *UserHandler) DeleteProfileImage(c *gin.Context) {
	if err := uh.userService.DeleteProfileImage(c.Request.Context()); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}
