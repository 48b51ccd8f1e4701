package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/handylink/handylink-backend/internal/services"
)

type SkillHandler struct {
	skillService services.SkillService
}

func NewSkillHandler(skillService services.SkillService) *SkillHandler {
	return &SkillHandler{skillService: skillService}
}

func (sh *SkillHandler) ListSkills(c *gin.Context) {
	skills, err := sh.skillService.ListSkills(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, skills)
}

func (sh *SkillHandler) CreateSkill(c *gin.Context) {
	var req struct {
		Name string `json:"skill_name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "invalid request body")
		return
	}

	skill, err := sh.skillService.CreateSkill(c.Request.Context(), req.Name)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondCreated(c, skill)
}

func (sh *SkillHandler) ListHandymanSkills(c *gin.Context) {
	userID, ok := pathUUID(c, "userId")
	if !ok {
		return
	}
	skills, err := sh.skillService.ListHandymanSkills(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, skills)
}

func (sh *SkillHandler) AddHandymanSkill(c *gin.Context) {
	var req struct {
		SkillID    string `json:"skill_id"`
		Experience string `json:"experience"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "invalid request body")
		return
	}
	skillID, pErr := uuid.Parse(req.SkillID)
	if pErr != nil {
		RespondBadRequest(c, "invalid skill_id")
		return
	}

	registration, err := sh.skillService.AddHandymanSkill(c.Request.Context(), skillID, req.Experience)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondCreated(c, registration)
}

func (sh *SkillHandler) UpdateHandymanSkill(c *gin.Context) {
	skillID, ok := pathUUID(c, "skillId")
	if !ok {
		return
	}
	var req struct {
		Experience string `json:"experience"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "invalid request body")
		return
	}

	if err := sh.skillService.UpdateHandymanSkill(c.Request.Context(), skillID, req.Experience); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"updated": true})
}

func (sh *SkillHandler) DeleteHandymanSkill(c *gin.Context) {
	skillID, ok := pathUUID(c, "skillId")
	if !ok {
		return
	}
	if err := sh.skillService.RemoveHandymanSkill(c.Request.Context(), skillID); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}
