package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/handylink/handylink-backend/internal/services"
)

type WorkHandler struct {
	workService services.WorkService
}

func NewWorkHandler(workService services.WorkService) *WorkHandler {
	return &WorkHandler{workService: workService}
}

func (wh *WorkHandler) CreateWork(c *gin.Context) {
	var req struct {
		Title     string   `json:"title"`
		ImageURLs []string `json:"image_urls"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "invalid request body")
		return
	}

	view, err := wh.workService.CreateWork(c.Request.Context(), req.Title, req.ImageURLs)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondCreated(c, view)
}

func (wh *WorkHandler) GetWork(c *gin.Context) {
	workID, ok := pathUUID(c, "workId")
	if !ok {
		return
	}
	view, err := wh.workService.GetWork(c.Request.Context(), workID)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, view)
}

func (wh *WorkHandler) ListWorksByUser(c *gin.Context) {
	userID, ok := pathUUID(c, "userId")
	if !ok {
		return
	}
	views, err := wh.workService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, views)
}

func (wh *WorkHandler) UpdateWork(c *gin.Context) {
	workID, ok := pathUUID(c, "workId")
	if !ok {
		return
	}
	var req struct {
		Title string `json:"title"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "invalid request body")
		return
	}

	work, err := wh.workService.UpdateTitle(c.Request.Context(), workID, req.Title)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, work)
}

func (wh *WorkHandler) DeleteWork(c *gin.Context) {
	workID, ok := pathUUID(c, "workId")
	if !ok {
		return
	}
	if err := wh.workService.DeleteWork(c.Request.Context(), workID); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}

func (wh *WorkHandler) AddWorkImage(c *gin.Context) {
	workID, ok := pathUUID(c, "workId")
	if !ok {
		return
	}
	var req struct {
		URL string `json:"work_img_url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "invalid request body")
		return
	}

	image, err := wh.workService.AddImage(c.Request.Context(), workID, req.URL)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondCreated(c, image)
}

func (wh *WorkHandler) DeleteWorkImage(c *gin.Context) {
	workID, ok := pathUUID(c, "workId")
	if !ok {
		return
	}
	var req struct {
		URL string `json:"work_img_url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "invalid request body")
		return
	}

	if err := wh.workService.RemoveImage(c.Request.Context(), workID, req.URL); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}
