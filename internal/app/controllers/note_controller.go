package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studyconnect/backend/internal/app/models/dto"
	"github.com/studyconnect/backend/internal/app/services"
	"github.com/studyconnect/backend/internal/middleware"
	"github.com/studyconnect/backend/internal/pkg/helpers"
)

// NoteController handles study note operations.
type NoteController struct {
	noteService services.NoteService
}

// NewNoteController creates a new NoteController.
func NewNoteController(noteService services.NoteService) *NoteController {
	return &NoteController{noteService: noteService}
}

// ListNotes godoc
// @Summary List study notes
// @Description Get a filtered, sorted, paginated list of study notes
// @Tags notes
// @Produce json
// @Param subject query string false "Filter by subject"
// @Param university query string false "Filter by university"
// @Param contentType query string false "Filter by content type"
// @Param search query string false "Search in title, description and tags"
// @Param sortBy query string false "Sort key: recent, popular or rating"
// @Param limit query int false "Page size (default 20, max 100)"
// @Param offset query int false "Page offset (default 0)"
// @Success 200 {object} dto.APIResponse{data=dto.NoteListResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /notes [get]
func (c *NoteController) ListNotes(ctx *gin.Context) {
	limit, offset, err := helpers.ParseListParams(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	sortBy, ok := parseSortKey(ctx, "recent", "popular", "rating")
	if !ok {
		return
	}
	contentType, err := helpers.ParseOptionalEnum(ctx, "contentType",
		"lecture-notes", "assignment", "past-paper", "summary", "lab-report")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	filter := &dto.NoteFilter{
		Subject:     optionalQuery(ctx, "subject"),
		University:  optionalQuery(ctx, "university"),
		ContentType: contentType,
		Search:      optionalQuery(ctx, "search"),
		SortBy:      sortBy,
		Limit:       limit,
		Offset:      offset,
	}

	notes, err := c.noteService.ListNotes(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: notes})
}

// GetNote godoc
// @Summary Get a note by ID
// @Description Get note detail including attached files. Does not count a view.
// @Tags notes
// @Produce json
// @Param id path int true "Note ID"
// @Success 200 {object} dto.APIResponse{data=dto.NoteResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /notes/{id} [get]
func (c *NoteController) GetNote(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	note, err := c.noteService.GetNote(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: note})
}

// CreateNote godoc
// @Summary Upload a new note
// @Description Create a note with one or more attached files (multipart)
// @Tags notes
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param description formData string false "Description"
// @Param subject formData string true "Subject"
// @Param contentType formData string true "Content type"
// @Param university formData string true "University"
// @Param tags formData []string false "Tags"
// @Param files formData file true "Attached files"
// @Success 201 {object} dto.APIResponse{data=dto.NoteResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /notes [post]
func (c *NoteController) CreateNote(ctx *gin.Context) {
	userID, _, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateNoteRequest
	if err := ctx.ShouldBind(&req); err != nil {
		badRequest(ctx, "Invalid note fields: "+err.Error())
		return
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		badRequest(ctx, "Invalid multipart form")
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		badRequest(ctx, "At least one file is required")
		return
	}

	note, err := c.noteService.CreateNote(ctx, userID, &req, files)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: note})
}

// UpdateNote godoc
// @Summary Update a note
// @Description Update note fields. Only the uploader or an admin may update.
// @Tags notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Note ID"
// @Param request body dto.UpdateNoteRequest true "Note fields"
// @Success 200 {object} dto.APIResponse{data=dto.NoteResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /notes/{id} [put]
func (c *NoteController) UpdateNote(ctx *gin.Context) {
	userID, role, ok := requireUser(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateNoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid note fields: "+err.Error())
		return
	}

	note, err := c.noteService.UpdateNote(ctx, userID, role, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: note})
}

// DeleteNote godoc
// @Summary Delete a note
// @Description Delete a note with its files, ratings, comments and saves
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Note ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /notes/{id} [delete]
func (c *NoteController) DeleteNote(ctx *gin.Context) {
	userID, role, ok := requireUser(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.noteService.DeleteNote(ctx, userID, role, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Note deleted"}})
}

// RecordView godoc
// @Summary Record a note view
// @Description Increment the note's view counter
// @Tags notes
// @Produce json
// @Param id path int true "Note ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /notes/{id}/view [post]
func (c *NoteController) RecordView(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	views, err := c.noteService.RecordView(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: gin.H{"totalViews": views}})
}

// RecordDownload godoc
// @Summary Record a note download
// @Description Increment the note's download counter
// @Tags notes
// @Produce json
// @Param id path int true "Note ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /notes/{id}/download [post]
func (c *NoteController) RecordDownload(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	downloads, err := c.noteService.RecordDownload(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: gin.H{"totalDownloads": downloads}})
}

// ListRatings godoc
// @Summary List note ratings
// @Tags notes
// @Produce json
// @Param id path int true "Note ID"
// @Success 200 {object} dto.APIResponse{data=dto.RatingListResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /notes/{id}/ratings [get]
func (c *NoteController) ListRatings(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	limit, offset, err := helpers.ParseListParams(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ratings, err := c.noteService.ListRatings(ctx, id, limit, offset)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: ratings})
}

// RateNote godoc
// @Summary Rate a note
// @Description Create or replace the caller's rating and return the new aggregate
// @Tags notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Note ID"
// @Param request body dto.RateRequest true "Rating"
// @Success 200 {object} dto.APIResponse{data=dto.RatingSummary}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /notes/{id}/ratings [post]
func (c *NoteController) RateNote(ctx *gin.Context) {
	userID, _, ok := requireUser(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.RateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Rating must be an integer between 1 and 5")
		return
	}

	summary, err := c.noteService.RateNote(ctx, userID, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: summary})
}

// ListComments godoc
// @Summary List note comments
// @Tags notes
// @Produce json
// @Param id path int true "Note ID"
// @Success 200 {object} dto.APIResponse{data=dto.CommentListResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /notes/{id}/comments [get]
func (c *NoteController) ListComments(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	limit, offset, err := helpers.ParseListParams(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	comments, err := c.noteService.ListComments(ctx, id, limit, offset)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: comments})
}

// AddComment godoc
// @Summary Comment on a note
// @Tags notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Note ID"
// @Param request body dto.CommentRequest true "Comment"
// @Success 201 {object} dto.APIResponse{data=dto.CommentResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /notes/{id}/comments [post]
func (c *NoteController) AddComment(ctx *gin.Context) {
	userID, _, ok := requireUser(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Comment content is required")
		return
	}

	comment, err := c.noteService.AddComment(ctx, userID, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: comment})
}

// DeleteComment godoc
// @Summary Delete a comment
// @Description Delete a comment. Only the author or an admin may delete.
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Note ID"
// @Param commentId path int true "Comment ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /notes/{id}/comments/{commentId} [delete]
func (c *NoteController) DeleteComment(ctx *gin.Context) {
	userID, role, ok := requireUser(ctx)
	if !ok {
		return
	}
	commentID, ok := parseIDParam(ctx, "commentId")
	if !ok {
		return
	}

	if err := c.noteService.DeleteComment(ctx, userID, role, commentID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Comment deleted"}})
}

// GetSaved godoc
// @Summary Check whether the note is saved
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Note ID"
// @Success 200 {object} dto.APIResponse{data=dto.SavedResponse}
// @Router /notes/{id}/save [get]
func (c *NoteController) GetSaved(ctx *gin.Context) {
	userID, _, ok := requireUser(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	saved, err := c.noteService.IsNoteSaved(ctx, userID, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SavedResponse{Saved: saved}})
}

// SaveNote godoc
// @Summary Save a note
// @Description Saving an already saved note is a no-op
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Note ID"
// @Success 200 {object} dto.APIResponse{data=dto.SavedResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /notes/{id}/save [post]
func (c *NoteController) SaveNote(ctx *gin.Context) {
	userID, _, ok := requireUser(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.noteService.SaveNote(ctx, userID, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SavedResponse{Saved: true}})
}

// UnsaveNote godoc
// @Summary Remove a note from saved items
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Note ID"
// @Success 200 {object} dto.APIResponse{data=dto.SavedResponse}
// @Router /notes/{id}/save [delete]
func (c *NoteController) UnsaveNote(ctx *gin.Context) {
	userID, _, ok := requireUser(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.noteService.UnsaveNote(ctx, userID, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SavedResponse{Saved: false}})
}

// ListSavedNotes godoc
// @Summary List the caller's saved notes
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.NoteListResponse}
// @Router /me/saved-notes [get]
func (c *NoteController) ListSavedNotes(ctx *gin.Context) {
	userID, _, ok := requireUser(ctx)
	if !ok {
		return
	}
	limit, offset, err := helpers.ParseListParams(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	notes, err := c.noteService.ListSavedNotes(ctx, userID, limit, offset)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: notes})
}
