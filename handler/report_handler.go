package handler

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/wkchan/ifa-report-service/dto"
	"github.com/wkchan/ifa-report-service/service"
)

type ReportHandler struct {
	profileService *service.ProfileService
}

func NewReportHandler(profileService *service.ProfileService) *ReportHandler {
	return &ReportHandler{
		profileService: profileService,
	}
}

// ParseReport handles POST /report/parse. The narrative arrives either
// as a JSON body {"text": ...} or as an uploaded file in a multipart
// form. Empty input is rejected here; the parser itself never fails.
func (h *ReportHandler) ParseReport(c *gin.Context) {
	log.Println("Received report parse request")

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		h.parseUpload(c)
		return
	}

	var request dto.ParseReportRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := request.Validate(); err != nil {
		h.sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	response := h.profileService.ParseText(request.Text)
	c.JSON(http.StatusOK, response)
}

func (h *ReportHandler) parseUpload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "No file provided", err)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "Failed to open file", err)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "Failed to read file", err)
		return
	}

	password := c.PostForm("password")
	response, err := h.profileService.ParseDocument(fileHeader.Filename, data, password)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, dto.ErrEmptyInput) {
			status = http.StatusBadRequest
		}
		h.sendError(c, status, "Failed to parse document", err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// GetReport handles GET /report/:id.
func (h *ReportHandler) GetReport(c *gin.Context) {
	response, err := h.profileService.GetReport(c.Param("id"))
	if err != nil {
		h.sendError(c, http.StatusNotFound, "Report not found", err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// UpdateField handles PUT /report/:id/field with {"path", "value"}.
func (h *ReportHandler) UpdateField(c *gin.Context) {
	var request dto.UpdateFieldRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	response, err := h.profileService.UpdateField(c.Param("id"), request.Path, request.Value)
	if err != nil {
		h.sendError(c, statusFor(err), "Failed to update field", err)
		return
	}

	log.Printf("Updated %s on session %s", request.Path, c.Param("id"))
	c.JSON(http.StatusOK, response)
}

// AddItem handles POST /report/:id/items.
func (h *ReportHandler) AddItem(c *gin.Context) {
	var request dto.AddItemRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	response, err := h.profileService.AddItem(c.Param("id"), &request)
	if err != nil {
		h.sendError(c, statusFor(err), "Failed to add item", err)
		return
	}

	log.Printf("Added %s item to session %s", request.Kind, c.Param("id"))
	c.JSON(http.StatusOK, response)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, dto.ErrNoSuchRecord):
		return http.StatusNotFound
	case errors.Is(err, dto.ErrUnknownPath), errors.Is(err, dto.ErrUnknownKind):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// sendError sends a structured error response
func (h *ReportHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		log.Printf("Error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "REPORT_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}
