// internal/httpapi/attachment_handlers.go
package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/taskdeck/taskdeck/internal/service"
)

// createAttachmentRequest carries the file inline; Content is base64
// in the JSON body.
type createAttachmentRequest struct {
	FileName string `json:"fileName"`
	FileSize int64  `json:"fileSize"`
	FileType string `json:"fileType"`
	Content  []byte `json:"fileContent"`
}

func (h *Handler) handleCreateAttachment(w http.ResponseWriter, r *http.Request) {
	accountID, err := accountIDFromRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	taskID, err := pathUUID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	var req createAttachmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	attachment, err := h.attachments.CreateAttachment(r.Context(), accountID, taskID, service.CreateAttachmentInput{
		FileName: req.FileName,
		FileSize: req.FileSize,
		FileType: req.FileType,
		Content:  req.Content,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]uuid.UUID{"attachmentId": attachment.ID})
}

func (h *Handler) handleDeleteAttachment(w http.ResponseWriter, r *http.Request) {
	accountID, err := accountIDFromRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	taskID, err := pathUUID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	attachmentID, err := pathUUID(r, "attachmentId")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	if err := h.attachments.DeleteAttachment(r.Context(), accountID, taskID, attachmentID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
