package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/yukikurage/kiroku/internal/dto"
	apierrors "github.com/yukikurage/kiroku/internal/errors"
	"github.com/yukikurage/kiroku/internal/middleware"
	"github.com/yukikurage/kiroku/internal/services"
	"github.com/yukikurage/kiroku/internal/symptom"
)

// RecordHandler serves the symptom record endpoints.
type RecordHandler struct {
	recordService *services.RecordService
}

// NewRecordHandler creates a new RecordHandler.
func NewRecordHandler(recordService *services.RecordService) *RecordHandler {
	return &RecordHandler{
		recordService: recordService,
	}
}

// createRecordJSON is the JSON body of POST /api/records. Strengths may be
// numbers or numeric strings.
type createRecordJSON struct {
	Date              string                     `json:"date"`
	NumbnessStrength  json.RawMessage            `json:"numbness_strength"`
	NumbnessParts     []string                   `json:"numbness_parts"`
	StiffnessParts    []string                   `json:"stiffness_parts"`
	StiffnessStrength map[string]json.RawMessage `json:"stiffness_strength"`
	Memo              string                     `json:"memo"`
}

// ListRecords returns the current user's records.
func (h *RecordHandler) ListRecords(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	records, err := h.recordService.ListRecords(c.Request.Context(), userID)
	if err != nil {
		respondRecordError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRecordDTOs(records))
}

// CreateRecord stores a new record from a form post or a JSON body.
func (h *RecordHandler) CreateRecord(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	var input services.CreateRecordInput
	if c.ContentType() == binding.MIMEJSON {
		var req createRecordJSON
		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.BadRequest(c, "Invalid request body")
			return
		}
		input = req.toInput()
	} else {
		input = createRecordInputFromForm(c)
	}
	input.OwnerID = userID

	record, err := h.recordService.CreateRecord(c.Request.Context(), input)
	if err != nil {
		respondRecordError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRecordDTO(*record))
}

// DeleteRecord deletes one of the current user's records.
func (h *RecordHandler) DeleteRecord(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	recordID, ok := middleware.GetRecordID(c)
	if !ok {
		apierrors.BadRequest(c, "Invalid record ID")
		return
	}

	if err := h.recordService.DeleteRecord(c.Request.Context(), userID, recordID); err != nil {
		respondRecordError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Record deleted successfully",
	})
}

func (req createRecordJSON) toInput() services.CreateRecordInput {
	strength := make(map[symptom.Region]int, len(symptom.Regions))
	for _, r := range symptom.Regions {
		strength[r] = symptom.StrengthFromJSON(req.StiffnessStrength[string(r)])
	}

	return services.CreateRecordInput{
		Date:              req.Date,
		NumbnessStrength:  symptom.StrengthFromJSON(req.NumbnessStrength),
		NumbnessParts:     req.NumbnessParts,
		StiffnessParts:    req.StiffnessParts,
		StiffnessStrength: strength,
		Memo:              req.Memo,
	}
}

// createRecordInputFromForm reads the entry form. Multi-valued fields are
// accepted with or without the [] suffix.
func createRecordInputFromForm(c *gin.Context) services.CreateRecordInput {
	strength := make(map[symptom.Region]int, len(symptom.Regions))
	for _, r := range symptom.Regions {
		strength[r] = symptom.ParseStrength(c.DefaultPostForm("stiffness_strength_"+string(r), "0"))
	}

	return services.CreateRecordInput{
		Date:              c.PostForm("date"),
		NumbnessStrength:  symptom.ParseStrength(c.DefaultPostForm("numbness_strength", "0")),
		NumbnessParts:     postFormList(c, "numbness_parts"),
		StiffnessParts:    postFormList(c, "stiffness_parts"),
		StiffnessStrength: strength,
		Memo:              c.PostForm("memo"),
	}
}

func postFormList(c *gin.Context, key string) []string {
	return append(c.PostFormArray(key+"[]"), c.PostFormArray(key)...)
}

func respondRecordError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidDateFormat):
		apierrors.InvalidFormat(c, services.ErrInvalidDateFormat.Error())
	case errors.Is(err, services.ErrRecordNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrRecordForbidden):
		apierrors.Forbidden(c, "You cannot delete this record")
	default:
		_ = c.Error(err)
		apierrors.InternalError(c, "Internal server error")
	}
}
