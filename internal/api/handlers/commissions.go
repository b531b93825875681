package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xeipuuv/gojsonschema"

	"github.com/eshaffer321/komisi/internal/api/dto"
	"github.com/eshaffer321/komisi/internal/application/service"
	"github.com/eshaffer321/komisi/internal/domain/commission"
)

// maxBodyBytes bounds the size of a calculation request body.
const maxBodyBytes = 64 << 10

var calculateSchema = mustSchema(dto.CalculateCommissionSchema)

func mustSchema(schema string) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schema))
	if err != nil {
		panic(err)
	}
	return s
}

// CommissionsHandler handles commission calculation requests.
type CommissionsHandler struct {
	Base
	svc *service.CommissionService
}

// NewCommissionsHandler creates a new commissions handler.
func NewCommissionsHandler(svc *service.CommissionService) *CommissionsHandler {
	return &CommissionsHandler{svc: svc}
}

// Calculate handles POST /api/commissions.
func (h *CommissionsHandler) Calculate(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes+1))
	if err != nil {
		h.WriteError(c, http.StatusBadRequest, dto.BadRequestError("failed to read request body"))
		return
	}
	if len(body) > maxBodyBytes {
		h.WriteError(c, http.StatusRequestEntityTooLarge, dto.BadRequestError("request body too large"))
		return
	}

	result, err := calculateSchema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		h.WriteError(c, http.StatusBadRequest, dto.BadRequestError("request body must be valid JSON"))
		return
	}
	if !result.Valid() {
		h.WriteError(c, http.StatusUnprocessableEntity, schemaError(result.Errors()))
		return
	}

	var req dto.CalculateCommissionRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.WriteError(c, http.StatusBadRequest, dto.BadRequestError("invalid request body"))
		return
	}

	date, err := service.ParseDate(req.Date)
	if err != nil {
		h.WriteError(c, http.StatusUnprocessableEntity, dto.ValidationError(err.Error()))
		return
	}

	breakdown, err := h.svc.Calculate(c.Request.Context(), service.CalculateRequest{
		Price:          req.Price,
		LeadGenerators: req.LeadGenerators,
		Telemarketing:  req.Telemarketing,
		Conversion:     req.Conversion,
		Date:           date,
	})
	if err != nil {
		h.WriteServiceError(c, err)
		return
	}

	h.WriteJSON(c, http.StatusOK, dto.NewCommissionResponse(breakdown))
}

// schemaError reports the first schema violation. A bad price is reported
// with the same code the service uses so clients see one code per mistake.
func schemaError(errs []gojsonschema.ResultError) dto.APIError {
	for _, e := range errs {
		if e.Field() == "price" {
			return dto.NewAPIError(commission.CodeInvalidPrice, commission.ErrInvalidPrice.Error())
		}
	}
	if len(errs) == 0 {
		return dto.ValidationError("invalid request body")
	}
	return dto.ValidationError(errs[0].String())
}
