package permit

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"amlak/internal/application/permit/usecases"
	"amlak/internal/interfaces/http/middleware"
	"amlak/internal/shared/logger"
	"amlak/internal/shared/utils"
)

type PermitHandler struct {
	createPermitUC usecases.CreatePermitExecutor
	decidePermitUC usecases.DecidePermitExecutor
	getPermitUC    usecases.GetPermitExecutor
	listPermitsUC  usecases.ListPermitsExecutor
	logger         logger.Interface
}

func NewPermitHandler(
	createPermitUC usecases.CreatePermitExecutor,
	decidePermitUC usecases.DecidePermitExecutor,
	getPermitUC usecases.GetPermitExecutor,
	listPermitsUC usecases.ListPermitsExecutor,
) *PermitHandler {
	return &PermitHandler{
		createPermitUC: createPermitUC,
		decidePermitUC: decidePermitUC,
		getPermitUC:    getPermitUC,
		listPermitsUC:  listPermitsUC,
		logger:         logger.NewLogger(),
	}
}

// CreatePermit handles POST /permits
func (h *PermitHandler) CreatePermit(c *gin.Context) {
	var req CreatePermitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create permit", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := req.ToCommand(middleware.CurrentUserID(c))

	result, err := h.createPermitUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Permit created successfully")
}

// DecidePermit handles POST /permits/:id/decision
func (h *PermitHandler) DecidePermit(c *gin.Context) {
	permitID, err := parsePermitID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req DecidePermitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for decide permit", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.DecidePermitCommand{
		PermitID:      permitID,
		ActorID:       middleware.CurrentUserID(c),
		StaffOverride: middleware.CurrentUserRole(c).CanOverrideApprovals(),
		Action:        req.Action,
		Comments:      req.Comments,
	}

	result, err := h.decidePermitUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Permit decision recorded", result)
}

// GetPermit handles GET /permits/:id
func (h *PermitHandler) GetPermit(c *gin.Context) {
	permitID, err := parsePermitID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getPermitUC.Execute(c.Request.Context(), usecases.GetPermitCommand{PermitID: permitID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListPermits handles GET /permits
func (h *PermitHandler) ListPermits(c *gin.Context) {
	req, err := parseListPermitsRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listPermitsUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Permits, result.Total, result.Page, result.PageSize)
}
