package permit

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"amlak/internal/application/permit/usecases"
	"amlak/internal/interfaces/http/middleware"
	"amlak/internal/shared/logger"
	"amlak/internal/shared/utils"
)

type ApprovalHandler struct {
	listPendingUC    usecases.ListPendingApprovalsExecutor
	checkDeadlinesUC usecases.CheckDeadlinesExecutor
	logger           logger.Interface
}

func NewApprovalHandler(
	listPendingUC usecases.ListPendingApprovalsExecutor,
	checkDeadlinesUC usecases.CheckDeadlinesExecutor,
) *ApprovalHandler {
	return &ApprovalHandler{
		listPendingUC:    listPendingUC,
		checkDeadlinesUC: checkDeadlinesUC,
		logger:           logger.NewLogger(),
	}
}

// ListPendingApprovals handles GET /approvals/pending
func (h *ApprovalHandler) ListPendingApprovals(c *gin.Context) {
	cmd := usecases.ListPendingApprovalsCommand{
		AssigneeID: middleware.CurrentUserID(c),
	}

	result, err := h.listPendingUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Approvals)
}

// SweepDeadlines handles POST /approvals/sweep
func (h *ApprovalHandler) SweepDeadlines(c *gin.Context) {
	result, err := h.checkDeadlinesUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Deadline sweep completed", result)
}
