package season

import (
	"errors"
	"net/http"

	"github.com/clubhaus-app/clubhaus/pkg/responses"
	"github.com/clubhaus-app/clubhaus/pkg/validator"
	"github.com/gin-gonic/gin"
)

// SeasonController handles the season-transition administrative action.
type SeasonController struct {
	engine *Engine
}

// NewSeasonController creates a new season controller.
func NewSeasonController(engine *Engine) *SeasonController {
	return &SeasonController{engine: engine}
}

// RunTransitionRequest carries the ordered instruction list.
type RunTransitionRequest struct {
	Instructions []TransitionInstruction `json:"instructions" binding:"required,dive"`
}

// RunTransition godoc
// @Summary Run the season transition
// @Description Archives and promotes teams per the instruction list and propagates renames to rostered members. The whole batch commits atomically.
// @Tags Season
// @Accept json
// @Produce json
// @Param instructions body RunTransitionRequest true "Ordered transition instructions"
// @Success 200 {object} responses.SuccessResponse{data=TransitionResult}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 502 {object} responses.ErrorResponse "Storage read or commit failed, nothing was applied"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /season/transitions [post]
// @Security BearerAuth
func (sc *SeasonController) RunTransition(c *gin.Context) {
	var req RunTransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	result, err := sc.engine.Run(c.Request.Context(), req.Instructions)
	if err != nil {
		if errors.Is(err, ErrStorageUnavailable) || errors.Is(err, ErrStorageCommitFailed) {
			responses.SendError(c, http.StatusBadGateway, "Season transition failed, no changes were applied", err.Error())
			return
		}
		responses.SendError(c, http.StatusInternalServerError, "Season transition failed", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Season transition completed successfully", result)
}
