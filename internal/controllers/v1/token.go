package v1

import (
	"net/http"

	"github.com/expense-tracker/backend/internal/httperror"
	"github.com/gin-gonic/gin"
)

// The json tags are not used for binding, they give validation errors the
// field names that appear on the wire.
type tokenRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type" example:"bearer"`
}

// RegisterTokenRoutes registers the routes for token issuance with
// the RouterGroup that is passed.
func (co Controller) RegisterTokenRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsToken)
	r.POST("", co.CreateToken)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Authentication
// @Success		204
// @Router			/auth/token [options]
func (co Controller) OptionsToken(c *gin.Context) {
	optionsPost(c)
}

// @Summary		Issue access token
// @Description	Exchanges a username and password for a time-limited bearer token
// @Tags			Authentication
// @Accept			x-www-form-urlencoded
// @Produce		json
// @Success		200			{object}	tokenResponse
// @Failure		401			{object}	httperror.Error
// @Failure		422			{object}	httperror.Error
// @Param			username	formData	string	true	"Username"
// @Param			password	formData	string	true	"Password"
// @Router			/auth/token [post]
func (co Controller) CreateToken(c *gin.Context) {
	var request tokenRequest
	if err := c.ShouldBind(&request); err != nil {
		if fields := httperror.Fields(err); fields != nil {
			httperror.Unprocessable(c, fields)
			return
		}

		httperror.New(c, http.StatusBadRequest, "the body of your request contains invalid or un-parseable data")
		return
	}

	if !co.auth.Authenticate(request.Username, request.Password) {
		httperror.New(c, http.StatusUnauthorized, "incorrect username or password")
		return
	}

	token, err := co.auth.IssueToken(request.Username)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
