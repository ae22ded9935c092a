package v1

import (
	"net/http"

	"go-career-backend/internal/delivery/http/response"
	"go-career-backend/internal/domain"
	"go-career-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUC domain.UserUsecase
}

func NewUserHandler(public *gin.RouterGroup, userUC domain.UserUsecase) {
	handler := &UserHandler{userUC: userUC}

	users := public.Group("/users")
	{
		users.POST("/onboarding", handler.SaveOnboarding)
		users.GET("/:email", handler.GetProfile)
		users.GET("/:email/dashboard", handler.GetDashboard)
	}
}

type OnboardingRequest struct {
	Email             string                    `json:"email" binding:"required,email"`
	ClerkID           string                    `json:"clerkId"`
	Location          *domain.Location          `json:"location"`
	AcademicDetails   *domain.AcademicDetails   `json:"academicDetails"`
	GraduationDetails *domain.GraduationDetails `json:"graduationDetails"`
	Interests         *domain.Interests         `json:"interests"`
	ChatbotData       *domain.ChatbotData       `json:"chatbotData"`
}

// SaveOnboarding godoc
// @Summary      Save onboarding data
// @Description  Create or merge-update a user profile; sections replace wholesale, chatbot conversations append
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        profile  body      OnboardingRequest  true  "Onboarding JSON"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /users/onboarding [post]
func (h *UserHandler) SaveOnboarding(c *gin.Context) {
	var req OnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	input := &domain.UserProfile{
		Email:   req.Email,
		ClerkID: req.ClerkID,
	}
	if req.Location != nil {
		input.Location = *req.Location
	}
	if req.AcademicDetails != nil {
		input.AcademicDetails = *req.AcademicDetails
	}
	if req.GraduationDetails != nil {
		input.GraduationDetails = *req.GraduationDetails
	}
	if req.Interests != nil {
		input.Interests = *req.Interests
	}
	if req.ChatbotData != nil {
		input.ChatbotData = *req.ChatbotData
	}

	profile, err := h.userUC.SaveOnboarding(c, input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile saved", profile)
}

// GetProfile godoc
// @Summary      Get user profile
// @Tags         users
// @Produce      json
// @Param        email  path      string  true  "User email"
// @Success      200    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /users/{email} [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	profile, err := h.userUC.GetProfile(c, c.Param("email"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User profile", profile)
}

// GetDashboard godoc
// @Summary      Get user dashboard
// @Description  Profile plus interest breakdown and skill gaps
// @Tags         users
// @Produce      json
// @Param        email  path      string  true  "User email"
// @Success      200    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /users/{email}/dashboard [get]
func (h *UserHandler) GetDashboard(c *gin.Context) {
	dashboard, err := h.userUC.GetDashboard(c, c.Param("email"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Dashboard", dashboard)
}
