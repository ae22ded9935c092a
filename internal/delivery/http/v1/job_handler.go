package v1

import (
	"net/http"
	"strconv"

	"go-career-backend/internal/delivery/http/response"
	"go-career-backend/internal/domain"
	"go-career-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public *gin.RouterGroup, protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	jobs := public.Group("/jobs")
	{
		jobs.GET("", handler.List)
		jobs.GET("/recommendations/:email", handler.Recommendations)
		jobs.GET("/:id", handler.GetDetails)
	}

	protected.POST("/jobs", handler.Create)
}

type CreateJobRequest struct {
	Title        string               `json:"title" binding:"required"`
	Company      string               `json:"company" binding:"required"`
	Location     string               `json:"location" binding:"required"`
	District     string               `json:"district"`
	State        string               `json:"state"`
	Type         string               `json:"type" binding:"required"`
	Salary       domain.Salary        `json:"salary"`
	SalaryRange  string               `json:"salaryRange"`
	Category     string               `json:"category" binding:"required"`
	Tags         []string             `json:"tags"`
	Description  string               `json:"description"`
	Requirements []string             `json:"requirements"`
	Skills       []string             `json:"skills"`
	IsRural      bool                 `json:"isRural"`
	RuralDetails *domain.RuralDetails `json:"ruralDetails"`
}

// List godoc
// @Summary      List jobs
// @Description  Get jobs, optionally filtered by category, location or rural flag
// @Tags         jobs
// @Produce      json
// @Param        category  query     string  false  "Job category"
// @Param        location  query     string  false  "Location substring (case-insensitive)"
// @Param        is_rural  query     bool    false  "Rural jobs only"
// @Success      200       {object}  response.Response
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	filter := domain.JobFilter{
		Category: c.Query("category"),
		Location: c.Query("location"),
	}
	if raw := c.Query("is_rural"); raw != "" {
		isRural, err := strconv.ParseBool(raw)
		if err != nil {
			c.Error(apperror.BadRequest("Invalid is_rural value"))
			return
		}
		filter.IsRural = &isRural
	}

	jobs, err := h.jobUC.ListJobs(c, filter)
	if err != nil {
		c.Error(err)
		return
	}
	if jobs == nil {
		jobs = []domain.Job{}
	}

	response.Success(c, http.StatusOK, "Job list", gin.H{
		"jobs":  jobs,
		"total": len(jobs),
	})
}

// Recommendations godoc
// @Summary      Personalized job recommendations
// @Description  Rank all jobs against the user's profile and return the top matches
// @Tags         jobs
// @Produce      json
// @Param        email  path      string  true  "User email"
// @Success      200    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /jobs/recommendations/{email} [get]
func (h *JobHandler) Recommendations(c *gin.Context) {
	email := c.Param("email")

	matches, err := h.jobUC.GetRecommendations(c, email)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job recommendations", gin.H{
		"jobs":  matches,
		"total": len(matches),
	})
}

// GetDetails godoc
// @Summary      Get job details
// @Description  Get a job; with an email query the match percentage is computed too
// @Tags         jobs
// @Produce      json
// @Param        id     path      int     true   "Job ID"
// @Param        email  query     string  false  "User email for match score"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetDetails(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	match, err := h.jobUC.GetJobDetails(c, id, c.Query("email"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job details", match)
}

// Create godoc
// @Summary      Create a new job
// @Description  Create a job posting
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      CreateJobRequest  true  "Job JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job := &domain.Job{
		Title:        req.Title,
		Company:      req.Company,
		Location:     req.Location,
		District:     req.District,
		State:        req.State,
		Type:         req.Type,
		Salary:       req.Salary,
		SalaryRange:  req.SalaryRange,
		Category:     req.Category,
		Tags:         req.Tags,
		Description:  req.Description,
		Requirements: req.Requirements,
		Skills:       req.Skills,
		IsRural:      req.IsRural,
		RuralDetails: req.RuralDetails,
	}
	if job.Tags == nil {
		job.Tags = []string{}
	}

	if err := h.jobUC.CreateJob(c, job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job created", job)
}
