package v1

import (
	"net/http"
	"strconv"

	"go-career-backend/internal/delivery/http/response"
	"go-career-backend/internal/domain"
	"go-career-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type RoadmapHandler struct {
	roadmapUC domain.RoadmapUsecase
}

func NewRoadmapHandler(public *gin.RouterGroup, protected *gin.RouterGroup, roadmapUC domain.RoadmapUsecase) {
	handler := &RoadmapHandler{roadmapUC: roadmapUC}

	roadmap := public.Group("/roadmap")
	{
		roadmap.GET("/job/:jobId", handler.GetForJob)
		roadmap.GET("/:jobTitle", handler.GetByTitle)
	}

	protected.POST("/roadmap", handler.Save)
}

// GetForJob godoc
// @Summary      Get roadmap for a job
// @Description  Return the roadmap for a job, generating a default one on first access. With an email the match field reflects the caller's score.
// @Tags         roadmap
// @Produce      json
// @Param        jobId  path      int     true   "Job ID"
// @Param        email  query     string  false  "User email for match score"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /roadmap/job/{jobId} [get]
func (h *RoadmapHandler) GetForJob(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("jobId"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID format"))
		return
	}

	rm, err := h.roadmapUC.GetForJob(c, jobID, c.Query("email"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Roadmap", rm)
}

// GetByTitle godoc
// @Summary      Get roadmap by job title
// @Description  Case-insensitive substring lookup on the stored job title
// @Tags         roadmap
// @Produce      json
// @Param        jobTitle  path      string  true  "Job title"
// @Success      200       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Router       /roadmap/{jobTitle} [get]
func (h *RoadmapHandler) GetByTitle(c *gin.Context) {
	rm, err := h.roadmapUC.GetByTitle(c, c.Param("jobTitle"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Roadmap", rm)
}

// Save godoc
// @Summary      Create or update a roadmap
// @Description  Upsert a roadmap keyed by job title
// @Tags         roadmap
// @Accept       json
// @Produce      json
// @Param        roadmap  body      domain.Roadmap  true  "Roadmap JSON"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Router       /roadmap [post]
// @Security     BearerAuth
func (h *RoadmapHandler) Save(c *gin.Context) {
	var rm domain.Roadmap
	if err := c.ShouldBindJSON(&rm); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.roadmapUC.Save(c, &rm); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Roadmap saved", rm)
}
