package v1

import (
	"io"
	"net/http"
	"time"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/storage"

	"github.com/gin-gonic/gin"
)

const (
	maxUploadBytes = 5 << 20 // 5 MiB
	imageMaxDim    = 800
	imageQuality   = 85
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
	files     *storage.FileStore
}

func NewProfileHandler(public *gin.RouterGroup, protected *gin.RouterGroup, profileUC domain.ProfileUsecase, files *storage.FileStore) {
	handler := &ProfileHandler{profileUC: profileUC, files: files}

	// Public profile pages
	public.GET("/job-seekers/:slug", handler.GetJobSeekerBySlug)
	public.GET("/companies/:slug", handler.GetEmployerBySlug)

	profiles := protected.Group("/profiles")
	{
		profiles.GET("/me", handler.Me)
		profiles.GET("/dashboard", handler.Dashboard)

		seeker := profiles.Group("/job-seeker", middleware.RequireRole(domain.RoleJobSeeker))
		{
			seeker.POST("", handler.CreateJobSeeker)
			seeker.PUT("", handler.UpdateJobSeeker)
			seeker.POST("/photo", handler.UploadPhoto)
			seeker.POST("/resume", handler.UploadResume)
		}

		employer := profiles.Group("/employer", middleware.RequireRole(domain.RoleEmployer))
		{
			employer.POST("", handler.CreateEmployer)
			employer.PUT("", handler.UpdateEmployer)
			employer.POST("/logo", handler.UploadLogo)
		}
	}
}

type JobSeekerProfileRequest struct {
	PhotoURL    string `json:"photo_url" binding:"omitempty,url"`
	BirthDate   string `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
	PhoneNumber string `json:"phone_number" binding:"omitempty,valid_phone"`
	Education   string `json:"education"`
	Skills      string `json:"skills"`
	Experience  string `json:"experience"`
	ResumeURL   string `json:"resume_url" binding:"omitempty,url"`
}

type EmployerProfileRequest struct {
	CompanyName        string `json:"company_name" binding:"required,min=2,max=100,valid_name"`
	CompanyLogoURL     string `json:"company_logo_url" binding:"omitempty,url"`
	CompanyDescription string `json:"company_description"`
	CompanyWebsite     string `json:"company_website" binding:"omitempty,url"`
	CompanyAddress     string `json:"company_address"`
	CompanyPhone       string `json:"company_phone" binding:"omitempty,valid_phone"`
	CompanyEmail       string `json:"company_email" binding:"omitempty,email"`
}

func (r *JobSeekerProfileRequest) toDomain() (*domain.JobSeekerProfile, error) {
	p := &domain.JobSeekerProfile{
		PhotoURL:    toPtr(r.PhotoURL),
		PhoneNumber: toPtr(r.PhoneNumber),
		Education:   toPtr(r.Education),
		Skills:      toPtr(r.Skills),
		Experience:  toPtr(r.Experience),
		ResumeURL:   toPtr(r.ResumeURL),
	}
	if r.BirthDate != "" {
		t, err := time.Parse("2006-01-02", r.BirthDate)
		if err != nil {
			return nil, apperror.BadRequest("Invalid birth date")
		}
		p.BirthDate = &t
	}
	return p, nil
}

func (r *EmployerProfileRequest) toDomain() *domain.EmployerProfile {
	return &domain.EmployerProfile{
		CompanyName:        r.CompanyName,
		CompanyLogoURL:     toPtr(r.CompanyLogoURL),
		CompanyDescription: toPtr(r.CompanyDescription),
		CompanyWebsite:     toPtr(r.CompanyWebsite),
		CompanyAddress:     toPtr(r.CompanyAddress),
		CompanyPhone:       toPtr(r.CompanyPhone),
		CompanyEmail:       toPtr(r.CompanyEmail),
	}
}

// Me godoc
// @Summary      Resolve own profile
// @Description  Returns the account's profile as a tagged union; kind is none when no profile exists yet
// @Tags         profiles
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /profiles/me [get]
// @Security     BearerAuth
func (h *ProfileHandler) Me(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	lookup, err := h.profileUC.Resolve(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", lookup)
}

// Dashboard godoc
// @Summary      Account dashboard
// @Description  Returns the resolved profile plus recent activity: latest applications for job seekers, latest vacancies and received applications for employers
// @Tags         profiles
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /profiles/dashboard [get]
// @Security     BearerAuth
func (h *ProfileHandler) Dashboard(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	dashboard, err := h.profileUC.GetDashboard(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", dashboard)
}

// CreateJobSeeker godoc
// @Summary      Create job seeker profile
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        profile  body      JobSeekerProfileRequest  true  "Profile"
// @Success      201  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /profiles/job-seeker [post]
// @Security     BearerAuth
func (h *ProfileHandler) CreateJobSeeker(c *gin.Context) {
	var req JobSeekerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}
	profile, err := req.toDomain()
	if err != nil {
		c.Error(err)
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	if err := h.profileUC.CreateJobSeekerProfile(c.Request.Context(), userID, profile); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Profile created", profile)
}

func (h *ProfileHandler) UpdateJobSeeker(c *gin.Context) {
	var req JobSeekerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}
	profile, err := req.toDomain()
	if err != nil {
		c.Error(err)
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	if err := h.profileUC.UpdateJobSeekerProfile(c.Request.Context(), userID, profile); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile updated", profile)
}

func (h *ProfileHandler) GetJobSeekerBySlug(c *gin.Context) {
	profile, err := h.profileUC.GetJobSeekerProfileBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", profile)
}

// CreateEmployer godoc
// @Summary      Create company profile
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        profile  body      EmployerProfileRequest  true  "Company profile"
// @Success      201  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /profiles/employer [post]
// @Security     BearerAuth
func (h *ProfileHandler) CreateEmployer(c *gin.Context) {
	var req EmployerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}
	profile := req.toDomain()

	userID := c.GetInt64(string(domain.KeyUserID))
	if err := h.profileUC.CreateEmployerProfile(c.Request.Context(), userID, profile); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Company profile created", profile)
}

func (h *ProfileHandler) UpdateEmployer(c *gin.Context) {
	var req EmployerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}
	profile := req.toDomain()

	userID := c.GetInt64(string(domain.KeyUserID))
	if err := h.profileUC.UpdateEmployerProfile(c.Request.Context(), userID, profile); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company profile updated", profile)
}

func (h *ProfileHandler) GetEmployerBySlug(c *gin.Context) {
	profile, err := h.profileUC.GetEmployerProfileBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", profile)
}

// UploadPhoto godoc
// @Summary      Upload profile photo
// @Description  Accepts a multipart image, downscales it and stores it
// @Tags         profiles
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Image file"
// @Success      200  {object}  response.Response
// @Router       /profiles/job-seeker/photo [post]
// @Security     BearerAuth
func (h *ProfileHandler) UploadPhoto(c *gin.Context) {
	h.uploadImage(c, "photos")
}

func (h *ProfileHandler) UploadLogo(c *gin.Context) {
	h.uploadImage(c, "logos")
}

func (h *ProfileHandler) uploadImage(c *gin.Context, prefix string) {
	data, filename, err := readUpload(c)
	if err != nil {
		c.Error(err)
		return
	}

	resized, rerr := storage.ResizeImage(data, imageMaxDim, imageQuality)
	if rerr != nil {
		c.Error(apperror.BadRequest("File is not a supported image"))
		return
	}

	key, uerr := h.files.Upload(c.Request.Context(), prefix, filename+".jpg", "image/jpeg", resized)
	if uerr != nil {
		c.Error(apperror.Storage(uerr))
		return
	}
	response.Success(c, http.StatusOK, "Uploaded", gin.H{"key": key})
}

// UploadResume godoc
// @Summary      Upload resume
// @Tags         profiles
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Resume (PDF)"
// @Success      200  {object}  response.Response
// @Router       /profiles/job-seeker/resume [post]
// @Security     BearerAuth
func (h *ProfileHandler) UploadResume(c *gin.Context) {
	data, filename, err := readUpload(c)
	if err != nil {
		c.Error(err)
		return
	}

	key, uerr := h.files.Upload(c.Request.Context(), "resumes", filename, "application/pdf", data)
	if uerr != nil {
		c.Error(apperror.Storage(uerr))
		return
	}
	response.Success(c, http.StatusOK, "Uploaded", gin.H{"key": key})
}

func readUpload(c *gin.Context) ([]byte, string, *apperror.AppError) {
	header, err := c.FormFile("file")
	if err != nil {
		return nil, "", apperror.BadRequest("A file is required")
	}
	if header.Size > maxUploadBytes {
		return nil, "", apperror.BadRequest("File exceeds the 5 MB limit")
	}

	f, err := header.Open()
	if err != nil {
		return nil, "", apperror.Internal(err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil {
		return nil, "", apperror.Internal(err)
	}
	if len(data) > maxUploadBytes {
		return nil, "", apperror.BadRequest("File exceeds the 5 MB limit")
	}
	return data, header.Filename, nil
}
