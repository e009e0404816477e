package httpapi

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/custodia-labs/cvmatch/internal/adapters/driven/extract"
	"github.com/custodia-labs/cvmatch/internal/core/domain"
	"github.com/custodia-labs/cvmatch/internal/core/ports/driving"
)

// maxUploadBytes caps candidate document uploads at 10 MB.
const maxUploadBytes = 10 << 20

// Server wires the driving ports to a fiber application.
type Server struct {
	app     *fiber.App
	ingest  driving.IngestService
	resumes driving.ResumeService
	jobs    driving.JobService
	matches driving.MatchService
	log     *zap.Logger
}

// New creates the HTTP server. ingest may be nil when AI extraction is
// not configured; uploads then answer 503.
func New(
	ingest driving.IngestService,
	resumes driving.ResumeService,
	jobs driving.JobService,
	matches driving.MatchService,
	log *zap.Logger,
) *Server {
	if log == nil {
		log = zap.NewNop()
	}

	s := &Server{
		ingest:  ingest,
		resumes: resumes,
		jobs:    jobs,
		matches: matches,
		log:     log,
	}

	app := fiber.New(fiber.Config{
		BodyLimit:             maxUploadBytes + 1024,
		DisableStartupMessage: true,
	})

	app.Get("/health", s.handleHealth)
	app.Post("/upload", s.handleUpload)
	app.Get("/resumes", s.handleListResumes)
	app.Delete("/resumes/:id", s.handleDeleteResume)
	app.Post("/jobs", s.handleCreateJob)
	app.Get("/jobs", s.handleListJobs)
	app.Post("/jobs/:id/match", s.handleMatch)

	s.app = app
	return s
}

// App exposes the underlying fiber application, mainly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen blocks serving HTTP on the given port.
func (s *Server) Listen(port int) error {
	return s.app.Listen(fmt.Sprintf(":%d", port))
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (s *Server) handleUpload(c *fiber.Ctx) error {
	if s.ingest == nil {
		return fail(c, fiber.StatusServiceUnavailable, "AI extraction not configured")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "No file provided")
	}
	if fileHeader.Size > maxUploadBytes {
		return fail(c, fiber.StatusBadRequest, "File size must be less than 10MB")
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = mimeByExtension(fileHeader.Filename)
	}

	f, err := fileHeader.Open()
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Unreadable file")
	}
	defer f.Close()

	content, err := extract.ReadAll(f, maxUploadBytes)
	if err != nil {
		return s.fromDomainError(c, err)
	}

	resume, err := s.ingest.IngestDocument(c.Context(), content, mimeType)
	if err != nil {
		return s.fromDomainError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"message":      "CV uploaded and processed successfully",
		"resume_id":    resume.ResumeID,
		"candidate_id": resume.CandidateID,
	})
}

func (s *Server) handleListResumes(c *fiber.Ctx) error {
	query := domain.ResumeQuery{
		Limit:  c.QueryInt("limit", 10),
		Offset: c.QueryInt("offset", 0),
		Search: c.Query("search"),
		Skills: c.Query("skills"),
	}

	page, err := s.resumes.List(c.Context(), query)
	if err != nil {
		return s.fromDomainError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"resumes": page.Resumes,
		"total":   page.Total,
		"limit":   query.Limit,
		"offset":  query.Offset,
		"hasMore": page.HasMore,
	})
}

func (s *Server) handleDeleteResume(c *fiber.Ctx) error {
	deleted, err := s.resumes.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return s.fromDomainError(c, err)
	}
	if !deleted {
		return fail(c, fiber.StatusNotFound, "Resume not found")
	}
	return c.JSON(fiber.Map{"success": true})
}

func (s *Server) handleCreateJob(c *fiber.Ctx) error {
	var input domain.JobInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid job data")
	}

	job, err := s.jobs.Create(c.Context(), input)
	if err != nil {
		return s.fromDomainError(c, err)
	}

	resp := fiber.Map{
		"success": true,
		"message": "Job posted successfully",
		"job_id":  job.JobID,
	}

	// The posting flow immediately surfaces the best candidate.
	results, err := s.matches.Match(c.Context(), job)
	if err != nil {
		s.log.Warn("matching after job creation failed", zap.Error(err))
	} else if len(results) > 0 {
		resp["top_resume"] = results[0]
	}

	return c.JSON(resp)
}

func (s *Server) handleListJobs(c *fiber.Ctx) error {
	jobs, err := s.jobs.List(c.Context())
	if err != nil {
		return s.fromDomainError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "jobs": jobs})
}

func (s *Server) handleMatch(c *fiber.Ctx) error {
	job, err := s.jobs.Get(c.Context(), c.Params("id"))
	if err != nil {
		return s.fromDomainError(c, err)
	}

	results, err := s.matches.Match(c.Context(), job)
	if err != nil {
		return s.fromDomainError(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "matches": results})
}

// fromDomainError maps domain sentinel errors to HTTP status codes.
func (s *Server) fromDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fail(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrUnsupportedType):
		return fail(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrExtractorUnavailable):
		return fail(c, fiber.StatusServiceUnavailable, err.Error())
	default:
		s.log.Error("request failed", zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "Internal server error")
	}
}

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "message": message})
}

// mimeByExtension maps a filename to a supported document MIME type.
// Unknown extensions fall through to the extractor's own rejection.
func mimeByExtension(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return extract.MIMEPDF
	case ".docx":
		return extract.MIMEDocx
	case ".txt", ".text", ".md":
		return extract.MIMEPlainText
	default:
		return "application/octet-stream"
	}
}
