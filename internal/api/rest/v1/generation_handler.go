package v1

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MGTheTrain/description-generator/internal/app"
	"github.com/MGTheTrain/description-generator/internal/domain/catalog"
	"github.com/MGTheTrain/description-generator/internal/domain/generation"
	"github.com/MGTheTrain/description-generator/internal/pkg/textutil"
)

// Defaults applied when the start request leaves the range unset.
const (
	defaultStartRow = 2
	defaultEndRow   = 100
)

// keepAliveInterval paces SSE keep-alive events while no job output arrives.
const keepAliveInterval = time.Second

// GenerationHandler defines the interface for handling generation-job operations
type GenerationHandler interface {
	Start(ctx *gin.Context)
	Stop(ctx *gin.Context)
	Status(ctx *gin.Context)
	StreamLogs(ctx *gin.Context)
	ListJobs(ctx *gin.Context)
}

// generationHandler struct holds the services
type generationHandler struct {
	jobService generation.JobService
}

// NewGenerationHandler creates a new GenerationHandler
func NewGenerationHandler(jobService generation.JobService) GenerationHandler {
	return &generationHandler{jobService: jobService}
}

// Start launches a generation job for the requested sheet range
func (handler *generationHandler) Start(ctx *gin.Context) {
	var request StartGenerationRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if request.StartRow == 0 {
		request.StartRow = defaultStartRow
	}
	if request.EndRow == 0 {
		request.EndRow = defaultEndRow
	}

	if request.StartRow >= request.EndRow {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "Начальная строка должна быть меньше конечной"})
		return
	}

	sheetID, err := textutil.NormalizeSheetID(request.SheetURL)
	if err != nil || request.SheetName == "" {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "Необходимо указать ID таблицы и название листа"})
		return
	}

	params := generation.ProcessParams{
		Range: catalog.SheetRange{
			SheetID:   sheetID,
			Worksheet: request.SheetName,
			StartRow:  request.StartRow,
			EndRow:    request.EndRow,
		},
		Force:  request.Force,
		DryRun: request.DryRun,
		Limit:  request.Limit,
		Sleep:  time.Duration(request.SleepSeconds * float64(time.Second)),
	}

	job, err := handler.jobService.Start(ctx, params)
	if err != nil {
		if errors.Is(err, app.ErrJobAlreadyRunning) {
			ctx.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
			return
		}
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, StartGenerationResponse{
		Status:   "started",
		JobID:    job.ID,
		StartRow: job.StartRow,
		EndRow:   job.EndRow,
	})
}

// Stop cancels the running generation job
func (handler *generationHandler) Stop(ctx *gin.Context) {
	stopped, err := handler.jobService.Stop(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	if !stopped {
		ctx.JSON(http.StatusOK, StopResponse{Status: "no process running"})
		return
	}
	ctx.JSON(http.StatusOK, StopResponse{Status: "stop_requested"})
}

// Status reports whether a job is active plus the latest job
func (handler *generationHandler) Status(ctx *gin.Context) {
	status, err := handler.jobService.Status(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, StatusResponse{
		Active: status.Active,
		Job:    toJobResponse(status.Job),
	})
}

// StreamLogs streams job log events as server-sent events with keep-alives
func (handler *generationHandler) StreamLogs(ctx *gin.Context) {
	events, unsubscribe := handler.jobService.Subscribe()
	defer unsubscribe()

	ctx.Writer.Header().Set("Content-Type", "text/event-stream")
	ctx.Writer.Header().Set("Cache-Control", "no-cache")
	ctx.Writer.Header().Set("Connection", "keep-alive")

	keepAlive := time.NewTicker(keepAliveInterval)
	defer keepAlive.Stop()

	ctx.Stream(func(w io.Writer) bool {
		select {
		case event, ok := <-events:
			if !ok {
				return false
			}
			ctx.SSEvent("message", LogEventResponse{
				Timestamp: event.Timestamp,
				Message:   event.Message,
				Type:      event.Level,
			})
			return true
		case <-keepAlive.C:
			ctx.SSEvent("message", gin.H{"keep_alive": true})
			return true
		case <-ctx.Request.Context().Done():
			return false
		}
	})
}

// ListJobs returns persisted jobs, most recent first
func (handler *generationHandler) ListJobs(ctx *gin.Context) {
	limit := 20
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	jobs, err := handler.jobService.List(ctx, limit)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	listResponse := []*JobResponse{}
	for _, job := range jobs {
		listResponse = append(listResponse, toJobResponse(job))
	}
	ctx.JSON(http.StatusOK, listResponse)
}
