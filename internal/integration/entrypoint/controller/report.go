// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/application/usecase/report"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
)

// ReportController handles report endpoints.
type ReportController struct {
	monthlySummaryUseCase *report.MonthlySummaryUseCase
	topCategoriesUseCase  *report.TopCategoriesUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	monthlySummaryUseCase *report.MonthlySummaryUseCase,
	topCategoriesUseCase *report.TopCategoriesUseCase,
) *ReportController {
	return &ReportController{
		monthlySummaryUseCase: monthlySummaryUseCase,
		topCategoriesUseCase:  topCategoriesUseCase,
	}
}

// MonthlySummary handles GET /reports/monthly requests. An optional "month"
// query parameter (YYYY-MM) shifts the reference month; it defaults to the
// current month.
func (c *ReportController) MonthlySummary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := report.MonthlySummaryInput{
		UserID: userID,
	}

	if monthStr := ctx.Query("month"); monthStr != "" {
		reference, err := time.Parse("2006-01", monthStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid month format, expected YYYY-MM",
			})
			return
		}
		input.ReferenceMonth = reference
	}

	output, err := c.monthlySummaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute monthly summary",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlySummaryResponse(output.Months))
}

// TopCategories handles GET /reports/top-categories requests.
func (c *ReportController) TopCategories(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.topCategoriesUseCase.Execute(ctx.Request.Context(), report.TopCategoriesInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute top categories",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTopCategoriesResponse(output.Categories))
}
