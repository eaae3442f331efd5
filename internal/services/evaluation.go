package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"urbannest-properties/internal/apperrors"
	"urbannest-properties/internal/models"
	"urbannest-properties/internal/repositories"
	"urbannest-properties/pkg/logger"

	"golang.org/x/sync/errgroup"
)

const (
	recentWindow      = 30 * 24 * time.Hour
	topAmenitiesLimit = 10
	recentLimit       = 5
)

// TextGenerator produces free-form text from a prompt.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// EvaluationService assembles comparative market statistics for a candidate
// property and asks the text generator for an investment analysis.
type EvaluationService struct {
	market    repositories.MarketRepository
	generator TextGenerator
}

func NewEvaluationService(market repositories.MarketRepository, generator TextGenerator) *EvaluationService {
	return &EvaluationService{market: market, generator: generator}
}

func (s *EvaluationService) Evaluate(ctx context.Context, req *models.EvaluationRequest) (string, error) {
	var (
		summary   *models.MarketSummary
		amenities []models.AmenityStat
		recent    []models.Property
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		summary, err = s.market.Summary(gctx, req.City, req.Type)
		return err
	})
	g.Go(func() (err error) {
		amenities, err = s.market.TopAmenities(gctx, req.City, req.Type, topAmenitiesLimit)
		return err
	})
	g.Go(func() (err error) {
		recent, err = s.market.RecentListings(gctx, req.City, req.Type, time.Now().Add(-recentWindow), recentLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return "", apperrors.Internal(err)
	}

	prompt := buildPrompt(req, summary, amenities, recent)

	result, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		logger.GlobalLogger.Errorf("text generation failed: %v", err)
		return "", apperrors.NewAppError(apperrors.ErrCodeEvaluationFailed, "AI evaluation failed", http.StatusInternalServerError, err)
	}
	return result, nil
}

// buildPrompt renders the analyst prompt. Markets with no comparable
// listings render as N/A with a neutral price comparison rather than failing
// the evaluation.
func buildPrompt(req *models.EvaluationRequest, summary *models.MarketSummary, amenities []models.AmenityStat, recent []models.Property) string {
	pricePerSqFt := 0.0
	if req.AreaSqFt > 0 {
		pricePerSqFt = req.Price / req.AreaSqFt
	}

	avgPrice, avgPerSqFt := "N/A", "N/A"
	minPrice, maxPrice := "N/A", "N/A"
	avgBedrooms, avgBathrooms := "N/A", "N/A"
	count := int64(0)
	comparison, direction := "0", "below"
	if summary != nil {
		avgPrice = formatAmount(summary.AvgPrice)
		avgPerSqFt = fmt.Sprintf("%.2f", summary.AvgPricePerSqFt)
		minPrice = formatAmount(summary.MinPrice)
		maxPrice = formatAmount(summary.MaxPrice)
		avgBedrooms = fmt.Sprintf("%.1f", summary.AvgBedrooms)
		avgBathrooms = fmt.Sprintf("%.1f", summary.AvgBathrooms)
		count = summary.Count
		if summary.AvgPricePerSqFt > 0 {
			delta := (pricePerSqFt - summary.AvgPricePerSqFt) / summary.AvgPricePerSqFt * 100
			comparison = fmt.Sprintf("%.1f", delta)
			if delta > 0 {
				direction = "above"
			}
		}
	}

	var amenityLines []string
	for i, a := range amenities {
		amenityLines = append(amenityLines, fmt.Sprintf("%d. %s: %d properties (avg price: ₹%s)",
			i+1, a.Amenity, a.Count, formatAmount(a.AvgPrice)))
	}

	var recentLines []string
	for i, p := range recent {
		verified := "Unverified"
		if p.IsVerified {
			verified = "Verified"
		}
		recentLines = append(recentLines, fmt.Sprintf("%d. ₹%s | %g sq.ft | %dB/%dB | Rating: %g | %s",
			i+1, formatAmount(p.Price), p.AreaSqFt, p.Bedrooms, p.Bathrooms, p.Rating, verified))
	}

	var b strings.Builder
	b.WriteString("You are a real estate market analyst with access to comprehensive property data. Analyze the following property for investment potential and provide detailed market insights.\n\n")
	b.WriteString("PROPERTY DETAILS:\n")
	fmt.Fprintf(&b, "- Price: ₹%s\n", formatAmount(req.Price))
	fmt.Fprintf(&b, "- Area: %g sq.ft.\n", req.AreaSqFt)
	fmt.Fprintf(&b, "- Price per sq.ft: ₹%.2f\n", pricePerSqFt)
	fmt.Fprintf(&b, "- Location: %s, %s\n", req.City, req.State)
	fmt.Fprintf(&b, "- Type: %s\n", req.Type)
	fmt.Fprintf(&b, "- Bedrooms: %d\n", req.Bedrooms)
	fmt.Fprintf(&b, "- Bathrooms: %d\n", req.Bathrooms)
	fmt.Fprintf(&b, "- Amenities: %s\n", strings.Join(req.Amenities, ", "))
	fmt.Fprintf(&b, "- Description: %s\n\n", orNA(req.Description))
	b.WriteString("MARKET ANALYSIS DATA:\n")
	fmt.Fprintf(&b, "- Average price in %s for %s: ₹%s\n", req.City, req.Type, avgPrice)
	fmt.Fprintf(&b, "- Average price per sq.ft in %s for %s: ₹%s\n", req.City, req.Type, avgPerSqFt)
	fmt.Fprintf(&b, "- Price comparison: %s%% %s market average\n", comparison, direction)
	fmt.Fprintf(&b, "- Market range: ₹%s - ₹%s\n", minPrice, maxPrice)
	fmt.Fprintf(&b, "- Total similar properties in market: %d\n", count)
	fmt.Fprintf(&b, "- Average bedrooms in market: %s\n", avgBedrooms)
	fmt.Fprintf(&b, "- Average bathrooms in market: %s\n\n", avgBathrooms)
	fmt.Fprintf(&b, "TOP AMENITIES IN %s %s MARKET:\n%s\n\n", req.City, req.Type, strings.Join(amenityLines, "\n"))
	fmt.Fprintf(&b, "RECENT MARKET ACTIVITY (Last 30 days):\n%s\n\n", strings.Join(recentLines, "\n"))
	b.WriteString(`ANALYSIS REQUIREMENTS:
1. **Price Analysis**: Compare the property price with market averages and recent sales
2. **Amenities Value**: Evaluate the property's amenities against market preferences
3. **Location Assessment**: Consider the location's desirability and growth potential
4. **Investment Potential**: Assess rental yield potential and appreciation prospects
5. **Risk Factors**: Identify any potential risks or concerns
6. **Recommendation**: Provide a clear BUY/HOLD/AVOID recommendation with reasoning
7. **Market Trends**: Comment on current market conditions in ` + req.City + `
8. **Amenities Impact**: How do the property's amenities compare to market standards?

Provide a comprehensive analysis in a structured format with clear sections for each aspect. Be specific about numbers and market data.`)

	return b.String()
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// formatAmount renders a price with thousands separators, dropping the
// fraction for whole amounts.
func formatAmount(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimSuffix(s, ".00")
	dot := strings.IndexByte(s, '.')
	intPart, frac := s, ""
	if dot >= 0 {
		intPart, frac = s[:dot], s[dot:]
	}

	var sign string
	if strings.HasPrefix(intPart, "-") {
		sign, intPart = "-", intPart[1:]
	}

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)
	return sign + strings.Join(groups, ",") + frac
}
