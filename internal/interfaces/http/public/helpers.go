package public

import (
	"fmt"
	"net/url"
	"strings"

	catalogapp "github.com/havenrealty/listings-api/internal/catalog/application"
	"github.com/havenrealty/listings-api/internal/catalog/domain"
	inquiryapp "github.com/havenrealty/listings-api/internal/inquiry/application"
	"github.com/havenrealty/listings-api/internal/interfaces/http/common"
)

// firstValue returns the first non-blank value among the given parameter names.
func firstValue(query url.Values, names ...string) string {
	for _, name := range names {
		if v := strings.TrimSpace(query.Get(name)); v != "" {
			return v
		}
	}
	return ""
}

// parseCriteria turns listing query parameters into filter criteria.
// Blank parameters are absent; malformed ones are reported as errors.
func parseCriteria(query url.Values) (catalogapp.Criteria, error) {
	var (
		criteria catalogapp.Criteria
		err      error
	)

	types := common.SplitList(append(query["type"], query["propertyType"]...))
	if criteria.PropertyTypes, err = common.ParsePropertyTypes(types); err != nil {
		return catalogapp.Criteria{}, err
	}
	if criteria.PriceMin, err = common.ParseOptionalFloat("priceMin", query.Get("priceMin")); err != nil {
		return catalogapp.Criteria{}, err
	}
	if criteria.PriceMax, err = common.ParseOptionalFloat("priceMax", query.Get("priceMax")); err != nil {
		return catalogapp.Criteria{}, err
	}
	if criteria.BedroomsMin, err = common.ParseOptionalInt("bedrooms", firstValue(query, "bedrooms", "bedroomsMin")); err != nil {
		return catalogapp.Criteria{}, err
	}
	if criteria.BathroomsMin, err = common.ParseOptionalFloat("bathrooms", firstValue(query, "bathrooms", "bathroomsMin")); err != nil {
		return catalogapp.Criteria{}, err
	}
	if criteria.SquareFeetMin, err = common.ParseOptionalInt("squareFeetMin", query.Get("squareFeetMin")); err != nil {
		return catalogapp.Criteria{}, err
	}
	if criteria.SquareFeetMax, err = common.ParseOptionalInt("squareFeetMax", query.Get("squareFeetMax")); err != nil {
		return catalogapp.Criteria{}, err
	}
	if raw := strings.TrimSpace(query.Get("status")); raw != "" {
		status, err := domain.NewStatus(strings.ToLower(raw))
		if err != nil {
			return catalogapp.Criteria{}, fmt.Errorf("unknown status %q", raw)
		}
		criteria.Status = &status
	}

	criteria.Amenities = common.CanonicalAmenities(common.SplitList(query["amenities"]))
	criteria.City = strings.TrimSpace(query.Get("city"))
	criteria.Query = firstValue(query, "query", "q")
	return criteria, nil
}

// parsePaging reads page/limit. Without either parameter the whole result is returned.
func parsePaging(query url.Values, total int) (page, limit int, paged bool) {
	page, pageSet := common.ParsePositiveInt(query.Get("page"), 1)
	limit, limitSet := common.ParsePositiveInt(query.Get("limit"), common.DefaultPageLimit)
	if !pageSet && !limitSet {
		return 1, total, false
	}
	if limit > common.MaxPageLimit {
		limit = common.MaxPageLimit
	}
	return page, limit, true
}

func (req inquiryRequest) toCommand() inquiryapp.SubmitCommand {
	cmd := inquiryapp.SubmitCommand{
		Kind:       req.Kind,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Subject:    req.Subject,
		Message:    req.Message,
		PropertyID: req.PropertyID,
		AgentID:    req.AgentID,
	}
	if l := req.Listing; l != nil {
		cmd.Listing = &inquiryapp.ListingCommand{
			Title:        l.Title,
			PropertyType: l.PropertyType,
			PriceType:    l.PriceType,
			Price:        l.Price,
			Bedrooms:     l.Bedrooms,
			Bathrooms:    l.Bathrooms,
			SquareFeet:   l.SquareFeet,
			Address:      l.Address,
			City:         l.City,
			State:        l.State,
			ZipCode:      l.ZipCode,
		}
	}
	return cmd
}
