package mongo

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mernspace/catalog-service/internal/core/ports"
)

// buildMatch translates a ListFilter into the $match criteria shared by all
// entity listings.
//
// The free-text query becomes a case-insensitive regex on name. CategoryID
// is only applied when it is valid object-id hex; an invalid value is
// silently dropped rather than rejected, so a garbage filter yields an
// unfiltered (not empty, not failed) listing. TenantID is a plain string
// equality since tenants are issued by the external auth service.
func buildMatch(f ports.ListFilter) bson.M {
	match := bson.M{}

	if f.Query != "" {
		match["name"] = primitive.Regex{Pattern: f.Query, Options: "i"}
	}
	if f.CategoryID != "" {
		if _, err := primitive.ObjectIDFromHex(f.CategoryID); err == nil {
			match["category_id"] = f.CategoryID
		}
	}
	if f.TenantID != "" {
		match["tenant_id"] = f.TenantID
	}
	if f.IsPublished != nil {
		match["is_published"] = *f.IsPublished
	}

	return match
}

// paginatePipeline wraps a match stage in a $facet computing the total count
// and the requested page in a single round trip, keeping the repository's
// natural insertion order.
func paginatePipeline(match bson.M, page, limit int) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$facet", Value: bson.M{
			"metadata": bson.A{bson.M{"$count": "total"}},
			"data": bson.A{
				bson.M{"$skip": int64((page - 1) * limit)},
				bson.M{"$limit": int64(limit)},
			},
		}}},
	}
}

// pageMetadata is the decoded shape of the $count facet. The facet array is
// empty when nothing matched.
type pageMetadata struct {
	Total int64 `bson:"total"`
}

func pageTotal(metadata []pageMetadata) int64 {
	if len(metadata) == 0 {
		return 0
	}
	return metadata[0].Total
}
