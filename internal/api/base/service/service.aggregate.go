package basesvc

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/zougmar/hassan-elec/internal/common"
)

// LookupOne tạo các stage $lookup + $unwind để populate một reference (giữ document khi reference bị treo)
func LookupOne(from, localField, as string, project bson.M) []bson.M {
	lookup := bson.M{
		"from":         from,
		"localField":   localField,
		"foreignField": "_id",
		"as":           as,
	}
	if len(project) > 0 {
		lookup = bson.M{
			"from":     from,
			"let":      bson.M{"ref": "$" + localField},
			"pipeline": []bson.M{{"$match": bson.M{"$expr": bson.M{"$eq": []string{"$_id", "$$ref"}}}}, {"$project": project}},
			"as":       as,
		}
	}
	return []bson.M{
		{"$lookup": lookup},
		{"$unwind": bson.M{"path": "$" + as, "preserveNullAndEmptyArrays": true}},
	}
}

// LookupMany tạo stage $lookup cho quan hệ ngược (ví dụ: departments của một organization)
func LookupMany(from, foreignField, as string) bson.M {
	return bson.M{"$lookup": bson.M{
		"from":         from,
		"localField":   "_id",
		"foreignField": foreignField,
		"as":           as,
	}}
}

// AggregateInto chạy pipeline và decode toàn bộ kết quả sang []R (không nil)
func AggregateInto[R any](ctx context.Context, coll *mongo.Collection, pipeline []bson.M) ([]R, error) {
	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	results := []R{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return results, nil
}

// AggregateOne chạy pipeline và trả về phần tử đầu tiên, ErrNotFound nếu rỗng
func AggregateOne[R any](ctx context.Context, coll *mongo.Collection, pipeline []bson.M) (R, error) {
	var zero R
	results, err := AggregateInto[R](ctx, coll, append(pipeline, bson.M{"$limit": 1}))
	if err != nil {
		return zero, err
	}
	if len(results) == 0 {
		return zero, common.ErrNotFound
	}
	return results[0], nil
}
